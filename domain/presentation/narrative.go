package presentation

import (
	"strings"

	"github.com/soocke/svmdeck/assets"
)

// ParseNarrative splits a narrative document into steps. "# " and "## " lines
// become headings, "---" lines dividers, and everything in between one text
// block per run.
func ParseNarrative(src string) []Step {
	var steps []Step
	var buf []string
	flush := func() {
		body := strings.TrimSpace(strings.Join(buf, "\n"))
		if body != "" {
			steps = append(steps, Text{Body: body})
		}
		buf = buf[:0]
	}
	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "## "):
			flush()
			steps = append(steps, Heading{Text: strings.TrimSpace(trimmed[3:]), Level: 2})
		case strings.HasPrefix(trimmed, "# "):
			flush()
			steps = append(steps, Heading{Text: strings.TrimSpace(trimmed[2:]), Level: 1})
		case trimmed == "---":
			flush()
			steps = append(steps, Divider{})
		default:
			buf = append(buf, strings.TrimRight(line, " \t"))
		}
	}
	flush()
	return steps
}

func narrative(name string) ([]Step, error) {
	src, err := assets.NarrativeText(name)
	if err != nil {
		return nil, err
	}
	return ParseNarrative(src), nil
}
