package assets

import (
	"embed"
	"fmt"
	"io/fs"
)

// Narrative holds the text blocks shown between the plots.
//
//go:embed narrative/*.md
var Narrative embed.FS

// FitSnippet is the code shown in the "fit" step of the deck.
//
//go:embed fit_snippet.go.txt
var FitSnippet string

// NarrativeText returns the named narrative file (without extension).
func NarrativeText(name string) (string, error) {
	b, err := fs.ReadFile(Narrative, "narrative/"+name+".md")
	if err != nil {
		return "", fmt.Errorf("narrative %q: %w", name, err)
	}
	if len(b) == 0 {
		return "", fmt.Errorf("narrative %q is empty", name)
	}
	return string(b), nil
}
