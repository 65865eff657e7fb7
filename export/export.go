// Package export writes a deck to disk without a GUI: plot steps become PNG
// files with a caption strip and the remaining steps a markdown outline.
package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/sync/errgroup"

	"github.com/soocke/svmdeck/domain/plot"
	"github.com/soocke/svmdeck/domain/presentation"
)

// OutlineFile is the markdown file written next to the plot images.
const OutlineFile = "deck.md"

const captionHeight = 22

// ErrNoRasterizer is returned when an exporter has plot steps but no way to draw them.
var ErrNoRasterizer = errors.New("export: no rasterizer")

// Rasterizer turns a recorded figure into pixels.
type Rasterizer interface {
	Rasterize(fig *plot.Figure) (image.Image, error)
}

type plotJob struct {
	name string
	plot presentation.Plot
}

// Exporter collects steps through Emit and writes them with Flush.
type Exporter struct {
	dir     string
	raster  Rasterizer
	logger  *slog.Logger
	workers int

	outline strings.Builder
	jobs    []plotJob
}

var _ presentation.Driver = (*Exporter)(nil)

// New returns an exporter writing into dir. workers <= 0 uses GOMAXPROCS.
func New(dir string, raster Rasterizer, logger *slog.Logger, workers int) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Exporter{dir: dir, raster: raster, logger: logger, workers: workers}
}

// Emit records one step.
func (e *Exporter) Emit(step presentation.Step) error {
	switch s := step.(type) {
	case presentation.Heading:
		level := max(s.Level, 1)
		fmt.Fprintf(&e.outline, "%s %s\n\n", strings.Repeat("#", level), s.Text)
	case presentation.Text:
		fmt.Fprintf(&e.outline, "%s\n\n", s.Body)
	case presentation.Code:
		fmt.Fprintf(&e.outline, "**%s**\n\n```go\n%s\n```\n\n", s.Caption, strings.TrimRight(s.Source, "\n"))
	case presentation.Divider:
		e.outline.WriteString("---\n\n")
	case presentation.Plot:
		name := fmt.Sprintf("%02d-%s.png", len(e.jobs)+1, Slug(s.Title))
		e.jobs = append(e.jobs, plotJob{name: name, plot: s})
		fmt.Fprintf(&e.outline, "![%s](%s)\n\n", s.Title, name)
		if s.Notes != "" {
			fmt.Fprintf(&e.outline, "_%s_\n\n", s.Notes)
		}
	default:
		return fmt.Errorf("unsupported step %T", step)
	}
	return nil
}

// Flush writes every recorded plot in parallel and then the outline. It
// returns the written file names relative to the export directory.
func (e *Exporter) Flush(ctx context.Context) ([]string, error) {
	if len(e.jobs) > 0 && e.raster == nil {
		return nil, ErrNoRasterizer
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for _, job := range e.jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return e.writePlot(job)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := os.WriteFile(filepath.Join(e.dir, OutlineFile), []byte(e.outline.String()), 0o644); err != nil {
		return nil, fmt.Errorf("write outline: %w", err)
	}
	names := make([]string, 0, len(e.jobs)+1)
	for _, job := range e.jobs {
		names = append(names, job.name)
	}
	names = append(names, OutlineFile)
	e.logger.Info("deck exported", "dir", e.dir, "plots", len(e.jobs))
	return names, nil
}

func (e *Exporter) writePlot(job plotJob) error {
	img, err := e.raster.Rasterize(job.plot.Figure)
	if err != nil {
		return fmt.Errorf("rasterize %s: %w", job.name, err)
	}
	out := Caption(img, job.plot.Title)
	f, err := os.Create(filepath.Join(e.dir, job.name))
	if err != nil {
		return fmt.Errorf("create %s: %w", job.name, err)
	}
	if err := png.Encode(f, out); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", job.name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", job.name, err)
	}
	e.logger.Debug("plot written", "file", job.name)
	return nil
}

// Export plays deck into a fresh exporter and flushes it.
func Export(ctx context.Context, deck presentation.Deck, dir string, raster Rasterizer, logger *slog.Logger) ([]string, error) {
	e := New(dir, raster, logger, 0)
	if err := deck.Play(e); err != nil {
		return nil, err
	}
	return e.Flush(ctx)
}

// Caption returns img with a dark strip below it holding text.
func Caption(img image.Image, text string) image.Image {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()+captionHeight))
	draw.Draw(out, image.Rect(0, 0, b.Dx(), b.Dy()), img, b.Min, draw.Src)
	strip := image.Rect(0, b.Dy(), b.Dx(), b.Dy()+captionHeight)
	draw.Draw(out, strip, image.NewUniform(color.RGBA{R: 30, G: 41, B: 59, A: 255}), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: out, Src: image.NewUniform(color.White), Face: face}
	y := b.Dy() + (captionHeight+face.Metrics().Ascent.Ceil())/2 - 1
	dr.Dot = fixed.Point26_6{X: fixed.I(8), Y: fixed.I(y)}
	dr.DrawString(text)
	return out
}

// Slug lowercases s and joins its alphanumeric runs with dashes.
func Slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	if b.Len() == 0 {
		return "plot"
	}
	return b.String()
}
