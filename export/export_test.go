package export

import (
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soocke/svmdeck/domain/plot"
	"github.com/soocke/svmdeck/domain/presentation"
)

type fakeRaster struct {
	calls atomic.Int32
	err   error
}

func (r *fakeRaster) Rasterize(fig *plot.Figure) (image.Image, error) {
	r.calls.Add(1)
	if r.err != nil {
		return nil, r.err
	}
	return image.NewRGBA(image.Rect(0, 0, 60, 40)), nil
}

func sampleDeck() presentation.Deck {
	return presentation.Deck{Steps: []presentation.Step{
		presentation.Heading{Text: "Support Vector Machines", Level: 2},
		presentation.Text{Body: "- margins"},
		presentation.Code{Caption: "Fit", Source: "model.Fit(ds)\n"},
		presentation.Plot{Title: "Possible dividing lines", Figure: plot.NewFigure("a")},
		presentation.Divider{},
		presentation.Plot{Title: "Radial projection", Figure: plot.NewFigure("b"), Notes: "r = exp(-(x²+y²))"},
	}}
}

func TestExport_WritesPlotsAndOutline(t *testing.T) {
	dir := t.TempDir()
	r := &fakeRaster{}
	names, err := Export(context.Background(), sampleDeck(), dir, r, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"01-possible-dividing-lines.png", "02-radial-projection.png", OutlineFile}, names)
	assert.EqualValues(t, 2, r.calls.Load())

	f, err := os.Open(filepath.Join(dir, names[0]))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 60, img.Bounds().Dx())
	assert.Equal(t, 40+captionHeight, img.Bounds().Dy())

	md, err := os.ReadFile(filepath.Join(dir, OutlineFile))
	require.NoError(t, err)
	text := string(md)
	assert.True(t, strings.HasPrefix(text, "## Support Vector Machines\n"))
	assert.Contains(t, text, "```go\nmodel.Fit(ds)\n```")
	assert.Contains(t, text, "![Radial projection](02-radial-projection.png)")
	assert.Contains(t, text, "_r = exp(-(x²+y²))_")
	assert.Contains(t, text, "\n---\n")
}

func TestExport_RasterErrorStops(t *testing.T) {
	boom := errors.New("boom")
	_, err := Export(context.Background(), sampleDeck(), t.TempDir(), &fakeRaster{err: boom}, nil)
	require.ErrorIs(t, err, boom)
}

func TestFlush_NoRasterizer(t *testing.T) {
	e := New(t.TempDir(), nil, nil, 1)
	require.NoError(t, e.Emit(presentation.Plot{Title: "x"}))
	_, err := e.Flush(context.Background())
	require.ErrorIs(t, err, ErrNoRasterizer)
}

func TestCaption_DrawsStrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	out := Caption(src, "hello")
	require.Equal(t, 50+captionHeight, out.Bounds().Dy())
	// Strip background is dark; some text pixels are bright.
	bright := false
	for x := 0; x < 100 && !bright; x++ {
		for y := 50; y < 50+captionHeight; y++ {
			r, _, _, _ := out.At(x, y).RGBA()
			if r > 0xf000 {
				bright = true
				break
			}
		}
	}
	assert.True(t, bright, "expected caption text pixels")
	assert.Nil(t, Caption(nil, "x"))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "linear-kernel-on-concentric-rings", Slug("linear kernel on concentric rings"))
	assert.Equal(t, "optimal-decision-hyperplane", Slug("  Optimal decision hyperplane!"))
	assert.Equal(t, "plot", Slug("??"))
}
