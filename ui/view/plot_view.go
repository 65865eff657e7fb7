package view

import (
	"image"

	"github.com/soocke/svmdeck/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PlotView owns the label that shows the rasterized figure of a plot step.
type PlotView interface {
	Update(img image.Image)
	Reset()
}

type plotView struct {
	label     *LabelWidget
	targetW   int
	targetH   int
	prevPhoto *Img // last Tk photo image instance
}

// Internal state tracks the current photo so it can be disposed before being
// replaced, preventing accumulation of off-screen image data.

const (
	// Max on-screen plot dimensions; larger rasters are scaled down proportionally.
	maxPlotW = 720
	maxPlotH = 540
)

// NewPlotView creates the image label inside parent at the given grid row.
func NewPlotView(parent *FrameWidget, row, maxW, maxH int) PlotView {
	photo := NewPhoto(Data(placeholderPNG()))
	lbl := Label(Image(photo), Borderwidth(0))
	Grid(lbl, In(parent), Row(row), Column(0), Sticky("n"), Padx("0.4m"), Pady("0.4m"))
	v := &plotView{label: lbl, prevPhoto: photo}
	v.setTargetSize(maxW, maxH)
	return v
}

func (v *plotView) Update(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	w, h := v.targetW, v.targetH
	if w <= 0 || h <= 0 {
		w, h = maxPlotW, maxPlotH
	}
	scaled := images.ScaleToFit(img, w, h)
	v.replace(images.EncodePNG(scaled))
}

// Reset shows a 1x1 placeholder so text steps take the full body.
func (v *plotView) Reset() {
	if v == nil || v.label == nil {
		return
	}
	v.replace(placeholderPNG())
}

func (v *plotView) replace(pngBytes []byte) {
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(pngBytes))
	v.label.Configure(Image(v.prevPhoto))
}

// setTargetSize updates desired scaling dimensions used by Update.
func (v *plotView) setTargetSize(w, h int) {
	if v == nil {
		return
	}
	if w < 50 {
		w = 50
	}
	if h < 50 {
		h = 50
	}
	v.targetW, v.targetH = w, h
}

func placeholderPNG() []byte {
	return images.EncodePNG(image.NewRGBA(image.Rect(0, 0, 1, 1)))
}
