package images

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestScaleToFit_KeepsSmallImages(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 30))
	if got := ScaleToFit(src, 100, 100); got != image.Image(src) {
		t.Fatalf("expected original image back")
	}
}

func TestScaleToFit_PreservesAspect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 800, 400))
	got := ScaleToFit(src, 200, 200)
	if got.Bounds().Dx() != 200 || got.Bounds().Dy() != 100 {
		t.Fatalf("expected 200x100, got %dx%d", got.Bounds().Dx(), got.Bounds().Dy())
	}
}

func TestScaleToFit_Nil(t *testing.T) {
	if ScaleToFit(nil, 10, 10) != nil {
		t.Fatalf("expected nil")
	}
}

func TestEncodePNG_RoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	data := EncodePNG(src)
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds() != src.Bounds() {
		t.Fatalf("bounds mismatch: %v vs %v", img.Bounds(), src.Bounds())
	}
	if EncodePNG(nil) != nil {
		t.Fatalf("expected nil for nil image")
	}
}
