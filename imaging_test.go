package iconbake

import (
	"image/color"
	"testing"

	"golang.org/x/image/draw"
)

func TestCenterOffset(t *testing.T) {
	tests := []struct {
		canvas, content, want int
	}{
		{30, 20, 5},
		{30, 30, 0},
		{30, 21, 4},
		{30, 1, 14},
		{16, 7, 4},
	}
	for _, tt := range tests {
		if got := CenterOffset(tt.canvas, tt.content); got != tt.want {
			t.Errorf("CenterOffset(%d, %d) = %d, want %d", tt.canvas, tt.content, got, tt.want)
		}
	}
}

func TestDefaultImagingComposite(t *testing.T) {
	canvas := NewPixmap(6, 6)
	content := NewPixmap(2, 2)
	content.Fill(color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	content.SetNRGBA(1, 1, color.NRGBA{R: 200, A: 128})

	if err := DefaultImaging().CompositeCentered(canvas, content); err != nil {
		t.Fatalf("CompositeCentered: %v", err)
	}
	if got := canvas.NRGBAAt(2, 2); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("NRGBAAt(2, 2) = %v", got)
	}
	// Source-over onto transparent keeps the source pixel.
	if got := canvas.NRGBAAt(3, 3); got != (color.NRGBA{R: 200, A: 128}) {
		t.Errorf("NRGBAAt(3, 3) = %v, want {200 0 0 128}", got)
	}
	if got := canvas.NRGBAAt(1, 1); got != (color.NRGBA{}) {
		t.Errorf("NRGBAAt(1, 1) = %v, want transparent", got)
	}
}

func TestDefaultImagingOversized(t *testing.T) {
	if err := DefaultImaging().CompositeCentered(NewPixmap(4, 4), NewPixmap(5, 5)); err == nil {
		t.Error("compositing content larger than the canvas should fail")
	}
}

func TestDefaultImagingResize(t *testing.T) {
	src := NewPixmap(12, 12)
	src.Fill(color.NRGBA{R: 255, A: 255})

	for _, im := range []Imaging{DefaultImaging(), NewXDrawImaging(draw.CatmullRom), NewXDrawImaging(nil)} {
		out, err := im.Resize(src, 5)
		if err != nil {
			t.Fatalf("Resize: %v", err)
		}
		if out.Width() != 5 || out.Height() != 5 {
			t.Fatalf("Resize size = %dx%d, want 5x5", out.Width(), out.Height())
		}
		if got := out.NRGBAAt(2, 2); got.A != 255 || got.R < 254 {
			t.Errorf("Resize center = %v, want opaque red", got)
		}
	}

	if _, err := DefaultImaging().Resize(src, 0); err == nil {
		t.Error("Resize to 0 should fail")
	}
}
