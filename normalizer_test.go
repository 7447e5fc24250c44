package iconbake

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeCanvasSizeFixed(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "wide.png", 50, 17, fill(color.NRGBA{R: 9, A: 255}))
	path := filepath.Join(dir, "wide.png")

	for _, size := range []int{1, 7, 20, 29, 30} {
		n := NewNormalizer(nil, ProfileCentered, IconSize)
		canvas, err := n.Normalize(path, IconSpec{ID: "ICON_X", File: "wide.png", ContentSize: size})
		if err != nil {
			t.Fatalf("Normalize(size %d): %v", size, err)
		}
		if canvas.Width() != IconSize || canvas.Height() != IconSize {
			t.Errorf("size %d: canvas = %dx%d, want %dx%d",
				size, canvas.Width(), canvas.Height(), IconSize, IconSize)
		}
	}
}

func TestNormalizeCentering(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "icon.png", 40, 40, fill(color.NRGBA{R: 1, G: 2, B: 3, A: 255}))
	path := filepath.Join(dir, "icon.png")

	tests := []struct {
		content int
		offset  int
	}{
		{20, 5},
		{21, 4}, // floor((30-21)/2)
		{30, 0},
		{1, 14},
	}
	for _, tt := range tests {
		n := NewNormalizer(DefaultImaging(), ProfileCentered, IconSize)
		canvas, err := n.Normalize(path, IconSpec{ID: "ICON_X", File: "icon.png", ContentSize: tt.content})
		if err != nil {
			t.Fatalf("Normalize: %v", err)
		}
		lo, hi := tt.offset, tt.offset+tt.content
		for y := range IconSize {
			for x := range IconSize {
				a := canvas.NRGBAAt(x, y).A
				inside := x >= lo && x < hi && y >= lo && y < hi
				if inside && a != 255 {
					t.Fatalf("content %d: (%d, %d) alpha = %d, want 255", tt.content, x, y, a)
				}
				if !inside && a != 0 {
					t.Fatalf("content %d: (%d, %d) alpha = %d, want 0", tt.content, x, y, a)
				}
			}
		}
	}
}

func TestNormalizeSimpleFillsCanvas(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "icon.png", 64, 64, fill(color.NRGBA{G: 255, A: 255}))

	n := NewNormalizer(nil, ProfileSimple, IconSize)
	canvas, err := n.Normalize(filepath.Join(dir, "icon.png"),
		IconSpec{ID: "ICON_CLOSE", File: "icon.png", ContentSize: 20})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	for _, pt := range []image.Point{{0, 0}, {29, 29}, {0, 29}, {15, 15}} {
		if c := canvas.NRGBAAt(pt.X, pt.Y); c != (color.NRGBA{G: 255, A: 255}) {
			t.Errorf("pixel %v = %v, want opaque green (simple profile ignores content size)", pt, c)
		}
	}
}

func writeGrayPNG(t *testing.T, path string, size int) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, size, size))
	for i := range img.Pix {
		img.Pix[i] = 90
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestNormalizeGrayIsOpaque(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gray.png")
	writeGrayPNG(t, path, 30)

	n := NewNormalizer(nil, ProfileSimple, IconSize)
	canvas, err := n.Normalize(path, IconSpec{ID: "ICON_X", File: "gray.png", ContentSize: 30})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if c := canvas.NRGBAAt(3, 3); c != (color.NRGBA{R: 90, G: 90, B: 90, A: 255}) {
		t.Errorf("pixel = %v, want opaque gray", c)
	}
}

func TestNormalizeDecodeError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(path, []byte("\x89PNG truncated"), 0o644); err != nil {
		t.Fatal(err)
	}

	n := NewNormalizer(nil, ProfileSimple, IconSize)
	if _, err := n.Normalize(path, IconSpec{ID: "ICON_X", File: "bad.png", ContentSize: 30}); !errors.Is(err, ErrDecode) {
		t.Errorf("Normalize error = %v, want ErrDecode", err)
	}
}

// stubImaging records calls and returns fixed-size pixmaps.
type stubImaging struct {
	resized []int
	failOn  string
}

func (s *stubImaging) Decode(path string) (*Pixmap, error) {
	if s.failOn == "decode" {
		return nil, errors.New("boom")
	}
	p := NewPixmap(8, 8)
	p.Fill(color.NRGBA{R: 255, A: 255})
	return p, nil
}

func (s *stubImaging) Resize(src *Pixmap, size int) (*Pixmap, error) {
	s.resized = append(s.resized, size)
	if s.failOn == "resize" {
		return nil, errors.New("boom")
	}
	p := NewPixmap(size, size)
	p.Fill(src.NRGBAAt(0, 0))
	return p, nil
}

func (s *stubImaging) CompositeCentered(canvas, content *Pixmap) error {
	return DefaultImaging().CompositeCentered(canvas, content)
}

func TestNormalizeUsesImaging(t *testing.T) {
	stub := &stubImaging{}
	n := NewNormalizer(stub, ProfileCentered, IconSize)
	if _, err := n.Normalize("unused", IconSpec{ID: "ICON_X", File: "x.png", ContentSize: 12}); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(stub.resized) != 1 || stub.resized[0] != 12 {
		t.Errorf("Resize sizes = %v, want [12]", stub.resized)
	}

	for _, stage := range []string{"decode", "resize"} {
		n := NewNormalizer(&stubImaging{failOn: stage}, ProfileCentered, IconSize)
		if _, err := n.Normalize("unused", IconSpec{ID: "ICON_X", File: "x.png", ContentSize: 12}); !errors.Is(err, ErrDecode) {
			t.Errorf("%s failure: error = %v, want ErrDecode", stage, err)
		}
	}
}
