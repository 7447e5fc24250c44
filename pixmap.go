package iconbake

import (
	"image"
	"image/color"

	intImage "github.com/gogpu/iconbake/internal/image"
)

// Pixmap is a rectangular 8-bit RGBA pixel buffer with straight
// (non-premultiplied) alpha. It is used both for decoded source images and
// for the fixed-size canvas handed to the encoder.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA, 4 bytes per pixel, row-major
}

// NewPixmap creates a fully transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetNRGBA sets the color of a single pixel. Out-of-bounds writes are ignored.
func (p *Pixmap) SetNRGBA(x, y int, c color.NRGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// NRGBAAt returns the color of a single pixel, or transparent black when
// (x, y) is outside the pixmap.
func (p *Pixmap) NRGBAAt(x, y int) color.NRGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Fill sets every pixel to c.
func (p *Pixmap) Fill(c color.NRGBA) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// ToImage converts the pixmap to an *image.NRGBA. The pixel data is copied.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// View returns an *image.NRGBA sharing the pixmap's pixels, so drawing
// into the view modifies the pixmap.
func (p *Pixmap) View() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// FromImage creates a pixmap from any image. Images without an alpha
// channel come out fully opaque.
func FromImage(img image.Image) *Pixmap {
	nrgba := intImage.ToNRGBA(img)
	return &Pixmap{
		width:  nrgba.Rect.Dx(),
		height: nrgba.Rect.Dy(),
		data:   nrgba.Pix,
	}
}

// PixmapFromNRGBA adopts the pixels of img without copying when img is
// anchored at the origin and tightly packed, and copies otherwise. The
// caller must not modify img afterwards.
func PixmapFromNRGBA(img *image.NRGBA) *Pixmap {
	b := img.Bounds()
	if b.Min != (image.Point{}) || img.Stride != b.Dx()*4 {
		return FromImage(img)
	}
	return &Pixmap{width: b.Dx(), height: b.Dy(), data: img.Pix[:b.Dx()*b.Dy()*4]}
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.NRGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
