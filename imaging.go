package iconbake

import (
	"fmt"
	"image"

	intImage "github.com/gogpu/iconbake/internal/image"
	"golang.org/x/image/draw"
)

// Imaging is the capability set the normalizer needs from an imaging
// backend. Implementations must return pixmaps with four channels and must
// be deterministic for identical inputs.
type Imaging interface {
	// Decode reads the image at path. Sources without alpha are returned
	// fully opaque.
	Decode(path string) (*Pixmap, error)

	// Resize scales src to a size x size square.
	Resize(src *Pixmap, size int) (*Pixmap, error)

	// CompositeCentered draws content over canvas with alpha blending, at
	// offset floor((canvas-content)/2) on both axes.
	CompositeCentered(canvas, content *Pixmap) error
}

// CenterOffset returns the top-left coordinate at which content of side
// content is placed on a canvas of side canvas.
func CenterOffset(canvas, content int) int {
	return (canvas - content) / 2
}

// DefaultImaging returns the built-in imaging backend. It decodes with the
// registered standard decoders, resamples with a Lanczos-3 kernel and
// composites with Porter-Duff source-over.
func DefaultImaging() Imaging {
	return &xdrawImaging{interp: intImage.Lanczos3}
}

// NewXDrawImaging returns the built-in backend using interp for resampling,
// e.g. draw.CatmullRom.
func NewXDrawImaging(interp draw.Interpolator) Imaging {
	if interp == nil {
		interp = intImage.Lanczos3
	}
	return &xdrawImaging{interp: interp}
}

type xdrawImaging struct {
	interp draw.Interpolator
}

func (x *xdrawImaging) Decode(path string) (*Pixmap, error) {
	img, err := intImage.Load(path)
	if err != nil {
		return nil, err
	}
	return PixmapFromNRGBA(img), nil
}

func (x *xdrawImaging) Resize(src *Pixmap, size int) (*Pixmap, error) {
	img, err := intImage.Resize(src.View(), size, size, x.interp)
	if err != nil {
		return nil, err
	}
	return PixmapFromNRGBA(img), nil
}

func (x *xdrawImaging) CompositeCentered(canvas, content *Pixmap) error {
	if content.Width() > canvas.Width() || content.Height() > canvas.Height() {
		return fmt.Errorf("iconbake: content %dx%d larger than canvas %dx%d",
			content.Width(), content.Height(), canvas.Width(), canvas.Height())
	}
	pt := image.Pt(
		CenterOffset(canvas.Width(), content.Width()),
		CenterOffset(canvas.Height(), content.Height()),
	)
	intImage.DrawOver(canvas.View(), content.View(), pt)
	return nil
}
