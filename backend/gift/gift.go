// Package gift provides an iconbake imaging backend built on
// github.com/disintegration/gift.
//
// Importing the package registers the backend as "gift":
//
//	import _ "github.com/gogpu/iconbake/backend/gift"
package gift

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/gift"
	"github.com/gogpu/iconbake"
	"github.com/gogpu/iconbake/backend"
	intImage "github.com/gogpu/iconbake/internal/image"
)

var errEmptySource = errors.New("gift: empty source image")

func init() {
	backend.Register(backend.BackendGift, func() iconbake.Imaging {
		return New()
	})
}

// Imaging resamples with gift's Lanczos filter and composites with gift's
// over operator.
type Imaging struct {
	resampling gift.Resampling
}

// New returns a gift backend using Lanczos resampling.
func New() *Imaging {
	return &Imaging{resampling: gift.LanczosResampling}
}

// NewWithResampling returns a gift backend using r, e.g.
// gift.CubicResampling.
func NewWithResampling(r gift.Resampling) *Imaging {
	return &Imaging{resampling: r}
}

// Decode reads the image at path.
func (g *Imaging) Decode(path string) (*iconbake.Pixmap, error) {
	img, err := intImage.Load(path)
	if err != nil {
		return nil, err
	}
	return iconbake.PixmapFromNRGBA(img), nil
}

// Resize scales src to size x size.
func (g *Imaging) Resize(src *iconbake.Pixmap, size int) (*iconbake.Pixmap, error) {
	if size <= 0 {
		return nil, fmt.Errorf("gift: invalid size %d", size)
	}
	if src.Width() == 0 || src.Height() == 0 {
		return nil, errEmptySource
	}

	f := gift.New(gift.Resize(size, size, g.resampling))
	dst := image.NewNRGBA(f.Bounds(src.Bounds()))
	f.Draw(dst, src.View())
	return iconbake.PixmapFromNRGBA(dst), nil
}

// CompositeCentered draws content over canvas at the centering offset.
func (g *Imaging) CompositeCentered(canvas, content *iconbake.Pixmap) error {
	if content.Width() > canvas.Width() || content.Height() > canvas.Height() {
		return fmt.Errorf("gift: content %dx%d larger than canvas %dx%d",
			content.Width(), content.Height(), canvas.Width(), canvas.Height())
	}
	pt := image.Pt(
		iconbake.CenterOffset(canvas.Width(), content.Width()),
		iconbake.CenterOffset(canvas.Height(), content.Height()),
	)
	gift.New().DrawAt(canvas.View(), content.View(), pt, gift.OverOperator)
	return nil
}
