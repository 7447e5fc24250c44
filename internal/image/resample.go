package image

import (
	"errors"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// ErrInvalidDimensions is returned when a target size is non-positive.
var ErrInvalidDimensions = errors.New("image: invalid dimensions")

// Lanczos3 is the windowed-sinc kernel with three lobes. It is the
// high-quality downscaling filter used for icon content.
var Lanczos3 = &draw.Kernel{Support: 3, At: lanczos3}

func lanczos3(t float64) float64 {
	if t < 0 {
		t = -t
	}
	if t < 1e-9 {
		return 1
	}
	if t >= 3 {
		return 0
	}
	pt := math.Pi * t
	return 3 * math.Sin(pt) * math.Sin(pt/3) / (pt * pt)
}

// Resize scales src to width x height with the given interpolator. A source
// that already has the requested size is copied unchanged.
func Resize(src *image.NRGBA, width, height int, interp draw.Interpolator) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	sb := src.Bounds()
	if sb.Empty() {
		return nil, ErrEmptyImage
	}

	if sb.Dx() == width && sb.Dy() == height {
		return ToNRGBA(src), nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	interp.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	return dst, nil
}
