// Package image provides decoding, resampling and compositing helpers for
// iconbake's imaging backends.
//
// All helpers work on *image.NRGBA: straight-alpha 8-bit RGBA with the
// origin at (0, 0) and a stride of exactly 4*width.
package image

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // registered decoder
	_ "image/png"  // registered decoder
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp" // registered decoder
	"golang.org/x/image/draw"
)

// I/O errors.
var (
	// ErrEmptyImage is returned when a decoded image has no pixels.
	ErrEmptyImage = errors.New("image: empty image")
)

// Load decodes the image stored at path.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from r, auto-detecting the format, and converts it
// to straight-alpha RGBA.
func Decode(r io.Reader) (*image.NRGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	return ToNRGBA(img), nil
}

// ToNRGBA converts any image to a freshly allocated *image.NRGBA anchored at
// the origin. Sources without an alpha channel come out fully opaque.
func ToNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))

	// Fast path: straight alpha already, copy row by row.
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			srcStart := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:], nrgba.Pix[srcStart:srcStart+width*4])
		}
		return dst
	}

	// Everything else goes through the premultiplied model and is
	// un-premultiplied by the destination.
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}
