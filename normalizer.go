package iconbake

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/iconbake/internal/cache"
)

// Normalizer turns a source image into a fixed-size canvas according to a
// baking profile.
type Normalizer struct {
	imaging Imaging
	profile Profile
	canvas  int
	sources *cache.Cache[string, *Pixmap] // nil: decode every time
}

// NewNormalizer creates a normalizer producing canvases of side canvas.
func NewNormalizer(imaging Imaging, profile Profile, canvas int) *Normalizer {
	if imaging == nil {
		imaging = DefaultImaging()
	}
	return &Normalizer{imaging: imaging, profile: profile, canvas: canvas}
}

// Normalize decodes the image at path, resizes it to the icon's content
// size and composites it centered on a transparent canvas. The returned
// canvas is always canvas x canvas pixels. Decode and resize failures wrap
// ErrDecode.
func (n *Normalizer) Normalize(path string, spec IconSpec) (*Pixmap, error) {
	raw, err := n.decode(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	size := n.profile.ContentSize(spec, n.canvas)
	content, err := n.imaging.Resize(raw, size)
	if err != nil {
		return nil, fmt.Errorf("%w: resize %s to %d: %w", ErrDecode, path, size, err)
	}

	canvas := NewPixmap(n.canvas, n.canvas)
	if err := n.imaging.CompositeCentered(canvas, content); err != nil {
		return nil, fmt.Errorf("iconbake: composite %s: %w", spec.ID, err)
	}

	Logger().Debug("icon normalized",
		slog.String("id", spec.ID),
		slog.String("path", path),
		slog.Int("source_width", raw.Width()),
		slog.Int("source_height", raw.Height()),
		slog.Int("content_size", size),
		slog.Int("offset", CenterOffset(n.canvas, size)),
	)
	return canvas, nil
}

// withSources returns a copy of n that keeps decoded sources in c. Decoded
// pixmaps are shared between icons and must be treated as read-only.
func (n *Normalizer) withSources(c *cache.Cache[string, *Pixmap]) *Normalizer {
	cp := *n
	cp.sources = c
	return &cp
}

func (n *Normalizer) decode(path string) (*Pixmap, error) {
	if n.sources == nil {
		return n.imaging.Decode(path)
	}
	return n.sources.GetOrLoad(path, func() (*Pixmap, error) {
		return n.imaging.Decode(path)
	})
}
