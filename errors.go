package iconbake

import "errors"

// Errors returned by the baking pipeline.
var (
	// ErrAssetsDirMissing is returned when the icon asset directory does not
	// exist. Nothing is decoded or written in that case.
	ErrAssetsDirMissing = errors.New("iconbake: asset directory missing")

	// ErrFallbackMissing is returned when an icon's own file and the fallback
	// asset are both absent.
	ErrFallbackMissing = errors.New("iconbake: fallback asset missing")

	// ErrDecode is returned when a source image cannot be decoded or resized.
	ErrDecode = errors.New("iconbake: decode failed")

	// ErrProfileRequired is returned by New when no baking profile is set.
	ErrProfileRequired = errors.New("iconbake: baking profile required")

	// ErrInvalidTable is returned when the icon table fails validation.
	ErrInvalidTable = errors.New("iconbake: invalid icon table")

	// ErrCanvasSize is returned when a canvas does not have the configured
	// square size.
	ErrCanvasSize = errors.New("iconbake: canvas size mismatch")
)
