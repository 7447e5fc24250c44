// Package iconbake bakes a fixed set of PNG icons into a C array literal for
// renderers that cannot decode images themselves.
//
// # Overview
//
// Each icon in a [Table] goes through three stages, by default one icon at
// a time in table order:
//
//   - [Resolver] maps the icon to a file in the asset directory, substituting
//     the fallback asset when the icon's own file is missing.
//   - [Normalizer] decodes the file, resizes its content and composites it
//     centered onto a transparent ICON_SIZE x ICON_SIZE canvas.
//   - [Encode] classifies every canvas pixel against the profile's alpha
//     threshold and [Emitter] writes the designated-index initializer block.
//
// # Quick Start
//
//	b, err := iconbake.New(iconbake.WithProfile(iconbake.ProfileSimple))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := b.BakeFile(iconbake.DefaultOutput); err != nil {
//	    log.Fatal(err)
//	}
//
// # Output Format
//
// The artifact is a C translation unit:
//
//	#include "icons.h"
//
//	unsigned int icons_data[ICON_NUMBER][ICON_SIZE * ICON_SIZE] = {
//	    [ICON_CLOSE] = {
//	        0xFF000000, 0x00FF0000, ...
//	    },
//	};
//
// Opaque pixels are 0x00RRGGBB, pixels below the threshold are
// [TransparentMarker]. The renderer indexes each block as y*ICON_SIZE + x.
//
// # Profiles
//
// The threshold and sizing rule are a versioned policy shared with the
// renderer. [ProfileSimple] stretches every icon over the whole canvas with
// threshold 200; [ProfileCentered] centers per-icon content sizes with
// threshold 150. There is no default: [New] requires [WithProfile].
//
// # Imaging Backends
//
// Decoding, resampling and compositing sit behind the [Imaging] interface.
// [DefaultImaging] uses golang.org/x/image with a Lanczos-3 kernel; the
// backend package registers alternatives by name.
//
// # Concurrency
//
// A run decodes each distinct source file once and shares the decoded
// pixmap between icons. [WithWorkers] spreads icons over a worker pool; the
// artifact is byte-identical for any worker count.
package iconbake
