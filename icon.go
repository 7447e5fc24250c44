package iconbake

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IconSize is the canvas side length shared with the renderer
// (ICON_SIZE in icons.h).
const IconSize = 30

// IDPrefix is prepended by Label to short icon names.
const IDPrefix = "ICON_"

// IconSpec is the immutable configuration of one baked icon.
type IconSpec struct {
	// ID is the designated-index label, e.g. "ICON_CLOSE". It must match a
	// macro declared by the consumer's header.
	ID string

	// File is the source PNG name inside the asset directory.
	File string

	// ContentSize is the side length the icon content is resized to before
	// it is centered on the canvas.
	ContentSize int
}

// Table is the ordered list of icons baked into one artifact. Order defines
// the array index of each icon.
type Table []IconSpec

// DefaultTable returns the icon table expected by the renderer's icons.h.
// Close and minimize glyphs are drawn smaller than the full-size icons.
func DefaultTable() Table {
	return Table{
		{ID: "ICON_CLOSE", File: "close.png", ContentSize: 20},
		{ID: "ICON_MINIMIZE", File: "minus.png", ContentSize: 20},
		{ID: "ICON_WINDOWS", File: "logo.png", ContentSize: IconSize},
		{ID: "ICON_FOLDER", File: "logo.png", ContentSize: IconSize},
		{ID: "ICON_CHESS", File: "logo.png", ContentSize: IconSize},
	}
}

var cIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Label turns a short icon name such as "close" or "mini-mize" into its
// C identifier ("ICON_CLOSE", "ICON_MINI_MIZE"). Names that already carry
// the prefix are only upper-cased.
func Label(name string) string {
	s := cases.Upper(language.Und).String(strings.TrimSpace(name))
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
	if strings.HasPrefix(s, IDPrefix) {
		return s
	}
	return IDPrefix + s
}

// Validate checks the table against a canvas of the given side length.
func (t Table) Validate(canvas int) error {
	if len(t) == 0 {
		return fmt.Errorf("%w: no icons", ErrInvalidTable)
	}
	seen := make(map[string]struct{}, len(t))
	for i, spec := range t {
		if !cIdent.MatchString(spec.ID) {
			return fmt.Errorf("%w: entry %d: %q is not a C identifier", ErrInvalidTable, i, spec.ID)
		}
		if _, dup := seen[spec.ID]; dup {
			return fmt.Errorf("%w: duplicate id %s", ErrInvalidTable, spec.ID)
		}
		seen[spec.ID] = struct{}{}

		if spec.File == "" || strings.ContainsAny(spec.File, `/\`) {
			return fmt.Errorf("%w: %s: bad file name %q", ErrInvalidTable, spec.ID, spec.File)
		}
		if spec.ContentSize < 1 || spec.ContentSize > canvas {
			return fmt.Errorf("%w: %s: content size %d outside 1..%d",
				ErrInvalidTable, spec.ID, spec.ContentSize, canvas)
		}
	}
	return nil
}

// Index returns the array index of id, or -1.
func (t Table) Index(id string) int {
	for i, spec := range t {
		if spec.ID == id {
			return i
		}
	}
	return -1
}
