package iconbake

import (
	"fmt"
	"io"
	"strings"
)

// WriteHeader writes an icons.h declaring the constants the icons_data
// artifact is built against: canvas size, icon count, one index macro per
// table entry, the transparent marker and the extern array declaration.
func WriteHeader(w io.Writer, table Table, size int) error {
	var sb strings.Builder
	sb.WriteString("#ifndef ICONS_H\n#define ICONS_H\n\n")
	fmt.Fprintf(&sb, "#define ICON_SIZE %d\n", size)
	fmt.Fprintf(&sb, "#define ICON_NUMBER %d\n\n", len(table))
	for i, spec := range table {
		fmt.Fprintf(&sb, "#define %s %d\n", spec.ID, i)
	}
	fmt.Fprintf(&sb, "\n#define ICON_TRANSPARENT %s\n\n", TransparentMarker)
	sb.WriteString("extern unsigned int icons_data[ICON_NUMBER][ICON_SIZE * ICON_SIZE];\n\n")
	sb.WriteString("#endif\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("iconbake: write header: %w", err)
	}
	return nil
}
