package iconbake

import (
	"fmt"
	"io"
	"strconv"
)

// Code is one encoded pixel as the renderer reads it.
type Code uint32

// TransparentMarker is the code emitted for pixels below the alpha
// threshold. Opaque codes always have a zero high byte, so the marker never
// collides with a color.
const TransparentMarker Code = 0xFF000000

// Opaque encodes an RGB triplet as 0x00RRGGBB.
func Opaque(r, g, b uint8) Code {
	return Code(r)<<16 | Code(g)<<8 | Code(b)
}

// Classify encodes one straight-alpha pixel: the transparent marker when
// a < threshold, the opaque RGB code otherwise.
func Classify(r, g, b, a, threshold uint8) Code {
	if a < threshold {
		return TransparentMarker
	}
	return Opaque(r, g, b)
}

// IsTransparent reports whether c is the transparent marker.
func (c Code) IsTransparent() bool {
	return c == TransparentMarker
}

// RGB returns the color channels of an opaque code.
func (c Code) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// String returns the C literal for c, e.g. 0x00FF0000.
func (c Code) String() string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// EncodedIcon is the quantized pixel sequence of one icon in row-major
// order: the code for (x, y) is at index y*size + x.
type EncodedIcon struct {
	ID    string
	Codes []Code
}

// Encode walks a square canvas of side size row by row and classifies every
// pixel against threshold.
func Encode(canvas *Pixmap, id string, size int, threshold uint8) (EncodedIcon, error) {
	if canvas.Width() != size || canvas.Height() != size {
		return EncodedIcon{}, fmt.Errorf("%w: %s is %dx%d, want %dx%d",
			ErrCanvasSize, id, canvas.Width(), canvas.Height(), size, size)
	}

	codes := make([]Code, 0, size*size)
	data := canvas.Data()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := (y*size + x) * 4
			codes = append(codes, Classify(data[i], data[i+1], data[i+2], data[i+3], threshold))
		}
	}
	return EncodedIcon{ID: id, Codes: codes}, nil
}

// Source text framing the icons_data array.
const (
	fileHeader  = "#include \"icons.h\"\n\nunsigned int icons_data[ICON_NUMBER][ICON_SIZE * ICON_SIZE] = {\n"
	fileFooter  = "};\n"
	blockIndent = "    "
	rowIndent   = "        "
)

// Emitter writes the icons_data translation unit. Call Begin once, WriteIcon
// per icon in table order and End once. The first write error is sticky and
// returned by every later call.
type Emitter struct {
	w     io.Writer
	size  int
	count int
	buf   []byte
	err   error
}

// NewEmitter returns an emitter for icons of side size.
func NewEmitter(w io.Writer, size int) *Emitter {
	return &Emitter{w: w, size: size}
}

// Count returns the number of icon blocks written so far.
func (e *Emitter) Count() int {
	return e.count
}

// Begin writes the include line and the array declaration.
func (e *Emitter) Begin() error {
	return e.write([]byte(fileHeader))
}

// WriteIcon writes one designated-index initializer block. Each canvas row
// goes on its own line; the wrapping carries no meaning for the compiler.
func (e *Emitter) WriteIcon(icon EncodedIcon) error {
	if e.err != nil {
		return e.err
	}
	if len(icon.Codes) != e.size*e.size {
		return fmt.Errorf("%w: %s has %d codes, want %d",
			ErrCanvasSize, icon.ID, len(icon.Codes), e.size*e.size)
	}

	b := e.buf[:0]
	b = append(b, blockIndent+"["...)
	b = append(b, icon.ID...)
	b = append(b, "] = {\n"+rowIndent...)
	for i, c := range icon.Codes {
		b = appendCode(b, c)
		b = append(b, ", "...)
		if (i+1)%e.size == 0 {
			b = append(b, "\n"+rowIndent...)
		}
	}
	b = append(b, "\n"+blockIndent+"},\n"...)
	e.buf = b

	if err := e.write(b); err != nil {
		return err
	}
	e.count++
	return nil
}

// End closes the array initializer.
func (e *Emitter) End() error {
	return e.write([]byte(fileFooter))
}

func (e *Emitter) write(p []byte) error {
	if e.err != nil {
		return e.err
	}
	if _, err := e.w.Write(p); err != nil {
		e.err = fmt.Errorf("iconbake: write artifact: %w", err)
	}
	return e.err
}

// appendCode appends c as a 0x-prefixed, eight digit upper-case literal.
func appendCode(b []byte, c Code) []byte {
	const digits = "0123456789ABCDEF"
	b = append(b, '0', 'x')
	for shift := 28; shift >= 0; shift -= 4 {
		b = append(b, digits[(c>>uint(shift))&0xF])
	}
	return b
}

// ParseCode parses a literal produced by the emitter.
func ParseCode(s string) (Code, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("iconbake: parse code %q: %w", s, err)
	}
	return Code(v), nil
}
