package iconbake

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a uint8
		threshold  uint8
		want       Code
	}{
		{"opaque red", 255, 0, 0, 255, 200, 0x00FF0000},
		{"opaque mixed", 0x12, 0x34, 0x56, 255, 200, 0x00123456},
		{"opaque black", 0, 0, 0, 255, 200, 0x00000000},
		{"at threshold", 1, 2, 3, 200, 200, 0x00010203},
		{"below threshold", 1, 2, 3, 199, 200, TransparentMarker},
		{"centered threshold at", 9, 9, 9, 150, 150, 0x00090909},
		{"centered threshold below", 9, 9, 9, 149, 150, TransparentMarker},
		{"transparent with color", 255, 255, 255, 0, 150, TransparentMarker},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.r, tt.g, tt.b, tt.a, tt.threshold)
			if got != tt.want {
				t.Errorf("Classify = %v, want %v", got, tt.want)
			}
			if !got.IsTransparent() && got>>24 != 0 {
				t.Errorf("opaque code %v has a non-zero high byte", got)
			}
		})
	}
}

func TestCodeRGBAndString(t *testing.T) {
	c := Opaque(0xAB, 0xCD, 0xEF)
	if r, g, b := c.RGB(); r != 0xAB || g != 0xCD || b != 0xEF {
		t.Errorf("RGB() = %#x %#x %#x", r, g, b)
	}
	if got := c.String(); got != "0x00ABCDEF" {
		t.Errorf("String() = %q, want 0x00ABCDEF", got)
	}
	if got := TransparentMarker.String(); got != "0xFF000000" {
		t.Errorf("TransparentMarker.String() = %q, want 0xFF000000", got)
	}
	if got := string(appendCode(nil, c)); got != c.String() {
		t.Errorf("appendCode = %q, want %q", got, c.String())
	}

	parsed, err := ParseCode("0x00ABCDEF")
	if err != nil || parsed != c {
		t.Errorf("ParseCode = %v, %v; want %v", parsed, err, c)
	}
	if _, err := ParseCode("0xZZ"); err == nil {
		t.Error("ParseCode of garbage should fail")
	}
}

func TestEncodeRowMajor(t *testing.T) {
	canvas := NewPixmap(3, 3)
	canvas.SetNRGBA(2, 0, color.NRGBA{R: 1, A: 255}) // index 2
	canvas.SetNRGBA(0, 1, color.NRGBA{G: 2, A: 255}) // index 3
	canvas.SetNRGBA(1, 2, color.NRGBA{B: 3, A: 255}) // index 7

	icon, err := Encode(canvas, "ICON_T", 3, 150)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(icon.Codes) != 9 {
		t.Fatalf("len(Codes) = %d, want 9", len(icon.Codes))
	}
	want := map[int]Code{2: 0x00010000, 3: 0x00000200, 7: 0x00000003}
	for i, c := range icon.Codes {
		w, ok := want[i]
		if !ok {
			w = TransparentMarker
		}
		if c != w {
			t.Errorf("code[%d] = %v, want %v", i, c, w)
		}
	}
}

func TestEncodeWrongSize(t *testing.T) {
	if _, err := Encode(NewPixmap(3, 4), "ICON_T", 3, 150); !errors.Is(err, ErrCanvasSize) {
		t.Errorf("Encode error = %v, want ErrCanvasSize", err)
	}
}

func TestEmitterExactBytes(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, 2)
	if err := e.Begin(); err != nil {
		t.Fatal(err)
	}
	icons := []EncodedIcon{
		{ID: "ICON_A", Codes: []Code{0x00FF0000, TransparentMarker, 0x00000001, 0x00ABCDEF}},
		{ID: "ICON_B", Codes: []Code{TransparentMarker, TransparentMarker, TransparentMarker, TransparentMarker}},
	}
	for _, icon := range icons {
		if err := e.WriteIcon(icon); err != nil {
			t.Fatal(err)
		}
	}
	if err := e.End(); err != nil {
		t.Fatal(err)
	}

	want := "#include \"icons.h\"\n" +
		"\n" +
		"unsigned int icons_data[ICON_NUMBER][ICON_SIZE * ICON_SIZE] = {\n" +
		"    [ICON_A] = {\n" +
		"        0x00FF0000, 0xFF000000, \n" +
		"        0x00000001, 0x00ABCDEF, \n" +
		"        \n" +
		"    },\n" +
		"    [ICON_B] = {\n" +
		"        0xFF000000, 0xFF000000, \n" +
		"        0xFF000000, 0xFF000000, \n" +
		"        \n" +
		"    },\n" +
		"};\n"
	if got := buf.String(); got != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
	if e.Count() != 2 {
		t.Errorf("Count() = %d, want 2", e.Count())
	}

	parsed, err := ParseArtifact(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ParseArtifact: %v", err)
	}
	if len(parsed) != 2 || parsed[0].ID != "ICON_A" || parsed[1].ID != "ICON_B" {
		t.Fatalf("ParseArtifact = %+v", parsed)
	}
	for i, c := range icons[0].Codes {
		if parsed[0].Codes[i] != c {
			t.Errorf("parsed code[%d] = %v, want %v", i, parsed[0].Codes[i], c)
		}
	}
}

func TestEmitterRejectsWrongLength(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, 2)
	err := e.WriteIcon(EncodedIcon{ID: "ICON_A", Codes: []Code{1, 2, 3}})
	if !errors.Is(err, ErrCanvasSize) {
		t.Errorf("WriteIcon error = %v, want ErrCanvasSize", err)
	}
	if buf.Len() != 0 || e.Count() != 0 {
		t.Error("a rejected icon must not be written")
	}
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("disk full")
	}
	w.n--
	return len(p), nil
}

func TestEmitterStickyError(t *testing.T) {
	e := NewEmitter(&failWriter{n: 1}, 1)
	if err := e.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	err := e.WriteIcon(EncodedIcon{ID: "ICON_A", Codes: []Code{1}})
	if err == nil {
		t.Fatal("WriteIcon should fail")
	}
	if err2 := e.End(); !errors.Is(err2, err) {
		t.Errorf("End() = %v, want sticky %v", err2, err)
	}
	if e.Count() != 0 {
		t.Errorf("Count() = %d, want 0", e.Count())
	}
}

func TestParseArtifactUnterminated(t *testing.T) {
	_, err := ParseArtifact(strings.NewReader("    [ICON_A] = {\n        0x00000001, \n"))
	if err == nil {
		t.Error("ParseArtifact of an unterminated block should fail")
	}
}
