package pptx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

var testStyle = TextStyle{Font: "Arial", SizePt: 72, Color: RGB{R: 255, G: 255, B: 0}, Bold: true}

// tiny valid PNG header plus padding; enough for format sniffing
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)

func readZipPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a zip: %v", err)
	}
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				t.Fatal(err)
			}
			defer rc.Close()
			b, err := io.ReadAll(rc)
			if err != nil {
				t.Fatal(err)
			}
			return string(b)
		}
	}
	t.Fatalf("part %s not found in package", name)
	return ""
}

func TestBytesDeterministic(t *testing.T) {
	build := func() []byte {
		d := NewDeck()
		if err := d.AddTextSlide("HELLO", testStyle, pngBytes); err != nil {
			t.Fatal(err)
		}
		if err := d.AddTextSlide("line one\nline two", testStyle, pngBytes); err != nil {
			t.Fatal(err)
		}
		out, err := d.Bytes()
		if err != nil {
			t.Fatal(err)
		}
		return out
	}

	if !bytes.Equal(build(), build()) {
		t.Error("identical decks serialized to different bytes")
	}
}

func TestPackageParts(t *testing.T) {
	d := NewDeck()
	if err := d.AddTextSlide("one", testStyle, nil); err != nil {
		t.Fatal(err)
	}
	out, err := d.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	for _, part := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/_rels/slide1.xml.rels",
	} {
		readZipPart(t, out, part)
	}

	pres := readZipPart(t, out, "ppt/presentation.xml")
	if !strings.Contains(pres, `cx="12192000" cy="6858000"`) {
		t.Error("presentation part missing 16:9 canvas size")
	}
}

func TestSlideStyling(t *testing.T) {
	d := NewDeck()
	if err := d.AddTextSlide("HELLO", testStyle, nil); err != nil {
		t.Fatal(err)
	}
	out, err := d.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	slide := readZipPart(t, out, "ppt/slides/slide1.xml")
	for _, want := range []string{
		`sz="7200"`,
		`b="1"`,
		`val="FFFF00"`,
		`typeface="Arial"`,
		`algn="ctr"`,
		`anchor="ctr"`,
		`lIns="457200"`,
		`<a:srgbClr val="000000"/>`, // black background fill
		`<a:t>HELLO</a:t>`,
	} {
		if !strings.Contains(slide, want) {
			t.Errorf("slide XML missing %s", want)
		}
	}
	if strings.Contains(slide, "<p:pic>") {
		t.Error("slide without background should have no picture shape")
	}
}

func TestNewlinesStayInOneRun(t *testing.T) {
	d := NewDeck()
	if err := d.AddTextSlide("first\nsecond", TextStyle{Font: "Arial", SizePt: 65, Color: RGB{R: 255, G: 255, B: 255}}, nil); err != nil {
		t.Fatal(err)
	}
	out, err := d.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	slide := readZipPart(t, out, "ppt/slides/slide1.xml")
	if got := strings.Count(slide, "<a:r>"); got != 1 {
		t.Errorf("run count = %d, want 1", got)
	}
	if got := strings.Count(slide, "<a:p>"); got != 1 {
		t.Errorf("paragraph count = %d, want 1", got)
	}
}

func TestBackgroundPicture(t *testing.T) {
	d := NewDeck()
	if err := d.AddTextSlide("verse", testStyle, pngBytes); err != nil {
		t.Fatal(err)
	}
	out, err := d.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	slide := readZipPart(t, out, "ppt/slides/slide1.xml")
	if !strings.Contains(slide, `<a:blip r:embed="rId2"/>`) {
		t.Error("slide missing background picture blip")
	}
	if !strings.Contains(slide, `<a:ext cx="12192000" cy="6858000"/>`) {
		t.Error("background picture not stretched to full canvas")
	}
	rels := readZipPart(t, out, "ppt/slides/_rels/slide1.xml.rels")
	if !strings.Contains(rels, "../media/image1.png") {
		t.Error("slide rels missing media target")
	}
	readZipPart(t, out, "ppt/media/image1.png")
}

func TestMediaDeduplication(t *testing.T) {
	d := NewDeck()
	for i := 0; i < 3; i++ {
		if err := d.AddTextSlide("slide", testStyle, pngBytes); err != nil {
			t.Fatal(err)
		}
	}
	if len(d.media) != 1 {
		t.Errorf("media parts = %d, want 1 for identical image bytes", len(d.media))
	}
}

func TestAddTextSlideRejectsUnknownImage(t *testing.T) {
	d := NewDeck()
	err := d.AddTextSlide("text", testStyle, []byte("definitely not an image"))
	if err == nil {
		t.Fatal("expected error for unrecognizable image bytes")
	}
	if d.SlideCount() != 0 {
		t.Errorf("SlideCount = %d after failed add, want 0", d.SlideCount())
	}
}

func TestSniffImage(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		ext  string
		ok   bool
	}{
		{"png", pngBytes, "png", true},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0}, "jpeg", true},
		{"gif", []byte("GIF89a......"), "gif", true},
		{"bmp", []byte("BM......"), "bmp", true},
		{"garbage", []byte("hello"), "", false},
		{"empty", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, ok := sniffImage(tt.data)
			if ext != tt.ext || ok != tt.ok {
				t.Errorf("sniffImage() = (%q, %v), want (%q, %v)", ext, ok, tt.ext, tt.ok)
			}
		})
	}
}

func TestXMLEscaping(t *testing.T) {
	d := NewDeck()
	if err := d.AddTextSlide("Fish & <Chips>", testStyle, nil); err != nil {
		t.Fatal(err)
	}
	out, err := d.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	slide := readZipPart(t, out, "ppt/slides/slide1.xml")
	if !strings.Contains(slide, "Fish &amp; &lt;Chips&gt;") {
		t.Error("special characters not escaped in run text")
	}
}

func TestRGBHex(t *testing.T) {
	if got := (RGB{R: 255, G: 255, B: 0}).Hex(); got != "FFFF00" {
		t.Errorf("Hex() = %q, want FFFF00", got)
	}
	if got := (RGB{R: 1, G: 2, B: 3}).Hex(); got != "010203" {
		t.Errorf("Hex() = %q, want 010203", got)
	}
}
