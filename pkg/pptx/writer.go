package pptx

import (
	"archive/zip"
	"bytes"
	"crypto/sha1"
	"encoding/xml"
	"fmt"
	"strings"
)

// Deck accumulates output slides and serializes them as one .pptx package.
// The zero value is not usable; call NewDeck.
type Deck struct {
	slides     []slideSpec
	media      []mediaPart
	mediaIndex map[[sha1.Size]byte]int
}

type slideSpec struct {
	text     string
	style    TextStyle
	mediaIdx int // index into media, -1 for no background picture
}

type mediaPart struct {
	data []byte
	ext  string
}

// NewDeck returns an empty deck on the fixed 16:9 canvas.
func NewDeck() *Deck {
	return &Deck{mediaIndex: make(map[[sha1.Size]byte]int)}
}

// SlideCount reports how many slides have been added.
func (d *Deck) SlideCount() int {
	return len(d.slides)
}

// AddTextSlide appends one slide: black background, optional full-bleed
// background picture, and a single centered textbox holding text as one run.
// Embedded newlines stay inside that run. If background is non-nil but not a
// recognizable PNG/JPEG/GIF/BMP, the deck is left unchanged and an error is
// returned so the caller can retry without the image.
func (d *Deck) AddTextSlide(text string, style TextStyle, background []byte) error {
	mediaIdx := -1
	if background != nil {
		ext, ok := sniffImage(background)
		if !ok {
			return fmt.Errorf("unsupported background image format")
		}
		mediaIdx = d.internMedia(background, ext)
	}
	d.slides = append(d.slides, slideSpec{text: text, style: style, mediaIdx: mediaIdx})
	return nil
}

// internMedia stores image bytes once per unique content.
func (d *Deck) internMedia(data []byte, ext string) int {
	key := sha1.Sum(data)
	if idx, ok := d.mediaIndex[key]; ok {
		return idx
	}
	idx := len(d.media)
	d.media = append(d.media, mediaPart{data: data, ext: ext})
	d.mediaIndex[key] = idx
	return idx
}

// sniffImage identifies an image payload by its magic bytes.
func sniffImage(data []byte) (ext string, ok bool) {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return "png", true
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return "jpeg", true
	case bytes.HasPrefix(data, []byte("GIF87a")) || bytes.HasPrefix(data, []byte("GIF89a")):
		return "gif", true
	case bytes.HasPrefix(data, []byte("BM")):
		return "bmp", true
	}
	return "", false
}

// Bytes serializes the deck. Part order is fixed and zip entries carry no
// timestamps, so identical decks serialize to identical bytes.
func (d *Deck) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", d.contentTypesXML()},
		{"_rels/.rels", rootRelsXML},
		{"docProps/app.xml", appPropsXML},
		{"docProps/core.xml", corePropsXML},
		{"ppt/presentation.xml", d.presentationXML()},
		{"ppt/_rels/presentation.xml.rels", d.presentationRelsXML()},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML},
		{"ppt/theme/theme1.xml", themeXML},
	}
	for i, s := range d.slides {
		parts = append(parts,
			struct{ name, data string }{
				fmt.Sprintf("ppt/slides/slide%d.xml", i+1),
				slideBodyXML(s),
			},
			struct{ name, data string }{
				fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1),
				d.slideRelsXML(s),
			},
		)
	}

	for _, p := range parts {
		if err := writeZipPart(zw, p.name, []byte(p.data)); err != nil {
			return nil, err
		}
	}
	for i, m := range d.media {
		name := fmt.Sprintf("ppt/media/image%d.%s", i+1, m.ext)
		if err := writeZipPart(zw, name, m.data); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close package: %w", err)
	}
	return buf.Bytes(), nil
}

func writeZipPart(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return fmt.Errorf("create part %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write part %s: %w", name, err)
	}
	return nil
}

func (d *Deck) contentTypesXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	exts := make(map[string]bool)
	for _, m := range d.media {
		if !exts[m.ext] {
			exts[m.ext] = true
			mime := "image/" + m.ext
			fmt.Fprintf(&b, `<Default Extension="%s" ContentType="%s"/>`, m.ext, mime)
		}
	}
	b.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	for i := range d.slides {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i+1)
	}
	b.WriteString(`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>`)
	b.WriteString(`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>`)
	b.WriteString(`</Types>`)
	return b.String()
}

func (d *Deck) presentationXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:presentation xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsDrawing, nsRelationships, nsPresentation)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	if len(d.slides) > 0 {
		b.WriteString(`<p:sldIdLst>`)
		for i := range d.slides {
			fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, i+2)
		}
		b.WriteString(`</p:sldIdLst>`)
	}
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/>`, slideWidthEMU, slideHeightEMU)
	b.WriteString(`<p:notesSz cx="6858000" cy="9144000"/>`)
	b.WriteString(`</p:presentation>`)
	return b.String()
}

func (d *Deck) presentationRelsXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	fmt.Fprintf(&b, `<Relationship Id="rId1" Type="%s/slideMaster" Target="slideMasters/slideMaster1.xml"/>`, nsRelTypeBase)
	for i := range d.slides {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="%s/slide" Target="slides/slide%d.xml"/>`, i+2, nsRelTypeBase, i+1)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

// Textbox geometry: full canvas width, 7in tall, vertically centered,
// 0.5in insets on all four sides.
const (
	textboxHeightEMU = 7 * emuPerInch
	textboxTopEMU    = (slideHeightEMU - textboxHeightEMU) / 2
	textInsetEMU     = emuPerInch / 2
)

func slideBodyXML(s slideSpec) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsDrawing, nsRelationships, nsPresentation)
	b.WriteString(`<p:cSld>`)

	// Solid black slide background. Uncovered canvas, or a missing
	// picture, shows as black.
	b.WriteString(`<p:bg><p:bgPr><a:solidFill><a:srgbClr val="000000"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`)

	b.WriteString(`<p:spTree>`)
	b.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	b.WriteString(`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`)

	if s.mediaIdx >= 0 {
		// Background picture stretched over the whole canvas. Aspect
		// ratio is intentionally not preserved.
		b.WriteString(`<p:pic><p:nvPicPr><p:cNvPr id="2" name="Background"/><p:cNvPicPr><a:picLocks noChangeAspect="1"/></p:cNvPicPr><p:nvPr/></p:nvPicPr>`)
		b.WriteString(`<p:blipFill><a:blip r:embed="rId2"/><a:stretch><a:fillRect/></a:stretch></p:blipFill>`)
		fmt.Fprintf(&b, `<p:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr></p:pic>`, slideWidthEMU, slideHeightEMU)
	}

	b.WriteString(`<p:sp><p:nvSpPr><p:cNvPr id="3" name="Content"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`)
	fmt.Fprintf(&b, `<p:spPr><a:xfrm><a:off x="0" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr>`,
		textboxTopEMU, slideWidthEMU, textboxHeightEMU)
	b.WriteString(`<p:txBody>`)
	fmt.Fprintf(&b, `<a:bodyPr wrap="square" lIns="%d" tIns="%d" rIns="%d" bIns="%d" anchor="ctr"/><a:lstStyle/>`,
		textInsetEMU, textInsetEMU, textInsetEMU, textInsetEMU)

	// One centered paragraph, one run. Newlines in the text are kept as
	// literal characters inside the run.
	b.WriteString(`<a:p><a:pPr algn="ctr"><a:spcAft><a:spcPts val="0"/></a:spcAft></a:pPr>`)
	bold := "0"
	if s.style.Bold {
		bold = "1"
	}
	fmt.Fprintf(&b, `<a:r><a:rPr lang="en-US" sz="%d" b="%s" dirty="0"><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:latin typeface="%s"/></a:rPr><a:t>%s</a:t></a:r>`,
		s.style.SizePt*100, bold, s.style.Color.Hex(), escapeXML(s.style.Font), escapeXML(s.text))
	b.WriteString(`</a:p></p:txBody></p:sp>`)

	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:sld>`)
	return b.String()
}

func (d *Deck) slideRelsXML(s slideSpec) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	fmt.Fprintf(&b, `<Relationship Id="rId1" Type="%s/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>`, nsRelTypeBase)
	if s.mediaIdx >= 0 {
		m := d.media[s.mediaIdx]
		fmt.Fprintf(&b, `<Relationship Id="rId2" Type="%s/image" Target="../media/image%d.%s"/>`, nsRelTypeBase, s.mediaIdx+1, m.ext)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func escapeXML(s string) string {
	var b bytes.Buffer
	// EscapeText never fails on a bytes.Buffer.
	xml.EscapeText(&b, []byte(s)) //nolint:errcheck
	return b.String()
}
