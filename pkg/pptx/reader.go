package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"
)

// Presentation is a decoded deck: slides in document order, each slide its
// top-level shapes, each shape its paragraphs, each paragraph its run texts.
// Only text content survives decoding; styling and geometry are discarded.
type Presentation struct {
	Slides []Slide
}

// Slide holds the text-bearing shapes of one slide.
type Slide struct {
	Shapes []Shape
}

// Shape is one top-level shape that carries a text body.
type Shape struct {
	Paragraphs []Paragraph
}

// Paragraph is one paragraph's runs, in run order.
type Paragraph struct {
	Runs []string
}

// presentation.xml, reduced to the slide ID list.
type presPartXML struct {
	SlideIDs []struct {
		RelID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sldIdLst>sldId"`
}

type relationshipsXML struct {
	Rels []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// Slide XML reduced to cSld>spTree>sp>txBody>p>r>t. Matching is by local
// name, so the p: and a: namespaces need no special handling.
type slideXML struct {
	CSld struct {
		SpTree struct {
			Shapes []struct {
				TxBody *struct {
					Paragraphs []struct {
						Runs []struct {
							Text string `xml:"t"`
						} `xml:"r"`
					} `xml:"p"`
				} `xml:"txBody"`
			} `xml:"sp"`
		} `xml:"spTree"`
	} `xml:"cSld"`
}

// Open decodes a .pptx byte buffer. Any structural problem — not a zip, no
// presentation part, unreadable slide XML — is returned as an error; a deck
// with zero slides is not an error.
func Open(data []byte) (*Presentation, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open package: %w", err)
	}

	parts := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		parts[f.Name] = f
	}

	presData, err := readPart(parts, "ppt/presentation.xml")
	if err != nil {
		return nil, err
	}
	var pres presPartXML
	if err := xml.Unmarshal(presData, &pres); err != nil {
		return nil, fmt.Errorf("parse presentation part: %w", err)
	}

	relsData, err := readPart(parts, "ppt/_rels/presentation.xml.rels")
	if err != nil {
		return nil, err
	}
	var rels relationshipsXML
	if err := xml.Unmarshal(relsData, &rels); err != nil {
		return nil, fmt.Errorf("parse presentation rels: %w", err)
	}
	targets := make(map[string]string, len(rels.Rels))
	for _, r := range rels.Rels {
		targets[r.ID] = r.Target
	}

	p := &Presentation{}
	for _, id := range pres.SlideIDs {
		target, ok := targets[id.RelID]
		if !ok {
			return nil, fmt.Errorf("slide relationship %s not found", id.RelID)
		}
		slideData, err := readPart(parts, resolveTarget("ppt", target))
		if err != nil {
			return nil, err
		}
		slide, err := decodeSlide(slideData)
		if err != nil {
			return nil, fmt.Errorf("parse slide %s: %w", target, err)
		}
		p.Slides = append(p.Slides, slide)
	}

	return p, nil
}

func decodeSlide(data []byte) (Slide, error) {
	var sx slideXML
	if err := xml.Unmarshal(data, &sx); err != nil {
		return Slide{}, err
	}

	var slide Slide
	for _, sp := range sx.CSld.SpTree.Shapes {
		if sp.TxBody == nil {
			continue
		}
		shape := Shape{}
		for _, para := range sp.TxBody.Paragraphs {
			p := Paragraph{}
			for _, run := range para.Runs {
				p.Runs = append(p.Runs, run.Text)
			}
			shape.Paragraphs = append(shape.Paragraphs, p)
		}
		slide.Shapes = append(slide.Shapes, shape)
	}
	return slide, nil
}

func readPart(parts map[string]*zip.File, name string) ([]byte, error) {
	f, ok := parts[name]
	if !ok {
		return nil, fmt.Errorf("missing part %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open part %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read part %s: %w", name, err)
	}
	return data, nil
}

// resolveTarget resolves a relationship target against its source part's
// directory. Targets are usually relative ("slides/slide1.xml"); a leading
// slash means package-absolute.
func resolveTarget(baseDir, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(baseDir, target))
}
