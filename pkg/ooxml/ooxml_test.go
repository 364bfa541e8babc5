package ooxml

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

func readZipEntry(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("not a zip package: %v", err)
	}
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				t.Fatal(err)
			}
			defer rc.Close()
			content, err := io.ReadAll(rc)
			if err != nil {
				t.Fatal(err)
			}
			return string(content)
		}
	}
	t.Fatalf("entry %s missing from package", name)
	return ""
}

func TestDocxBuilder(t *testing.T) {
	data, err := NewDocxBuilder().
		AddHeading("Sample Paper").
		AddSubheading("Section A").
		AddParagraph("Q1. Define osmosis. <2 marks>").
		AddBold("Total: 50 marks").
		Bytes()
	if err != nil {
		t.Fatal(err)
	}

	for _, entry := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"} {
		readZipEntry(t, data, entry)
	}

	doc := readZipEntry(t, data, "word/document.xml")
	if !strings.Contains(doc, "Sample Paper") {
		t.Error("heading text missing")
	}
	if !strings.Contains(doc, "Q1. Define osmosis. &lt;2 marks&gt;") {
		t.Error("paragraph text must be XML-escaped")
	}
	if !strings.Contains(doc, `<w:jc w:val="center"/>`) {
		t.Error("heading should be centered")
	}
	if strings.Count(doc, "<w:p>") != 4 {
		t.Errorf("expected 4 paragraphs, got %d", strings.Count(doc, "<w:p>"))
	}
}

func TestPptxBuilder(t *testing.T) {
	data, err := NewPptxBuilder("Photosynthesis").
		AddSlide(Slide{
			Title:  "Light Reactions",
			Points: []string{"Occur in thylakoids", "Produce ATP & NADPH"},
			Notes:  "Mention the electron transport chain",
		}).
		AddSlide(Slide{Title: "Calvin Cycle", Points: []string{"Fixes CO2"}}).
		Bytes()
	if err != nil {
		t.Fatal(err)
	}

	// Title slide plus two content slides.
	for _, entry := range []string{
		"[Content_Types].xml",
		"ppt/presentation.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/slides/slide3.xml",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/theme/theme1.xml",
	} {
		readZipEntry(t, data, entry)
	}

	title := readZipEntry(t, data, "ppt/slides/slide1.xml")
	if !strings.Contains(title, "Photosynthesis") {
		t.Error("title slide text missing")
	}

	slide2 := readZipEntry(t, data, "ppt/slides/slide2.xml")
	if !strings.Contains(slide2, "Produce ATP &amp; NADPH") {
		t.Error("bullet text must be XML-escaped")
	}
	if !strings.Contains(slide2, "Mention the electron transport chain") {
		t.Error("speaker notes missing")
	}

	presentation := readZipEntry(t, data, "ppt/presentation.xml")
	if strings.Count(presentation, "<p:sldId ") != 3 {
		t.Error("presentation must reference all three slides")
	}
}
