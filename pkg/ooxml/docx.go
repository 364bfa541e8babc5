// Package ooxml writes minimal Office Open XML packages (docx, pptx) without
// external dependencies. Only the parts Word/PowerPoint need to open a file
// are emitted; styling is limited to bold runs and font sizes.
package ooxml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Paragraph is a single docx paragraph.
type Paragraph struct {
	Text     string
	Bold     bool
	Size     int // half-points; 0 = default
	Centered bool
}

// DocxBuilder accumulates paragraphs and serializes them into a .docx package.
type DocxBuilder struct {
	paragraphs []Paragraph
}

func NewDocxBuilder() *DocxBuilder {
	return &DocxBuilder{}
}

func (b *DocxBuilder) AddHeading(text string) *DocxBuilder {
	b.paragraphs = append(b.paragraphs, Paragraph{Text: text, Bold: true, Size: 32, Centered: true})
	return b
}

func (b *DocxBuilder) AddSubheading(text string) *DocxBuilder {
	b.paragraphs = append(b.paragraphs, Paragraph{Text: text, Bold: true, Size: 28})
	return b
}

func (b *DocxBuilder) AddParagraph(text string) *DocxBuilder {
	b.paragraphs = append(b.paragraphs, Paragraph{Text: text})
	return b
}

func (b *DocxBuilder) AddBold(text string) *DocxBuilder {
	b.paragraphs = append(b.paragraphs, Paragraph{Text: text, Bold: true})
	return b
}

// Bytes assembles the OPC package.
func (b *DocxBuilder) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	files := map[string]string{
		"[Content_Types].xml": docxContentTypes,
		"_rels/.rels":         docxRootRels,
		"word/document.xml":   b.documentXML(),
	}
	for name, content := range files {
		f, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("create zip entry %s: %w", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			return nil, fmt.Errorf("write zip entry %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close docx package: %w", err)
	}
	return buf.Bytes(), nil
}

func (b *DocxBuilder) documentXML() string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range b.paragraphs {
		sb.WriteString("<w:p>")
		if p.Centered {
			sb.WriteString(`<w:pPr><w:jc w:val="center"/></w:pPr>`)
		}
		sb.WriteString("<w:r>")
		if p.Bold || p.Size > 0 {
			sb.WriteString("<w:rPr>")
			if p.Bold {
				sb.WriteString("<w:b/>")
			}
			if p.Size > 0 {
				sb.WriteString(fmt.Sprintf(`<w:sz w:val="%d"/>`, p.Size))
			}
			sb.WriteString("</w:rPr>")
		}
		sb.WriteString(`<w:t xml:space="preserve">`)
		sb.WriteString(escapeXML(p.Text))
		sb.WriteString("</w:t></w:r></w:p>")
	}
	sb.WriteString("</w:body></w:document>")
	return sb.String()
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	// xml.EscapeText never fails on a bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

const docxContentTypes = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`</Types>`

const docxRootRels = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`
