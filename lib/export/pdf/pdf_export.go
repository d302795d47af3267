package pdfexport

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

type Document struct {
	Title    string
	Subtitle string
	Body     string
}

// RenderText lays out plain generated text on A4 pages. Core fonts only cover
// cp1252, other runes are replaced by the translator.
func RenderText(doc Document) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("RenderText panic recover: %v", r)
		}
	}()
	if strings.TrimSpace(doc.Body) == "" {
		return nil, errors.New("текст документа пуст")
	}
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("resume-builder-backend", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	if doc.Title != "" {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.MultiCell(0, 8, tr(doc.Title), "", "L", false)
	}
	if doc.Subtitle != "" {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.MultiCell(0, 6, tr(doc.Subtitle), "", "L", false)
	}
	if doc.Title != "" || doc.Subtitle != "" {
		pdf.Ln(6)
	}

	pdf.SetFont("Helvetica", "", 11)
	_, lineHt := pdf.GetFontSize()
	lineHt *= 1.5
	for _, paragraph := range splitParagraphs(doc.Body) {
		pdf.MultiCell(0, lineHt, tr(paragraph), "", "L", false)
		pdf.Ln(lineHt / 2)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func splitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	result := make([]string, 0)
	for _, paragraph := range strings.Split(text, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph != "" {
			result = append(result, paragraph)
		}
	}
	return result
}
