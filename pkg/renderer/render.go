package renderer

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"resume-studio/pkg/profile"
	"resume-studio/pkg/sanitize"
)

const (
	pageMargin      = 20.0
	pageBreakMargin = 15.0
	headingSize     = 13.0
	lineHeight      = 6.0
)

// RenderPDF lays out generated resume text as a paginated PDF with a
// fixed per-page header and footer, writing it to outputPath. Returns the
// path actually written: if the preferred path cannot be written, the
// document is retried once under a name derived only from the timestamp,
// and a second failure propagates.
func RenderPDF(text string, p profile.UserProfile, fontFamily string, fontSize float64, outputPath string, generated time.Time) (finalPath string, err error) {
	var doc bytes.Buffer
	err = renderDocument(&doc, text, p, fontFamily, fontSize, generated)
	if err != nil {
		err = errors.Wrap(err, "failed to render PDF document")
		return finalPath, err
	}

	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return finalPath, err
	}

	err = os.WriteFile(outputPath, doc.Bytes(), 0600)
	if err == nil {
		finalPath = outputPath
		return finalPath, err
	}

	// A sanitized profile name can still produce an unwritable filename.
	fallback := filepath.Join(outputDir, fmt.Sprintf("resume_%s.pdf", generated.Format("20060102_150405")))
	err = os.WriteFile(fallback, doc.Bytes(), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write PDF file: %s", fallback)
		return finalPath, err
	}

	finalPath = fallback
	return finalPath, err
}

// renderDocument sanitizes, classifies, and lays out the text. Pagination,
// margins, and wrapping are delegated to fpdf with auto page breaks; the
// header and footer repeat on every page.
func renderDocument(out io.Writer, text string, p profile.UserProfile, fontFamily string, fontSize float64, generated time.Time) (err error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageBreakMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetHeaderFunc(func() { drawHeader(pdf, tr, p) })
	pdf.SetFooterFunc(func() { drawFooter(pdf, tr, generated) })
	pdf.AddPage()

	cleaned := sanitize.Clean(text)
	blocks := parseBlocks(cleaned, newBodyStart(p))

	for _, b := range blocks {
		switch b.kind {
		case blockHeading:
			drawHeading(pdf, tr, fontFamily, b.text)
		case blockBullet:
			pdf.SetFont(fontFamily, "", fontSize)
			pdf.CellFormat(8, lineHeight, tr("* "), "", 0, "L", false, 0, "")
			pdf.MultiCell(0, lineHeight, tr(b.text), "", "L", false)
			pdf.Ln(1)
		case blockParagraph:
			pdf.SetFont(fontFamily, "", fontSize)
			pdf.MultiCell(0, lineHeight, tr(b.text), "", "L", false)
			pdf.Ln(1)
		case blockGap:
			pdf.Ln(3)
		}
	}

	err = pdf.Output(out)
	if err != nil {
		err = errors.Wrap(err, "PDF layout failed")
		return err
	}

	return err
}

// drawHeader draws the fixed document header: the upper-cased name, a
// contact line, and an optional social line.
func drawHeader(pdf *fpdf.Fpdf, tr func(string) string, p profile.UserProfile) {
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, tr(sanitize.Clean(strings.ToUpper(p.Name))), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	contact := joinPresent(" | ",
		sanitize.Clean(p.Phone),
		sanitize.Clean(p.Email),
		sanitize.Clean(p.Location),
	)
	pdf.CellFormat(0, 8, tr(contact), "", 1, "C", false, 0, "")

	social := joinPresent(" | ",
		labeled("LinkedIn", p.LinkedIn),
		labeled("GitHub", p.GitHub),
	)
	if social != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, tr(social), "", 1, "C", false, 0, "")
	}

	pdf.Ln(10)
}

// drawFooter stamps the generation date on every page.
func drawFooter(pdf *fpdf.Fpdf, tr func(string) string, generated time.Time) {
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(0, 10, tr("Generated on "+generated.Format("January 2, 2006")), "", 0, "C", false, 0, "")
}

// drawHeading renders a section heading with a horizontal rule beneath it.
func drawHeading(pdf *fpdf.Fpdf, tr func(string) string, fontFamily, title string) {
	pdf.Ln(5)
	pdf.SetFont(fontFamily, "B", headingSize)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")

	left, _, right, _ := pdf.GetMargins()
	pageWidth, _ := pdf.GetPageSize()
	pdf.SetLineWidth(0.5)
	pdf.Line(left, pdf.GetY(), pageWidth-right, pdf.GetY())
	pdf.Ln(5)
}

func labeled(label, value string) (part string) {
	if value != "" {
		part = label + ": " + sanitize.Clean(value)
	}
	return part
}

// joinPresent joins the non-empty parts with sep.
func joinPresent(sep string, parts ...string) (joined string) {
	present := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			present = append(present, part)
		}
	}
	joined = strings.Join(present, sep)
	return joined
}
