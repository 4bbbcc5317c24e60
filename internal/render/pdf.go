package render

import (
	"context"
	"os"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/nguyentantai21042004/voice-notes/internal/logger"
)

const (
	pageMargin = 15.0

	regularFamily = "JetBrainsMono-Regular"
	boldFamily    = "JetBrainsMono-ExtraBold"
)

// documentDate is stamped into every PDF so identical notes give identical bytes
var documentDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

type face struct {
	family string
	style  string
	size   float64
	height float64
}

type implPDF struct {
	fonts  Fonts
	logger logger.Logger
}

// NewPDF creates a Renderer producing Letter-size PDF documents
func NewPDF(fonts Fonts, log logger.Logger) Renderer {
	return &implPDF{
		fonts:  fonts,
		logger: log,
	}
}

func (r *implPDF) Output() Output { return PDF }

func (r *implPDF) Render(ctx context.Context, notesPath string) (string, error) {
	segments, err := readSegments(notesPath)
	if err != nil {
		return "", err
	}

	pdf, faces, translate, err := r.newDocument()
	if err != nil {
		return "", &Error{Op: "load fonts", Path: notesPath, Err: err}
	}

	for _, seg := range segments {
		f := faces[seg.Style]
		pdf.SetFont(f.family, f.style, f.size)
		pdf.Write(f.height, translate(seg.Text)+"\n")
	}
	if err := pdf.Error(); err != nil {
		return "", &Error{Op: "layout", Path: notesPath, Err: err}
	}

	pdfPath := outputPath(notesPath, PDF.Extension)
	out, err := os.Create(pdfPath)
	if err != nil {
		return "", &Error{Op: "write document", Path: pdfPath, Err: err}
	}
	if err := pdf.Output(out); err != nil {
		out.Close()
		os.Remove(pdfPath)
		return "", &Error{Op: "write document", Path: pdfPath, Err: err}
	}
	if err := out.Close(); err != nil {
		os.Remove(pdfPath)
		return "", &Error{Op: "write document", Path: pdfPath, Err: err}
	}

	r.logger.Info(ctx, "PDF created successfully: %s (%d lines)", pdfPath, len(segments))
	return pdfPath, nil
}

// newDocument sets up page geometry and the two faces. Without TTF files the
// core Courier faces are used and text is translated to their code page.
func (r *implPDF) newDocument() (*fpdf.Fpdf, map[Style]face, func(string) string, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetCreationDate(documentDate)
	pdf.SetModificationDate(documentDate)
	pdf.SetCatalogSort(true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)

	regular, bold := "Courier", "Courier"
	boldStyle := "B"
	translate := func(s string) string { return s }

	if r.fonts.Regular != "" {
		regularTTF, err := os.ReadFile(r.fonts.Regular)
		if err != nil {
			return nil, nil, nil, err
		}
		boldTTF, err := os.ReadFile(r.fonts.Bold)
		if err != nil {
			return nil, nil, nil, err
		}
		pdf.AddUTF8FontFromBytes(regularFamily, "", regularTTF)
		pdf.AddUTF8FontFromBytes(boldFamily, "", boldTTF)
		if err := pdf.Error(); err != nil {
			return nil, nil, nil, err
		}
		regular, bold, boldStyle = regularFamily, boldFamily, ""
	} else {
		translate = pdf.UnicodeTranslatorFromDescriptor("")
	}

	pdf.AddPage()

	faces := map[Style]face{
		Heading:    {family: bold, style: boldStyle + "U", size: 20, height: 10},
		Subheading: {family: bold, style: boldStyle, size: 16, height: 10},
		Body:       {family: regular, style: "", size: 14, height: 8},
	}
	return pdf, faces, translate, nil
}
