package render

import (
	"context"

	"github.com/gomutex/godocx"

	"github.com/nguyentantai21042004/voice-notes/internal/logger"
)

const (
	docxFont  = "JetBrains Mono"
	docxColor = "000000"
)

var docxSizes = map[Style]uint64{
	Heading:    20,
	Subheading: 16,
	Body:       14,
}

type implDOCX struct {
	logger logger.Logger
}

// NewDOCX creates a Renderer producing Word documents, one paragraph per line
func NewDOCX(log logger.Logger) Renderer {
	return &implDOCX{logger: log}
}

func (r *implDOCX) Output() Output { return DOCX }

func (r *implDOCX) Render(ctx context.Context, notesPath string) (string, error) {
	segments, err := readSegments(notesPath)
	if err != nil {
		return "", err
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return "", &Error{Op: "new document", Path: notesPath, Err: err}
	}

	for _, seg := range segments {
		p := doc.AddParagraph("")
		if seg.Text == "" {
			continue
		}
		run := p.AddText(seg.Text).Font(docxFont).Size(docxSizes[seg.Style]).Color(docxColor)
		if seg.Style != Body {
			run.Bold(true)
		}
	}

	docxPath := outputPath(notesPath, DOCX.Extension)
	if err := doc.SaveTo(docxPath); err != nil {
		return "", &Error{Op: "write document", Path: docxPath, Err: err}
	}

	r.logger.Info(ctx, "DOCX created successfully: %s (%d lines)", docxPath, len(segments))
	return docxPath, nil
}
