package render

import "context"

// Renderer turns a notes text file into a document file.
type Renderer interface {
	// Render writes the document next to notesPath and returns its path.
	Render(ctx context.Context, notesPath string) (string, error)
	// Output describes the kind of document Render produces.
	Output() Output
}

// Output describes a rendered document type
type Output struct {
	Extension   string
	ContentType string
	// DownloadName is the filename proposed to HTTP clients.
	DownloadName string
}

var (
	PDF = Output{
		Extension:    ".pdf",
		ContentType:  "application/pdf",
		DownloadName: "notes.pdf",
	}
	DOCX = Output{
		Extension:    ".docx",
		ContentType:  "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		DownloadName: "notes.docx",
	}
)
