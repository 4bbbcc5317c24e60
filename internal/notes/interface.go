package notes

import "context"

// Generator turns a local audio file into a structured notes text file.
type Generator interface {
	// Generate returns the path of the notes file it wrote. The caller owns
	// the file and is responsible for removing it.
	Generate(ctx context.Context, audioPath string) (string, error)
}

// Model is the hosted generation collaborator: audio reference plus prompt
// in, plain text out.
type Model interface {
	GenerateContent(ctx context.Context, audioURI, mimeType, prompt string) (string, error)
}
