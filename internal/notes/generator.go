package notes

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// Prompt asks for sectioned notes using the three structural markers the
// renderer understands.
const Prompt = `
Please provide notes for the audio with titles for various sections.
Start the title in "#" and the subheadings in "*", and the pointers with "-", and give accurate symbols if any used.
`

// Generate stages the audio, calls the model once, writes the answer next to
// the audio file and removes the staged copy.
func (g *implGenerator) Generate(ctx context.Context, audioPath string) (notesPath string, err error) {
	remoteName := StagingName(audioPath)

	uri, err := g.blob.Upload(ctx, g.bucket, audioPath, remoteName)
	if err != nil {
		return "", err
	}

	// The staged copy goes away on every path. A delete failure only fails
	// the call when nothing else went wrong.
	defer func() {
		delErr := g.blob.Delete(context.WithoutCancel(ctx), g.bucket, remoteName)
		if delErr == nil {
			return
		}
		if err == nil {
			os.Remove(notesPath)
			notesPath, err = "", delErr
			return
		}
		g.logger.Warn(ctx, "Failed to delete staged blob %s: %v", uri, delErr)
	}()

	g.logger.Info(ctx, "Requesting notes for %s", uri)
	text, err := g.model.GenerateContent(ctx, uri, g.mimeType, Prompt)
	if err != nil {
		return "", &Error{Op: "generate", Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &Error{Op: "generate", Err: ErrEmptyResponse}
	}

	notesPath = NotesPath(audioPath)
	if err := os.WriteFile(notesPath, []byte(text), 0o644); err != nil {
		return "", &Error{Op: "write notes", Err: err}
	}

	g.logger.Info(ctx, "Notes created successfully: %s", notesPath)
	return notesPath, nil
}

// StagingName derives the remote object name for an audio file, e.g.
// uploads/talk.wav -> uploads/talk_uploaded.mp3.
func StagingName(audioPath string) string {
	return filepath.ToSlash(trimExt(audioPath)) + "_uploaded.mp3"
}

// NotesPath replaces the audio file's extension with .txt
func NotesPath(audioPath string) string {
	return trimExt(audioPath) + ".txt"
}

func trimExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}
