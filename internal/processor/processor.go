package processor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/voice-notes/internal/notes"
)

// Convert runs upload -> notes -> document and returns the document bytes.
// Every local file the run creates is removed before Convert returns,
// whether it succeeds or not.
func (p *implProcessor) Convert(ctx context.Context, upload Upload) (*Document, error) {
	startTime := time.Now()

	var artifacts []string
	defer func() {
		for i := len(artifacts) - 1; i >= 0; i-- {
			p.cleanupTempFile(ctx, artifacts[i])
		}
	}()

	var audioPath string
	err := p.stage("save", func() error {
		var err error
		audioPath, err = p.saveUpload(ctx, upload)
		return err
	})
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, audioPath)

	if p.needsTranscode(audioPath) {
		mp3Path := transcodedPath(audioPath)
		artifacts = append(artifacts, mp3Path)
		if err := p.stage("transcode", func() error {
			return p.transcode(ctx, audioPath, mp3Path)
		}); err != nil {
			return nil, err
		}
		audioPath = mp3Path
	}

	// Derived paths are registered before each step so partial output is
	// swept up too. The path a step returns is registered once it succeeds.
	notesPath := notes.NotesPath(audioPath)
	artifacts = append(artifacts, notesPath)
	if err := p.stage("notes", func() error {
		generated, err := p.notes.Generate(ctx, audioPath)
		if err != nil {
			return err
		}
		if generated != notesPath {
			artifacts = append(artifacts, generated)
			notesPath = generated
		}
		return nil
	}); err != nil {
		return nil, err
	}

	out := p.renderer.Output()
	docPath := strings.TrimSuffix(notesPath, filepath.Ext(notesPath)) + out.Extension
	artifacts = append(artifacts, docPath)
	if err := p.stage("render", func() error {
		rendered, err := p.renderer.Render(ctx, notesPath)
		if err != nil {
			return err
		}
		if rendered != docPath {
			artifacts = append(artifacts, rendered)
			docPath = rendered
		}
		return nil
	}); err != nil {
		return nil, err
	}

	var data []byte
	if err := p.stage("read", func() error {
		var err error
		data, err = os.ReadFile(docPath)
		if err != nil {
			return &IOError{Op: "read document", Path: docPath, Err: err}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	p.logger.Info(ctx, "Converted %s into %s (%d bytes) in %s",
		upload.Filename, out.DownloadName, len(data), time.Since(startTime))

	return &Document{
		Filename:    out.DownloadName,
		ContentType: out.ContentType,
		Data:        data,
	}, nil
}

func (p *implProcessor) stage(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	if p.observer != nil {
		p.observer.ObserveStage(name, time.Since(start), err)
	}
	return err
}
