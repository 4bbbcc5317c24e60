package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/processor"
)

// ResultRecorder counts inbox outcomes ("converted" or "failed")
type ResultRecorder interface {
	RecordInbox(result string)
}

// Inbox converts recordings dropped into the watched directory. The document
// lands in outputDir named after the recording; the recording itself moves
// to archivedDir once converted.
type Inbox struct {
	processor   processor.Processor
	outputDir   string
	archivedDir string
	logger      logger.Logger
	recorder    ResultRecorder
}

// NewInbox creates an Inbox. recorder may be nil.
func NewInbox(proc processor.Processor, outputDir, archivedDir string, log logger.Logger, recorder ResultRecorder) *Inbox {
	return &Inbox{
		processor:   proc,
		outputDir:   outputDir,
		archivedDir: archivedDir,
		logger:      log,
		recorder:    recorder,
	}
}

// Handle is an EventHandler for one inbox file
func (i *Inbox) Handle(ctx context.Context, filePath string) error {
	ctx = logger.WithRequestID(ctx, uuid.NewString())
	err := i.convert(ctx, filePath)
	if i.recorder != nil {
		result := "converted"
		if err != nil {
			result = "failed"
		}
		i.recorder.RecordInbox(result)
	}
	return err
}

func (i *Inbox) convert(ctx context.Context, filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open recording: %w", err)
	}
	doc, err := i.processor.Convert(ctx, processor.Upload{
		Filename: filepath.Base(filePath),
		Body:     f,
	})
	f.Close()
	if err != nil {
		return fmt.Errorf("convert %s: %w", filePath, err)
	}

	base := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	outPath := filepath.Join(i.outputDir, base+filepath.Ext(doc.Filename))
	if err := os.WriteFile(outPath, doc.Data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	i.logger.Info(ctx, "Notes written: %s", outPath)

	if err := i.moveToArchived(ctx, filePath); err != nil {
		i.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}
	return nil
}

// moveToArchived moves the converted recording out of the inbox
func (i *Inbox) moveToArchived(ctx context.Context, filePath string) error {
	destPath := filepath.Join(i.archivedDir, filepath.Base(filePath))

	i.logger.Debug(ctx, "Archiving: %s -> %s", filePath, destPath)

	if err := os.Rename(filePath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
