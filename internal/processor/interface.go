package processor

import (
	"context"
	"io"
	"time"
)

// Processor converts one uploaded audio recording into a rendered document
type Processor interface {
	Convert(ctx context.Context, upload Upload) (*Document, error)
}

// Upload is an incoming audio payload
type Upload struct {
	// Filename is the client-supplied name; only its base is used.
	Filename string
	Body     io.Reader
}

// Document is a rendered notes document held in memory
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

// StageObserver receives the duration and outcome of every pipeline stage
type StageObserver interface {
	ObserveStage(stage string, d time.Duration, err error)
}
