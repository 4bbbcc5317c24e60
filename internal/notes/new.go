package notes

import (
	"github.com/nguyentantai21042004/voice-notes/internal/blob"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
)

type implGenerator struct {
	blob     blob.Transfer
	model    Model
	bucket   string
	mimeType string
	logger   logger.Logger
}

// New creates a Generator that stages audio in bucket and asks model for notes.
func New(transfer blob.Transfer, model Model, bucket, mimeType string, log logger.Logger) Generator {
	if mimeType == "" {
		mimeType = "audio/mpeg"
	}
	return &implGenerator{
		blob:     transfer,
		model:    model,
		bucket:   bucket,
		mimeType: mimeType,
		logger:   log,
	}
}
