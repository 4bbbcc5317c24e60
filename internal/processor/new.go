package processor

import (
	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/notes"
	"github.com/nguyentantai21042004/voice-notes/internal/render"
	"github.com/nguyentantai21042004/voice-notes/pkg/executor"
)

type implProcessor struct {
	cfg      *config.Config
	notes    notes.Generator
	renderer render.Renderer
	executor executor.Executor
	logger   logger.Logger
	observer StageObserver
}

// New creates a new Processor instance. The observer may be nil.
func New(cfg *config.Config, gen notes.Generator, renderer render.Renderer, exec executor.Executor, log logger.Logger, observer StageObserver) Processor {
	return &implProcessor{
		cfg:      cfg,
		notes:    gen,
		renderer: renderer,
		executor: exec,
		logger:   log,
		observer: observer,
	}
}
