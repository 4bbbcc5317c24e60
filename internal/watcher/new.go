package watcher

import (
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/voice-notes/internal/logger"
)

const (
	// settleDelay lets the copy that created an inbox file finish before it is read.
	settleDelay = 500 * time.Millisecond

	defaultConversions = 2
)

// New watches inboxDir for new recordings. maxConcurrent <= 0 means two
// conversions at a time.
func New(inboxDir string, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	info, err := os.Stat(inboxDir)
	if err != nil {
		return nil, fmt.Errorf("inbox %s: %w", inboxDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("inbox %s is not a directory", inboxDir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create inbox watcher: %w", err)
	}
	if err := fsw.Add(inboxDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch inbox %s: %w", inboxDir, err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = defaultConversions
	}

	return &implWatcher{
		inputDir:      inboxDir,
		handler:       handler,
		logger:        log,
		watcher:       fsw,
		maxConcurrent: maxConcurrent,
		slots:         newConversionSlots(maxConcurrent),
		settle:        settleDelay,
	}, nil
}
