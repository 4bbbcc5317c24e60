package render

import (
	"fmt"

	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
)

// Fonts holds the TTF files for the two faces. Empty paths select the
// built-in Courier faces.
type Fonts struct {
	Regular string
	Bold    string
}

// New creates the Renderer selected by cfg.Format
func New(cfg config.RenderConfig, log logger.Logger) (Renderer, error) {
	switch cfg.Format {
	case "", "pdf":
		return NewPDF(Fonts{Regular: cfg.RegularFont, Bold: cfg.BoldFont}, log), nil
	case "docx":
		return NewDOCX(log), nil
	default:
		return nil, fmt.Errorf("unsupported render format %q", cfg.Format)
	}
}
