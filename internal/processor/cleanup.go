package processor

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

var errBadFilename = errors.New("invalid upload filename")

// saveUpload writes the payload to the uploads directory under the upload's
// base filename. An existing file with the same name is overwritten.
func (p *implProcessor) saveUpload(ctx context.Context, upload Upload) (string, error) {
	name := filepath.Base(upload.Filename)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", &IOError{Op: "save upload", Path: upload.Filename, Err: errBadFilename}
	}

	dir := p.cfg.Paths.Uploads
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &IOError{Op: "create upload dir", Path: dir, Err: err}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", &IOError{Op: "save upload", Path: path, Err: err}
	}
	if _, err := io.Copy(f, upload.Body); err != nil {
		f.Close()
		os.Remove(path)
		return "", &IOError{Op: "save upload", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", &IOError{Op: "save upload", Path: path, Err: err}
	}

	p.logger.Info(ctx, "Audio file saved at %s", path)
	return path, nil
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	err := os.Remove(filePath)
	switch {
	case err == nil:
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	case errors.Is(err, fs.ErrNotExist):
	default:
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	}
}
