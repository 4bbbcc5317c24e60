package blob

import "context"

// Transfer moves files between local disk and object storage
type Transfer interface {
	// Upload writes the file at localPath to remoteName inside bucket and
	// returns the object's gs:// URI.
	Upload(ctx context.Context, bucket, localPath, remoteName string) (string, error)
	// Delete removes remoteName from bucket.
	Delete(ctx context.Context, bucket, remoteName string) error
}
