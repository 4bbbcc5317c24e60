package blob

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Upload streams the local file into the bucket. One attempt, no retries.
func (t *implTransfer) Upload(ctx context.Context, bucket, localPath, remoteName string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", &Error{Op: "upload", Bucket: bucket, Object: remoteName, Err: err}
	}
	defer f.Close()

	// Cancelling the writer's context aborts the upload; Close would commit
	// whatever was copied so far.
	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := t.client.Bucket(bucket).Object(remoteName).NewWriter(wctx)
	if _, err := io.Copy(w, f); err != nil {
		cancel()
		return "", &Error{Op: "upload", Bucket: bucket, Object: remoteName, Err: err}
	}
	if err := w.Close(); err != nil {
		return "", &Error{Op: "upload", Bucket: bucket, Object: remoteName, Err: err}
	}

	uri := URI(bucket, remoteName)
	t.logger.Info(ctx, "Uploaded file to %s", uri)
	return uri, nil
}

func (t *implTransfer) Delete(ctx context.Context, bucket, remoteName string) error {
	if err := t.client.Bucket(bucket).Object(remoteName).Delete(ctx); err != nil {
		return &Error{Op: "delete", Bucket: bucket, Object: remoteName, Err: err}
	}
	t.logger.Debug(ctx, "Deleted %s", URI(bucket, remoteName))
	return nil
}

// URI formats the fully-qualified gs:// locator of an object
func URI(bucket, remoteName string) string {
	return fmt.Sprintf("gs://%s/%s", bucket, remoteName)
}
