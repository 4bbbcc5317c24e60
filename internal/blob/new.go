package blob

import (
	"context"
	"fmt"

	"cloud.google.com/go/auth"
	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/nguyentantai21042004/voice-notes/internal/logger"
)

type implTransfer struct {
	client *storage.Client
	logger logger.Logger
}

// New creates a Transfer backed by Google Cloud Storage. A nil creds falls
// back to application default credentials.
func New(ctx context.Context, creds *auth.Credentials, log logger.Logger) (Transfer, error) {
	var opts []option.ClientOption
	if creds != nil {
		opts = append(opts, option.WithAuthCredentials(creds))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &implTransfer{
		client: client,
		logger: log,
	}, nil
}
