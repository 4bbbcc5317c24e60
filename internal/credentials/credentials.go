// Package credentials loads Google Cloud credentials once at startup so the
// storage and Vertex AI clients share them.
package credentials

import (
	"fmt"
	"os"

	"cloud.google.com/go/auth"
	"cloud.google.com/go/auth/credentials"
)

// CloudPlatformScope grants access to both Cloud Storage and Vertex AI
const CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// Load reads a service-account (or other credential) JSON file. An empty
// path falls back to application default credentials.
func Load(path string) (*auth.Credentials, error) {
	opts := &credentials.DetectOptions{
		Scopes: []string{CloudPlatformScope},
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("credentials file %s: %w", path, err)
		}
		opts.CredentialsFile = path
	}

	creds, err := credentials.DetectDefault(opts)
	if err != nil {
		return nil, fmt.Errorf("detect credentials: %w", err)
	}
	return creds, nil
}
