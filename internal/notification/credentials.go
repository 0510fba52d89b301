package notification

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
)

// firebaseMessagingScope is the OAuth2 scope required by the FCM v1 API.
const firebaseMessagingScope = "https://www.googleapis.com/auth/firebase.messaging"

// ErrCredentialsPathUnset is returned when no service-account path is configured.
var ErrCredentialsPathUnset = errors.New("FIREBASE_SERVICE_ACCOUNT_PATH is not set")

// BootstrapError is returned when the provider cannot be initialized from
// the configured service-account document. It is fatal at startup.
type BootstrapError struct {
	Path string
	Err  error
}

func (e *BootstrapError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("firebase bootstrap: %v", e.Err)
	}
	return fmt.Sprintf("firebase bootstrap (%s): %v", e.Path, e.Err)
}

func (e *BootstrapError) Unwrap() error { return e.Err }

// LoadCredentials reads and parses the service-account document at path.
// Any other credential type is rejected.
func LoadCredentials(ctx context.Context, path string) (*google.Credentials, error) {
	if path == "" {
		return nil, &BootstrapError{Err: ErrCredentialsPathUnset}
	}

	//nolint:gosec // path comes from operator configuration
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &BootstrapError{Path: path, Err: fmt.Errorf("reading credentials: %w", err)}
	}

	creds, err := google.CredentialsFromJSONWithType(ctx, raw, google.ServiceAccount, firebaseMessagingScope)
	if err != nil {
		return nil, &BootstrapError{Path: path, Err: fmt.Errorf("parsing credentials: %w", err)}
	}
	if creds.ProjectID == "" {
		return nil, &BootstrapError{Path: path, Err: errors.New("credentials have no project_id")}
	}
	return creds, nil
}
