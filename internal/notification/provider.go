// Package notification builds topic broadcast messages and delivers them
// through a push provider (currently Firebase Cloud Messaging).
package notification

import "context"

// Provider is the interface for push delivery backends.
type Provider interface {
	// Name returns the provider identifier (e.g. "fcm").
	Name() string
	// Send hands msg to the provider and returns its acknowledgement id.
	Send(ctx context.Context, msg *BroadcastMessage) (string, error)
}
