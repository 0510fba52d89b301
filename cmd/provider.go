package cmd

import (
	"context"

	"github.com/shaharia-lab/topicast/internal/notification"
)

// newProvider authenticates the push provider. Tests replace it with a fake.
var newProvider = func(ctx context.Context, credentialsPath string) (notification.Provider, error) {
	return notification.NewFCMProvider(ctx, credentialsPath)
}
