package notification

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messagingClient is the subset of *messaging.Client used by FCMProvider.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMProvider delivers broadcasts via the Firebase Admin SDK.
type FCMProvider struct {
	client messagingClient
}

// NewFCMProvider authenticates against Firebase with the service-account
// document at credentialsPath and returns a ready provider. It is meant to
// be called once by the process entry point before serving traffic.
func NewFCMProvider(ctx context.Context, credentialsPath string) (*FCMProvider, error) {
	creds, err := LoadCredentials(ctx, credentialsPath)
	if err != nil {
		return nil, err
	}

	app, err := firebase.NewApp(ctx,
		&firebase.Config{ProjectID: creds.ProjectID},
		option.WithCredentials(creds),
	)
	if err != nil {
		return nil, &BootstrapError{Path: credentialsPath, Err: fmt.Errorf("initializing firebase app: %w", err)}
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, &BootstrapError{Path: credentialsPath, Err: fmt.Errorf("initializing messaging client: %w", err)}
	}

	return &FCMProvider{client: client}, nil
}

// Name returns the provider identifier.
func (p *FCMProvider) Name() string { return "fcm" }

// Send publishes msg to its topic. SDK errors are returned as-is so their
// message reaches the caller unchanged.
func (p *FCMProvider) Send(ctx context.Context, msg *BroadcastMessage) (string, error) {
	return p.client.Send(ctx, toFCMMessage(msg))
}

func toFCMMessage(msg *BroadcastMessage) *messaging.Message {
	return &messaging.Message{
		Topic: msg.Topic,
		Notification: &messaging.Notification{
			Title: msg.Notification.Title,
			Body:  msg.Notification.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: msg.Android.Priority,
		},
		APNS: &messaging.APNSConfig{
			Headers: msg.APNS.Headers,
		},
	}
}
