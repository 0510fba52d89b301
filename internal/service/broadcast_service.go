package service

import (
	"context"
	"log/slog"

	"github.com/shaharia-lab/topicast/internal/metrics"
	"github.com/shaharia-lab/topicast/internal/notification"
)

// ErrMsgTitleBodyRequired is the validation message for a broadcast without content.
const ErrMsgTitleBodyRequired = "title and body are required in the request body"

// BroadcastService sends topic broadcasts through a push provider.
type BroadcastService interface {
	// Broadcast validates req and sends it to every subscribed device.
	// It returns the provider's acknowledgement id.
	Broadcast(ctx context.Context, req notification.BroadcastRequest) (string, error)
	// BroadcastTest sends the fixed test broadcast.
	BroadcastTest(ctx context.Context) (string, error)
}

// broadcastServiceImpl implements BroadcastService.
type broadcastServiceImpl struct {
	provider notification.Provider
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewBroadcastService creates a new BroadcastService. m may be nil.
func NewBroadcastService(provider notification.Provider, m *metrics.Metrics, logger *slog.Logger) BroadcastService {
	return &broadcastServiceImpl{
		provider: provider,
		metrics:  m,
		logger:   logger,
	}
}

// Broadcast validates the request, builds the topic message and makes a
// single delivery attempt.
func (s *broadcastServiceImpl) Broadcast(ctx context.Context, req notification.BroadcastRequest) (string, error) {
	if req.Title == "" || req.Body == "" {
		s.metrics.ObserveBroadcast(metrics.KindCustom, metrics.OutcomeRejected)
		s.logger.Warn("broadcast rejected: missing title or body",
			slog.Bool("has_title", req.Title != ""),
			slog.Bool("has_body", req.Body != ""),
		)
		return "", &ValidationError{Message: ErrMsgTitleBodyRequired}
	}

	msg := notification.Build(req.Title, req.Body, req.Data)
	return s.send(ctx, metrics.KindCustom, msg)
}

// BroadcastTest sends the fixed test broadcast.
func (s *broadcastServiceImpl) BroadcastTest(ctx context.Context) (string, error) {
	return s.send(ctx, metrics.KindTest, notification.TestBroadcast())
}

func (s *broadcastServiceImpl) send(ctx context.Context, kind string, msg *notification.BroadcastMessage) (string, error) {
	id, err := s.provider.Send(ctx, msg)
	if err != nil {
		s.metrics.ObserveBroadcast(kind, metrics.OutcomeFailed)
		s.logger.Error("broadcast notification failed",
			slog.String("kind", kind),
			slog.String("provider", s.provider.Name()),
			slog.String("topic", msg.Topic),
			slog.Any("error", err),
		)
		return "", &DeliveryError{Provider: s.provider.Name(), Err: err}
	}

	s.metrics.ObserveBroadcast(kind, metrics.OutcomeSent)
	s.logger.Info("broadcast notification sent",
		slog.String("kind", kind),
		slog.String("provider", s.provider.Name()),
		slog.String("topic", msg.Topic),
		slog.String("message_id", id),
	)
	return id, nil
}
