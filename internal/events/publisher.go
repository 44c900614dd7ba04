package events

import (
	"context"
	"encoding/json"
	"time"

	"talentdesk/internal/config"
	"talentdesk/internal/errors"
	"talentdesk/internal/telemetry"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("talentdesk/events")

const (
	SubjectJobCreated       = "talentdesk.jobs.created"
	SubjectJobUpdated       = "talentdesk.jobs.updated"
	SubjectJobDeleted       = "talentdesk.jobs.deleted"
	SubjectCandidateCreated = "talentdesk.candidates.created"
	SubjectCandidateUpdated = "talentdesk.candidates.updated"
	SubjectCandidateDeleted = "talentdesk.candidates.deleted"
)

// Publisher emits a lifecycle event after every successful mutation. Publish
// failures are reported to the caller but never fail the originating request.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
	Close()
}

type natsPublisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

// NewPublisher connects to NATS when a URL is configured; without one the
// service runs with a no-op publisher.
func NewPublisher(logger *zap.Logger, cfg *config.Config) (Publisher, error) {
	if cfg.NATSURL == "" {
		logger.Info("no NATS URL configured, lifecycle events disabled")
		return NoopPublisher{}, nil
	}

	opts := []nats.Option{
		nats.Timeout(cfg.NATSConnTimeout),
		nats.Name("talentdesk"),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
		nats.RetryOnFailedConnect(true),
	}

	conn, err := nats.Connect(cfg.NATSURL, opts...)
	if err != nil {
		return nil, errors.Internal("connecting to NATS", err)
	}

	return &natsPublisher{
		conn:   conn,
		logger: logger,
	}, nil
}

func (p *natsPublisher) Publish(ctx context.Context, subject string, payload any) error {
	_, span := tracer.Start(ctx, "Publish")
	defer span.End()

	data, err := json.Marshal(payload)
	if err != nil {
		span.RecordError(err)
		return errors.Internal("marshaling event payload", err)
	}

	span.SetAttributes(
		telemetry.String("nats.subject", subject),
		telemetry.Int("message.size", len(data)),
	)

	if err := p.conn.Publish(subject, data); err != nil {
		span.RecordError(err)
		p.logger.Error("failed to publish event",
			zap.String("subject", subject),
			zap.Error(err))
		return errors.Internal("publishing to NATS", err)
	}

	p.logger.Debug("published event", zap.String("subject", subject))
	return nil
}

func (p *natsPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}

// NoopPublisher drops all events. Used when NATS is not configured and in
// tests.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, subject string, payload any) error {
	return nil
}

func (NoopPublisher) Close() {}
