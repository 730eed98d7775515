package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/nats-io/nats.go"
)

var (
	ErrConnect = errors.New("error connecting to nats")
	ErrPublish = errors.New("error publishing event")
)

// conn is the subset of *nats.Conn the publisher uses.
type conn interface {
	Publish(subject string, data []byte) error
	Close()
}

type natsPublisher struct {
	conn conn
	now  func() time.Time
}

// NewPublisher connects to cfg.NATSURL. An empty URL yields a no-op
// publisher.
func NewPublisher(cfg config.Events, log *logger.Logger) (Publisher, error) {
	if cfg.NATSURL == "" {
		log.Info().Str("func", "events.NewPublisher").Msg("nats url is not set, events are disabled")
		return NewNopPublisher(), nil
	}

	opts := []nats.Option{
		nats.Name("go-job-board"),
		nats.Timeout(cfg.ConnTimeout),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
	}

	nc, err := nats.Connect(cfg.NATSURL, opts...)
	if err != nil {
		log.Err(err).Str("func", "events.NewPublisher").Msg("error connecting to nats")
		return nil, fmt.Errorf("%w: %w", ErrConnect, err)
	}
	log.Info().Str("func", "events.NewPublisher").Str("url", nc.ConnectedUrlRedacted()).Msg("connected to nats")

	return newNATSPublisher(nc), nil
}

func newNATSPublisher(c conn) *natsPublisher {
	return &natsPublisher{conn: c, now: time.Now}
}

func (p *natsPublisher) PublishJobCreated(ctx context.Context, job models.Job) error {
	return p.publish(ctx, JobCreatedSubject, newJobCreatedEvent(job, p.now()))
}

func (p *natsPublisher) PublishApplicationSubmitted(ctx context.Context, application models.Application) error {
	return p.publish(ctx, ApplicationSubmittedSubject, newApplicationSubmittedEvent(application, p.now()))
}

func (p *natsPublisher) publish(ctx context.Context, subject string, event any) error {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPublish, err)
	}

	if err = p.conn.Publish(subject, data); err != nil {
		log.Err(err).Str("func", "*natsPublisher.publish").Str("subject", subject).Msg("failed to publish event")
		return fmt.Errorf("%w: %w", ErrPublish, err)
	}

	log.Debug().Str("subject", subject).Int("size", len(data)).Msg("published event")
	return nil
}

func (p *natsPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}
