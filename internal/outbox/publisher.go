package outbox

import (
	"context"
	"time"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/model"
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/observability"
	"go.uber.org/zap"
)

// Store is the subset of Repository the publisher needs.
type Store interface {
	Fetch(ctx context.Context, limit int) ([]model.Outbox, error)
	MarkPublished(ctx context.Context, id string) error
}

// Producer is satisfied by *kafka.Producer.
type Producer interface {
	Publish(ctx context.Context, topic string, key, value []byte) error
}

// Publisher polls the outbox table and publishes unpublished events to Kafka.
type Publisher struct {
	repo      Store
	producer  Producer
	interval  time.Duration
	batchSize int
}

// NewPublisher creates a new outbox publisher.
func NewPublisher(repo Store, producer Producer, interval time.Duration, batchSize int) *Publisher {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if batchSize <= 0 {
		batchSize = 50
	}
	return &Publisher{repo: repo, producer: producer, interval: interval, batchSize: batchSize}
}

// Start begins the polling loop. It blocks until the context is cancelled.
func (p *Publisher) Start(ctx context.Context) {
	log := observability.GetLogger(ctx)
	log.Info("outbox publisher started", zap.Duration("interval", p.interval))

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox publisher stopping")
			return
		case <-ticker.C:
			p.publishBatch(ctx)
		}
	}
}

// publishBatch returns the number of rows marked as published.
func (p *Publisher) publishBatch(ctx context.Context) int {
	log := observability.GetLogger(ctx)

	rows, err := p.repo.Fetch(ctx, p.batchSize)
	if err != nil {
		log.Error("outbox query error", zap.Error(err))
		return 0
	}

	published := 0
	for _, row := range rows {
		if err := p.producer.Publish(ctx, row.Topic, []byte(row.Key), row.Payload); err != nil {
			observability.OutboxPublishFailuresTotal.WithLabelValues(row.Topic).Inc()
			log.Warn("kafka publish failed", zap.String("topic", row.Topic), zap.String("id", row.ID), zap.Error(err))
			continue
		}
		observability.OutboxPublishedTotal.WithLabelValues(row.Topic).Inc()

		if err := p.repo.MarkPublished(ctx, row.ID); err != nil {
			log.Error("outbox mark published error", zap.String("id", row.ID), zap.Error(err))
			continue
		}
		published++
	}
	return published
}
