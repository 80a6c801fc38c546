package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository manages the transactional outbox table.
type Repository struct{ DB *gorm.DB }

// NewRepository returns an outbox repository backed by the given DB.
func NewRepository(db *gorm.DB) *Repository { return &Repository{DB: db} }

// InsertTx serialises payload as JSON and stores it inside tx, so the event
// commits or rolls back together with the change it describes.
func (r *Repository) InsertTx(ctx context.Context, tx *gorm.DB, topic, key string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", topic, err)
	}

	row := &model.Outbox{
		ID:        uuid.NewString(),
		Topic:     topic,
		Key:       key,
		Payload:   b,
		CreatedAt: time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("insert %s event: %w", topic, err)
	}
	return nil
}

// Fetch returns up to `limit` unpublished outbox rows ordered by creation time.
func (r *Repository) Fetch(ctx context.Context, limit int) ([]model.Outbox, error) {
	var rows []model.Outbox
	err := r.DB.WithContext(ctx).
		Where("published_at IS NULL").
		Order("created_at").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// MarkPublished sets the published_at timestamp for the given outbox row.
func (r *Repository) MarkPublished(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).
		Model(&model.Outbox{}).
		Where("id = ?", id).
		Update("published_at", time.Now().UTC()).Error
}
