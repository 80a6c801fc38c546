package repository

import (
	"context"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/model"
	"gorm.io/gorm"
)

// SubscriptionRepo handles the subscribers_on_authors join table.
type SubscriptionRepo struct{ DB *gorm.DB }

func (r *SubscriptionRepo) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return r.DB.WithContext(ctx)
}

// Add inserts a subscription. A duplicate pair yields model.ErrConflict.
func (r *SubscriptionRepo) Add(ctx context.Context, tx *gorm.DB, subscriberID, authorID string) error {
	sub := &model.Subscription{SubscriberID: subscriberID, AuthorID: authorID}
	return translate(r.conn(ctx, tx).Create(sub).Error, model.ErrSubscriptionNotFound)
}

// Remove deletes the subscription keyed by (subscriberID, authorID).
func (r *SubscriptionRepo) Remove(ctx context.Context, tx *gorm.DB, subscriberID, authorID string) error {
	res := r.conn(ctx, tx).
		Where("subscriber_id = ? AND author_id = ?", subscriberID, authorID).
		Delete(&model.Subscription{})
	if res.Error != nil {
		return translate(res.Error, model.ErrSubscriptionNotFound)
	}
	if res.RowsAffected == 0 {
		return model.ErrSubscriptionNotFound
	}
	return nil
}
