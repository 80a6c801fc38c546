package service

import (
	"context"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/model"
	"gorm.io/gorm"
)

// Repositories accept a nil tx to run outside a transaction.

type UserRepository interface {
	List(ctx context.Context) ([]*model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
	Create(ctx context.Context, tx *gorm.DB, u *model.User) error
	Update(ctx context.Context, tx *gorm.DB, id string, cols map[string]any) (*model.User, error)
	Delete(ctx context.Context, tx *gorm.DB, id string) error
	ListSubscribedTo(ctx context.Context, subscriberID string) ([]*model.User, error)
	ListSubscribers(ctx context.Context, authorID string) ([]*model.User, error)
}

type SubscriptionRepository interface {
	Add(ctx context.Context, tx *gorm.DB, subscriberID, authorID string) error
	Remove(ctx context.Context, tx *gorm.DB, subscriberID, authorID string) error
}

type PostRepository interface {
	List(ctx context.Context) ([]*model.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*model.Post, error)
	Get(ctx context.Context, id string) (*model.Post, error)
	Create(ctx context.Context, tx *gorm.DB, p *model.Post) error
	Update(ctx context.Context, tx *gorm.DB, id string, cols map[string]any) (*model.Post, error)
	Delete(ctx context.Context, tx *gorm.DB, id string) error
}

type ProfileRepository interface {
	List(ctx context.Context) ([]*model.Profile, error)
	Get(ctx context.Context, id string) (*model.Profile, error)
	GetByUserID(ctx context.Context, userID string) (*model.Profile, error)
	Create(ctx context.Context, tx *gorm.DB, p *model.Profile) error
	Update(ctx context.Context, tx *gorm.DB, id string, cols map[string]any) (*model.Profile, error)
	Delete(ctx context.Context, tx *gorm.DB, id string) error
}

type MemberTypeRepository interface {
	List(ctx context.Context) ([]*model.MemberType, error)
	Get(ctx context.Context, id model.MemberTypeID) (*model.MemberType, error)
}

type MemberTypeCache interface {
	Get(ctx context.Context, id model.MemberTypeID) (*model.MemberType, error)
	Set(ctx context.Context, mt *model.MemberType) error
}

// OutboxWriter stores an event in the same transaction as the change.
type OutboxWriter interface {
	InsertTx(ctx context.Context, tx *gorm.DB, topic, key string, payload any) error
}
