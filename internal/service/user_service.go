package service

import (
	"context"
	"fmt"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/model"
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/outbox"
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/tx"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles users and the subscriptions between them.
type UserService struct {
	Repo   UserRepository
	Subs   SubscriptionRepository
	Tx     tx.Transactor
	Outbox OutboxWriter
}

func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	return s.Repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	return s.Repo.Get(ctx, id)
}

func (s *UserService) Create(ctx context.Context, in model.CreateUser) (*model.User, error) {
	if err := model.Validate(in); err != nil {
		return nil, err
	}

	u := &model.User{ID: uuid.NewString(), Name: in.Name, Balance: in.Balance}
	err := s.Tx.WithTx(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := s.Repo.Create(ctx, tx, u); err != nil {
			return err
		}
		return s.Outbox.InsertTx(ctx, tx, outbox.TopicUserCreated, u.ID, u)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// Update applies a partial change. An empty change returns the stored user.
func (s *UserService) Update(ctx context.Context, id string, in model.UserChanges) (*model.User, error) {
	var u *model.User
	err := s.Tx.WithTx(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var err error
		if u, err = s.Repo.Update(ctx, tx, id, in.Columns()); err != nil {
			return err
		}
		return s.Outbox.InsertTx(ctx, tx, outbox.TopicUserUpdated, u.ID, u)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return u, nil
}

// Delete removes the user; posts, profile and subscriptions cascade.
func (s *UserService) Delete(ctx context.Context, id string) error {
	err := s.Tx.WithTx(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := s.Repo.Delete(ctx, tx, id); err != nil {
			return err
		}
		return s.Outbox.InsertTx(ctx, tx, outbox.TopicUserDeleted, id, outbox.Deleted{ID: id})
	})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// SubscribedTo lists the authors the user follows.
func (s *UserService) SubscribedTo(ctx context.Context, userID string) ([]*model.User, error) {
	return s.Repo.ListSubscribedTo(ctx, userID)
}

// Subscribers lists the users following the author.
func (s *UserService) Subscribers(ctx context.Context, authorID string) ([]*model.User, error) {
	return s.Repo.ListSubscribers(ctx, authorID)
}

// SubscribeTo records that userID follows authorID and returns the follower.
func (s *UserService) SubscribeTo(ctx context.Context, userID, authorID string) (*model.User, error) {
	ev := outbox.SubscriptionEvent{SubscriberID: userID, AuthorID: authorID}
	err := s.Tx.WithTx(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := s.Subs.Add(ctx, tx, userID, authorID); err != nil {
			return err
		}
		return s.Outbox.InsertTx(ctx, tx, outbox.TopicSubscriptionCreated, userID, ev)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}
	return s.Repo.Get(ctx, userID)
}

func (s *UserService) UnsubscribeFrom(ctx context.Context, userID, authorID string) error {
	ev := outbox.SubscriptionEvent{SubscriberID: userID, AuthorID: authorID}
	err := s.Tx.WithTx(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := s.Subs.Remove(ctx, tx, userID, authorID); err != nil {
			return err
		}
		return s.Outbox.InsertTx(ctx, tx, outbox.TopicSubscriptionDeleted, userID, ev)
	})
	if err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}
	return nil
}
