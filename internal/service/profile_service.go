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

// ProfileService handles profile business logic.
type ProfileService struct {
	Repo   ProfileRepository
	Tx     tx.Transactor
	Outbox OutboxWriter
}

func (s *ProfileService) List(ctx context.Context) ([]*model.Profile, error) {
	return s.Repo.List(ctx)
}

func (s *ProfileService) Get(ctx context.Context, id string) (*model.Profile, error) {
	return s.Repo.Get(ctx, id)
}

// GetByUserID returns the single profile owned by the user.
func (s *ProfileService) GetByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	return s.Repo.GetByUserID(ctx, userID)
}

func (s *ProfileService) Create(ctx context.Context, in model.CreateProfile) (*model.Profile, error) {
	if err := model.Validate(in); err != nil {
		return nil, err
	}
	if !in.MemberTypeID.Valid() {
		return nil, fmt.Errorf("%w: unknown member type %q", model.ErrInvalidInput, in.MemberTypeID)
	}

	p := &model.Profile{
		ID:           uuid.NewString(),
		IsMale:       *in.IsMale,
		YearOfBirth:  *in.YearOfBirth,
		UserID:       in.UserID,
		MemberTypeID: in.MemberTypeID,
	}
	err := s.Tx.WithTx(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := s.Repo.Create(ctx, tx, p); err != nil {
			return err
		}
		return s.Outbox.InsertTx(ctx, tx, outbox.TopicProfileCreated, p.ID, p)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return p, nil
}

func (s *ProfileService) Update(ctx context.Context, id string, in model.ProfileChanges) (*model.Profile, error) {
	if in.MemberTypeID != nil && !in.MemberTypeID.Valid() {
		return nil, fmt.Errorf("%w: unknown member type %q", model.ErrInvalidInput, *in.MemberTypeID)
	}

	var p *model.Profile
	err := s.Tx.WithTx(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var err error
		if p, err = s.Repo.Update(ctx, tx, id, in.Columns()); err != nil {
			return err
		}
		return s.Outbox.InsertTx(ctx, tx, outbox.TopicProfileUpdated, p.ID, p)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return p, nil
}

func (s *ProfileService) Delete(ctx context.Context, id string) error {
	err := s.Tx.WithTx(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := s.Repo.Delete(ctx, tx, id); err != nil {
			return err
		}
		return s.Outbox.InsertTx(ctx, tx, outbox.TopicProfileDeleted, id, outbox.Deleted{ID: id})
	})
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
