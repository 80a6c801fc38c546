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

// PostService handles post business logic.
type PostService struct {
	Repo   PostRepository
	Tx     tx.Transactor
	Outbox OutboxWriter
}

func (s *PostService) List(ctx context.Context) ([]*model.Post, error) {
	return s.Repo.List(ctx)
}

func (s *PostService) ListByAuthor(ctx context.Context, authorID string) ([]*model.Post, error) {
	return s.Repo.ListByAuthor(ctx, authorID)
}

func (s *PostService) Get(ctx context.Context, id string) (*model.Post, error) {
	return s.Repo.Get(ctx, id)
}

func (s *PostService) Create(ctx context.Context, in model.CreatePost) (*model.Post, error) {
	if err := model.Validate(in); err != nil {
		return nil, err
	}

	p := &model.Post{
		ID:       uuid.NewString(),
		Title:    in.Title,
		Content:  in.Content,
		AuthorID: in.AuthorID,
	}
	err := s.Tx.WithTx(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := s.Repo.Create(ctx, tx, p); err != nil {
			return err
		}
		return s.Outbox.InsertTx(ctx, tx, outbox.TopicPostCreated, p.ID, p)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return p, nil
}

func (s *PostService) Update(ctx context.Context, id string, in model.PostChanges) (*model.Post, error) {
	var p *model.Post
	err := s.Tx.WithTx(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var err error
		if p, err = s.Repo.Update(ctx, tx, id, in.Columns()); err != nil {
			return err
		}
		return s.Outbox.InsertTx(ctx, tx, outbox.TopicPostUpdated, p.ID, p)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return p, nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	err := s.Tx.WithTx(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := s.Repo.Delete(ctx, tx, id); err != nil {
			return err
		}
		return s.Outbox.InsertTx(ctx, tx, outbox.TopicPostDeleted, id, outbox.Deleted{ID: id})
	})
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}
