package repository

import (
	"context"
	"fmt"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/model"
	"gorm.io/gorm"
)

// PostRepo handles CRUD operations on the posts table.
type PostRepo struct{ DB *gorm.DB }

func (r *PostRepo) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return r.DB.WithContext(ctx)
}

func (r *PostRepo) List(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	if err := r.DB.WithContext(ctx).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepo) ListByAuthor(ctx context.Context, authorID string) ([]*model.Post, error) {
	var posts []*model.Post
	if err := r.DB.WithContext(ctx).Where("author_id = ?", authorID).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts of %s: %w", authorID, err)
	}
	return posts, nil
}

func (r *PostRepo) Get(ctx context.Context, id string) (*model.Post, error) {
	var p model.Post
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, translate(err, model.ErrPostNotFound)
	}
	return &p, nil
}

func (r *PostRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Post) error {
	return translate(r.conn(ctx, tx).Create(p).Error, model.ErrPostNotFound)
}

func (r *PostRepo) Update(ctx context.Context, tx *gorm.DB, id string, cols map[string]any) (*model.Post, error) {
	db := r.conn(ctx, tx)
	if len(cols) > 0 {
		res := db.Model(&model.Post{}).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return nil, translate(res.Error, model.ErrPostNotFound)
		}
		if res.RowsAffected == 0 {
			return nil, model.ErrPostNotFound
		}
	}

	var p model.Post
	if err := db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, translate(err, model.ErrPostNotFound)
	}
	return &p, nil
}

func (r *PostRepo) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	res := r.conn(ctx, tx).Where("id = ?", id).Delete(&model.Post{})
	if res.Error != nil {
		return translate(res.Error, model.ErrPostNotFound)
	}
	if res.RowsAffected == 0 {
		return model.ErrPostNotFound
	}
	return nil
}
