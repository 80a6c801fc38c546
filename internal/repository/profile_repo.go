package repository

import (
	"context"
	"fmt"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/model"
	"gorm.io/gorm"
)

// ProfileRepo handles CRUD operations on the profiles table.
type ProfileRepo struct{ DB *gorm.DB }

func (r *ProfileRepo) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return r.DB.WithContext(ctx)
}

func (r *ProfileRepo) List(ctx context.Context) ([]*model.Profile, error) {
	var profiles []*model.Profile
	if err := r.DB.WithContext(ctx).Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

func (r *ProfileRepo) Get(ctx context.Context, id string) (*model.Profile, error) {
	var p model.Profile
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, translate(err, model.ErrProfileNotFound)
	}
	return &p, nil
}

// GetByUserID relies on the unique index on user_id.
func (r *ProfileRepo) GetByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	var p model.Profile
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, translate(err, model.ErrProfileNotFound)
	}
	return &p, nil
}

func (r *ProfileRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Profile) error {
	return translate(r.conn(ctx, tx).Create(p).Error, model.ErrProfileNotFound)
}

func (r *ProfileRepo) Update(ctx context.Context, tx *gorm.DB, id string, cols map[string]any) (*model.Profile, error) {
	db := r.conn(ctx, tx)
	if len(cols) > 0 {
		res := db.Model(&model.Profile{}).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return nil, translate(res.Error, model.ErrProfileNotFound)
		}
		if res.RowsAffected == 0 {
			return nil, model.ErrProfileNotFound
		}
	}

	var p model.Profile
	if err := db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, translate(err, model.ErrProfileNotFound)
	}
	return &p, nil
}

func (r *ProfileRepo) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	res := r.conn(ctx, tx).Where("id = ?", id).Delete(&model.Profile{})
	if res.Error != nil {
		return translate(res.Error, model.ErrProfileNotFound)
	}
	if res.RowsAffected == 0 {
		return model.ErrProfileNotFound
	}
	return nil
}
