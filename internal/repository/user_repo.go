package repository

import (
	"context"
	"fmt"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/model"
	"gorm.io/gorm"
)

// UserRepo handles CRUD operations on the users table.
type UserRepo struct{ DB *gorm.DB }

func (r *UserRepo) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return r.DB.WithContext(ctx)
}

func (r *UserRepo) List(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	if err := r.DB.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *UserRepo) Get(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err != nil {
		return nil, translate(err, model.ErrUserNotFound)
	}
	return &u, nil
}

func (r *UserRepo) Create(ctx context.Context, tx *gorm.DB, u *model.User) error {
	return translate(r.conn(ctx, tx).Create(u).Error, model.ErrUserNotFound)
}

// Update applies the given columns and returns the stored row.
func (r *UserRepo) Update(ctx context.Context, tx *gorm.DB, id string, cols map[string]any) (*model.User, error) {
	db := r.conn(ctx, tx)
	if len(cols) > 0 {
		res := db.Model(&model.User{}).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return nil, translate(res.Error, model.ErrUserNotFound)
		}
		if res.RowsAffected == 0 {
			return nil, model.ErrUserNotFound
		}
	}

	var u model.User
	if err := db.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, translate(err, model.ErrUserNotFound)
	}
	return &u, nil
}

func (r *UserRepo) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	res := r.conn(ctx, tx).Where("id = ?", id).Delete(&model.User{})
	if res.Error != nil {
		return translate(res.Error, model.ErrUserNotFound)
	}
	if res.RowsAffected == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

// ListSubscribedTo returns the authors the given user is subscribed to.
func (r *UserRepo) ListSubscribedTo(ctx context.Context, subscriberID string) ([]*model.User, error) {
	db := r.DB.WithContext(ctx)
	authors := db.Model(&model.Subscription{}).Select("author_id").Where("subscriber_id = ?", subscriberID)

	var users []*model.User
	if err := db.Where("id IN (?)", authors).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscriptions of %s: %w", subscriberID, err)
	}
	return users, nil
}

// ListSubscribers returns the users subscribed to the given author.
func (r *UserRepo) ListSubscribers(ctx context.Context, authorID string) ([]*model.User, error) {
	db := r.DB.WithContext(ctx)
	subscribers := db.Model(&model.Subscription{}).Select("subscriber_id").Where("author_id = ?", authorID)

	var users []*model.User
	if err := db.Where("id IN (?)", subscribers).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscribers of %s: %w", authorID, err)
	}
	return users, nil
}
