package repository

import (
	"context"
	"fmt"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/model"
	"gorm.io/gorm"
)

// Migrate creates or updates every table and seeds the member types.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&model.User{},
		&model.MemberType{},
		&model.Profile{},
		&model.Post{},
		&model.Subscription{},
		&model.Outbox{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return (&MemberTypeRepo{DB: db}).Seed(ctx)
}
