package repository

import (
	"context"
	"fmt"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MemberTypeRepo reads the member_types reference table.
type MemberTypeRepo struct{ DB *gorm.DB }

func (r *MemberTypeRepo) List(ctx context.Context) ([]*model.MemberType, error) {
	var types []*model.MemberType
	if err := r.DB.WithContext(ctx).Order("id").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to list member types: %w", err)
	}
	return types, nil
}

func (r *MemberTypeRepo) Get(ctx context.Context, id model.MemberTypeID) (*model.MemberType, error) {
	var mt model.MemberType
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&mt).Error; err != nil {
		return nil, translate(err, model.ErrMemberTypeNotFound)
	}
	return &mt, nil
}

// Seed inserts the default member types, leaving existing rows untouched.
func (r *MemberTypeRepo) Seed(ctx context.Context) error {
	rows := make([]model.MemberType, len(model.DefaultMemberTypes))
	copy(rows, model.DefaultMemberTypes)

	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to seed member types: %w", err)
	}
	return nil
}
