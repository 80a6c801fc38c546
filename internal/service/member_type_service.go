package service

import (
	"context"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/model"
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/observability"
	"go.uber.org/zap"
)

// MemberTypeService reads member types, going through Cache when set.
type MemberTypeService struct {
	Repo  MemberTypeRepository
	Cache MemberTypeCache
}

func (s *MemberTypeService) List(ctx context.Context) ([]*model.MemberType, error) {
	return s.Repo.List(ctx)
}

// Get returns a member type by id, checking cache first. Cache errors are
// treated as misses.
func (s *MemberTypeService) Get(ctx context.Context, id model.MemberTypeID) (*model.MemberType, error) {
	if s.Cache != nil {
		if mt, err := s.Cache.Get(ctx, id); err == nil {
			return mt, nil
		}
	}

	mt, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, mt); err != nil {
			observability.GetLogger(ctx).Warn("member type cache set failed",
				zap.String("member_type", string(id)), zap.Error(err))
		}
	}
	return mt, nil
}
