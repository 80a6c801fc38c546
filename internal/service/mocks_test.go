package service

import (
	"context"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/model"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockTransactor runs fn directly without a transaction.
type MockTransactor struct{}

func (m *MockTransactor) WithTx(ctx context.Context, fn func(ctx context.Context, tx *gorm.DB) error) error {
	return fn(ctx, nil)
}

type MockOutbox struct {
	mock.Mock
}

func (m *MockOutbox) InsertTx(ctx context.Context, tx *gorm.DB, topic, key string, payload any) error {
	return m.Called(ctx, tx, topic, key, payload).Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) List(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.User), args.Error(1)
}
func (m *MockUserRepo) Get(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *MockUserRepo) Create(ctx context.Context, tx *gorm.DB, u *model.User) error {
	return m.Called(ctx, tx, u).Error(0)
}
func (m *MockUserRepo) Update(ctx context.Context, tx *gorm.DB, id string, cols map[string]any) (*model.User, error) {
	args := m.Called(ctx, tx, id, cols)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *MockUserRepo) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	return m.Called(ctx, tx, id).Error(0)
}
func (m *MockUserRepo) ListSubscribedTo(ctx context.Context, subscriberID string) ([]*model.User, error) {
	args := m.Called(ctx, subscriberID)
	return args.Get(0).([]*model.User), args.Error(1)
}
func (m *MockUserRepo) ListSubscribers(ctx context.Context, authorID string) ([]*model.User, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).([]*model.User), args.Error(1)
}

type MockSubscriptionRepo struct {
	mock.Mock
}

func (m *MockSubscriptionRepo) Add(ctx context.Context, tx *gorm.DB, subscriberID, authorID string) error {
	return m.Called(ctx, tx, subscriberID, authorID).Error(0)
}
func (m *MockSubscriptionRepo) Remove(ctx context.Context, tx *gorm.DB, subscriberID, authorID string) error {
	return m.Called(ctx, tx, subscriberID, authorID).Error(0)
}

type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) List(ctx context.Context) ([]*model.Post, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.Post), args.Error(1)
}
func (m *MockPostRepo) ListByAuthor(ctx context.Context, authorID string) ([]*model.Post, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).([]*model.Post), args.Error(1)
}
func (m *MockPostRepo) Get(ctx context.Context, id string) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}
func (m *MockPostRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Post) error {
	return m.Called(ctx, tx, p).Error(0)
}
func (m *MockPostRepo) Update(ctx context.Context, tx *gorm.DB, id string, cols map[string]any) (*model.Post, error) {
	args := m.Called(ctx, tx, id, cols)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}
func (m *MockPostRepo) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	return m.Called(ctx, tx, id).Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) List(ctx context.Context) ([]*model.Profile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.Profile), args.Error(1)
}
func (m *MockProfileRepo) Get(ctx context.Context, id string) (*model.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}
func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}
func (m *MockProfileRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Profile) error {
	return m.Called(ctx, tx, p).Error(0)
}
func (m *MockProfileRepo) Update(ctx context.Context, tx *gorm.DB, id string, cols map[string]any) (*model.Profile, error) {
	args := m.Called(ctx, tx, id, cols)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}
func (m *MockProfileRepo) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	return m.Called(ctx, tx, id).Error(0)
}

type MockMemberTypeRepo struct {
	mock.Mock
}

func (m *MockMemberTypeRepo) List(ctx context.Context) ([]*model.MemberType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.MemberType), args.Error(1)
}
func (m *MockMemberTypeRepo) Get(ctx context.Context, id model.MemberTypeID) (*model.MemberType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MemberType), args.Error(1)
}

type MockMemberTypeCache struct {
	mock.Mock
}

func (m *MockMemberTypeCache) Get(ctx context.Context, id model.MemberTypeID) (*model.MemberType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MemberType), args.Error(1)
}
func (m *MockMemberTypeCache) Set(ctx context.Context, mt *model.MemberType) error {
	return m.Called(ctx, mt).Error(0)
}
