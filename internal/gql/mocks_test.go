package gql

import (
	"context"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) List(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.User), args.Error(1)
}
func (m *MockUsers) Get(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *MockUsers) Create(ctx context.Context, in model.CreateUser) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *MockUsers) Update(ctx context.Context, id string, in model.UserChanges) (*model.User, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *MockUsers) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockUsers) SubscribedTo(ctx context.Context, userID string) ([]*model.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*model.User), args.Error(1)
}
func (m *MockUsers) Subscribers(ctx context.Context, authorID string) ([]*model.User, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).([]*model.User), args.Error(1)
}
func (m *MockUsers) SubscribeTo(ctx context.Context, userID, authorID string) (*model.User, error) {
	args := m.Called(ctx, userID, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *MockUsers) UnsubscribeFrom(ctx context.Context, userID, authorID string) error {
	return m.Called(ctx, userID, authorID).Error(0)
}

type MockPosts struct {
	mock.Mock
}

func (m *MockPosts) List(ctx context.Context) ([]*model.Post, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.Post), args.Error(1)
}
func (m *MockPosts) ListByAuthor(ctx context.Context, authorID string) ([]*model.Post, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).([]*model.Post), args.Error(1)
}
func (m *MockPosts) Get(ctx context.Context, id string) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}
func (m *MockPosts) Create(ctx context.Context, in model.CreatePost) (*model.Post, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}
func (m *MockPosts) Update(ctx context.Context, id string, in model.PostChanges) (*model.Post, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}
func (m *MockPosts) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockProfiles struct {
	mock.Mock
}

func (m *MockProfiles) List(ctx context.Context) ([]*model.Profile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.Profile), args.Error(1)
}
func (m *MockProfiles) Get(ctx context.Context, id string) (*model.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}
func (m *MockProfiles) GetByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}
func (m *MockProfiles) Create(ctx context.Context, in model.CreateProfile) (*model.Profile, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}
func (m *MockProfiles) Update(ctx context.Context, id string, in model.ProfileChanges) (*model.Profile, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}
func (m *MockProfiles) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockMemberTypes struct {
	mock.Mock
}

func (m *MockMemberTypes) List(ctx context.Context) ([]*model.MemberType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.MemberType), args.Error(1)
}
func (m *MockMemberTypes) Get(ctx context.Context, id model.MemberTypeID) (*model.MemberType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MemberType), args.Error(1)
}
