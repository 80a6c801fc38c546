package gql

import (
	"context"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/model"
	"github.com/graphql-go/graphql"
)

type UserService interface {
	List(ctx context.Context) ([]*model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
	Create(ctx context.Context, in model.CreateUser) (*model.User, error)
	Update(ctx context.Context, id string, in model.UserChanges) (*model.User, error)
	Delete(ctx context.Context, id string) error
	SubscribedTo(ctx context.Context, userID string) ([]*model.User, error)
	Subscribers(ctx context.Context, authorID string) ([]*model.User, error)
	SubscribeTo(ctx context.Context, userID, authorID string) (*model.User, error)
	UnsubscribeFrom(ctx context.Context, userID, authorID string) error
}

type PostService interface {
	List(ctx context.Context) ([]*model.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*model.Post, error)
	Get(ctx context.Context, id string) (*model.Post, error)
	Create(ctx context.Context, in model.CreatePost) (*model.Post, error)
	Update(ctx context.Context, id string, in model.PostChanges) (*model.Post, error)
	Delete(ctx context.Context, id string) error
}

type ProfileService interface {
	List(ctx context.Context) ([]*model.Profile, error)
	Get(ctx context.Context, id string) (*model.Profile, error)
	GetByUserID(ctx context.Context, userID string) (*model.Profile, error)
	Create(ctx context.Context, in model.CreateProfile) (*model.Profile, error)
	Update(ctx context.Context, id string, in model.ProfileChanges) (*model.Profile, error)
	Delete(ctx context.Context, id string) error
}

type MemberTypeService interface {
	List(ctx context.Context) ([]*model.MemberType, error)
	Get(ctx context.Context, id model.MemberTypeID) (*model.MemberType, error)
}

// Services are what the resolvers delegate to.
type Services struct {
	Users       UserService
	Posts       PostService
	Profiles    ProfileService
	MemberTypes MemberTypeService
}

type builder struct {
	svc Services

	user       *graphql.Object
	post       *graphql.Object
	profile    *graphql.Object
	memberType *graphql.Object
}

// NewSchema assembles the Query and Mutation roots over svc.
func NewSchema(svc Services) (graphql.Schema, error) {
	b := &builder{svc: svc}
	b.buildTypes()

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    b.queryType(),
		Mutation: b.mutationType(),
	})
}
