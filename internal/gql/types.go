package gql

import (
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/model"
	"github.com/graphql-go/graphql"
)

// Object type names are part of the public contract.
func (b *builder) buildTypes() {
	b.memberType = graphql.NewObject(graphql.ObjectConfig{
		Name: "memberType",
		Fields: graphql.Fields{
			"id":                 &graphql.Field{Type: MemberTypeID},
			"postsLimitPerMonth": &graphql.Field{Type: graphql.Int},
			"discount":           &graphql.Field{Type: graphql.Float},
		},
	})

	b.post = graphql.NewObject(graphql.ObjectConfig{
		Name: "Posts",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: UUID},
			"title":    &graphql.Field{Type: graphql.String},
			"content":  &graphql.Field{Type: graphql.String},
			"authorId": &graphql.Field{Type: UUID},
		},
	})

	b.profile = graphql.NewObject(graphql.ObjectConfig{
		Name: "Profiles",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: UUID},
			"isMale":       &graphql.Field{Type: graphql.Boolean},
			"yearOfBirth":  &graphql.Field{Type: graphql.Int},
			"userId":       &graphql.Field{Type: graphql.String},
			"memberTypeId": &graphql.Field{Type: MemberTypeID},
			"memberType": &graphql.Field{
				Type: b.memberType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					profile, ok := p.Source.(*model.Profile)
					if !ok {
						return nil, nil
					}
					mt, err := b.svc.MemberTypes.Get(p.Context, profile.MemberTypeID)
					return unique(p, mt, err)
				},
			},
		},
	})

	b.user = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":      &graphql.Field{Type: UUID},
				"name":    &graphql.Field{Type: graphql.String},
				"balance": &graphql.Field{Type: graphql.Float},
				"profile": &graphql.Field{
					Type: b.profile,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						u, ok := p.Source.(*model.User)
						if !ok {
							return nil, nil
						}
						profile, err := b.svc.Profiles.GetByUserID(p.Context, u.ID)
						return unique(p, profile, err)
					},
				},
				"posts": &graphql.Field{
					Type: graphql.NewList(b.post),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						u, ok := p.Source.(*model.User)
						if !ok {
							return nil, nil
						}
						posts, err := b.svc.Posts.ListByAuthor(p.Context, u.ID)
						return many(p, posts, err)
					},
				},
				// authors this user follows
				"userSubscribedTo": &graphql.Field{
					Type: graphql.NewList(b.user),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						u, ok := p.Source.(*model.User)
						if !ok {
							return nil, nil
						}
						users, err := b.svc.Users.SubscribedTo(p.Context, u.ID)
						return many(p, users, err)
					},
				},
				// followers of this user
				"subscribedToUser": &graphql.Field{
					Type: graphql.NewList(b.user),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						u, ok := p.Source.(*model.User)
						if !ok {
							return nil, nil
						}
						users, err := b.svc.Users.Subscribers(p.Context, u.ID)
						return many(p, users, err)
					},
				},
			}
		}),
	})
}
