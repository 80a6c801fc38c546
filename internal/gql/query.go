package gql

import (
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/model"
	"github.com/graphql-go/graphql"
)

func idArg(t graphql.Input) graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t)},
	}
}

func (b *builder) queryType() *graphql.Object {
	q := func(fn graphql.FieldResolveFn) graphql.FieldResolveFn { return traced("Query", fn) }

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"users": &graphql.Field{
				Type: graphql.NewList(b.user),
				Resolve: q(func(p graphql.ResolveParams) (interface{}, error) {
					users, err := b.svc.Users.List(p.Context)
					return many(p, users, err)
				}),
			},
			"memberTypes": &graphql.Field{
				Type: graphql.NewList(b.memberType),
				Resolve: q(func(p graphql.ResolveParams) (interface{}, error) {
					types, err := b.svc.MemberTypes.List(p.Context)
					return many(p, types, err)
				}),
			},
			"posts": &graphql.Field{
				Type: graphql.NewList(b.post),
				Resolve: q(func(p graphql.ResolveParams) (interface{}, error) {
					posts, err := b.svc.Posts.List(p.Context)
					return many(p, posts, err)
				}),
			},
			"profiles": &graphql.Field{
				Type: graphql.NewList(b.profile),
				Resolve: q(func(p graphql.ResolveParams) (interface{}, error) {
					profiles, err := b.svc.Profiles.List(p.Context)
					return many(p, profiles, err)
				}),
			},
			"user": &graphql.Field{
				Type: b.user,
				Args: idArg(UUID),
				Resolve: q(func(p graphql.ResolveParams) (interface{}, error) {
					u, err := b.svc.Users.Get(p.Context, stringArg(p.Args, "id"))
					return unique(p, u, err)
				}),
			},
			"post": &graphql.Field{
				Type: b.post,
				Args: idArg(UUID),
				Resolve: q(func(p graphql.ResolveParams) (interface{}, error) {
					post, err := b.svc.Posts.Get(p.Context, stringArg(p.Args, "id"))
					return unique(p, post, err)
				}),
			},
			"profile": &graphql.Field{
				Type: b.profile,
				Args: idArg(UUID),
				Resolve: q(func(p graphql.ResolveParams) (interface{}, error) {
					profile, err := b.svc.Profiles.Get(p.Context, stringArg(p.Args, "id"))
					return unique(p, profile, err)
				}),
			},
			"memberType": &graphql.Field{
				Type: b.memberType,
				Args: idArg(MemberTypeID),
				Resolve: q(func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(model.MemberTypeID)
					mt, err := b.svc.MemberTypes.Get(p.Context, id)
					return unique(p, mt, err)
				}),
			},
		},
	})
}
