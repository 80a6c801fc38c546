package gql

import (
	"github.com/graphql-go/graphql"
)

func dtoArgs(input *graphql.InputObject, withID bool) graphql.FieldConfigArgument {
	args := graphql.FieldConfigArgument{
		"dto": &graphql.ArgumentConfig{Type: graphql.NewNonNull(input)},
	}
	if withID {
		args["id"] = &graphql.ArgumentConfig{Type: graphql.NewNonNull(UUID)}
	}
	return args
}

var subscriptionArgs = graphql.FieldConfigArgument{
	"userId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(UUID)},
	"authorId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(UUID)},
}

func (b *builder) mutationType() *graphql.Object {
	m := func(fn graphql.FieldResolveFn) graphql.FieldResolveFn { return traced("Mutation", fn) }

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type: graphql.NewNonNull(b.user),
				Args: dtoArgs(createUserInput, false),
				Resolve: m(func(p graphql.ResolveParams) (interface{}, error) {
					u, err := b.svc.Users.Create(p.Context, toCreateUser(inputArg(p)))
					return mutated(p, u, err)
				}),
			},
			"changeUser": &graphql.Field{
				Type: b.user,
				Args: dtoArgs(changeUserInput, true),
				Resolve: m(func(p graphql.ResolveParams) (interface{}, error) {
					u, err := b.svc.Users.Update(p.Context, stringArg(p.Args, "id"), toUserChanges(inputArg(p)))
					return mutated(p, u, err)
				}),
			},
			"deleteUser": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: idArg(UUID),
				Resolve: m(func(p graphql.ResolveParams) (interface{}, error) {
					return deleted(p, b.svc.Users.Delete(p.Context, stringArg(p.Args, "id")))
				}),
			},

			"createPost": &graphql.Field{
				Type: graphql.NewNonNull(b.post),
				Args: dtoArgs(createPostInput, false),
				Resolve: m(func(p graphql.ResolveParams) (interface{}, error) {
					post, err := b.svc.Posts.Create(p.Context, toCreatePost(inputArg(p)))
					return mutated(p, post, err)
				}),
			},
			"changePost": &graphql.Field{
				Type: b.post,
				Args: dtoArgs(changePostInput, true),
				Resolve: m(func(p graphql.ResolveParams) (interface{}, error) {
					post, err := b.svc.Posts.Update(p.Context, stringArg(p.Args, "id"), toPostChanges(inputArg(p)))
					return mutated(p, post, err)
				}),
			},
			"deletePost": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: idArg(UUID),
				Resolve: m(func(p graphql.ResolveParams) (interface{}, error) {
					return deleted(p, b.svc.Posts.Delete(p.Context, stringArg(p.Args, "id")))
				}),
			},

			"createProfile": &graphql.Field{
				Type: graphql.NewNonNull(b.profile),
				Args: dtoArgs(createProfileInput, false),
				Resolve: m(func(p graphql.ResolveParams) (interface{}, error) {
					profile, err := b.svc.Profiles.Create(p.Context, toCreateProfile(inputArg(p)))
					return mutated(p, profile, err)
				}),
			},
			"changeProfile": &graphql.Field{
				Type: b.profile,
				Args: dtoArgs(changeProfileInput, true),
				Resolve: m(func(p graphql.ResolveParams) (interface{}, error) {
					profile, err := b.svc.Profiles.Update(p.Context, stringArg(p.Args, "id"), toProfileChanges(inputArg(p)))
					return mutated(p, profile, err)
				}),
			},
			"deleteProfile": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: idArg(UUID),
				Resolve: m(func(p graphql.ResolveParams) (interface{}, error) {
					return deleted(p, b.svc.Profiles.Delete(p.Context, stringArg(p.Args, "id")))
				}),
			},

			"subscribeTo": &graphql.Field{
				Type: b.user,
				Args: subscriptionArgs,
				Resolve: m(func(p graphql.ResolveParams) (interface{}, error) {
					u, err := b.svc.Users.SubscribeTo(p.Context, stringArg(p.Args, "userId"), stringArg(p.Args, "authorId"))
					return mutated(p, u, err)
				}),
			},
			"unsubscribeFrom": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: subscriptionArgs,
				Resolve: m(func(p graphql.ResolveParams) (interface{}, error) {
					err := b.svc.Users.UnsubscribeFrom(p.Context, stringArg(p.Args, "userId"), stringArg(p.Args, "authorId"))
					return deleted(p, err)
				}),
			},
		},
	})
}
