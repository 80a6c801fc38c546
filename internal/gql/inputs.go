package gql

import (
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/model"
	"github.com/graphql-go/graphql"
)

var createUserInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateUserInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"balance": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
	},
})

var changeUserInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ChangeUserInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"balance": &graphql.InputObjectFieldConfig{Type: graphql.Float},
	},
})

var createPostInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreatePostInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"content":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"authorId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(UUID)},
	},
})

var changePostInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ChangePostInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"content": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

// Every field is nullable in the schema; ProfileService enforces presence.
var createProfileInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateProfileInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"isMale":       &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"yearOfBirth":  &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"userId":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"memberTypeId": &graphql.InputObjectFieldConfig{Type: MemberTypeID},
	},
})

var changeProfileInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ChangeProfileInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"isMale":       &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"yearOfBirth":  &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"memberTypeId": &graphql.InputObjectFieldConfig{Type: MemberTypeID},
	},
})

func toCreateUser(in map[string]interface{}) model.CreateUser {
	out := model.CreateUser{Name: stringArg(in, "name")}
	if b := optFloat(in, "balance"); b != nil {
		out.Balance = *b
	}
	return out
}

func toUserChanges(in map[string]interface{}) model.UserChanges {
	return model.UserChanges{
		Name:    optString(in, "name"),
		Balance: optFloat(in, "balance"),
	}
}

func toCreatePost(in map[string]interface{}) model.CreatePost {
	return model.CreatePost{
		Title:    stringArg(in, "title"),
		Content:  stringArg(in, "content"),
		AuthorID: stringArg(in, "authorId"),
	}
}

func toPostChanges(in map[string]interface{}) model.PostChanges {
	return model.PostChanges{
		Title:   optString(in, "title"),
		Content: optString(in, "content"),
	}
}

func toCreateProfile(in map[string]interface{}) model.CreateProfile {
	out := model.CreateProfile{
		IsMale:      optBool(in, "isMale"),
		YearOfBirth: optInt(in, "yearOfBirth"),
		UserID:      stringArg(in, "userId"),
	}
	if id := optMemberTypeID(in, "memberTypeId"); id != nil {
		out.MemberTypeID = *id
	}
	return out
}

func toProfileChanges(in map[string]interface{}) model.ProfileChanges {
	return model.ProfileChanges{
		IsMale:       optBool(in, "isMale"),
		YearOfBirth:  optInt(in, "yearOfBirth"),
		MemberTypeID: optMemberTypeID(in, "memberTypeId"),
	}
}
