package gql

import (
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/model"
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

// A nil return from ParseValue or ParseLiteral makes graphql-go reject the
// value during variable coercion or validation.

// UUID accepts canonical 36 character UUID strings only.
var UUID = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "UUID",
	Description: "A canonical, hyphenated UUID string.",
	Serialize:   func(value interface{}) interface{} { return coerceUUID(value) },
	ParseValue:  func(value interface{}) interface{} { return coerceUUID(value) },
	ParseLiteral: func(valueAST ast.Value) interface{} {
		if v, ok := valueAST.(*ast.StringValue); ok {
			return coerceUUID(v.Value)
		}
		return nil
	},
})

// MemberTypeID accepts BASIC or BUSINESS.
var MemberTypeID = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "MemberTypeId",
	Description: "Identifier of a member type: BASIC or BUSINESS.",
	Serialize: func(value interface{}) interface{} {
		if id := coerceMemberTypeID(value); id != nil {
			return string(*id)
		}
		return nil
	},
	ParseValue: func(value interface{}) interface{} {
		if id := coerceMemberTypeID(value); id != nil {
			return *id
		}
		return nil
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		if v, ok := valueAST.(*ast.StringValue); ok {
			if id := coerceMemberTypeID(v.Value); id != nil {
				return *id
			}
		}
		return nil
	},
})

func coerceUUID(value interface{}) interface{} {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	case uuid.UUID:
		return v.String()
	default:
		return nil
	}
	// uuid.Parse also accepts urn and braced forms
	if len(s) != 36 {
		return nil
	}
	if _, err := uuid.Parse(s); err != nil {
		return nil
	}
	return s
}

func coerceMemberTypeID(value interface{}) *model.MemberTypeID {
	var id model.MemberTypeID
	switch v := value.(type) {
	case string:
		id = model.MemberTypeID(v)
	case model.MemberTypeID:
		id = v
	case *model.MemberTypeID:
		if v == nil {
			return nil
		}
		id = *v
	default:
		return nil
	}
	if !id.Valid() {
		return nil
	}
	return &id
}
