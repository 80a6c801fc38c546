package gql

import (
	"errors"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/model"
	"github.com/graphql-go/graphql"
)

// unique resolves a single row; a missing row is null, not an error.
func unique[T any](p graphql.ResolveParams, v *T, err error) (interface{}, error) {
	if errors.Is(err, model.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, MapError(p.Context, err)
	}
	if v == nil {
		return nil, nil
	}
	return v, nil
}

func many[T any](p graphql.ResolveParams, v []*T, err error) (interface{}, error) {
	if err != nil {
		return nil, MapError(p.Context, err)
	}
	return v, nil
}

// mutated reports every error, including a missing row.
func mutated[T any](p graphql.ResolveParams, v *T, err error) (interface{}, error) {
	if err != nil {
		return nil, MapError(p.Context, err)
	}
	if v == nil {
		return nil, nil
	}
	return v, nil
}

func deleted(p graphql.ResolveParams, err error) (interface{}, error) {
	if err != nil {
		return nil, MapError(p.Context, err)
	}
	return true, nil
}

func stringArg(args map[string]interface{}, name string) string {
	s, _ := args[name].(string)
	return s
}

func inputArg(p graphql.ResolveParams) map[string]interface{} {
	dto, _ := p.Args["dto"].(map[string]interface{})
	if dto == nil {
		return map[string]interface{}{}
	}
	return dto
}

// Absent keys and explicit nulls both arrive as missing map entries.

func optString(in map[string]interface{}, name string) *string {
	if v, ok := in[name].(string); ok {
		return &v
	}
	return nil
}

func optBool(in map[string]interface{}, name string) *bool {
	if v, ok := in[name].(bool); ok {
		return &v
	}
	return nil
}

func optInt(in map[string]interface{}, name string) *int {
	var i int
	switch v := in[name].(type) {
	case int:
		i = v
	case int32:
		i = int(v)
	case int64:
		i = int(v)
	case float64:
		i = int(v)
	default:
		return nil
	}
	return &i
}

func optFloat(in map[string]interface{}, name string) *float64 {
	var f float64
	switch v := in[name].(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	default:
		return nil
	}
	return &f
}

func optMemberTypeID(in map[string]interface{}, name string) *model.MemberTypeID {
	return coerceMemberTypeID(in[name])
}
