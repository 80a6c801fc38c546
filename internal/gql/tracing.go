package gql

import (
	"github.com/graphql-go/graphql"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/SARVESHVARADKAR123/blog-graphql/internal/gql")

// traced wraps a root field resolver in a span named after the field.
func traced(root string, fn graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		ctx, span := tracer.Start(p.Context, root+"."+p.Info.FieldName)
		defer span.End()
		span.SetAttributes(attribute.String("graphql.field", p.Info.FieldName))

		p.Context = ctx
		v, err := fn(p)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return v, err
	}
}
