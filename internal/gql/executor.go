package gql

import (
	"context"
	"encoding/json"
	"time"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/observability"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
)

// DefaultDepthLimit is the maximum selection depth when none is configured.
const DefaultDepthLimit = 5

// Request is the JSON body of a GraphQL POST.
type Request struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// Response omits data when the request failed before execution.
type Response struct {
	Data   interface{}                `json:"data,omitempty"`
	Errors []gqlerrors.FormattedError `json:"errors,omitempty"`
}

var jsonNull = json.RawMessage("null")

// Executor parses, validates and executes requests against one schema.
type Executor struct {
	schema     graphql.Schema
	depthLimit int
}

// NewExecutor returns an executor enforcing depthLimit; 0 disables the limit.
func NewExecutor(schema graphql.Schema, depthLimit int) *Executor {
	return &Executor{schema: schema, depthLimit: depthLimit}
}

func (e *Executor) Execute(ctx context.Context, req Request) *Response {
	start := time.Now()

	doc, err := parser.Parse(parser.ParseParams{Source: req.Query})
	if err != nil {
		observe("unknown", "parse_error", start)
		return &Response{Errors: gqlerrors.FormatErrors(err)}
	}
	kind := operationKind(doc, req.OperationName)

	if errs := CheckDepth(doc, e.depthLimit); len(errs) > 0 {
		observe(kind, "validation_error", start)
		return &Response{Errors: errs}
	}

	if vr := graphql.ValidateDocument(&e.schema, doc, nil); !vr.IsValid {
		observe(kind, "validation_error", start)
		return &Response{Errors: vr.Errors}
	}

	res := graphql.Execute(graphql.ExecuteParams{
		Schema:        e.schema,
		AST:           doc,
		OperationName: req.OperationName,
		Args:          req.Variables,
		Context:       ctx,
	})

	outcome := "ok"
	if res.HasErrors() {
		outcome = "execution_error"
	}
	observe(kind, outcome, start)

	out := &Response{Data: res.Data, Errors: res.Errors}
	if out.Data == nil {
		out.Data = jsonNull
	}
	return out
}

func observe(kind, outcome string, start time.Time) {
	observability.GraphQLOperationsTotal.WithLabelValues(kind, outcome).Inc()
	observability.GraphQLOperationDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

// operationKind labels metrics with query or mutation rather than the client
// chosen operation name.
func operationKind(doc *ast.Document, name string) string {
	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		if name == "" || operationName(op) == name {
			return op.Operation
		}
	}
	return "unknown"
}
