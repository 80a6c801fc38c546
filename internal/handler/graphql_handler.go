package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/gql"
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/middleware"
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/observability"
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/transport"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// Executor is satisfied by *gql.Executor.
type Executor interface {
	Execute(ctx context.Context, req gql.Request) *gql.Response
}

// GraphQLHandler serves POST requests carrying {query, variables, operationName}.
type GraphQLHandler struct {
	exec Executor
}

func NewGraphQLHandler(exec Executor) *GraphQLHandler {
	return &GraphQLHandler{exec: exec}
}

func (h *GraphQLHandler) Serve(w http.ResponseWriter, r *http.Request) {
	var req gql.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		transport.WriteError(w, http.StatusBadRequest, "invalid_request", "query is required")
		return
	}

	res := h.exec.Execute(r.Context(), req)
	if len(res.Errors) > 0 {
		observability.GetLogger(r.Context()).Debug("graphql request returned errors",
			zap.String("operation", req.OperationName),
			zap.String("user_id", middleware.UserID(r.Context())),
			zap.Int("errors", len(res.Errors)),
		)
	}

	transport.WriteJSON(w, http.StatusOK, res)
}
