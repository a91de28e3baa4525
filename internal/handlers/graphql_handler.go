package handlers

import (
	"net/http"
	"time"

	"fintrack/internal/errors"
	"fintrack/internal/graph"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/labstack/echo/v4"
)

// UserIDContextKey is the echo context key the auth middleware stores the
// authenticated user ID under
const UserIDContextKey = "user_id"

// graphqlRequest is the standard GraphQL POST body
type graphqlRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// GraphQLHandler executes GraphQL requests against the schema
type GraphQLHandler struct {
	schema  graphql.Schema
	metrics services.MetricsRecorderInterface
}

// NewGraphQLHandler creates a GraphQL handler over an executable schema
func NewGraphQLHandler(schema graphql.Schema, metrics services.MetricsRecorderInterface) *GraphQLHandler {
	return &GraphQLHandler{
		schema:  schema,
		metrics: metrics,
	}
}

// Execute handles POST /graphql
func (h *GraphQLHandler) Execute(c echo.Context) error {
	var req graphqlRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if req.Query == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("query is required"))
	}

	ctx := c.Request().Context()
	if userID, ok := c.Get(UserIDContextKey).(uuid.UUID); ok {
		ctx = graph.WithUserID(ctx, userID)
	}

	start := time.Now()
	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})
	h.recordMetrics(&req, result, time.Since(start))

	// Per GraphQL convention resolver errors still travel in a 200 body
	return c.JSON(http.StatusOK, result)
}

func (h *GraphQLHandler) recordMetrics(req *graphqlRequest, result *graphql.Result, duration time.Duration) {
	if h.metrics == nil {
		return
	}

	operation := req.OperationName
	if operation == "" {
		operation = "anonymous"
	}

	status := "success"
	if result.HasErrors() {
		status = "error"
	}

	h.metrics.IncrementCounter("graphql.operation", map[string]string{
		"operation": operation,
		"status":    status,
	})
	h.metrics.RecordProcessingTime("graphql.operation", duration)

	for _, gqlErr := range result.Errors {
		if code, ok := gqlErr.Extensions["code"].(string); ok {
			h.metrics.IncrementCounter("graphql.error", map[string]string{"code": code})
		}
	}
}
