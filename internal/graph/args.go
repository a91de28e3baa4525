package graph

import (
	"time"

	apperrors "fintrack/internal/errors"

	"github.com/google/uuid"
)

func invalidIDError() error {
	return apperrors.NewWithMessage(apperrors.ValidationInvalidFormat, "Invalid ID format")
}

// Input objects arrive from graphql-go as map[string]interface{}; these
// helpers pull typed values out of them.

func stringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func optionalStringArg(args map[string]interface{}, key string) *string {
	if v, ok := args[key].(string); ok {
		return &v
	}
	return nil
}

func optionalFloatArg(args map[string]interface{}, key string) *float64 {
	switch v := args[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

func floatArg(args map[string]interface{}, key string) float64 {
	if v := optionalFloatArg(args, key); v != nil {
		return *v
	}
	return 0
}

func intArg(args map[string]interface{}, key string) int {
	switch v := args[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func timeArg(args map[string]interface{}, key string) time.Time {
	switch v := args[key].(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func optionalTimeArg(args map[string]interface{}, key string) *time.Time {
	parsed := timeArg(args, key)
	if parsed.IsZero() {
		return nil
	}
	return &parsed
}

func uuidArg(args map[string]interface{}, key string) (uuid.UUID, error) {
	return uuid.Parse(stringArg(args, key))
}

func inputArg(args map[string]interface{}, key string) map[string]interface{} {
	if v, ok := args[key].(map[string]interface{}); ok {
		return v
	}
	return map[string]interface{}{}
}
