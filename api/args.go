package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidArgument is returned to the MCP framework when a tool call is
// missing a required argument or carries one of the wrong type.
var ErrInvalidArgument = errors.New("invalid argument")

// stringArg reads a string argument. An absent optional argument is "".
func stringArg(args map[string]any, name string, required bool) (string, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		if required {
			return "", fmt.Errorf("%w: %s is required", ErrInvalidArgument, name)
		}
		return "", nil
	}

	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidArgument, name, raw)
	}
	if required && strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%w: %s must not be empty", ErrInvalidArgument, name)
	}
	return s, nil
}

// numberArg reads a required numeric argument. Clients differ in how they
// encode numbers, so integers, json.Number and numeric strings are accepted.
func numberArg(args map[string]any, name string) (float64, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidArgument, name)
	}

	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrInvalidArgument, name, err)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be a number, got %q", ErrInvalidArgument, name, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %s must be a number, got %T", ErrInvalidArgument, name, raw)
	}
}
