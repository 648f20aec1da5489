package tools

import (
	"encoding/json"
	"fmt"

	"github.com/exatools/exa-mcp-server/internal/exa"
)

// Argument extraction helpers. Tool arguments arrive as a loosely typed map
// decoded from JSON, so numbers are float64 and arrays are []interface{}.

func argString(input map[string]interface{}, key string) string {
	s, _ := input[key].(string)
	return s
}

func requireString(input map[string]interface{}, key string) (string, error) {
	s := argString(input, key)
	if s == "" {
		return "", exa.NewValidationError("argument '%s' is required", key)
	}
	return s, nil
}

func argInt(input map[string]interface{}, key string, fallback int) int {
	switch v := input[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return fallback
}

func argBool(input map[string]interface{}, key string) bool {
	b, _ := input[key].(bool)
	return b
}

// argStringSlice converts a JSON array argument to []string. The second
// return is false when the argument is present but not an array.
func argStringSlice(input map[string]interface{}, key string) ([]string, bool) {
	raw, present := input[key]
	if !present || raw == nil {
		return nil, true
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, fmt.Sprint(it))
	}
	return out, true
}

func argObject(input map[string]interface{}, key string) map[string]interface{} {
	m, _ := input[key].(map[string]interface{})
	return m
}

// marshalResult serializes a tool result value the way the protocol expects:
// stable field order, two-space indentation.
func marshalResult(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal tool result: %w", err)
	}
	return string(b), nil
}
