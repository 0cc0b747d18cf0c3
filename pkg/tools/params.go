package tools

import (
	"fmt"
	"strings"
)

// ReadString reads a string argument. Missing or mistyped values are
// an error only when the argument is required.
func ReadString(args map[string]any, key string, required bool) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		if required {
			return "", fmt.Errorf("parameter %q is required", key)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		if required {
			return "", fmt.Errorf("parameter %q must be a string", key)
		}
		return "", nil
	}
	return strings.TrimSpace(s), nil
}

// ReadInt reads an integer argument, returning defaultVal when absent.
// JSON numbers arrive as float64; both are accepted.
func ReadInt(args map[string]any, key string, defaultVal int) (int, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return defaultVal, nil
	}
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	}
	return 0, fmt.Errorf("parameter %q must be a number", key)
}

// ReadBoolDefault reads a boolean argument, tolerating string and
// numeric encodings from lenient clients.
func ReadBoolDefault(args map[string]any, key string, defaultVal bool) bool {
	v, ok := args[key]
	if !ok || v == nil {
		return defaultVal
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		lower := strings.ToLower(strings.TrimSpace(b))
		return lower == "true" || lower == "1" || lower == "yes"
	case float64:
		return b != 0
	case int:
		return b != 0
	}
	return defaultVal
}
