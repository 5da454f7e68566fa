package services

import (
	"encoding/json"
	"sort"
	"strings"
)

// ExtractText pulls the readable text out of a decoded provider response.
// Precedence: strings pass through, arrays are joined with a single space,
// objects prefer a string "text" field and otherwise recurse over their
// values in key order. Anything else contributes nothing.
func ExtractText(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := ExtractText(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	case map[string]any:
		if s, ok := val["text"].(string); ok {
			return s
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			if s := ExtractText(val[k]); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	default:
		return ""
	}
}

// NormalizeText collapses the heterogeneous provider response shapes into a
// single plain string. Structured JSON goes through ExtractText; everything
// else is returned trimmed.
func NormalizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	var decoded any
	if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
		switch decoded.(type) {
		case map[string]any, []any:
			return strings.TrimSpace(ExtractText(decoded))
		}
	}
	return trimmed
}
