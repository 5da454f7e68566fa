package services

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "flat string",
			raw:  "  You are in a dark cave.  ",
			want: "You are in a dark cave.",
		},
		{
			name: "segments joined by a single space",
			raw:  `[{"text":"You wake up."},{"text":"It is dark."}]`,
			want: "You wake up. It is dark.",
		},
		{
			name: "text field preferred at depth",
			raw:  `{"generations":[{"id":"abc","text":"A troll appears."}]}`,
			want: "A troll appears.",
		},
		{
			name: "nested object without text field",
			raw:  `{"a":{"b":"deep"},"c":"shallow"}`,
			want: "deep shallow",
		},
		{
			name: "json number is not structured text",
			raw:  "42",
			want: "42",
		},
		{
			name: "numbers contribute nothing inside structures",
			raw:  `{"tokens":150,"text":"Go north."}`,
			want: "Go north.",
		},
		{
			name: "empty input",
			raw:  "   ",
			want: "",
		},
		{
			name: "structure with no text falls back to empty",
			raw:  `{"count":3}`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.raw); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestExtractTextPrecedence(t *testing.T) {
	// A text field short-circuits recursion even when siblings hold text.
	v := map[string]any{
		"text":  "winner",
		"other": map[string]any{"text": "loser"},
	}
	if got := ExtractText(v); got != "winner" {
		t.Errorf("ExtractText() = %q, want %q", got, "winner")
	}
}
