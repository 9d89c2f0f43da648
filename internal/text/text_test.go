package text

import (
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		n        int
		expected string
	}{
		{
			name:     "no truncation needed",
			input:    "Atlas Hoodie",
			n:        20,
			expected: "Atlas Hoodie",
		},
		{
			name:     "truncation with ellipsis",
			input:    "Atlas Hoodie Heavyweight",
			n:        12,
			expected: "Atlas Hoo...",
		},
		{
			name:     "min length enforced",
			input:    "hoodie",
			n:        2,
			expected: "h...",
		},
		{
			name:     "counts runes not bytes",
			input:    "véste d'hiver matelassée",
			n:        10,
			expected: "véste d...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.input, tt.n)
			if result != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.n, result, tt.expected)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "short line no wrap",
			input:    "heavy fleece",
			width:    80,
			expected: "heavy fleece",
		},
		{
			name:     "wrap at width",
			input:    "heavy fleece lined hood",
			width:    12,
			expected: "heavy fleece\nlined hood",
		},
		{
			name:     "preserves newlines",
			input:    "line1\nline2",
			width:    80,
			expected: "line1\nline2",
		},
		{
			name:     "empty string",
			input:    "",
			width:    80,
			expected: "",
		},
		{
			name:     "width zero returns input",
			input:    "test",
			width:    0,
			expected: "test",
		},
		{
			name:     "long word kept whole",
			input:    "ultraheavyweight tee",
			width:    5,
			expected: "ultraheavyweight\ntee",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrap(tt.input, tt.width)
			if result != tt.expected {
				t.Errorf("Wrap(%q, %d) = %q, want %q", tt.input, tt.width, result, tt.expected)
			}
		})
	}
}
