// File: stringx_test.go
// Title: String Utilities Tests
// Description: Tests for the stringx module covering blankness checks,
//              truncation, padding, line splitting, and interning.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial test implementation

package stringx

import "testing"

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty string", "", true},
		{"whitespace only", "   ", false},
		{"non-empty", "a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmpty(tt.input); got != tt.want {
				t.Errorf("IsEmpty(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got := IsNotEmpty(tt.input); got == tt.want {
				t.Errorf("IsNotEmpty(%q) = %v, want %v", tt.input, got, !tt.want)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty string", "", true},
		{"spaces", "   ", true},
		{"tabs and newlines", "\t\n\r ", true},
		{"unicode whitespace", "  ", true},
		{"single character", "x", false},
		{"surrounded by whitespace", "  a  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.want {
				t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got := IsNotBlank(tt.input); got == tt.want {
				t.Errorf("IsNotBlank(%q) = %v, want %v", tt.input, got, !tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		want     string
	}{
		{"shorter than max", "abc", 10, "...", "abc"},
		{"exact length", "abcde", 5, "...", "abcde"},
		{"truncated with ellipsis", "abcdefghij", 6, "...", "abc..."},
		{"zero max length", "abc", 0, "...", ""},
		{"ellipsis longer than max", "abcdefghij", 2, "...", "ab"},
		{"unicode content", "äöüäöüäöü", 5, "…", "äöüä…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.want {
				t.Errorf("Truncate(%q, %d, %q) = %q, want %q", tt.input, tt.maxLen, tt.ellipsis, got, tt.want)
			}
		})
	}
}

func TestPadLeft(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		pad   rune
		want  string
	}{
		{"pad with spaces", "7", 3, ' ', "  7"},
		{"pad with zeros", "42", 5, '0', "00042"},
		{"already wide enough", "hello", 3, ' ', "hello"},
		{"unicode pad rune", "x", 3, '·', "··x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PadLeft(tt.input, tt.width, tt.pad); got != tt.want {
				t.Errorf("PadLeft(%q, %d, %q) = %q, want %q", tt.input, tt.width, tt.pad, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		pad   rune
		want  string
	}{
		{"pad with spaces", "AND", 8, ' ', "AND     "},
		{"already wide enough", "IMPLIES", 4, ' ', "IMPLIES"},
		{"unicode content", "äö", 4, '-', "äö--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PadRight(tt.input, tt.width, tt.pad); got != tt.want {
				t.Errorf("PadRight(%q, %d, %q) = %q, want %q", tt.input, tt.width, tt.pad, got, tt.want)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"unix endings", "a\nb\nc", []string{"a", "b", "c"}},
		{"windows endings", "a\r\nb\r\nc", []string{"a", "b", "c"}},
		{"old mac endings", "a\rb\rc", []string{"a", "b", "c"}},
		{"mixed endings", "a\r\nb\nc\r", []string{"a", "b", "c", ""}},
		{"single line", "abc", []string{"abc"}},
		{"empty string", "", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitLines(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", "  ", "third"); got != "  " {
		t.Errorf("FirstNonEmpty = %q, want %q", got, "  ")
	}
	if got := FirstNonEmpty("", ""); got != "" {
		t.Errorf("FirstNonEmpty = %q, want empty", got)
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", "third"); got != "third" {
		t.Errorf("FirstNonBlank = %q, want %q", got, "third")
	}
	if got := FirstNonBlank("", "  "); got != "" {
		t.Errorf("FirstNonBlank = %q, want empty", got)
	}
}

func TestIntern(t *testing.T) {
	t.Run("returns equal string", func(t *testing.T) {
		s := Intern("variable_name")
		if s != "variable_name" {
			t.Errorf("Intern changed value: %q", s)
		}
	})

	t.Run("empty string passthrough", func(t *testing.T) {
		if Intern("") != "" {
			t.Error("Intern of empty string should be empty")
		}
	})

	t.Run("repeated calls return same backing string", func(t *testing.T) {
		a := Intern("repeated")
		b := Intern("repeated")
		if a != b {
			t.Error("Interned strings differ")
		}
	})
}
