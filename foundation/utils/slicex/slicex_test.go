// File: slicex_test.go
// Title: Slice Utilities Tests
// Description: Tests for the slicex module covering filtering, mapping,
//              deduplication, lookups, equality, and cloning.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial test implementation

package slicex

import "testing"

func TestFilter(t *testing.T) {
	t.Run("filters by predicate", func(t *testing.T) {
		input := []int{1, 2, 3, 4, 5, 6}
		got := Filter(input, func(n int) bool { return n%2 == 0 })
		want := []int{2, 4, 6}
		if !Equal(got, want) {
			t.Errorf("Filter = %v, want %v", got, want)
		}
	})

	t.Run("nil slice yields nil", func(t *testing.T) {
		if got := Filter[int](nil, func(int) bool { return true }); got != nil {
			t.Errorf("Filter(nil) = %v, want nil", got)
		}
	})

	t.Run("original slice unchanged", func(t *testing.T) {
		input := []string{"a", "", "b"}
		Filter(input, func(s string) bool { return s != "" })
		if !Equal(input, []string{"a", "", "b"}) {
			t.Error("Filter modified the input slice")
		}
	})
}

func TestMap(t *testing.T) {
	t.Run("transforms elements", func(t *testing.T) {
		input := []string{"a", "b"}
		got := Map(input, func(s string) string { return s + "=true" })
		want := []string{"a=true", "b=true"}
		if !Equal(got, want) {
			t.Errorf("Map = %v, want %v", got, want)
		}
	})

	t.Run("changes element type", func(t *testing.T) {
		input := []int{1, 2, 3}
		got := Map(input, func(n int) bool { return n > 1 })
		want := []bool{false, true, true}
		if !Equal(got, want) {
			t.Errorf("Map = %v, want %v", got, want)
		}
	})

	t.Run("nil slice yields nil", func(t *testing.T) {
		if got := Map[int, int](nil, func(n int) int { return n }); got != nil {
			t.Errorf("Map(nil) = %v, want nil", got)
		}
	})
}

func TestUnique(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"removes duplicates", []string{"b", "a", "b", "c", "a"}, []string{"b", "a", "c"}},
		{"already unique", []string{"x", "y"}, []string{"x", "y"}},
		{"all duplicates", []string{"v", "v", "v"}, []string{"v"}},
		{"empty slice", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Unique(tt.input)
			if !Equal(got, tt.want) {
				t.Errorf("Unique(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	t.Run("nil slice yields nil", func(t *testing.T) {
		if got := Unique[string](nil); got != nil {
			t.Errorf("Unique(nil) = %v, want nil", got)
		}
	})
}

func TestContains(t *testing.T) {
	slice := []string{"a", "b", "c"}

	if !Contains(slice, "b") {
		t.Error("Expected slice to contain 'b'")
	}
	if Contains(slice, "d") {
		t.Error("Expected slice not to contain 'd'")
	}
	if Contains[string](nil, "a") {
		t.Error("Expected nil slice to contain nothing")
	}
}

func TestIndexOf(t *testing.T) {
	slice := []string{"a", "b", "c", "b"}

	tests := []struct {
		element string
		want    int
	}{
		{"a", 0},
		{"b", 1},
		{"c", 2},
		{"missing", -1},
	}

	for _, tt := range tests {
		if got := IndexOf(slice, tt.element); got != tt.want {
			t.Errorf("IndexOf(%q) = %d, want %d", tt.element, got, tt.want)
		}
	}
}

func TestFind(t *testing.T) {
	slice := []int{1, 5, 10, 15}

	t.Run("element found", func(t *testing.T) {
		got, found := Find(slice, func(n int) bool { return n > 7 })
		if !found || got != 10 {
			t.Errorf("Find = (%d, %v), want (10, true)", got, found)
		}
	})

	t.Run("element not found", func(t *testing.T) {
		got, found := Find(slice, func(n int) bool { return n > 100 })
		if found || got != 0 {
			t.Errorf("Find = (%d, %v), want (0, false)", got, found)
		}
	})
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name   string
		slice1 []int
		slice2 []int
		want   bool
	}{
		{"equal slices", []int{1, 2, 3}, []int{1, 2, 3}, true},
		{"different lengths", []int{1, 2}, []int{1, 2, 3}, false},
		{"different elements", []int{1, 2, 3}, []int{1, 2, 4}, false},
		{"both empty", []int{}, []int{}, true},
		{"nil and empty", nil, []int{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.slice1, tt.slice2); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.slice1, tt.slice2, got, tt.want)
			}
		})
	}
}

func TestClone(t *testing.T) {
	t.Run("clone is independent", func(t *testing.T) {
		original := []bool{true, false, true}
		cloned := Clone(original)
		cloned[0] = false

		if !original[0] {
			t.Error("Mutating the clone changed the original")
		}
	})

	t.Run("nil slice yields nil", func(t *testing.T) {
		if got := Clone[int](nil); got != nil {
			t.Errorf("Clone(nil) = %v, want nil", got)
		}
	})
}
