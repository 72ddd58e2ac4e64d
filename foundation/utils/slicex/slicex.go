// File: slicex.go
// Title: Generic Slice Utility Functions
// Description: Implements type-safe slice operations using Go generics,
//              providing functional helpers for filtering, mapping,
//              deduplication, and lookups.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial implementation with core utilities

package slicex

// Filter returns a new slice containing only the elements for which the
// predicate returns true. The original slice is not modified.
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, element := range slice {
		if predicate(element) {
			result = append(result, element)
		}
	}
	return result
}

// Map transforms each element of the slice using the mapper function and
// returns a new slice with the results.
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, element := range slice {
		result[i] = mapper(element)
	}
	return result
}

// Unique returns a new slice with duplicate elements removed. The first
// occurrence of each element is kept and the original order is preserved.
func Unique[T comparable](slice []T) []T {
	if slice == nil {
		return nil
	}

	seen := make(map[T]struct{}, len(slice))
	result := make([]T, 0, len(slice))

	for _, element := range slice {
		if _, exists := seen[element]; !exists {
			seen[element] = struct{}{}
			result = append(result, element)
		}
	}
	return result
}

// Contains returns true if the slice contains the given element.
func Contains[T comparable](slice []T, element T) bool {
	for _, e := range slice {
		if e == element {
			return true
		}
	}
	return false
}

// IndexOf returns the index of the first occurrence of the element in the
// slice, or -1 if the element is not present.
func IndexOf[T comparable](slice []T, element T) int {
	for i, e := range slice {
		if e == element {
			return i
		}
	}
	return -1
}

// Find returns the first element for which the predicate returns true and
// a boolean indicating whether such an element was found.
func Find[T any](slice []T, predicate func(T) bool) (T, bool) {
	for _, element := range slice {
		if predicate(element) {
			return element, true
		}
	}
	var zero T
	return zero, false
}

// Equal returns true if both slices have the same length and contain equal
// elements in the same order.
func Equal[T comparable](slice1, slice2 []T) bool {
	if len(slice1) != len(slice2) {
		return false
	}
	for i := range slice1 {
		if slice1[i] != slice2[i] {
			return false
		}
	}
	return true
}

// Clone returns a shallow copy of the slice. A nil slice yields nil.
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}
	result := make([]T, len(slice))
	copy(result, slice)
	return result
}
