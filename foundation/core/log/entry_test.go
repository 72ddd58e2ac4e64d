// File: entry_test.go
// Title: Log Entry Tests
// Description: Tests for log entry creation, field helpers, and the
//              fluent entry builder methods.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial implementation with entry and fields tests

package log

import (
	"errors"
	"testing"
	"time"
)

func TestFieldHelpers(t *testing.T) {
	err := errors.New("boom")

	tests := []struct {
		name   string
		fields Fields
		key    string
		want   interface{}
	}{
		{"Field", Field("k", "v"), "k", "v"},
		{"Err", Err(err), "error", err},
		{"Duration", Duration("took", time.Second), "took", time.Second},
		{"Int", Int("n", 42), "n", 42},
		{"Uint64", Uint64("space", uint64(16)), "space", uint64(16)},
		{"String", String("s", "x"), "s", "x"},
		{"Bool", Bool("ok", true), "ok", true},
		{"Any", Any("v", 3.14), "v", 3.14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.fields) != 1 {
				t.Fatalf("helper produced %d fields, want 1", len(tt.fields))
			}
			if got := tt.fields[tt.key]; got != tt.want {
				t.Errorf("fields[%q] = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestFieldsMerge(t *testing.T) {
	a := Fields{"x": 1, "y": 2}
	b := Fields{"y": 3, "z": 4}

	merged := a.Merge(b)

	if len(merged) != 3 {
		t.Fatalf("Merge() produced %d fields, want 3", len(merged))
	}
	if merged["y"] != 3 {
		t.Errorf("Merge() did not let other side win: y = %v", merged["y"])
	}
	if a["y"] != 2 {
		t.Errorf("Merge() mutated the receiver: y = %v", a["y"])
	}
}

func TestFieldsWith(t *testing.T) {
	var f Fields
	f = f.With("k", "v")

	if f["k"] != "v" {
		t.Errorf("With() on nil Fields failed: %v", f)
	}

	f = f.With("k2", 2)
	if len(f) != 2 {
		t.Errorf("With() produced %d fields, want 2", len(f))
	}
}

func TestFieldsClone(t *testing.T) {
	var nilFields Fields
	if nilFields.Clone() != nil {
		t.Error("Clone() of nil Fields should be nil")
	}

	f := Fields{"a": 1}
	c := f.Clone()
	c["a"] = 2

	if f["a"] != 1 {
		t.Errorf("Clone() shares storage with original: a = %v", f["a"])
	}
}

func TestNewEntry(t *testing.T) {
	before := time.Now()
	entry := NewEntry(LevelWarn, "watch out")

	if entry.Level != LevelWarn {
		t.Errorf("NewEntry() level = %v, want %v", entry.Level, LevelWarn)
	}
	if entry.Message != "watch out" {
		t.Errorf("NewEntry() message = %q", entry.Message)
	}
	if entry.Timestamp.Before(before) {
		t.Error("NewEntry() timestamp is in the past")
	}
	if entry.Fields == nil {
		t.Error("NewEntry() fields not initialized")
	}
}

func TestEntryBuilders(t *testing.T) {
	err := errors.New("boom")

	entry := NewEntry(LevelInfo, "msg").
		WithField("a", 1).
		WithFields(Fields{"b": 2}).
		WithError(err).
		WithDuration(time.Second).
		WithRunID("run-1").
		WithLogger("solver")

	if entry.Fields["a"] != 1 || entry.Fields["b"] != 2 {
		t.Errorf("entry fields = %v", entry.Fields)
	}
	if entry.Error != err {
		t.Errorf("entry error = %v", entry.Error)
	}
	if entry.Duration != time.Second {
		t.Errorf("entry duration = %v", entry.Duration)
	}
	if entry.RunID != "run-1" {
		t.Errorf("entry run ID = %q", entry.RunID)
	}
	if entry.Logger != "solver" {
		t.Errorf("entry logger = %q", entry.Logger)
	}
}

func TestEntryClone(t *testing.T) {
	var nilEntry *Entry
	if nilEntry.Clone() != nil {
		t.Error("Clone() of nil entry should be nil")
	}

	entry := NewEntry(LevelInfo, "msg").WithField("a", 1).WithRunID("run-1")
	clone := entry.Clone()

	clone.Fields["a"] = 2
	clone.RunID = "run-2"

	if entry.Fields["a"] != 1 {
		t.Errorf("Clone() shares fields with original: a = %v", entry.Fields["a"])
	}
	if entry.RunID != "run-1" {
		t.Errorf("Clone() mutated original run ID: %q", entry.RunID)
	}
}
