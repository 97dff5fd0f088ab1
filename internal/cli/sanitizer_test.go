package cli

import (
	"errors"
	"strings"
	"testing"
)

func TestSanitizeInput_SizeLimit(t *testing.T) {
	limit := DefaultMaxInputSize

	tests := []struct {
		name      string
		inputSize int
		wantErr   bool
	}{
		{"Under Limit", limit - 1, false},
		{"Exact Limit", limit, false},
		{"Over Limit", limit + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SanitizeInput(strings.Repeat("a", tt.inputSize))
			if tt.wantErr && !errors.Is(err, ErrInputTooLarge) {
				t.Errorf("SanitizeInput() expected ErrInputTooLarge for size %d, got %v", tt.inputSize, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("SanitizeInput() unexpected error: %v", err)
			}
		})
	}
}

func TestSanitizeInput_EnvOverride(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "4")

	if _, err := SanitizeInput("insert 5"); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("expected ErrInputTooLarge with lowered limit, got %v", err)
	}
}

func TestSanitizeInput_ControlChars(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"insert 5", "insert 5"},
		{"insert\t5", "insert\t5"},
		{"\x1b[31mchoose 1\x1b[0m", "[31mchoose 1[0m"},
		{"cho\x00ose 1\r", "choose 1"},
	}

	for _, tt := range tests {
		got, err := SanitizeInput(tt.input)
		if err != nil {
			t.Fatalf("SanitizeInput(%q) unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("SanitizeInput(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSanitizeInput_InvalidUTF8(t *testing.T) {
	if _, err := SanitizeInput("choose \xff"); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
}
