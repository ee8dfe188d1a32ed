package domain

import (
	"errors"
	"testing"
)

func TestParseValidity(t *testing.T) {
	tests := []struct {
		in      string
		want    Validity
		wantErr bool
	}{
		{"", ValidityUnknown, false},
		{"unknown", ValidityUnknown, false},
		{"true", ValidityTrue, false},
		{"false", ValidityFalse, false},
		{"TRUE", "", true},
		{"maybe", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseValidity(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidValidity) {
					t.Errorf("ParseValidity(%q) error = %v, want ErrInvalidValidity", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseValidity(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseValidity(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOnlyTrueSatisfiesPremise(t *testing.T) {
	if !ValidityTrue.IsTrue() {
		t.Error("true should satisfy a positive premise")
	}
	if ValidityFalse.IsTrue() || ValidityUnknown.IsTrue() {
		t.Error("false and unknown must not satisfy a positive premise")
	}
}

func TestUnknownBeliefError(t *testing.T) {
	err := NewUnknownBeliefError("a", "b")

	if !errors.Is(err, ErrUnknownBelief) {
		t.Fatal("expected errors.Is to match ErrUnknownBelief")
	}
	if errors.Is(err, ErrUnknownJustification) {
		t.Error("must not match ErrUnknownJustification")
	}

	var ube *UnknownBeliefError
	if !errors.As(err, &ube) {
		t.Fatal("expected errors.As to find UnknownBeliefError")
	}
	if got := ube.Error(); got != "unknown belief: a, b" {
		t.Errorf("Error() = %q", got)
	}
}
