package domain

import "github.com/cockroachdb/errors"

// Validity is the tri-state truth value tracked for every belief.
// Evaluation only ever produces ValidityUnknown or ValidityTrue;
// ValidityFalse is reachable only through an explicit override.
type Validity string

const (
	ValidityUnknown Validity = "unknown"
	ValidityTrue    Validity = "true"
	ValidityFalse   Validity = "false"
)

func ValidValidity(v string) bool {
	switch Validity(v) {
	case ValidityUnknown, ValidityTrue, ValidityFalse:
		return true
	}
	return false
}

// ParseValidity accepts the canonical names plus the empty string,
// which is read as unknown.
func ParseValidity(s string) (Validity, error) {
	if s == "" {
		return ValidityUnknown, nil
	}
	if !ValidValidity(s) {
		return "", errors.Wrapf(ErrInvalidValidity, "parse %q", s)
	}
	return Validity(s), nil
}

// IsTrue reports whether the value satisfies a positive premise.
func (v Validity) IsTrue() bool {
	return v == ValidityTrue
}

// BeliefView is the read-only state a renderer needs to pick a style.
type BeliefView struct {
	ID           string   `json:"id"`
	Validity     Validity `json:"validity"`
	NonMonotonic bool     `json:"non_monotonic"`
}

// ExplanationReason says why a belief holds its current validity.
type ExplanationReason string

const (
	ReasonJustified    ExplanationReason = "justified"
	ReasonNonMonotonic ExplanationReason = "non_monotonic"
	ReasonForced       ExplanationReason = "forced"
	ReasonUnsupported  ExplanationReason = "unsupported"
)

type Explanation struct {
	BeliefID string            `json:"belief_id"`
	Validity Validity          `json:"validity"`
	Reason   ExplanationReason `json:"reason"`
	// JustifiedBy is set only when Reason is ReasonJustified.
	JustifiedBy *JustificationView `json:"justified_by,omitempty"`
}
