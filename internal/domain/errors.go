package domain

import (
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	ErrUnknownBelief        = errors.New("unknown belief")
	ErrUnknownJustification = errors.New("unknown justification")
	ErrInvalidValidity      = errors.New("invalid validity")
)

// UnknownBeliefError names every identifier that could not be resolved.
type UnknownBeliefError struct {
	IDs []string
}

func (e *UnknownBeliefError) Error() string {
	return "unknown belief: " + strings.Join(e.IDs, ", ")
}

func (e *UnknownBeliefError) Is(target error) bool {
	return target == ErrUnknownBelief
}

func NewUnknownBeliefError(ids ...string) error {
	return errors.WithStack(&UnknownBeliefError{IDs: ids})
}
