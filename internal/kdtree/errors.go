package kdtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the class of all precondition violations.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyInput is returned when Build is called without points.
	ErrEmptyInput = fmt.Errorf("%w: no points to build from", ErrInvalidArgument)

	// ErrEmptyTree is returned when Delete is called on a nil root.
	ErrEmptyTree = fmt.Errorf("%w: tree is empty", ErrInvalidArgument)
)

// ErrInvalidAlpha indicates an imbalance factor outside (0, 1).
type ErrInvalidAlpha struct {
	Alpha float64
}

func (e *ErrInvalidAlpha) Error() string {
	return fmt.Sprintf("invalid alpha %g: must be in (0, 1)", e.Alpha)
}

// Is makes ErrInvalidAlpha match ErrInvalidArgument.
func (e *ErrInvalidAlpha) Is(target error) bool { return target == ErrInvalidArgument }
