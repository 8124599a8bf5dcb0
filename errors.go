package photonkd

import (
	"errors"
	"fmt"

	"github.com/hupe1980/photonkd/blobstore"
	"github.com/hupe1980/photonkd/internal/kdtree"
	"github.com/hupe1980/photonkd/internal/snapshot"
	"github.com/hupe1980/photonkd/resource"
)

var (
	// ErrInvalidArgument is the class of all precondition violations.
	ErrInvalidArgument = kdtree.ErrInvalidArgument

	// ErrEmptyInput is returned when Build is called without points.
	ErrEmptyInput = kdtree.ErrEmptyInput

	// ErrEmptyTree is returned when Delete is called on an empty tree.
	ErrEmptyTree = kdtree.ErrEmptyTree

	// ErrNotFound is returned when a snapshot does not exist in the store.
	ErrNotFound = errors.New("snapshot not found")

	// ErrCorruptSnapshot is returned when a snapshot fails validation.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")

	// ErrResourceLimit is returned when a snapshot exceeds the configured
	// memory budget.
	ErrResourceLimit = errors.New("resource limit exceeded")
)

// ErrInvalidAlpha indicates an imbalance factor outside (0, 1).
// It matches ErrInvalidArgument.
type ErrInvalidAlpha = kdtree.ErrInvalidAlpha

// ErrSnapshot reports a failed Save or Load.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrSnapshot struct {
	Op    string
	Name  string
	cause error
}

func (e *ErrSnapshot) Error() string {
	return fmt.Sprintf("%s snapshot %q: %v", e.Op, e.Name, e.cause)
}

func (e *ErrSnapshot) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, blobstore.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if errors.Is(err, snapshot.ErrCorrupt) || errors.Is(err, snapshot.ErrUnsupportedVersion) {
		return fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	if errors.Is(err, resource.ErrExceedsLimit) {
		return fmt.Errorf("%w: %w", ErrResourceLimit, err)
	}

	return err
}
