package kdtree

import "fmt"

// DefaultAlpha is the default imbalance factor.
const DefaultAlpha = 0.6

// SplitPolicy selects the median index used by the builder.
type SplitPolicy uint8

const (
	// SplitLegacy takes the lower median on x and the upper median on y and z.
	SplitLegacy SplitPolicy = iota
	// SplitLowerMedian takes the lower median on every axis.
	SplitLowerMedian
)

// Index returns the split position for n points sorted along axis.
func (s SplitPolicy) Index(axis Axis, n int) int {
	i := n / 2
	if s == SplitLegacy && axis != AxisX {
		// floor(n/2 + 0.5)
		i = (n + 1) / 2
	}
	if i > n-1 {
		i = n - 1
	}
	return i
}

func (s SplitPolicy) String() string {
	switch s {
	case SplitLegacy:
		return "legacy"
	case SplitLowerMedian:
		return "lower-median"
	default:
		return fmt.Sprintf("split(%d)", uint8(s))
	}
}

// Accounting selects how Size and DeleteCount are recomputed on the path of
// an insert or delete.
type Accounting uint8

const (
	// AccountingExact counts the node itself: Size = 1 + left + right.
	AccountingExact Accounting = iota
	// AccountingLegacy sums the children only. A node's own unit is realized
	// when its parent is rebuilt.
	AccountingLegacy
)

func (a Accounting) String() string {
	switch a {
	case AccountingExact:
		return "exact"
	case AccountingLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("accounting(%d)", uint8(a))
	}
}

// Workers hands out background slots for parallel builds.
// *resource.Controller satisfies it.
type Workers interface {
	TryAcquireBackground() bool
	ReleaseBackground()
}

// RebuildReason tells why a subtree was rebuilt.
type RebuildReason string

const (
	ReasonImbalance  RebuildReason = "imbalance"
	ReasonTombstones RebuildReason = "tombstones"
)

// RebuildEvent describes one local rebuild.
type RebuildEvent struct {
	Reason RebuildReason
	// Nodes is the number of nodes in the subtree before the rebuild.
	Nodes int
	// Live is the number of points carried into the new subtree.
	Live int
}

// Config tunes the tree. The zero value is not valid; start from
// DefaultConfig.
type Config struct {
	// Alpha is the imbalance factor in (0, 1).
	Alpha float64

	Split      SplitPolicy
	Accounting Accounting

	// ParallelThreshold is the minimum partition size built on a separate
	// goroutine. Zero disables parallel builds.
	ParallelThreshold int

	// Workers bounds parallel builds. Nil means unbounded.
	Workers Workers

	// OnRebuild, if set, is called after every local rebuild.
	OnRebuild func(RebuildEvent)
}

// DefaultConfig returns the configuration matching the reference behaviour.
func DefaultConfig() Config {
	return Config{
		Alpha:      DefaultAlpha,
		Split:      SplitLegacy,
		Accounting: AccountingExact,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if !(c.Alpha > 0 && c.Alpha < 1) {
		return &ErrInvalidAlpha{Alpha: c.Alpha}
	}
	if c.Split > SplitLowerMedian {
		return fmt.Errorf("%w: unknown split policy %d", ErrInvalidArgument, c.Split)
	}
	if c.Accounting > AccountingLegacy {
		return fmt.Errorf("%w: unknown accounting %d", ErrInvalidArgument, c.Accounting)
	}
	if c.ParallelThreshold < 0 {
		return fmt.Errorf("%w: negative parallel threshold %d", ErrInvalidArgument, c.ParallelThreshold)
	}
	return nil
}
