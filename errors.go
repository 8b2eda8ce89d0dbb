package rtree

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidConfig is returned when the tree is constructed with node
	// capacities or a dimension count that cannot form a valid tree.
	ErrInvalidConfig = errors.New("invalid rtree configuration")

	// ErrInvalidArgument is returned when an entry or query box does not fit
	// the tree. The tree is never modified when it is returned.
	ErrInvalidArgument = errors.New("invalid argument")
)

// DimensionMismatchError indicates an entry or query box whose number of
// dimensions differs from the tree's.
type DimensionMismatchError struct {
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Is lets DimensionMismatchError match ErrInvalidArgument.
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func validateConfig(maxEntries, minEntries, numDims int) error {
	switch {
	case maxEntries < 1:
		return fmt.Errorf("%w: max entries must be at least 1, got %d", ErrInvalidConfig, maxEntries)
	case minEntries < 0:
		return fmt.Errorf("%w: min entries must not be negative, got %d", ErrInvalidConfig, minEntries)
	case minEntries*2 > maxEntries:
		return fmt.Errorf("%w: min entries (%d) must be less than or equal to half of the max entries (%d)",
			ErrInvalidConfig, minEntries, maxEntries)
	case numDims < 1:
		return fmt.Errorf("%w: number of dimensions must be at least 1, got %d", ErrInvalidConfig, numDims)
	}
	return nil
}

func (t *RTree) validateBox(bb Box) error {
	if len(bb) != t.numDims {
		return &DimensionMismatchError{Expected: t.numDims, Actual: len(bb)}
	}
	return nil
}

func (t *RTree) validateEntry(e Entry) error {
	if e == nil {
		return fmt.Errorf("%w: nil entry", ErrInvalidArgument)
	}
	coords := e.Coordinates()
	if len(coords) != t.numDims {
		return &DimensionMismatchError{Expected: t.numDims, Actual: len(coords)}
	}
	for i, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: coordinate %d is not finite: %v", ErrInvalidArgument, i, c)
		}
	}
	return nil
}
