package fec

import "fmt"

// ShapeError reports a vector or matrix whose length or dimensions are
// inconsistent with the configured block sizes. The failing stage produces no
// output.
type ShapeError struct {
	Op     string
	Detail string
}

func (e *ShapeError) Error() string {
	return e.Op + ": " + e.Detail
}

// IndexError reports a pattern entry that references an out-of-range position
// or, for patterns required to be permutations, a duplicate one.
type IndexError struct {
	Op        string
	Index     int
	Limit     int
	Duplicate bool
}

func (e *IndexError) Error() string {
	if e.Duplicate {
		return fmt.Sprintf("%s: duplicate pattern index %d", e.Op, e.Index)
	}
	return fmt.Sprintf("%s: pattern index %d out of range [0,%d)", e.Op, e.Index, e.Limit)
}
