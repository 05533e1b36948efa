package fec

import "fmt"

// Interleave permutes bits by the given pattern: out[i] = bits[pattern[i]].
// The pattern must be a bijection over [0,len(bits)); duplicate or
// out-of-range entries are a caller error and abort the stage.
func Interleave(bits Bits, pattern []int) (Bits, error) {
	if len(pattern) != len(bits) {
		return nil, &ShapeError{
			Op:     "interleave",
			Detail: fmt.Sprintf("pattern length %d != input length %d", len(pattern), len(bits)),
		}
	}
	seen := make([]bool, len(bits))
	out := make(Bits, len(bits))
	for i, src := range pattern {
		if src < 0 || src >= len(bits) {
			return nil, &IndexError{Op: "interleave", Index: src, Limit: len(bits)}
		}
		if seen[src] {
			return nil, &IndexError{Op: "interleave", Index: src, Duplicate: true}
		}
		seen[src] = true
		out[i] = bits[src]
	}
	return out, nil
}

// InvertPattern returns the inverse permutation of pattern. It assumes the
// pattern has already been validated as a bijection.
func InvertPattern(pattern []int) []int {
	inv := make([]int, len(pattern))
	for i, src := range pattern {
		inv[src] = i
	}
	return inv
}

// MapFrozen scatters bits into a vector of length len(pattern). Positions
// where pattern > 0 carry information and receive the next unconsumed bit in
// ascending position order; all other positions stay frozen at 0. The rank
// values only gate insertion, they do not reorder.
func MapFrozen(bits Bits, pattern []int) (Bits, error) {
	slots := 0
	for _, r := range pattern {
		if r > 0 {
			slots++
		}
	}
	if slots != len(bits) {
		return nil, &ShapeError{
			Op:     "frozen",
			Detail: fmt.Sprintf("pattern marks %d information positions, have %d bits", slots, len(bits)),
		}
	}
	out := make(Bits, len(pattern))
	next := 0
	for i, r := range pattern {
		if r > 0 {
			out[i] = bits[next]
			next++
		}
	}
	return out, nil
}

// ExtractInfo is the inverse of MapFrozen: it gathers the bits at the
// information positions of pattern in ascending position order.
func ExtractInfo(frozen Bits, pattern []int) (Bits, error) {
	if len(pattern) != len(frozen) {
		return nil, &ShapeError{
			Op:     "frozen",
			Detail: fmt.Sprintf("pattern length %d != vector length %d", len(pattern), len(frozen)),
		}
	}
	out := make(Bits, 0, len(frozen))
	for i, r := range pattern {
		if r > 0 {
			out = append(out, frozen[i])
		}
	}
	return out, nil
}
