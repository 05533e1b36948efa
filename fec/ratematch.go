package fec

import "fmt"

// RateMatch gathers encoded bits by index to reach the transmission length:
// out[i] = encoded[pattern[i]]. Repeated indices are legal (bit repetition for
// rate extension); omitted indices drop bits (puncturing/shortening).
func RateMatch(encoded Bits, pattern []int) (Bits, error) {
	out := make(Bits, len(pattern))
	for i, src := range pattern {
		if src < 0 || src >= len(encoded) {
			return nil, &IndexError{Op: "ratematch", Index: src, Limit: len(encoded)}
		}
		out[i] = encoded[src]
	}
	return out, nil
}

// CompareBits returns the Hamming distance between two equal-length bit
// vectors. Zero means an exact match; a non-zero count is a reported metric,
// not an error.
func CompareBits(candidate, reference Bits) (int, error) {
	if len(candidate) != len(reference) {
		return 0, &ShapeError{
			Op:     "compare",
			Detail: fmt.Sprintf("candidate length %d != reference length %d", len(candidate), len(reference)),
		}
	}
	diff := 0
	for i := range candidate {
		if candidate[i] != reference[i] {
			diff++
		}
	}
	return diff, nil
}
