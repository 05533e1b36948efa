package fec

import (
	"errors"
	"math/rand"
	"testing"
)

func TestInterleave(t *testing.T) {
	out, err := Interleave(Bits{1, 0, 1, 1, 0}, []int{4, 3, 2, 1, 0})
	if err != nil {
		t.Fatal(err)
	}
	want := Bits{0, 1, 1, 0, 1}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("interleaved=%v, want %v", out, want)
		}
	}
}

func TestInterleaveRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	bits := make(Bits, 64)
	for i := range bits {
		bits[i] = uint8(r.Intn(2))
	}
	pattern := r.Perm(len(bits))
	fwd, err := Interleave(bits, pattern)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Interleave(fwd, InvertPattern(pattern))
	if err != nil {
		t.Fatal(err)
	}
	for i := range bits {
		if back[i] != bits[i] {
			t.Fatalf("round trip mismatch at %d", i)
		}
	}
}

func TestInterleaveErrors(t *testing.T) {
	var se *ShapeError
	var ie *IndexError

	if _, err := Interleave(Bits{1, 0}, []int{0}); !errors.As(err, &se) {
		t.Fatalf("short pattern: err=%v, want ShapeError", err)
	}
	if _, err := Interleave(Bits{1, 0}, []int{0, 2}); !errors.As(err, &ie) {
		t.Fatalf("out of range: err=%v, want IndexError", err)
	}
	if _, err := Interleave(Bits{1, 0}, []int{1, 1}); !errors.As(err, &ie) || !ie.Duplicate {
		t.Fatalf("duplicate: err=%v, want duplicate IndexError", err)
	}
}

func TestMapFrozen(t *testing.T) {
	out, err := MapFrozen(Bits{0, 1, 1, 0, 1}, []int{1, 0, 2, 0, 3, 4, 0, 5})
	if err != nil {
		t.Fatal(err)
	}
	want := Bits{0, 0, 1, 0, 1, 0, 0, 1}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("frozen=%v, want %v", out, want)
		}
	}
}

func TestMapFrozenRankGatesOnly(t *testing.T) {
	// Ranks out of order must not reorder the inserted bits.
	out, err := MapFrozen(Bits{1, 0, 1}, []int{9, 0, 1, 0, 5})
	if err != nil {
		t.Fatal(err)
	}
	want := Bits{1, 0, 0, 0, 1}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("frozen=%v, want %v", out, want)
		}
	}
}

func TestMapFrozenCountMismatch(t *testing.T) {
	_, err := MapFrozen(Bits{1, 0}, []int{1, 0, 2, 3})
	var se *ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("err=%v, want ShapeError", err)
	}
}

func TestMapFrozenExtractRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	pattern := make([]int, 32)
	bits := make(Bits, 0, 32)
	rank := 1
	for i := range pattern {
		if r.Intn(2) == 1 {
			pattern[i] = rank
			rank++
			bits = append(bits, uint8(r.Intn(2)))
		}
	}
	frozen, err := MapFrozen(bits, pattern)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ExtractInfo(frozen, pattern)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(bits) {
		t.Fatalf("extracted %d bits, want %d", len(got), len(bits))
	}
	for i := range bits {
		if got[i] != bits[i] {
			t.Fatalf("extract mismatch at %d", i)
		}
	}
}
