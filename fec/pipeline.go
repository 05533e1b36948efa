package fec

import "fmt"

// DownlinkParams holds the scalar configuration of one downlink encoding
// testcase: A info bits, P parity bits, K=A+1 generator rows, E rate-matched
// output bits, N transform length.
type DownlinkParams struct {
	A, P, K, E, N int
}

// DownlinkTables bundles the published tables one encoding run consumes. All
// tables are read-only once handed to the pipeline and may be shared across
// concurrent runs.
type DownlinkTables struct {
	InfoBits         Bits
	CrcGen           *BitMatrix // K x P, already transposed from its source encoding
	RntiBits         Bits       // length <= P
	CrcInterleaver   []int      // permutation of [0,A+P)
	InfoBitPattern   []int      // length N, >0 marks an information position
	EncGen           *BitMatrix // N x N, already transposed from its source encoding
	RateMatchPattern []int      // length E, indices into [0,N)
	Reference        Bits       // length E, expected rate-matched output
}

// DownlinkResult retains every stage output of one run. Only RateMatched and
// Mismatches are contractual; the intermediates exist for diagnostics.
type DownlinkResult struct {
	CrcBits      Bits
	ScrambledCrc Bits
	InfoCrcBits  Bits
	Interleaved  Bits
	Frozen       Bits
	Encoded      Bits
	RateMatched  Bits
	Mismatches   int
}

// Validate checks every table shape against the scalar configuration, so the
// stages afterwards only ever see consistent inputs.
func (p DownlinkParams) Validate(t *DownlinkTables) error {
	if p.A <= 0 || p.P <= 0 || p.E <= 0 || p.N <= 0 {
		return &ShapeError{Op: "params", Detail: fmt.Sprintf("non-positive configuration %+v", p)}
	}
	if p.K != p.A+1 {
		return &ShapeError{Op: "params", Detail: fmt.Sprintf("K=%d, want A+1=%d", p.K, p.A+1)}
	}
	if len(t.InfoBits) != p.A {
		return &ShapeError{Op: "params", Detail: fmt.Sprintf("info bits length %d != A=%d", len(t.InfoBits), p.A)}
	}
	if t.CrcGen.Rows() != p.K || t.CrcGen.Cols() != p.P {
		return &ShapeError{Op: "params", Detail: fmt.Sprintf("crc generator %dx%d != %dx%d", t.CrcGen.Rows(), t.CrcGen.Cols(), p.K, p.P)}
	}
	if len(t.RntiBits) > p.P {
		return &ShapeError{Op: "params", Detail: fmt.Sprintf("rnti length %d exceeds P=%d", len(t.RntiBits), p.P)}
	}
	if len(t.CrcInterleaver) != p.A+p.P {
		return &ShapeError{Op: "params", Detail: fmt.Sprintf("crc interleaver length %d != A+P=%d", len(t.CrcInterleaver), p.A+p.P)}
	}
	if len(t.InfoBitPattern) != p.N {
		return &ShapeError{Op: "params", Detail: fmt.Sprintf("info bit pattern length %d != N=%d", len(t.InfoBitPattern), p.N)}
	}
	if t.EncGen.Rows() != p.N || t.EncGen.Cols() != p.N {
		return &ShapeError{Op: "params", Detail: fmt.Sprintf("encoder generator %dx%d != %dx%d", t.EncGen.Rows(), t.EncGen.Cols(), p.N, p.N)}
	}
	if len(t.RateMatchPattern) != p.E {
		return &ShapeError{Op: "params", Detail: fmt.Sprintf("rate match pattern length %d != E=%d", len(t.RateMatchPattern), p.E)}
	}
	if t.Reference != nil && len(t.Reference) != p.E {
		return &ShapeError{Op: "params", Detail: fmt.Sprintf("reference length %d != E=%d", len(t.Reference), p.E)}
	}
	return nil
}

// EncodeDownlink runs the full downlink encoding chain: CRC attachment, RNTI
// scramble, CRC interleaving, frozen-bit insertion, polar transform and rate
// matching, then counts mismatches against the reference vector (skipped when
// t.Reference is nil). Each stage is a pure function of the previous stage's
// output; the first inconsistency aborts the run.
func EncodeDownlink(p DownlinkParams, t *DownlinkTables) (*DownlinkResult, error) {
	if err := p.Validate(t); err != nil {
		return nil, err
	}
	res := &DownlinkResult{}

	var err error
	if res.CrcBits, err = ComputeCRC(t.InfoBits, t.CrcGen); err != nil {
		return nil, err
	}
	if res.ScrambledCrc, err = ScrambleCRC(res.CrcBits, t.RntiBits); err != nil {
		return nil, err
	}

	res.InfoCrcBits = make(Bits, 0, p.A+p.P)
	res.InfoCrcBits = append(res.InfoCrcBits, t.InfoBits...)
	res.InfoCrcBits = append(res.InfoCrcBits, res.ScrambledCrc...)

	if res.Interleaved, err = Interleave(res.InfoCrcBits, t.CrcInterleaver); err != nil {
		return nil, err
	}
	if res.Frozen, err = MapFrozen(res.Interleaved, t.InfoBitPattern); err != nil {
		return nil, err
	}
	if res.Encoded, err = PolarTransform(res.Frozen, t.EncGen); err != nil {
		return nil, err
	}
	if res.RateMatched, err = RateMatch(res.Encoded, t.RateMatchPattern); err != nil {
		return nil, err
	}
	if t.Reference != nil {
		if res.Mismatches, err = CompareBits(res.RateMatched, t.Reference); err != nil {
			return nil, err
		}
	}
	return res, nil
}
