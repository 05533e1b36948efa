package fec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scenarioTables builds the small hand-checked downlink testcase: A=3, P=2,
// N=8, E=8, identity-like CRC generator and identity encoder matrix.
func scenarioTables(t *testing.T) (DownlinkParams, *DownlinkTables) {
	t.Helper()
	p := DownlinkParams{A: 3, P: 2, K: 4, E: 8, N: 8}
	crcGen, err := NewBitMatrix(4, 2, []uint8{
		1, 0,
		1, 0,
		0, 1,
		0, 1,
	})
	require.NoError(t, err)
	encData := make([]uint8, 64)
	for i := 0; i < 8; i++ {
		encData[i*8+i] = 1
	}
	encGen, err := NewBitMatrix(8, 8, encData)
	require.NoError(t, err)
	tables := &DownlinkTables{
		InfoBits:         Bits{1, 0, 1},
		CrcGen:           crcGen,
		RntiBits:         Bits{1, 1},
		CrcInterleaver:   []int{4, 3, 2, 1, 0},
		InfoBitPattern:   []int{1, 0, 2, 0, 3, 4, 0, 5},
		EncGen:           encGen,
		RateMatchPattern: []int{0, 1, 2, 3, 4, 5, 6, 7},
		Reference:        Bits{0, 0, 1, 0, 1, 0, 0, 1},
	}
	return p, tables
}

func TestEncodeDownlinkScenario(t *testing.T) {
	p, tables := scenarioTables(t)
	res, err := EncodeDownlink(p, tables)
	require.NoError(t, err)

	require.Equal(t, Bits{0, 1}, res.CrcBits)
	require.Equal(t, Bits{1, 0}, res.ScrambledCrc)
	require.Equal(t, Bits{1, 0, 1, 1, 0}, res.InfoCrcBits)
	require.Equal(t, Bits{0, 1, 1, 0, 1}, res.Interleaved)
	require.Equal(t, Bits{0, 0, 1, 0, 1, 0, 0, 1}, res.Frozen)
	require.Equal(t, res.Frozen, res.Encoded)
	require.Equal(t, res.Encoded, res.RateMatched)
	require.Equal(t, 0, res.Mismatches)
}

func TestEncodeDownlinkMismatchCount(t *testing.T) {
	p, tables := scenarioTables(t)
	tables.Reference = tables.Reference.Clone()
	tables.Reference[3] ^= 1
	res, err := EncodeDownlink(p, tables)
	require.NoError(t, err)
	require.Equal(t, 1, res.Mismatches)
}

func TestEncodeDownlinkDeterministic(t *testing.T) {
	p, tables := scenarioTables(t)
	first, err := EncodeDownlink(p, tables)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := EncodeDownlink(p, tables)
		require.NoError(t, err)
		require.Equal(t, first.RateMatched, again.RateMatched)
		require.Equal(t, first.Mismatches, again.Mismatches)
	}
}

func TestEncodeDownlinkNilReference(t *testing.T) {
	p, tables := scenarioTables(t)
	tables.Reference = nil
	res, err := EncodeDownlink(p, tables)
	require.NoError(t, err)
	require.Len(t, res.RateMatched, p.E)
	require.Equal(t, 0, res.Mismatches)
}

func TestValidateRejectsBadShapes(t *testing.T) {
	p, tables := scenarioTables(t)

	bad := p
	bad.K = 5
	require.Error(t, bad.Validate(tables))

	short := *tables
	short.InfoBits = Bits{1, 0}
	require.Error(t, p.Validate(&short))

	longRnti := *tables
	longRnti.RntiBits = Bits{1, 1, 1}
	require.Error(t, p.Validate(&longRnti))

	wrongRM := *tables
	wrongRM.RateMatchPattern = []int{0, 1, 2}
	require.Error(t, p.Validate(&wrongRM))
}

func TestEncodeDownlinkLengths(t *testing.T) {
	p, tables := scenarioTables(t)
	res, err := EncodeDownlink(p, tables)
	require.NoError(t, err)
	require.Len(t, res.CrcBits, p.P)
	require.Len(t, res.InfoCrcBits, p.A+p.P)
	require.Len(t, res.Frozen, p.N)
	require.Len(t, res.Encoded, p.N)
	require.Len(t, res.RateMatched, p.E)
}
