package fec

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Testcase file names, as published with the reference vectors.
const (
	paramsFile         = "params.txt"
	infoBitsFile       = "info_bits.txt"
	crcGenFile         = "crc_gen_m.txt"
	rntiBitsFile       = "rnti_bits.txt"
	crcInterleaverFile = "crc_interleaver_pattern.txt"
	infoBitPatternFile = "info_bit_pattern.txt"
	encGenFile         = "enc_gen_m.txt"
	rateMatchFile      = "rate_matching_pattern.txt"
	referenceFile      = "rm_bits.txt"
)

// LoadIndices reads a flat integer vector from a delimited text file. Values
// may be separated by commas, spaces or newlines; blank lines and lines
// starting with '#' are ignored.
func LoadIndices(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	vals := make([]int, 0, 1024)
	s := bufio.NewScanner(f)
	s.Buffer(make([]byte, 1024*1024), 16*1024*1024)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == ';'
		})
		for _, fld := range fields {
			v, err := strconv.Atoi(fld)
			if err != nil {
				return nil, fmt.Errorf("%s: bad value %q: %w", filepath.Base(path), fld, err)
			}
			vals = append(vals, v)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return vals, nil
}

// LoadBits reads a flat 0/1 vector from a delimited text file.
func LoadBits(path string) (Bits, error) {
	vals, err := LoadIndices(path)
	if err != nil {
		return nil, err
	}
	bits := make(Bits, len(vals))
	for i, v := range vals {
		if v != 0 && v != 1 {
			return nil, &ShapeError{
				Op:     "load",
				Detail: fmt.Sprintf("%s: value %d at offset %d is not a bit", filepath.Base(path), v, i),
			}
		}
		bits[i] = uint8(v)
	}
	return bits, nil
}

// LoadBitMatrix reads a flat 0/1 vector, reshapes it to srcRows x srcCols and
// transposes it, matching the column-major encoding the generator tables are
// published in.
func LoadBitMatrix(path string, srcRows, srcCols int) (*BitMatrix, error) {
	bits, err := LoadBits(path)
	if err != nil {
		return nil, err
	}
	m, err := NewBitMatrix(srcRows, srcCols, bits)
	if err != nil {
		return nil, &ShapeError{
			Op:     "load",
			Detail: fmt.Sprintf("%s: %v", filepath.Base(path), err),
		}
	}
	return m.Transpose(), nil
}

// LoadDownlinkParams reads the five scalar parameters A, P, K, E, N.
func LoadDownlinkParams(dir string) (DownlinkParams, error) {
	vals, err := LoadIndices(filepath.Join(dir, paramsFile))
	if err != nil {
		return DownlinkParams{}, err
	}
	if len(vals) != 5 {
		return DownlinkParams{}, &ShapeError{
			Op:     "load",
			Detail: fmt.Sprintf("%s: want 5 parameters, got %d", paramsFile, len(vals)),
		}
	}
	return DownlinkParams{A: vals[0], P: vals[1], K: vals[2], E: vals[3], N: vals[4]}, nil
}

// LoadTestcase loads and validates every table of one testcase directory.
// The returned tables are fully consistent with p; the pipeline afterwards
// performs no I/O.
func LoadTestcase(dir string, p DownlinkParams) (*DownlinkTables, error) {
	t := &DownlinkTables{}
	var err error
	if t.InfoBits, err = LoadBits(filepath.Join(dir, infoBitsFile)); err != nil {
		return nil, err
	}
	// crc_gen_m.txt is published P x K and used transposed
	if t.CrcGen, err = LoadBitMatrix(filepath.Join(dir, crcGenFile), p.P, p.K); err != nil {
		return nil, err
	}
	if t.RntiBits, err = LoadBits(filepath.Join(dir, rntiBitsFile)); err != nil {
		return nil, err
	}
	if t.CrcInterleaver, err = LoadIndices(filepath.Join(dir, crcInterleaverFile)); err != nil {
		return nil, err
	}
	if t.InfoBitPattern, err = LoadIndices(filepath.Join(dir, infoBitPatternFile)); err != nil {
		return nil, err
	}
	if t.EncGen, err = LoadBitMatrix(filepath.Join(dir, encGenFile), p.N, p.N); err != nil {
		return nil, err
	}
	if t.RateMatchPattern, err = LoadIndices(filepath.Join(dir, rateMatchFile)); err != nil {
		return nil, err
	}
	if t.Reference, err = LoadBits(filepath.Join(dir, referenceFile)); err != nil {
		return nil, err
	}
	if err := p.Validate(t); err != nil {
		return nil, err
	}
	return t, nil
}
