package fec

import "fmt"

// Bits is a GF(2) bit vector. Every element is 0 or 1; arithmetic over it is
// XOR for addition and AND for multiplication.
type Bits []uint8

// Clone returns an independent copy.
func (b Bits) Clone() Bits {
	return append(Bits(nil), b...)
}

// BitMatrix is a fixed-shape binary matrix backed by a flat row-major buffer.
// Shapes are fixed at construction; entries are 0 or 1.
type BitMatrix struct {
	rows, cols int
	data       []uint8
}

// NewBitMatrix builds a rows x cols matrix from a flat row-major 0/1 buffer.
// The buffer is copied, so the caller may reuse it.
func NewBitMatrix(rows, cols int, data []uint8) (*BitMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &ShapeError{Op: "matrix", Detail: fmt.Sprintf("non-positive shape %dx%d", rows, cols)}
	}
	if len(data) != rows*cols {
		return nil, &ShapeError{Op: "matrix", Detail: fmt.Sprintf("buffer length %d != %dx%d", len(data), rows, cols)}
	}
	for i, v := range data {
		if v > 1 {
			return nil, &ShapeError{Op: "matrix", Detail: fmt.Sprintf("entry %d at offset %d is not a bit", v, i)}
		}
	}
	return &BitMatrix{rows: rows, cols: cols, data: append([]uint8(nil), data...)}, nil
}

// Rows returns the row count.
func (m *BitMatrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *BitMatrix) Cols() int { return m.cols }

// At returns the entry at row i, column j.
func (m *BitMatrix) At(i, j int) uint8 { return m.data[i*m.cols+j] }

// Row returns row i as a shared sub-slice; callers must not modify it.
func (m *BitMatrix) Row(i int) []uint8 { return m.data[i*m.cols : (i+1)*m.cols] }

// Transpose returns a new matrix with rows and columns exchanged.
func (m *BitMatrix) Transpose() *BitMatrix {
	t := &BitMatrix{rows: m.cols, cols: m.rows, data: make([]uint8, len(m.data))}
	for i := 0; i < m.rows; i++ {
		row := m.Row(i)
		for j, v := range row {
			t.data[j*t.cols+i] = v
		}
	}
	return t
}

// gf2VecMatMul computes v*M over GF(2) for a row vector v of length M.rows,
// accumulating with XOR so no separate modulo pass is needed.
func gf2VecMatMul(v Bits, m *BitMatrix) Bits {
	out := make(Bits, m.cols)
	for i, b := range v {
		if b == 0 {
			continue
		}
		row := m.Row(i)
		for j, e := range row {
			out[j] ^= e
		}
	}
	return out
}
