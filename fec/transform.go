package fec

import "fmt"

// PolarTransform multiplies the frozen-bit vector by the square generator
// matrix over GF(2), producing the encoded codeword of the same length.
// The product XOR-accumulates whole matrix rows, so intermediate values never
// leave {0,1} regardless of N.
func PolarTransform(frozen Bits, gen *BitMatrix) (Bits, error) {
	if gen.Rows() != gen.Cols() {
		return nil, &ShapeError{
			Op:     "polar",
			Detail: fmt.Sprintf("generator %dx%d is not square", gen.Rows(), gen.Cols()),
		}
	}
	if gen.Rows() != len(frozen) {
		return nil, &ShapeError{
			Op:     "polar",
			Detail: fmt.Sprintf("generator side %d != vector length %d", gen.Rows(), len(frozen)),
		}
	}
	return gf2VecMatMul(frozen, gen), nil
}

// PolarGenerator builds the canonical N x N polar generator matrix, the n-th
// Kronecker power of [[1,0],[1,1]] for N = 2^n. Tests and tooling use it when
// no externally supplied generator table is at hand.
func PolarGenerator(N int) (*BitMatrix, error) {
	if N <= 0 || N&(N-1) != 0 {
		return nil, &ShapeError{Op: "polar", Detail: fmt.Sprintf("N=%d must be a power of two", N)}
	}
	data := make([]uint8, N*N)
	data[0] = 1
	for size := 1; size < N; size *= 2 {
		// mirror the size x size top-left block down and down-right
		for i := 0; i < size; i++ {
			for j := 0; j < size; j++ {
				v := data[i*N+j]
				data[(size+i)*N+j] = v
				data[(size+i)*N+size+j] = v
			}
		}
	}
	return &BitMatrix{rows: N, cols: N, data: data}, nil
}
