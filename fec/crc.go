package fec

import "fmt"

// ComputeCRC attaches the downlink CRC: the information bits are prefixed with
// a constant 1 and multiplied by the generator matrix over GF(2).
// gen must have len(info)+1 rows; its column count sets the parity length P.
func ComputeCRC(info Bits, gen *BitMatrix) (Bits, error) {
	if gen.Rows() != len(info)+1 {
		return nil, &ShapeError{
			Op:     "crc",
			Detail: fmt.Sprintf("generator has %d rows, want %d for %d info bits", gen.Rows(), len(info)+1, len(info)),
		}
	}
	aug := make(Bits, 0, len(info)+1)
	aug = append(aug, 1)
	aug = append(aug, info...)
	return gf2VecMatMul(aug, gen), nil
}

// ScrambleCRC XORs the parity bits with the RNTI, left-padded with zeros to
// the parity length. The RNTI may not be longer than the parity field.
func ScrambleCRC(crc, rnti Bits) (Bits, error) {
	if len(rnti) > len(crc) {
		return nil, &ShapeError{
			Op:     "scramble",
			Detail: fmt.Sprintf("rnti length %d exceeds parity length %d", len(rnti), len(crc)),
		}
	}
	out := crc.Clone()
	off := len(crc) - len(rnti)
	for i, b := range rnti {
		out[off+i] ^= b
	}
	return out, nil
}
