package vlc

import (
	"fmt"

	"github.com/ausocean/h264codec/bits"
	"github.com/ausocean/h264codec/internal/errs"
)

// totalZerosEntry is one bit-pattern/length row for a given (totalCoeff,
// totalZeros) pair.
type totalZerosEntry struct {
	bits, len, totalZeros int
}

// totalZerosTables4x4 holds one table per totalCoeff context (1..15) for the
// 16-coefficient 4x4 blocks, following the context-selected layout of
// Table 9-7/9-8: the table to use is keyed directly on total_coeff, not on a
// neighbour-derived nC.
var totalZerosTables4x4 = map[int][]totalZerosEntry{
	1: {
		{0b1, 1, 0}, {0b011, 3, 1}, {0b010, 3, 2}, {0b0011, 4, 3}, {0b0010, 4, 4},
		{0b00011, 5, 5}, {0b00010, 5, 6}, {0b000011, 6, 7}, {0b000010, 6, 8},
		{0b0000011, 7, 9}, {0b0000010, 7, 10}, {0b00000011, 8, 11}, {0b00000010, 8, 12},
		{0b000000011, 9, 13}, {0b000000010, 9, 14}, {0b000000001, 9, 15},
	},
	2: {
		{0b111, 3, 0}, {0b110, 3, 1}, {0b101, 3, 2}, {0b100, 3, 3}, {0b011, 3, 4},
		{0b0101, 4, 5}, {0b0100, 4, 6}, {0b0011, 4, 7}, {0b0010, 4, 8}, {0b011, 5, 9},
		{0b0010, 5, 10}, {0b00011, 6, 11}, {0b00010, 6, 12}, {0b000001, 6, 13}, {0b000000, 6, 14},
	},
	3: {
		{0b0101, 4, 0}, {0b111, 3, 1}, {0b110, 3, 2}, {0b101, 3, 3}, {0b0100, 4, 4},
		{0b0011, 4, 5}, {0b100, 3, 6}, {0b011, 3, 7}, {0b0010, 4, 8}, {0b00011, 5, 9},
		{0b00010, 5, 10}, {0b000001, 6, 11}, {0b00001, 5, 12}, {0b000000, 6, 13},
	},
	4: {
		{0b00011, 5, 0}, {0b111, 3, 1}, {0b0101, 4, 2}, {0b0100, 4, 3}, {0b110, 3, 4},
		{0b101, 3, 5}, {0b100, 3, 6}, {0b0011, 4, 7}, {0b011, 3, 8}, {0b0010, 4, 9},
		{0b00010, 5, 10}, {0b00001, 5, 11}, {0b00000, 5, 12},
	},
	5: {
		{0b0101, 4, 0}, {0b0100, 4, 1}, {0b0011, 4, 2}, {0b111, 3, 3}, {0b110, 3, 4},
		{0b101, 3, 5}, {0b100, 3, 6}, {0b011, 3, 7}, {0b0010, 4, 8}, {0b00001, 5, 9},
		{0b0001, 4, 10}, {0b00000, 5, 11},
	},
	6: {
		{0b000001, 6, 0}, {0b00001, 5, 1}, {0b111, 3, 2}, {0b110, 3, 3}, {0b101, 3, 4},
		{0b100, 3, 5}, {0b011, 3, 6}, {0b010, 3, 7}, {0b0001, 4, 8}, {0b001, 3, 9}, {0b000000, 6, 10},
	},
	7: {
		{0b000001, 6, 0}, {0b00001, 5, 1}, {0b101, 3, 2}, {0b100, 3, 3}, {0b011, 3, 4},
		{0b11, 2, 5}, {0b010, 3, 6}, {0b0001, 4, 7}, {0b001, 3, 8}, {0b000000, 6, 9},
	},
	8: {
		{0b000001, 6, 0}, {0b0001, 4, 1}, {0b00001, 5, 2}, {0b011, 3, 3}, {0b11, 2, 4},
		{0b10, 2, 5}, {0b010, 3, 6}, {0b001, 3, 7}, {0b000000, 6, 8},
	},
	9: {
		{0b000001, 6, 0}, {0b000000, 6, 1}, {0b0001, 4, 2}, {0b11, 2, 3}, {0b10, 2, 4},
		{0b001, 3, 5}, {0b01, 2, 6}, {0b00001, 5, 7},
	},
	10: {
		{0b00001, 5, 0}, {0b00000, 5, 1}, {0b001, 3, 2}, {0b11, 2, 3}, {0b10, 2, 4}, {0b01, 2, 5}, {0b0001, 4, 6},
	},
	11: {
		{0b0000, 4, 0}, {0b0001, 4, 1}, {0b001, 3, 2}, {0b010, 3, 3}, {0b1, 1, 4}, {0b011, 3, 5},
	},
	12: {
		{0b0000, 4, 0}, {0b0001, 4, 1}, {0b01, 2, 2}, {0b1, 1, 3}, {0b001, 3, 4},
	},
	13: {
		{0b000, 3, 0}, {0b001, 3, 1}, {0b1, 1, 2}, {0b01, 2, 3},
	},
	14: {
		{0b00, 2, 0}, {0b01, 2, 1}, {0b1, 1, 2},
	},
	15: {
		{0b0, 1, 0}, {0b1, 1, 1},
	},
}

// totalZerosTableChromaDC2x2 is the dedicated total_zeros table used for
// 4:2:0 chroma-DC blocks, which only ever hold up to 4 coefficients.
var totalZerosTableChromaDC2x2 = map[int][]totalZerosEntry{
	1: {{0b1, 1, 0}, {0b01, 2, 1}, {0b001, 3, 2}, {0b000, 3, 3}},
	2: {{0b1, 1, 0}, {0b01, 2, 1}, {0b00, 2, 2}},
	3: {{0b1, 1, 0}, {0b0, 1, 1}},
}

// DecodeTotalZeros reads total_zeros for a 4x4 block with the given
// total_coeff (1..15).
func DecodeTotalZeros(s bits.Stream, totalCoeff int) (int, error) {
	return decodeFromTable(s, totalZerosTables4x4, totalCoeff)
}

// DecodeTotalZerosChromaDC reads total_zeros for a 4:2:0 chroma-DC block with
// the given total_coeff (1..3).
func DecodeTotalZerosChromaDC(s bits.Stream, totalCoeff int) (int, error) {
	return decodeFromTable(s, totalZerosTableChromaDC2x2, totalCoeff)
}

func decodeFromTable(s bits.Stream, tables map[int][]totalZerosEntry, totalCoeff int) (int, error) {
	table, ok := tables[totalCoeff]
	if !ok {
		return 0, fmt.Errorf("vlc: total_zeros undefined for total_coeff=%d: %w", totalCoeff, errs.ErrVlcSymbolNotRecognised)
	}
	var acc, length int
	for length < 9 {
		b, err := readBitOrDenied(s)
		if err != nil {
			return 0, err
		}
		acc = (acc << 1) | int(b)
		length++
		for _, row := range table {
			if row.len == length && row.bits == acc {
				return row.totalZeros, nil
			}
		}
	}
	return 0, fmt.Errorf("vlc: total_zeros codeword not found: %w", errs.ErrVlcSymbolNotRecognised)
}

// EncodeTotalZeros writes total_zeros for a 4x4 block with the given
// total_coeff, returning the number of bits written.
func EncodeTotalZeros(s bits.Stream, totalCoeff, totalZeros int) (int, error) {
	return encodeFromTable(s, totalZerosTables4x4, totalCoeff, totalZeros)
}

// EncodeTotalZerosChromaDC writes total_zeros for a 4:2:0 chroma-DC block.
func EncodeTotalZerosChromaDC(s bits.Stream, totalCoeff, totalZeros int) (int, error) {
	return encodeFromTable(s, totalZerosTableChromaDC2x2, totalCoeff, totalZeros)
}

func encodeFromTable(s bits.Stream, tables map[int][]totalZerosEntry, totalCoeff, totalZeros int) (int, error) {
	table, ok := tables[totalCoeff]
	if !ok {
		return 0, fmt.Errorf("vlc: total_zeros undefined for total_coeff=%d: %w", totalCoeff, errs.ErrVlcSymbolNotRecognised)
	}
	for _, row := range table {
		if row.totalZeros == totalZeros {
			if s.BitsRemaining() < row.len {
				return 0, errStreamFull(row.len)
			}
			if err := s.WriteBits(row.len, uint32(row.bits)); err != nil {
				return 0, errStreamFull(row.len)
			}
			return row.len, nil
		}
	}
	return 0, fmt.Errorf("vlc: no total_zeros entry for total_coeff=%d zeros=%d: %w", totalCoeff, totalZeros, errs.ErrVlcSymbolNotRecognised)
}
