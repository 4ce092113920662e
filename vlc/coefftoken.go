package vlc

import (
	"fmt"

	"github.com/ausocean/h264codec/bits"
	"github.com/ausocean/h264codec/internal/errs"
)

// NC selects which coeff_token table applies to a 4x4 (or chroma-DC) block,
// derived from the total_coeff of its above and left neighbours per the
// context rule in the codec this package replaces: nC is the average of the
// two available neighbour counts, rounded up, or whichever single one is
// available, or 0 if neither is. Two contexts are special-cased rather than
// derived from an nC value: chroma DC for a 4:2:0 macroblock always uses
// NCneg1's table regardless of neighbours, and 4:2:2 chroma DC uses NCneg2's.
type NC int

const (
	NC0to1 NC = iota
	NC2to3
	NC4to7
	NC8up
	NCneg1
	NCneg2
)

// coeffToken is one row of a coeff_token VLC table: total_coeff and
// trailing_ones pair keyed on a bit pattern of a given length.
type coeffToken struct {
	bits          uint32
	len           int
	totalCoeff    int
	trailingOnes  int
}

// coeffTokenTables holds one []coeffToken per NC context. DecodeCoeffToken
// reads one bit at a time and returns the first row whose length and bits
// equal what it has read so far, so row order does not affect the result.
// NC8up does not appear here: it uses the fixed 6-bit pattern computed
// directly in DecodeCoeffToken.
var coeffTokenTables = map[NC][]coeffToken{
	NC0to1: {
		{0b1, 1, 0, 0},
		{0b000101, 6, 1, 0}, {0b01, 2, 1, 1},
		{0b00000111, 8, 2, 0}, {0b000100, 6, 2, 1}, {0b001, 3, 2, 2},
		{0b000000111, 9, 3, 0}, {0b00000110, 8, 3, 1}, {0b0000101, 7, 3, 2}, {0b00011, 5, 3, 3},
		{0b0000000111, 10, 4, 0}, {0b000000110, 9, 4, 1}, {0b00000101, 8, 4, 2}, {0b000011, 6, 4, 3},
		{0b00000000111, 11, 5, 0}, {0b0000000110, 10, 5, 1}, {0b000000101, 9, 5, 2}, {0b0000100, 7, 5, 3},
		{0b000000000111, 13, 6, 0}, {0b00000000110, 11, 6, 1}, {0b0000000101, 10, 6, 2}, {0b00000100, 8, 6, 3},
		{0b0000000000111, 14, 7, 0}, {0b000000000110, 13, 7, 1}, {0b00000000101, 11, 7, 2}, {0b000000100, 9, 7, 3},
		{0b00000000000111, 15, 8, 0}, {0b0000000000110, 14, 8, 1}, {0b000000000101, 13, 8, 2}, {0b0000000100, 10, 8, 3},
		{0b000000000000111, 16, 9, 0}, {0b00000000000110, 15, 9, 1}, {0b0000000000101, 14, 9, 2}, {0b00000000100, 11, 9, 3},
		{0b0000000000000111, 17, 10, 0}, {0b000000000000110, 16, 10, 1}, {0b00000000000101, 15, 10, 2}, {0b000000000100, 13, 10, 3},
		{0b00000000000000111, 18, 11, 0}, {0b0000000000000110, 17, 11, 1}, {0b000000000000101, 16, 11, 2}, {0b0000000000100, 14, 11, 3},
		{0b000000000000000111, 19, 12, 0}, {0b00000000000000110, 18, 12, 1}, {0b0000000000000101, 17, 12, 2}, {0b00000000000100, 15, 12, 3},
		{0b0000000000000000111, 20, 13, 0}, {0b000000000000000110, 19, 13, 1}, {0b00000000000000101, 18, 13, 2}, {0b000000000000100, 16, 13, 3},
		{0b00000000000000000111, 21, 14, 0}, {0b0000000000000000110, 20, 14, 1}, {0b000000000000000101, 19, 14, 2}, {0b0000000000000100, 17, 14, 3},
		{0b00000000000000000100, 21, 15, 0}, {0b00000000000000000110, 21, 15, 1}, {0b0000000000000000101, 20, 15, 2}, {0b00000000000000100, 18, 15, 3},
		{0b00000000000000000001, 21, 16, 0}, {0b00000000000000000101, 21, 16, 1}, {0b00000000000000000011, 21, 16, 2}, {0b000000000000000100, 19, 16, 3},
	},
	NC2to3: {
		{0b11, 2, 0, 0},
		{0b001011, 6, 1, 0}, {0b10, 2, 1, 1},
		{0b000111, 6, 2, 0}, {0b00111, 5, 2, 1}, {0b011, 3, 2, 2},
		{0b0000111, 7, 3, 0}, {0b001010, 6, 3, 1}, {0b001001, 6, 3, 2}, {0b0101, 4, 3, 3},
		{0b00000111, 8, 4, 0}, {0b000110, 6, 4, 1}, {0b000101, 6, 4, 2}, {0b0100, 4, 4, 3},
		{0b00000100, 8, 5, 0}, {0b0000110, 7, 5, 1}, {0b0000101, 7, 5, 2}, {0b00110, 5, 5, 3},
		{0b000000111, 9, 6, 0}, {0b00000110, 8, 6, 1}, {0b00000101, 8, 6, 2}, {0b001000, 6, 6, 3},
		{0b00000001111, 11, 7, 0}, {0b000000110, 9, 7, 1}, {0b000000101, 9, 7, 2}, {0b000100, 6, 7, 3},
		{0b00000001011, 11, 8, 0}, {0b00000001110, 11, 8, 1}, {0b00000001101, 11, 8, 2}, {0b0000100, 7, 8, 3},
		{0b000000001111, 12, 9, 0}, {0b00000001010, 11, 9, 1}, {0b00000001001, 11, 9, 2}, {0b00000111, 8, 9, 3},
		{0b000000001011, 12, 10, 0}, {0b000000001110, 12, 10, 1}, {0b000000001101, 12, 10, 2}, {0b00000110, 8, 10, 3},
		{0b000000001000, 12, 11, 0}, {0b000000001010, 12, 11, 1}, {0b000000001001, 12, 11, 2}, {0b000000001100, 12, 11, 3},
		{0b0000000001111, 13, 12, 0}, {0b0000000001110, 13, 12, 1}, {0b0000000001101, 13, 12, 2}, {0b000000001101, 12, 12, 3},
		{0b0000000001011, 13, 13, 0}, {0b0000000001010, 13, 13, 1}, {0b0000000001001, 13, 13, 2}, {0b0000000001100, 13, 13, 3},
		{0b0000000000111, 13, 14, 0}, {0b00000000001011, 14, 14, 1}, {0b0000000000110, 13, 14, 2}, {0b0000000001000, 13, 14, 3},
		{0b00000000001001, 14, 15, 0}, {0b00000000001000, 14, 15, 1}, {0b00000000001010, 14, 15, 2}, {0b0000000000001, 13, 15, 3},
		{0b00000000000111, 14, 16, 0}, {0b00000000000110, 14, 16, 1}, {0b00000000000101, 14, 16, 2}, {0b00000000000100, 14, 16, 3},
	},
	NC4to7: {
		{0b1111, 4, 0, 0},
		{0b001111, 6, 1, 0}, {0b1110, 4, 1, 1},
		{0b001011, 6, 2, 0}, {0b01111, 5, 2, 1}, {0b1101, 4, 2, 2},
		{0b001000, 6, 3, 0}, {0b01100, 5, 3, 1}, {0b01110, 5, 3, 2}, {0b1100, 4, 3, 3},
		{0b001111, 7, 4, 0}, {0b001110, 6, 4, 1}, {0b01010, 5, 4, 2}, {0b1011, 4, 4, 3},
		{0b0001111, 7, 5, 0}, {0b001101, 6, 5, 1}, {0b01001, 5, 5, 2}, {0b1010, 4, 5, 3},
		{0b0001011, 7, 6, 0}, {0b0001110, 7, 6, 1}, {0b001010, 6, 6, 2}, {0b1001, 4, 6, 3},
		{0b0001001, 7, 7, 0}, {0b0001010, 7, 7, 1}, {0b0001101, 7, 7, 2}, {0b1000, 4, 7, 3},
		{0b00001111, 8, 8, 0}, {0b0001000, 7, 8, 1}, {0b0001100, 7, 8, 2}, {0b01011, 5, 8, 3},
		{0b00001011, 8, 9, 0}, {0b00001110, 8, 9, 1}, {0b0001011, 7, 9, 2}, {0b01000, 5, 9, 3},
		{0b000001111, 9, 10, 0}, {0b00001010, 8, 10, 1}, {0b00001101, 8, 10, 2}, {0b001001, 6, 10, 3},
		{0b000001011, 9, 11, 0}, {0b000001110, 9, 11, 1}, {0b00001001, 8, 11, 2}, {0b00001100, 8, 11, 3},
		{0b000001000, 9, 12, 0}, {0b000001010, 9, 12, 1}, {0b000001101, 9, 12, 2}, {0b00001000, 8, 12, 3},
		{0b0000001101, 10, 13, 0}, {0b000000111, 9, 13, 1}, {0b000001001, 9, 13, 2}, {0b000001100, 9, 13, 3},
		{0b0000001001, 10, 14, 0}, {0b0000001100, 10, 14, 1}, {0b0000001011, 10, 14, 2}, {0b0000001110, 10, 14, 3},
		{0b0000000101, 10, 15, 0}, {0b0000001000, 10, 15, 1}, {0b0000001010, 10, 15, 2}, {0b0000001111, 10, 15, 3},
		{0b0000000001, 10, 16, 0}, {0b0000000100, 10, 16, 1}, {0b0000000110, 10, 16, 2}, {0b0000000111, 10, 16, 3},
	},
	NCneg1: {
		{0b01, 2, 0, 0},
		{0b000111, 6, 1, 0}, {0b1, 1, 1, 1},
		{0b000100, 6, 2, 0}, {0b000110, 6, 2, 1}, {0b001, 3, 2, 2},
		{0b000011, 6, 3, 0}, {0b0000011, 7, 3, 1}, {0b0000010, 7, 3, 2}, {0b000101, 6, 3, 3},
		{0b000010, 6, 4, 0}, {0b00000011, 8, 4, 1}, {0b00000010, 8, 4, 2}, {0b0000000, 7, 4, 3},
	},
	NCneg2: {
		{0b1, 1, 0, 0},
		{0b0001111, 7, 1, 0}, {0b01, 2, 1, 1},
		{0b0001110, 7, 2, 0}, {0b0001101, 7, 2, 1}, {0b001, 3, 2, 2},
		{0b000000111, 9, 3, 0}, {0b0001100, 7, 3, 1}, {0b0001011, 7, 3, 2}, {0b00001, 5, 3, 3},
		{0b000000110, 9, 4, 0}, {0b000000101, 9, 4, 1}, {0b0001010, 7, 4, 2}, {0b000001, 6, 4, 3},
		{0b0000000111, 10, 5, 0}, {0b0000000110, 10, 5, 1}, {0b000000100, 9, 5, 2}, {0b0001001, 7, 5, 3},
		{0b00000000111, 11, 6, 0}, {0b00000000110, 11, 6, 1}, {0b0000000101, 10, 6, 2}, {0b0001000, 7, 6, 3},
		{0b000000000111, 12, 7, 0}, {0b000000000110, 12, 7, 1}, {0b00000000101, 11, 7, 2}, {0b0000000100, 10, 7, 3},
	},
}

// DecodeCoeffToken reads coeff_token under context nc, returning the decoded
// total_coeff and trailing_ones. NC8up does not use a table: when nc selects
// it, the codeword is the fixed 6-bit pattern described in Table 9-5 with one
// exception, the escape code 000011 which (unlike every other context) maps
// to (0, 0) rather than being absent from the table.
func DecodeCoeffToken(s bits.Stream, nc NC) (totalCoeff, trailingOnes int, err error) {
	if nc == NC8up {
		return decodeCoeffTokenNC8up(s)
	}
	table, ok := coeffTokenTables[nc]
	if !ok {
		return 0, 0, fmt.Errorf("vlc: unknown coeff_token context %d: %w", nc, errs.ErrVlcSymbolNotRecognised)
	}
	var acc uint32
	for length := 1; length <= 20; length++ {
		b, berr := readBitOrDenied(s)
		if berr != nil {
			return 0, 0, berr
		}
		acc = (acc << 1) | b
		for _, row := range table {
			if row.len == length && row.bits == acc {
				return row.totalCoeff, row.trailingOnes, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("vlc: coeff_token codeword not found: %w", errs.ErrVlcSymbolNotRecognised)
}

// decodeCoeffTokenNC8up reads the fixed 6-bit coeff_token for nC>=8, where
// total_coeff and trailing_ones are packed directly into the bits rather than
// drawn from a variable-length table: the first 4 bits are total_coeff-1 and
// the last 2 bits are trailing_ones, except for the escape 000011 (which
// would otherwise read as total_coeff=1, trailing_ones=3) that decodes as
// the explicit (0,0) case carried over from the source this package replaces.
func decodeCoeffTokenNC8up(s bits.Stream) (totalCoeff, trailingOnes int, err error) {
	v, berr := s.ReadBits(6)
	if berr != nil {
		return 0, 0, fmt.Errorf("vlc: read coeff_token NC8up: %w", errs.ErrStreamAccessDenied)
	}
	if v == 0b000011 {
		return 0, 0, nil
	}
	trailingOnes = int(v & 0x3)
	totalCoeff = int(v>>2) + 1
	if totalCoeff > 16 {
		return 0, 0, fmt.Errorf("vlc: coeff_token NC8up total_coeff overflow: %w", errs.ErrVlcSymbolNotRecognised)
	}
	return totalCoeff, trailingOnes, nil
}

// EncodeCoeffToken writes coeff_token for (totalCoeff, trailingOnes) under
// context nc, returning the number of bits written.
func EncodeCoeffToken(s bits.Stream, nc NC, totalCoeff, trailingOnes int) (nBits int, err error) {
	if nc == NC8up {
		return encodeCoeffTokenNC8up(s, totalCoeff, trailingOnes)
	}
	table, ok := coeffTokenTables[nc]
	if !ok {
		return 0, fmt.Errorf("vlc: unknown coeff_token context %d: %w", nc, errs.ErrVlcSymbolNotRecognised)
	}
	for _, row := range table {
		if row.totalCoeff == totalCoeff && row.trailingOnes == trailingOnes {
			if s.BitsRemaining() < row.len {
				return 0, errStreamFull(row.len)
			}
			if werr := s.WriteBits(row.len, row.bits); werr != nil {
				return 0, errStreamFull(row.len)
			}
			return row.len, nil
		}
	}
	return 0, fmt.Errorf("vlc: no coeff_token entry for (%d,%d): %w", totalCoeff, trailingOnes, errs.ErrVlcSymbolNotRecognised)
}

func encodeCoeffTokenNC8up(s bits.Stream, totalCoeff, trailingOnes int) (nBits int, err error) {
	if totalCoeff == 0 && trailingOnes == 0 {
		if s.BitsRemaining() < 6 {
			return 0, errStreamFull(6)
		}
		if werr := s.WriteBits(6, 0b000011); werr != nil {
			return 0, errStreamFull(6)
		}
		return 6, nil
	}
	if totalCoeff < 1 || totalCoeff > 16 || trailingOnes < 0 || trailingOnes > 3 {
		return 0, fmt.Errorf("vlc: coeff_token NC8up (%d,%d) out of range: %w", totalCoeff, trailingOnes, errs.ErrVlcSymbolNotRecognised)
	}
	v := uint32((totalCoeff-1)<<2) | uint32(trailingOnes)
	if s.BitsRemaining() < 6 {
		return 0, errStreamFull(6)
	}
	if werr := s.WriteBits(6, v); werr != nil {
		return 0, errStreamFull(6)
	}
	return 6, nil
}
