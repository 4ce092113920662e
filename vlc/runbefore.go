package vlc

import (
	"fmt"

	"github.com/ausocean/h264codec/bits"
	"github.com/ausocean/h264codec/internal/errs"
)

type runBeforeEntry struct {
	bits, len, run int
}

// runBeforeTables holds one bespoke tree per zerosLeft context, 1..6, plus a
// >=7 table whose codewords beyond run=6 share a common exp-Golomb-like tail.
var runBeforeTables = map[int][]runBeforeEntry{
	1: {{0b1, 1, 0}, {0b0, 1, 1}},
	2: {{0b1, 1, 0}, {0b01, 2, 1}, {0b00, 2, 2}},
	3: {{0b11, 2, 0}, {0b10, 2, 1}, {0b01, 2, 2}, {0b00, 2, 3}},
	4: {{0b11, 2, 0}, {0b10, 2, 1}, {0b01, 2, 2}, {0b001, 3, 3}, {0b000, 3, 4}},
	5: {{0b11, 2, 0}, {0b10, 2, 1}, {0b011, 3, 2}, {0b010, 3, 3}, {0b001, 3, 4}, {0b000, 3, 5}},
	6: {
		{0b11, 2, 0}, {0b000, 3, 1}, {0b001, 3, 2}, {0b011, 3, 3},
		{0b010, 3, 4}, {0b101, 3, 5}, {0b100, 3, 6},
	},
	7: {
		{0b111, 3, 0}, {0b110, 3, 1}, {0b101, 3, 2}, {0b100, 3, 3},
		{0b011, 3, 4}, {0b010, 3, 5}, {0b001, 3, 6}, {0b0001, 4, 7},
		{0b00001, 5, 8}, {0b000001, 6, 9}, {0b0000001, 7, 10}, {0b00000001, 8, 11}, {0b000000001, 9, 12},
		{0b0000000001, 10, 13}, {0b00000000001, 11, 14},
	},
}

// DecodeRunBefore reads run_before under zerosLeft context (1..6, clamped at
// 7 for larger remaining-zero counts per Table 9-10).
func DecodeRunBefore(s bits.Stream, zerosLeft int) (int, error) {
	ctx := zerosLeft
	if ctx > 7 {
		ctx = 7
	}
	table, ok := runBeforeTables[ctx]
	if !ok {
		return 0, fmt.Errorf("vlc: run_before undefined for zerosLeft=%d: %w", zerosLeft, errs.ErrVlcSymbolNotRecognised)
	}
	var acc, length int
	for length < 12 {
		b, err := readBitOrDenied(s)
		if err != nil {
			return 0, err
		}
		acc = (acc << 1) | int(b)
		length++
		for _, row := range table {
			if row.len == length && row.bits == acc {
				return row.run, nil
			}
		}
	}
	return 0, fmt.Errorf("vlc: run_before codeword not found: %w", errs.ErrVlcSymbolNotRecognised)
}

// EncodeRunBefore writes run_before under zerosLeft context, returning the
// number of bits written.
func EncodeRunBefore(s bits.Stream, zerosLeft, run int) (int, error) {
	ctx := zerosLeft
	if ctx > 7 {
		ctx = 7
	}
	table, ok := runBeforeTables[ctx]
	if !ok {
		return 0, fmt.Errorf("vlc: run_before undefined for zerosLeft=%d: %w", zerosLeft, errs.ErrVlcSymbolNotRecognised)
	}
	for _, row := range table {
		if row.run == run {
			if s.BitsRemaining() < row.len {
				return 0, errStreamFull(row.len)
			}
			if err := s.WriteBits(row.len, uint32(row.bits)); err != nil {
				return 0, errStreamFull(row.len)
			}
			return row.len, nil
		}
	}
	return 0, fmt.Errorf("vlc: no run_before entry for zerosLeft=%d run=%d: %w", zerosLeft, run, errs.ErrVlcSymbolNotRecognised)
}
