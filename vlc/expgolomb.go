package vlc

import "github.com/ausocean/h264codec/bits"

// DecodeExpGolombPrefix reads the unary exp-Golomb prefix from s: leading
// zeros until a 1-bit, the count of zeros being the symbol. Total bits
// consumed is symbol+1. This is the "prefix" half of full exp-Golomb coding;
// H.264's level_prefix, and the symbol itself for run-level style codes with
// no suffix, use exactly this form.
func DecodeExpGolombPrefix(s bits.Stream) (symbol, nBits int, err error) {
	for {
		b, berr := readBitOrDenied(s)
		if berr != nil {
			return 0, nBits, berr
		}
		nBits++
		if b == 1 {
			return symbol, nBits, nil
		}
		symbol++
		if symbol >= maxVlcBits {
			return 0, nBits, errVlcPrefixTooLong
		}
	}
}

// EncodeExpGolombPrefix writes symbol zero bits followed by a 1-bit,
// returning the number of bits written.
func EncodeExpGolombPrefix(s bits.Stream, symbol int) (nBits int, err error) {
	if symbol < 0 {
		return 0, errVlcNegativeSymbol
	}
	if s.BitsRemaining() < symbol+1 {
		return 0, errStreamFull(symbol + 1)
	}
	for i := 0; i < symbol; i++ {
		if err := s.WriteBit(0); err != nil {
			return 0, errStreamFull(1)
		}
	}
	if err := s.WriteBit(1); err != nil {
		return 0, errStreamFull(1)
	}
	return symbol + 1, nil
}
