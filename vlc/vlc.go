/*
DESCRIPTION
  vlc.go provides shared types for the variable-length code tables: the
  exp-Golomb prefix, total-zeros, run-before and coeff-token decoders and
  their symmetric encoders.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package vlc implements the H.264 Baseline-profile variable-length code
// tables used by CAVLC: the exp-Golomb prefix, the context-selected
// total-zeros and run-before tables, and the context-selected coeff-token
// table. Each decoder has a symmetric encoder. Unlike the source this was
// distilled from — which returns a negative bit count to signal failure and
// 0 from a Decode3 method on tables that only support 2-symbol decode — each
// table here exposes only the symbol arity it actually supports, and errors
// are returned as a distinct value rather than folded into the bit count.
package vlc

import (
	"fmt"

	"github.com/ausocean/h264codec/bits"
	"github.com/ausocean/h264codec/internal/errs"
)

// maxVlcBits bounds the leading-zero scan so a corrupt stream can never spin
// forever consuming zero bits; it is larger than any legal H.264 Baseline
// VLC prefix.
const maxVlcBits = 32

var (
	errVlcPrefixTooLong  = fmt.Errorf("vlc: exp-golomb prefix exceeds %d bits: %w", maxVlcBits, errs.ErrVlcSymbolNotRecognised)
	errVlcNegativeSymbol = fmt.Errorf("vlc: cannot encode a negative symbol: %w", errs.ErrVlcSymbolNotRecognised)
)

// errStreamFull reports that fewer than n bits remain for a write.
func errStreamFull(n int) error {
	return fmt.Errorf("vlc: need %d more bits than remain: %w", n, errs.ErrStreamAccessDenied)
}

// readBitOrDenied reads a single bit, translating a stream error into
// errs.ErrStreamAccessDenied with call-site context, following the read.go
// fieldReader idiom from the codec this package replaces.
func readBitOrDenied(s bits.Stream) (uint32, error) {
	if s.BitsRemaining() <= 0 {
		return 0, fmt.Errorf("vlc: no bits remaining: %w", errs.ErrStreamAccessDenied)
	}
	b, err := s.ReadBit()
	if err != nil {
		return 0, fmt.Errorf("vlc: read bit: %w", errs.ErrStreamAccessDenied)
	}
	return b, nil
}
