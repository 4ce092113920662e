package vlc

import (
	"fmt"

	"github.com/ausocean/h264codec/bits"
	"github.com/ausocean/h264codec/internal/errs"
)

// DecodeLevel reads one coeff_level entry: a unary level_prefix followed by a
// context-dependent level_suffix, combined per the escape rules the codec
// this package replaces applies in parseLevelInformation — suffixLength
// grows as levels are decoded so later, larger-magnitude coefficients get
// more suffix bits. isFirst marks the first level after the trailing ones;
// when it is set and trailingOnesSignAvailable reports fewer than three
// trailing ones, 2 is added to levelCode before the level is formed.
func DecodeLevel(s bits.Stream, suffixLength int, isFirst, trailingOnesSignAvailable bool) (level, nextSuffixLength int, err error) {
	prefix, _, err := DecodeExpGolombPrefix(s)
	if err != nil {
		return 0, suffixLength, err
	}

	var levelSuffixSize int
	switch {
	case prefix == 14 && suffixLength == 0:
		levelSuffixSize = 4
	case prefix >= 15:
		levelSuffixSize = prefix - 3
	default:
		levelSuffixSize = suffixLength
	}

	var suffix int
	if levelSuffixSize > 0 {
		v, rerr := s.ReadBits(levelSuffixSize)
		if rerr != nil {
			return 0, suffixLength, fmt.Errorf("vlc: read level_suffix: %w", errs.ErrStreamAccessDenied)
		}
		suffix = int(v)
	}

	levelCode := (minInt(15, prefix) << uint(suffixLength)) + suffix
	if prefix >= 15 && suffixLength == 0 {
		levelCode += 15
	}
	if prefix >= 16 {
		levelCode += (1 << uint(prefix-3)) - 4096
	}

	if isFirst && trailingOnesSignAvailable {
		levelCode += 2
	}

	if levelCode%2 == 0 {
		level = (levelCode + 2) >> 1
	} else {
		level = (-levelCode - 1) >> 1
	}

	nextSuffixLength = suffixLength
	if nextSuffixLength == 0 {
		nextSuffixLength = 1
	}
	if absInt(level) > (3 << uint(nextSuffixLength-1)) {
		nextSuffixLength++
	}
	if nextSuffixLength > 6 {
		nextSuffixLength = 6
	}
	return level, nextSuffixLength, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
