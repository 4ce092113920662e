/*
DESCRIPTION
  cavlc.go implements the CAVLC engine: encoding and decoding one block's
  quantised transform coefficients to and from the bit stream, using
  neighbourhood context to select the coeff-token table.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package cavlc ties together the bits and vlc packages into the
// context-adaptive variable-length coding engine: one call encodes or
// decodes a single block's coefficients, given the neighbourhood's total
// coefficient count and whether the block's DC position is coded elsewhere.
package cavlc

import (
	"fmt"

	"github.com/ausocean/h264codec/bits"
	"github.com/ausocean/h264codec/internal/errs"
	"github.com/ausocean/h264codec/vlc"
)

// zigZag4x4 maps a zig-zag scan position to a raster (row*4+col) index.
var zigZag4x4 = [16]int{
	0, 1, 4, 8,
	5, 2, 3, 6,
	9, 12, 13, 10,
	7, 11, 14, 15,
}

// zigZag2x2 is the trivial scan order for the 2x2 chroma-DC block.
var zigZag2x2 = [4]int{0, 1, 2, 3}

// Result carries the decoded or about-to-be-encoded state of one block.
type Result struct {
	TotalCoeff int
	// Coeffs holds 16 (or 4, for a 2x2 block) coefficients in raster order.
	Coeffs [16]int32
}

// ContextFromNeighbours derives the nC coeff-token context from the
// available left/above neighbour total-coeff counts, per the averaging rule
// this package is grounded on: the mean of the two available counts rounded
// up, or whichever single count is available, or 0 if neither is.
func ContextFromNeighbours(leftAvail, aboveAvail bool, leftCoeff, aboveCoeff int) vlc.NC {
	var n int
	switch {
	case leftAvail && aboveAvail:
		n = (leftCoeff + aboveCoeff + 1) / 2
	case leftAvail:
		n = leftCoeff
	case aboveAvail:
		n = aboveCoeff
	default:
		n = 0
	}
	switch {
	case n < 2:
		return vlc.NC0to1
	case n < 4:
		return vlc.NC2to3
	case n < 8:
		return vlc.NC4to7
	default:
		return vlc.NC8up
	}
}

// ContextChromaDC is the fixed context for 4:2:0 chroma-DC blocks, which
// never derive nC from neighbours.
const ContextChromaDC = vlc.NCneg1

// Encode writes one block's coefficients (raster order, length 16 for a 4x4
// block or 4 for a 2x2 chroma-DC block) to s, using nc for the coeff_token
// table, maxNumCoeff as the ceiling used to decide whether total_zeros is
// coded, and the given zig-zag scan. It returns the block's total_coeff, for
// the caller to feed into its neighbours' context derivation.
func Encode(s bits.Stream, coeffs []int32, nc vlc.NC, maxNumCoeff int, zigZag []int) (totalCoeff int, err error) {
	n := len(zigZag)
	scanned := make([]int32, n)
	for i, raster := range zigZag {
		scanned[i] = coeffs[raster]
	}

	var levels []int32
	var runs []int
	trailingOnes := 0
	trailingSigns := []int{}
	lastNonZero := -1
	for i := n - 1; i >= 0; i-- {
		if scanned[i] != 0 {
			lastNonZero = i
			break
		}
	}
	if lastNonZero < 0 {
		if _, werr := vlc.EncodeCoeffToken(s, nc, 0, 0); werr != nil {
			return 0, werr
		}
		return 0, nil
	}

	// run_before for a coefficient is the zero run BELOW it (toward lower
	// frequency, between it and the next nonzero to be decoded), so the run
	// accumulated while scanning down to a nonzero belongs to the PREVIOUS
	// pushed level, not the one just found; the final accumulated run
	// (after the loop) belongs to the last, lowest-frequency level.
	run := 0
	first := true
	for i := lastNonZero; i >= 0; i-- {
		if scanned[i] == 0 {
			run++
			continue
		}
		if !first {
			runs = append(runs, run)
		}
		first = false
		levels = append(levels, scanned[i])
		run = 0
		if len(levels) <= 3 && (scanned[i] == 1 || scanned[i] == -1) && len(levels) == trailingOnes+1 {
			trailingOnes++
			if scanned[i] == -1 {
				trailingSigns = append(trailingSigns, 1)
			} else {
				trailingSigns = append(trailingSigns, 0)
			}
		}
	}
	runs = append(runs, run)
	totalCoeff = len(levels)
	totalZeros := 0
	for _, r := range runs {
		totalZeros += r
	}

	if _, werr := vlc.EncodeCoeffToken(s, nc, totalCoeff, trailingOnes); werr != nil {
		return 0, werr
	}

	for _, sign := range trailingSigns {
		if s.BitsRemaining() < 1 {
			return 0, fmt.Errorf("cavlc: no room for sign bit: %w", errs.ErrStreamAccessDenied)
		}
		if werr := s.WriteBit(uint32(sign)); werr != nil {
			return 0, fmt.Errorf("cavlc: write sign bit: %w", errs.ErrStreamAccessDenied)
		}
	}

	suffixLength := 0
	if totalCoeff > 10 && trailingOnes < 3 {
		suffixLength = 1
	}
	for i := trailingOnes; i < totalCoeff; i++ {
		level := levels[i]
		var levelCode int
		if level > 0 {
			levelCode = int(level-1) * 2
		} else {
			levelCode = -int(level)*2 - 1
		}
		if i == trailingOnes && trailingOnes < 3 {
			levelCode -= 2
		}
		if err := encodeLevelCode(s, levelCode, &suffixLength); err != nil {
			return 0, err
		}
	}

	if totalCoeff < maxNumCoeff {
		var terr error
		if maxNumCoeff == 4 {
			_, terr = vlc.EncodeTotalZerosChromaDC(s, totalCoeff, totalZeros)
		} else {
			_, terr = vlc.EncodeTotalZeros(s, totalCoeff, totalZeros)
		}
		if terr != nil {
			return 0, terr
		}
	}

	zerosLeft := totalZeros
	for i := 0; i < totalCoeff-1; i++ {
		if zerosLeft <= 0 {
			break
		}
		if _, werr := vlc.EncodeRunBefore(s, zerosLeft, runs[i]); werr != nil {
			return 0, werr
		}
		zerosLeft -= runs[i]
	}

	return totalCoeff, nil
}

// encodeLevelCode writes one coeff_level using the prefix/suffix scheme
// described by the spec this package implements, mirroring DecodeLevel's
// inverse and advancing *suffixLength the same way DecodeLevel's caller
// would.
func encodeLevelCode(s bits.Stream, levelCode int, suffixLength *int) error {
	prefix := levelCode >> uint(*suffixLength)
	var levelSuffixSize int
	switch {
	case prefix == 14 && *suffixLength == 0:
		levelSuffixSize = 4
	case prefix >= 15:
		levelSuffixSize = prefix - 3
	default:
		levelSuffixSize = *suffixLength
	}

	wirePrefix := prefix
	var suffix int
	if levelSuffixSize > 0 {
		mask := (1 << uint(levelSuffixSize)) - 1
		suffix = levelCode & mask
	}
	if wirePrefix >= 15 {
		wirePrefix = 15
	}

	if _, err := vlc.EncodeExpGolombPrefix(s, wirePrefix); err != nil {
		return err
	}
	if levelSuffixSize > 0 {
		if s.BitsRemaining() < levelSuffixSize {
			return fmt.Errorf("cavlc: no room for level_suffix: %w", errs.ErrStreamAccessDenied)
		}
		if err := s.WriteBits(levelSuffixSize, uint32(suffix)); err != nil {
			return fmt.Errorf("cavlc: write level_suffix: %w", errs.ErrStreamAccessDenied)
		}
	}

	level := levelCode
	abs := level
	if abs < 0 {
		abs = -abs
	}
	if *suffixLength == 0 {
		*suffixLength = 1
	}
	if abs > (3 << uint(*suffixLength-1)) {
		*suffixLength++
	}
	if *suffixLength > 6 {
		*suffixLength = 6
	}
	return nil
}

// Decode reads one block's coefficients from s into a fresh Result, the
// symmetric inverse of Encode.
func Decode(s bits.Stream, nc vlc.NC, maxNumCoeff int, zigZag []int) (*Result, error) {
	totalCoeff, trailingOnes, err := vlc.DecodeCoeffToken(s, nc)
	if err != nil {
		return nil, err
	}
	res := &Result{TotalCoeff: totalCoeff}
	if totalCoeff == 0 {
		return res, nil
	}

	levels := make([]int32, totalCoeff)
	signs := make([]int, trailingOnes)
	for i := 0; i < trailingOnes; i++ {
		b, rerr := s.ReadBit()
		if rerr != nil {
			return nil, fmt.Errorf("cavlc: read sign bit: %w", errs.ErrStreamAccessDenied)
		}
		signs[i] = int(b)
	}

	suffixLength := 0
	if totalCoeff > 10 && trailingOnes < 3 {
		suffixLength = 1
	}
	for i := 0; i < totalCoeff; i++ {
		if i < trailingOnes {
			if signs[i] == 1 {
				levels[i] = -1
			} else {
				levels[i] = 1
			}
			continue
		}
		isFirstNonTrailing := i == trailingOnes
		level, next, derr := vlc.DecodeLevel(s, suffixLength, isFirstNonTrailing, trailingOnes < 3)
		if derr != nil {
			return nil, derr
		}
		suffixLength = next
		levels[i] = int32(level)
	}

	n := len(zigZag)
	totalZeros := 0
	if totalCoeff < maxNumCoeff {
		var terr error
		if maxNumCoeff == 4 {
			totalZeros, terr = vlc.DecodeTotalZerosChromaDC(s, totalCoeff)
		} else {
			totalZeros, terr = vlc.DecodeTotalZeros(s, totalCoeff)
		}
		if terr != nil {
			return nil, terr
		}
	}

	runs := make([]int, totalCoeff)
	zerosLeft := totalZeros
	for i := 0; i < totalCoeff-1; i++ {
		if zerosLeft <= 0 {
			runs[i] = 0
			continue
		}
		run, rerr := vlc.DecodeRunBefore(s, zerosLeft)
		if rerr != nil {
			return nil, rerr
		}
		runs[i] = run
		zerosLeft -= run
	}
	if totalCoeff > 0 {
		runs[totalCoeff-1] = zerosLeft
	}

	pos := totalZeros + totalCoeff - 1
	for i := 0; i < totalCoeff; i++ {
		if pos < 0 || pos >= n {
			return nil, fmt.Errorf("cavlc: scan position %d out of range: %w", pos, errs.ErrOutOfBounds)
		}
		res.Coeffs[zigZag[pos]] = levels[i]
		pos -= runs[i] + 1
	}

	return res, nil
}
