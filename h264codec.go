/*
DESCRIPTION
  h264codec.go defines Picture, the top-level aggregate tying a macroblock
  grid to the per-slice encode/decode entry points, and implements the
  single-threaded, raster-order scheduling the entropy layer depends on.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package h264codec implements the core of an H.264/AVC Baseline-profile
// codec: bit-stream I/O (bits), VLC tables (vlc), integer transforms
// (transform), the macroblock model (block, macroblock), CAVLC (cavlc) and
// a thin NAL header reader (nalheader). Picture, here, is the glue: a
// rectangular tile of macroblocks coded one slice at a time, in raster
// order, because each macroblock's entropy context depends on its already
// coded neighbours.
package h264codec

import (
	"fmt"

	"github.com/ausocean/h264codec/bits"
	"github.com/ausocean/h264codec/block"
	"github.com/ausocean/h264codec/cavlc"
	"github.com/ausocean/h264codec/macroblock"
	"github.com/ausocean/h264codec/transform"
	"github.com/ausocean/h264codec/vlc"
)

// Picture is one coded frame: a macroblock grid plus the slice type that
// governs mb_type packing.
type Picture struct {
	Grid      *macroblock.Grid
	SliceType macroblock.SliceType
	QP        int
}

// NewPicture returns a Picture covering widthInMBs x heightInMBs
// macroblocks, all in a single slice starting at row 0.
func NewPicture(widthInMBs, heightInMBs int, sliceType macroblock.SliceType, qp int) *Picture {
	return &Picture{
		Grid:      macroblock.NewGrid(widthInMBs, heightInMBs, 0),
		SliceType: sliceType,
		QP:        qp,
	}
}

// EncodeMacroblock transforms, quantises, derives CBP and entropy-codes one
// already-populated (spatial-domain residual) macroblock into s, in the
// raster-order position idx. Macroblocks must be encoded in increasing idx
// order so neighbour total-coeff context is available when needed.
func (p *Picture) EncodeMacroblock(s bits.Stream, idx int) error {
	m := p.Grid.MBs[idx]

	for _, entry := range macroblock.CodingOrder {
		if entry.index == macroblock.IdxLumaDC && m.MbPartPredMode != macroblock.Intra16x16 {
			continue
		}
		blk := m.Blocks[entry.index]
		intra := m.IntraFlag
		if entry.index == macroblock.IdxLumaDC {
			var hadamard transform.HadamardLumaDC
			hadamard.Forward(&blk.Coeffs, p.QP, transform.TransformAndQuant)
			continue
		}
		if entry.index == macroblock.IdxChromaCbDC || entry.index == macroblock.IdxChromaCrDC {
			continue // gathered and Hadamard-transformed at the macroblock level by the caller
		}
		blk.ForwardTransform(intra, p.QP, transform.TransformAndQuant)
	}

	m.SetCodedBlockPattern()

	for _, entry := range macroblock.CodingOrder {
		if entry.index == macroblock.IdxLumaDC && m.MbPartPredMode != macroblock.Intra16x16 {
			continue
		}
		blk := m.Blocks[entry.index]
		nc := p.contextFor(m, idx, entry.index)
		dcSkip := m.DCSkip(entry.index)
		maxNumCoeff := maxNumCoeffFor(entry.index, dcSkip)
		zz := zigZagFor(entry.index, dcSkip)

		flat := coeffSlice(blk, rasterLenFor(entry.index))
		totalCoeff, err := cavlc.Encode(s, flat, nc, maxNumCoeff, zz)
		if err != nil {
			return fmt.Errorf("h264codec: encode macroblock %d block %d: %w", idx, entry.index, err)
		}
		blk.NumCoeffs = totalCoeff
	}
	return nil
}

// DecodeMacroblock is EncodeMacroblock's inverse: it reads residual
// coefficients from s into the macroblock at idx, then dequantises and
// inverse-transforms them.
func (p *Picture) DecodeMacroblock(s bits.Stream, idx int) error {
	m := p.Grid.MBs[idx]

	for _, entry := range macroblock.CodingOrder {
		if entry.index == macroblock.IdxLumaDC && m.MbPartPredMode != macroblock.Intra16x16 {
			continue
		}
		blk := m.Blocks[entry.index]
		nc := p.contextFor(m, idx, entry.index)
		dcSkip := m.DCSkip(entry.index)
		maxNumCoeff := maxNumCoeffFor(entry.index, dcSkip)
		zz := zigZagFor(entry.index, dcSkip)

		res, err := cavlc.Decode(s, nc, maxNumCoeff, zz)
		if err != nil {
			return fmt.Errorf("h264codec: decode macroblock %d block %d: %w", idx, entry.index, err)
		}
		blk.NumCoeffs = res.TotalCoeff
		setCoeffsFromFlat(blk, res.Coeffs[:rasterLenFor(entry.index)])
	}

	for _, entry := range macroblock.CodingOrder {
		blk := m.Blocks[entry.index]
		if entry.index == macroblock.IdxLumaDC {
			if m.MbPartPredMode != macroblock.Intra16x16 {
				continue
			}
			var hadamard transform.HadamardLumaDC
			hadamard.Inverse(&blk.Coeffs, p.QP, transform.TransformAndQuant)
			continue
		}
		if entry.index == macroblock.IdxChromaCbDC || entry.index == macroblock.IdxChromaCrDC {
			continue
		}
		blk.InverseTransform(p.QP, transform.TransformAndQuant)
	}
	return nil
}

// contextFor derives the coeff-token context for block blockIdx of the
// macroblock at mbIdx, from its resolved left/above neighbours' NumCoeffs.
func (p *Picture) contextFor(m *macroblock.Macroblock, mbIdx, blockIdx int) vlc.NC {
	if blockIdx == macroblock.IdxChromaCbDC || blockIdx == macroblock.IdxChromaCrDC {
		return cavlc.ContextChromaDC
	}
	leftRef := m.BlkLeft[blockIdx]
	aboveRef := m.BlkAbove[blockIdx]

	leftBlk := p.resolveBlock(m, mbIdx, leftRef)
	aboveBlk := p.resolveBlock(m, mbIdx, aboveRef)

	leftAvail := leftBlk != nil
	aboveAvail := aboveBlk != nil
	var leftCoeff, aboveCoeff int
	if leftAvail {
		leftCoeff = leftBlk.NumCoeffs
	}
	if aboveAvail {
		aboveCoeff = aboveBlk.NumCoeffs
	}
	return cavlc.ContextFromNeighbours(leftAvail, aboveAvail, leftCoeff, aboveCoeff)
}

func (p *Picture) resolveBlock(m *macroblock.Macroblock, mbIdx int, ref macroblock.NeighbourRef) *block.Block {
	if !ref.Valid {
		return nil
	}
	if ref.MbIdx == -2 {
		return m.Blocks[ref.BlockIdx]
	}
	return p.Grid.MBs[ref.MbIdx].Blocks[ref.BlockIdx]
}

// coeffSlice flattens blk's raster-order coefficients into a slice of
// rasterLen entries (16 for a 4x4 block, 4 for a 2x2 chroma-DC block),
// addressable by any raster index a zig-zag table might reference —
// independent of how many of those positions a dcSkip scan actually visits.
func coeffSlice(blk *block.Block, rasterLen int) []int32 {
	stride := 4
	if rasterLen == 4 {
		stride = 2
	}
	flat := make([]int32, rasterLen)
	for i := range flat {
		r, c := i/stride, i%stride
		flat[i] = blk.Coeffs[r][c]
	}
	return flat
}

// setCoeffsFromFlat writes a raster-order flat coefficient slice back into
// blk's 4x4 (or 2x2, embedded in the top-left corner) grid.
func setCoeffsFromFlat(blk *block.Block, flat []int32) {
	stride := 4
	if len(flat) == 4 {
		stride = 2
	}
	for i, v := range flat {
		r, c := i/stride, i%stride
		blk.Coeffs[r][c] = v
	}
}

func maxNumCoeffFor(blockIdx int, dcSkip bool) int {
	switch blockIdx {
	case macroblock.IdxChromaCbDC, macroblock.IdxChromaCrDC:
		return 4
	default:
		if dcSkip {
			return 15
		}
		return 16
	}
}

// rasterLenFor is the full raster size of blockIdx's coefficient grid: 4 for
// the 2x2 chroma-DC blocks, 16 for every 4x4 luma/chroma-AC block. Unlike
// zigZagFor's scan table, this never shrinks for a dcSkip block: the
// underlying grid still has 16 raster positions even when the scan visits
// only 15 of them, and coeffSlice/setCoeffsFromFlat need to address all of
// them so a zig-zag entry of 15 (the block's last AC position) is never out
// of range.
func rasterLenFor(blockIdx int) int {
	switch blockIdx {
	case macroblock.IdxChromaCbDC, macroblock.IdxChromaCrDC:
		return 4
	default:
		return 16
	}
}

// zigZagFor returns the scan order for blockIdx: the full 16-position table
// for a block whose DC is coded in-line, or the trailing 15 AC-only
// positions (raster position 0, the DC coefficient, excluded) when dcSkip is
// set, per CAVLCH264Impl's scan loop bounds of maxNumCoeff-1 downto dcSkip.
func zigZagFor(blockIdx int, dcSkip bool) []int {
	switch blockIdx {
	case macroblock.IdxChromaCbDC, macroblock.IdxChromaCrDC:
		return zz2x2[:]
	default:
		if dcSkip {
			return zz4x4[1:]
		}
		return zz4x4[:]
	}
}

var zz4x4 = [16]int{0, 1, 4, 8, 5, 2, 3, 6, 9, 12, 13, 10, 7, 11, 14, 15}
var zz2x2 = [4]int{0, 1, 2, 3}
