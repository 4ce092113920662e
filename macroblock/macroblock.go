/*
DESCRIPTION
  macroblock.go defines Macroblock, the 16x16 fixed-size aggregate of 27
  blocks, its neighbour resolution over a rectangular tile, and the coding
  order the CAVLC engine and transform stages walk it in.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package macroblock implements the H.264 Baseline macroblock model: the
// 16x16 aggregate of 1 Luma-DC, 16 Luma-AC, 2 Chroma-DC and 8 Chroma-AC
// blocks, its neighbourhood (resolved once at grid initialisation, held as
// arena indices rather than pointers so the graph carries no lifetime
// coupling), coded-block-pattern derivation, mb_type packing, and
// motion-vector median prediction.
package macroblock

import "github.com/ausocean/h264codec/block"

// PredMode identifies a macroblock's partition/prediction mode.
type PredMode int

const (
	Intra4x4 PredMode = iota
	Intra16x16
	Inter16x16
	Inter16x8
	Inter8x16
	Inter8x8
	Inter8x8Ref
)

// Block index constants: 1 Luma-DC, 16 Luma-AC (raster order within the 4x4
// grid, IdxLuma00 + row*4 + col), 2 Chroma-DC, 8 Chroma-AC. The order in
// which residual coding walks them is CodingOrder, not this numbering.
// Grounded on MacroBlockH264.h's MBH264_* constants.
const (
	IdxLumaDC = iota
	IdxLuma00
	IdxLuma01
	IdxLuma02
	IdxLuma03
	IdxLuma10
	IdxLuma11
	IdxLuma12
	IdxLuma13
	IdxLuma20
	IdxLuma21
	IdxLuma22
	IdxLuma23
	IdxLuma30
	IdxLuma31
	IdxLuma32
	IdxLuma33
	IdxChromaCbDC
	IdxChromaCrDC
	IdxChromaCb00
	IdxChromaCb01
	IdxChromaCb10
	IdxChromaCb11
	IdxChromaCr00
	IdxChromaCr01
	IdxChromaCr10
	IdxChromaCr11

	NumBlocks = 27
)

// codingOrderEntry is one row of the 27-entry block-iteration table: a
// block index and a neighbour-indicator controlling whether the CAVLC
// engine consults neighbourhood context (1), skips context entirely (0), or
// the coefficient is consumed directly with no VLC context at all (-1,
// reserved for future chroma-DC-only variants). Whether a block's DC
// coefficient is coded separately from its AC siblings (dcSkip) is not
// fixed per block position — it depends on the owning macroblock's
// MbPartPredMode (for Luma) — so it is not part of this static table; see
// (*Macroblock).DCSkip.
type codingOrderEntry struct {
	index              int
	neighbourIndicator int
}

// CodingOrder is the fixed 27-entry walk order used by residual coding: the
// Luma DC block (for Intra16x16 macroblocks) first, then the 16 Luma AC
// blocks one 8x8 quadrant at a time (top-left, top-right, bottom-left,
// bottom-right, each quadrant's four blocks in raster order), then Chroma
// DC, then Chroma AC.
var CodingOrder = [NumBlocks]codingOrderEntry{
	{IdxLumaDC, 1},
	{IdxLuma00, 1}, {IdxLuma01, 1}, {IdxLuma10, 1}, {IdxLuma11, 1},
	{IdxLuma02, 1}, {IdxLuma03, 1}, {IdxLuma12, 1}, {IdxLuma13, 1},
	{IdxLuma20, 1}, {IdxLuma21, 1}, {IdxLuma30, 1}, {IdxLuma31, 1},
	{IdxLuma22, 1}, {IdxLuma23, 1}, {IdxLuma32, 1}, {IdxLuma33, 1},
	{IdxChromaCbDC, 0}, {IdxChromaCrDC, 0},
	{IdxChromaCb00, 1}, {IdxChromaCb01, 1}, {IdxChromaCb10, 1}, {IdxChromaCb11, 1},
	{IdxChromaCr00, 1}, {IdxChromaCr01, 1}, {IdxChromaCr10, 1}, {IdxChromaCr11, 1},
}

// DCSkip reports whether blockIdx's DC coefficient is coded separately from
// its AC siblings and so excluded from this block's own coefficient scan.
// Luma-AC blocks skip their DC position only when m's Luma-DC is coded
// separately, i.e. MbPartPredMode is Intra16x16; for Intra4x4 and every
// Inter mode the Luma-DC block is not used at all and each Luma-AC block's
// own DC position is coded in-line. Chroma-AC blocks always skip theirs:
// the chroma DC/AC split is structural, independent of prediction mode,
// per MacroBlockH264's unconditional dcSkipFlag=1 for every Chroma-AC block.
func (m *Macroblock) DCSkip(blockIdx int) bool {
	switch {
	case blockIdx >= IdxLuma00 && blockIdx <= IdxLuma33:
		return m.MbPartPredMode == Intra16x16
	case blockIdx >= IdxChromaCb00 && blockIdx <= IdxChromaCr11:
		return true
	default:
		return false
	}
}

// NeighbourRef addresses a block belonging to another macroblock by arena
// index and block position, never by pointer.
type NeighbourRef struct {
	MbIdx    int
	BlockIdx int
	Valid    bool
}

// MotionVector is a pair of quarter-pel motion components.
type MotionVector struct{ X, Y int32 }

// Macroblock is the 16x16 fixed aggregate.
type Macroblock struct {
	Blocks [NumBlocks]*block.Block

	// Neighbour macroblock indices into the owning arena, or -1 when absent
	// (image/slice boundary).
	LeftIdx, AboveIdx, AboveLeftIdx, AboveRightIdx int

	// BlkAbove/BlkLeft hold, per block index, the neighbour reference
	// resolved once at grid initialisation.
	BlkAbove [NumBlocks]NeighbourRef
	BlkLeft  [NumBlocks]NeighbourRef

	IntraFlag           bool
	MbPartPredMode      PredMode
	Intra16x16PredMode  int
	IntraChrPredMode    int
	CodedBlkPatternLum  int
	CodedBlkPatternChr  int
	MbType              int
	SubMbType           int
	Skip                bool
	MbQPDelta           int
	MbQP                int

	MV MotionVector
}

// New returns a Macroblock with its 27 blocks allocated at the pel offsets
// fixed H.264 gives each position within a 16x16 unit; offX/offY is the
// macroblock's own top-left corner in the picture.
func New(offX, offY int) *Macroblock {
	m := &Macroblock{LeftIdx: -1, AboveIdx: -1, AboveLeftIdx: -1, AboveRightIdx: -1}
	m.Blocks[IdxLumaDC] = block.New(offX, offY, block.Luma, true)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			idx := IdxLuma00 + r*4 + c
			m.Blocks[idx] = block.New(offX+c*4, offY+r*4, block.Luma, false)
		}
	}
	m.Blocks[IdxChromaCbDC] = block.New(offX/2, offY/2, block.Cb, true)
	m.Blocks[IdxChromaCrDC] = block.New(offX/2, offY/2, block.Cr, true)
	chromaOffsets := [4][2]int{{0, 0}, {4, 0}, {0, 4}, {4, 4}}
	for i, o := range chromaOffsets {
		m.Blocks[IdxChromaCb00+i] = block.New(offX/2+o[0], offY/2+o[1], block.Cb, false)
		m.Blocks[IdxChromaCr00+i] = block.New(offX/2+o[0], offY/2+o[1], block.Cr, false)
	}
	return m
}
