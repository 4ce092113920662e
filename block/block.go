/*
DESCRIPTION
  block.go defines Block, the per-4x4-unit container that ties a coefficient
  array to its position in a macroblock, its colour plane, and the transform
  used to move it between the spatial and coefficient domains.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package block implements Block, generalising BlockH264 from the codec this
// module replaces: a 4x4 (or 2x2, for chroma DC) coefficient grid addressed
// by its offset within a macroblock, aware of its colour plane and whether
// it carries DC or AC coefficients.
package block

import "github.com/ausocean/h264codec/transform"

// Colour identifies which plane a Block belongs to.
type Colour int

const (
	Luma Colour = iota
	Cb
	Cr
)

// Block is one 4x4 (or, when DC is true, logically smaller) coefficient
// grid within a macroblock.
type Block struct {
	OffX, OffY int
	Colour     Colour
	DC         bool

	// Coeffs holds the 16 4x4 coefficients in raster order; for a DC block
	// gathered from a 16x16 macroblock (Luma, DC=true) this holds the 16
	// DC values of the block's AC siblings, one per sibling position.
	Coeffs transform.Block4x4

	// NumCoeffs is the last decoded/encoded total_coeff for this block,
	// needed by the neighbouring block's coeff_token context derivation.
	NumCoeffs int

	// Coded records whether this block held any nonzero coefficient the
	// last time IsZero was evaluated, mirroring the _coded flag of the
	// codec this package replaces so CBP derivation need not re-scan.
	Coded bool
}

// New returns a Block positioned at (offX, offY) within its macroblock.
func New(offX, offY int, colour Colour, dc bool) *Block {
	return &Block{OffX: offX, OffY: offY, Colour: colour, DC: dc}
}

// ForwardTransform applies the 4x4 residual transform to the block's
// coefficients in place, at the given quantisation parameter and mode.
// DC blocks are transformed with the Hadamard elsewhere (see the root
// h264codec package's macroblock encode and decode),
// since gathering DC coefficients across sibling blocks is a macroblock-level
// operation, not a per-block one.
func (b *Block) ForwardTransform(intra bool, qp int, mode transform.Mode) {
	rt := transform.Residual4x4{Intra: intra}
	rt.Forward(&b.Coeffs, qp, mode)
}

// InverseTransform applies the inverse 4x4 residual transform in place.
func (b *Block) InverseTransform(qp int, mode transform.Mode) {
	var rt transform.Residual4x4
	rt.Inverse(&b.Coeffs, qp, mode)
}

// IsZero reports whether every coefficient in the block is zero, updating
// Coded as a side effect so a subsequent CBP derivation can read it directly
// rather than re-scanning every block.
func (b *Block) IsZero() bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if b.Coeffs[r][c] != 0 {
				b.Coded = true
				return false
			}
		}
	}
	b.Coded = false
	return true
}

// CopyBlock copies src's coefficients, colour, position and coded state into
// b, leaving neither aliased to the other's backing array.
func (b *Block) CopyBlock(src *Block) {
	b.OffX, b.OffY = src.OffX, src.OffY
	b.Colour = src.Colour
	b.DC = src.DC
	b.Coeffs = src.Coeffs
	b.NumCoeffs = src.NumCoeffs
	b.Coded = src.Coded
}
