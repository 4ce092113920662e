/*
DESCRIPTION
  transform.go defines the shared types used by the 4x4 residual transform,
  the 4x4 luma-DC Hadamard, and the 2x2 chroma-DC Hadamard: a transform mode
  controlling whether quantisation runs alongside the spatial transform, and
  the Block4x4/Block2x2 coefficient array types each transform operates on.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package transform implements the H.264 Baseline integer transforms: the
// 4x4 residual (DCT-like) transform, the 4x4 Hadamard used for Intra16x16
// luma DC coefficients, and the 2x2 Hadamard used for chroma DC. Each has a
// forward and inverse form, and each can be fused with (de)quantisation via
// Mode, which every call takes as an explicit parameter; no mode is stored
// on a transform value.
package transform

// Mode controls whether a transform call also applies quantisation.
type Mode int

const (
	// TransformAndQuant applies the spatial transform immediately followed by
	// quantisation (forward), or dequantisation immediately followed by the
	// inverse spatial transform (inverse).
	TransformAndQuant Mode = iota
	// TransformOnly applies only the spatial transform, leaving coefficients
	// unscaled. Used when a caller wants to inspect or reuse raw transform
	// coefficients across more than one quantisation parameter.
	TransformOnly
	// QuantOnly applies only (de)quantisation to values already in the
	// transform domain.
	QuantOnly
)

// Block4x4 is a 4x4 (or, for DC blocks, logically 4x4/2x2) array of
// coefficients addressed in raster order, block[y][x].
type Block4x4 [4][4]int32

// Block2x2 is the 2x2 chroma-DC coefficient array.
type Block2x2 [2][2]int32
