package transform

// normAdjustForward[qp%6][colGroup] scales a forward-transformed coefficient
// before quantisation; colGroup is selected per position by colSelector.
// Grounded on FastForward4x4On16x16ITImpl1.cpp's NormAdjust table.
var normAdjustForward = [6][3]int64{
	{13107, 5243, 8066},
	{11916, 4660, 7490},
	{10082, 4194, 6554},
	{9362, 3647, 5825},
	{8192, 3355, 5243},
	{7282, 2893, 4559},
}

// normAdjustInverse[qp%6][colGroup] scales a dequantised coefficient before
// the inverse spatial transform. Grounded on FastInverse4x4ITImpl1.cpp.
var normAdjustInverse = [6][3]int64{
	{10, 16, 13},
	{11, 18, 14},
	{13, 20, 16},
	{14, 23, 18},
	{16, 25, 20},
	{18, 29, 23},
}

// colSelector maps a raster position (row-major, 0..15) to one of the three
// NormAdjust columns, following the fixed pattern used for every 4x4 block
// regardless of plane.
var colSelector = [16]int{
	0, 2, 0, 2,
	2, 1, 2, 1,
	0, 2, 0, 2,
	2, 1, 2, 1,
}

// Residual4x4 implements the forward and inverse 4x4 integer transform with
// optional fused (de)quantisation, per Mode.
type Residual4x4 struct {
	// Intra selects the rounding offset divisor used during forward
	// quantisation: /3 for intra blocks, /6 for inter, matching the split in
	// FastForward4x4On16x16ITImpl1.cpp.
	Intra bool
}

// Forward applies the 4x4 transform (and, unless mode is TransformOnly,
// quantisation) to block in place, at the given quantisation parameter qp.
func (t Residual4x4) Forward(block *Block4x4, qp int, mode Mode) {
	if mode != QuantOnly {
		forwardSpatial4x4(block)
	}
	if mode == TransformOnly {
		return
	}
	t.quantise(block, qp)
}

// Inverse applies dequantisation (unless mode is TransformOnly) followed by
// the inverse 4x4 transform, at the given quantisation parameter qp.
func (t Residual4x4) Inverse(block *Block4x4, qp int, mode Mode) {
	if mode != TransformOnly {
		t.dequantise(block, qp)
	}
	if mode == QuantOnly {
		return
	}
	inverseSpatial4x4(block)
}

// forwardSpatial4x4 is the butterfly core of the forward 4x4 transform,
// applied first to rows then to columns.
func forwardSpatial4x4(b *Block4x4) {
	for i := 0; i < 4; i++ {
		e0 := b[i][0] + b[i][3]
		e1 := b[i][1] + b[i][2]
		e2 := b[i][1] - b[i][2]
		e3 := b[i][0] - b[i][3]
		b[i][0] = e0 + e1
		b[i][1] = 2*e3 + e2
		b[i][2] = e0 - e1
		b[i][3] = e3 - 2*e2
	}
	for j := 0; j < 4; j++ {
		e0 := b[0][j] + b[3][j]
		e1 := b[1][j] + b[2][j]
		e2 := b[1][j] - b[2][j]
		e3 := b[0][j] - b[3][j]
		b[0][j] = e0 + e1
		b[1][j] = 2*e3 + e2
		b[2][j] = e0 - e1
		b[3][j] = e3 - 2*e2
	}
}

// inverseSpatial4x4 is the butterfly core of the inverse 4x4 transform, with
// each output of the final stage rounded as (s+32)>>6, grounded on
// FastInverse4x4ITImpl1.cpp.
func inverseSpatial4x4(b *Block4x4) {
	for j := 0; j < 4; j++ {
		e0 := b[0][j] + b[2][j]
		e1 := b[0][j] - b[2][j]
		e2 := (b[1][j] >> 1) - b[3][j]
		e3 := b[1][j] + (b[3][j] >> 1)
		b[0][j] = e0 + e3
		b[1][j] = e1 + e2
		b[2][j] = e1 - e2
		b[3][j] = e0 - e3
	}
	for i := 0; i < 4; i++ {
		e0 := b[i][0] + b[i][2]
		e1 := b[i][0] - b[i][2]
		e2 := (b[i][1] >> 1) - b[i][3]
		e3 := b[i][1] + (b[i][3] >> 1)
		s0 := e0 + e3
		s1 := e1 + e2
		s2 := e1 - e2
		s3 := e0 - e3
		b[i][0] = (s0 + 32) >> 6
		b[i][1] = (s1 + 32) >> 6
		b[i][2] = (s2 + 32) >> 6
		b[i][3] = (s3 + 32) >> 6
	}
}

func (t Residual4x4) quantise(b *Block4x4, qp int) {
	qm := qp % 6
	qe := qp / 6
	div := int64(6)
	if t.Intra {
		div = 3
	}
	f := (int64(1) << uint(15+qe)) / div
	scale := uint(15 + qe)
	for pos := 0; pos < 16; pos++ {
		r, c := pos/4, pos%4
		x := int64(b[r][c])
		norm := normAdjustForward[qm][colSelector[pos]]
		var out int64
		if x >= 0 {
			out = (x*norm + f) >> scale
		} else {
			out = -(((-x)*norm + f) >> scale)
		}
		b[r][c] = int32(out)
	}
}

func (t Residual4x4) dequantise(b *Block4x4, qp int) {
	qm := qp % 6
	qe := qp / 6
	for pos := 0; pos < 16; pos++ {
		r, c := pos/4, pos%4
		x := int64(b[r][c])
		// The level scale is the NormAdjust entry times a flat weight of 16.
		norm := normAdjustInverse[qm][colSelector[pos]] * 16
		var out int64
		if qe >= 4 {
			out = (x * norm) << uint(qe-4)
		} else {
			f := int64(1) << uint(3-qe)
			out = (x*norm + f) >> uint(4-qe)
		}
		b[r][c] = int32(out)
	}
}
