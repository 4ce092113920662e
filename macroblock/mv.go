package macroblock

// median is the three-way median used for motion-vector prediction,
// grounded verbatim on MacroBlockH264.cpp's Median function: it uses no
// sort, picking off the min and max of (y, z) first, folding x in, then
// subtracting both extremes from the sum.
func median(x, y, z int32) int32 {
	var min, max int32
	if y-z < 0 {
		min, max = y, z
	} else {
		min, max = z, y
	}
	if x < min {
		min = x
	}
	if x > max {
		max = x
	}
	return x + y + z - min - max
}

// neighbourMV returns the motion vector and intra status to use for
// prediction from the macroblock at idx in g, or the zero vector/intra=true
// if idx is absent (image/slice boundary).
func neighbourMV(g *Grid, idx int) (MotionVector, bool) {
	if idx < 0 {
		return MotionVector{}, true
	}
	mb := g.MBs[idx]
	if mb.IntraFlag {
		return MotionVector{}, true
	}
	return mb.MV, false
}

// PredictMV computes the median motion-vector prediction for m's 16x16
// partition within grid g, per the A=left/B=above/C=above-right (falling
// back to D=above-left) rule, with the both-B-and-C-absent substitution of
// A for both.
func PredictMV(g *Grid, m *Macroblock) MotionVector {
	mvA, _ := neighbourMV(g, m.LeftIdx)
	mvB, _ := neighbourMV(g, m.AboveIdx)

	cIdx := m.AboveRightIdx
	if cIdx < 0 {
		cIdx = m.AboveLeftIdx
	}
	mvC, _ := neighbourMV(g, cIdx)

	if m.AboveIdx < 0 && m.AboveRightIdx < 0 {
		mvB = mvA
		mvC = mvA
	}

	return MotionVector{
		X: median(mvA.X, mvB.X, mvC.X),
		Y: median(mvA.Y, mvB.Y, mvC.Y),
	}
}

// SkipMV computes the motion vector to use for a skipped macroblock: the
// zero vector if either left or above neighbour is absent or is an inter
// macroblock with a zero 16x16 MV, otherwise the ordinary median prediction.
func SkipMV(g *Grid, m *Macroblock) MotionVector {
	if m.LeftIdx < 0 || m.AboveIdx < 0 {
		return MotionVector{}
	}
	left := g.MBs[m.LeftIdx]
	above := g.MBs[m.AboveIdx]
	if (!left.IntraFlag && left.MV == (MotionVector{})) || (!above.IntraFlag && above.MV == (MotionVector{})) {
		return MotionVector{}
	}
	return PredictMV(g, m)
}
