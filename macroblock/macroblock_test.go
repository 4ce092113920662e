package macroblock

import "testing"

func TestCBPIntra16x16SingleNonZeroACMarksAllCoded(t *testing.T) {
	m := New(0, 0)
	m.MbPartPredMode = Intra16x16
	m.Blocks[IdxLuma22].Coeffs[1][1] = 3

	m.SetCodedBlockPattern()

	if m.CodedBlkPatternLum != 15 {
		t.Fatalf("CodedBlkPatternLum = %d, want 15", m.CodedBlkPatternLum)
	}
	for _, idx := range lumaAcIndices {
		if !m.Blocks[idx].Coded {
			t.Fatalf("block %d not marked coded", idx)
		}
	}
}

func TestMedianMVPrediction(t *testing.T) {
	g := &Grid{WidthInMBs: 3, HeightInMBs: 2}
	g.MBs = make([]*Macroblock, 6)
	for i := range g.MBs {
		g.MBs[i] = New(0, 0)
	}
	m := g.MBs[g.idx(1, 1)]
	m.LeftIdx = g.idx(1, 0)
	m.AboveIdx = g.idx(0, 1)
	m.AboveRightIdx = g.idx(0, 2)

	g.MBs[m.LeftIdx].MV = MotionVector{X: 4, Y: 2}
	g.MBs[m.AboveIdx].MV = MotionVector{X: -3, Y: 7}
	g.MBs[m.AboveRightIdx].MV = MotionVector{X: 1, Y: -5}

	mv := PredictMV(g, m)
	if mv.X != 1 || mv.Y != 2 {
		t.Fatalf("PredictMV = %+v, want {1 2}", mv)
	}
}

func TestTypeRoundTripIntra16x16(t *testing.T) {
	m := New(0, 0)
	m.IntraFlag = true
	m.MbPartPredMode = Intra16x16
	m.Intra16x16PredMode = 2
	m.CodedBlkPatternChr = 1
	m.CodedBlkPatternLum = 15

	m.SetType(SliceI)

	var m2 Macroblock
	m2.UnpackType(m.MbType, SliceI)
	if m2.Intra16x16PredMode != 2 || m2.CodedBlkPatternChr != 1 || m2.CodedBlkPatternLum != 15 {
		t.Fatalf("UnpackType = %+v, want predMode=2 chr=1 lum=15", m2)
	}
}
