package transform

import (
	"testing"

	"gonum.org/v1/gonum/stat"
)

// TestQuantisationErrorBoundedAcrossQPRange is the quantified property test:
// over a spread of fixed residual blocks and the full QP range, a full
// transform+quantise followed by dequantise+inverse-transform round trip
// must land within a quantisation-step-proportional error ball of the
// original block, never diverging unboundedly. gonum/stat summarises the
// per-QP mean absolute error so a regression shows up as a shifted mean, not
// just a single failing sample.
func TestQuantisationErrorBoundedAcrossQPRange(t *testing.T) {
	blocks := [][16]int32{
		{1, -2, 3, -4, 5, -6, 7, -8, 9, -10, 11, -12, 13, -14, 15, -16},
		{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0},
		{20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20},
		{-5, 3, -2, 8, 1, -9, 4, 0, 6, -3, 2, -7, 5, -1, 9, -4},
	}

	for qp := 0; qp <= 51; qp++ {
		errs := make([]float64, 0, len(blocks)*16)
		for _, vals := range blocks {
			var b Block4x4
			for i, v := range vals {
				b[i/4][i%4] = v
			}
			orig := b

			rt := Residual4x4{Intra: true}
			rt.Forward(&b, qp, TransformAndQuant)
			rt.Inverse(&b, qp, TransformAndQuant)

			for r := 0; r < 4; r++ {
				for c := 0; c < 4; c++ {
					d := float64(b[r][c] - orig[r][c])
					if d < 0 {
						d = -d
					}
					errs = append(errs, d)
				}
			}
		}
		mean := stat.Mean(errs, nil)
		// The reconstruction error grows with the quantisation step size
		// (roughly doubling every 6 QP points, the point of the qp%6/qp/6
		// split in the NormAdjust tables); bound it generously so the test
		// catches a broken scale table or a sign error, not fine-grained
		// rounding differences.
		bound := 10.0 + float64(qp)*4.0
		if mean > bound {
			t.Fatalf("qp=%d: mean abs reconstruction error %.2f exceeds bound %.2f", qp, mean, bound)
		}
	}
}
