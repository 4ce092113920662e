package macroblock

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestGridNeighbourResolution checks the resolved left/above NeighbourRef
// structs for a handful of representative block positions on a 2x2 grid,
// covering the within-macroblock, cross-macroblock and absent-neighbour
// cases, diffed with go-cmp the way the teacher's own table-driven struct
// comparisons do.
func TestGridNeighbourResolution(t *testing.T) {
	g := NewGrid(2, 2, 0)

	topLeft := g.MBs[g.idx(0, 0)]
	bottomRight := g.MBs[g.idx(1, 1)]

	cases := []struct {
		name string
		got  NeighbourRef
		want NeighbourRef
	}{
		{
			name: "top-left macroblock, luma00 has no left neighbour",
			got:  topLeft.BlkLeft[IdxLuma00],
			want: NeighbourRef{},
		},
		{
			name: "top-left macroblock, luma01 left neighbour is luma00 within the same macroblock",
			got:  topLeft.BlkLeft[IdxLuma01],
			want: NeighbourRef{MbIdx: -2, BlockIdx: IdxLuma00, Valid: true},
		},
		{
			name: "bottom-right macroblock, luma00 left neighbour wraps into the left macroblock's luma03",
			got:  bottomRight.BlkLeft[IdxLuma00],
			want: NeighbourRef{MbIdx: g.idx(1, 0), BlockIdx: IdxLuma03, Valid: true},
		},
		{
			name: "bottom-right macroblock, luma00 above neighbour wraps into the above macroblock's luma30",
			got:  bottomRight.BlkAbove[IdxLuma00],
			want: NeighbourRef{MbIdx: g.idx(0, 1), BlockIdx: IdxLuma30, Valid: true},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if diff := cmp.Diff(c.want, c.got); diff != "" {
				t.Fatalf("NeighbourRef mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
