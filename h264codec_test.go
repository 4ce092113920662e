package h264codec

import (
	"testing"

	"github.com/ausocean/h264codec/bits"
	"github.com/ausocean/h264codec/macroblock"
)

// TestEncodeDecodeMacroblockIntra16x16DCSkip exercises the dcSkip=true path
// (Luma-DC coded separately from its 16 Luma-AC siblings, each of whose
// scans must exclude raster position 0 without running off the end of the
// 16-entry coefficient grid).
func TestEncodeDecodeMacroblockIntra16x16DCSkip(t *testing.T) {
	pic := NewPicture(1, 1, macroblock.SliceI, 26)
	m := pic.Grid.MBs[0]
	m.IntraFlag = true
	m.MbPartPredMode = macroblock.Intra16x16

	// Populate every Luma-AC block's highest-frequency AC position (raster
	// 15, the last entry any dcSkip zig-zag table may reference) plus its DC
	// position (raster 0, which must be ignored by the dcSkip scan).
	for idx := macroblock.IdxLuma00; idx <= macroblock.IdxLuma33; idx++ {
		m.Blocks[idx].Coeffs[3][3] = 2
		m.Blocks[idx].Coeffs[0][0] = 9
	}
	m.Blocks[macroblock.IdxLumaDC].Coeffs[0][0] = 5

	buf := make([]byte, 512)
	w := bits.NewMSBWriter(buf, len(buf)*8)
	if err := pic.EncodeMacroblock(w, 0); err != nil {
		t.Fatalf("EncodeMacroblock: %v", err)
	}

	want := make([]int, macroblock.NumBlocks)
	for i, blk := range m.Blocks {
		want[i] = blk.NumCoeffs
	}

	r := bits.NewMSBReader(buf, w.Pos())
	if err := pic.DecodeMacroblock(r, 0); err != nil {
		t.Fatalf("DecodeMacroblock: %v", err)
	}
	for i, blk := range m.Blocks {
		if blk.NumCoeffs != want[i] {
			t.Fatalf("block %d: NumCoeffs = %d, want %d", i, blk.NumCoeffs, want[i])
		}
	}
}

// TestEncodeDecodeMacroblockIntra4x4NoDCSkip covers the dcSkip=false path:
// an Intra4x4 macroblock never codes a separate Luma-DC block, so each
// Luma-AC block's own DC position (raster 0) is coded in-line and the full
// 16-entry zig-zag table applies.
func TestEncodeDecodeMacroblockIntra4x4NoDCSkip(t *testing.T) {
	pic := NewPicture(1, 1, macroblock.SliceI, 26)
	m := pic.Grid.MBs[0]
	m.IntraFlag = true
	m.MbPartPredMode = macroblock.Intra4x4

	// A lone residual of 64 quantises to a DC level of 1 at QP 26 (intra);
	// a residual as small as 4 quantises to zero and would leave nothing coded.
	for idx := macroblock.IdxLuma00; idx <= macroblock.IdxLuma33; idx++ {
		m.Blocks[idx].Coeffs[0][0] = 64
	}

	buf := make([]byte, 512)
	w := bits.NewMSBWriter(buf, len(buf)*8)
	if err := pic.EncodeMacroblock(w, 0); err != nil {
		t.Fatalf("EncodeMacroblock: %v", err)
	}
	if m.Blocks[macroblock.IdxLuma00].NumCoeffs == 0 {
		t.Fatalf("expected nonzero NumCoeffs for an in-line-coded DC coefficient")
	}

	want := make([]int, macroblock.NumBlocks)
	for i, blk := range m.Blocks {
		want[i] = blk.NumCoeffs
	}

	r := bits.NewMSBReader(buf, w.Pos())
	if err := pic.DecodeMacroblock(r, 0); err != nil {
		t.Fatalf("DecodeMacroblock: %v", err)
	}
	for i, blk := range m.Blocks {
		if blk.NumCoeffs != want[i] {
			t.Fatalf("block %d: NumCoeffs = %d, want %d", i, blk.NumCoeffs, want[i])
		}
	}
}
