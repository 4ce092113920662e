package cavlc

import (
	"testing"

	"github.com/ausocean/h264codec/bits"
	"github.com/ausocean/h264codec/vlc"
)

func TestRoundTripTypicalBlock(t *testing.T) {
	// End-to-end scenario from the spec: coefficients [3,0,1,-1,-1,0,1,0,...]
	// in zig-zag order, neighbour total-coeffs=2 (NC2to3 context). Expect
	// bit-exact recovery with totalCoeff=5; the trailing-ones count (3) is
	// not asserted here.
	zz := []int{0, 1, 4, 8, 5, 2, 3, 6, 9, 12, 13, 10, 7, 11, 14, 15}
	var raster [16]int32
	zig := []int32{3, 0, 1, -1, -1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	for i, v := range zig {
		raster[zz[i]] = v
	}

	buf := make([]byte, 16)
	w := bits.NewMSBWriter(buf, len(buf)*8)
	totalCoeff, err := Encode(w, raster[:], vlc.NC2to3, 16, zz)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if totalCoeff != 5 {
		t.Fatalf("totalCoeff = %d, want 5", totalCoeff)
	}

	r := bits.NewMSBReader(buf, w.Pos())
	res, err := Decode(r, vlc.NC2to3, 16, zz)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if res.TotalCoeff != 5 {
		t.Fatalf("decoded TotalCoeff = %d, want 5", res.TotalCoeff)
	}
	for i := 0; i < 16; i++ {
		if res.Coeffs[i] != raster[i] {
			t.Fatalf("Coeffs[%d] = %d, want %d", i, res.Coeffs[i], raster[i])
		}
	}
}

func TestRoundTripAllZero(t *testing.T) {
	zz := []int{0, 1, 4, 8, 5, 2, 3, 6, 9, 12, 13, 10, 7, 11, 14, 15}
	var raster [16]int32

	buf := make([]byte, 4)
	w := bits.NewMSBWriter(buf, len(buf)*8)
	totalCoeff, err := Encode(w, raster[:], vlc.NC0to1, 16, zz)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if totalCoeff != 0 {
		t.Fatalf("totalCoeff = %d, want 0", totalCoeff)
	}

	r := bits.NewMSBReader(buf, w.Pos())
	res, err := Decode(r, vlc.NC0to1, 16, zz)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if res.TotalCoeff != 0 {
		t.Fatalf("decoded TotalCoeff = %d, want 0", res.TotalCoeff)
	}
}
