package macroblock

// lumaQuadrant maps each of the 16 Luma AC block indices to its 8x8
// quadrant (0=top-left, 1=top-right, 2=bottom-left, 3=bottom-right).
var lumaQuadrant = map[int]int{
	IdxLuma00: 0, IdxLuma01: 0, IdxLuma10: 0, IdxLuma11: 0,
	IdxLuma02: 1, IdxLuma03: 1, IdxLuma12: 1, IdxLuma13: 1,
	IdxLuma20: 2, IdxLuma21: 2, IdxLuma30: 2, IdxLuma31: 2,
	IdxLuma22: 3, IdxLuma23: 3, IdxLuma32: 3, IdxLuma33: 3,
}

var lumaAcIndices = [16]int{
	IdxLuma00, IdxLuma01, IdxLuma02, IdxLuma03,
	IdxLuma10, IdxLuma11, IdxLuma12, IdxLuma13,
	IdxLuma20, IdxLuma21, IdxLuma22, IdxLuma23,
	IdxLuma30, IdxLuma31, IdxLuma32, IdxLuma33,
}

var chromaAcIndices = [8]int{
	IdxChromaCb00, IdxChromaCb01, IdxChromaCb10, IdxChromaCb11,
	IdxChromaCr00, IdxChromaCr01, IdxChromaCr10, IdxChromaCr11,
}

// SetCodedBlockPattern derives codedBlkPatternLum and codedBlkPatternChr
// from the macroblock's block coefficients, after quantisation, per the
// four-step procedure this package is grounded on (MacroBlockH264.cpp).
func (m *Macroblock) SetCodedBlockPattern() {
	if m.MbPartPredMode == Intra16x16 {
		anyNonZero := false
		for _, idx := range lumaAcIndices {
			if !m.Blocks[idx].IsZero() {
				anyNonZero = true
			}
		}
		if anyNonZero {
			m.CodedBlkPatternLum = 15
			for _, idx := range lumaAcIndices {
				m.Blocks[idx].Coded = true
			}
		} else {
			m.CodedBlkPatternLum = 0
		}
	} else {
		pattern := 0
		quadrantNonZero := [4]bool{}
		for _, idx := range lumaAcIndices {
			if !m.Blocks[idx].IsZero() {
				quadrantNonZero[lumaQuadrant[idx]] = true
			}
		}
		for q := 0; q < 4; q++ {
			if quadrantNonZero[q] {
				pattern |= 1 << uint(q)
			}
		}
		for _, idx := range lumaAcIndices {
			if quadrantNonZero[lumaQuadrant[idx]] {
				m.Blocks[idx].Coded = true
			}
		}
		m.CodedBlkPatternLum = pattern
	}

	dcCb := !m.Blocks[IdxChromaCbDC].IsZero()
	dcCr := !m.Blocks[IdxChromaCrDC].IsZero()
	acNonZero := false
	for _, idx := range chromaAcIndices {
		if !m.Blocks[idx].IsZero() {
			acNonZero = true
		}
	}
	switch {
	case acNonZero:
		m.CodedBlkPatternChr = 2
		m.Blocks[IdxChromaCbDC].Coded = true
		m.Blocks[IdxChromaCrDC].Coded = true
		for _, idx := range chromaAcIndices {
			m.Blocks[idx].Coded = true
		}
	case dcCb || dcCr:
		m.CodedBlkPatternChr = 1
		m.Blocks[IdxChromaCbDC].Coded = true
		m.Blocks[IdxChromaCrDC].Coded = true
	default:
		m.CodedBlkPatternChr = 0
	}
}

// CodedBlockPattern assembles the 6-bit wire value from the two derived
// fields.
func (m *Macroblock) CodedBlockPattern() int {
	return m.CodedBlkPatternLum | (m.CodedBlkPatternChr << 4)
}

// SetCodedBlockPatternFromWire is the inverse of CodedBlockPattern, used on
// decode before residual blocks are parsed.
func (m *Macroblock) SetCodedBlockPatternFromWire(cbp int) {
	m.CodedBlkPatternLum = cbp & 0xf
	m.CodedBlkPatternChr = (cbp >> 4) & 0x3
}
