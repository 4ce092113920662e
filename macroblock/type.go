package macroblock

// Intra16x16ModeTable enumerates the 24 Intra16x16 sub-types as
// {predMode, chromaCBP, lumaCBP} rows, the Cartesian product of 4 prediction
// modes x 3 chroma CBP values x 2 luma CBP values (0 or 15), in the row
// order the wire format assigns them. Grounded verbatim on
// MacroBlockH264.cpp's Intra16x16ModeTable.
var Intra16x16ModeTable = [24][3]int{
	{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0},
	{0, 1, 0}, {1, 1, 0}, {2, 1, 0}, {3, 1, 0},
	{0, 2, 0}, {1, 2, 0}, {2, 2, 0}, {3, 2, 0},
	{0, 0, 15}, {1, 0, 15}, {2, 0, 15}, {3, 0, 15},
	{0, 1, 15}, {1, 1, 15}, {2, 1, 15}, {3, 1, 15},
	{0, 2, 15}, {1, 2, 15}, {2, 2, 15}, {3, 2, 15},
}

// SliceType distinguishes P-slices, where intra types are offset, from
// I-slices, where they are not.
type SliceType int

const (
	SliceI SliceType = iota
	SliceP
)

// SetType packs (IntraFlag, MbPartPredMode, CodedBlkPatternLum/Chr,
// Intra16x16PredMode) into MbType for the given slice type.
func (m *Macroblock) SetType(slice SliceType) {
	if !m.IntraFlag {
		m.MbType = int(m.MbPartPredMode)
		return
	}
	if m.MbPartPredMode == Intra4x4 {
		m.MbType = 0
		if slice == SliceP {
			m.MbType = 5
		}
		return
	}

	row := -1
	for i, r := range Intra16x16ModeTable {
		if r[0] == m.Intra16x16PredMode && r[1] == m.CodedBlkPatternChr && r[2] == m.CodedBlkPatternLum {
			row = i
			break
		}
	}
	if row < 0 {
		row = 0
	}
	base := 1
	if slice == SliceP {
		base = 6
	}
	m.MbType = base + row
}

// UnpackType is SetType's inverse: given MbType and slice, it reconstructs
// IntraFlag, MbPartPredMode and, for Intra16x16, the CBP/pred-mode fields.
func (m *Macroblock) UnpackType(mbType int, slice SliceType) {
	offset := 1
	if slice == SliceP {
		offset = 6
		if mbType < 5 {
			m.IntraFlag = false
			m.MbPartPredMode = PredMode(mbType)
			m.MbType = mbType
			return
		}
		if mbType == 5 {
			m.IntraFlag = true
			m.MbPartPredMode = Intra4x4
			m.MbType = mbType
			return
		}
	} else if mbType == 0 {
		m.IntraFlag = true
		m.MbPartPredMode = Intra4x4
		m.MbType = mbType
		return
	}

	m.IntraFlag = true
	m.MbPartPredMode = Intra16x16
	m.MbType = mbType
	row := mbType - offset
	if row < 0 || row >= len(Intra16x16ModeTable) {
		return
	}
	entry := Intra16x16ModeTable[row]
	m.Intra16x16PredMode = entry[0]
	m.CodedBlkPatternChr = entry[1]
	m.CodedBlkPatternLum = entry[2]
}
