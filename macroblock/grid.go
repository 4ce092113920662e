package macroblock

// Grid is an arena of macroblocks covering a rectangular tile of the
// picture, addressed in raster order. It owns every Macroblock it creates;
// neighbour relationships are indices into Grid.MBs, never pointers, so the
// graph carries no lifetime coupling with the arena that owns it.
type Grid struct {
	MBs            []*Macroblock
	WidthInMBs     int
	HeightInMBs    int
}

// NewGrid creates widthInMBs x heightInMBs macroblocks in raster order, each
// at its pel offset, then resolves every macroblock's four neighbour
// indices and every block's BlkAbove/BlkLeft against already-created
// neighbours. Neighbours crossing a slice boundary (rows before
// sliceFirstRow) are treated as absent, matching the source's stated
// behaviour for slice-crossing context.
func NewGrid(widthInMBs, heightInMBs, sliceFirstRow int) *Grid {
	g := &Grid{WidthInMBs: widthInMBs, HeightInMBs: heightInMBs}
	g.MBs = make([]*Macroblock, widthInMBs*heightInMBs)
	for row := 0; row < heightInMBs; row++ {
		for col := 0; col < widthInMBs; col++ {
			g.MBs[row*widthInMBs+col] = New(col*16, row*16)
		}
	}
	for row := 0; row < heightInMBs; row++ {
		for col := 0; col < widthInMBs; col++ {
			g.resolveNeighbours(row, col, sliceFirstRow)
		}
	}
	return g
}

func (g *Grid) idx(row, col int) int { return row*g.WidthInMBs + col }

func (g *Grid) mbAt(row, col, sliceFirstRow int) (int, bool) {
	if row < sliceFirstRow || row < 0 || col < 0 || col >= g.WidthInMBs || row >= g.HeightInMBs {
		return -1, false
	}
	return g.idx(row, col), true
}

func (g *Grid) resolveNeighbours(row, col, sliceFirstRow int) {
	m := g.MBs[g.idx(row, col)]

	if i, ok := g.mbAt(row, col-1, sliceFirstRow); ok {
		m.LeftIdx = i
	}
	if i, ok := g.mbAt(row-1, col, sliceFirstRow); ok {
		m.AboveIdx = i
	}
	if i, ok := g.mbAt(row-1, col-1, sliceFirstRow); ok {
		m.AboveLeftIdx = i
	}
	if i, ok := g.mbAt(row-1, col+1, sliceFirstRow); ok {
		m.AboveRightIdx = i
	}

	for pos := 0; pos < NumBlocks; pos++ {
		m.BlkLeft[pos] = g.resolveLeft(m, pos)
		m.BlkAbove[pos] = g.resolveAbove(m, pos)
	}
}

// leftNeighbourInMB maps a block position to the block position immediately
// to its left within the same macroblock, or -1 if the block sits on the
// macroblock's left edge and must wrap to the left neighbour macroblock's
// rightmost column.
var leftNeighbourInMB = map[int]int{
	IdxLuma00: -1, IdxLuma01: IdxLuma00, IdxLuma02: IdxLuma01, IdxLuma03: IdxLuma02,
	IdxLuma10: -1, IdxLuma11: IdxLuma10, IdxLuma12: IdxLuma11, IdxLuma13: IdxLuma12,
	IdxLuma20: -1, IdxLuma21: IdxLuma20, IdxLuma22: IdxLuma21, IdxLuma23: IdxLuma22,
	IdxLuma30: -1, IdxLuma31: IdxLuma30, IdxLuma32: IdxLuma31, IdxLuma33: IdxLuma32,
	IdxChromaCb00: -1, IdxChromaCb01: IdxChromaCb00, IdxChromaCb10: -1, IdxChromaCb11: IdxChromaCb10,
	IdxChromaCr00: -1, IdxChromaCr01: IdxChromaCr00, IdxChromaCr10: -1, IdxChromaCr11: IdxChromaCr10,
}

// wrapRightColumn gives, for a block on the left edge, the block position in
// the left-neighbour macroblock that sits in the equivalent row but the
// rightmost column.
var wrapRightColumn = map[int]int{
	IdxLuma00: IdxLuma03, IdxLuma10: IdxLuma13, IdxLuma20: IdxLuma23, IdxLuma30: IdxLuma33,
	IdxChromaCb00: IdxChromaCb01, IdxChromaCb10: IdxChromaCb11,
	IdxChromaCr00: IdxChromaCr01, IdxChromaCr10: IdxChromaCr11,
}

var aboveNeighbourInMB = map[int]int{
	IdxLuma00: -1, IdxLuma10: IdxLuma00, IdxLuma20: IdxLuma10, IdxLuma30: IdxLuma20,
	IdxLuma01: -1, IdxLuma11: IdxLuma01, IdxLuma21: IdxLuma11, IdxLuma31: IdxLuma21,
	IdxLuma02: -1, IdxLuma12: IdxLuma02, IdxLuma22: IdxLuma12, IdxLuma32: IdxLuma22,
	IdxLuma03: -1, IdxLuma13: IdxLuma03, IdxLuma23: IdxLuma13, IdxLuma33: IdxLuma23,
	IdxChromaCb00: -1, IdxChromaCb10: IdxChromaCb00, IdxChromaCb01: -1, IdxChromaCb11: IdxChromaCb01,
	IdxChromaCr00: -1, IdxChromaCr10: IdxChromaCr00, IdxChromaCr01: -1, IdxChromaCr11: IdxChromaCr01,
}

var wrapBottomRow = map[int]int{
	IdxLuma00: IdxLuma30, IdxLuma01: IdxLuma31, IdxLuma02: IdxLuma32, IdxLuma03: IdxLuma33,
	IdxChromaCb00: IdxChromaCb10, IdxChromaCb01: IdxChromaCb11,
	IdxChromaCr00: IdxChromaCr10, IdxChromaCr01: IdxChromaCr11,
}

func (g *Grid) resolveLeft(m *Macroblock, pos int) NeighbourRef {
	if pos == IdxLumaDC || pos == IdxChromaCbDC || pos == IdxChromaCrDC {
		return NeighbourRef{}
	}
	if inner, ok := leftNeighbourInMB[pos]; ok && inner != -1 {
		return NeighbourRef{MbIdx: -2, BlockIdx: inner, Valid: true}
	}
	if m.LeftIdx < 0 {
		return NeighbourRef{}
	}
	return NeighbourRef{MbIdx: m.LeftIdx, BlockIdx: wrapRightColumn[pos], Valid: true}
}

func (g *Grid) resolveAbove(m *Macroblock, pos int) NeighbourRef {
	if pos == IdxLumaDC || pos == IdxChromaCbDC || pos == IdxChromaCrDC {
		return NeighbourRef{}
	}
	if inner, ok := aboveNeighbourInMB[pos]; ok && inner != -1 {
		return NeighbourRef{MbIdx: -2, BlockIdx: inner, Valid: true}
	}
	if m.AboveIdx < 0 {
		return NeighbourRef{}
	}
	return NeighbourRef{MbIdx: m.AboveIdx, BlockIdx: wrapBottomRow[pos], Valid: true}
}

// Resolve returns the block referenced by ref relative to owner: MbIdx==-2
// means "within owner itself" (the within-macroblock neighbour case);
// otherwise MbIdx is an absolute arena index.
func (g *Grid) Resolve(owner *Macroblock, ownerIdx int, ref NeighbourRef) *Macroblock {
	if !ref.Valid {
		return nil
	}
	if ref.MbIdx == -2 {
		return owner
	}
	return g.MBs[ref.MbIdx]
}
