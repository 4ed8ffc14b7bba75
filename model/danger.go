package model

// DangerCell is the strongest enemy threat that can reach a grid zone, and
// how many turns it needs to get there.
type DangerCell struct {
	Strength int64 `json:"strength"`
	Turns    int   `json:"turns"`
}

// DangerGrid is a coarse grid over the map. Each zone covers CellW x CellH
// tiles of one map level and keeps a single DangerCell.
type DangerGrid struct {
	Cols   int
	Rows   int
	Levels int // 1 means one layer shared by every level
	CellW  int
	CellH  int
	Cells  []DangerCell // Cells[(level*Rows + row)*Cols + col]
}

// NewDangerGrid builds the grid from wire data. Returns nil for nil input or
// a cell count that does not match the dimensions.
func NewDangerGrid(d *DangerData) *DangerGrid {
	if d == nil || d.Cols <= 0 || d.Rows <= 0 {
		return nil
	}
	levels := max(d.Levels, 1)
	if len(d.Cells) != d.Cols*d.Rows*levels {
		return nil
	}
	return &DangerGrid{Cols: d.Cols, Rows: d.Rows, Levels: levels, CellW: d.CellW, CellH: d.CellH, Cells: d.Cells}
}

// At returns the cell at grid coordinates (col, row) on a level.
// Out-of-bounds coordinates are treated as safe.
func (g *DangerGrid) At(col, row, level int) DangerCell {
	if g.Levels == 1 {
		level = 0
	}
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows || level < 0 || level >= g.Levels {
		return DangerCell{}
	}
	return g.Cells[(level*g.Rows+row)*g.Cols+col]
}

// AtMapPos converts map coordinates to grid coordinates and returns the cell.
// Zero-sized cells make the whole grid safe.
func (g *DangerGrid) AtMapPos(p Pos) DangerCell {
	if g.CellW <= 0 || g.CellH <= 0 {
		return DangerCell{}
	}
	return g.At(p.X/g.CellW, p.Y/g.CellH, p.Z)
}

// MaxStrength returns the highest threat anywhere on the grid.
func (g *DangerGrid) MaxStrength() int64 {
	var m int64
	for _, c := range g.Cells {
		if c.Strength > m {
			m = c.Strength
		}
	}
	return m
}
