package cframe

// Color is an RGB triple as stored in a .cframe record.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Cell is one character with its color at a grid position.
type Cell struct {
	Char  byte  `json:"char"`
	Color Color `json:"color"`
}

// Grid is a decoded colored ASCII frame. Cells are stored in row-major
// order and len(Cells) == Width*Height. A Grid is never mutated after
// decoding.
type Grid struct {
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
	Cells  []Cell `json:"cells"`
}

// CellAt returns the cell at the given position.
func (g *Grid) CellAt(row, col int) (Cell, error) {
	if row < 0 || col < 0 || row >= int(g.Height) || col >= int(g.Width) {
		return Cell{}, ErrIndexOutOfBounds
	}
	return g.Cells[row*int(g.Width)+col], nil
}

// CharAt returns the character at the given position.
func (g *Grid) CharAt(row, col int) (byte, error) {
	c, err := g.CellAt(row, col)
	return c.Char, err
}

// ColorAt returns the color at the given position.
func (g *Grid) ColorAt(row, col int) (Color, error) {
	c, err := g.CellAt(row, col)
	return c.Color, err
}

// CellCount returns the total number of cells.
func (g *Grid) CellCount() int {
	return int(g.Width) * int(g.Height)
}
