package geometry

// BlockCapacity is the number of tiles a full block holds: three sub-columns of four.
const BlockCapacity = 12

// Block holds the dimensions of a block of tiles and the pitches between
// neighbouring blocks.
type Block struct {
	Tile Tile

	Width  int
	Height int

	// RowPitch (DY) and ColPitch (DX) are the vertical and horizontal
	// distances between blocks that share a column or a row.
	RowPitch int
	ColPitch int

	HalfRowPitch int
	HalfColPitch int

	Capacity int
}

// NewBlock derives block dimensions from a tile.
func NewBlock(t Tile) Block {
	b := Block{
		Tile:     t,
		Width:    4 * t.Width,
		Height:   4 * t.Height,
		Capacity: BlockCapacity,
	}
	b.RowPitch = b.Height + t.HalfHeight
	b.ColPitch = b.Width + t.HalfWidth
	b.HalfRowPitch = b.RowPitch / 2
	b.HalfColPitch = b.ColPitch / 2
	return b
}

// DefaultBlock returns the block built from [DefaultTile].
func DefaultBlock() Block {
	return NewBlock(DefaultTile())
}

// BlocksFor returns how many blocks are needed to hold n tiles.
func (b Block) BlocksFor(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + b.Capacity - 1) / b.Capacity
}
