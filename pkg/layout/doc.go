// Package layout arranges home tiles into blocks, rows and pixel coordinates.
//
// # Overview
//
// Given a tile count, [New] eagerly computes an immutable [Layout]:
//
//  1. Distribution ([DistributeRows]): split ceil(n/12) blocks into rows of
//     near-equal length, roughly 4:3 landscape, leftovers to odd rows first.
//  2. Placement ([BlockAnchor]): anchor every block, shifting even rows right
//     by half a column pitch so rows interlock like bricks.
//  3. Filling ([PlaceTiles]): put up to 12 tiles in each block as three
//     diagonal sub-columns of four, mirrored on odd rows.
//  4. Sizing ([CanvasSize]): the bounding canvas of all blocks.
//
// The stages are exported on their own so they can be tested and reused,
// but callers normally only need [New] and the accessors:
//
//	l, err := layout.New(37)
//	if err != nil {
//	    return err // errors.ErrCodeInvalidArgument for n < 1
//	}
//	fmt.Println(l.Rows())              // [1 2 1]
//	fmt.Println(l.Size())              // 2975x1496
//	fmt.Println(len(l.Coordinates()))  // 37
//
// # Invariants
//
// For every valid tile count the layout guarantees:
//
//   - len(Coordinates()) == TileCount()
//   - BlockCount() == ceil(TileCount() / 12) == sum(Rows())
//   - no two tiles share an anchor
//   - every tile's diamond lies inside Size()
//
// # Determinism
//
// Layouts are a pure function of the tile count and the geometry; no state is
// shared between instances. A Layout is never mutated after New returns, so
// it can be rendered and exported any number of times, from any goroutine.
package layout
