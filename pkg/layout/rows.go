package layout

import "math"

// landscapeRatio widens the grid for two or more blocks so the picture
// ends up closer to landscape than a plain square root would give.
const landscapeRatio = 4.0 / 3.0

// DistributeRows decides how many blocks go in each row.
//
// The row count is ceil(sqrt(blockCount) * ratio), where ratio is 1 for a
// single block and 4/3 otherwise. Every row starts with
// floor(blockCount / rows) blocks and the remaining blocks are handed out one
// per row in [RemainderOrder]. The result always sums to blockCount and never
// contains an empty row. It returns nil for blockCount < 1.
func DistributeRows(blockCount int) []int {
	if blockCount < 1 {
		return nil
	}

	ratio := 1.0
	if blockCount >= 2 {
		ratio = landscapeRatio
	}
	rows := int(math.Ceil(math.Sqrt(float64(blockCount)) * ratio))

	result := make([]int, rows)
	base := blockCount / rows
	for i := range result {
		result[i] = base
	}

	remainder := blockCount % rows
	for _, row := range RemainderOrder(rows)[:remainder] {
		result[row]++
	}
	return result
}

// RemainderOrder returns the order in which rows receive leftover blocks:
// odd indices ascending, then even indices ascending.
//
// Odd rows are drawn shifted half a column pitch to the left of even rows,
// so filling them first keeps the silhouette balanced. [BlockAnchor] depends
// on this pairing.
func RemainderOrder(rows int) []int {
	order := make([]int, 0, rows)
	for i := 1; i < rows; i += 2 {
		order = append(order, i)
	}
	for i := 0; i < rows; i += 2 {
		order = append(order, i)
	}
	return order
}
