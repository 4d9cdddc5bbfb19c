package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/isotile/pkg/errors"
	"github.com/matzehuels/isotile/pkg/layout"
	"github.com/matzehuels/isotile/pkg/pipeline"
)

// layoutCommand creates the layout command for inspecting an arrangement.
func (c *CLI) layoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout COUNT",
		Short: "Show how COUNT tiles are arranged without writing files",
		Long: `Show how COUNT tiles are arranged.

Prints the number of blocks and rows, the canvas size, and a table with the
number of blocks in each row and the row's horizontal offset. Nothing is
written to disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0])
		},
	}
	return cmd
}

// runLayout computes the layout and prints its summary.
func (c *CLI) runLayout(ctx context.Context, countArg string) error {
	count, err := errors.ParseTileCount(countArg)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(nil, nil, loggerFromContext(ctx))
	l, err := runner.ComputeLayout(ctx, pipeline.Options{
		Count:     count,
		TileWidth: c.Config.Render.TileWidth,
		TileEdge:  c.Config.Render.TileEdge,
	})
	if err != nil {
		return err
	}

	printSuccess("Layout for %d tiles", l.TileCount())
	printKeyValue("Blocks", strconv.Itoa(l.BlockCount()))
	printKeyValue("Rows", strconv.Itoa(l.RowCount()))
	printKeyValue("Canvas", fmt.Sprintf("%d x %d px", l.Size().Width, l.Size().Height))
	printNewline()
	fmt.Fprintln(out, rowTable(l))
	printNewline()
	printNextStep("Write files", fmt.Sprintf("%s render %d", appName, count))
	return nil
}

// rowTable renders one line per row: blocks, tiles and x offset of the first block.
func rowTable(l *layout.Layout) string {
	tiles := make([]int, l.RowCount())
	offsets := make([]int, l.RowCount())
	for _, b := range l.Blocks() {
		tiles[b.Row] += b.Tiles
		if b.Col == 0 {
			offsets[b.Row] = b.Anchor.X
		}
	}

	rows := make([][]string, 0, l.RowCount())
	for i, n := range l.Rows() {
		rows = append(rows, []string{
			strconv.Itoa(i),
			strconv.Itoa(n),
			strconv.Itoa(tiles[i]),
			strconv.Itoa(offsets[i]),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Row", "Blocks", "Tiles", "Offset").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			if col == 0 {
				return cellStyle.Foreground(colorDim)
			}
			return cellStyle.Foreground(colorWhite)
		})

	return t.Render()
}
