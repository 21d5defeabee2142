package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitCommands_PaintOrder(t *testing.T) {
	l := ComputeLayout(layoutData(2), stubMeasure, 30, 30)
	cmds := EmitCommands(l)

	// logo, title, 5 fields, header band + 2 labels, 2 rows of 4,
	// 3 totals, signature label + line.
	require.Len(t, cmds, 1+1+5+3+2*4+3+1+1)

	ops := make([]Op, len(cmds))
	for i, c := range cmds {
		ops[i] = c.Op
	}

	want := []Op{
		OpImage,
		OpText,                         // title
		OpText, OpText, OpText, OpText, OpText, // fields
		OpRect, OpText, OpText, // header
		OpRect, OpRect, OpText, OpText, // row 1
		OpRect, OpRect, OpText, OpText, // row 2
		OpText, OpText, OpText, // totals
		OpText, // signature label
		OpLine,
	}
	assert.Equal(t, want, ops)
}

func TestEmitCommands_CellBordersBeforeCellText(t *testing.T) {
	l := ComputeLayout(layoutData(1), stubMeasure, 30, 30)
	cmds := EmitCommands(l)

	// Row 1 starts after logo+title+fields+header (10 commands).
	row := cmds[10:14]
	assert.Equal(t, OpRect, row[0].Op)
	assert.Equal(t, OpRect, row[1].Op)
	assert.Equal(t, OpText, row[2].Op)
	assert.Equal(t, OpText, row[3].Op)

	// Description column paints before the price column.
	assert.Less(t, row[0].X, row[1].X)
	assert.Less(t, row[2].X, row[3].X)
	assert.Equal(t, "Item 1", row[2].Text)
}

func TestEmitCommands_HeaderFill(t *testing.T) {
	l := ComputeLayout(layoutData(1), stubMeasure, 30, 30)
	cmds := EmitCommands(l)

	band := cmds[7]
	require.Equal(t, OpRect, band.Op)
	assert.True(t, band.Fill)
	assert.Equal(t, colorHeaderFill, band.FillColor)

	title := cmds[1]
	assert.Equal(t, colorTitle, title.Color)
}
