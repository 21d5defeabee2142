package pdf

// Op identifies a primitive drawing operation.
type Op int

const (
	OpImage Op = iota
	OpText
	OpRect
	OpLine
)

// Command is one primitive drawing operation in paint order. For OpText
// Y is the baseline; for OpRect and OpImage X, Y is the bottom-left
// corner; OpLine strokes from (X, Y) to (X2, Y2).
type Command struct {
	Op         Op
	Text       string
	X, Y       float64
	X2, Y2     float64
	W, H       float64
	Size       float64
	Fill       bool
	FillColor  RGB
	Color      RGB
}

// EmitCommands flattens a layout into the ordered primitive sequence.
// Paint order is draw order and later primitives may overlap earlier
// ones, so the sequence must follow the layout's top-to-bottom, per-row
// left-to-right order: cell borders before cell text, description
// column before price column.
func EmitCommands(l *Layout) []Command {
	cmds := make([]Command, 0, 8+6*len(l.Rows)+len(l.TotalLines))

	cmds = append(cmds, Command{Op: OpImage, X: l.Logo.X, Y: l.Logo.Y, W: l.Logo.W, H: l.Logo.H})
	cmds = append(cmds, textCmd(l.Title))
	for _, field := range l.Fields {
		cmds = append(cmds, textCmd(field))
	}

	cmds = append(cmds, rectCmd(l.Header.Band))
	cmds = append(cmds, textCmd(l.Header.DescLabel), textCmd(l.Header.PriceLabel))

	for _, row := range l.Rows {
		cmds = append(cmds,
			rectCmd(row.DescCell),
			rectCmd(row.PriceCell),
			textCmd(row.Desc),
			textCmd(row.Price),
		)
	}

	for _, line := range l.TotalLines {
		cmds = append(cmds, textCmd(line))
	}

	cmds = append(cmds, textCmd(l.SignatureLabel))
	cmds = append(cmds, Command{
		Op: OpLine,
		X:  l.SignatureLine.X1, Y: l.SignatureLine.Y1,
		X2: l.SignatureLine.X2, Y2: l.SignatureLine.Y2,
	})

	return cmds
}

func textCmd(t Text) Command {
	return Command{Op: OpText, Text: t.Value, X: t.X, Y: t.Y, Size: t.Size, Color: t.Color}
}

func rectCmd(r Rect) Command {
	return Command{Op: OpRect, X: r.X, Y: r.Y, W: r.W, H: r.H, Fill: r.Fill, FillColor: r.FillColor}
}
