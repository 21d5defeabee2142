package pdf

// Page geometry in PDF user-space points, origin bottom-left, y up.
// These are layout constants, not derived from content: the table grows
// downward row by row and is allowed to run past the bottom margin
// without paginating.
const (
	PageWidth  = 600.0
	PageHeight = 800.0

	MarginLeft = 50.0
	MarginTop  = 50.0

	// Logo anchored by its top-left corner, clear of the centered title.
	LogoAnchorX   = 430.0
	LogoAnchorTop = 780.0
	LogoScale     = 0.15

	TitleSize = 20.0
	TitleGap  = 40.0

	FieldSize  = 14.0
	FieldPitch = 20.0

	TableGap     = 20.0
	RowHeight    = 25.0
	DescColWidth = 300.0
	PriceColW    = 100.0
	TableSize    = 12.0
	CellInsetX   = 5.0
	// Distance from a row's top edge down to its text baseline.
	CellBaseline = 17.0

	TotalsGap   = 10.0
	TotalsPitch = 18.0
	TotalsSize  = 12.0
	// The grand total renders one point larger than the other two lines.
	GrandTotalSize = 13.0

	SignatureGap     = 50.0
	SignatureLineX1  = 140.0
	SignatureLineX2  = 340.0
	SignatureLineDip = 3.0
)

// TableRight is the x coordinate of the table's right edge, where the
// totals block right-aligns.
const TableRight = MarginLeft + DescColWidth + PriceColW

// RGB is a paint color with 0-255 components.
type RGB struct {
	R, G, B int
}

var (
	colorBlack      = RGB{0, 0, 0}
	colorTitle      = RGB{0, 0, 204}
	colorHeaderFill = RGB{230, 230, 230}
)
