package pdf

import (
	"fmt"
	"strings"

	pdf "github.com/billfold/billfold/internal/domain/pdf"
)

// MetricsFunc measures the rendered width of text at a point size.
type MetricsFunc func(text string, size float64) float64

// Text is a positioned string; Y is the baseline in user space.
type Text struct {
	Value string
	X, Y  float64
	Size  float64
	Color RGB
}

// Rect is a bordered rectangle; X, Y is the bottom-left corner.
type Rect struct {
	X, Y, W, H float64
	Fill       bool
	FillColor  RGB
}

// ImageBox places the logo; X, Y is the bottom-left corner and W, H the
// scaled extent.
type ImageBox struct {
	X, Y, W, H float64
}

// Line is a straight stroke between two points.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// HeaderRow is the table header: one filled band spanning both columns
// plus the two column labels.
type HeaderRow struct {
	Band       Rect
	DescLabel  Text
	PriceLabel Text
}

// TableRow is one line item: a bordered cell per column and the two
// cell texts.
type TableRow struct {
	DescCell  Rect
	PriceCell Rect
	Desc      Text
	Price     Text
}

// Layout is the complete set of positioned elements for one page, in
// reading order. Every coordinate is in bottom-left-origin user space.
type Layout struct {
	Logo           ImageBox
	Title          Text
	Fields         []Text
	Header         HeaderRow
	Rows           []TableRow
	TotalLines     []Text
	SignatureLabel Text
	SignatureLine  Line
}

// ComputeLayout maps the invoice snapshot to absolute page coordinates.
// A single cursor walks down from the top margin; the table grows by one
// row height per line item and is never paginated, so a long item list
// simply runs off the page.
func ComputeLayout(data *pdf.InvoiceData, measure MetricsFunc, logoW, logoH float64) *Layout {
	l := &Layout{}

	l.Logo = ImageBox{
		X: LogoAnchorX,
		Y: LogoAnchorTop - logoH,
		W: logoW,
		H: logoH,
	}

	y := PageHeight - MarginTop

	title := "Invoice No. " + data.InvoiceNumber
	l.Title = Text{
		Value: title,
		X:     (PageWidth - measure(title, TitleSize)) / 2,
		Y:     y,
		Size:  TitleSize,
		Color: colorTitle,
	}
	y -= TitleGap

	fields := []string{
		"Client: " + strings.TrimSpace(data.Client.FirstName+" "+data.Client.LastName),
		"Phone number: " + data.Client.Phone,
		"Address: " + data.Client.Address,
		strings.TrimSpace(data.Client.Postcode + " " + data.Client.Town),
		"Date: " + data.Date,
	}
	for _, field := range fields {
		l.Fields = append(l.Fields, Text{Value: field, X: MarginLeft, Y: y, Size: FieldSize, Color: colorBlack})
		y -= FieldPitch
	}

	y -= TableGap
	headerTop := y
	l.Header = HeaderRow{
		Band: Rect{
			X: MarginLeft, Y: headerTop - RowHeight,
			W: DescColWidth + PriceColW, H: RowHeight,
			Fill: true, FillColor: colorHeaderFill,
		},
		DescLabel:  Text{Value: "Description", X: MarginLeft + CellInsetX, Y: headerTop - CellBaseline, Size: TableSize, Color: colorBlack},
		PriceLabel: Text{Value: "Price", X: MarginLeft + DescColWidth + CellInsetX, Y: headerTop - CellBaseline, Size: TableSize, Color: colorBlack},
	}

	for i, item := range data.Items {
		top := headerTop - RowHeight*float64(i+1)
		l.Rows = append(l.Rows, TableRow{
			DescCell:  Rect{X: MarginLeft, Y: top - RowHeight, W: DescColWidth, H: RowHeight},
			PriceCell: Rect{X: MarginLeft + DescColWidth, Y: top - RowHeight, W: PriceColW, H: RowHeight},
			Desc:      Text{Value: item.Description, X: MarginLeft + CellInsetX, Y: top - CellBaseline, Size: TableSize, Color: colorBlack},
			Price:     Text{Value: "€" + item.Price.StringFixed(2), X: MarginLeft + DescColWidth + CellInsetX, Y: top - CellBaseline, Size: TableSize, Color: colorBlack},
		})
	}
	y = headerTop - RowHeight*float64(len(data.Items)+1)
	y -= TotalsGap

	totals := []struct {
		value string
		size  float64
	}{
		{"Subtotal: €" + data.Totals.Subtotal.StringFixed(2), TotalsSize},
		{fmt.Sprintf("Tax (20%%): €%s", data.Totals.Tax.StringFixed(2)), TotalsSize},
		{"Total: €" + data.Totals.Total.StringFixed(2), GrandTotalSize},
	}
	for _, line := range totals {
		y -= TotalsPitch
		l.TotalLines = append(l.TotalLines, Text{
			Value: line.value,
			X:     TableRight - measure(line.value, line.size),
			Y:     y,
			Size:  line.size,
			Color: colorBlack,
		})
	}

	y -= SignatureGap
	l.SignatureLabel = Text{Value: "Signature:", X: MarginLeft, Y: y, Size: FieldSize, Color: colorBlack}
	l.SignatureLine = Line{X1: SignatureLineX1, Y1: y - SignatureLineDip, X2: SignatureLineX2, Y2: y - SignatureLineDip}

	return l
}
