package pdf

import "github.com/billfold/billfold/internal/domain/invoice"

// InvoiceData is the fully resolved snapshot handed to the rendering
// engine: model fields plus the derived invoice number and totals. It is
// assembled once per build and never mutated afterwards.
type InvoiceData struct {
	InvoiceNumber string
	Client        invoice.ClientInfo
	Date          string
	Items         []invoice.LineItem
	Totals        invoice.Totals
}
