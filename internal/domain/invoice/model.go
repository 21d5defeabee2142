package invoice

import "github.com/shopspring/decimal"

// ClientInfo contains the customer identity printed on the invoice.
// All fields are free-form and may be empty; the renderer prints them
// as given.
type ClientInfo struct {
	FirstName string
	LastName  string
	Phone     string
	Address   string
	Postcode  string
	Town      string
}

// LineItem is a single billable row. Items render top to bottom in
// insertion order.
type LineItem struct {
	Description string
	Price       decimal.Decimal
}

// Invoice is the immutable per-build snapshot handed to the pipeline.
// The engine only reads it; the caller retains ownership.
type Invoice struct {
	Client ClientInfo
	Date   string
	Items  []LineItem
}

// Document is the final downloadable artifact produced by a build.
type Document struct {
	Bytes       []byte
	Filename    string
	ContentType string
}
