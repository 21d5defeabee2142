package dto

import (
	"strings"

	"github.com/billfold/billfold/internal/domain/invoice"
	ierr "github.com/billfold/billfold/internal/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one billable row in the request payload. Price
// accepts a JSON number or numeric string; anything non-numeric fails
// binding.
type LineItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price"`
}

// GenerateInvoiceRequest carries everything needed for one build.
// Client fields may be empty; they print as given.
type GenerateInvoiceRequest struct {
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Phone     string            `json:"phone"`
	Address   string            `json:"address"`
	Postcode  string            `json:"postcode"`
	Town      string            `json:"town"`
	Date      string            `json:"date"`
	Items     []LineItemRequest `json:"items"`
}

func (r *GenerateInvoiceRequest) Validate() error {
	for i, item := range r.Items {
		if strings.TrimSpace(item.Description) == "" {
			return ierr.NewError("line item description is required").
				WithHintf("Item %d has no description", i+1).
				Mark(ierr.ErrValidation)
		}
		if item.Price.IsNegative() {
			return ierr.NewError("line item price must not be negative").
				WithHintf("Item %d has a negative price", i+1).
				WithReportableDetails(map[string]any{"price": item.Price.String()}).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

// ToInvoice maps the request to the immutable domain snapshot.
func (r *GenerateInvoiceRequest) ToInvoice() *invoice.Invoice {
	return &invoice.Invoice{
		Client: invoice.ClientInfo{
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Phone:     r.Phone,
			Address:   r.Address,
			Postcode:  r.Postcode,
			Town:      r.Town,
		},
		Date: r.Date,
		Items: lo.Map(r.Items, func(item LineItemRequest, _ int) invoice.LineItem {
			return invoice.LineItem{
				Description: item.Description,
				Price:       item.Price,
			}
		}),
	}
}
