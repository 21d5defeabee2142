package service

import (
	"context"
	"fmt"

	"github.com/billfold/billfold/internal/domain/invoice"
	domain "github.com/billfold/billfold/internal/domain/pdf"
	"github.com/billfold/billfold/internal/logger"
	"github.com/billfold/billfold/internal/pdf"
)

// InvoiceService defines the invoice build operations exposed to the
// delivery layer.
type InvoiceService interface {
	// GenerateInvoicePDF runs one complete build: derives the invoice
	// number and totals, renders the document and wraps it as a
	// downloadable artifact.
	GenerateInvoicePDF(ctx context.Context, inv *invoice.Invoice) (*invoice.Document, error)
}

type invoiceService struct {
	generator pdf.Generator
	numbers   *invoice.NumberGenerator
	logger    *logger.Logger
}

func NewInvoiceService(generator pdf.Generator, numbers *invoice.NumberGenerator, logger *logger.Logger) InvoiceService {
	return &invoiceService{
		generator: generator,
		numbers:   numbers,
		logger:    logger,
	}
}

// GenerateInvoicePDF implements InvoiceService.
func (s *invoiceService) GenerateInvoicePDF(ctx context.Context, inv *invoice.Invoice) (*invoice.Document, error) {
	number := s.numbers.Next()

	data := &domain.InvoiceData{
		InvoiceNumber: number,
		Client:        inv.Client,
		Date:          inv.Date,
		Items:         inv.Items,
		Totals:        invoice.CalculateTotals(inv.Items),
	}

	raw, err := s.generator.RenderInvoicePDF(ctx, data)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("generated invoice pdf",
		"invoice_number", number,
		"items", len(inv.Items),
		"bytes", len(raw),
	)

	return &invoice.Document{
		Bytes:       raw,
		Filename:    fmt.Sprintf("invoice-%s.pdf", number),
		ContentType: "application/pdf",
	}, nil
}
