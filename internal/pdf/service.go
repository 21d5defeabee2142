package pdf

import (
	"context"

	pdf "github.com/billfold/billfold/internal/domain/pdf"
	"github.com/billfold/billfold/internal/logger"
)

// Generator defines the interface for PDF generation operations
type Generator interface {
	RenderInvoicePDF(ctx context.Context, data *pdf.InvoiceData) ([]byte, error)
}

type service struct {
	embedder *Embedder
	logger   *logger.Logger
}

// NewGenerator creates a new PDF generator
func NewGenerator(embedder *Embedder, logger *logger.Logger) Generator {
	return &service{
		embedder: embedder,
		logger:   logger,
	}
}

// RenderInvoicePDF runs one build through the staged pipeline: embed
// resources, lay out coordinates, emit primitives, serialize. Each stage
// consumes the previous stage's output type, so the order cannot be
// subverted. Builds share nothing; concurrent renders each get their own
// document and resources.
func (s *service) RenderInvoicePDF(ctx context.Context, data *pdf.InvoiceData) ([]byte, error) {
	res, err := s.embedder.Embed(ctx)
	if err != nil {
		return nil, err
	}

	layout := ComputeLayout(data, res.Metrics, res.LogoScaledWidth, res.LogoScaledHeight)
	cmds := EmitCommands(layout)

	out, err := Serialize(res, cmds)
	if err != nil {
		return nil, err
	}

	s.logger.Debugw("rendered invoice pdf",
		"invoice_number", data.InvoiceNumber,
		"items", len(data.Items),
		"commands", len(cmds),
		"bytes", len(out),
	)
	return out, nil
}
