package pdf

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/billfold/billfold/internal/config"
	"github.com/billfold/billfold/internal/domain/invoice"
	pdfdata "github.com/billfold/billfold/internal/domain/pdf"
	ierr "github.com/billfold/billfold/internal/errors"
	"github.com/billfold/billfold/internal/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestLogo writes a small opaque PNG to dir and returns its path.
func writeTestLogo(t *testing.T, dir string) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 120, 40))
	for x := 0; x < 120; x++ {
		for y := 0; y < 40; y++ {
			img.Set(x, y, color.RGBA{R: 30, G: 60, B: 180, A: 255})
		}
	}

	path := filepath.Join(dir, "logo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func testGenerator(t *testing.T, logoPath string) Generator {
	t.Helper()
	cfg := config.GetDefaultConfig()
	cfg.Assets.Logo = logoPath
	return NewGenerator(NewEmbedder(cfg, logger.L), logger.L)
}

func renderData(number string, prices ...string) *pdfdata.InvoiceData {
	items := make([]invoice.LineItem, 0, len(prices))
	for i, p := range prices {
		items = append(items, invoice.LineItem{
			Description: "Service " + string(rune('A'+i)),
			Price:       decimal.RequireFromString(p),
		})
	}
	return &pdfdata.InvoiceData{
		InvoiceNumber: number,
		Client:        invoice.ClientInfo{FirstName: "Ada", LastName: "Lovelace", Town: "Paris"},
		Date:          "2026-09-01",
		Items:         items,
		Totals:        invoice.CalculateTotals(items),
	}
}

func TestRenderInvoicePDF(t *testing.T) {
	logo := writeTestLogo(t, t.TempDir())
	gen := testGenerator(t, logo)

	out, err := gen.RenderInvoicePDF(context.Background(), renderData("20260901-0001", "19.99", "5.50", "100.00"))
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "output must start with a PDF header")
	assert.Contains(t, string(out[len(out)-16:]), "%%EOF")
}

func TestRenderInvoicePDF_EmptyItems(t *testing.T) {
	logo := writeTestLogo(t, t.TempDir())
	gen := testGenerator(t, logo)

	out, err := gen.RenderInvoicePDF(context.Background(), renderData("20260901-0002"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestRenderInvoicePDF_MissingLogo(t *testing.T) {
	gen := testGenerator(t, filepath.Join(t.TempDir(), "nope.png"))

	out, err := gen.RenderInvoicePDF(context.Background(), renderData("20260901-0003", "10.00"))
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, ierr.IsResourceUnavailable(err))
}

func TestRenderInvoicePDF_UndecodableLogo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logo.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))

	gen := testGenerator(t, path)

	out, err := gen.RenderInvoicePDF(context.Background(), renderData("20260901-0004", "10.00"))
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, ierr.IsResourceUnavailable(err))
}

// Two overlapping builds must not share any state: each allocates its
// own document and resources and produces an internally consistent
// byte stream.
func TestRenderInvoicePDF_ConcurrentBuilds(t *testing.T) {
	logo := writeTestLogo(t, t.TempDir())
	gen := testGenerator(t, logo)

	inputs := []*pdfdata.InvoiceData{
		renderData("20260901-1111", "19.99", "5.50", "100.00"),
		renderData("20260901-2222", "1.00"),
	}

	outs := make([][]byte, len(inputs))
	errs := make([]error, len(inputs))

	var wg sync.WaitGroup
	for i, data := range inputs {
		wg.Add(1)
		go func(i int, data *pdfdata.InvoiceData) {
			defer wg.Done()
			outs[i], errs[i] = gen.RenderInvoicePDF(context.Background(), data)
		}(i, data)
	}
	wg.Wait()

	for i := range inputs {
		require.NoError(t, errs[i])
		assert.True(t, bytes.HasPrefix(outs[i], []byte("%PDF-")))
	}
	assert.NotEqual(t, outs[0], outs[1])
}
