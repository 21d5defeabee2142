package pdf

import (
	"context"
	"os"

	"github.com/billfold/billfold/internal/config"
	ierr "github.com/billfold/billfold/internal/errors"
	"github.com/billfold/billfold/internal/logger"
	"github.com/jung-kurt/gofpdf"
)

const logoResourceName = "logo"

// Resources holds everything the layout and serialization stages need
// from the embedding stage: the per-build document with the logo and
// font registered, glyph metrics for that font, and the logo's natural
// and scaled extents. A Resources value belongs to exactly one build and
// is discarded after serialization.
type Resources struct {
	doc  *gofpdf.Fpdf
	tr   func(string) string
	font string

	LogoWidth        float64
	LogoHeight       float64
	LogoScaledWidth  float64
	LogoScaledHeight float64
}

// Metrics returns the rendered width of text at the given point size
// using the embedded font's glyph metrics. Centered and right-aligned
// positions depend on it, so substituting the font shifts those
// positions.
func (r *Resources) Metrics(text string, size float64) float64 {
	r.doc.SetFontSize(size)
	return r.doc.GetStringWidth(r.tr(text))
}

// Embedder loads the logo raster and the text font into a fresh
// document's resource space, once per build.
type Embedder struct {
	logoPath string
	font     string
	logger   *logger.Logger
}

func NewEmbedder(cfg *config.Configuration, logger *logger.Logger) *Embedder {
	return &Embedder{
		logoPath: cfg.Assets.Logo,
		font:     cfg.PDF.Font,
		logger:   logger,
	}
}

// Embed creates the build's document and registers the logo image and
// the text font. Any failure here aborts the whole build; no partial
// document is ever produced.
func (e *Embedder) Embed(ctx context.Context) (*Resources, error) {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: PageWidth, Ht: PageHeight},
	})
	// Rows past the bottom margin overflow silently instead of flowing
	// to a second page.
	doc.SetAutoPageBreak(false, 0)

	f, err := os.Open(e.logoPath)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("failed to load logo image from %s", e.logoPath).
			Mark(ierr.ErrResourceUnavailable)
	}
	defer f.Close()

	info := doc.RegisterImageOptionsReader(logoResourceName, gofpdf.ImageOptions{ImageType: "png"}, f)
	if doc.Err() {
		return nil, ierr.WithError(doc.Error()).
			WithHint("failed to decode logo image").
			Mark(ierr.ErrResourceUnavailable)
	}

	doc.SetFont(e.font, "", FieldSize)
	if doc.Err() {
		return nil, ierr.WithError(doc.Error()).
			WithHintf("failed to embed font %s", e.font).
			Mark(ierr.ErrResourceUnavailable)
	}

	w, h := info.Extent()
	e.logger.Debugw("embedded document resources",
		"logo_path", e.logoPath,
		"logo_width", w,
		"logo_height", h,
		"font", e.font,
	)

	return &Resources{
		doc:              doc,
		tr:               doc.UnicodeTranslatorFromDescriptor(""),
		font:             e.font,
		LogoWidth:        w,
		LogoHeight:       h,
		LogoScaledWidth:  w * LogoScale,
		LogoScaledHeight: h * LogoScale,
	}, nil
}
