package pdf

import (
	"bytes"

	ierr "github.com/billfold/billfold/internal/errors"
	"github.com/jung-kurt/gofpdf"
)

// Serialize allocates the build's single page, replays the primitive
// sequence onto it and produces the final byte stream. Commands arrive
// in bottom-left user-space coordinates and are flipped to the backend's
// top-left system here. Serialization is all or nothing: any backend
// error fails the build with no partial output.
func Serialize(res *Resources, cmds []Command) ([]byte, error) {
	doc := res.doc
	doc.AddPage()

	for _, cmd := range cmds {
		switch cmd.Op {
		case OpImage:
			doc.ImageOptions(logoResourceName,
				cmd.X, PageHeight-(cmd.Y+cmd.H), cmd.W, cmd.H,
				false, gofpdf.ImageOptions{}, 0, "")
		case OpText:
			doc.SetFont(res.font, "", cmd.Size)
			doc.SetTextColor(cmd.Color.R, cmd.Color.G, cmd.Color.B)
			doc.Text(cmd.X, PageHeight-cmd.Y, res.tr(cmd.Text))
		case OpRect:
			style := "D"
			if cmd.Fill {
				doc.SetFillColor(cmd.FillColor.R, cmd.FillColor.G, cmd.FillColor.B)
				style = "FD"
			}
			doc.Rect(cmd.X, PageHeight-(cmd.Y+cmd.H), cmd.W, cmd.H, style)
		case OpLine:
			doc.Line(cmd.X, PageHeight-cmd.Y, cmd.X2, PageHeight-cmd.Y2)
		}
	}

	if doc.Err() {
		return nil, ierr.WithError(doc.Error()).
			WithHint("failed to assemble invoice document").
			Mark(ierr.ErrSerialization)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to write invoice document").
			Mark(ierr.ErrSerialization)
	}

	return buf.Bytes(), nil
}
