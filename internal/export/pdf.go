package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-pdf/fpdf"

	"github.com/Tiliavir/legacy-echo/internal/schema"
	"github.com/Tiliavir/legacy-echo/internal/view"
)

var errUnsupportedImage = errors.New("unsupported image format")

// PDF is a Canvas backed by fpdf: A4 portrait, millimetres, Helvetica.
type PDF struct {
	doc    *fpdf.Fpdf
	tr     func(string) string
	images int
}

// NewPDF returns a PDF canvas holding one empty page.
func NewPDF(title string) *PDF {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(title, true)
	doc.SetCreator("lecho", true)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	return &PDF{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}
}

func (p *PDF) SetFont(size float64) {
	p.doc.SetFontSize(size)
}

func (p *PDF) SetTextColor(r, g, b int) {
	p.doc.SetTextColor(r, g, b)
}

func (p *PDF) Text(x, y float64, s string) {
	p.doc.Text(x, y, p.tr(s))
}

// Image places data at the given box. On failure the document's error state
// is cleared so later drawing still lands.
func (p *PDF) Image(data []byte, x, y, w, h float64) error {
	typ, err := imageType(data)
	if err != nil {
		return err
	}
	p.images++
	name := fmt.Sprintf("img%d", p.images)
	opts := fpdf.ImageOptions{ImageType: typ}
	p.doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if p.doc.Err() {
		err := p.doc.Error()
		p.doc.ClearError()
		return err
	}
	p.doc.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	if p.doc.Err() {
		err := p.doc.Error()
		p.doc.ClearError()
		return err
	}
	return nil
}

func (p *PDF) AddPage() {
	p.doc.AddPage()
}

// Output writes the finished document.
func (p *PDF) Output(w io.Writer) error {
	if err := p.doc.Output(w); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	return nil
}

func imageType(data []byte) (string, error) {
	switch http.DetectContentType(data) {
	case "image/jpeg":
		return "JPG", nil
	case "image/png":
		return "PNG", nil
	case "image/gif":
		return "GIF", nil
	default:
		return "", errUnsupportedImage
	}
}

// WritePDF exports groups as a PDF document to w.
func (x *Exporter) WritePDF(w io.Writer, groups []view.Group, reg *schema.Registry, media Resolver) (Report, error) {
	c := NewPDF(x.Title)
	report, err := x.Export(groups, reg, media, c)
	if err != nil {
		return report, err
	}
	return report, c.Output(w)
}
