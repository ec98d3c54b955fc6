// Package export renders grouped entries into a paginated document.
package export

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/Tiliavir/legacy-echo/internal/model"
	"github.com/Tiliavir/legacy-echo/internal/schema"
	"github.com/Tiliavir/legacy-echo/internal/view"
)

// DefaultFilename is the name the document is saved under.
const DefaultFilename = "legacy-echo-entries.pdf"

// DefaultTitle heads the first page.
const DefaultTitle = "Legacy Echo Entries"

// Canvas receives drawing commands in page coordinates (mm, origin top-left).
// Image failures are reported but never fatal to the document.
type Canvas interface {
	SetFont(size float64)
	SetTextColor(r, g, b int)
	Text(x, y float64, s string)
	Image(data []byte, x, y, w, h float64) error
	AddPage()
	Output(w io.Writer) error
}

// Resolver turns an opaque media reference into bytes.
type Resolver interface {
	Open(ref string) ([]byte, error)
}

// Layout holds the fixed geometry of the document.
type Layout struct {
	Margin      float64
	TitleY      float64
	FirstY      float64
	PageTop     float64
	PageBreak   float64
	LineHeight  float64
	HeadingGap  float64
	EntryGap    float64
	GroupGap    float64
	TitleSize   float64
	HeadingSize float64
	BodySize    float64
	ImageX      float64
	ImageLift   float64
	ImageSize   float64
}

// DefaultLayout matches an A4 page in millimetres.
func DefaultLayout() Layout {
	return Layout{
		Margin:      14,
		TitleY:      22,
		FirstY:      30,
		PageTop:     20,
		PageBreak:   270,
		LineHeight:  7,
		HeadingGap:  10,
		EntryGap:    15,
		GroupGap:    10,
		TitleSize:   22,
		HeadingSize: 18,
		BodySize:    12,
		ImageX:      140,
		ImageLift:   10,
		ImageSize:   30,
	}
}

// Report summarises an export run.
type Report struct {
	Pages          int
	Lines          int
	ImagesEmbedded int
	ImagesFailed   int
}

// Exporter lays out grouped entries on a Canvas.
type Exporter struct {
	Title  string
	Layout Layout
	Log    logrus.FieldLogger
}

// New returns an exporter with the default title and layout.
func New(log logrus.FieldLogger) *Exporter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Exporter{Title: DefaultTitle, Layout: DefaultLayout(), Log: log}
}

type cursor struct {
	c      Canvas
	l      Layout
	y      float64
	report *Report
}

func (cur *cursor) advance(dy float64) {
	cur.y += dy
	if cur.y > cur.l.PageBreak {
		cur.c.AddPage()
		cur.report.Pages++
		cur.y = cur.l.PageTop
	}
}

func (cur *cursor) line(s string) {
	cur.c.Text(cur.l.Margin, cur.y, s)
	cur.report.Lines++
}

// Export draws groups onto c. The canvas must already hold its first page.
// Missing categories fall back to an empty schema; only the fields stored on
// the entry's category template are written.
func (x *Exporter) Export(groups []view.Group, reg *schema.Registry, media Resolver, c Canvas) (Report, error) {
	l := x.Layout
	report := Report{Pages: 1}
	cur := &cursor{c: c, l: l, y: l.TitleY, report: &report}

	c.SetFont(l.TitleSize)
	c.SetTextColor(0, 0, 0)
	cur.line(x.Title)
	cur.y = l.FirstY

	for _, g := range groups {
		cat, err := reg.Get(g.Category)
		if err != nil {
			x.Log.WithField("category", g.Category).Debug("exporting entries of unknown category")
			cat = schema.Category{Name: g.Category}
		}

		c.SetFont(l.HeadingSize)
		c.SetTextColor(0x25, 0x63, 0xeb)
		cur.line(g.Category)
		cur.advance(l.HeadingGap)

		for _, e := range g.Entries {
			c.SetFont(l.BodySize)
			c.SetTextColor(0, 0, 0)
			x.entry(cur, cat, e, media, &report)
			cur.advance(l.EntryGap)
		}
		cur.advance(l.GroupGap)
	}
	return report, nil
}

func (x *Exporter) entry(cur *cursor, cat schema.Category, e model.Entry, media Resolver, report *Report) {
	for _, f := range cat.DetailFields() {
		if v := e.Value(f.Name); v != "" {
			cur.line(fmt.Sprintf("%s: %s", f.Label, v))
			cur.advance(cur.l.LineHeight)
		}
	}
	if v := e.Value(schema.CommentsField); v != "" {
		cur.line(fmt.Sprintf("%s: %s", cat.CommentsLabel(), v))
		cur.advance(cur.l.LineHeight)
	}
	if e.ImageRef == "" {
		return
	}
	if err := x.embed(cur, e.ImageRef, media); err != nil {
		report.ImagesFailed++
		x.Log.WithFields(logrus.Fields{
			"entry":    e.ID,
			"category": e.Category,
		}).WithError(err).Warn("skipping image in export")
		return
	}
	report.ImagesEmbedded++
}

// embed places the thumbnail for ref beside the entry's text.
func (x *Exporter) embed(cur *cursor, ref string, media Resolver) error {
	if media == nil {
		return fmt.Errorf("no media source for %s", ref)
	}
	data, err := media.Open(ref)
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}
	l := cur.l
	if err := cur.c.Image(data, l.ImageX, cur.y-l.ImageLift, l.ImageSize, l.ImageSize); err != nil {
		return fmt.Errorf("placing image: %w", err)
	}
	return nil
}
