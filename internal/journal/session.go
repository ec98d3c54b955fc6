// Package journal ties the schema registry, entry store, media library, form
// controller and exporter together into one user session.
package journal

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Tiliavir/legacy-echo/internal/export"
	"github.com/Tiliavir/legacy-echo/internal/form"
	"github.com/Tiliavir/legacy-echo/internal/media"
	"github.com/Tiliavir/legacy-echo/internal/model"
	"github.com/Tiliavir/legacy-echo/internal/schema"
	"github.com/Tiliavir/legacy-echo/internal/storage"
	"github.com/Tiliavir/legacy-echo/internal/view"
)

// Options configures a Session.
type Options struct {
	// Seed drives prompt selection. Zero seeds from the clock.
	Seed int64
	// Title heads exported documents. Empty means export.DefaultTitle.
	Title string
	Now   func() time.Time
	Log   logrus.FieldLogger
}

// Session is the state of one journaling session. Sessions share nothing.
type Session struct {
	registry *schema.Registry
	store    *storage.Store
	media    *media.Library
	form     *form.Controller
	prompter *schema.Prompter
	exporter *export.Exporter
	log      logrus.FieldLogger
	filter   view.Filter
}

// New starts an empty session.
func New(opts Options) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	if opts.Seed == 0 {
		opts.Seed = opts.Now().UnixNano()
	}
	s := &Session{
		registry: schema.NewRegistry(),
		store:    storage.New(),
		media:    media.NewLibrary(),
		prompter: schema.NewPrompter(opts.Seed),
		exporter: export.New(opts.Log),
		log:      opts.Log,
		filter:   view.Filter{Category: view.AllCategories},
	}
	if opts.Title != "" {
		s.exporter.Title = opts.Title
	}
	s.form = form.NewController(s.registry, s.store, s.media, form.WithClock(opts.Now))
	return s
}

// Categories lists all category names.
func (s *Session) Categories() []string { return s.registry.List() }

// Category returns the template for name.
func (s *Session) Category(name string) (schema.Category, error) { return s.registry.Get(name) }

// AddCategory creates a custom category.
func (s *Session) AddCategory(name string) (schema.Category, error) {
	c, err := s.registry.Add(name)
	if err != nil {
		return schema.Category{}, err
	}
	s.log.WithField("category", c.Name).Debug("category added")
	return c, nil
}

// Select starts a new entry in category name.
func (s *Session) Select(name string) error { return s.form.SelectCategory(name) }

// Prompt returns a writing prompt for the selected category, or "" when none
// is selected.
func (s *Session) Prompt() string {
	d := s.form.Draft()
	if d.Category == "" {
		return ""
	}
	c, err := s.registry.Get(d.Category)
	if err != nil {
		return ""
	}
	return s.prompter.Pick(c)
}

// SetField sets a pending field.
func (s *Session) SetField(name, value string) { s.form.SetField(name, value) }

// SetKind switches the pending entry between text and video.
func (s *Session) SetKind(k model.Kind) error { return s.form.SetKind(k) }

// AttachImage attaches image bytes to the pending entry.
func (s *Session) AttachImage(name string, data []byte) string {
	return s.form.AttachImage(name, data)
}

// AttachVideo attaches video bytes to the pending entry.
func (s *Session) AttachVideo(name string, data []byte) string {
	return s.form.AttachVideo(name, data)
}

// Save stores the pending entry.
func (s *Session) Save() (model.Entry, error) {
	editing := s.form.Editing()
	e, err := s.form.Save()
	if err != nil {
		return model.Entry{}, err
	}
	s.log.WithFields(logrus.Fields{"entry": e.ID, "category": e.Category, "update": editing}).Debug("entry saved")
	return e, nil
}

// Edit loads the entry matching id (or a unique prefix of it) into the form.
func (s *Session) Edit(id string) (model.Entry, error) {
	e, err := s.store.Find(id)
	if err != nil {
		return model.Entry{}, err
	}
	if err := s.form.BeginEdit(e.ID); err != nil {
		return model.Entry{}, err
	}
	return e, nil
}

// Delete removes the entry matching id (or a unique prefix of it) and clears
// the form.
func (s *Session) Delete(id string) (model.Entry, error) {
	e, err := s.store.Find(id)
	if err != nil {
		return model.Entry{}, err
	}
	if err := s.store.Remove(e.ID); err != nil {
		return model.Entry{}, err
	}
	s.form.Cancel()
	s.log.WithField("entry", e.ID).Debug("entry deleted")
	return e, nil
}

// Cancel drops the pending entry.
func (s *Session) Cancel() { s.form.Cancel() }

// Draft returns the pending entry.
func (s *Session) Draft() form.Draft { return s.form.Draft() }

// Media returns the session's media library.
func (s *Session) Media() *media.Library { return s.media }

// SetFilter replaces the current filter. The category must be "All", empty
// or a known category.
func (s *Session) SetFilter(f view.Filter) error {
	if f.Category == "" {
		f.Category = view.AllCategories
	}
	if f.Category != view.AllCategories && !s.registry.Has(f.Category) {
		return fmt.Errorf("filter: %w: %q", schema.ErrNotFound, f.Category)
	}
	s.filter = f
	return nil
}

// Filter returns the current filter.
func (s *Session) Filter() view.Filter { return s.filter }

// All returns every stored entry, newest first.
func (s *Session) All() []model.Entry { return s.store.All() }

// Entries returns the filtered view.
func (s *Session) Entries() []model.Entry { return view.Apply(s.store.All(), s.filter) }

// Groups returns the filtered view grouped by category.
func (s *Session) Groups() []view.Group { return view.GroupByCategory(s.Entries()) }

// ExportPDF renders the grouped view as a PDF document.
func (s *Session) ExportPDF(w io.Writer) (export.Report, error) {
	report, err := s.exporter.WritePDF(w, s.Groups(), s.registry, s.media)
	if err != nil {
		return report, err
	}
	s.log.WithFields(logrus.Fields{
		"pages":          report.Pages,
		"lines":          report.Lines,
		"images":         report.ImagesEmbedded,
		"images_skipped": report.ImagesFailed,
	}).Info("pdf export finished")
	return report, nil
}

// ExportJSON renders the grouped view as JSON.
func (s *Session) ExportJSON(w io.Writer) error { return export.JSON(w, s.Groups()) }

// ExportCSV renders the grouped view as CSV.
func (s *Session) ExportCSV(w io.Writer) error { return export.CSV(w, s.Groups(), s.registry) }
