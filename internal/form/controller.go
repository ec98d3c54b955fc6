// Package form manages the authoring session: the entry being written or
// edited before it is saved to the store.
package form

import (
	"fmt"
	"time"

	"github.com/Tiliavir/legacy-echo/internal/media"
	"github.com/Tiliavir/legacy-echo/internal/model"
	"github.com/Tiliavir/legacy-echo/internal/schema"
	"github.com/Tiliavir/legacy-echo/internal/storage"
)

// ValidationError rejects a save.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return "validation error: " + e.Reason
}

// ErrMissingCategory is returned by Save when no category is selected.
var ErrMissingCategory = ValidationError{Reason: "please select a category"}

// Draft is a read-only snapshot of the pending entry.
type Draft struct {
	Category string
	Kind     model.Kind
	Fields   map[string]string
	ImageRef string
	VideoRef string
	// EditID is the entry being edited, or "" for a new entry.
	EditID string
}

// Controller holds pending input and turns it into store mutations.
type Controller struct {
	registry *schema.Registry
	store    *storage.Store
	media    *media.Library
	now      func() time.Time

	category string
	kind     model.Kind
	fields   map[string]string
	imageRef string
	videoRef string
	editID   string
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the timestamp source used by Save.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// NewController returns a controller with an empty session.
func NewController(reg *schema.Registry, store *storage.Store, lib *media.Library, opts ...Option) *Controller {
	c := &Controller{
		registry: reg,
		store:    store,
		media:    lib,
		now:      time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	c.reset("")
	return c
}

func (c *Controller) reset(category string) {
	c.category = category
	c.kind = model.KindText
	c.fields = map[string]string{}
	c.imageRef = ""
	c.videoRef = ""
	c.editID = ""
}

// SelectCategory starts a fresh entry of the given category. An empty name
// clears the session.
func (c *Controller) SelectCategory(name string) error {
	c.reset("")
	if name == "" {
		return nil
	}
	if !c.registry.Has(name) {
		return fmt.Errorf("select: %w: %q", schema.ErrNotFound, name)
	}
	c.category = name
	return nil
}

// SetField sets a pending field value.
func (c *Controller) SetField(name, value string) {
	c.fields[name] = value
}

// SetKind switches between text and video authoring.
func (c *Controller) SetKind(k model.Kind) error {
	if !k.Valid() {
		return fmt.Errorf("unknown entry kind %q", k)
	}
	c.kind = k
	return nil
}

// AttachImage stores image bytes and references them from the pending entry.
func (c *Controller) AttachImage(name string, data []byte) string {
	c.imageRef = c.media.Attach(media.Image, name, data)
	return c.imageRef
}

// AttachVideo stores video bytes, references them and switches to video.
func (c *Controller) AttachVideo(name string, data []byte) string {
	c.videoRef = c.media.Attach(media.Video, name, data)
	c.kind = model.KindVideo
	return c.videoRef
}

// BeginEdit loads a stored entry into the session.
func (c *Controller) BeginEdit(id string) error {
	e, err := c.store.Get(id)
	if err != nil {
		return fmt.Errorf("edit: %w", err)
	}
	c.reset(e.Category)
	c.kind = e.Kind
	for k, v := range e.Fields {
		c.fields[k] = v
	}
	c.imageRef = e.ImageRef
	c.videoRef = e.VideoRef
	c.editID = e.ID
	return nil
}

// Save writes the pending entry to the store and clears the session.
func (c *Controller) Save() (model.Entry, error) {
	if c.category == "" {
		return model.Entry{}, ErrMissingCategory
	}
	e := model.Entry{
		ID:        c.editID,
		Category:  c.category,
		Kind:      c.kind,
		Fields:    c.fields,
		ImageRef:  c.imageRef,
		VideoRef:  c.videoRef,
		CreatedAt: c.now(),
	}
	if c.editID != "" {
		if err := c.store.Update(c.editID, e); err != nil {
			return model.Entry{}, err
		}
	} else {
		e.ID = model.NewID()
		c.store.Append(e)
	}
	c.reset("")
	return e, nil
}

// Cancel drops pending input without touching the store.
func (c *Controller) Cancel() {
	c.reset("")
}

// Editing reports whether the session targets an existing entry.
func (c *Controller) Editing() bool {
	return c.editID != ""
}

// Draft returns a snapshot of the pending entry.
func (c *Controller) Draft() Draft {
	fields := make(map[string]string, len(c.fields))
	for k, v := range c.fields {
		fields[k] = v
	}
	return Draft{
		Category: c.category,
		Kind:     c.kind,
		Fields:   fields,
		ImageRef: c.imageRef,
		VideoRef: c.videoRef,
		EditID:   c.editID,
	}
}
