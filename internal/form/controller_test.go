package form_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Tiliavir/legacy-echo/internal/form"
	"github.com/Tiliavir/legacy-echo/internal/media"
	"github.com/Tiliavir/legacy-echo/internal/model"
	"github.com/Tiliavir/legacy-echo/internal/schema"
	"github.com/Tiliavir/legacy-echo/internal/storage"
)

var fixed = time.Date(2026, 2, 27, 9, 0, 0, 0, time.UTC)

func setup() (*form.Controller, *storage.Store, *media.Library) {
	store := storage.New()
	lib := media.NewLibrary()
	c := form.NewController(schema.NewRegistry(), store, lib, form.WithClock(func() time.Time { return fixed }))
	return c, store, lib
}

func TestSaveNewEntry(t *testing.T) {
	c, store, _ := setup()
	store.Append(model.Entry{ID: "old", Category: "Movies", Fields: map[string]string{}})

	if err := c.SelectCategory("Books"); err != nil {
		t.Fatal(err)
	}
	c.SetField("title", "Dune")

	e, err := c.Save()
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("Len = %d, want 2", store.Len())
	}
	first := store.All()[0]
	if first.ID != e.ID || first.ID == "" {
		t.Errorf("first entry ID = %q, want saved ID %q", first.ID, e.ID)
	}
	if first.Category != "Books" {
		t.Errorf("Category = %q, want Books", first.Category)
	}
	if first.Value("title") != "Dune" {
		t.Errorf("title = %q, want Dune", first.Value("title"))
	}
	if first.Kind != model.KindText {
		t.Errorf("Kind = %q, want text", first.Kind)
	}
	if !first.CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt = %v, want %v", first.CreatedAt, fixed)
	}

	d := c.Draft()
	if d.Category != "" || len(d.Fields) != 0 || d.EditID != "" {
		t.Errorf("session not cleared after save: %+v", d)
	}
}

func TestSaveWithoutCategory(t *testing.T) {
	c, store, _ := setup()
	c.SetField("title", "Dune")

	_, err := c.Save()
	if !errors.Is(err, form.ErrMissingCategory) {
		t.Fatalf("Save err = %v, want ErrMissingCategory", err)
	}
	var ve form.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("error %T is not a ValidationError", err)
	}
	if store.Len() != 0 {
		t.Errorf("store mutated: Len = %d", store.Len())
	}
	if c.Draft().Fields["title"] != "Dune" {
		t.Error("pending fields lost after failed save")
	}
}

func TestEditReplacesEntry(t *testing.T) {
	c, store, _ := setup()
	_ = c.SelectCategory("Books")
	c.SetField("title", "Dune")
	c.SetField("author", "Herbert")
	saved, _ := c.Save()
	_ = c.SelectCategory("Movies")
	c.SetField("film", "Arrival")
	_, _ = c.Save()

	if err := c.BeginEdit(saved.ID); err != nil {
		t.Fatalf("BeginEdit: %v", err)
	}
	d := c.Draft()
	if d.Category != "Books" || d.Fields["author"] != "Herbert" || d.EditID != saved.ID {
		t.Errorf("draft after BeginEdit = %+v", d)
	}
	if !c.Editing() {
		t.Error("Editing() = false after BeginEdit")
	}

	c.SetField("title", "Dune Messiah")
	updated, err := c.Save()
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if updated.ID != saved.ID {
		t.Errorf("ID changed on edit: %q -> %q", saved.ID, updated.ID)
	}
	if store.Len() != 2 {
		t.Errorf("Len = %d after edit, want 2", store.Len())
	}
	got := store.All()[1]
	if got.ID != saved.ID || got.Value("title") != "Dune Messiah" || got.Value("author") != "Herbert" {
		t.Errorf("entry at original position = %+v", got)
	}
	if c.Editing() {
		t.Error("still editing after save")
	}
}

func TestBeginEditUnknown(t *testing.T) {
	c, _, _ := setup()
	if err := c.BeginEdit("missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("BeginEdit err = %v, want ErrNotFound", err)
	}
}

func TestEditOfRemovedEntry(t *testing.T) {
	c, store, _ := setup()
	_ = c.SelectCategory("Books")
	saved, _ := c.Save()
	if err := c.BeginEdit(saved.ID); err != nil {
		t.Fatal(err)
	}
	_ = store.Remove(saved.ID)

	if _, err := c.Save(); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Save err = %v, want ErrNotFound", err)
	}
}

func TestSelectCategoryResets(t *testing.T) {
	c, _, _ := setup()
	_ = c.SelectCategory("Books")
	c.SetField("title", "Dune")
	c.AttachImage("cover.jpg", []byte{1})
	c.AttachVideo("clip.mp4", []byte{2})

	if err := c.SelectCategory("Music"); err != nil {
		t.Fatal(err)
	}
	d := c.Draft()
	if d.Category != "Music" || len(d.Fields) != 0 || d.ImageRef != "" || d.VideoRef != "" || d.Kind != model.KindText {
		t.Errorf("draft not reset: %+v", d)
	}

	if err := c.SelectCategory("Recipes"); !errors.Is(err, schema.ErrNotFound) {
		t.Errorf("SelectCategory(Recipes) err = %v, want ErrNotFound", err)
	}
	if c.Draft().Category != "" {
		t.Error("unknown category left selected")
	}
}

func TestAttachMedia(t *testing.T) {
	c, store, lib := setup()
	_ = c.SelectCategory("Places")

	img := c.AttachImage("lisbon.jpg", []byte("img"))
	if c.Draft().Kind != model.KindText {
		t.Error("image attachment changed kind")
	}
	vid := c.AttachVideo("tram.mp4", []byte("vid"))
	if c.Draft().Kind != model.KindVideo {
		t.Error("video attachment did not switch to video")
	}

	e, err := c.Save()
	if err != nil {
		t.Fatal(err)
	}
	if e.ImageRef != img || e.VideoRef != vid {
		t.Errorf("refs = %q/%q, want %q/%q", e.ImageRef, e.VideoRef, img, vid)
	}
	if data, err := lib.Open(store.All()[0].VideoRef); err != nil || string(data) != "vid" {
		t.Errorf("Open(video) = %q, %v", data, err)
	}
}

func TestSetKind(t *testing.T) {
	c, _, _ := setup()
	if err := c.SetKind(model.KindVideo); err != nil {
		t.Fatal(err)
	}
	if err := c.SetKind("audio"); err == nil {
		t.Error("SetKind(audio) succeeded")
	}
	if c.Draft().Kind != model.KindVideo {
		t.Errorf("Kind = %q, want video", c.Draft().Kind)
	}
}

func TestCancel(t *testing.T) {
	c, store, _ := setup()
	_ = c.SelectCategory("Books")
	saved, _ := c.Save()

	_ = c.BeginEdit(saved.ID)
	c.SetField("title", "changed")
	c.Cancel()

	if c.Editing() || c.Draft().Category != "" {
		t.Errorf("session not cleared: %+v", c.Draft())
	}
	got, _ := store.Get(saved.ID)
	if got.Value("title") != "" {
		t.Errorf("Cancel mutated store: title = %q", got.Value("title"))
	}
}
