// Package media keeps uploaded image and video bytes for the lifetime of a
// session and hands out opaque references to them.
package media

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const refPrefix = "media:"

var ErrUnknownRef = errors.New("unknown media reference")

// Kind tells images and videos apart.
type Kind string

const (
	Image Kind = "image"
	Video Kind = "video"
)

// Item is one attached file.
type Item struct {
	Kind Kind
	Name string
	Data []byte
}

// Library stores attached media in memory.
type Library struct {
	items map[string]Item
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{items: make(map[string]Item)}
}

// Attach copies data into the library and returns its reference.
func (l *Library) Attach(kind Kind, name string, data []byte) string {
	ref := refPrefix + uuid.NewString()
	l.items[ref] = Item{Kind: kind, Name: name, Data: append([]byte(nil), data...)}
	return ref
}

// Lookup returns the item behind ref.
func (l *Library) Lookup(ref string) (Item, error) {
	it, ok := l.items[ref]
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrUnknownRef, ref)
	}
	return it, nil
}

// Open returns the bytes behind ref.
func (l *Library) Open(ref string) ([]byte, error) {
	it, err := l.Lookup(ref)
	if err != nil {
		return nil, err
	}
	return it.Data, nil
}

// IsRef reports whether s looks like a reference issued by a Library.
func IsRef(s string) bool {
	return strings.HasPrefix(s, refPrefix)
}
