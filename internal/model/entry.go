package model

import (
	"time"

	"github.com/google/uuid"
)

// Kind is the authoring mode of an entry.
type Kind string

const (
	KindText  Kind = "text"
	KindVideo Kind = "video"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindText || k == KindVideo
}

// Entry represents a single recorded memory.
type Entry struct {
	ID        string            `json:"id"`
	Category  string            `json:"category"`
	Kind      Kind              `json:"kind"`
	Fields    map[string]string `json:"fields"`
	ImageRef  string            `json:"image_ref,omitempty"`
	VideoRef  string            `json:"video_ref,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Value returns the stored value of a field, or "" when unset.
func (e Entry) Value(name string) string {
	return e.Fields[name]
}

// Clone returns a copy of e that shares no maps with it.
func (e Entry) Clone() Entry {
	c := e
	c.Fields = make(map[string]string, len(e.Fields))
	for k, v := range e.Fields {
		c.Fields[k] = v
	}
	return c
}

// NewID returns a fresh, stable entry identifier.
func NewID() string {
	return uuid.NewString()
}
