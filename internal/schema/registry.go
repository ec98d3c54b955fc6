// Package schema holds the category templates entries are recorded against.
package schema

import (
	"errors"
	"fmt"
	"strings"
)

// CommentsField is the free-text field every category carries.
const CommentsField = "comments"

// DefaultIcon is assigned to categories added at runtime.
const DefaultIcon = "https://cdn-icons-png.flaticon.com/512/565/565547.png"

var (
	ErrNotFound      = errors.New("category not found")
	ErrAlreadyExists = errors.New("category already exists")
	ErrEmptyName     = errors.New("category name is empty")
)

// Field is one input of a category form.
type Field struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Category is the template for entries of one kind: its fields, writing
// prompts and display icon.
type Category struct {
	Name    string   `json:"name"`
	Icon    string   `json:"icon"`
	Fields  []Field  `json:"fields"`
	Prompts []string `json:"prompts"`
}

// DetailFields returns the fields shown before the comments, in order.
func (c Category) DetailFields() []Field {
	out := make([]Field, 0, len(c.Fields))
	for _, f := range c.Fields {
		if f.Name != CommentsField {
			out = append(out, f)
		}
	}
	return out
}

// CommentsLabel returns the label of the comments field.
func (c Category) CommentsLabel() string {
	for _, f := range c.Fields {
		if f.Name == CommentsField {
			return f.Label
		}
	}
	return "Comments"
}

// HasField reports whether name is one of the category's fields.
func (c Category) HasField(name string) bool {
	for _, f := range c.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

func (c Category) clone() Category {
	c.Fields = append([]Field(nil), c.Fields...)
	c.Prompts = append([]string(nil), c.Prompts...)
	return c
}

// Registry maps category names to their templates. A Registry belongs to one
// journal session; it is not safe for concurrent use.
type Registry struct {
	order   []string
	schemas map[string]Category
}

// NewRegistry returns a registry seeded with the built-in categories.
func NewRegistry() *Registry {
	r := &Registry{schemas: make(map[string]Category)}
	for _, c := range builtins() {
		r.order = append(r.order, c.Name)
		r.schemas[c.Name] = c
	}
	return r
}

// List returns all category names: built-ins first, then custom ones in the
// order they were added.
func (r *Registry) List() []string {
	return append([]string(nil), r.order...)
}

// Has reports whether name is a known category.
func (r *Registry) Has(name string) bool {
	_, ok := r.schemas[name]
	return ok
}

// Get returns the template for name.
func (r *Registry) Get(name string) (Category, error) {
	c, ok := r.schemas[name]
	if !ok {
		return Category{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return c.clone(), nil
}

// Add creates a custom category with the default template. Names are trimmed
// and compared exactly.
func (r *Registry) Add(name string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, ErrEmptyName
	}
	if r.Has(name) {
		return Category{}, fmt.Errorf("%w: %q", ErrAlreadyExists, name)
	}
	c := Category{
		Name: name,
		Icon: DefaultIcon,
		Fields: []Field{
			{Name: "title", Label: "Title"},
			{Name: CommentsField, Label: "Comments"},
		},
		Prompts: []string{"Add your entries here."},
	}
	r.order = append(r.order, name)
	r.schemas[name] = c
	return c.clone(), nil
}
