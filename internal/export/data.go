package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Tiliavir/legacy-echo/internal/model"
	"github.com/Tiliavir/legacy-echo/internal/schema"
	"github.com/Tiliavir/legacy-echo/internal/view"
)

type jsonGroup struct {
	Category string        `json:"category"`
	Entries  []model.Entry `json:"entries"`
}

// JSON writes the grouped view as an indented JSON array.
func JSON(w io.Writer, groups []view.Group) error {
	out := make([]jsonGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, jsonGroup{Category: g.Category, Entries: g.Entries})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	return nil
}

// CSV writes one row per non-empty field value, in schema order.
func CSV(w io.Writer, groups []view.Group, reg *schema.Registry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "category", "kind", "created_at", "field", "label", "value"}); err != nil {
		return err
	}
	for _, g := range groups {
		cat, err := reg.Get(g.Category)
		if err != nil {
			cat = schema.Category{Name: g.Category}
		}
		for _, e := range g.Entries {
			created := e.CreatedAt.Format(time.RFC3339)
			for _, f := range cat.Fields {
				v := e.Value(f.Name)
				if v == "" {
					continue
				}
				if err := cw.Write([]string{e.ID, e.Category, string(e.Kind), created, f.Name, f.Label, v}); err != nil {
					return err
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
