package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/Tiliavir/legacy-echo/internal/journal"
	"github.com/Tiliavir/legacy-echo/internal/media"
	"github.com/Tiliavir/legacy-echo/internal/model"
	"github.com/Tiliavir/legacy-echo/internal/schema"
	"github.com/Tiliavir/legacy-echo/internal/view"
)

// printList prints the filtered entries grouped by category.
func printList(out io.Writer, s *journal.Session) {
	groups := s.Groups()
	fmt.Fprintf(out, "Entries (%d)\n", view.Count(groups))
	if len(groups) == 0 {
		fmt.Fprintln(out, "No entries found.")
		return
	}

	for _, g := range groups {
		c, err := s.Category(g.Category)
		if err != nil {
			c = schema.Category{Name: g.Category}
		}
		fmt.Fprintln(out, g.Category)
		for _, e := range g.Entries {
			fmt.Fprintf(out, "  %s  %s  %s\n", shortID(e.ID), e.CreatedAt.Format("2006-01-02 15:04"), e.Kind)
			printFields(out, c, e.Fields)
			printMedia(out, s, e.ImageRef, e.VideoRef, e.Kind)
		}
	}
}

// printFields prints every detail field (empty ones as "-") followed by the
// comments, if any.
func printFields(out io.Writer, c schema.Category, values map[string]string) {
	for _, f := range c.DetailFields() {
		v := values[f.Name]
		if v == "" {
			v = "-"
		}
		fmt.Fprintf(out, "    %s: %s\n", f.Label, v)
	}
	if v := values[schema.CommentsField]; v != "" {
		fmt.Fprintf(out, "    %s: %s\n", c.CommentsLabel(), v)
	}
}

func printMedia(out io.Writer, s *journal.Session, imageRef, videoRef string, kind model.Kind) {
	if imageRef != "" {
		fmt.Fprintf(out, "    Image: %s\n", mediaName(s, imageRef))
	}
	if kind == model.KindVideo && videoRef != "" {
		fmt.Fprintf(out, "    Video: %s\n", mediaName(s, videoRef))
	}
}

func mediaName(s *journal.Session, ref string) string {
	if !media.IsRef(ref) {
		return ref
	}
	it, err := s.Media().Lookup(ref)
	if err != nil {
		return ref
	}
	return it.Name
}

func printCategory(out io.Writer, c schema.Category) {
	names := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		names[i] = f.Name
	}
	fmt.Fprintf(out, "%-12s %s\n", c.Name, strings.Join(names, ", "))
}
