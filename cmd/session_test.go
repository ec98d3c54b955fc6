package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/Tiliavir/legacy-echo/internal/config"
	"github.com/Tiliavir/legacy-echo/internal/journal"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"list", []string{"list"}},
		{"set title \"The Hobbit\"", []string{"set", "title", "The Hobbit"}},
		{"set   author    Tolkien", []string{"set", "author", "Tolkien"}},
		{"filter --text \"#growth\"", []string{"filter", "--text", "#growth"}},
	}

	for _, tt := range tests {
		got, err := splitLine(tt.line)
		if err != nil {
			t.Errorf("splitLine(%q) error: %v", tt.line, err)
			continue
		}
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitLine(%q) = %q; want %q", tt.line, got, tt.want)
		}
	}
}

func newTestShell(t *testing.T) (*shell, *bytes.Buffer) {
	t.Helper()
	log, _ := test.NewNullLogger()
	var out bytes.Buffer
	sh := &shell{
		session: journal.New(journal.Options{Seed: 1, Log: log}),
		cfg: config.Config{Export: config.ExportConfig{
			Dir:      t.TempDir(),
			Filename: "echo.pdf",
			Title:    "My Echo",
		}},
		out: &out,
	}
	return sh, &out
}

func TestLoopScript(t *testing.T) {
	sh, out := newTestShell(t)
	script := `
# a short session
select Books
set title "The Hobbit"
set author Tolkien
save
save
category add Art
bogus
list
export
quit
list
`
	failed := sh.loop(strings.NewReader(script), false)
	if failed != 2 {
		t.Errorf("failed = %d; want 2\n%s", failed, out.String())
	}

	got := out.String()
	for _, want := range []string{
		"New Books entry.",
		"Added Books entry ",
		"Error: validation error: please select a category",
		"Added category \"Art\"",
		"Error: unknown command \"bogus\"",
		"Entries (1)",
		"    Title: The Hobbit",
		"    Author: Tolkien",
		"    Link (optional): -",
		"Exported 1 entries to ",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if n := strings.Count(got, "Entries (1)"); n != 1 {
		t.Errorf("list ran %d times; want 1 (quit must stop the loop)", n)
	}

	if _, err := os.Stat(filepath.Join(sh.cfg.Export.Dir, "echo.pdf")); err != nil {
		t.Errorf("pdf not written: %v", err)
	}
}

func TestLoopEditAndDelete(t *testing.T) {
	sh, out := newTestShell(t)
	sh.loop(strings.NewReader("select Movies\nset film Alien\nsave\n"), false)

	all := sh.session.All()
	if len(all) != 1 {
		t.Fatalf("got %d entries; want 1", len(all))
	}
	id := shortID(all[0].ID)

	out.Reset()
	failed := sh.loop(strings.NewReader("edit "+id+"\nset director Scott\nsave\n"), false)
	if failed != 0 {
		t.Fatalf("edit failed:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Updated Movies entry "+id) {
		t.Errorf("missing update notice:\n%s", out.String())
	}
	if got := sh.session.All()[0].Value("director"); got != "Scott" {
		t.Errorf("director = %q; want Scott", got)
	}

	out.Reset()
	sh.loop(strings.NewReader("delete "+id+"\nlist\n"), false)
	if !strings.Contains(out.String(), "No entries found.") {
		t.Errorf("entry not deleted:\n%s", out.String())
	}
}

func TestFilterCommand(t *testing.T) {
	sh, out := newTestShell(t)
	script := `select Books
set title Dune
save
select Places
set placeName Lisbon
save
filter --category Places
list
filter --category Nowhere
filter --clear
`
	if failed := sh.loop(strings.NewReader(script), false); failed != 1 {
		t.Errorf("failed = %d; want 1\n%s", failed, out.String())
	}
	got := out.String()
	if !strings.Contains(got, "Filter: category=Places text=\"\" (1 entries)") {
		t.Errorf("missing filter notice:\n%s", got)
	}
	if strings.Contains(got, "Title: Dune") {
		t.Errorf("filtered list shows Books entry:\n%s", got)
	}
	if !strings.Contains(got, "Filter: category=All text=\"\" (2 entries)") {
		t.Errorf("clear did not reset filter:\n%s", got)
	}
}

func TestExportData(t *testing.T) {
	sh, out := newTestShell(t)
	sh.loop(strings.NewReader("select Music\nset song Hallelujah\nsave\n"), false)

	out.Reset()
	if failed := sh.loop(strings.NewReader("export --format json\n"), false); failed != 0 {
		t.Fatalf("json export failed:\n%s", out.String())
	}
	if !strings.Contains(out.String(), `"Hallelujah"`) {
		t.Errorf("json output missing value:\n%s", out.String())
	}

	out.Reset()
	if failed := sh.loop(strings.NewReader("export --format xml\n"), false); failed != 1 {
		t.Errorf("unknown format accepted:\n%s", out.String())
	}
}

func TestPrintListEmpty(t *testing.T) {
	sh, out := newTestShell(t)
	printList(out, sh.session)
	if got, want := out.String(), "Entries (0)\nNo entries found.\n"; got != want {
		t.Errorf("printList = %q; want %q", got, want)
	}
}
