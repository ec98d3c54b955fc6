package cmd

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/legacy-echo/internal/config"
	"github.com/Tiliavir/legacy-echo/internal/journal"
	"github.com/Tiliavir/legacy-echo/internal/model"
	"github.com/Tiliavir/legacy-echo/internal/view"
)

// shell runs session commands against one journal session.
type shell struct {
	session *journal.Session
	cfg     config.Config
	out     io.Writer
}

// splitLine breaks a command line into words. Double quotes group words.
func splitLine(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = ' '
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	rec, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot parse %q: %w", line, err)
	}
	words := rec[:0]
	for _, w := range rec {
		if w != "" {
			words = append(words, w)
		}
	}
	return words, nil
}

// exec runs one command line. The command tree is rebuilt for every line so
// flag values never carry over.
func (sh *shell) exec(words []string) error {
	root := sh.commands()
	root.SetArgs(words)
	return root.Execute()
}

func (sh *shell) commands() *cobra.Command {
	root := &cobra.Command{
		Use:           "lecho>",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetOut(sh.out)
	root.SetErr(sh.out)

	root.AddCommand(
		sh.categoriesCmd(),
		sh.categoryCmd(),
		sh.selectCmd(),
		sh.promptCmd(),
		sh.setCmd(),
		sh.kindCmd(),
		sh.mediaCmd("image"),
		sh.mediaCmd("video"),
		sh.showCmd(),
		sh.saveCmd(),
		sh.cancelCmd(),
		sh.editCmd(),
		sh.deleteCmd(),
		sh.filterCmd(),
		sh.listCmd(),
		sh.exportCmd(),
	)
	return root
}

func (sh *shell) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories and their fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range sh.session.Categories() {
				c, err := sh.session.Category(name)
				if err != nil {
					return err
				}
				printCategory(sh.out, c)
			}
			return nil
		},
	}
}

func (sh *shell) categoryCmd() *cobra.Command {
	category := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}
	category.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom category with a title and comments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := sh.session.AddCategory(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(sh.out, "Added category %q\n", c.Name)
			return nil
		},
	})
	return category
}

func (sh *shell) selectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <category>",
		Short: "Start a new entry in a category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			if err := sh.session.Select(name); err != nil {
				return err
			}
			c, err := sh.session.Category(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(sh.out, "New %s entry.\n", c.Name)
			fmt.Fprintf(sh.out, "Prompt: %s\n", sh.session.Prompt())
			fmt.Fprint(sh.out, "Fields:")
			for _, f := range c.Fields {
				fmt.Fprintf(sh.out, " %s", f.Name)
			}
			fmt.Fprintln(sh.out)
			return nil
		},
	}
}

func (sh *shell) promptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Show a writing prompt for the selected category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := sh.session.Prompt()
			if p == "" {
				return errors.New("no category selected")
			}
			fmt.Fprintf(sh.out, "Prompt: %s\n", p)
			return nil
		},
	}
}

func (sh *shell) setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <field> <value...>",
		Short: "Set a field of the pending entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh.session.SetField(args[0], strings.Join(args[1:], " "))
			return nil
		},
	}
}

func (sh *shell) kindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kind <text|video>",
		Short: "Switch the pending entry between text and video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return sh.session.SetKind(model.Kind(strings.ToLower(args[0])))
		},
	}
}

func (sh *shell) mediaCmd(kind string) *cobra.Command {
	return &cobra.Command{
		Use:   kind + " <file>",
		Short: "Attach " + kind + " file to the pending entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", kind, err)
			}
			name := filepath.Base(args[0])
			if kind == "video" {
				sh.session.AttachVideo(name, data)
			} else {
				sh.session.AttachImage(name, data)
			}
			fmt.Fprintf(sh.out, "Attached %s %s (%d bytes)\n", kind, name, len(data))
			return nil
		},
	}
}

func (sh *shell) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the pending entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := sh.session.Draft()
			if d.Category == "" {
				fmt.Fprintln(sh.out, "No category selected.")
				return nil
			}
			c, err := sh.session.Category(d.Category)
			if err != nil {
				return err
			}
			mode := "New"
			if d.EditID != "" {
				mode = "Editing " + shortID(d.EditID)
			}
			fmt.Fprintf(sh.out, "%s %s entry (%s)\n", mode, d.Category, d.Kind)
			printFields(sh.out, c, d.Fields)
			printMedia(sh.out, sh.session, d.ImageRef, d.VideoRef, d.Kind)
			return nil
		},
	}
}

func (sh *shell) saveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save the pending entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			editing := sh.session.Draft().EditID != ""
			e, err := sh.session.Save()
			if err != nil {
				return err
			}
			verb := "Added"
			if editing {
				verb = "Updated"
			}
			fmt.Fprintf(sh.out, "%s %s entry %s\n", verb, e.Category, shortID(e.ID))
			return nil
		},
	}
}

func (sh *shell) cancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel",
		Short: "Discard the pending entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh.session.Cancel()
			return nil
		},
	}
}

func (sh *shell) editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id>",
		Short: "Load an entry into the form for editing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := sh.session.Edit(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(sh.out, "Editing %s entry %s\n", e.Category, shortID(e.ID))
			return nil
		},
	}
}

func (sh *shell) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := sh.session.Delete(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(sh.out, "Deleted %s entry %s\n", e.Category, shortID(e.ID))
			return nil
		},
	}
}

func (sh *shell) filterCmd() *cobra.Command {
	var (
		category string
		text     string
		clear    bool
	)
	c := &cobra.Command{
		Use:   "filter",
		Short: "Narrow the entry list by category and text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := sh.session.Filter()
			if clear {
				f = view.Filter{}
			}
			if cmd.Flags().Changed("category") {
				f.Category = category
			}
			if cmd.Flags().Changed("text") {
				f.Text = text
			}
			if err := sh.session.SetFilter(f); err != nil {
				return err
			}
			f = sh.session.Filter()
			fmt.Fprintf(sh.out, "Filter: category=%s text=%q (%d entries)\n", f.Category, f.Text, len(sh.session.Entries()))
			return nil
		},
	}
	c.Flags().StringVar(&category, "category", "", `Category to show, or "All"`)
	c.Flags().StringVar(&text, "text", "", "Text or hashtag to match in any field")
	c.Flags().BoolVar(&clear, "clear", false, "Reset the filter")
	return c
}

func (sh *shell) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List entries matching the filter, grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printList(sh.out, sh.session)
			return nil
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
