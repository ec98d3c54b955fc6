package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the built-in categories, their fields and prompts",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func runCategories(cmd *cobra.Command, args []string) error {
	s := newSession()
	out := cmd.OutOrStdout()
	for _, name := range s.Categories() {
		c, err := s.Category(name)
		if err != nil {
			return err
		}
		printCategory(out, c)
		for _, p := range c.Prompts {
			fmt.Fprintf(out, "             - %s\n", p)
		}
	}
	return nil
}
