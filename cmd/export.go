package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/legacy-echo/internal/export"
	"github.com/Tiliavir/legacy-echo/internal/view"
)

func (sh *shell) exportCmd() *cobra.Command {
	var (
		format string
		out    string
	)
	c := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered entries (pdf to a file, json/csv to stdout)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "json":
				return sh.writeData(out, sh.session.ExportJSON)
			case "csv":
				return sh.writeData(out, sh.session.ExportCSV)
			case "pdf":
				return sh.writePDF(out)
			default:
				return fmt.Errorf("unknown format %q (want pdf, json or csv)", format)
			}
		},
	}
	c.Flags().StringVar(&format, "format", "pdf", "Output format: pdf, json, csv")
	c.Flags().StringVar(&out, "out", "", "Output path (pdf defaults to export.dir/export.filename)")
	return c
}

func (sh *shell) writePDF(out string) error {
	dir, name := sh.cfg.Export.Dir, sh.cfg.Export.Filename
	if out != "" {
		dir, name = filepath.Split(out)
	}
	var report export.Report
	path, err := export.WriteFile(dir, name, func(w io.Writer) error {
		var err error
		report, err = sh.session.ExportPDF(w)
		return err
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Exported %d entries to %s (%d pages)\n", view.Count(sh.session.Groups()), path, report.Pages)
	if report.ImagesFailed > 0 {
		fmt.Fprintf(sh.out, "  %d image(s) could not be embedded\n", report.ImagesFailed)
	}
	return nil
}

func (sh *shell) writeData(out string, render func(io.Writer) error) error {
	if out == "" {
		return render(sh.out)
	}
	dir, name := filepath.Split(out)
	path, err := export.WriteFile(dir, name, render)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Exported to %s\n", path)
	return nil
}
