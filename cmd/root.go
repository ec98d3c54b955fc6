package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/legacy-echo/internal/config"
	"github.com/Tiliavir/legacy-echo/internal/journal"
	"github.com/Tiliavir/legacy-echo/internal/logging"
)

var (
	cfgFile  string
	logLevel string

	cfg config.Config
	log *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lecho",
	Short: "Legacy Echo: a memory journal for the command line",
	Long: `lecho records the books, movies, music, philosophy and places that shaped
you, then exports them as a PDF document.

Entries live only for the length of a session (lecho shell, or lecho run
<script>); export before you quit. Settings are read from ~/.lecho.yaml.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lecho.yaml)")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "loglevel", "l", "", "Set log level. Available: debug, info, warn, error")

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(categoriesCmd)
}

// setup loads the config and builds the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	level := c.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	l, err := logging.New(level, os.Stderr)
	if err != nil {
		return err
	}
	cfg, log = c, l
	return nil
}

func newSession() *journal.Session {
	return journal.New(journal.Options{
		Seed:  cfg.Prompt.Seed,
		Title: cfg.Export.Title,
		Log:   log,
	})
}
