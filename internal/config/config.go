package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/Tiliavir/legacy-echo/internal/export"
)

// Config is the root configuration for lecho, stored in ~/.lecho.yaml.
// Every key can be overridden from the environment, e.g. LECHO_LOG_LEVEL.
type Config struct {
	Export ExportConfig `mapstructure:"export" validate:"required"`
	Log    LogConfig    `mapstructure:"log" validate:"required"`
	Prompt PromptConfig `mapstructure:"prompt"`
}

// ExportConfig controls where and how documents are written.
type ExportConfig struct {
	Dir      string `mapstructure:"dir" validate:"required"`
	Filename string `mapstructure:"filename" validate:"required,excludesall=/\\"`
	Title    string `mapstructure:"title" validate:"required"`
}

// LogConfig sets the diagnostic log level.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn warning error"`
}

// PromptConfig seeds prompt selection. Zero seeds from the clock.
type PromptConfig struct {
	Seed int64 `mapstructure:"seed"`
}

const (
	DefaultFilename = export.DefaultFilename
	DefaultTitle    = export.DefaultTitle
	DefaultLevel    = "info"

	envPrefix = "LECHO"
	fileName  = ".lecho"
)

// configTemplate is the annotated config written on first run.
const configTemplate = `# lecho configuration – ~/.lecho.yaml
#
# All settings are optional; the defaults below are used when a key is
# missing. Any key can be overridden with an environment variable, e.g.
# LECHO_EXPORT_DIR or LECHO_LOG_LEVEL.

export:
  # Directory the exported document is written to.
  dir: "."
  # File name of the exported PDF. Can be overridden with: export --out <path>
  filename: "legacy-echo-entries.pdf"
  # Title line at the top of the first page.
  title: "Legacy Echo Entries"

log:
  # One of: debug, info, warn, error. Overridden by --loglevel.
  level: "info"

prompt:
  # Seed for writing-prompt selection. 0 picks a new seed every session.
  seed: 0
`

var validate = validator.New()

func setDefaults(v *viper.Viper) {
	v.SetDefault("export.dir", ".")
	v.SetDefault("export.filename", DefaultFilename)
	v.SetDefault("export.title", DefaultTitle)
	v.SetDefault("log.level", DefaultLevel)
	v.SetDefault("prompt.seed", 0)
}

// DefaultPath returns ~/.lecho.yaml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, fileName+".yaml"), nil
}

// Load reads the config file at path, or ~/.lecho.yaml when path is empty.
// A missing default file is created from the annotated template; a missing
// explicit file is an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			return Config{}, err
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if !missing || explicit {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}
	return cfg, nil
}

// writeDefault creates the annotated default config file.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
