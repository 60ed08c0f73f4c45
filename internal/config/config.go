package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"nestdnd/internal/logging"
	"nestdnd/internal/model"

	"github.com/BurntSushi/toml"
)

const (
	EnvConfig          = "NESTDND_CONFIG"
	EnvItems           = "NESTDND_ITEMS"
	EnvSubItems        = "NESTDND_SUB_ITEMS"
	EnvRestoreOnCancel = "NESTDND_RESTORE_ON_CANCEL"
	EnvGlyphs          = "NESTDND_GLYPHS"
	EnvLogFile         = "NESTDND_LOG_FILE"
	EnvLogLevel        = "NESTDND_LOG_LEVEL"
	EnvFormat          = "NESTDND_FORMAT"
)

type Config struct {
	// Items and SubItems size the synthetic starting hierarchy.
	Items    int
	SubItems int

	// RestoreOnCancel rolls back live cross-group moves when a drag is cancelled.
	RestoreOnCancel bool

	// Glyphs selects the glyph set ("unicode" or "ascii").
	Glyphs string

	LogFile  string
	LogLevel string

	// Format is the default output format for non-interactive commands.
	Format string
}

type fileConfig struct {
	Items           int    `toml:"items"`
	SubItems        int    `toml:"sub_items"`
	RestoreOnCancel bool   `toml:"restore_on_cancel"`
	Glyphs          string `toml:"glyphs"`
	LogFile         string `toml:"log_file"`
	LogLevel        string `toml:"log_level"`
	Format          string `toml:"format"`
}

func Default() Config {
	return Config{
		Items:    model.DefaultItems,
		SubItems: model.DefaultSubItems,
		Glyphs:   "unicode",
		LogLevel: "info",
		Format:   "json",
	}
}

// DefaultPath is ~/.config/nestdnd/config.toml (or the platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "nestdnd", "config.toml"), nil
}

// Load resolves configuration: defaults, then the TOML file, then NESTDND_*
// environment variables. An explicit path must exist; the default path is
// optional.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = strings.TrimSpace(os.Getenv(EnvConfig))
		explicit = path != ""
	}
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		err := loadFile(path, &cfg)
		switch {
		case err == nil:
		case !explicit && errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("items") {
		cfg.Items = raw.Items
	}
	if meta.IsDefined("sub_items") {
		cfg.SubItems = raw.SubItems
	}
	if meta.IsDefined("restore_on_cancel") {
		cfg.RestoreOnCancel = raw.RestoreOnCancel
	}
	if meta.IsDefined("glyphs") {
		cfg.Glyphs = strings.ToLower(strings.TrimSpace(raw.Glyphs))
	}
	if meta.IsDefined("log_file") {
		cfg.LogFile = strings.TrimSpace(raw.LogFile)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("format") {
		cfg.Format = strings.ToLower(strings.TrimSpace(raw.Format))
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvItems)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvItems, err)
		}
		cfg.Items = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvSubItems)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvSubItems, err)
		}
		cfg.SubItems = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvRestoreOnCancel)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvRestoreOnCancel, err)
		}
		cfg.RestoreOnCancel = b
	}
	if v := strings.TrimSpace(os.Getenv(EnvGlyphs)); v != "" {
		cfg.Glyphs = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvFormat)); v != "" {
		cfg.Format = strings.ToLower(v)
	}
	return nil
}

func Validate(cfg Config) error {
	if cfg.Items < 0 || cfg.Items > 1000 {
		return fmt.Errorf("items out of range (0..1000): %d", cfg.Items)
	}
	if cfg.SubItems < 0 || cfg.SubItems > 1000 {
		return fmt.Errorf("sub_items out of range (0..1000): %d", cfg.SubItems)
	}
	switch cfg.Glyphs {
	case "", "unicode", "utf8", "ascii":
	default:
		return fmt.Errorf("unknown glyphs: %q", cfg.Glyphs)
	}
	if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("unknown log level: %q", cfg.LogLevel)
	}
	return nil
}
