package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// DefaultConfigFile is the project configuration file name looked up by the CLI.
const DefaultConfigFile = "docnav.yaml"

const (
	defaultTitle   = "Documentation"
	defaultDocsDir = "docs"
)

// Config represents the project configuration.
type Config struct {
	Title   string `yaml:"title"`
	DocsDir string `yaml:"docs_dir,omitempty"`
	// Navigation is nil when the project does not customize its navigation.
	Navigation NavRules `yaml:"navigation,omitempty"`

	// BaseDir is the directory holding the configuration file; DocsDir is relative to it.
	BaseDir string `yaml:"-"`
}

// HasNavigation reports whether a rule list is configured. An explicitly
// empty list counts as configured.
func (c *Config) HasNavigation() bool {
	return c.Navigation != nil
}

// DocsPath returns the absolute docs directory.
func (c *Config) DocsPath() string {
	if filepath.IsAbs(c.DocsDir) {
		return c.DocsDir
	}
	return filepath.Join(c.BaseDir, c.DocsDir)
}

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	if err := loadEnvFile(filepath.Dir(configPath)); err != nil {
		slog.Debug("No .env file loaded", logfields.Error(err))
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ferrors.ConfigError("configuration file not found").
				WithContext("file", configPath).
				Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to read config file").
			WithContext("file", configPath).
			Build()
	}

	cfg, err := Parse(data)
	if err != nil {
		if classified, ok := ferrors.AsClassified(err); ok {
			return nil, classified.WithContext("file", configPath)
		}
		return nil, err
	}

	abs, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	cfg.BaseDir = abs
	return cfg, nil
}

// Parse decodes configuration bytes, expanding environment variables first.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		var classified *ferrors.ClassifiedError
		if errors.As(err, &classified) {
			return nil, classified
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to unmarshal config").
			Fatal().
			UserAction().
			Build()
	}

	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Title) == "" {
		cfg.Title = defaultTitle
	}
	if strings.TrimSpace(cfg.DocsDir) == "" {
		cfg.DocsDir = defaultDocsDir
	}
	cfg.DocsDir = filepath.Clean(cfg.DocsDir)
}

// Validate checks settings that decoding alone cannot enforce.
func Validate(cfg *Config) error {
	if cfg.DocsDir == "." || cfg.DocsDir == string(filepath.Separator) {
		return ferrors.ValidationError("docs_dir must name a directory below the project root").
			WithContext("docs_dir", cfg.DocsDir).
			Build()
	}
	return nil
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("file", configPath).
			Build()
	}

	example := Config{
		Title:   "My Project",
		DocsDir: defaultDocsDir,
		Navigation: NavRules{
			FileRule{Path: "docs/getting-started.md"},
			DirRule{Path: "docs/guides", Include: WildCard{}},
			DirRule{Path: "docs/reference", Include: Explicit{Rules: []NavRule{
				FileRule{Path: "docs/reference/cli.md"},
			}}},
		},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write config file").
			WithContext("file", configPath).
			Build()
	}
	return nil
}
