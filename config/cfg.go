package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"twc/common"
)

// ConfigTmpl is the default configuration, expanded by gencfg before use.
//
//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	ThemeConfig struct {
		// when false only tokens from sources are available
		Defaults bool     `yaml:"defaults"`
		Sources  []string `yaml:"sources" validate:"dive,required,filepath"`
	}

	CompilerConfig struct {
		Prefix       string           `yaml:"prefix" validate:"omitempty,alphanum"`
		Strict       bool             `yaml:"strict"`
		Important    bool             `yaml:"important"`
		Output       common.OutputFmt `yaml:"output" validate:"gte=0"`
		HintDistance int              `yaml:"hint_distance" validate:"min=0,max=10"`
		Theme        ThemeConfig      `yaml:"theme"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Compiler  CompilerConfig `yaml:"compiler"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// decode superimposes YAML data on cfg. Unknown fields are errors, so typos
// in user configuration do not go unnoticed. Template defaults are checked
// right away, user files only after being merged.
func decode(data []byte, cfg *Config, check bool) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if !check {
		return nil
	}
	if err := gencfg.Sanitize(cfg); err != nil {
		return err
	}
	return gencfg.Validate(cfg)
}

// LoadConfiguration expands embedded template and superimposes configuration
// file at path (if any) on top of it. Relative theme sources listed in the file
// are resolved against the file directory, so configuration works regardless
// of the current directory.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg := &Config{}
	if err := decode(data, cfg, len(path) == 0); err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if len(path) == 0 {
		return cfg, nil
	}

	if data, err = os.ReadFile(path); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	// sources from template must not leak into user list
	cfg.Compiler.Theme.Sources = nil
	if err := decode(data, cfg, true); err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	dir := filepath.Dir(path)
	for i, src := range cfg.Compiler.Theme.Sources {
		if !filepath.IsAbs(src) {
			cfg.Compiler.Theme.Sources[i] = filepath.Join(dir, src)
		}
	}
	return cfg, nil
}

// Prepare returns expanded default configuration.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

// Dump serializes active configuration.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
