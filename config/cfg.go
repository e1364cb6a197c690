package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"styl/css"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	// ViewportConfig is the default media context used when a resolution
	// request does not carry its own viewport.
	ViewportConfig struct {
		Width       float64 `yaml:"width" validate:"gte=0"`
		Height      float64 `yaml:"height" validate:"gte=0"`
		Resolution  float64 `yaml:"resolution" validate:"gte=0"`
		Orientation string  `yaml:"orientation,omitempty" validate:"omitempty,oneof=portrait landscape"`
		ColorScheme string  `yaml:"color_scheme,omitempty" validate:"omitempty,oneof=light dark"`
	}

	EngineConfig struct {
		StylesheetPath string         `yaml:"stylesheet_path,omitempty" validate:"omitempty,filepath"`
		DashPattern    []float64      `yaml:"dash_pattern" validate:"min=1,dive,gt=0"`
		Viewport       ViewportConfig `yaml:"viewport"`
	}

	Config struct {
		Version int           `yaml:"version" validate:"eq=1"`
		Engine  EngineConfig  `yaml:"engine"`
		Logging LoggingConfig `yaml:"logging"`
	}
)

// MediaContext converts the configured viewport into the resolver's media
// context.
func (v ViewportConfig) MediaContext() *css.MediaContext {
	return &css.MediaContext{
		Width:       v.Width,
		Height:      v.Height,
		Resolution:  v.Resolution,
		Orientation: v.Orientation,
		ColorScheme: v.ColorScheme,
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
