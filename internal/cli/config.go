package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/plotkit/pkg/cache"
	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/io"
	"github.com/matzehuels/plotkit/pkg/render/sink"
	"github.com/matzehuels/plotkit/pkg/server"
)

// Environment variables that override the config file.
const (
	envCache = "PLOTKIT_CACHE"
	envAddr  = "PLOTKIT_ADDR"
)

// Config holds user defaults.
//
//	cache = "redis://localhost:6379/0"
//	formats = ["pdf", "png"]
//	addr = ":8080"
//
//	[style]
//	width_in = 4.0
//	height_in = 3.0
//	margins_in = { left = 0.5, right = 0.1, top = 0.3, bottom = 0.4 }
type Config struct {
	// Cache is "file", "none" or a redis:// or mongodb:// URL.
	Cache   string      `toml:"cache"`
	Formats []string    `toml:"formats"`
	Addr    string      `toml:"addr"`
	Style   StyleConfig `toml:"style"`
}

// StyleConfig sets chart defaults for specs that leave them out.
type StyleConfig struct {
	WidthIn   float64     `toml:"width_in"`
	HeightIn  float64     `toml:"height_in"`
	MarginsIn *io.Margins `toml:"margins_in"`
}

func defaultConfig() Config {
	return Config{
		Cache:   cache.BackendFile,
		Formats: []string{"png"},
		Addr:    server.DefaultAddr,
	}
}

// loadConfig reads path, or the default config file when path is empty.
// A missing default file is not an error; a missing explicit one is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err == nil {
			path = filepath.Join(dir, "config.toml")
		}
	}

	if path != "" {
		if err := readConfig(path, &cfg); err != nil {
			if !explicit && errors.Is(err, errors.ErrCodeFileNotFound) {
				err = nil
			}
			if err != nil {
				return cfg, err
			}
		}
	}

	if v := os.Getenv(envCache); v != "" {
		cfg.Cache = v
	}
	if v := os.Getenv(envAddr); v != "" {
		cfg.Addr = v
	}

	return cfg, cfg.validate()
}

func readConfig(path string, cfg *Config) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
	}
	if err != nil {
		return err
	}
	defer f.Close()

	md, err := toml.NewDecoder(f).Decode(cfg)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidInput, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func (c Config) validate() error {
	if err := sink.ValidateFormats(c.Formats); err != nil {
		return err
	}
	if c.Style.WidthIn < 0 || c.Style.HeightIn < 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "style size must not be negative")
	}
	return nil
}

// apply fills the size and margins of chart specs that do not set them.
// Image figures size themselves from their content and are left alone.
func (s StyleConfig) apply(spec *io.Spec) {
	if spec.Kind == io.KindImage || spec.Kind == io.KindImageGrid {
		return
	}
	if len(spec.SizeIn) == 0 && s.WidthIn > 0 && s.HeightIn > 0 {
		spec.SizeIn = []float64{s.WidthIn, s.HeightIn}
	}
	if spec.MarginsIn == nil && s.MarginsIn != nil {
		m := *s.MarginsIn
		spec.MarginsIn = &m
	}
}
