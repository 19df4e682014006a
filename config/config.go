package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/andybalholm/cascadia"
	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/npillmayer/incdom"
	"github.com/npillmayer/incdom/preview"
	"github.com/npillmayer/incdom/resource"
)

// ErrUnknownStrategy is returned for an unsupported resource strategy.
var ErrUnknownStrategy = errors.New("unknown resource strategy")

// ErrMissingPrefix is returned if strategy 'served' is configured without
// a prefix.
var ErrMissingPrefix = errors.New("resource strategy 'served' needs a prefix")

// Resource strategies.
const (
	StrategyNone   = "none"
	StrategyFile   = "file"
	StrategyServed = "served"
	StrategyChain  = "chain" // served, falling back to file
)

// Config is the configuration of the incdom command.
type Config struct {
	BasePath      string    `yaml:"base_path"`
	ContainerTag  string    `yaml:"container_tag"`
	Renderer      string    `yaml:"renderer"`
	SkipAttribute string    `yaml:"skip_attribute"`
	ImageSelector string    `yaml:"image_selector"`
	Markdown      Markdown  `yaml:"markdown"`
	Resources     Resources `yaml:"resources"`
}

// Markdown configures markdown conversion.
type Markdown struct {
	RawHTML   bool `yaml:"raw_html"`
	HardWraps bool `yaml:"hard_wraps"`
}

// Resources configures rewriting of image sources.
type Resources struct {
	Strategy        string `yaml:"strategy"`
	RequireExisting bool   `yaml:"require_existing"`
	Prefix          string `yaml:"prefix"`
}

// Default returns the configuration used without a configuration file.
func Default() *Config {
	return &Config{
		ContainerTag:  incdom.DefaultContainerTag,
		Renderer:      incdom.DefaultRenderer,
		SkipAttribute: incdom.DefaultSkipAttribute,
		ImageSelector: incdom.DefaultImageSelector,
		Resources: Resources{
			Strategy:        StrategyFile,
			RequireExisting: true,
		},
	}
}

// Load reads a configuration file. Keys missing in the file keep their
// default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "opening configuration")
	}
	defer f.Close()
	conf, err := Read(f)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "reading configuration %s", path)
	}
	if conf.BasePath != "" && !filepath.IsAbs(conf.BasePath) {
		conf.BasePath = filepath.Join(filepath.Dir(path), conf.BasePath)
	}
	tracer().P("file", path).Debugf("configuration loaded")
	return conf, nil
}

// Read decodes a configuration from r on top of the defaults.
func Read(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	conf := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return conf, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(conf); err != nil {
		return nil, pkgerrors.Wrap(err, "decoding YAML")
	}
	return conf, conf.Validate()
}

// Validate checks the configuration for errors which would otherwise
// surface only while rendering.
func (c *Config) Validate() error {
	if _, err := c.Processor(); err != nil {
		return err
	}
	if c.ImageSelector != "" {
		if _, err := cascadia.Compile(c.ImageSelector); err != nil {
			return pkgerrors.Wrapf(err, "image selector %q", c.ImageSelector)
		}
	}
	return nil
}

// Processor creates the resource processor for the configured strategy.
// It returns nil for strategy 'none'.
func (c *Config) Processor() (incdom.ResourceProcessor, error) {
	res := c.Resources
	switch res.Strategy {
	case StrategyNone:
		return nil, nil
	case "", StrategyFile:
		return resource.FileURL{RequireExisting: res.RequireExisting}, nil
	case StrategyServed:
		if res.Prefix == "" {
			return nil, ErrMissingPrefix
		}
		return resource.Served{Prefix: res.Prefix}, nil
	case StrategyChain:
		if res.Prefix == "" {
			return nil, ErrMissingPrefix
		}
		return resource.Chain(
			resource.Served{Prefix: res.Prefix},
			resource.FileURL{RequireExisting: res.RequireExisting},
		), nil
	}
	return nil, pkgerrors.Wrap(ErrUnknownStrategy, res.Strategy)
}

// Options converts the configuration into builder options.
func (c *Config) Options() ([]incdom.Option, error) {
	p, err := c.Processor()
	if err != nil {
		return nil, err
	}
	opts := []incdom.Option{
		incdom.WithBasePath(c.BasePath),
		incdom.WithContainerTag(c.ContainerTag),
		incdom.WithRenderer(c.Renderer),
		incdom.WithSkipAttribute(c.SkipAttribute),
	}
	if p != nil {
		opts = append(opts, incdom.WithResourceProcessor(p))
	}
	if c.ImageSelector != "" {
		sel, err := cascadia.Compile(c.ImageSelector)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "image selector %q", c.ImageSelector)
		}
		opts = append(opts, incdom.WithImageSelector(sel))
	}
	return opts, nil
}

// Preview creates a markdown renderer for the configuration.
func (c *Config) Preview() (*preview.Renderer, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return preview.New(preview.Config{
		AllowRawHTML: c.Markdown.RawHTML,
		HardWraps:    c.Markdown.HardWraps,
	}, opts...), nil
}
