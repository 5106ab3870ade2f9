// Package config loads tooltip configuration from TOML files.
//
// The file layout mirrors the chart option names:
//
//	tooltip = true
//
//	[tooltipOpts]
//	content = "%s | X: %x | Y: %y"
//	xDateFormat = "%Y-%m-%d"
//	defaultTheme = true
//
//	[tooltipOpts.shifts]
//	x = 10
//	y = 20
//
// Missing keys take their defaults, unknown keys are rejected, and every
// loaded file is validated. Failures are pkg/errors values with code
// INVALID_CONFIG, or FILE_NOT_FOUND when the file does not exist.
package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/creasty/defaults"

	"github.com/matzehuels/hovertip/pkg/errors"
	"github.com/matzehuels/hovertip/pkg/hover"
	"github.com/matzehuels/hovertip/pkg/placement"
	"github.com/matzehuels/hovertip/pkg/tooltip"
)

// Config is the tooltip section of a chart configuration.
type Config struct {
	Tooltip     bool        `toml:"tooltip"`
	TooltipOpts TooltipOpts `toml:"tooltipOpts"`
}

// TooltipOpts holds the tooltip options that can live in a file. Callbacks
// are set in code.
type TooltipOpts struct {
	Content      string `toml:"content" default:"%s | X: %x | Y: %y" validate:"template"`
	XDateFormat  string `toml:"xDateFormat" validate:"datefmt"`
	YDateFormat  string `toml:"yDateFormat" validate:"datefmt"`
	Shifts       Shifts `toml:"shifts"`
	DefaultTheme bool   `toml:"defaultTheme" default:"true"`
}

// Shifts is the pointer-to-tooltip gap.
type Shifts struct {
	X float64 `toml:"x" default:"10" validate:"gte=-10000,lte=10000"`
	Y float64 `toml:"y" default:"20" validate:"gte=-10000,lte=10000"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	if err := defaults.Set(c); err != nil {
		// Tags are static; a failure here is a programming error.
		panic(err)
	}
	return c
}

// Parse decodes TOML data on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	c := Default()
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data)
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// TooltipOptions converts c into plugin options.
func (c *Config) TooltipOptions() tooltip.Options {
	return tooltip.Options{
		Enabled:      c.Tooltip,
		Content:      hover.Literal(c.TooltipOpts.Content),
		XDateFormat:  c.TooltipOpts.XDateFormat,
		YDateFormat:  c.TooltipOpts.YDateFormat,
		Shifts:       placement.Offset{X: c.TooltipOpts.Shifts.X, Y: c.TooltipOpts.Shifts.Y},
		DefaultTheme: c.TooltipOpts.DefaultTheme,
	}
}
