package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/arnodel/jsoncsv/projection"
	"github.com/spf13/pflag"
)

var (
	ErrInvalidColumnFormat = errors.New("column must be a single LABEL=PATH argument")
	ErrInvalidColorMode    = errors.New("--color must be one of: auto, always, never")
)

// ColorMode controls colored output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config is the complete configuration of a run.  It is built once by
// Flags.Build and not modified afterwards.
type Config struct {
	Columns     []projection.Column
	Flatten     []string
	Header      bool
	Mode        projection.Mode
	SkipInvalid bool

	// Output options
	Color      ColorMode
	Unbuffered bool
}

// Spec returns the projection described by the config.
func (c *Config) Spec() projection.Spec {
	return projection.Spec{
		Columns: c.Columns,
		Flatten: c.Flatten,
		Mode:    c.Mode,
	}
}

// Validate checks that all paths compile and the options are consistent.
func (c *Config) Validate() error {
	if _, err := projection.Compile(c.Spec()); err != nil {
		return err
	}
	if _, err := parseColorMode(string(c.Color)); err != nil {
		return err
	}
	return nil
}

func parseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("%w, got: %s", ErrInvalidColorMode, s)
	}
}

// Flags holds the command line options before they are merged with the
// config file.
type Flags struct {
	ConfigFile  string
	Columns     columnsFlag
	Flatten     []string
	NoHead      bool
	Escaped     bool
	SkipInvalid bool
	Color       string
	Unbuffered  bool
}

// Register defines the flags in fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVar(&f.ConfigFile, "config", "", "YAML file defining columns, flatten paths and options")
	fs.VarP(&f.Columns, "column", "c", "add a column as LABEL=PATH (repeatable)")
	fs.StringArrayVarP(&f.Flatten, "flatten", "f", nil, "flatten records along the list at PATH (repeatable, applied in order)")
	fs.BoolVar(&f.NoHead, "no-head", false, "do not output the header line")
	fs.BoolVarP(&f.Escaped, "escaped", "e", false, "output cells as JSON text instead of raw values")
	fs.BoolVar(&f.SkipInvalid, "skip-invalid", false, "skip lines which are not valid JSON instead of stopping")
	fs.StringVar(&f.Color, "color", string(ColorAuto), "colorize output: auto, always, never")
	fs.BoolVarP(&f.Unbuffered, "unbuffered", "u", false, "flush output after every line")
}

// Build merges the config file (if any), the flags and the positional
// arguments into a validated Config.  Columns from the file come first,
// then --column ones, then one column per positional PATH argument,
// labelled with its column index.
func (f *Flags) Build(args []string) (*Config, error) {
	cfg := &Config{Header: true}
	if f.ConfigFile != "" {
		file, err := LoadFile(f.ConfigFile)
		if err != nil {
			return nil, err
		}
		if err := file.apply(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", f.ConfigFile, err)
		}
	}

	cfg.Columns = append(cfg.Columns, f.Columns...)
	for _, arg := range args {
		cfg.Columns = append(cfg.Columns, projection.Column{
			Label: strconv.Itoa(len(cfg.Columns)),
			Path:  arg,
		})
	}
	cfg.Flatten = append(cfg.Flatten, f.Flatten...)
	if f.NoHead {
		cfg.Header = false
	}
	if f.Escaped {
		cfg.Mode = projection.Escaped
	}
	cfg.SkipInvalid = cfg.SkipInvalid || f.SkipInvalid
	cfg.Unbuffered = f.Unbuffered

	color, err := parseColorMode(f.Color)
	if err != nil {
		return nil, err
	}
	cfg.Color = color

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// columnsFlag implements pflag.Value for parsing multiple --column flags.
type columnsFlag []projection.Column

var _ pflag.Value = &columnsFlag{}

// String returns a string representation of the columns for pflag.Value.
func (c *columnsFlag) String() string {
	pairs := make([]string, len(*c))
	for i, col := range *c {
		pairs[i] = col.Label + "=" + col.Path
	}
	return strings.Join(pairs, ",")
}

// Set parses and appends a column in LABEL=PATH format.
func (c *columnsFlag) Set(value string) error {
	label, path, ok := strings.Cut(value, "=")
	if !ok {
		return fmt.Errorf("%w, got: %s", ErrInvalidColumnFormat, value)
	}
	*c = append(*c, projection.Column{Label: label, Path: path})
	return nil
}

// Type names the flag value in help output.
func (c *columnsFlag) Type() string {
	return "LABEL=PATH"
}
