package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/arnodel/jsoncsv/projection"
	"github.com/goccy/go-yaml"
)

// File is the content of a YAML config file, e.g.
//
//	header: true
//	mode: escaped
//	flatten:
//	  - orders
//	  - orders.lines
//	columns:
//	  - label: id
//	    path: id
//	  - label: sku
//	    path: sku
//
// Unset fields keep their defaults.  A column without a label is labelled
// with its index.
type File struct {
	Header      *bool        `yaml:"header"`
	Mode        string       `yaml:"mode"`
	SkipInvalid bool         `yaml:"skip_invalid"`
	Flatten     []string     `yaml:"flatten"`
	Columns     []FileColumn `yaml:"columns"`
}

// FileColumn is a column in a config file.
type FileColumn struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

// LoadFile reads and decodes the config file at path.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	defer f.Close()
	file, err := DecodeFile(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// DecodeFile decodes a YAML config.  Unknown fields are rejected.
func DecodeFile(r io.Reader) (*File, error) {
	var file File
	decoder := yaml.NewDecoder(r, yaml.DisallowUnknownField())
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML: %w", err)
	}
	return &file, nil
}

func (f *File) apply(cfg *Config) error {
	if f.Header != nil {
		cfg.Header = *f.Header
	}
	mode, err := projection.ParseMode(f.Mode)
	if err != nil {
		return err
	}
	cfg.Mode = mode
	cfg.SkipInvalid = f.SkipInvalid
	cfg.Flatten = append(cfg.Flatten, f.Flatten...)
	for _, col := range f.Columns {
		label := col.Label
		if label == "" {
			label = strconv.Itoa(len(cfg.Columns))
		}
		cfg.Columns = append(cfg.Columns, projection.Column{Label: label, Path: col.Path})
	}
	return nil
}
