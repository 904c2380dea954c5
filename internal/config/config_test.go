package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arnodel/jsoncsv/path"
	"github.com/arnodel/jsoncsv/projection"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/spf13/pflag"
)

func parseFlags(t *testing.T, args ...string) (*Flags, []string) {
	t.Helper()
	var flags Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Register(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %s", err)
	}
	return &flags, fs.Args()
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "jsoncsv.yaml")
	if err := os.WriteFile(name, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %s", err)
	}
	return name
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Config
	}{
		{
			name: "defaults",
			want: Config{Header: true, Color: ColorAuto},
		},
		{
			name: "positional paths labelled by index",
			args: []string{"a", "b.c"},
			want: Config{
				Columns: []projection.Column{{Label: "0", Path: "a"}, {Label: "1", Path: "b.c"}},
				Header:  true,
				Color:   ColorAuto,
			},
		},
		{
			name: "labelled columns before positional ones",
			args: []string{"x", "-c", "name=user.name", "--column", "eq=a=b"},
			want: Config{
				Columns: []projection.Column{
					{Label: "name", Path: "user.name"},
					{Label: "eq", Path: "a=b"},
					{Label: "2", Path: "x"},
				},
				Header: true,
				Color:  ColorAuto,
			},
		},
		{
			name: "options",
			args: []string{"--no-head", "-e", "--skip-invalid", "-f", "items", "-f", "items.parts", "--color", "NEVER", "-u"},
			want: Config{
				Flatten:     []string{"items", "items.parts"},
				Header:      false,
				Mode:        projection.Escaped,
				SkipInvalid: true,
				Color:       ColorNever,
				Unbuffered:  true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, args := parseFlags(t, tt.args...)
			cfg, err := flags.Build(args)
			if err != nil {
				t.Fatalf("Build() error: %s", err)
			}
			if diff := cmp.Diff(tt.want, *cfg, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Build() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"bad column path", []string{"a..b"}, path.ErrSyntax},
		{"bad flatten path", []string{"-f", "a[x]"}, path.ErrSyntax},
		{"bad jsonpath", []string{"-c", "q=$[?"}, path.ErrSyntax},
		{"bad color", []string{"--color", "sometimes"}, ErrInvalidColorMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, args := parseFlags(t, tt.args...)
			_, err := flags.Build(args)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Build() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestColumnFlagFormat(t *testing.T) {
	var flags Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	flags.Register(fs)
	err := fs.Parse([]string{"-c", "nolabel"})
	if err == nil || !strings.Contains(err.Error(), ErrInvalidColumnFormat.Error()) {
		t.Errorf("Parse() error = %v, want %q", err, ErrInvalidColumnFormat)
	}
}

func TestColumnFlagString(t *testing.T) {
	c := columnsFlag{{Label: "a", Path: "x"}, {Label: "b", Path: "y.z"}}
	if got, want := c.String(), "a=x,b=y.z"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuildWithFile(t *testing.T) {
	name := writeFile(t, `
header: false
mode: escaped
skip_invalid: true
flatten:
  - orders
columns:
  - label: id
    path: id
  - path: total
`)
	flags, args := parseFlags(t, "--config", name, "-f", "lines", "-c", "sku=sku", "qty")
	cfg, err := flags.Build(args)
	if err != nil {
		t.Fatalf("Build() error: %s", err)
	}
	want := Config{
		Columns: []projection.Column{
			{Label: "id", Path: "id"},
			{Label: "1", Path: "total"},
			{Label: "sku", Path: "sku"},
			{Label: "3", Path: "qty"},
		},
		Flatten:     []string{"orders", "lines"},
		Header:      false,
		Mode:        projection.Escaped,
		SkipInvalid: true,
		Color:       ColorAuto,
	}
	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeFile(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		file, err := DecodeFile(strings.NewReader(""))
		if err != nil {
			t.Fatalf("DecodeFile() error: %s", err)
		}
		if diff := cmp.Diff(&File{}, file); diff != "" {
			t.Errorf("DecodeFile() mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("unknown field", func(t *testing.T) {
		_, err := DecodeFile(strings.NewReader("colums:\n  - path: a\n"))
		if err == nil {
			t.Fatal("DecodeFile() expected error for unknown field")
		}
	})
	t.Run("bad mode", func(t *testing.T) {
		flags, _ := parseFlags(t, "--config", writeFile(t, "mode: quoted\n"))
		if _, err := flags.Build(nil); err == nil {
			t.Fatal("Build() expected error for invalid mode")
		}
	})
	t.Run("missing file", func(t *testing.T) {
		flags, _ := parseFlags(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
		_, err := flags.Build(nil)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Build() error = %v, want %v", err, os.ErrNotExist)
		}
	})
}
