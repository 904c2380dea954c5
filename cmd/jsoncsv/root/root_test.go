package root

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, input string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd(Streams{In: strings.NewReader(input), Out: &out, Err: &errOut})
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return -1
}

func TestRoot(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		input    string
		expected string
	}{
		{
			name:     "positional paths",
			args:     []string{"a", "b.c"},
			input:    `{"a":1,"b":{"c":"x"}}`,
			expected: "0,1\n1,x\n",
		},
		{
			name:     "labelled columns",
			args:     []string{"-c", "A=a", "-c", "C=b.c"},
			input:    `{"a":1,"b":{"c":"x"}}`,
			expected: "A,C\n1,x\n",
		},
		{
			name:     "flatten without header",
			args:     []string{"--no-head", "-f", "items", "-c", "V=v"},
			input:    `{"items":[{"v":1},{"v":2}]}`,
			expected: "1\n2\n",
		},
		{
			name:     "escaped",
			args:     []string{"--no-head", "-e", "a", "z"},
			input:    `{"a":"x"}`,
			expected: "\"x\",null\n",
		},
		{
			name:     "containers raw",
			args:     []string{"--no-head", "o", "l"},
			input:    `{"o":{"k":1},"l":[1,2]}`,
			expected: "[object_json],[list_json]\n",
		},
		{
			name:     "jsonpath column",
			args:     []string{"--no-head", "$.items[1].v"},
			input:    `{"items":[{"v":1},{"v":2}]}`,
			expected: "2\n",
		},
		{
			name:     "header only",
			args:     []string{"a"},
			input:    "",
			expected: "0\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCmd(t, tt.input, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if stdout != tt.expected {
				t.Errorf("output mismatch\nexpected: %q\ngot:      %q", tt.expected, stdout)
			}
		})
	}
}

func TestRootColor(t *testing.T) {
	stdout, _, err := runCmd(t, `{"a":"x","b":null}`, "--color", "always", "-c", "A=a", "-c", "B=b")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := "\033[34;1mA\033[0m,\033[34;1mB\033[0m\n\033[32mx\033[0m,\n"
	if stdout != expected {
		t.Errorf("output mismatch\nexpected: %q\ngot:      %q", expected, stdout)
	}
}

func TestRootErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		input string
		code  int
	}{
		{"bad path", []string{"a..b"}, "", exitCodeConfig},
		{"bad column flag", []string{"-c", "nolabel"}, "", exitCodeConfig},
		{"unknown flag", []string{"--frobnicate"}, "", exitCodeConfig},
		{"bad color", []string{"--color", "sometimes", "a"}, "", exitCodeConfig},
		{"invalid json", []string{"a"}, "{\"a\":1}\n{oops\n", exitCodeFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCmd(t, tt.input, tt.args...)
			if got := exitCode(err); got != tt.code {
				t.Errorf("exit code = %d, want %d (err: %v)", got, tt.code, err)
			}
		})
	}
}

func TestRootInvalidLineKeepsEarlierRows(t *testing.T) {
	stdout, _, err := runCmd(t, "{\"a\":1}\n{oops\n{\"a\":3}\n", "--no-head", "a")
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line 2 error, got %v", err)
	}
	if stdout != "1\n" {
		t.Errorf("output = %q, want %q", stdout, "1\n")
	}
}

func TestRootSkipInvalid(t *testing.T) {
	stdout, stderr, err := runCmd(t, "{\"a\":1}\n{oops\n{\"a\":3}\n", "--no-head", "--skip-invalid", "a")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if stdout != "1\n3\n" {
		t.Errorf("output = %q, want %q", stdout, "1\n3\n")
	}
	if !strings.Contains(stderr, "line 2") {
		t.Errorf("expected warning about line 2, got %q", stderr)
	}
}

func TestRootConfigFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "cols.yaml")
	content := "flatten:\n  - items\ncolumns:\n  - label: sku\n    path: sku\n  - label: qty\n    path: n\n"
	if err := os.WriteFile(name, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	input := `{"items":[{"sku":"a1","n":2},{"sku":"b7","n":1}]}` + "\n"
	stdout, _, err := runCmd(t, input, "--config", name)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := "sku,qty\na1,2\nb7,1\n"
	if stdout != expected {
		t.Errorf("output mismatch\nexpected: %q\ngot:      %q", expected, stdout)
	}
}

func TestRootVersion(t *testing.T) {
	stdout, _, err := runCmd(t, "", "--version")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !strings.HasPrefix(stdout, "jsoncsv version ") {
		t.Errorf("unexpected version output %q", stdout)
	}
}

func TestRootHelpDescribesColumns(t *testing.T) {
	stdout, _, err := runCmd(t, "", "--help")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for _, want := range []string{"-c LABEL=PATH", "not two separate arguments", "labelled\nwith its column index"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("help does not mention %q", want)
		}
	}
}

func TestRootPositionalLabelsCountColumns(t *testing.T) {
	stdout, _, err := runCmd(t, `{"a":1,"b":2}`, "-c", "A=a", "b")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if expected := "A,1\n1,2\n"; stdout != expected {
		t.Errorf("output mismatch\nexpected: %q\ngot:      %q", expected, stdout)
	}
}

func TestRootTwoArgumentColumn(t *testing.T) {
	_, _, err := runCmd(t, "", "-c", "A", "a")
	if exitCode(err) != exitCodeConfig || !strings.Contains(err.Error(), "LABEL=PATH") {
		t.Errorf("expected a configuration error mentioning LABEL=PATH, got %v", err)
	}
}
