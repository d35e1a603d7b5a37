package scheme

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    Config
		wantErr bool
	}{
		{
			name: "empty document keeps defaults",
			yaml: "",
			want: DefaultConfig(),
		},
		{
			name: "both limits",
			yaml: "max_read_depth: 10\nmax_eval_depth: 20\n",
			want: Config{MaxReadDepth: 10, MaxEvalDepth: 20},
		},
		{
			name: "partial document",
			yaml: "max_eval_depth: 5\n",
			want: Config{MaxReadDepth: DefaultMaxReadDepth, MaxEvalDepth: 5},
		},
		{
			name: "zero selects default",
			yaml: "max_read_depth: 0\n",
			want: DefaultConfig(),
		},
		{
			name:    "negative limit",
			yaml:    "max_read_depth: -1\n",
			wantErr: true,
		},
		{
			name:    "unknown field",
			yaml:    "max_depth: 3\n",
			wantErr: true,
		},
		{
			name:    "wrong type",
			yaml:    "max_eval_depth: deep\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadConfig(strings.NewReader(tt.yaml))
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("LoadConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheme.yaml")
	if err := os.WriteFile(path, []byte("max_read_depth: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}
	ip := NewInterpreter(c)
	if _, err = ip.Run("(+ (+ 1))"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if _, err = ip.Run("(+ (+ (+ 1)))"); !isNestingError(err) {
		t.Fatalf("Run() error = %v, want nesting error", err)
	}

	if _, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("LoadConfigFile() of a missing file succeeded")
	}
}

func isNestingError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se) && strings.Contains(se.Msg, "nesting deeper than")
}

func TestNewInterpreter_Defaults(t *testing.T) {
	ip := NewInterpreter(Config{})
	if ip.Config() != DefaultConfig() {
		t.Errorf("Config() = %+v, want %+v", ip.Config(), DefaultConfig())
	}
}
