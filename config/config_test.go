package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	genc "github.com/gdamore/encoding"

	"github.com/dshills/termkey"
)

func writeOptions(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "termkey.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing options file: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	opts := Default()
	if time.Duration(opts.EscDelay) != termkey.DefaultEscDelay {
		t.Errorf("EscDelay = %v, want %v", opts.EscDelay, termkey.DefaultEscDelay)
	}
	if opts.Charset != "utf-8" {
		t.Errorf("Charset = %q, want utf-8", opts.Charset)
	}
	if opts.InvalidPolicy != "replace" {
		t.Errorf("InvalidPolicy = %q, want replace", opts.InvalidPolicy)
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	opts, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if opts != Default() {
		t.Errorf("missing file should yield defaults, got %+v", opts)
	}
}

func TestLoad(t *testing.T) {
	path := writeOptions(t, `
esc_delay = "100ms"
charset = "latin-1"
invalid_policy = "ignore"
`)
	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if time.Duration(opts.EscDelay) != 100*time.Millisecond {
		t.Errorf("EscDelay = %v, want 100ms", opts.EscDelay)
	}
	// Unset fields keep their defaults.
	if time.Duration(opts.IncompleteWait) != termkey.DefaultIncompleteWait {
		t.Errorf("IncompleteWait = %v, want default", opts.IncompleteWait)
	}
	if opts.Charset != "latin-1" {
		t.Errorf("Charset = %q, want latin-1", opts.Charset)
	}
	if opts.InvalidPolicy != "ignore" {
		t.Errorf("InvalidPolicy = %q, want ignore", opts.InvalidPolicy)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeOptions(t, "esc_delay = [broken")
	_, err := Load(path)

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Load = %v, want *ParseError", err)
	}
	if perr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{"defaults", func(*Options) {}, false},
		{"negative esc delay", func(o *Options) { o.EscDelay = -1 }, true},
		{"negative incomplete wait", func(o *Options) { o.IncompleteWait = -1 }, true},
		{"unknown charset", func(o *Options) { o.Charset = "ebcdic" }, true},
		{"unknown policy", func(o *Options) { o.InvalidPolicy = "explode" }, true},
		{"ignore policy", func(o *Options) { o.InvalidPolicy = "ignore" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Default()
			tt.mutate(&opts)
			if err := opts.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEncoding(t *testing.T) {
	tests := []struct {
		charset string
		wantNil bool
	}{
		{"", true},
		{"utf-8", true},
		{"ascii", false},
		{"latin-1", false},
		{"iso8859-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.charset, func(t *testing.T) {
			opts := Default()
			opts.Charset = tt.charset
			enc, err := opts.Encoding()
			if err != nil {
				t.Fatalf("Encoding: %v", err)
			}
			if (enc == nil) != tt.wantNil {
				t.Errorf("Encoding() nil = %v, want %v", enc == nil, tt.wantNil)
			}
		})
	}

	opts := Default()
	opts.Charset = "latin-1"
	if enc, _ := opts.Encoding(); enc != genc.ISO8859_1 {
		t.Error("latin-1 should map to the ISO8859-1 charmap")
	}
}

func TestSessionOptionsApply(t *testing.T) {
	opts := Default()
	opts.Charset = "latin-1"
	opts.InvalidPolicy = "ignore"
	opts.EscDelay = Duration(50 * time.Millisecond)

	sopts := opts.SessionOptions()
	if len(sopts) == 0 {
		t.Fatal("no session options produced")
	}
	// Applying the options must yield a usable session.
	m := termkey.NewSequenceMapping(nil, termkey.WithDefaults())
	if s := termkey.NewSession(nil, m, sopts...); s == nil {
		t.Fatal("NewSession returned nil")
	}
}

func TestWatch(t *testing.T) {
	path := writeOptions(t, `esc_delay = "200ms"`)

	changed := make(chan Options, 1)
	w, err := Watch(path, func(o Options) {
		select {
		case changed <- o:
		default:
		}
	}, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`esc_delay = "75ms"`), 0o644); err != nil {
		t.Fatalf("rewriting options: %v", err)
	}

	select {
	case opts := <-changed:
		if time.Duration(opts.EscDelay) != 75*time.Millisecond {
			t.Errorf("EscDelay = %v, want 75ms", opts.EscDelay)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification within 3s")
	}
}
