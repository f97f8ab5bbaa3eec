// Package config loads termkey session options from TOML files and
// optionally watches them for changes.
//
// A missing options file is not an error: callers get the defaults.
package config

import (
	"fmt"
	"os"
	"time"

	genc "github.com/gdamore/encoding"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/encoding"

	"github.com/dshills/termkey"
)

// Duration is a time.Duration that unmarshals from TOML strings like
// "350ms" or "1.5s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Options are the tunable knobs of a keystroke session.
type Options struct {
	// EscDelay is how long a lone ESC is held back waiting for a
	// possible sequence continuation.
	EscDelay Duration `toml:"esc_delay"`

	// IncompleteWait bounds the wait for the rest of a multibyte
	// character split across reads.
	IncompleteWait Duration `toml:"incomplete_wait"`

	// Charset names the input character encoding: "utf-8" (default),
	// "ascii", or "iso8859-1"/"latin-1" for legacy 8-bit terminals.
	Charset string `toml:"charset"`

	// InvalidPolicy is what happens to undecodable bytes: "replace"
	// (default, U+FFFD) or "ignore".
	InvalidPolicy string `toml:"invalid_policy"`
}

// Default returns the documented defaults.
func Default() Options {
	return Options{
		EscDelay:       Duration(termkey.DefaultEscDelay),
		IncompleteWait: Duration(termkey.DefaultIncompleteWait),
		Charset:        "utf-8",
		InvalidPolicy:  "replace",
	}
}

// Load reads options from a TOML file. A nonexistent path yields the
// defaults without error; unset fields keep their defaults.
func Load(path string) (Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("reading options file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &opts); err != nil {
		return Default(), &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	if err := opts.Validate(); err != nil {
		return Default(), &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return opts, nil
}

// Validate rejects values that cannot configure a session.
func (o Options) Validate() error {
	if o.EscDelay < 0 {
		return fmt.Errorf("esc_delay must not be negative")
	}
	if o.IncompleteWait < 0 {
		return fmt.Errorf("incomplete_wait must not be negative")
	}
	if _, err := o.Encoding(); err != nil {
		return err
	}
	switch o.InvalidPolicy {
	case "", "replace", "ignore":
	default:
		return fmt.Errorf("invalid_policy must be \"replace\" or \"ignore\", got %q", o.InvalidPolicy)
	}
	return nil
}

// Encoding maps the charset name to a character encoding. UTF-8
// returns nil, meaning the decoder's native assembler.
func (o Options) Encoding() (encoding.Encoding, error) {
	switch o.Charset {
	case "", "utf-8", "utf8":
		return nil, nil
	case "ascii", "us-ascii":
		return genc.ASCII, nil
	case "iso8859-1", "latin-1", "latin1":
		return genc.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("unknown charset %q", o.Charset)
	}
}

// SessionOptions converts the options into termkey session options.
// Validate first; invalid values here fall back to defaults.
func (o Options) SessionOptions() []termkey.SessionOption {
	var dopts []termkey.DecoderOption
	if enc, err := o.Encoding(); err == nil && enc != nil {
		dopts = append(dopts, termkey.WithCharset(enc))
	}
	if o.InvalidPolicy == "ignore" {
		dopts = append(dopts, termkey.WithInvalidPolicy(termkey.IgnoreInvalid))
	}

	sopts := []termkey.SessionOption{
		termkey.WithEscDelay(time.Duration(o.EscDelay)),
		termkey.WithIncompleteWait(time.Duration(o.IncompleteWait)),
	}
	if len(dopts) > 0 {
		sopts = append(sopts, termkey.WithDecoder(termkey.NewDecoder(dopts...)))
	}
	return sopts
}

// ParseError reports a malformed options file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
