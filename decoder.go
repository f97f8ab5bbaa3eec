package termkey

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
)

// InvalidPolicy selects what the decoder does with bytes that do not
// form a decodable character.
type InvalidPolicy int

const (
	// ReplaceInvalid substitutes U+FFFD for undecodable input. This is
	// the default.
	ReplaceInvalid InvalidPolicy = iota
	// IgnoreInvalid drops undecodable input silently.
	IgnoreInvalid
)

// Decoder incrementally assembles decoded text from raw terminal
// bytes. A multibyte character split across reads is retained until
// its remaining bytes arrive (or the caller gives up and flushes), so
// feeding the decoder arbitrary chunk boundaries never corrupts
// characters.
//
// The default charset is UTF-8, assembled natively. A non-UTF-8
// single-byte charset (e.g. the gdamore/encoding charmaps for legacy
// 8-bit terminals) can be supplied with WithCharset.
type Decoder struct {
	policy  InvalidPolicy
	charset *encoding.Decoder
	partial []byte
}

// DecoderOption configures NewDecoder.
type DecoderOption func(*Decoder)

// WithInvalidPolicy sets the undecodable-byte policy.
func WithInvalidPolicy(p InvalidPolicy) DecoderOption {
	return func(d *Decoder) { d.policy = p }
}

// WithCharset decodes input through the given character encoding
// instead of UTF-8. Pass nil to keep UTF-8.
func WithCharset(enc encoding.Encoding) DecoderOption {
	return func(d *Decoder) {
		if enc != nil {
			d.charset = enc.NewDecoder()
		}
	}
}

// NewDecoder creates an incremental decoder.
func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Write feeds raw bytes in and returns the completely decoded text.
// Trailing bytes that begin a valid but unfinished multibyte
// character are retained for the next call.
func (d *Decoder) Write(p []byte) string {
	if d.charset != nil {
		return d.decodeCharset(p)
	}
	d.partial = append(d.partial, p...)
	buf := d.partial

	var sb strings.Builder
	i := 0
	for i < len(buf) {
		c := buf[i]
		if c < utf8.RuneSelf {
			sb.WriteByte(c)
			i++
			continue
		}
		r, size := utf8.DecodeRune(buf[i:])
		if size > 1 {
			sb.WriteRune(r)
			i += size
			continue
		}
		if incompletePrefix(buf[i:]) {
			// Wait for the rest of the character.
			break
		}
		d.substitute(&sb)
		i++
	}
	d.partial = append(d.partial[:0], buf[i:]...)
	return sb.String()
}

// decodeCharset handles non-UTF-8 single-byte charsets through the
// x/text decoder, which substitutes U+FFFD for unmapped bytes.
func (d *Decoder) decodeCharset(p []byte) string {
	if len(p) == 0 {
		return ""
	}
	out, err := d.charset.Bytes(p)
	if err != nil {
		return ""
	}
	s := string(out)
	if d.policy == IgnoreInvalid {
		s = strings.ReplaceAll(s, string(utf8.RuneError), "")
	}
	return s
}

// Incomplete reports whether the decoder is holding the start of an
// unfinished multibyte character.
func (d *Decoder) Incomplete() bool { return len(d.partial) > 0 }

// Flush gives up on any retained partial character and decodes it
// under the invalid-byte policy. Called when the stream stalls
// mid-character.
func (d *Decoder) Flush() string {
	if len(d.partial) == 0 {
		return ""
	}
	d.partial = d.partial[:0]
	var sb strings.Builder
	d.substitute(&sb)
	return sb.String()
}

func (d *Decoder) substitute(sb *strings.Builder) {
	if d.policy == ReplaceInvalid {
		sb.WriteRune(utf8.RuneError)
	}
}

// incompletePrefix reports whether b is the valid beginning of a
// multibyte UTF-8 character whose remaining bytes have not arrived.
func incompletePrefix(b []byte) bool {
	want := 0
	switch {
	case b[0]&0xE0 == 0xC0:
		want = 2
	case b[0]&0xF0 == 0xE0:
		want = 3
	case b[0]&0xF8 == 0xF0:
		want = 4
	default:
		return false
	}
	if len(b) >= want {
		return false
	}
	for _, c := range b[1:] {
		if c&0xC0 != 0x80 {
			return false
		}
	}
	return true
}
