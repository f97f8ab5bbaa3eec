// Package termkey decodes raw terminal input byte streams into
// discrete, named keystrokes.
//
// The package bridges the gap between a byte-oriented terminal input
// stream (no framing, sequences split arbitrarily across reads) and
// the key events an interactive application wants:
//
//   - Keystroke: one decoded input unit, either a literal character or
//     a named sequence such as KEY_LEFT
//   - SequenceMapping: precedence-ordered byte-sequence to key-code
//     table built from terminal capability data
//   - Decoder: incremental multibyte assembler turning raw bytes into
//     decoded text, retaining split code points across reads
//   - Session: the timed acquisition loop, including the escape-delay
//     policy that distinguishes a lone ESC press from the first byte
//     of an escape sequence
//
// # Resolution
//
// Sequence resolution is longest-match-first: mapping entries are
// sorted by descending sequence length, ties broken by registration
// order, and the first entry whose bytes prefix the buffered input
// wins. Input matching no entry degrades to a single literal
// character; resolution never fails.
//
// # Capability data
//
// The mapping is built from an explicitly injected capability table.
// The capability subpackage adapts the tcell terminfo database; tests
// and special-purpose callers can hand-build tables. The core never
// reads ambient terminal state.
//
// One Session owns one input stream: concurrent Inkey calls on the
// same Session must be serialized by the caller. A built
// SequenceMapping is immutable and safe for concurrent readers.
package termkey
