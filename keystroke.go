package termkey

import "strconv"

// Keystroke is one decoded unit of terminal input: either a literal
// character (possibly multibyte) or a recognized named sequence.
// The zero value is the empty keystroke returned on timeout.
//
// A Keystroke is immutable. Its name and code are present together or
// absent together; IsSequence reports which. The text is the raw
// decoded characters the keystroke was resolved from, so comparing,
// concatenating, and measuring a Keystroke all operate on Text.
type Keystroke struct {
	text string
	code KeyCode
	name string
}

// NewKeystroke builds a keystroke from decoded text and, for
// recognized sequences, a code and name. Pass KeyNone and "" for a
// plain literal character. Supplying only one of code and name is a
// programmer error and panics.
func NewKeystroke(text string, code KeyCode, name string) Keystroke {
	if (name == "") != (code == KeyNone) {
		panic("termkey: keystroke name and code must be set together")
	}
	return Keystroke{text: text, code: code, name: name}
}

// Text returns the decoded characters the keystroke resolved from.
// Empty for the timeout keystroke.
func (k Keystroke) Text() string { return k.text }

// String returns Text, so a Keystroke concatenates and compares as an
// ordinary string.
func (k Keystroke) String() string { return k.text }

// Name returns the symbolic name for a recognized sequence, or "" for
// a literal character.
func (k Keystroke) Name() string { return k.name }

// Code returns the numeric key code for a recognized sequence, or
// KeyNone for a literal character.
func (k Keystroke) Code() KeyCode { return k.code }

// IsSequence reports whether the keystroke is a recognized named
// sequence rather than a literal character.
func (k Keystroke) IsSequence() bool { return k.name != "" }

// Len returns the length of the decoded text in bytes.
func (k Keystroke) Len() int { return len(k.text) }

// GoString returns the debug form: the symbolic name when present,
// else the quoted literal text.
func (k Keystroke) GoString() string {
	if k.name != "" {
		return k.name
	}
	return strconv.Quote(k.text)
}

// Equals reports whether two keystrokes carry identical text. Name
// and code do not participate, matching string-style equality.
func (k Keystroke) Equals(other Keystroke) bool {
	return k.text == other.text
}
