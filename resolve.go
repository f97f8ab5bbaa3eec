package termkey

import (
	"strings"
	"unicode/utf8"
)

// ResolveSequence matches buffered decoded text against defs in the
// exact order given, returning the first entry whose byte sequence
// prefixes buf plus how many bytes it consumed. names supplies the
// symbolic name per code, falling back to the registry name.
//
// Text matching no entry degrades to its first character with absent
// name and code; an empty buffer yields the zero keystroke and
// consumes nothing. Resolution never fails: worst case it gives the
// input back one character at a time.
//
// Callers almost always want SequenceMapping.Resolve, which applies
// the longest-first precedence order. This function exists for
// mappings whose order is already meaningful.
func ResolveSequence(buf string, defs []CapDef, names map[KeyCode]string) (Keystroke, int) {
	if buf == "" {
		return Keystroke{}, 0
	}
	for _, def := range defs {
		if def.Seq == "" {
			continue
		}
		if strings.HasPrefix(buf, def.Seq) {
			name := names[def.Code]
			if name == "" {
				name = KeyName(def.Code)
			}
			return NewKeystroke(def.Seq, def.Code, name), len(def.Seq)
		}
	}
	_, size := utf8.DecodeRuneInString(buf)
	return NewKeystroke(buf[:size], KeyNone, ""), size
}

// Resolve performs longest-match resolution of buffered decoded text
// against the mapping: entries are tried longest first, registration
// order breaking ties, and the first whose sequence prefixes buf
// wins. Returns the resolved keystroke and how many bytes of buf it
// consumed. See ResolveSequence for the fallback behavior.
func (m *SequenceMapping) Resolve(buf string) (Keystroke, int) {
	return ResolveSequence(buf, m.entries, m.names)
}
