// Package capability adapts terminal capability databases into the
// ordered capability tables the termkey sequence builder consumes.
//
// The primary source is the tcell terminfo database, keyed by the
// terminal type name ($TERM). Tables are plain data: callers can also
// build them by hand for terminals the database does not describe.
// Nothing here reads ambient process state; the terminal type is
// always passed in explicitly.
package capability

import (
	"fmt"

	"github.com/gdamore/tcell/v2/terminfo"

	// Registers the common terminal descriptions (xterm, vt100, ...).
	_ "github.com/gdamore/tcell/v2/terminfo/base"

	"github.com/dshills/termkey"
)

// Table is one terminal type's declared key capabilities: ordered
// sequence definitions plus the single-column cursor movement
// sequences used for the arrow-key fallback on terminals that only
// declare cursor motion.
type Table struct {
	// Term is the terminal type name the table describes.
	Term string

	// Defs holds the declared byte-sequence definitions in merge
	// order. Earlier entries win duplicate byte sequences.
	Defs []termkey.CapDef

	// CursorForward1 and CursorBack1 are the cuf1/cub1 movement
	// sequences, when declared.
	CursorForward1 string
	CursorBack1    string
}

// ForTerm looks a terminal type up in the terminfo database and
// returns its capability table.
func ForTerm(name string) (*Table, error) {
	ti, err := terminfo.LookupTerminfo(name)
	if err != nil {
		return nil, fmt.Errorf("capability: looking up %q: %w", name, err)
	}
	return FromTerminfo(ti), nil
}

// FromTerminfo builds a capability table from an already-loaded
// terminfo entry. Capabilities the entry does not declare are
// skipped.
func FromTerminfo(ti *terminfo.Terminfo) *Table {
	t := &Table{
		Term:        ti.Name,
		CursorBack1: ti.CursorBack1,
	}
	add := func(seq string, code termkey.KeyCode) {
		if seq != "" {
			t.Defs = append(t.Defs, termkey.CapDef{Seq: seq, Code: code})
		}
	}

	add(ti.KeyUp, termkey.KeyUp)
	add(ti.KeyDown, termkey.KeyDown)
	add(ti.KeyLeft, termkey.KeyLeft)
	add(ti.KeyRight, termkey.KeyRight)
	add(ti.KeyHome, termkey.KeyHome)
	add(ti.KeyEnd, termkey.KeyEnd)
	add(ti.KeyInsert, termkey.KeyInsertChar)
	add(ti.KeyDelete, termkey.KeyDeleteChar)
	add(ti.KeyBackspace, termkey.KeyBackspace)
	add(ti.KeyPgUp, termkey.KeyPrevPage)
	add(ti.KeyPgDn, termkey.KeyNextPage)
	add(ti.KeyBacktab, termkey.KeyBacktab)
	add(ti.KeyExit, termkey.KeyExit)
	add(ti.KeyClear, termkey.KeyClear)
	add(ti.KeyCancel, termkey.KeyCancel)
	add(ti.KeyPrint, termkey.KeyPrint)
	add(ti.KeyHelp, termkey.KeyHelp)
	add(ti.KeyShfLeft, termkey.KeyShiftLeft)
	add(ti.KeyShfRight, termkey.KeyShiftRight)
	add(ti.KeyShfHome, termkey.KeyShiftHome)
	add(ti.KeyShfEnd, termkey.KeyShiftEnd)
	add(ti.KeyF1, termkey.KeyF1)
	add(ti.KeyF2, termkey.KeyF2)
	add(ti.KeyF3, termkey.KeyF3)
	add(ti.KeyF4, termkey.KeyF4)
	add(ti.KeyF5, termkey.KeyF5)
	add(ti.KeyF6, termkey.KeyF6)
	add(ti.KeyF7, termkey.KeyF7)
	add(ti.KeyF8, termkey.KeyF8)
	add(ti.KeyF9, termkey.KeyF9)
	add(ti.KeyF10, termkey.KeyF10)
	add(ti.KeyF11, termkey.KeyF11)
	add(ti.KeyF12, termkey.KeyF12)

	return t
}

// Mapping builds the resolution table for the terminal: the
// well-known default mixin first, then the declared capabilities,
// then the cursor-movement arrow fallback.
func (t *Table) Mapping() *termkey.SequenceMapping {
	return termkey.NewSequenceMapping(t.Defs,
		termkey.WithDefaults(),
		termkey.WithCursorKeys(t.CursorForward1, t.CursorBack1),
	)
}
