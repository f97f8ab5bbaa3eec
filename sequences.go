package termkey

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CapDef associates one raw byte sequence with a key code. Capability
// sources produce ordered slices of these; order matters because the
// first registration of a byte sequence wins.
type CapDef struct {
	Seq  string
	Code KeyCode
}

// defaultSequences is the well-known mixin: xterm-style CSI and SS3
// sequences plus the single-byte control keys every terminal shares.
// Registered ahead of capability-sourced definitions so these
// conventional meanings win when a terminal's database disagrees.
var defaultSequences = []CapDef{
	{"\x1b[A", KeyUp},
	{"\x1b[B", KeyDown},
	{"\x1b[C", KeyRight},
	{"\x1b[D", KeyLeft},
	{"\x1b[F", KeyEnd},
	{"\x1b[H", KeyHome},
	{"\x1b[K", KeyEnd},
	{"\x1b[U", KeyNextPage},
	{"\x1b[V", KeyPrevPage},
	{"\x1bOA", KeyUp},
	{"\x1bOB", KeyDown},
	{"\x1bOC", KeyRight},
	{"\x1bOD", KeyLeft},
	{"\x1bOF", KeyEnd},
	{"\x1bOH", KeyHome},
	{"\x1bOM", KeyEnter},
	{"\x1bOP", KeyF1},
	{"\x1bOQ", KeyF2},
	{"\x1bOR", KeyF3},
	{"\x1bOS", KeyF4},
	{"\x1b[1~", KeyHome},
	{"\x1b[2~", KeyInsertChar},
	{"\x1b[3~", KeyDeleteChar},
	{"\x1b[4~", KeyEnd},
	{"\x1b[5~", KeyPrevPage},
	{"\x1b[6~", KeyNextPage},
	{"\r", KeyEnter},
	{"\n", KeyEnter},
	{"\t", KeyTab},
	{"\b", KeyBackspace},
	{"\x7f", KeyBackspace},
	{"\x1b", KeyExit},
}

// SequenceMapping is the precedence-ordered byte-sequence to key-code
// table used for longest-match resolution. Entries are sorted by
// descending sequence length; among equal lengths the earlier
// registration sorts first. Immutable once built and safe for any
// number of concurrent readers.
type SequenceMapping struct {
	entries []CapDef
	index   map[string]KeyCode
	names   map[KeyCode]string
}

type mappingConfig struct {
	defaults bool
	cuf1     string
	cub1     string
	names    map[KeyCode]string
}

// MappingOption configures NewSequenceMapping.
type MappingOption func(*mappingConfig)

// WithDefaults registers the well-known xterm/keypad sequence mixin
// ahead of the caller's definitions.
func WithDefaults() MappingOption {
	return func(c *mappingConfig) { c.defaults = true }
}

// WithCursorKeys supplies the terminal's cursor-forward and
// cursor-back single-column sequences. When either is a single
// non-whitespace byte not already claimed, it registers as the
// matching arrow key; a backspace cursor-back byte registers as
// backspace through the default mixin instead.
func WithCursorKeys(cuf1, cub1 string) MappingOption {
	return func(c *mappingConfig) {
		c.cuf1 = cuf1
		c.cub1 = cub1
	}
}

// WithNames adds or overrides code-to-name entries, for mappings whose
// codes fall outside the built-in registry.
func WithNames(names map[KeyCode]string) MappingOption {
	return func(c *mappingConfig) {
		if c.names == nil {
			c.names = make(map[KeyCode]string, len(names))
		}
		for code, name := range names {
			c.names[code] = name
		}
	}
}

// NewSequenceMapping builds the resolution table from ordered
// capability definitions. Empty sequences are skipped; a byte
// sequence registered twice keeps its first code.
func NewSequenceMapping(defs []CapDef, opts ...MappingOption) *SequenceMapping {
	var cfg mappingConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &SequenceMapping{
		index: make(map[string]KeyCode),
		names: make(map[KeyCode]string),
	}

	if cfg.defaults {
		for _, def := range defaultSequences {
			m.register(def)
		}
	}
	for _, def := range defs {
		m.register(def)
	}
	m.registerCursorFallback(cfg.cuf1, KeyRight)
	m.registerCursorFallback(cfg.cub1, KeyLeft)

	// Longest first; stable keeps registration order for equal lengths.
	sort.SliceStable(m.entries, func(i, j int) bool {
		return len(m.entries[i].Seq) > len(m.entries[j].Seq)
	})

	for _, def := range m.entries {
		if _, ok := m.names[def.Code]; !ok {
			m.names[def.Code] = KeyName(def.Code)
		}
	}
	for code, name := range cfg.names {
		m.names[code] = name
	}
	return m
}

func (m *SequenceMapping) register(def CapDef) {
	if def.Seq == "" {
		return
	}
	if _, claimed := m.index[def.Seq]; claimed {
		return
	}
	m.entries = append(m.entries, def)
	m.index[def.Seq] = def.Code
}

// registerCursorFallback applies the directional-navigation rule for
// terminal types declaring only cursor movement capabilities: a
// single, non-whitespace movement byte doubles as the arrow key. The
// backspace byte stays backspace (claimed by the default mixin or an
// explicit capability), never LEFT.
func (m *SequenceMapping) registerCursorFallback(seq string, code KeyCode) {
	if utf8.RuneCountInString(seq) != 1 {
		return
	}
	r, _ := utf8.DecodeRuneInString(seq)
	if unicode.IsSpace(r) || r == '\b' || r == 0x7f {
		return
	}
	m.register(CapDef{Seq: seq, Code: code})
}

// Entries returns the precedence-ordered definitions. The slice is a
// copy; the mapping itself stays immutable.
func (m *SequenceMapping) Entries() []CapDef {
	out := make([]CapDef, len(m.entries))
	copy(out, m.entries)
	return out
}

// Lookup returns the code registered for an exact byte sequence.
func (m *SequenceMapping) Lookup(seq string) (KeyCode, bool) {
	code, ok := m.index[seq]
	return code, ok
}

// Name returns the symbolic name resolved keystrokes carry for a
// code: the per-mapping override when present, else the registry
// name.
func (m *SequenceMapping) Name(code KeyCode) string {
	if name, ok := m.names[code]; ok && name != "" {
		return name
	}
	return KeyName(code)
}

// Len returns the number of registered sequences.
func (m *SequenceMapping) Len() int { return len(m.entries) }

// hasContinuation reports whether some registered sequence extends
// beyond the buffered text, i.e. more input could still change what
// the buffer resolves to.
func (m *SequenceMapping) hasContinuation(buf string) bool {
	for _, def := range m.entries {
		if len(def.Seq) > len(buf) && strings.HasPrefix(def.Seq, buf) {
			return true
		}
	}
	return false
}
