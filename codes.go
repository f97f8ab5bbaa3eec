package termkey

// KeyCode identifies a named key. Codes occupy a private numeric range
// well above any Unicode code point so they never collide with
// literal character input.
type KeyCode int

// KeyNone is the absent code carried by plain-character keystrokes.
const KeyNone KeyCode = 0

// Named key codes. The registry names follow the terminal capability
// database conventions (KEY_DC for delete-character, KEY_NPAGE for
// next-page); the override table below surfaces the conventional
// application-facing names for those.
const (
	keyCodeBase KeyCode = 0x110000 + iota

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDeleteChar
	KeyInsertChar
	KeyNextPage
	KeyPrevPage
	KeyEnter
	KeyTab
	KeyBacktab
	KeyExit
	KeyClear
	KeyCancel
	KeyPrint
	KeyHelp
	KeyScrollForward
	KeyScrollReverse
	KeyShiftLeft
	KeyShiftRight
	KeyShiftHome
	KeyShiftEnd

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	keyCodeMax
)

// registryNames holds the default, capability-registry-flavored name
// for each code.
var registryNames = map[KeyCode]string{
	KeyUp:            "KEY_UP",
	KeyDown:          "KEY_DOWN",
	KeyLeft:          "KEY_LEFT",
	KeyRight:         "KEY_RIGHT",
	KeyHome:          "KEY_HOME",
	KeyEnd:           "KEY_END",
	KeyBackspace:     "KEY_BACKSPACE",
	KeyDeleteChar:    "KEY_DC",
	KeyInsertChar:    "KEY_IC",
	KeyNextPage:      "KEY_NPAGE",
	KeyPrevPage:      "KEY_PPAGE",
	KeyEnter:         "KEY_ENTER",
	KeyTab:           "KEY_TAB",
	KeyBacktab:       "KEY_BTAB",
	KeyExit:          "KEY_EXIT",
	KeyClear:         "KEY_CLEAR",
	KeyCancel:        "KEY_CANCEL",
	KeyPrint:         "KEY_PRINT",
	KeyHelp:          "KEY_HELP",
	KeyScrollForward: "KEY_SF",
	KeyScrollReverse: "KEY_SR",
	KeyShiftLeft:     "KEY_SLEFT",
	KeyShiftRight:    "KEY_SRIGHT",
	KeyShiftHome:     "KEY_SHOME",
	KeyShiftEnd:      "KEY_SEND",
	KeyF1:            "KEY_F1",
	KeyF2:            "KEY_F2",
	KeyF3:            "KEY_F3",
	KeyF4:            "KEY_F4",
	KeyF5:            "KEY_F5",
	KeyF6:            "KEY_F6",
	KeyF7:            "KEY_F7",
	KeyF8:            "KEY_F8",
	KeyF9:            "KEY_F9",
	KeyF10:           "KEY_F10",
	KeyF11:           "KEY_F11",
	KeyF12:           "KEY_F12",
}

// nameOverrides renames specific codes from their registry defaults to
// the names applications expect. The registry's generic exit key is
// how terminals report ESC, its delete-character and insert-character
// keys are the Delete and Insert keys, and scroll forward/reverse are
// shifted down/up.
var nameOverrides = map[KeyCode]string{
	KeyExit:          "KEY_ESCAPE",
	KeyDeleteChar:    "KEY_DELETE",
	KeyInsertChar:    "KEY_INSERT",
	KeyNextPage:      "KEY_PGDOWN",
	KeyPrevPage:      "KEY_PGUP",
	KeyScrollForward: "KEY_SDOWN",
	KeyScrollReverse: "KEY_SUP",
}

// nameSynonyms adds human-friendly aliases resolving to existing
// codes. Only the name-to-code direction gains entries; code-to-name
// lookups always produce the override or registry name.
var nameSynonyms = map[string]KeyCode{
	"KEY_ESC":    KeyExit,
	"KEY_DEL":    KeyDeleteChar,
	"KEY_INS":    KeyInsertChar,
	"KEY_BS":     KeyBackspace,
	"KEY_RETURN": KeyEnter,
	"KEY_PGDN":   KeyNextPage,
}

// KeyName returns the symbolic name for a code: the override name when
// one exists, else the registry default. Unknown codes return "".
func KeyName(code KeyCode) string {
	if name, ok := nameOverrides[code]; ok {
		return name
	}
	return registryNames[code]
}

// KeyCodes returns the full code-to-name table with overrides applied.
// The returned map is a fresh copy; callers may mutate it.
func KeyCodes() map[KeyCode]string {
	codes := make(map[KeyCode]string, len(registryNames))
	for code := range registryNames {
		codes[code] = KeyName(code)
	}
	return codes
}

// CodeOf resolves a symbolic name (registry name, override name, or
// synonym) to its key code.
func CodeOf(name string) (KeyCode, bool) {
	if code, ok := nameSynonyms[name]; ok {
		return code, true
	}
	for code := range registryNames {
		if KeyName(code) == name || registryNames[code] == name {
			return code, true
		}
	}
	return KeyNone, false
}
