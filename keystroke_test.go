package termkey

import "testing"

func TestKeystrokeZeroValue(t *testing.T) {
	var ks Keystroke

	if ks.Text() != "" {
		t.Errorf("Text() = %q, want empty", ks.Text())
	}
	if ks.Name() != "" {
		t.Errorf("Name() = %q, want empty", ks.Name())
	}
	if ks.Code() != KeyNone {
		t.Errorf("Code() = %d, want KeyNone", ks.Code())
	}
	if ks.IsSequence() {
		t.Error("IsSequence() = true, want false")
	}
	if got := "x" + ks.String(); got != "x" {
		t.Errorf("concatenation changed the string: %q", got)
	}
	if got := ks.GoString(); got != `""` {
		t.Errorf("GoString() = %s, want %q", got, `""`)
	}
}

func TestKeystrokeNamed(t *testing.T) {
	ks := NewKeystroke("x", 1, "the X")

	if ks.Text() != "x" {
		t.Errorf("Text() = %q, want %q", ks.Text(), "x")
	}
	if ks.Name() != "the X" {
		t.Errorf("Name() = %q, want %q", ks.Name(), "the X")
	}
	if ks.Code() != 1 {
		t.Errorf("Code() = %d, want 1", ks.Code())
	}
	if !ks.IsSequence() {
		t.Error("IsSequence() = false, want true")
	}
	if got := "x" + ks.String(); got != "xx" {
		t.Errorf("concatenation = %q, want %q", got, "xx")
	}
	if got := ks.GoString(); got != "the X" {
		t.Errorf("GoString() = %s, want name", got)
	}
}

func TestKeystrokePlain(t *testing.T) {
	ks := NewKeystroke("é", KeyNone, "")

	if ks.IsSequence() {
		t.Error("IsSequence() = true for plain character")
	}
	if ks.Len() != len("é") {
		t.Errorf("Len() = %d, want %d", ks.Len(), len("é"))
	}
	if got := ks.GoString(); got != `"é"` {
		t.Errorf("GoString() = %s, want quoted literal", got)
	}
}

func TestKeystrokeEquals(t *testing.T) {
	named := NewKeystroke("x", KeyLeft, "KEY_LEFT")
	plain := NewKeystroke("x", KeyNone, "")

	if !named.Equals(plain) {
		t.Error("keystrokes with equal text should be equal regardless of name/code")
	}
	if named.Equals(NewKeystroke("y", KeyNone, "")) {
		t.Error("keystrokes with different text should not be equal")
	}
}

func TestKeystrokeConstructionInvariant(t *testing.T) {
	tests := []struct {
		name string
		code KeyCode
		key  string
	}{
		{"name without code", KeyNone, "KEY_LEFT"},
		{"code without name", KeyLeft, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic for mismatched name/code")
				}
			}()
			NewKeystroke("x", tt.code, tt.key)
		})
	}
}
