package input

import "testing"

func TestParseKeyNamedSymbols(t *testing.T) {
	cases := map[string]Event{
		"up":        Key(SymUp),
		"Escape":    Key(SymEscape),
		"enter":     Key(SymEnter),
		"home":      Key(SymHome),
		"pagedown":  Key(SymPageDown),
		"space":     Key(SymSpace),
		"backspace": Key(SymBackspace),
	}
	for name, want := range cases {
		got, ok := ParseKey(name)
		if !ok {
			t.Fatalf("expected %q to parse", name)
		}
		if got != want {
			t.Fatalf("ParseKey(%q) = %+v, want %+v", name, got, want)
		}
	}
}

func TestParseKeyModifiers(t *testing.T) {
	got, ok := ParseKey("ctrl+f")
	if !ok {
		t.Fatalf("expected ctrl+f to parse")
	}
	want := Event{Sym: SymRune, Rune: 'f', Mods: ModCtrl}
	if got != want {
		t.Fatalf("ParseKey(ctrl+f) = %+v, want %+v", got, want)
	}

	got, ok = ParseKey("ctrl+alt+home")
	if !ok {
		t.Fatalf("expected ctrl+alt+home to parse")
	}
	want = Event{Sym: SymHome, Mods: ModCtrl | ModAlt}
	if got != want {
		t.Fatalf("ParseKey(ctrl+alt+home) = %+v, want %+v", got, want)
	}
}

func TestParseKeyPlusMinusAliases(t *testing.T) {
	got, ok := ParseKey("plus")
	if !ok || got != Char('+') {
		t.Fatalf("expected plus alias, got %+v ok=%v", got, ok)
	}
	got, ok = ParseKey("minus")
	if !ok || got != Char('-') {
		t.Fatalf("expected minus alias, got %+v ok=%v", got, ok)
	}
}

func TestParseKeyRejectsUnknown(t *testing.T) {
	for _, name := range []string{"", "bogus", "meta+x", "abc"} {
		if _, ok := ParseKey(name); ok {
			t.Fatalf("expected %q to be rejected", name)
		}
	}
}
