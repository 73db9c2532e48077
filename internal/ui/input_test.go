package ui

import (
	"testing"

	"stormreader/internal/input"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTranslateKeyNamedKeys(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want input.Event
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, input.Key(input.SymUp)},
		{tea.KeyMsg{Type: tea.KeyEnter}, input.Key(input.SymEnter)},
		{tea.KeyMsg{Type: tea.KeyEscape}, input.Key(input.SymEscape)},
		{tea.KeyMsg{Type: tea.KeySpace}, input.Key(input.SymSpace)},
		{tea.KeyMsg{Type: tea.KeyHome}, input.Key(input.SymHome)},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, input.Event{Sym: input.SymTab, Mods: input.ModShift}},
		{tea.KeyMsg{Type: tea.KeyCtrlF}, input.Event{Sym: input.SymRune, Rune: 'f', Mods: input.ModCtrl}},
	}
	for _, tc := range cases {
		got, ok := translateKey(tc.msg)
		if !ok {
			t.Fatalf("expected %s to translate", tc.msg.String())
		}
		if got != tc.want {
			t.Fatalf("translateKey(%s) = %+v, want %+v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestTranslateKeyRunes(t *testing.T) {
	got, ok := translateKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if !ok || got != input.Char('a') {
		t.Fatalf("expected rune event, got %+v ok=%v", got, ok)
	}
	got, ok = translateKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true})
	if !ok {
		t.Fatalf("expected alt rune to translate")
	}
	if got.Mods != input.ModAlt || got.Rune != 'x' {
		t.Fatalf("expected alt+x, got %+v", got)
	}
}

func TestTranslateKeyRejectsMultiRunePaste(t *testing.T) {
	if _, ok := translateKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("paste")}); ok {
		t.Fatalf("expected multi-rune message rejected")
	}
}

func TestTranslateKeyRejectsUnknownTypes(t *testing.T) {
	if _, ok := translateKey(tea.KeyMsg{Type: tea.KeyF1}); ok {
		t.Fatalf("expected function keys handled outside the engine")
	}
}
