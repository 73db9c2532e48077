package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stormreader/internal/input"
	"stormreader/internal/provider"
)

func TestMoveModeStepsAndSpeaksPosition(t *testing.T) {
	src := &fakeSource{}
	src.performFn = func(payload interface{}, kind provider.ActionKind) (provider.Result, error) {
		direction, _ := payload.(string)
		if direction == "" {
			return provider.Result{OK: true, Code: "Hearth, 1, 1"}, nil
		}
		return provider.Result{OK: true, Code: "Forest, 2, 1"}, nil
	}
	deps, rec := newTestDeps(src)
	m := NewMoveMode(deps)

	m.OnOpen(provider.Context{Screen: "movemode"})
	assert.Equal(t, "Hearth, 1, 1", rec.Last())

	require.True(t, m.ProcessKey(input.Key(input.SymRight)))
	assert.Equal(t, "Forest, 2, 1", rec.Last())
	require.Len(t, src.performs, 2)
	assert.Equal(t, "east", src.performs[1].payload)
}

func TestMoveModeBlockedMoveSpoken(t *testing.T) {
	src := &fakeSource{}
	calls := 0
	src.performFn = func(interface{}, provider.ActionKind) (provider.Result, error) {
		calls++
		if calls == 1 {
			return provider.Result{OK: true, Code: "Hearth, 1, 1"}, nil
		}
		return provider.Result{OK: false, Code: "Edge of map"}, nil
	}
	deps, rec := newTestDeps(src)
	m := NewMoveMode(deps)

	m.OnOpen(provider.Context{Screen: "movemode"})
	m.ProcessKey(input.Key(input.SymUp))
	assert.Equal(t, "Edge of map", rec.Last())
}

func TestMoveModeConfirmClosesAndSpeaks(t *testing.T) {
	src := &fakeSource{}
	deps, rec := newTestDeps(src)
	m := NewMoveMode(deps)

	m.OnOpen(provider.Context{Screen: "movemode"})
	require.True(t, m.ProcessKey(input.Key(input.SymEnter)))
	assert.Equal(t, "Placed", rec.Last())
	assert.False(t, m.IsActive())
	assert.Equal(t, provider.ActionConfirm, src.performs[len(src.performs)-1].kind)
}

func TestMoveModeCancelArmsSuppressionAndCloses(t *testing.T) {
	src := &fakeSource{}
	deps, rec := newTestDeps(src)
	m := NewMoveMode(deps)

	m.OnOpen(provider.Context{Screen: "movemode"})
	require.True(t, m.ProcessKey(input.Key(input.SymEscape)))
	assert.Equal(t, "Move cancelled", rec.Last())
	assert.False(t, m.IsActive())
	assert.True(t, deps.Suppression.PendingNextCancel())
	assert.Equal(t, provider.ActionCancel, src.performs[len(src.performs)-1].kind)
}

func TestMoveModeConsumesUnboundKeys(t *testing.T) {
	src := &fakeSource{}
	deps, _ := newTestDeps(src)
	m := NewMoveMode(deps)

	m.OnOpen(provider.Context{Screen: "movemode"})
	assert.True(t, m.ProcessKey(input.Char('x')))
}
