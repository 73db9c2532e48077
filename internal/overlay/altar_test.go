package overlay

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stormreader/internal/input"
	"stormreader/internal/navigate"
	"stormreader/internal/provider"
)

func offerItem(id, label string) navigate.Item {
	return navigate.ActionItem(id, label, "costs 4 amber", string(provider.ActionPurchase), id)
}

func TestAltarPurchaseShrinksListAndClampsCursor(t *testing.T) {
	src := &fakeSource{items: map[string][]navigate.Item{
		"altar": {offerItem("haste", "Haste"), offerItem("plenty", "Plenty"), offerItem("embers", "Embers")},
	}}
	src.performFn = func(payload interface{}, kind provider.ActionKind) (provider.Result, error) {
		id, _ := payload.(string)
		kept := src.items["altar"][:0:0]
		for _, item := range src.items["altar"] {
			if item.ID != id {
				kept = append(kept, item)
			}
		}
		src.items["altar"] = kept
		return provider.Result{OK: true, Code: fmt.Sprintf("%s bought", id)}, nil
	}
	deps, rec := newTestDeps(src)
	a := NewAltar(deps)

	a.OnOpen(provider.Context{Screen: "altar"})
	a.ProcessKey(input.Key(input.SymEnd))
	require.True(t, a.ProcessKey(input.Key(input.SymEnter)))

	assert.Equal(t, "embers bought", rec.Last())
	l := a.nav.Current()
	require.NotNil(t, l)
	assert.Equal(t, 2, l.Len())
	// The list shrank under the cursor; the index clamps to the new last item.
	assert.Equal(t, 1, l.Index)
}

func TestAltarRejectedPurchaseLeavesListAlone(t *testing.T) {
	src := &fakeSource{items: map[string][]navigate.Item{
		"altar": {offerItem("haste", "Haste")},
	}}
	src.performFn = func(interface{}, provider.ActionKind) (provider.Result, error) {
		return provider.Result{OK: false, Code: "Not enough amber"}, nil
	}
	deps, rec := newTestDeps(src)
	a := NewAltar(deps)

	a.OnOpen(provider.Context{Screen: "altar"})
	a.ProcessKey(input.Key(input.SymEnter))
	assert.Equal(t, "Not enough amber", rec.Last())
	assert.Equal(t, 1, a.nav.Current().Len())
}
