package sim

import (
	"fmt"

	"stormreader/internal/navigate"
	"stormreader/internal/provider"
)

// Items builds a fresh snapshot for a surface. Every call re-reads world
// state so adjustments show up on the next fetch.
func (s *Settlement) Items(ctx provider.Context) ([]navigate.Item, error) {
	switch ctx.Screen {
	case "popup":
		return s.popupItems(), nil
	case "embark:goods":
		return s.goodsItems(), nil
	case "embark:bonuses":
		return stringLeaves("bonus", s.bonuses), nil
	case "embark:caravan":
		return stringLeaves("member", s.caravan), nil
	case "villagers":
		return s.villagerItems(), nil
	case "altar":
		return s.altarItems(), nil
	case "seal":
		return s.sealItems(), nil
	case "seal:rewards":
		return s.rewardItems(), nil
	case "map:landmarks":
		return s.landmarkItems(), nil
	case "tooltip":
		return s.tooltipItems(), nil
	}
	return nil, fmt.Errorf("unknown screen %q", ctx.Screen)
}

// Perform mutates world state for an action and reports the spoken outcome.
func (s *Settlement) Perform(ctx provider.Context, payload interface{}, kind provider.ActionKind) (provider.Result, error) {
	switch kind {
	case provider.ActionToggle:
		return s.toggleOption(payload)
	case provider.ActionActivate:
		return s.activate(payload)
	case provider.ActionPurchase:
		return s.purchase(payload)
	case provider.ActionIncrease:
		return s.adjustGood(payload, 1)
	case provider.ActionDecrease:
		return s.adjustGood(payload, -1)
	case provider.ActionMove:
		return s.moveCursor(payload)
	case provider.ActionJump:
		return s.jumpCursor(payload)
	case provider.ActionConfirm:
		s.placing = false
		return provider.Result{OK: true, Code: fmt.Sprintf("Placed at %s", s.tileName(s.cx, s.cy))}, nil
	case provider.ActionCancel:
		s.placing = false
		return provider.Result{OK: true}, nil
	}
	return provider.Result{}, fmt.Errorf("unknown action %q", kind)
}

func (s *Settlement) popupItems() []navigate.Item {
	items := make([]navigate.Item, 0, len(s.optIDs)+1)
	for _, id := range s.optIDs {
		state := "off"
		if s.options[id] {
			state = "on"
		}
		items = append(items, navigate.ActionItem(id, optionLabel(id), state, string(provider.ActionToggle), id))
	}
	items = append(items, navigate.ActionItem("resume", "Resume", "", string(provider.ActionActivate), "resume"))
	return items
}

func optionLabel(id string) string {
	switch id {
	case "pause-on-events":
		return "Pause on events"
	case "auto-haul":
		return "Automatic hauling"
	case "notifications":
		return "Notifications"
	}
	return id
}

// goodsItems exposes each good as a drillable entry with its detail leaves
// and an adjustment payload.
func (s *Settlement) goodsItems() []navigate.Item {
	items := make([]navigate.Item, 0, len(s.goods))
	for _, g := range s.goods {
		items = append(items, navigate.Item{
			ID:    g.id,
			Label: g.label,
			Value: fmt.Sprintf("%d carried", g.carried),
			Kind:  navigate.KindBranch,
			Children: []navigate.Item{
				navigate.Leaf(g.id+":cost", "Cost", fmt.Sprintf("%d amber each", g.cost)),
				navigate.Leaf(g.id+":stock", "In stock", fmt.Sprintf("%d", g.stock)),
			},
			Payload: g.id,
		})
	}
	return items
}

func (s *Settlement) villagerItems() []navigate.Item {
	items := make([]navigate.Item, 0, len(s.villagers))
	for _, v := range s.villagers {
		items = append(items, navigate.Item{
			ID:    v.name,
			Label: v.name,
			Value: v.profession,
			Kind:  navigate.KindBranch,
			Children: []navigate.Item{
				navigate.Branch(v.name+":needs", "Needs", factLeaves(v.name+":needs", v.needs)),
				navigate.Branch(v.name+":status", "Status", factLeaves(v.name+":status", v.status)),
				navigate.Branch(v.name+":work", "Work", factLeaves(v.name+":work", v.work)),
			},
		})
	}
	return items
}

func (s *Settlement) altarItems() []navigate.Item {
	items := make([]navigate.Item, 0, len(s.offers)+1)
	items = append(items, navigate.Leaf("amber", "Amber", fmt.Sprintf("%d", s.amber)))
	for _, o := range s.offers {
		items = append(items, navigate.ActionItem(
			o.id, o.label, fmt.Sprintf("costs %d amber", o.cost),
			string(provider.ActionPurchase), o.id,
		))
	}
	return items
}

func (s *Settlement) sealItems() []navigate.Item {
	items := make([]navigate.Item, 0, len(s.sealStages)+1)
	for i, stage := range s.sealStages {
		items = append(items, navigate.Leaf(fmt.Sprintf("stage-%d", i+1), fmt.Sprintf("Stage %d", i+1), stage))
	}
	label := "Claim rewards"
	if s.sealClaimed {
		label = "Rewards claimed"
	}
	items = append(items, navigate.ActionItem("claim", label, "", string(provider.ActionActivate), "claim"))
	return items
}

// rewardItems reveals rewards over consecutive reads after a claim, the way
// the host's chest animation trickles them in. Reads before a claim see an
// empty list.
func (s *Settlement) rewardItems() []navigate.Item {
	if !s.sealClaimed {
		return nil
	}
	n := s.rewardReveal
	if n > len(s.rewards) {
		n = len(s.rewards)
	}
	if s.rewardReveal < len(s.rewards) {
		s.rewardReveal += 2
	}
	items := make([]navigate.Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, navigate.Leaf(fmt.Sprintf("reward-%d", i+1), s.rewards[i], ""))
	}
	return items
}

func (s *Settlement) landmarkItems() []navigate.Item {
	order := []string{"Structures", "Glades", "Resources"}
	byCategory := make(map[string][]navigate.Item, len(order))
	for _, lm := range s.landmarks {
		byCategory[lm.category] = append(byCategory[lm.category], navigate.ActionItem(
			lm.id, lm.label, "", string(provider.ActionJump), lm.id,
		))
	}
	items := make([]navigate.Item, 0, len(order))
	for _, cat := range order {
		children := byCategory[cat]
		if len(children) == 0 {
			continue
		}
		items = append(items, navigate.Branch("cat:"+cat, cat, children))
	}
	return items
}

func (s *Settlement) tooltipItems() []navigate.Item {
	items := make([]navigate.Item, 0, len(s.tooltip))
	for i, text := range s.tooltip {
		items = append(items, navigate.Leaf(fmt.Sprintf("para-%d", i+1), text, text))
	}
	return items
}

func (s *Settlement) toggleOption(payload interface{}) (provider.Result, error) {
	id, ok := payload.(string)
	if !ok {
		return provider.Result{}, fmt.Errorf("toggle payload %T", payload)
	}
	if id == "resume" {
		return provider.Result{OK: true, Code: "Resumed"}, nil
	}
	if _, ok := s.options[id]; !ok {
		return provider.Result{OK: false, Code: "No such option"}, nil
	}
	s.options[id] = !s.options[id]
	state := "off"
	if s.options[id] {
		state = "on"
	}
	return provider.Result{OK: true, Code: fmt.Sprintf("%s %s", optionLabel(id), state)}, nil
}

func (s *Settlement) activate(payload interface{}) (provider.Result, error) {
	id, _ := payload.(string)
	switch id {
	case "claim":
		if s.sealClaimed {
			return provider.Result{OK: false, Code: "Already claimed"}, nil
		}
		s.sealClaimed = true
		s.rewardReveal = 0
		return provider.Result{OK: true, Code: "Claiming rewards"}, nil
	case "resume":
		return provider.Result{OK: true, Code: "Resumed"}, nil
	}
	return provider.Result{OK: true}, nil
}

func (s *Settlement) purchase(payload interface{}) (provider.Result, error) {
	id, ok := payload.(string)
	if !ok {
		return provider.Result{}, fmt.Errorf("purchase payload %T", payload)
	}
	for i, o := range s.offers {
		if o.id != id {
			continue
		}
		if s.amber < o.cost {
			return provider.Result{OK: false, Code: "Not enough amber"}, nil
		}
		s.amber -= o.cost
		s.offers = append(s.offers[:i], s.offers[i+1:]...)
		return provider.Result{OK: true, Code: fmt.Sprintf("%s bought, %d amber left", o.label, s.amber)}, nil
	}
	return provider.Result{OK: false, Code: "Offer gone"}, nil
}

func (s *Settlement) adjustGood(payload interface{}, delta int) (provider.Result, error) {
	id, ok := payload.(string)
	if !ok {
		return provider.Result{}, fmt.Errorf("adjust payload %T", payload)
	}
	for i := range s.goods {
		g := &s.goods[i]
		if g.id != id {
			continue
		}
		next := g.carried + delta
		if next < 0 {
			return provider.Result{OK: false, Code: fmt.Sprintf("No %s carried", g.label)}, nil
		}
		if next > g.stock {
			return provider.Result{OK: false, Code: fmt.Sprintf("No more %s in stock", g.label)}, nil
		}
		g.carried = next
		return provider.Result{OK: true, Code: fmt.Sprintf("%s, %d", g.label, g.carried)}, nil
	}
	return provider.Result{OK: false, Code: "No such good"}, nil
}

func (s *Settlement) moveCursor(payload interface{}) (provider.Result, error) {
	direction, _ := payload.(string)
	x, y := s.cx, s.cy
	switch direction {
	case "north":
		y--
	case "south":
		y++
	case "west":
		x--
	case "east":
		x++
	case "":
		// Re-read the tile under the cursor.
	default:
		return provider.Result{}, fmt.Errorf("unknown direction %q", direction)
	}
	if y < 0 || y >= len(s.grid) || x < 0 || x >= len(s.grid[y]) {
		return provider.Result{OK: false, Code: "Edge of map"}, nil
	}
	s.cx, s.cy = x, y
	return provider.Result{OK: true, Code: s.describeTile(x, y)}, nil
}

func (s *Settlement) jumpCursor(payload interface{}) (provider.Result, error) {
	id, ok := payload.(string)
	if !ok {
		return provider.Result{}, fmt.Errorf("jump payload %T", payload)
	}
	for _, lm := range s.landmarks {
		if lm.id != id {
			continue
		}
		s.cx, s.cy = lm.x, lm.y
		return provider.Result{OK: true, Code: fmt.Sprintf("%s, %s", lm.label, s.describeTile(lm.x, lm.y))}, nil
	}
	return provider.Result{OK: false, Code: "Landmark gone"}, nil
}

func (s *Settlement) tileName(x, y int) string {
	if y < 0 || y >= len(s.grid) || x < 0 || x >= len(s.grid[y]) {
		return "Void"
	}
	return s.grid[y][x]
}

func (s *Settlement) describeTile(x, y int) string {
	return fmt.Sprintf("%s, %d, %d", s.tileName(x, y), x+1, y+1)
}

func factLeaves(prefix string, facts []villagerFact) []navigate.Item {
	items := make([]navigate.Item, 0, len(facts))
	for i, f := range facts {
		items = append(items, navigate.Leaf(fmt.Sprintf("%s:%d", prefix, i), f.label, f.value))
	}
	return items
}

func stringLeaves(prefix string, values []string) []navigate.Item {
	items := make([]navigate.Item, 0, len(values))
	for i, v := range values {
		items = append(items, navigate.Leaf(fmt.Sprintf("%s-%d", prefix, i+1), v, ""))
	}
	return items
}
