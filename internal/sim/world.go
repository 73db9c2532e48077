// Package sim is the scripted settlement the harness runs against: a small,
// deterministic stand-in for the host application's object graph that
// implements the provider contract for every overlay surface.
package sim

// good is an embark or trade resource with a carried quantity and a stock cap.
type good struct {
	id      string
	label   string
	carried int
	stock   int
	cost    int
}

// villagerFact is one spoken detail under a villager aspect.
type villagerFact struct {
	label string
	value string
}

// villager holds the roster entry and its three aspects.
type villager struct {
	name       string
	profession string
	needs      []villagerFact
	status     []villagerFact
	work       []villagerFact
}

// offer is a purchasable altar effect.
type offer struct {
	id    string
	label string
	cost  int
}

// landmark is a map feature the scan list can jump to.
type landmark struct {
	id       string
	label    string
	category string
	x, y     int
}

// Settlement is the mutable world state. Single-threaded, like the core it
// feeds.
type Settlement struct {
	goods   []good
	bonuses []string
	caravan []string

	villagers []villager
	offers    []offer
	amber     int

	options map[string]bool
	optIDs  []string

	tooltip []string

	grid      [][]string
	cx, cy    int
	placing   bool
	landmarks []landmark

	sealStages   []string
	sealClaimed  bool
	rewardReveal int
	rewards      []string
}

// NewSettlement builds the scripted world the harness demos run on.
func NewSettlement() *Settlement {
	s := &Settlement{
		goods: []good{
			{id: "wood", label: "Wood", carried: 20, stock: 60, cost: 2},
			{id: "provisions", label: "Provisions", carried: 15, stock: 40, cost: 3},
			{id: "tools", label: "Tools", carried: 5, stock: 12, cost: 6},
			{id: "parts", label: "Parts", carried: 0, stock: 8, cost: 9},
		},
		bonuses: []string{"Resilient caravan", "Extra sacks", "Swift scouts"},
		caravan: []string{"Harvester", "Trapper", "Mason"},
		villagers: []villager{
			{
				name: "Moira", profession: "Woodcutter",
				needs:  []villagerFact{{"Housing", "sheltered"}, {"Food", "satisfied"}, {"Leisure", "wanting"}},
				status: []villagerFact{{"Resolve", "14"}, {"Mood", "content"}},
				work:   []villagerFact{{"Workplace", "Woodcutters' Camp"}, {"Shift", "day"}},
			},
			{
				name: "Bram", profession: "Cook",
				needs:  []villagerFact{{"Housing", "homeless"}, {"Food", "satisfied"}},
				status: []villagerFact{{"Resolve", "9"}, {"Mood", "restless"}},
				work:   []villagerFact{{"Workplace", "Field Kitchen"}, {"Shift", "day"}},
			},
			{
				name: "Sable", profession: "Scout",
				needs:  []villagerFact{{"Housing", "sheltered"}, {"Food", "hungry"}},
				status: []villagerFact{{"Resolve", "17"}, {"Mood", "eager"}},
				work:   []villagerFact{{"Workplace", "Scout Lodge"}, {"Shift", "night"}},
			},
		},
		offers: []offer{
			{id: "haste", label: "Haste of the Forest", cost: 4},
			{id: "plenty", label: "Season of Plenty", cost: 7},
			{id: "embers", label: "Warming Embers", cost: 5},
		},
		amber: 10,
		options: map[string]bool{
			"pause-on-events": true,
			"auto-haul":       false,
			"notifications":   true,
		},
		optIDs:  []string{"pause-on-events", "auto-haul", "notifications"},
		tooltip: []string{
			"Welcome to the settlement. The hearth keeps the storm at bay.",
			"Assign villagers to camps to gather wood and food.",
			"Deliver goods to the hearth before the seal weakens.",
		},
		grid: [][]string{
			{"Hearth", "Forest", "Forest", "Marsh"},
			{"Road", "Clearing", "Forest", "Ruins"},
			{"Road", "Field", "Glade", "Forest"},
			{"Camp", "Field", "Forest", "Spring"},
		},
		landmarks: []landmark{
			{id: "hearth", label: "Ancient Hearth", category: "Structures", x: 0, y: 0},
			{id: "camp", label: "Woodcutters' Camp", category: "Structures", x: 0, y: 3},
			{id: "glade", label: "Hidden Glade", category: "Glades", x: 2, y: 2},
			{id: "ruins", label: "Flooded Ruins", category: "Glades", x: 3, y: 1},
			{id: "spring", label: "Crystal Spring", category: "Resources", x: 3, y: 3},
		},
		sealStages: []string{"Calm", "Storm approaches", "Sealed"},
		rewards:    []string{"Amber cache", "Blueprint: Kiln"},
	}
	return s
}
