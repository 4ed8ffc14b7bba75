package model

// Resource names used as keys in Resources.
const (
	Gold    = "gold"
	Wood    = "wood"
	Ore     = "ore"
	Mercury = "mercury"
	Sulfur  = "sulfur"
	Crystal = "crystal"
	Gems    = "gems"
)

// Resources is an amount per resource name; missing keys count as zero.
type Resources map[string]int

// CanAfford returns true if every amount in cost is covered.
func (r Resources) CanAfford(cost Resources) bool {
	for res, n := range cost {
		if r[res] < n {
			return false
		}
	}
	return true
}

// Quest is a seer hut or quest guard assignment tracked by the player.
type Quest struct {
	ObjectID  int         `json:"objectId"`
	MinLevel  int         `json:"minLevel,omitempty"`
	Resources Resources   `json:"resources,omitempty"`
	Creatures map[int]int `json:"creatures,omitempty"` // creature id -> count
}

// Check reports whether hero h, with the player's resources res, fulfills
// the quest right now.
func (q Quest) Check(h *Hero, res Resources) bool {
	if h.Level < q.MinLevel {
		return false
	}
	if !res.CanAfford(q.Resources) {
		return false
	}
	for id, want := range q.Creatures {
		have := 0
		for _, s := range h.Slots {
			if s != nil && s.Creature.ID == id {
				have += s.Count
			}
		}
		if have < want {
			return false
		}
	}
	return true
}
