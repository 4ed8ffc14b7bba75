package model

import "fmt"

// HeroSlots is the number of army slots a hero carries.
const HeroSlots = 7

// Pos is a map tile; Z is the level (0 surface, 1 underground).
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

func (p Pos) String() string { return fmt.Sprintf("(%d %d %d)", p.X, p.Y, p.Z) }

// Creature is a recruitable unit type.
type Creature struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Cost     Resources `json:"cost"`
	Upgrades []int     `json:"upgrades,omitempty"`
}

// Stack is one occupied army slot.
type Stack struct {
	Creature Creature `json:"creature"`
	Count    int      `json:"count"`
}

type Hero struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Owner     string   `json:"owner"`
	Pos       Pos      `json:"pos"`
	Level     int      `json:"level"`
	Mana      int      `json:"mana"`
	ManaLimit int      `json:"manaLimit"`
	Strength  int64    `json:"strength"` // army strength
	Slots     []*Stack `json:"slots"`    // len <= HeroSlots, nil entries are free
}

// SlotFor returns the slot that can take creature c: the slot already holding
// it, otherwise the first free one. Returns -1 when the army is full.
func (h *Hero) SlotFor(c int) int {
	for i, s := range h.Slots {
		if s != nil && s.Creature.ID == c {
			return i
		}
	}
	for i := 0; i < HeroSlots; i++ {
		if i >= len(h.Slots) || h.Slots[i] == nil {
			return i
		}
	}
	return -1
}

// CanUpgradeArmy reports whether any stack has an upgrade available.
func (h *Hero) CanUpgradeArmy() bool {
	for _, s := range h.Slots {
		if s != nil && len(s.Creature.Upgrades) > 0 {
			return true
		}
	}
	return false
}

func (h *Hero) String() string { return fmt.Sprintf("%s#%d", h.Name, h.ID) }
