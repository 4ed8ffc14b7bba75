package model

import (
	"fmt"
	"slices"
)

// ObjectKind tags a map object. The set is closed; the client sends one of
// these names for every visitable object.
type ObjectKind string

const (
	Town               ObjectKind = "town"
	HeroObject         ObjectKind = "hero"
	BorderGate         ObjectKind = "border_gate"
	BorderGuard        ObjectKind = "border_guard"
	SeerHut            ObjectKind = "seer_hut"
	QuestGuard         ObjectKind = "quest_guard"
	CreatureGenerator  ObjectKind = "creature_generator"
	HillFort           ObjectKind = "hill_fort"
	MonolithOneWayIn   ObjectKind = "monolith_one_way_entrance"
	MonolithOneWayOut  ObjectKind = "monolith_one_way_exit"
	MonolithTwoWay     ObjectKind = "monolith_two_way"
	Whirlpool          ObjectKind = "whirlpool"
	SchoolOfMagic      ObjectKind = "school_of_magic"
	SchoolOfWar        ObjectKind = "school_of_war"
	LibraryOfEnlighten ObjectKind = "library_of_enlightenment"
	TreeOfKnowledge    ObjectKind = "tree_of_knowledge"
	MagicWell          ObjectKind = "magic_well"
	Prison             ObjectKind = "prison"
	Tavern             ObjectKind = "tavern"
	Boat               ObjectKind = "boat"
	EyeOfMagi          ObjectKind = "eye_of_magi"
	Mine               ObjectKind = "mine"
	ResourcePile       ObjectKind = "resource"
	Artifact           ObjectKind = "artifact"
	TreasureChest      ObjectKind = "treasure_chest"
	Keymaster          ObjectKind = "keymaster"
)

// DwellingStock is one recruitment row of a dwelling: how many creatures are
// available and which creature types they can be bought as.
type DwellingStock struct {
	Available int        `json:"available"`
	Creatures []Creature `json:"creatures"`
}

type Object struct {
	ID               int             `json:"id"`
	Kind             ObjectKind      `json:"kind"`
	SubID            int             `json:"subId"`
	Name             string          `json:"name"`
	Owner            string          `json:"owner"` // empty when neutral
	Pos              Pos             `json:"pos"`   // visitable tile
	VisitedBy        []int           `json:"visitedBy,omitempty"`
	VisitedByPlayers []string        `json:"visitedByPlayers,omitempty"`
	Stock            []DwellingStock `json:"stock,omitempty"`
}

// WasVisited reports whether h (or h's player, for player-wide objects)
// already visited the object.
func (o *Object) WasVisited(h *Hero) bool {
	return slices.Contains(o.VisitedBy, h.ID) || slices.Contains(o.VisitedByPlayers, h.Owner)
}

func (o *Object) String() string {
	name := o.Name
	if name == "" {
		name = string(o.Kind)
	}
	return fmt.Sprintf("%s#%d %s", name, o.ID, o.Pos)
}
