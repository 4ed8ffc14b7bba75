package rules

import (
	"cmp"
	"slices"

	"github.com/nstehr/vimy/vimy-hero/model"
)

// HeroRole classifies a hero's risk tolerance.
type HeroRole string

const (
	RoleMain  HeroRole = "main"  // carries the player's army
	RoleScout HeroRole = "scout" // explores and grabs cheap objects
)

// RoleClassifier answers which role a hero plays this turn.
type RoleClassifier interface {
	Role(h *model.Hero) HeroRole
}

// Roles is the per-pass role registry: the strongest heroes are main, the
// rest are scouts.
type Roles struct {
	roles map[int]HeroRole
}

// ClassifyRoles ranks heroes by army strength (ties by id) and marks the top
// mainCount as RoleMain.
func ClassifyRoles(heroes []model.Hero, mainCount int) *Roles {
	ranked := make([]model.Hero, len(heroes))
	copy(ranked, heroes)
	slices.SortFunc(ranked, func(a, b model.Hero) int {
		if c := cmp.Compare(b.Strength, a.Strength); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	r := &Roles{roles: make(map[int]HeroRole, len(ranked))}
	for i, h := range ranked {
		if i < mainCount {
			r.roles[h.ID] = RoleMain
		} else {
			r.roles[h.ID] = RoleScout
		}
	}
	return r
}

// Role returns the hero's role. Unknown heroes are treated as main so the
// scout heuristics never fire on them.
func (r *Roles) Role(h *model.Hero) HeroRole {
	if role, ok := r.roles[h.ID]; ok {
		return role
	}
	return RoleMain
}
