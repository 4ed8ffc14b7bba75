package rules

import (
	"github.com/nstehr/vimy/vimy-hero/model"
	"github.com/nstehr/vimy/vimy-hero/plan"
)

// Locks records heroes the client reports as committed to in-flight plans.
// The planner owns locking; behaviors only ask whether a path would
// double-commit a hero.
type Locks struct {
	held map[int]bool
}

// NewLocks builds the lock set for one snapshot. Ids of heroes missing from
// the snapshot are dropped.
func NewLocks(locked []int, heroes []model.Hero) *Locks {
	alive := makeHeroIDSet(heroes)
	l := &Locks{held: make(map[int]bool, len(locked))}
	for _, id := range locked {
		if alive[id] {
			l.held[id] = true
		}
	}
	return l
}

func (l *Locks) IsLocked(heroID int) bool { return l.held[heroID] }

// ArePathHeroesLocked returns true if the path's hero or any chain hero is
// held by another plan.
func (l *Locks) ArePathHeroesLocked(p *plan.Path) bool {
	for _, id := range p.HeroIDs() {
		if l.IsLocked(id) {
			return true
		}
	}
	return false
}

func makeHeroIDSet(heroes []model.Hero) map[int]bool {
	s := make(map[int]bool, len(heroes))
	for _, h := range heroes {
		s[h.ID] = true
	}
	return s
}
