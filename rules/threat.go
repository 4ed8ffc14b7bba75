package rules

import (
	"github.com/nstehr/vimy/vimy-hero/model"
	"github.com/nstehr/vimy/vimy-hero/plan"
)

// Threats estimates enemy danger from the client's danger grid.
type Threats struct {
	Grid      *model.DangerGrid // nil means no known threats
	SafeRatio float64           // army must exceed danger by this factor
}

// EnemyCanKillAlongPath returns true if an enemy stronger than the path's
// army can reach any tile of the route no later than our hero does.
func (t *Threats) EnemyCanKillAlongPath(p *plan.Path) bool {
	if t.Grid == nil {
		return false
	}
	for _, n := range p.Nodes {
		c := t.Grid.AtMapPos(n.Pos)
		if c.Strength > 0 && c.Turns <= n.Turns && c.Strength > p.ArmyStrength {
			return true
		}
	}
	return false
}

// IsSafeToVisit compares the army a hero brings with the danger guarding the
// destination.
func (t *Threats) IsSafeToVisit(h *model.Hero, army, danger int64) bool {
	if danger <= 0 {
		return true
	}
	ratio := t.SafeRatio
	if ratio < 1 {
		ratio = 1
	}
	return float64(army)/ratio > float64(danger)
}
