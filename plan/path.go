// Package plan holds the values a planning pass produces and consumes: paths
// borrowed from the pathfinder and the goals handed to the executor.
package plan

import (
	"fmt"

	"github.com/nstehr/vimy/vimy-hero/model"
)

// Path is one pathfinder route from a hero to a tile. Paths live for a single
// planning pass and are never modified once built.
type Path struct {
	Hero          *model.Hero
	ChainHeroIDs  []int // heroes handing over the army along the way
	Nodes         []model.PathNode
	Cost          float64 // movement cost
	ArmyStrength  int64   // army carried when arriving
	Danger        int64
	ArmyLoss      int64
	ExchangeCount int
	Blocked       SpecialAction // first action that cannot run directly, or nil
}

// HeroIDs lists every hero the path commits, starting with the target hero.
func (p *Path) HeroIDs() []int {
	ids := make([]int, 0, 1+len(p.ChainHeroIDs))
	if p.Hero != nil {
		ids = append(ids, p.Hero.ID)
	}
	return append(ids, p.ChainHeroIDs...)
}

// Target returns the last tile of the route.
func (p *Path) Target() model.Pos {
	if len(p.Nodes) == 0 {
		if p.Hero != nil {
			return p.Hero.Pos
		}
		return model.Pos{}
	}
	return p.Nodes[len(p.Nodes)-1].Pos
}

func (p *Path) String() string {
	hero := "<none>"
	if p.Hero != nil {
		hero = p.Hero.String()
	}
	return fmt.Sprintf("%s -> %s cost %.1f danger %d exchanges %d", hero, p.Target(), p.Cost, p.Danger, p.ExchangeCount)
}
