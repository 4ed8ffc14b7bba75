// Package capture turns candidate map objects and pathfinder routes into
// visit goals: which objects are worth a trip this turn, who goes, along which
// route, and what has to be cleared first.
package capture

import (
	"github.com/nstehr/vimy/vimy-hero/model"
	"github.com/nstehr/vimy/vimy-hero/observe"
	"github.com/nstehr/vimy/vimy-hero/plan"
	"github.com/nstehr/vimy/vimy-hero/rules"
)

// Pathfinder returns every known route to a tile; may be empty.
type Pathfinder interface {
	PathsTo(pos model.Pos) []plan.Path
}

type ThreatEstimator interface {
	EnemyCanKillAlongPath(p *plan.Path) bool
	IsSafeToVisit(h *model.Hero, army, danger int64) bool
}

// Clusterer buckets candidate objects by travel distance.
type Clusterer interface {
	NearbyObjects() []*model.Object
	FarObjects() []*model.Object
}

// LockRegistry is read-only here; the planner takes and releases locks.
type LockRegistry interface {
	ArePathHeroesLocked(p *plan.Path) bool
}

type Eligibility interface {
	ShouldVisit(h *model.Hero, obj *model.Object) bool
}

// Services bundles the collaborators of one planning pass. All of them are
// synchronous, read-only queries. Metrics may be nil.
type Services struct {
	Paths    Pathfinder
	Threats  ThreatEstimator
	Roles    rules.RoleClassifier
	Clusters Clusterer
	Locks    LockRegistry
	Oracle   Eligibility
	Metrics  *observe.Metrics
}

func (s Services) metrics() *observe.Metrics {
	if s.Metrics == nil {
		return observe.Nop()
	}
	return s.Metrics
}
