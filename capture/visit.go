package capture

import (
	"context"
	"log/slog"

	"github.com/nstehr/vimy/vimy-hero/model"
	"github.com/nstehr/vimy/vimy-hero/observe"
	"github.com/nstehr/vimy/vimy-hero/plan"
	"github.com/nstehr/vimy/vimy-hero/rules"
)

// zeroCost stands in for non-positive route costs so that a hero already
// standing on the target still yields ratios inside (0, 1].
const zeroCost = 1e-6

// visitGoals returns one goal per path, in path order. Rejected paths leave an
// Invalid placeholder in their slot; the caller prunes them.
func visitGoals(ctx context.Context, svc Services, paths []plan.Path, obj *model.Object) []plan.Goal {
	met := svc.metrics()
	tasks := make([]plan.Goal, 0, len(paths))
	var ways []*plan.ExecuteHeroChain

	for i := range paths {
		path := &paths[i]
		tasks = append(tasks, plan.Invalid{})
		slot := len(tasks) - 1

		slog.Debug("path found", "path", path.String())

		if svc.Threats.EnemyCanKillAlongPath(path) {
			slog.Debug("ignore path: hero can be killed by enemy", "hero", path.Hero.ID, "army", path.ArmyStrength)
			met.RecordRejection(ctx, observe.RejectEnemyLethal)
			continue
		}

		if obj != nil && !svc.Oracle.ShouldVisit(path.Hero, obj) {
			met.RecordRejection(ctx, observe.RejectIneligible)
			continue
		}

		hero := path.Hero
		danger := path.Danger

		// a scout takes the plain route to a harmless object, never a relay
		if svc.Roles.Role(hero) == rules.RoleScout && danger == 0 && path.ExchangeCount > 1 {
			met.RecordRejection(ctx, observe.RejectScoutExchange)
			continue
		}

		if path.Blocked != nil {
			sub := path.Blocked.Decompose(hero)
			slog.Debug("decomposing special action", "action", path.Blocked.String(), "result", sub.String())

			if plan.IsInvalid(sub) {
				met.RecordRejection(ctx, observe.RejectUnresolvedBlock)
				continue
			}
			tasks[slot] = (&plan.Composition{}).
				Then(sub).
				Then(plan.NewExecuteHeroChain(*path, obj))
			continue
		}

		isSafe := svc.Threats.IsSafeToVisit(hero, path.ArmyStrength, danger)
		slog.Debug("visit safety",
			"safe", isSafe,
			"target", describeTarget(path, obj),
			"hero", hero.String(),
			"army", path.ArmyStrength,
			"danger", danger,
			"armyLoss", path.ArmyLoss,
		)
		if !isSafe {
			met.RecordRejection(ctx, observe.RejectUnsafe)
			continue
		}

		if svc.Locks.ArePathHeroesLocked(path) {
			met.RecordRejection(ctx, observe.RejectLocked)
			continue
		}

		way := plan.NewExecuteHeroChain(*path, obj)
		ways = append(ways, way)
		tasks[slot] = way
	}

	annotateClosestWay(ways)
	return tasks
}

// annotateClosestWay sets every way's ratio to cheapest cost / its own cost.
// ways holds only direct, unlocked visits to a single object.
func annotateClosestWay(ways []*plan.ExecuteHeroChain) {
	if len(ways) == 0 {
		return
	}
	cheapest := ratioCost(ways[0])
	for _, w := range ways[1:] {
		cheapest = min(cheapest, ratioCost(w))
	}
	for _, w := range ways {
		w.ClosestWayRatio = cheapest / ratioCost(w)
	}
}

func ratioCost(w *plan.ExecuteHeroChain) float64 {
	if w.Path.Cost <= 0 {
		return zeroCost
	}
	return w.Path.Cost
}

func describeTarget(p *plan.Path, obj *model.Object) string {
	if obj != nil {
		return obj.String()
	}
	return p.Target().String()
}
