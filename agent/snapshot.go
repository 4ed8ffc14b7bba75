package agent

import (
	"log/slog"

	"github.com/nstehr/vimy/vimy-hero/capture"
	"github.com/nstehr/vimy/vimy-hero/config"
	"github.com/nstehr/vimy/vimy-hero/model"
	"github.com/nstehr/vimy/vimy-hero/observe"
	"github.com/nstehr/vimy/vimy-hero/plan"
	"github.com/nstehr/vimy/vimy-hero/rules"
)

// pathIndex serves the snapshot's pathfinder results by target tile.
type pathIndex map[model.Pos][]plan.Path

func (p pathIndex) PathsTo(pos model.Pos) []plan.Path { return p[pos] }

// indexPaths resolves wire paths into plan.Path values. Paths whose hero is
// missing from the snapshot are dropped.
func indexPaths(ws *model.WorldState, policy rules.Policy) pathIndex {
	idx := make(pathIndex)
	for _, info := range ws.Paths {
		hero := ws.Hero(info.HeroID)
		if hero == nil {
			slog.Warn("path for unknown hero dropped", "hero", info.HeroID, "target", info.Target.String())
			continue
		}
		idx[info.Target] = append(idx[info.Target], plan.Path{
			Hero:          hero,
			ChainHeroIDs:  info.ChainHeroIDs,
			Nodes:         info.Nodes,
			Cost:          info.Cost,
			ArmyStrength:  info.ArmyStrength,
			Danger:        info.Danger,
			ArmyLoss:      info.ArmyLoss,
			ExchangeCount: info.ExchangeCount,
			Blocked:       blockedAction(ws, info.Blocked, policy),
		})
	}
	return idx
}

// blockedAction turns the pathfinder's blocked marker into a special action.
// Unknown kinds cannot be unblocked and decompose to Invalid.
func blockedAction(ws *model.WorldState, info *model.BlockedInfo, policy rules.Policy) plan.SpecialAction {
	if info == nil {
		return nil
	}
	switch info.Kind {
	case model.BlockedQuest:
		q, tracked := ws.Quest(info.ObjectID)
		return plan.QuestAction{ObjectID: info.ObjectID, Quest: q, Tracked: tracked, Resources: ws.Resources}
	case model.BlockedGarrison:
		return plan.GarrisonAction{ObjectID: info.ObjectID, Strength: info.Strength, SafeRatio: policy.SafeAttackRatio}
	case model.BlockedGate:
		hasKey := false
		if obj := ws.Object(info.ObjectID); obj != nil {
			hasKey = rules.SnapshotWorld{State: ws}.HasKey(obj.SubID)
		}
		return plan.GateAction{ObjectID: info.ObjectID, HasKey: hasKey}
	}
	slog.Warn("unknown blocked action", "kind", info.Kind, "object", info.ObjectID)
	return plan.GateAction{ObjectID: info.ObjectID}
}

// newServices wires the snapshot-backed collaborators for one pass.
func newServices(ws *model.WorldState, policy rules.Policy, engine *rules.Engine, met *observe.Metrics) capture.Services {
	paths := indexPaths(ws, policy)
	roles := rules.ClassifyRoles(ws.OwnHeroes(), policy.MainHeroes)

	grid := model.NewDangerGrid(ws.Danger)
	if grid != nil {
		slog.Debug("danger grid loaded", "cols", grid.Cols, "rows", grid.Rows, "levels", grid.Levels, "maxStrength", grid.MaxStrength())
	} else if ws.Danger != nil {
		slog.Warn("danger grid dimensions do not match cells; assuming no threats")
	}

	return capture.Services{
		Paths:    paths,
		Threats:  &rules.Threats{Grid: grid, SafeRatio: policy.SafeAttackRatio},
		Roles:    roles,
		Clusters: rules.ClusterObjects(ws.Objects, paths, policy.NearbyCost),
		Locks:    rules.NewLocks(ws.LockedHeroes, ws.Heroes),
		Oracle: &rules.Oracle{
			World: rules.SnapshotWorld{State: ws},
			Gates: engine,
			Roles: roles,
		},
		Metrics: met,
	}
}

type namedBehavior struct {
	name     string
	behavior *capture.CaptureObjects
}

// buildBehaviors instantiates the configured behaviors against the snapshot
// and drops ones equal to an earlier behavior.
func buildBehaviors(cfgs []config.BehaviorConfig, ws *model.WorldState) []namedBehavior {
	var out []namedBehavior
	for _, c := range cfgs {
		var b *capture.CaptureObjects
		if c.Specific() {
			var objs []*model.Object
			for _, id := range c.Objects {
				if obj := ws.Object(id); obj != nil {
					objs = append(objs, obj)
				}
			}
			b = capture.ForObjects(objs...)
		} else {
			b = capture.ForKinds(c.Kinds, c.SubIDs)
		}

		dup := false
		for _, prev := range out {
			if prev.behavior.Equal(b) {
				slog.Debug("duplicate behavior skipped", "behavior", c.Name, "duplicateOf", prev.name)
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, namedBehavior{name: c.Name, behavior: b})
		}
	}
	return out
}
