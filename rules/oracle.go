package rules

import (
	"github.com/nstehr/vimy/vimy-hero/model"
)

// World is the read-only game-rule view the oracle queries.
type World interface {
	// Quest returns the quest the player tracks for an object, if any.
	Quest(objectID int) (model.Quest, bool)
	QuestCompleted(q model.Quest, h *model.Hero) bool
	Resources() model.Resources
	// HasKey reports whether the player visited the keymaster of this color.
	HasKey(subID int) bool
	HeroCount() int
}

// Oracle decides whether a hero should visit an object at all, before any
// path is looked at.
type Oracle struct {
	World World
	Gates *Engine
	Roles RoleClassifier
}

// ShouldVisit first requires every visit gate registered for the object's
// kind, then evaluates the per-kind rules; the first matching kind decides.
// Kinds without a rule of their own fall through to the visited check.
func (o *Oracle) ShouldVisit(h *model.Hero, obj *model.Object) bool {
	if !o.gate(h, obj) {
		return false
	}

	switch obj.Kind {
	case model.Town, model.HeroObject:
		// never visit our own towns or heroes at random
		return obj.Owner != h.Owner

	case model.BorderGate:
		// gates we hold a quest for are opened on purpose, not while wandering
		_, tracked := o.World.Quest(obj.ID)
		return !tracked

	case model.BorderGuard:
		return o.World.HasKey(obj.SubID)

	case model.SeerHut, model.QuestGuard:
		q, tracked := o.World.Quest(obj.ID)
		if !tracked {
			return true // visiting reveals the quest
		}
		return o.World.QuestCompleted(q, h)

	case model.CreatureGenerator:
		if obj.Owner != h.Owner {
			return true // flag it
		}
		return o.canRecruit(h, obj)

	case model.HillFort:
		return h.CanUpgradeArmy()

	case model.MonolithOneWayIn, model.MonolithOneWayOut, model.MonolithTwoWay, model.Whirlpool:
		return false

	case model.TreeOfKnowledge:
		if o.Roles.Role(h) == RoleScout {
			return false
		}

	case model.MagicWell:
		return h.Mana < h.ManaLimit

	case model.Prison:
		return true // gated on the hero cap only

	case model.Boat:
		return false // the pathfinder embarks on its own

	case model.EyeOfMagi:
		return false // revisitable forever, never worth a trip
	}

	return !obj.WasVisited(h)
}

// gate evaluates the expr gates for the object's kind; ungated kinds pass.
func (o *Oracle) gate(h *model.Hero, obj *model.Object) bool {
	ok, _ := o.Gates.Permits(obj.Kind, VisitEnv{
		Hero:      *h,
		Resources: o.World.Resources(),
		Heroes:    o.World.HeroCount(),
	})
	return ok
}

// canRecruit reports whether the hero has room for and can pay for at least
// one creature the dwelling has in stock.
func (o *Oracle) canRecruit(h *model.Hero, obj *model.Object) bool {
	res := o.World.Resources()
	for _, level := range obj.Stock {
		if level.Available == 0 {
			continue
		}
		for _, c := range level.Creatures {
			if h.SlotFor(c.ID) != -1 && res.CanAfford(c.Cost) {
				return true
			}
		}
	}
	return false
}
