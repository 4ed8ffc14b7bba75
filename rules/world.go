package rules

import (
	"slices"

	"github.com/nstehr/vimy/vimy-hero/model"
)

// SnapshotWorld answers World queries from a client snapshot.
type SnapshotWorld struct {
	State *model.WorldState
}

func (w SnapshotWorld) Quest(objectID int) (model.Quest, bool) {
	return w.State.Quest(objectID)
}

func (w SnapshotWorld) QuestCompleted(q model.Quest, h *model.Hero) bool {
	return q.Check(h, w.State.Resources)
}

func (w SnapshotWorld) Resources() model.Resources { return w.State.Resources }

func (w SnapshotWorld) HasKey(subID int) bool { return slices.Contains(w.State.Keys, subID) }

// HeroCount counts the player's own heroes; allied heroes in the snapshot do
// not take a slot.
func (w SnapshotWorld) HeroCount() int { return len(w.State.OwnHeroes()) }
