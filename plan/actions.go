package plan

import (
	"fmt"

	"github.com/nstehr/vimy/vimy-hero/model"
)

// SpecialAction is a path step that cannot be executed directly. Decompose
// returns what the hero must do first, or Invalid if nothing can unblock it.
type SpecialAction interface {
	Decompose(h *model.Hero) Goal
	String() string
}

// Prerequisite action names.
const (
	ActionCompleteQuest = "complete_quest"
	ActionClearGarrison = "clear_garrison"
	ActionOpenGate      = "open_gate"
)

// QuestAction blocks a path at a quest guard.
type QuestAction struct {
	ObjectID  int
	Quest     model.Quest
	Tracked   bool            // false when the player has not seen the quest yet
	Resources model.Resources // player resources at snapshot time
}

func (a QuestAction) Decompose(h *model.Hero) Goal {
	if !a.Tracked || !a.Quest.Check(h, a.Resources) {
		return Invalid{}
	}
	return &Prerequisite{Action: ActionCompleteQuest, Hero: h, ObjectID: a.ObjectID}
}

func (a QuestAction) String() string { return fmt.Sprintf("quest at object %d", a.ObjectID) }

// GarrisonAction blocks a path at a guarded garrison.
type GarrisonAction struct {
	ObjectID  int
	Strength  int64
	SafeRatio float64
}

func (a GarrisonAction) Decompose(h *model.Hero) Goal {
	ratio := a.SafeRatio
	if ratio <= 0 {
		ratio = 1
	}
	if float64(h.Strength)/ratio <= float64(a.Strength) {
		return Invalid{}
	}
	return &Prerequisite{Action: ActionClearGarrison, Hero: h, ObjectID: a.ObjectID}
}

func (a GarrisonAction) String() string {
	return fmt.Sprintf("garrison at object %d (strength %d)", a.ObjectID, a.Strength)
}

// GateAction blocks a path at a border gate that needs a keymaster key.
type GateAction struct {
	ObjectID int
	HasKey   bool
}

func (a GateAction) Decompose(h *model.Hero) Goal {
	if !a.HasKey {
		return Invalid{}
	}
	return &Prerequisite{Action: ActionOpenGate, Hero: h, ObjectID: a.ObjectID}
}

func (a GateAction) String() string { return fmt.Sprintf("border gate at object %d", a.ObjectID) }
