package plan

import (
	"fmt"
	"strings"

	"github.com/nstehr/vimy/vimy-hero/model"
)

// Kind identifies a goal variant.
type Kind string

const (
	KindInvalid          Kind = "invalid"
	KindExecuteHeroChain Kind = "execute_hero_chain"
	KindComposition      Kind = "composition"
	KindPrerequisite     Kind = "prerequisite"
)

// Goal is a closed union: Invalid, *ExecuteHeroChain, *Composition and
// *Prerequisite are the only implementations. Consumers switch on the
// concrete type.
type Goal interface {
	Kind() Kind
	String() string
	isGoal()
}

// Invalid marks a slot with no actionable plan. It never leaves a behavior.
type Invalid struct{}

func (Invalid) Kind() Kind     { return KindInvalid }
func (Invalid) String() string { return "invalid" }
func (Invalid) isGoal()        {}

// IsInvalid treats nil as invalid too.
func IsInvalid(g Goal) bool {
	return g == nil || g.Kind() == KindInvalid
}

// ExecuteHeroChain sends the path's hero (and its chain) along Path to visit
// Object. ClosestWayRatio is cheapest accepted cost / this cost for the same
// object, 1 until annotated.
type ExecuteHeroChain struct {
	Path            Path
	Object          *model.Object // nil when the path targets a bare tile
	ClosestWayRatio float64
}

func NewExecuteHeroChain(p Path, obj *model.Object) *ExecuteHeroChain {
	return &ExecuteHeroChain{Path: p, Object: obj, ClosestWayRatio: 1}
}

func (*ExecuteHeroChain) Kind() Kind { return KindExecuteHeroChain }
func (*ExecuteHeroChain) isGoal()    {}

func (g *ExecuteHeroChain) String() string {
	target := g.Path.Target().String()
	if g.Object != nil {
		target = g.Object.String()
	}
	return fmt.Sprintf("execute chain %s to %s (ratio %.2f)", g.Path.Hero, target, g.ClosestWayRatio)
}

// Composition runs its steps in order.
type Composition struct {
	Steps []Goal
}

// Then appends g as the next step.
func (c *Composition) Then(g Goal) *Composition {
	c.Steps = append(c.Steps, g)
	return c
}

func (*Composition) Kind() Kind { return KindComposition }
func (*Composition) isGoal()    {}

func (c *Composition) String() string {
	parts := make([]string, len(c.Steps))
	for i, s := range c.Steps {
		parts[i] = s.String()
	}
	return "composition [" + strings.Join(parts, " then ") + "]"
}

// Prerequisite is a sub-action a hero must perform before a blocked path can
// be walked, e.g. handing in a quest or opening a gate.
type Prerequisite struct {
	Action   string
	Hero     *model.Hero
	ObjectID int
}

func (*Prerequisite) Kind() Kind { return KindPrerequisite }
func (*Prerequisite) isGoal()    {}

func (p *Prerequisite) String() string {
	return fmt.Sprintf("%s by %s at object %d", p.Action, p.Hero, p.ObjectID)
}
