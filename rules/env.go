package rules

import "github.com/nstehr/vimy/vimy-hero/model"

// VisitEnv is what a visit gate sees: the hero considering the visit and the
// player's economy. Its methods are callable from expr conditions.
type VisitEnv struct {
	Hero      model.Hero
	Resources model.Resources
	Heroes    int // heroes the player has on the map
}

func (e VisitEnv) Gold() int                 { return e.Resources[model.Gold] }
func (e VisitEnv) Gems() int                 { return e.Resources[model.Gems] }
func (e VisitEnv) Resource(name string) int { return e.Resources[name] }
func (e VisitEnv) Level() int                { return e.Hero.Level }
func (e VisitEnv) Mana() int                 { return e.Hero.Mana }
func (e VisitEnv) ManaLimit() int            { return e.Hero.ManaLimit }
func (e VisitEnv) HeroCount() int            { return e.Heroes }

// ArmyStrength is exposed for gates that scale with the hero's army.
func (e VisitEnv) ArmyStrength() int64 { return e.Hero.Strength }
