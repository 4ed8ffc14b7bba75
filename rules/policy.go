package rules

import "github.com/nstehr/vimy/vimy-hero/model"

// Policy holds the tunable thresholds behind the visit gates and the
// snapshot-backed collaborators. The compiler turns it into expr rules.
type Policy struct {
	SchoolGold      int     `yaml:"school_gold" json:"school_gold"`
	LibraryLevel    int     `yaml:"library_level" json:"library_level"`
	TreeGold        int     `yaml:"tree_gold" json:"tree_gold"`
	TreeGems        int     `yaml:"tree_gems" json:"tree_gems"`
	HeroGoldCost    int     `yaml:"hero_gold_cost" json:"hero_gold_cost"`
	MaxHeroes       int     `yaml:"max_heroes" json:"max_heroes"`
	SafeAttackRatio float64 `yaml:"safe_attack_ratio" json:"safe_attack_ratio"`
	MainHeroes      int     `yaml:"main_heroes" json:"main_heroes"`
	NearbyCost      float64 `yaml:"nearby_cost" json:"nearby_cost"` // movement points; closer objects are "nearby"

	// Gates are extra visit gates written by hand in the config.
	Gates []GateSpec `yaml:"gates" json:"gates,omitempty"`
}

// GateSpec is a hand-written visit gate: Condition is an expr program over
// VisitEnv that must hold before heroes visit objects of Kind.
type GateSpec struct {
	Name      string           `yaml:"name" json:"name"`
	Kind      model.ObjectKind `yaml:"kind" json:"kind"`
	Condition string           `yaml:"condition" json:"condition"`
}

// DefaultPolicy returns the stock thresholds.
func DefaultPolicy() Policy {
	return Policy{
		SchoolGold:      1000,
		LibraryLevel:    12,
		TreeGold:        2000,
		TreeGems:        10,
		HeroGoldCost:    2500,
		MaxHeroes:       8,
		SafeAttackRatio: 1.2,
		MainHeroes:      2,
		NearbyCost:      2000,
	}
}

// Validate clamps all values to their valid ranges.
func (p *Policy) Validate() {
	p.SchoolGold = clampInt(p.SchoolGold, 0, 100000)
	p.LibraryLevel = clampInt(p.LibraryLevel, 1, 75)
	p.TreeGold = clampInt(p.TreeGold, 0, 100000)
	p.TreeGems = clampInt(p.TreeGems, 0, 1000)
	p.HeroGoldCost = clampInt(p.HeroGoldCost, 0, 100000)
	p.MaxHeroes = clampInt(p.MaxHeroes, 1, 16)
	p.SafeAttackRatio = clamp(p.SafeAttackRatio, 1, 10)
	p.MainHeroes = clampInt(p.MainHeroes, 1, 8)
	p.NearbyCost = clamp(p.NearbyCost, 1, 1e6)
}

// clampInt restricts v to [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clamp restricts v to [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
