package rules

import (
	"fmt"

	"github.com/nstehr/vimy/vimy-hero/model"
)

// CompilePolicy generates the visit gates for a policy.
// The stock conditions are built via fmt.Sprintf with interpolated integers,
// so they are always valid expr; hand-written gates are appended as given and
// may fail to compile in NewEngine or Swap.
func CompilePolicy(p Policy) []*Rule {
	p.Validate()

	rules := []*Rule{
		{
			Name:         "school-of-magic-gold",
			Kind:         model.SchoolOfMagic,
			ConditionSrc: fmt.Sprintf(`Gold() >= %d`, p.SchoolGold),
		},
		{
			Name:         "school-of-war-gold",
			Kind:         model.SchoolOfWar,
			ConditionSrc: fmt.Sprintf(`Gold() >= %d`, p.SchoolGold),
		},
		{
			Name:         "library-level",
			Kind:         model.LibraryOfEnlighten,
			ConditionSrc: fmt.Sprintf(`Level() >= %d`, p.LibraryLevel),
		},
		{
			Name:         "tree-of-knowledge-resources",
			Kind:         model.TreeOfKnowledge,
			ConditionSrc: fmt.Sprintf(`Gold() >= %d && Gems() >= %d`, p.TreeGold, p.TreeGems),
		},
		{
			Name:         "prison-hero-cap",
			Kind:         model.Prison,
			ConditionSrc: fmt.Sprintf(`HeroCount() < %d`, p.MaxHeroes),
		},
		{
			Name:         "tavern-hero-cap",
			Kind:         model.Tavern,
			ConditionSrc: fmt.Sprintf(`HeroCount() < %d`, p.MaxHeroes),
		},
		{
			Name:         "tavern-hero-cost",
			Kind:         model.Tavern,
			ConditionSrc: fmt.Sprintf(`Gold() >= %d`, p.HeroGoldCost),
		},
	}

	for _, g := range p.Gates {
		rules = append(rules, &Rule{Name: g.Name, Kind: g.Kind, ConditionSrc: g.Condition})
	}
	return rules
}
