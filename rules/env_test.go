package rules

import (
	"testing"

	"github.com/expr-lang/expr"
	"github.com/nstehr/vimy/vimy-hero/model"
)

func TestVisitEnvFromExpr(t *testing.T) {
	env := VisitEnv{
		Hero:      model.Hero{Level: 14, Mana: 5, ManaLimit: 20, Strength: 900},
		Resources: model.Resources{model.Gold: 1200, model.Gems: 3, model.Wood: 7},
		Heroes:    4,
	}

	tests := []struct {
		src  string
		want bool
	}{
		{`Gold() >= 1000`, true},
		{`Gems() >= 10`, false},
		{`Resource("wood") == 7`, true},
		{`Level() >= 12 && Mana() < ManaLimit()`, true},
		{`HeroCount() < 4`, false},
		{`ArmyStrength() > 1000`, false},
	}
	for _, tc := range tests {
		program, err := expr.Compile(tc.src, expr.Env(VisitEnv{}), expr.AsBool())
		if err != nil {
			t.Fatalf("%s: compile: %v", tc.src, err)
		}
		out, err := expr.Run(program, env)
		if err != nil {
			t.Fatalf("%s: run: %v", tc.src, err)
		}
		if out.(bool) != tc.want {
			t.Errorf("%s = %v, want %v", tc.src, out, tc.want)
		}
	}
}
