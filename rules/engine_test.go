package rules

import (
	"testing"

	"github.com/nstehr/vimy/vimy-hero/model"
)

func TestDefaultPolicyCompiles(t *testing.T) {
	engine, err := NewEngine(CompilePolicy(DefaultPolicy()))
	if err != nil {
		t.Fatalf("NewEngine(CompilePolicy(DefaultPolicy())) failed: %v", err)
	}
	if got := len(engine.gates[model.Tavern]); got != 2 {
		t.Errorf("expected 2 tavern gates, got %d", got)
	}
}

func TestEnginePermits(t *testing.T) {
	engine, err := NewEngine(CompilePolicy(DefaultPolicy()))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		kind      model.ObjectKind
		env       VisitEnv
		wantOK    bool
		wantGated bool
	}{
		{"ungated kind", model.Mine, VisitEnv{}, true, false},
		{"school poor", model.SchoolOfMagic, VisitEnv{Resources: model.Resources{model.Gold: 999}}, false, true},
		{"school rich", model.SchoolOfWar, VisitEnv{Resources: model.Resources{model.Gold: 1000}}, true, true},
		{"library low level", model.LibraryOfEnlighten, VisitEnv{Hero: model.Hero{Level: 11}}, false, true},
		{"library high level", model.LibraryOfEnlighten, VisitEnv{Hero: model.Hero{Level: 12}}, true, true},
		{"tree missing gems", model.TreeOfKnowledge, VisitEnv{Resources: model.Resources{model.Gold: 5000, model.Gems: 9}}, false, true},
		{"tree ok", model.TreeOfKnowledge, VisitEnv{Resources: model.Resources{model.Gold: 2000, model.Gems: 10}}, true, true},
		{"prison full", model.Prison, VisitEnv{Heroes: 8}, false, true},
		{"prison room", model.Prison, VisitEnv{Heroes: 7}, true, true},
		{"tavern broke", model.Tavern, VisitEnv{Heroes: 1, Resources: model.Resources{model.Gold: 2499}}, false, true},
		{"tavern ok", model.Tavern, VisitEnv{Heroes: 1, Resources: model.Resources{model.Gold: 2500}}, true, true},
	}
	for _, tc := range tests {
		ok, gated := engine.Permits(tc.kind, tc.env)
		if ok != tc.wantOK || gated != tc.wantGated {
			t.Errorf("%s: Permits = (%v, %v), want (%v, %v)", tc.name, ok, gated, tc.wantOK, tc.wantGated)
		}
	}
}

func TestEngineSwapKeepsOldGatesOnError(t *testing.T) {
	engine, err := NewEngine(CompilePolicy(DefaultPolicy()))
	if err != nil {
		t.Fatal(err)
	}

	bad := []*Rule{{Name: "broken", Kind: model.Mine, ConditionSrc: `Gold( >=`}}
	if err := engine.Swap(bad); err == nil {
		t.Fatal("expected compile error from Swap")
	}
	if ok, _ := engine.Permits(model.SchoolOfMagic, VisitEnv{}); ok {
		t.Error("old school gate should still deny a broke player")
	}

	p := DefaultPolicy()
	p.SchoolGold = 0
	if err := engine.Swap(CompilePolicy(p)); err != nil {
		t.Fatalf("Swap: %v", err)
	}
	if ok, _ := engine.Permits(model.SchoolOfMagic, VisitEnv{}); !ok {
		t.Error("swapped gate should admit with a zero threshold")
	}
}

func TestCompilePolicyRulesCompile(t *testing.T) {
	for _, r := range CompilePolicy(DefaultPolicy()) {
		if _, err := compileRules([]*Rule{r}); err != nil {
			t.Errorf("rule %q failed to compile: %v\ncondition: %s", r.Name, err, r.ConditionSrc)
		}
		if r.Kind == "" {
			t.Errorf("rule %q has no object kind", r.Name)
		}
	}
}

func TestHandWrittenGates(t *testing.T) {
	p := DefaultPolicy()
	p.Gates = []GateSpec{
		{Name: "strong-armies-only", Kind: model.Mine, Condition: `ArmyStrength() >= 500`},
		{Name: "wood-for-schools", Kind: model.SchoolOfMagic, Condition: `Resource("wood") > 5`},
	}
	engine, err := NewEngine(CompilePolicy(p))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	tests := []struct {
		name   string
		kind   model.ObjectKind
		env    VisitEnv
		wantOK bool
	}{
		{"weak army at mine", model.Mine, VisitEnv{Hero: model.Hero{Strength: 100}}, false},
		{"strong army at mine", model.Mine, VisitEnv{Hero: model.Hero{Strength: 500}}, true},
		{"school gold but no wood", model.SchoolOfMagic, VisitEnv{Resources: model.Resources{model.Gold: 1000}}, false},
		{"school gold and wood", model.SchoolOfMagic, VisitEnv{Resources: model.Resources{model.Gold: 1000, model.Wood: 6}}, true},
	}
	for _, tc := range tests {
		if ok, _ := engine.Permits(tc.kind, tc.env); ok != tc.wantOK {
			t.Errorf("%s: Permits = %v, want %v", tc.name, ok, tc.wantOK)
		}
	}

	p.Gates = []GateSpec{{Name: "typo", Kind: model.Mine, Condition: `Gold( >`}}
	if _, err := NewEngine(CompilePolicy(p)); err == nil {
		t.Error("expected compile error for a broken hand-written gate")
	}
}
