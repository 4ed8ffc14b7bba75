package rules

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/nstehr/vimy/vimy-hero/model"
)

// Engine holds the compiled visit gates, grouped by object kind.
// It is shared by every connection and may be swapped at runtime.
type Engine struct {
	mu    sync.RWMutex
	gates map[model.ObjectKind][]*Rule
}

// NewEngine compiles all gate conditions into expr bytecode.
func NewEngine(rules []*Rule) (*Engine, error) {
	gates, err := compileRules(rules)
	if err != nil {
		return nil, err
	}
	return &Engine{gates: gates}, nil
}

// Permits evaluates every gate registered for kind against env. gated is
// false when no gate covers the kind. A gate that fails to run denies.
func (e *Engine) Permits(kind model.ObjectKind, env VisitEnv) (ok, gated bool) {
	e.mu.RLock()
	rules := e.gates[kind]
	e.mu.RUnlock()

	if len(rules) == 0 {
		return true, false
	}

	for _, r := range rules {
		result, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("visit gate error", "rule", r.Name, "error", err)
			return false, true
		}
		if match, isBool := result.(bool); !isBool || !match {
			slog.Debug("visit gate closed", "rule", r.Name, "hero", env.Hero.ID)
			return false, true
		}
	}
	return true, true
}

// Swap atomically replaces the gate set (called when the policy file changes).
// Compiles first; if compilation fails the old gates remain active.
func (e *Engine) Swap(newRules []*Rule) error {
	gates, err := compileRules(newRules)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(newRules))
	for _, r := range newRules {
		names = append(names, r.Name)
	}
	e.mu.Lock()
	e.gates = gates
	e.mu.Unlock()

	slog.Info("visit gates swapped", "count", len(names), "rules", names)
	return nil
}

func compileRules(rules []*Rule) (map[model.ObjectKind][]*Rule, error) {
	gates := make(map[model.ObjectKind][]*Rule)
	for _, r := range rules {
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(VisitEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = prog
		gates[r.Kind] = append(gates[r.Kind], r)
	}
	return gates, nil
}
