package rules

import (
	"github.com/expr-lang/expr/vm"
	"github.com/nstehr/vimy/vimy-hero/model"
)

// Rule is a visit gate: an expr condition that must hold before heroes may
// visit objects of Kind. Several rules on one kind must all hold.
type Rule struct {
	Name         string           // human-readable identifier
	Kind         model.ObjectKind // objects the gate applies to
	ConditionSrc string           // expr source (preserved for serialization)
	program      *vm.Program      // compiled bytecode
}
