// Package callgraph builds the reachable call-graph node set of a program
// by worklist closure over resolved instances.
package callgraph

import (
	"github.com/sealevel-tools/anchorscan/internal/mir"
)

// Reachable computes the set of instances reachable from the seed set.
//
// The worklist starts as a copy of the seeds. Each popped instance's body is
// scanned for call terminators whose callee operand is a constant of
// function-definition type; the callee is resolved against its generic
// arguments and, if new, inserted and pushed. Missing bodies and failed
// resolutions are skipped, not propagated. Termination holds because the
// visited set only grows and is bounded by the finite universe of resolvable
// instances.
//
// Pop order does not affect the resulting set.
func Reachable(p *mir.Program, seeds []mir.Instance) map[mir.Instance]struct{} {
	nodes := make(map[mir.Instance]struct{}, len(seeds))
	worklist := make([]mir.Instance, 0, len(seeds))
	for _, s := range seeds {
		if _, ok := nodes[s]; ok {
			continue
		}
		nodes[s] = struct{}{}
		worklist = append(worklist, s)
	}

	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		body := p.InstanceBody(cur)
		if body == nil {
			continue // external or opaque function
		}
		for bi := range body.Blocks {
			term := &body.Blocks[bi].Terminator
			if term.Kind != mir.TermCall || term.Call == nil {
				continue
			}
			callee, ok := calleeFnDef(&term.Call.Func)
			if !ok {
				continue
			}
			inst, ok := p.Resolve(callee.Def, callee.Args)
			if !ok {
				continue
			}
			if _, seen := nodes[inst]; !seen {
				nodes[inst] = struct{}{}
				worklist = append(worklist, inst)
			}
		}
	}
	return nodes
}

// calleeFnDef extracts the function-definition type of a call's callee
// operand. Only constant operands of fndef type resolve; indirect calls
// through copied or moved function pointers do not.
func calleeFnDef(op *mir.Operand) (*mir.Type, bool) {
	if op == nil || op.Kind != mir.OperandConstant || op.Const == nil {
		return nil, false
	}
	t := op.Const.Type
	if t == nil || t.Kind != mir.TypeFnDef {
		return nil, false
	}
	return t, true
}
