package mir

// Instance is a fully resolved, non-generic callable: a function definition
// plus a canonical rendering of its concrete substitutions. Instance is a
// comparable value; two instances are equal iff definition and substitutions
// are equal, which is the correct deduplication key for call graphs (the
// same source function called with different generic arguments is a
// different node).
type Instance struct {
	Def   DefID
	Subst string
}

// InstanceOf resolves an item to an instance. It fails for non-function
// items and for items that still require monomorphization.
func (p *Program) InstanceOf(it *Item) (Instance, bool) {
	if it == nil || it.Kind != ItemFn || it.Generic {
		return Instance{}, false
	}
	return Instance{Def: it.ID}, true
}

// Resolve resolves a call target (function definition + generic args) to a
// concrete instance. A generic definition with no substitutions cannot be
// resolved.
func (p *Program) Resolve(def DefID, args []GenericArg) (Instance, bool) {
	it := p.Item(def)
	if it == nil || it.Kind != ItemFn {
		return Instance{}, false
	}
	if it.Generic && len(args) == 0 {
		return Instance{}, false
	}
	return Instance{Def: def, Subst: SubstKey(args)}, true
}

// InstanceBody returns the body of the instance's underlying definition, or
// nil when the definition is external or opaque. Monomorphized bodies share
// the definition's block structure, which is all the analyses here inspect.
func (p *Program) InstanceBody(inst Instance) *Body {
	it := p.Item(inst.Def)
	if it == nil {
		return nil
	}
	return it.Body
}

// InstanceName returns a printable name for the instance: the definition's
// path name plus the substitution key.
func (p *Program) InstanceName(inst Instance) string {
	it := p.Item(inst.Def)
	if it == nil {
		return ""
	}
	return it.Name + inst.Subst
}

// LocalInstances returns an instance for every local function item that
// requires no further substitution, in item order. This is the conventional
// seed set for whole-program reachability.
func (p *Program) LocalInstances() []Instance {
	var out []Instance
	for _, it := range p.Items {
		if inst, ok := p.InstanceOf(it); ok {
			out = append(out, inst)
		}
	}
	return out
}
