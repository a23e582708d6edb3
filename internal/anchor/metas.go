package anchor

import (
	"strings"

	"github.com/sealevel-tools/anchorscan/internal/mir"
)

const (
	// toAccountMetasMarker and clientAccountsMarker together select Anchor's
	// generated client-side serialization functions. Requiring both excludes
	// the similarly named cross-program-invocation helpers, which live under
	// a "__cpi_client_accounts" module and encode different semantics.
	toAccountMetasMarker = "to_account_metas"
	clientAccountsMarker = "__client_accounts"

	accountMetaNew         = "anchor_lang::prelude::AccountMeta::new"
	accountMetaNewReadonly = "anchor_lang::prelude::AccountMeta::new_readonly"
)

// MutabilityFact records that field FieldIndex of the context struct named
// Struct is serialized as mutable or read-only account metadata.
type MutabilityFact struct {
	Struct     string `json:"struct"`
	Mutable    bool   `json:"mutable"`
	FieldIndex int    `json:"field_index"`
}

// ExtractAccountMetas recovers per-field mutability facts from the bodies of
// Anchor's generated to_account_metas functions.
//
// For each candidate body, the context struct is identified from the first
// formal parameter, which must be a reference to a local struct; the fact's
// struct name is that type's final path segment. Every block calling
// AccountMeta::new or AccountMeta::new_readonly contributes one fact when
// the block's last statement copies (*arg1).field(i) — the exact shape the
// code generator emits. Any deviation from that shape skips the call site.
func ExtractAccountMetas(p *mir.Program) []MutabilityFact {
	var candidates []mir.Instance
	for _, item := range p.Items {
		if item == nil {
			continue
		}
		if !strings.Contains(item.Name, toAccountMetasMarker) {
			continue
		}
		if !strings.Contains(item.Name, clientAccountsMarker) {
			continue
		}
		inst, ok := p.InstanceOf(item)
		if !ok {
			continue
		}
		candidates = append(candidates, inst)
	}

	var facts []MutabilityFact
	for _, inst := range candidates {
		body := p.InstanceBody(inst)
		if body == nil {
			continue
		}
		structName, ok := contextStructName(body)
		if !ok {
			continue
		}
		for bi := range body.Blocks {
			block := &body.Blocks[bi]
			ctorName, ok := metaCtorName(&block.Terminator)
			if !ok {
				continue
			}
			idx, ok := copiedContextField(block.LastStatement())
			if !ok {
				continue
			}
			facts = append(facts, MutabilityFact{
				Struct:     structName,
				Mutable:    ctorName == accountMetaNew,
				FieldIndex: idx,
			})
		}
	}
	return facts
}

// contextStructName extracts the short name of the context struct from the
// body's first formal parameter, which must be shaped as &LocalStruct.
func contextStructName(body *mir.Body) (string, bool) {
	decl := body.LocalDecl(1)
	if decl == nil || decl.Type == nil || decl.Type.Kind != mir.TypeRef {
		return "", false
	}
	inner := decl.Type.Elem
	if inner == nil || inner.Kind != mir.TypeAdt {
		return "", false
	}
	short := mir.ShortName(inner.Name)
	if short == "" {
		return "", false
	}
	return short, true
}

// metaCtorName returns the AccountMeta constructor a call terminator
// invokes, if it invokes one.
func metaCtorName(term *mir.Terminator) (string, bool) {
	if term.Kind != mir.TermCall || term.Call == nil {
		return "", false
	}
	fn := term.Call.Func
	if fn.Kind != mir.OperandConstant || fn.Const == nil {
		return "", false
	}
	t := fn.Const.Type
	if t == nil || t.Kind != mir.TypeFnDef {
		return "", false
	}
	if t.Name != accountMetaNew && t.Name != accountMetaNewReadonly {
		return "", false
	}
	return t.Name, true
}

// copiedContextField matches Assign(_, Use(Copy((*_1).field(i)))) and
// returns i. Moves do not match: the generated code copies the Pubkey out of
// the context field.
func copiedContextField(stmt *mir.Statement) (int, bool) {
	if stmt == nil || stmt.Kind != mir.StmtAssign || stmt.Assign == nil {
		return 0, false
	}
	rv := stmt.Assign.Rvalue
	if rv.Kind != mir.RvalueUse || rv.Use == nil {
		return 0, false
	}
	if rv.Use.Kind != mir.OperandCopy || rv.Use.Place == nil {
		return 0, false
	}
	place := rv.Use.Place
	if place.Local != 1 {
		return 0, false
	}
	return place.DerefField()
}
