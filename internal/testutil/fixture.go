// Package testutil builds deterministic MIR fixtures for tests.
//
// Hand-writing MIR literals is verbose and error-prone, so the builders here
// assemble the exact shapes the compiler front end emits: Anchor context
// structs with their trait impls, the generated to_account_metas bodies, and
// plain call chains for reachability tests.
package testutil

import (
	"strings"

	"github.com/sealevel-tools/anchorscan/internal/mir"
)

const (
	accountWrapper = "anchor_lang::prelude::Account"
	signerWrapper  = "anchor_lang::prelude::Signer"
	programWrapper = "anchor_lang::prelude::Program"
	sysvarWrapper  = "anchor_lang::prelude::Sysvar"

	accountMetaNew         = "anchor_lang::prelude::AccountMeta::new"
	accountMetaNewReadonly = "anchor_lang::prelude::AccountMeta::new_readonly"
)

// AccountType builds Account<'info, inner>.
func AccountType(inner string) *mir.Type {
	return wrapperType(accountWrapper, inner)
}

// SysvarType builds Sysvar<'info, inner>.
func SysvarType(inner string) *mir.Type {
	return wrapperType(sysvarWrapper, inner)
}

// SignerType builds Signer<'info>.
func SignerType() *mir.Type {
	return &mir.Type{
		Kind: mir.TypeAdt,
		Name: signerWrapper,
		Args: []mir.GenericArg{{Kind: mir.ArgLifetime}},
	}
}

// ProgramType builds Program<'info, inner>.
func ProgramType(inner string) *mir.Type {
	return wrapperType(programWrapper, inner)
}

func wrapperType(wrapper, inner string) *mir.Type {
	return &mir.Type{
		Kind: mir.TypeAdt,
		Name: wrapper,
		Args: []mir.GenericArg{
			{Kind: mir.ArgLifetime},
			{Kind: mir.ArgType, Type: &mir.Type{Kind: mir.TypeAdt, Name: inner}},
		},
	}
}

// FieldSpec declares one field of a fixture context struct: its name, its
// wrapper type, and whether the generated serialization marks it writable.
type FieldSpec struct {
	Name    string
	Type    *mir.Type
	Mutable bool
}

// ContextSpec declares one fixture context struct by short name.
type ContextSpec struct {
	Name   string
	Fields []FieldSpec
}

// BuildAnchorProgram assembles a Program containing, for every context spec,
// the struct definition, its Accounts trait impl with a static try_accounts,
// and a generated to_account_metas body whose call sites encode the declared
// per-field mutability. Definition IDs start at 100 to stay clear of any IDs
// a test assigns by hand.
func BuildAnchorProgram(crate string, ctxs ...ContextSpec) *mir.Program {
	p := &mir.Program{Crate: crate}
	nextID := mir.DefID(100)
	for _, ctx := range ctxs {
		adtName := crate + "::" + ctx.Name

		fields := make([]mir.FieldDef, 0, len(ctx.Fields))
		for _, f := range ctx.Fields {
			fields = append(fields, mir.FieldDef{Name: f.Name, Type: f.Type})
		}
		p.Adts = append(p.Adts, &mir.AdtDef{
			Name:  adtName,
			Kind:  mir.AdtStruct,
			Local: true,
			Variants: []mir.Variant{
				{Name: ctx.Name, Fields: fields},
			},
		})

		p.TraitImpls = append(p.TraitImpls, &mir.TraitImpl{
			TraitName: "anchor_lang::Accounts",
			SelfType:  &mir.Type{Kind: mir.TypeAdt, Name: adtName},
			AssocFns:  []mir.AssocFn{{Name: "try_accounts"}},
		})

		metasName := crate + "::__client_accounts_" + strings.ToLower(ctx.Name) +
			"::" + ctx.Name + "::to_account_metas"
		p.Items = append(p.Items, &mir.Item{
			ID:   nextID,
			Kind: mir.ItemFn,
			Name: metasName,
			Body: metasBody(adtName, ctx.Fields),
		})
		nextID++
	}
	p.Init()
	return p
}

// metasBody builds the generated serialization body: one block per field,
// each ending in an AccountMeta constructor call whose preceding statement
// copies the field's key out of the context parameter.
func metasBody(adtName string, fields []FieldSpec) *mir.Body {
	body := &mir.Body{
		Locals: []mir.LocalDecl{
			{Type: &mir.Type{Kind: mir.TypeOther}},
			{Type: &mir.Type{
				Kind: mir.TypeRef,
				Elem: &mir.Type{Kind: mir.TypeAdt, Name: adtName},
			}},
		},
		ArgCount: 1,
	}

	for i, f := range fields {
		ctor := accountMetaNewReadonly
		if f.Mutable {
			ctor = accountMetaNew
		}
		target := i + 1
		body.Blocks = append(body.Blocks, mir.Block{
			Statements: []mir.Statement{
				{
					Kind: mir.StmtAssign,
					Assign: &mir.AssignStmt{
						Place: mir.Place{Local: 2 + i},
						Rvalue: mir.Rvalue{
							Kind: mir.RvalueUse,
							Use: &mir.Operand{
								Kind: mir.OperandCopy,
								Place: &mir.Place{
									Local: 1,
									Projection: []mir.Projection{
										{Kind: mir.ProjDeref},
										{Kind: mir.ProjField, Field: i},
									},
								},
							},
						},
					},
				},
			},
			Terminator: mir.Terminator{
				Kind: mir.TermCall,
				Call: &mir.CallTerm{
					Func: mir.Operand{
						Kind:  mir.OperandConstant,
						Const: &mir.ConstOperand{Type: &mir.Type{Kind: mir.TypeFnDef, Name: ctor}},
					},
					Target: &target,
				},
			},
		})
	}
	body.Blocks = append(body.Blocks, mir.Block{
		Terminator: mir.Terminator{Kind: mir.TermReturn},
	})
	return body
}

// FnItem builds a function item whose body calls the given definition IDs in
// a straight line and then returns. Used as call-graph fixture material.
func FnItem(id mir.DefID, name string, callees ...mir.DefID) *mir.Item {
	body := &mir.Body{
		Locals:   []mir.LocalDecl{{Type: &mir.Type{Kind: mir.TypeOther}}},
		ArgCount: 0,
	}
	for i, callee := range callees {
		target := i + 1
		body.Blocks = append(body.Blocks, mir.Block{
			Terminator: mir.Terminator{
				Kind: mir.TermCall,
				Call: &mir.CallTerm{
					Func: mir.Operand{
						Kind: mir.OperandConstant,
						Const: &mir.ConstOperand{
							Type: &mir.Type{Kind: mir.TypeFnDef, Name: "fn_" + name, Def: callee},
						},
					},
					Target: &target,
				},
			},
		})
	}
	body.Blocks = append(body.Blocks, mir.Block{
		Terminator: mir.Terminator{Kind: mir.TermReturn},
	})
	return &mir.Item{ID: id, Kind: mir.ItemFn, Name: name, Body: body}
}

// StaticByteArray builds a static or const item whose initializer assigns a
// u8-array aggregate of the given bytes, the shape rustc emits for Anchor's
// declare_id! and DISCRIMINATOR constants.
func StaticByteArray(id mir.DefID, kind mir.ItemKind, name string, bytes []byte) *mir.Item {
	operands := make([]mir.Operand, 0, len(bytes))
	for _, b := range bytes {
		operands = append(operands, mir.Operand{
			Kind: mir.OperandConstant,
			Const: &mir.ConstOperand{
				Type:  &mir.Type{Kind: mir.TypeUint, Width: "u8"},
				Bytes: []byte{b},
			},
		})
	}
	return &mir.Item{
		ID:   id,
		Kind: kind,
		Name: name,
		Body: &mir.Body{
			Blocks: []mir.Block{
				{
					Statements: []mir.Statement{
						{
							Kind: mir.StmtAssign,
							Assign: &mir.AssignStmt{
								Place: mir.Place{Local: 0},
								Rvalue: mir.Rvalue{
									Kind: mir.RvalueAggregate,
									Aggregate: &mir.AggregateRval{
										Kind:     mir.AggArray,
										ElemType: &mir.Type{Kind: mir.TypeUint, Width: "u8"},
										Operands: operands,
									},
								},
							},
						},
					},
					Terminator: mir.Terminator{Kind: mir.TermReturn},
				},
			},
			Locals: []mir.LocalDecl{{Type: &mir.Type{Kind: mir.TypeOther}}},
		},
	}
}
