package anchor

import (
	"github.com/sealevel-tools/anchorscan/internal/mir"
)

// Names of the Anchor items the extractors match on.
const (
	// AccountsTrait is the account-validation capability trait an Anchor
	// context struct implements.
	AccountsTrait = "anchor_lang::Accounts"
	// tryAccountsFn is the static builder function generated on every
	// Accounts impl.
	tryAccountsFn = "try_accounts"

	accountWrapper = "anchor_lang::prelude::Account"
	signerWrapper  = "anchor_lang::prelude::Signer"
	programWrapper = "anchor_lang::prelude::Program"
	sysvarWrapper  = "anchor_lang::prelude::Sysvar"
)

// FieldClass is the closed set of roles a context field can play.
type FieldClass string

const (
	// ClassAccount is an owned, typed account slot.
	ClassAccount FieldClass = "account"
	// ClassSigner is a transaction signer slot.
	ClassSigner FieldClass = "signer"
	// ClassProgram is a program reference slot.
	ClassProgram FieldClass = "program"
)

// AccountKind classifies one context field. Inner is set only for
// ClassAccount and names the held account type.
type AccountKind struct {
	Class FieldClass `json:"class"`
	Inner string     `json:"inner,omitempty"`
}

// AccountField is one classified field of an account context.
type AccountField struct {
	Name string      `json:"name"`
	Kind AccountKind `json:"kind"`
}

// AccountContext is a local struct implementing the Accounts trait, with its
// classified fields in declaration order. Field position is the correlation
// key with mutability facts and is fixed at extraction time.
type AccountContext struct {
	Name   string         `json:"name"`
	Fields []AccountField `json:"fields"`
}

// ClassifyFieldType classifies a context field by its type. It is a pure
// function over the type shape and has no other inputs.
//
// The recognized wrappers hold their payload type at generic position 1
// (position 0 is the lifetime). Sysvar<T> deliberately classifies as
// Account(T): downstream consumers do not distinguish the two, so a sysvar
// slot participates in the same duplicate checks as a plain account slot.
// Any other field type is unclassified.
func ClassifyFieldType(t *mir.Type) (AccountKind, bool) {
	if t == nil || t.Kind != mir.TypeAdt {
		return AccountKind{}, false
	}
	switch t.Name {
	case accountWrapper, sysvarWrapper:
		held := mir.TypeArg(t.Args, 1)
		if held == nil || held.Kind != mir.TypeAdt {
			return AccountKind{}, false
		}
		return AccountKind{Class: ClassAccount, Inner: held.Name}, true
	case signerWrapper:
		return AccountKind{Class: ClassSigner}, true
	case programWrapper:
		return AccountKind{Class: ClassProgram}, true
	default:
		return AccountKind{}, false
	}
}

// ExtractContexts returns every account context defined in the program, in
// trait-impl declaration order.
//
// A context is a local struct implementing the Accounts trait with a static
// try_accounts builder. Its fields come from the struct's first
// field-carrying variant; fields whose type is not a recognized wrapper are
// dropped from the classified list. A struct contributes at most one
// context: the first matching builder wins.
func ExtractContexts(p *mir.Program) []AccountContext {
	var contexts []AccountContext
	for _, impl := range p.TraitImpls {
		if impl == nil || impl.TraitName != AccountsTrait {
			continue
		}
		self := impl.SelfType
		if self == nil || self.Kind != mir.TypeAdt {
			continue
		}
		adt := p.Adt(self.Name)
		if adt == nil || !adt.Local || adt.Kind != mir.AdtStruct {
			continue
		}
		for _, fn := range impl.AssocFns {
			if fn.Name != tryAccountsFn || fn.HasSelf {
				continue
			}
			variant := adt.FirstVariant()
			if variant == nil {
				break
			}
			contexts = append(contexts, contextFromVariant(variant))
			break // one try_accounts per struct
		}
	}
	return contexts
}

func contextFromVariant(v *mir.Variant) AccountContext {
	fields := make([]AccountField, 0, len(v.Fields))
	for _, fd := range v.Fields {
		kind, ok := ClassifyFieldType(fd.Type)
		if !ok {
			continue
		}
		fields = append(fields, AccountField{Name: fd.Name, Kind: kind})
	}
	return AccountContext{Name: v.Name, Fields: fields}
}
