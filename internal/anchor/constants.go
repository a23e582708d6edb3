package anchor

import (
	"regexp"
	"strings"

	"github.com/sealevel-tools/anchorscan/internal/mir"
)

const (
	programIDItem       = "ID"
	discriminatorSuffix = "::DISCRIMINATOR"
	instructionPrefix   = "<instruction::"
)

// discriminatorOwner captures the account type a DISCRIMINATOR const belongs
// to, e.g. "<StakePool as anchor_lang::Discriminator>::DISCRIMINATOR".
var discriminatorOwner = regexp.MustCompile(`<(.+?)\s+as\s+anchor_lang::Discriminator>`)

// Discriminator is one account type's 8-byte discriminator constant.
type Discriminator struct {
	Account string `json:"account"`
	Bytes   []byte `json:"bytes"`
}

// ExtractProgramID returns the program's declared identifier bytes: the
// first u8-array aggregate assigned in the initializer of the static item
// named ID. Returns nil when no such static exists.
func ExtractProgramID(p *mir.Program) []byte {
	for _, item := range p.Items {
		if item == nil || item.Kind != mir.ItemStatic || item.Name != programIDItem {
			continue
		}
		if bytes, ok := firstByteArray(item.Body); ok {
			return bytes
		}
	}
	return nil
}

// ExtractDiscriminators returns the per-account-type discriminator constants
// declared by the crate, in item order. Instruction discriminators are
// excluded; only account discriminators feed the report.
func ExtractDiscriminators(p *mir.Program) []Discriminator {
	var out []Discriminator
	for _, item := range p.Items {
		if item == nil || item.Kind != mir.ItemConst {
			continue
		}
		if !strings.HasSuffix(item.Name, discriminatorSuffix) {
			continue
		}
		if strings.HasPrefix(item.Name, instructionPrefix) {
			continue
		}
		caps := discriminatorOwner.FindStringSubmatch(item.Name)
		if caps == nil {
			continue
		}
		if bytes, ok := firstByteArray(item.Body); ok {
			out = append(out, Discriminator{Account: caps[1], Bytes: bytes})
		}
	}
	return out
}

// firstByteArray scans the first block of a static-initializer body for the
// first assignment of a u8-array aggregate and concatenates its elements'
// allocation bytes.
func firstByteArray(body *mir.Body) ([]byte, bool) {
	if body == nil || len(body.Blocks) == 0 {
		return nil, false
	}
	for si := range body.Blocks[0].Statements {
		stmt := &body.Blocks[0].Statements[si]
		if stmt.Kind != mir.StmtAssign || stmt.Assign == nil {
			continue
		}
		rv := stmt.Assign.Rvalue
		if rv.Kind != mir.RvalueAggregate || rv.Aggregate == nil {
			continue
		}
		agg := rv.Aggregate
		if agg.Kind != mir.AggArray {
			continue
		}
		elem := agg.ElemType
		if elem == nil || elem.Kind != mir.TypeUint || elem.Width != "u8" {
			continue
		}
		bytes := make([]byte, 0, len(agg.Operands))
		for i := range agg.Operands {
			op := &agg.Operands[i]
			if op.Kind != mir.OperandConstant || op.Const == nil {
				continue
			}
			bytes = append(bytes, op.Const.Bytes...)
		}
		return bytes, true
	}
	return nil, false
}
