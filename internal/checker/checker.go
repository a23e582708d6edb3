// Package checker cross-references account contexts with mutability facts
// and reports duplicate-mutable-account pairs: two independently named but
// type-identical mutable account slots in one instruction context, which let
// a caller alias one physical account into both slots.
package checker

import (
	"github.com/sealevel-tools/anchorscan/internal/anchor"
)

// Finding is one offending field pair inside one account context. Findings
// are independent; a context with k qualifying fields yields k*(k-1)/2 of
// them.
type Finding struct {
	Context     string `json:"context"`
	FieldA      string `json:"field_a"`
	FieldB      string `json:"field_b"`
	AccountType string `json:"account_type"`
}

// DetectDuplicateMutableAccounts joins each context's classified fields with
// the mutability facts matching the same struct name and field index, then
// checks every unordered pair of distinct fields. A pair is a finding iff
// both fields are known mutable, both classify as account slots, and both
// hold the same inner account type.
//
// Fields with no matching fact have unknown mutability and are never
// flagged. Fact indexes outside the classified field range match nothing.
// Contexts are checked independently; output order follows context
// declaration order, then pair discovery order.
func DetectDuplicateMutableAccounts(contexts []anchor.AccountContext, facts []anchor.MutabilityFact) []Finding {
	var findings []Finding
	for _, ctx := range contexts {
		// First fact per index wins, mirroring the generated code's one
		// constructor call per field.
		mutable := make(map[int]bool)
		for _, f := range facts {
			if f.Struct != ctx.Name {
				continue
			}
			if _, ok := mutable[f.FieldIndex]; !ok {
				mutable[f.FieldIndex] = f.Mutable
			}
		}

		for i := 0; i < len(ctx.Fields); i++ {
			for j := i + 1; j < len(ctx.Fields); j++ {
				mi, iKnown := mutable[i]
				mj, jKnown := mutable[j]
				if !iKnown || !jKnown || !mi || !mj {
					continue
				}
				a, b := ctx.Fields[i], ctx.Fields[j]
				if a.Kind.Class != anchor.ClassAccount || b.Kind.Class != anchor.ClassAccount {
					continue
				}
				if a.Kind.Inner != b.Kind.Inner {
					continue
				}
				findings = append(findings, Finding{
					Context:     ctx.Name,
					FieldA:      a.Name,
					FieldB:      b.Name,
					AccountType: a.Kind.Inner,
				})
			}
		}
	}
	return findings
}
