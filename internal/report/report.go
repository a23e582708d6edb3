// Package report assembles and renders the analysis report: the crate's
// identity constants plus the duplicate-mutable-account findings.
package report

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/sealevel-tools/anchorscan/internal/anchor"
	"github.com/sealevel-tools/anchorscan/internal/checker"
)

// RunIDGenerator produces the report's run identifier.
//
// The default is UUIDGenerator; tests inject FixedGenerator so rendered
// reports are byte-identical and golden-comparable.
type RunIDGenerator interface {
	Generate() string
}

// UUIDGenerator generates random UUID run identifiers.
type UUIDGenerator struct{}

// Generate returns a new random UUID string.
func (UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// FixedGenerator always returns the same identifier.
type FixedGenerator struct {
	ID string
}

// Generate returns the fixed identifier.
func (g FixedGenerator) Generate() string {
	return g.ID
}

// Discriminator is one account discriminator, hex-encoded for output.
type Discriminator struct {
	Account string `json:"account"`
	Bytes   string `json:"bytes"`
}

// Report is the complete result of one analysis run.
type Report struct {
	RunID          string            `json:"run_id"`
	Crate          string            `json:"crate"`
	ProgramID      string            `json:"program_id,omitempty"`
	Discriminators []Discriminator   `json:"discriminators,omitempty"`
	Findings       []checker.Finding `json:"findings"`
}

// Build assembles a report from the extraction and detection outputs.
// A nil generator defaults to UUIDGenerator.
func Build(crate string, programID []byte, discriminators []anchor.Discriminator, findings []checker.Finding, gen RunIDGenerator) *Report {
	if gen == nil {
		gen = UUIDGenerator{}
	}
	r := &Report{
		RunID:    gen.Generate(),
		Crate:    crate,
		Findings: findings,
	}
	if len(programID) > 0 {
		r.ProgramID = hex.EncodeToString(programID)
	}
	for _, d := range discriminators {
		r.Discriminators = append(r.Discriminators, Discriminator{
			Account: d.Account,
			Bytes:   hex.EncodeToString(d.Bytes),
		})
	}
	return r
}

// RenderText writes the human-readable report.
func (r *Report) RenderText(w io.Writer) error {
	fmt.Fprintf(w, "crate: %s (run %s)\n", r.Crate, r.RunID)
	if r.ProgramID != "" {
		fmt.Fprintf(w, "program id: %s\n", r.ProgramID)
	}
	for _, d := range r.Discriminators {
		fmt.Fprintf(w, "discriminator %s: %s\n", d.Account, d.Bytes)
	}
	if len(r.Findings) == 0 {
		fmt.Fprintln(w, "no duplicate mutable accounts found")
		return nil
	}
	fmt.Fprintf(w, "%d duplicate mutable account pair(s):\n", len(r.Findings))
	for _, f := range r.Findings {
		fmt.Fprintf(w, "  %s: fields %q and %q are both mutable %s accounts\n",
			f.Context, f.FieldA, f.FieldB, f.AccountType)
	}
	return nil
}

// RenderJSON writes the report as indented JSON.
func (r *Report) RenderJSON(w io.Writer) error {
	// Findings must never encode as null; an empty run has an empty list.
	if r.Findings == nil {
		r.Findings = []checker.Finding{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
