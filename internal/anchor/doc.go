// Package anchor recovers Anchor framework facts from a crate's MIR: the
// account-context structs an instruction accepts, the per-field mutability
// encoded in Anchor's generated client serialization code, and the literal
// program-id / discriminator byte constants.
//
// All extraction is best-effort by design. A call site, item, or field that
// does not match the exact shape a rule expects is silently skipped; the
// extractors trade recall for precision and crash-safety, because the input
// is attacker-influenced source.
package anchor
