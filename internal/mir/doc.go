// Package mir defines the read-only MIR snapshot model consumed by every
// analysis in anchorscan.
//
// This package contains type definitions and lookups only. All other internal
// packages import mir; mir imports nothing internal. This keeps the IR the
// foundational layer with no circular dependencies.
//
// Key design constraints:
//   - The snapshot is passed explicitly into each analysis. No component
//     reads ambient or global compiler state.
//   - DefID identity is the only reliable comparison between items; names
//     are not unique (generic instantiations share a base name).
//   - Every lookup is bounds-checked. Malformed but well-typed snapshots
//     must never panic an analysis; mismatches are skipped by callers.
//   - All JSON tags use snake_case.
package mir
