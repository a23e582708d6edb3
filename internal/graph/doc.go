// Package graph provides a generic directed-graph container plus dominator
// and post-dominator computation over it.
//
// The algorithms never fail on malformed input: disconnected or unreachable
// structure is a defined, queryable state (absence from the result map), not
// an error. Both traversals use explicit stacks, so deeply nested or
// adversarially large control-flow graphs cannot overflow the goroutine
// stack.
package graph
