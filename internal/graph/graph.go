package graph

// Directed is a directed graph over comparable node identifiers.
//
// Nodes keep insertion order so that enumeration (and anything derived from
// it, such as the exit-node list) is deterministic for a fixed build
// sequence.
type Directed[N comparable] struct {
	order   []N
	nodes   map[N]struct{}
	succs   map[N][]N
	preds   map[N][]N
	edgeSet map[[2]N]struct{}
}

// NewDirected creates an empty directed graph.
func NewDirected[N comparable]() *Directed[N] {
	return &Directed[N]{
		nodes:   make(map[N]struct{}),
		succs:   make(map[N][]N),
		preds:   make(map[N][]N),
		edgeSet: make(map[[2]N]struct{}),
	}
}

// AddNode registers a node. Adding a node twice is a no-op.
func (g *Directed[N]) AddNode(n N) {
	if _, ok := g.nodes[n]; ok {
		return
	}
	g.nodes[n] = struct{}{}
	g.order = append(g.order, n)
}

// AddEdge registers a directed edge. Endpoints that were never added are
// registered implicitly. Adding the same edge twice is a no-op.
func (g *Directed[N]) AddEdge(from, to N) {
	g.AddNode(from)
	g.AddNode(to)
	key := [2]N{from, to}
	if _, ok := g.edgeSet[key]; ok {
		return
	}
	g.edgeSet[key] = struct{}{}
	g.succs[from] = append(g.succs[from], to)
	g.preds[to] = append(g.preds[to], from)
}

// Successors returns the successor list of n. Unknown and sink nodes yield
// an empty slice, never an error.
func (g *Directed[N]) Successors(n N) []N {
	return g.succs[n]
}

// Predecessors returns the predecessor list of n. Unknown and source nodes
// yield an empty slice.
func (g *Directed[N]) Predecessors(n N) []N {
	return g.preds[n]
}

// Nodes returns all nodes in insertion order.
func (g *Directed[N]) Nodes() []N {
	return g.order
}

// HasNode reports whether n was registered.
func (g *Directed[N]) HasNode(n N) bool {
	_, ok := g.nodes[n]
	return ok
}

// ExitNodes returns the nodes with no outgoing edges, in insertion order.
func (g *Directed[N]) ExitNodes() []N {
	var exits []N
	for _, n := range g.order {
		if len(g.succs[n]) == 0 {
			exits = append(exits, n)
		}
	}
	return exits
}

// postorderFrom appends to order the postorder DFS numbering of all nodes
// reachable from root by following next edges, skipping nodes already in
// visited. The traversal uses an explicit frame stack.
func postorderFrom[N comparable](root N, next func(N) []N, visited map[N]struct{}, order *[]N) {
	if _, ok := visited[root]; ok {
		return
	}
	type frame struct {
		node N
		idx  int
	}
	visited[root] = struct{}{}
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		edges := next(f.node)
		if f.idx < len(edges) {
			s := edges[f.idx]
			f.idx++
			if _, ok := visited[s]; !ok {
				visited[s] = struct{}{}
				stack = append(stack, frame{node: s})
			}
			continue
		}
		*order = append(*order, f.node)
		stack = stack[:len(stack)-1]
	}
}

func reverseSlice[N any](s []N) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
