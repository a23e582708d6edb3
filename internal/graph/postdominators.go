package graph

// IPDomKind tags the result of an immediate post-dominator query.
type IPDomKind uint8

const (
	// IPDomNone marks a node that no exit can be reached from; it has no
	// post-dominator information at all.
	IPDomNone IPDomKind = iota
	// IPDomNode marks a concrete immediate post-dominator.
	IPDomNode
	// IPDomAmbiguous marks a node whose paths diverge to different exits,
	// so no single node post-dominates it. The marker propagates to any
	// node whose computation transitively depends on it.
	IPDomAmbiguous
)

// IPDom is the immediate post-dominator of one node. Node is meaningful only
// when Kind is IPDomNode.
type IPDom[N comparable] struct {
	Kind IPDomKind
	Node N
}

// PostDominators holds the immediate post-dominator relation of a graph,
// computed symmetrically to Dominators by walking predecessor edges from the
// graph's exit nodes (nodes with no successors).
//
// A graph may have several exits, so two converging paths may have no real
// common post-dominator; such nodes carry the IPDomAmbiguous marker instead
// of a concrete node. An isolated node present at build time is its own sole
// exit and post-dominates only itself.
type PostDominators[N comparable] struct {
	ipdom   map[N]IPDom[N]
	pos     map[N]int
	exits   []N
	exitSet map[N]struct{}
}

// ComputePostDominators computes immediate post-dominators for every node of
// the graph.
func ComputePostDominators[N comparable](g *Directed[N]) *PostDominators[N] {
	exits := g.ExitNodes()
	exitSet := make(map[N]struct{}, len(exits))
	for _, e := range exits {
		exitSet[e] = struct{}{}
	}

	// Reverse postorder over predecessor edges, seeded from every exit.
	var post []N
	visited := make(map[N]struct{})
	for _, e := range exits {
		postorderFrom(e, g.Predecessors, visited, &post)
	}
	rpo := make([]N, len(post))
	copy(rpo, post)
	reverseSlice(rpo)

	// Postorder positions; exits outrank everything.
	pos := make(map[N]int, len(post))
	for i, n := range post {
		pos[n] = i
	}
	exitRank := len(post)
	for _, e := range exits {
		pos[e] = exitRank
	}

	ipdom := make(map[N]IPDom[N], len(g.Nodes()))
	for _, n := range g.Nodes() {
		ipdom[n] = IPDom[N]{Kind: IPDomNone}
	}
	for _, e := range exits {
		ipdom[e] = IPDom[N]{Kind: IPDomNode, Node: e}
	}

	pd := &PostDominators[N]{ipdom: ipdom, pos: pos, exits: exits, exitSet: exitSet}

	changed := true
	for changed {
		changed = false
		for _, node := range rpo {
			if _, isExit := exitSet[node]; isExit {
				continue
			}
			succs := g.Successors(node)
			if len(succs) == 0 {
				continue
			}

			next := IPDom[N]{Kind: IPDomNone}
			for _, succ := range succs {
				switch sv := pd.ipdomOf(succ); sv.Kind {
				case IPDomNode:
					switch next.Kind {
					case IPDomNode:
						next = pd.intersect(next.Node, succ)
					case IPDomNone:
						next = IPDom[N]{Kind: IPDomNode, Node: succ}
					case IPDomAmbiguous:
						// stays ambiguous
					}
				case IPDomNone:
					// successor not yet processed
				case IPDomAmbiguous:
					next = IPDom[N]{Kind: IPDomAmbiguous}
				}
			}

			if next != pd.ipdomOf(node) {
				ipdom[node] = next
				changed = true
			}
		}
	}
	return pd
}

func (pd *PostDominators[N]) ipdomOf(n N) IPDom[N] {
	if v, ok := pd.ipdom[n]; ok {
		return v
	}
	return IPDom[N]{Kind: IPDomNone}
}

// intersect walks two fingers toward the exits until they meet. Two fingers
// stuck on distinct exits, or unable to make progress, mean the paths never
// converge: the result is the ambiguous marker.
func (pd *PostDominators[N]) intersect(f1, f2 N) IPDom[N] {
	for f1 != f2 {
		_, e1 := pd.exitSet[f1]
		_, e2 := pd.exitSet[f2]
		if e1 && e2 {
			return IPDom[N]{Kind: IPDomAmbiguous}
		}

		p1 := pd.pos[f1]
		p2 := pd.pos[f2]
		moved := false
		for p1 < p2 {
			v := pd.ipdomOf(f1)
			if v.Kind != IPDomNode || v.Node == f1 {
				break
			}
			f1 = v.Node
			p1 = pd.pos[f1]
			moved = true
		}
		for p2 < p1 {
			v := pd.ipdomOf(f2)
			if v.Kind != IPDomNode || v.Node == f2 {
				break
			}
			f2 = v.Node
			p2 = pd.pos[f2]
			moved = true
		}
		if !moved {
			return IPDom[N]{Kind: IPDomAmbiguous}
		}
	}
	return IPDom[N]{Kind: IPDomNode, Node: f1}
}

// ExitNodes returns the graph's exit nodes in insertion order.
func (pd *PostDominators[N]) ExitNodes() []N {
	return pd.exits
}

// ImmediatePostDominator returns node's immediate post-dominator result.
// Exit nodes report themselves.
func (pd *PostDominators[N]) ImmediatePostDominator(node N) IPDom[N] {
	return pd.ipdomOf(node)
}

// Reachable reports whether any exit is reachable from node (equivalently,
// whether the node carries post-dominator information, ambiguous included).
func (pd *PostDominators[N]) Reachable(node N) bool {
	return pd.ipdomOf(node).Kind != IPDomNone
}

// IsPostDominatedBy reports whether dom post-dominates node. The relation is
// reflexive.
func (pd *PostDominators[N]) IsPostDominatedBy(node, dom N) bool {
	if node == dom {
		return true
	}
	cur := node
	for {
		v := pd.ipdomOf(cur)
		if v.Kind != IPDomNode {
			return false
		}
		if v.Node == dom {
			return true
		}
		if v.Node == cur {
			return false // reached an exit
		}
		cur = v.Node
	}
}

// PostDominatorsOf returns node's post-dominator chain from the node itself
// to its exit. The chain stops early at an ambiguous or missing link.
func (pd *PostDominators[N]) PostDominatorsOf(node N) []N {
	chain := []N{node}
	cur := node
	for {
		v := pd.ipdomOf(cur)
		if v.Kind != IPDomNode || v.Node == cur {
			return chain
		}
		chain = append(chain, v.Node)
		cur = v.Node
	}
}

// NearestCommonPostDominator finds the first node shared by both chains,
// comparing from the exit end inward. This is the nearest shared convergence
// point of the two nodes, not necessarily the earliest element of either
// chain. The second result is false when the chains never meet.
func (pd *PostDominators[N]) NearestCommonPostDominator(a, b N) (N, bool) {
	if a == b {
		return a, true
	}
	ca := pd.PostDominatorsOf(a)
	cb := pd.PostDominatorsOf(b)
	for i := len(ca) - 1; i >= 0; i-- {
		for j := len(cb) - 1; j >= 0; j-- {
			if ca[i] == cb[j] {
				return ca[i], true
			}
		}
	}
	var zero N
	return zero, false
}
