package graph

// Dominators holds the immediate-dominator relation of a graph, computed
// from a single entry node with the iterative Cooper-Harvey-Kennedy
// algorithm.
//
// Nodes unreachable from the entry have no immediate dominator; every query
// treats that as a valid state rather than an error.
type Dominators[N comparable] struct {
	idom  map[N]N
	rpo   []N
	pos   map[N]int
	entry N
}

// ComputeDominators computes immediate dominators for every node reachable
// from entry by following successor edges.
//
// The fixed point iterates in reverse postorder: each node's candidate
// immediate dominator is the intersection (nearest common ancestor in the
// partially built dominator tree, ordered by reverse-postorder position) of
// its already-processed predecessors, until nothing changes.
func ComputeDominators[N comparable](g *Directed[N], entry N) *Dominators[N] {
	var post []N
	postorderFrom(entry, g.Successors, make(map[N]struct{}), &post)
	reverseSlice(post)
	rpo := post

	pos := make(map[N]int, len(rpo))
	for i, n := range rpo {
		pos[n] = i
	}

	idom := make(map[N]N, len(rpo))
	idom[entry] = entry

	d := &Dominators[N]{idom: idom, rpo: rpo, pos: pos, entry: entry}

	changed := true
	for changed {
		changed = false
		for _, node := range rpo {
			if node == entry {
				continue
			}
			preds := g.Predecessors(node)
			if len(preds) == 0 {
				continue
			}

			// Seed with the first already-processed predecessor, then
			// intersect the rest.
			var newIdom N
			seeded := false
			for _, p := range preds {
				if _, ok := idom[p]; ok {
					newIdom = p
					seeded = true
					break
				}
			}
			if !seeded {
				continue
			}
			for _, p := range preds {
				if p == newIdom {
					continue
				}
				if _, ok := idom[p]; ok {
					newIdom = d.intersect(newIdom, p)
				}
			}

			if cur, ok := idom[node]; !ok || cur != newIdom {
				idom[node] = newIdom
				changed = true
			}
		}
	}
	return d
}

// intersect walks two fingers up the partial dominator tree until they meet,
// using reverse-postorder position as the ordering key.
func (d *Dominators[N]) intersect(f1, f2 N) N {
	p1 := d.rpoPos(f1)
	p2 := d.rpoPos(f2)
	for f1 != f2 {
		moved := false
		for p1 > p2 {
			up, ok := d.idom[f1]
			if !ok || up == f1 {
				break
			}
			f1 = up
			p1 = d.rpoPos(f1)
			moved = true
		}
		for p2 > p1 {
			up, ok := d.idom[f2]
			if !ok || up == f2 {
				break
			}
			f2 = up
			p2 = d.rpoPos(f2)
			moved = true
		}
		if !moved {
			break
		}
	}
	return f1
}

func (d *Dominators[N]) rpoPos(n N) int {
	if p, ok := d.pos[n]; ok {
		return p
	}
	return int(^uint(0) >> 1) // unreachable nodes sort last
}

// Entry returns the entry node the relation was computed from.
func (d *Dominators[N]) Entry() N {
	return d.entry
}

// Reachable reports whether node was reached from the entry.
func (d *Dominators[N]) Reachable(node N) bool {
	_, ok := d.idom[node]
	return ok
}

// Dominates reports whether dom dominates node. The relation is reflexive.
func (d *Dominators[N]) Dominates(dom, node N) bool {
	if dom == node {
		return true
	}
	cur := node
	for {
		up, ok := d.idom[cur]
		if !ok {
			return false
		}
		if up == dom {
			return true
		}
		if up == cur {
			return false // reached entry
		}
		cur = up
	}
}

// StrictlyDominates reports whether dom dominates node and dom != node.
func (d *Dominators[N]) StrictlyDominates(dom, node N) bool {
	return dom != node && d.Dominates(dom, node)
}

// DominatorsOf returns node's full dominator chain, from the node itself up
// to and including the entry. Unreachable nodes yield only themselves.
func (d *Dominators[N]) DominatorsOf(node N) []N {
	chain := []N{node}
	cur := node
	for {
		up, ok := d.idom[cur]
		if !ok || up == cur {
			return chain
		}
		chain = append(chain, up)
		cur = up
	}
}

// ImmediateDominator returns node's immediate dominator. The second result
// is false for the entry and for unreachable nodes.
func (d *Dominators[N]) ImmediateDominator(node N) (N, bool) {
	up, ok := d.idom[node]
	if !ok || up == node {
		var zero N
		return zero, false
	}
	return up, true
}

// DominatorTree returns the dominator tree as a map from each node to its
// children. Every reachable node appears as a key, leaves with an empty
// child list.
func (d *Dominators[N]) DominatorTree() map[N][]N {
	tree := make(map[N][]N, len(d.idom))
	tree[d.entry] = nil
	for _, node := range d.rpo {
		up, ok := d.idom[node]
		if !ok {
			continue
		}
		if up != node {
			tree[up] = append(tree[up], node)
		}
		if _, ok := tree[node]; !ok {
			tree[node] = nil
		}
	}
	return tree
}
