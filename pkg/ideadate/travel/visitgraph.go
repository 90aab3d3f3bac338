package travel

import (
	"gonum.org/v1/gonum/graph/simple"
)

// VisitGraph tracks the directed graph of node-key transitions visited
// while walking a journey, so the friction penalty's backtracking detector
// (§4.1) can ask "has this destination been visited before, as a node
// distinct from the immediately preceding one". It is an int64-indexed
// gonum/graph/simple.DirectedGraph with an explicit key->id map.
type VisitGraph struct {
	g       *simple.DirectedGraph
	keyToID map[string]int64
	nextID  int64
	lastKey string
	hasLast bool
}

// NewVisitGraph returns an empty visit graph.
func NewVisitGraph() *VisitGraph {
	return &VisitGraph{
		g:       simple.NewDirectedGraph(),
		keyToID: make(map[string]int64),
	}
}

// Visit records a transition into key and reports whether it is a revisit:
// key was seen before, as some prior node, and key differs from the node
// immediately preceding this visit.
func (vg *VisitGraph) Visit(key string) bool {
	id, known := vg.keyToID[key]
	if !known {
		id = vg.nextID
		vg.nextID++
		vg.keyToID[key] = id
	}

	// The graph's own node set, not the key map, is the source of truth for
	// "has this destination been visited before" — the map only resolves a
	// key to its node id.
	existed := vg.g.Node(id) != nil
	if !existed {
		vg.g.AddNode(simple.Node(id))
	}

	isRevisit := existed && (!vg.hasLast || vg.lastKey != key)

	if vg.hasLast && vg.lastKey != key {
		fromID := vg.keyToID[vg.lastKey]
		if !vg.g.HasEdgeFromTo(fromID, id) {
			vg.g.SetEdge(vg.g.NewEdge(simple.Node(fromID), simple.Node(id)))
		}
	}

	vg.lastKey = key
	vg.hasLast = true
	return isRevisit
}

// NodeCount returns the number of distinct node keys visited so far.
func (vg *VisitGraph) NodeCount() int {
	return vg.g.Nodes().Len()
}

// CountRevisits walks keys in order, visiting a fresh graph, and returns
// the number of revisits per the §4.1 backtracking definition.
func CountRevisits(keys []string) int {
	vg := NewVisitGraph()
	count := 0
	for _, k := range keys {
		if vg.Visit(k) {
			count++
		}
	}
	return count
}
