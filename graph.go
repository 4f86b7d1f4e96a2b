package striplan

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// LayerKind distinguishes a Layered Graph layer's node kind.
type LayerKind int

const (
	FactLayer LayerKind = iota
	ActionLayer
)

func (k LayerKind) String() string {
	if k == ActionLayer {
		return "actions"
	}
	return "facts"
}

// Layer records one append-only slice of the Layered Graph: its node
// indices (in allocation order), its ordinal position, and its kind.
type Layer struct {
	Nodes []int
	Ord   int
	Kind  LayerKind
}

// LayeredGraph is the append-only bipartite graph of spec.md §3/§4.4: nodes
// carry an opaque label (a fact Atom or a GroundAction), layers group nodes,
// and edges connect nodes across (or within) layers. Implemented as an arena
// of index-addressed records with a separate adjacency table, per §9's design
// note, to avoid reference cycles for value-typed labels.
type LayeredGraph struct {
	labels   []interface{}          // index -> label (Atom or GroundAction)
	index    map[interface{}][]int  // label -> indices (via a comparable key, see labelKey)
	adjacent map[int]map[int]struct{}
	layers   []Layer
	layerOf  []int // index -> owning layer ordinal
}

// NewLayeredGraph returns an empty graph.
func NewLayeredGraph() *LayeredGraph {
	return &LayeredGraph{
		index:    make(map[interface{}][]int),
		adjacent: make(map[int]map[int]struct{}),
	}
}

// labelKey returns a comparable key for a label, since GroundAction itself
// (which embeds map-typed Binding/FactSet fields) isn't a valid Go map key.
func labelKey(label interface{}) interface{} {
	switch v := label.(type) {
	case Atom:
		return v
	case GroundAction:
		return v.Key()
	default:
		panic(fmt.Sprintf("striplan: unsupported graph label type %T", label))
	}
}

// AddNodes allocates fresh contiguous indices for labels, updates the
// label->indices reverse map, and returns the allocated indices.
func (g *LayeredGraph) AddNodes(labels []interface{}) []int {
	start := len(g.labels)
	out := make([]int, len(labels))
	for i, l := range labels {
		idx := start + i
		g.labels = append(g.labels, l)
		g.layerOf = append(g.layerOf, -1)
		key := labelKey(l)
		g.index[key] = append(g.index[key], idx)
		out[i] = idx
	}
	return out
}

// edgeFunc decides, given two labels, whether an edge should connect them.
type edgeFunc func(a, b interface{}) bool

// AddLayer allocates a new layer for labels. If a previous layer exists and
// interLayer is non-nil, an edge is added for every (prev, cur) pair for
// which interLayer(prevLabel, curLabel) holds. If intra is non-nil, an edge
// is added for every pair within the new layer for which intra holds.
func (g *LayeredGraph) AddLayer(labels []interface{}, kind LayerKind, intra, interLayer edgeFunc) []int {
	indices := g.AddNodes(labels)

	if len(g.layers) > 0 && interLayer != nil {
		prev := g.layers[len(g.layers)-1]
		for _, i1 := range prev.Nodes {
			for _, i2 := range indices {
				if interLayer(g.labels[i1], g.labels[i2]) {
					g.addEdge(i1, i2)
				}
			}
		}
	}
	if intra != nil {
		for a := 0; a < len(indices); a++ {
			for b := a + 1; b < len(indices); b++ {
				i1, i2 := indices[a], indices[b]
				if intra(g.labels[i1], g.labels[i2]) {
					g.addEdge(i1, i2)
				}
			}
		}
	}

	ord := len(g.layers)
	for _, idx := range indices {
		g.layerOf[idx] = ord
	}
	g.layers = append(g.layers, Layer{Nodes: indices, Ord: ord, Kind: kind})
	return indices
}

// LayerOf returns the ordinal of the layer that owns node index i.
func (g *LayeredGraph) LayerOf(i int) int { return g.layerOf[i] }

func (g *LayeredGraph) addEdge(a, b int) {
	if g.adjacent[a] == nil {
		g.adjacent[a] = make(map[int]struct{})
	}
	if g.adjacent[b] == nil {
		g.adjacent[b] = make(map[int]struct{})
	}
	g.adjacent[a][b] = struct{}{}
	g.adjacent[b][a] = struct{}{}
}

// Neighbors returns the node indices adjacent to i.
func (g *LayeredGraph) Neighbors(i int) []int {
	out := make([]int, 0, len(g.adjacent[i]))
	for n := range g.adjacent[i] {
		out = append(out, n)
	}
	return out
}

// Layer returns the i-th layer.
func (g *LayeredGraph) Layer(i int) Layer { return g.layers[i] }

// NumLayers returns the number of layers appended so far.
func (g *LayeredGraph) NumLayers() int { return len(g.layers) }

// Label returns the label for node index i.
func (g *LayeredGraph) Label(i int) interface{} { return g.labels[i] }

// LabelsOf returns the labels for the given indices, in order.
func (g *LayeredGraph) LabelsOf(indices []int) []interface{} {
	out := make([]interface{}, len(indices))
	for i, idx := range indices {
		out[i] = g.labels[idx]
	}
	return out
}

// IndicesOf returns every node index recorded for label (there may be more
// than one, across layers).
func (g *LayeredGraph) IndicesOf(label interface{}) []int {
	return g.index[labelKey(label)]
}

// LastIndexOf returns the most recently allocated (largest) index recorded
// for label, or -1 if label was never added. The heuristic extraction
// routine uses this as a fact's canonical RPG identity: "the most fully
// grounded layer" (spec.md §4.5).
func (g *LayeredGraph) LastIndexOf(label interface{}) int {
	idxs := g.index[labelKey(label)]
	if len(idxs) == 0 {
		return -1
	}
	return idxs[len(idxs)-1]
}

// Dump renders the graph's layers and edges as a tree, for --explain CLI
// output and golden-style test assertions.
func (g *LayeredGraph) Dump() string {
	tree := treeprint.New()
	tree.SetValue("relaxed planning graph")
	for _, layer := range g.layers {
		branch := tree.AddBranch(fmt.Sprintf("layer %d (%s)", layer.Ord, layer.Kind))
		for _, idx := range layer.Nodes {
			label := g.labels[idx]
			leaf := branch.AddBranch(fmt.Sprintf("#%d %v", idx, label))
			for _, n := range g.Neighbors(idx) {
				if n < idx {
					continue // each edge printed once, from its lower-numbered endpoint
				}
				leaf.AddNode(fmt.Sprintf("-> #%d %v", n, g.labels[n]))
			}
		}
	}
	return tree.String()
}
