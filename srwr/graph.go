package srwr

import "strconv"

// Edge is an outgoing link as seen from a node.
// positive weights are trust links, negative weights are distrust links
type Edge struct {
	Target int
	Weight float64
}

// Graph is the read-only adjacency source the engine ranks over.
// Outlinks returns ok == false for a dangling node (no outgoing links).
// a node that returns edges is never dangling, even if every weight is 0.
// weights must be finite, rankers reject graphs that break this
type Graph interface {
	Size() int
	Outlinks(i int) (edges []Edge, ok bool)
}

// WeightedGraph is a signed weighted undirected graph with named nodes.
// It satisfies Graph.
type WeightedGraph struct {
	ids   []string
	index map[string]int
	edges [][]Edge
	// position of target in edges[source]
	slots []map[int]int
}

// NewWeightedGraph initializes and returns an empty graph.
func NewWeightedGraph() *WeightedGraph {
	return &WeightedGraph{
		index: make(map[string]int),
	}
}

// AddNode returns the index of id, adding the node if it doesn't exist
func (graph *WeightedGraph) AddNode(id string) int {
	if i, ok := graph.index[id]; ok {
		return i
	}
	i := len(graph.ids)
	graph.ids = append(graph.ids, id)
	graph.index[id] = i
	graph.edges = append(graph.edges, nil)
	graph.slots = append(graph.slots, map[int]int{})
	return i
}

// Index looks up the index of a named node.
func (graph *WeightedGraph) Index(id string) (int, bool) {
	i, ok := graph.index[id]
	return i, ok
}

// ID returns the name of node i. Nodes added by index only are named by their index.
func (graph *WeightedGraph) ID(i int) string {
	if i < 0 || i >= len(graph.ids) {
		return strconv.Itoa(i)
	}
	return graph.ids[i]
}

// Size returns the number of nodes.
func (graph *WeightedGraph) Size() int {
	return len(graph.ids)
}

// Outlinks returns the links of node i in insertion order.
// The returned slice must not be modified.
func (graph *WeightedGraph) Outlinks(i int) ([]Edge, bool) {
	if i < 0 || i >= len(graph.edges) || len(graph.edges[i]) == 0 {
		return nil, false
	}
	return graph.edges[i], true
}

// Link creates a weighted undirected edge between a source-target node pair.
// If the edge already exists, the weight is incremented, so opposite links cancel out.
func (graph *WeightedGraph) Link(source, target string, weight float64) {
	a := graph.AddNode(source)
	b := graph.AddNode(target)
	graph.LinkIndex(a, b, weight)
}

// LinkIndex is Link for nodes addressed by index. Missing nodes up to the
// larger index are created and named by their index, or by their index
// followed by underscores when that name is already taken.
func (graph *WeightedGraph) LinkIndex(a, b int, weight float64) {
	if a < 0 || b < 0 {
		return
	}
	for n := graph.Size(); n <= a || n <= b; n++ {
		graph.AddNode(graph.freeID(n))
	}
	graph.addEdge(a, b, weight)
	if a != b {
		graph.addEdge(b, a, weight)
	}
}

// Edges calls fn once for every undirected edge.
func (graph *WeightedGraph) Edges(fn func(a, b int, weight float64)) {
	for a, links := range graph.edges {
		for _, e := range links {
			if e.Target >= a {
				fn(a, e.Target, e.Weight)
			}
		}
	}
}

// freeID returns a name for node n that no other node uses
func (graph *WeightedGraph) freeID(n int) string {
	id := strconv.Itoa(n)
	for {
		if _, taken := graph.index[id]; !taken {
			return id
		}
		id += "_"
	}
}

func (graph *WeightedGraph) addEdge(source, target int, weight float64) {
	if pos, ok := graph.slots[source][target]; ok {
		graph.edges[source][pos].Weight += weight
		if graph.edges[source][pos].Weight == 0 {
			graph.removeEdge(source, target)
		}
		return
	}
	if weight == 0 {
		return
	}
	graph.slots[source][target] = len(graph.edges[source])
	graph.edges[source] = append(graph.edges[source], Edge{Target: target, Weight: weight})
}

// removeEdge removes edge from graph, keeping the order of the remaining links
func (graph *WeightedGraph) removeEdge(source, target int) {
	pos := graph.slots[source][target]
	links := graph.edges[source]
	copy(links[pos:], links[pos+1:])
	graph.edges[source] = links[:len(links)-1]
	delete(graph.slots[source], target)
	for _, e := range graph.edges[source][pos:] {
		graph.slots[source][e.Target]--
	}
}
