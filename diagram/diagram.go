// Package diagram provides the Graphol diagram graph model: typed nodes and
// edges, pure graph queries, and generic filtered traversal.
package diagram

import (
	"fmt"

	"github.com/google/uuid"
)

// EdgeFilter selects edges during graph queries and traversal.
type EdgeFilter func(*Edge) bool

// NodeFilter selects nodes during graph queries and traversal.
type NodeFilter func(*Node) bool

// AnyEdge accepts every edge.
func AnyEdge(*Edge) bool { return true }

// AnyNode accepts every node.
func AnyNode(*Node) bool { return true }

// Diagram owns a set of nodes and the edges connecting them. All query
// methods are pure; mutation happens only through AddNode/AddEdge and the
// identity inference engine.
type Diagram struct {
	ID   string
	Name string

	nodes     map[string]*Node
	edges     map[string]*Edge
	nodeOrder []string
	edgeOrder []string

	// edgesByNode indexes the edges touching each node, in insertion order.
	edgesByNode map[string][]string
}

// New creates an empty diagram with a fresh ID.
func New(name string) *Diagram {
	return &Diagram{
		ID:          uuid.NewString(),
		Name:        name,
		nodes:       make(map[string]*Node),
		edges:       make(map[string]*Edge),
		edgesByNode: make(map[string][]string),
	}
}

// AddNode inserts a node. Inserting a duplicate ID is an error.
func (d *Diagram) AddNode(n *Node) error {
	if n == nil {
		return fmt.Errorf("diagram %s: nil node", d.Name)
	}
	if _, ok := d.nodes[n.ID]; ok {
		return fmt.Errorf("diagram %s: duplicate node id %q", d.Name, n.ID)
	}
	d.nodes[n.ID] = n
	d.nodeOrder = append(d.nodeOrder, n.ID)
	return nil
}

// AddEdge inserts an edge between two existing nodes. Input edges must
// terminate at a constructor node; the edge is appended to the target's
// ordered operand list so that role chains and property assertions keep
// their operand order.
func (d *Diagram) AddEdge(e *Edge) error {
	if e == nil {
		return fmt.Errorf("diagram %s: nil edge", d.Name)
	}
	if _, ok := d.edges[e.ID]; ok {
		return fmt.Errorf("diagram %s: duplicate edge id %q", d.Name, e.ID)
	}
	if _, ok := d.nodes[e.Source]; !ok {
		return fmt.Errorf("diagram %s: edge %q: unknown source node %q", d.Name, e.ID, e.Source)
	}
	target, ok := d.nodes[e.Target]
	if !ok {
		return fmt.Errorf("diagram %s: edge %q: unknown target node %q", d.Name, e.ID, e.Target)
	}
	if e.Kind == EdgeInput && !target.Kind.IsConstructor() {
		return fmt.Errorf("diagram %s: edge %q: input edge must terminate at a constructor node, got %s", d.Name, e.ID, target.Kind)
	}
	d.edges[e.ID] = e
	d.edgeOrder = append(d.edgeOrder, e.ID)
	d.edgesByNode[e.Source] = append(d.edgesByNode[e.Source], e.ID)
	if e.Target != e.Source {
		d.edgesByNode[e.Target] = append(d.edgesByNode[e.Target], e.ID)
	}
	if e.Kind == EdgeInput {
		target.Inputs = append(target.Inputs, e.ID)
	}
	return nil
}

// Node returns the node with the given ID, or nil.
func (d *Diagram) Node(id string) *Node {
	return d.nodes[id]
}

// Edge returns the edge with the given ID, or nil.
func (d *Diagram) Edge(id string) *Edge {
	return d.edges[id]
}

// Nodes returns every node in insertion order.
func (d *Diagram) Nodes() []*Node {
	out := make([]*Node, 0, len(d.nodeOrder))
	for _, id := range d.nodeOrder {
		out = append(out, d.nodes[id])
	}
	return out
}

// Edges returns every edge in insertion order.
func (d *Diagram) Edges() []*Edge {
	out := make([]*Edge, 0, len(d.edgeOrder))
	for _, id := range d.edgeOrder {
		out = append(out, d.edges[id])
	}
	return out
}

// NodeEdges returns the edges touching n in insertion order.
func (d *Diagram) NodeEdges(n *Node) []*Edge {
	ids := d.edgesByNode[n.ID]
	out := make([]*Edge, 0, len(ids))
	for _, id := range ids {
		out = append(out, d.edges[id])
	}
	return out
}

// Other resolves the endpoint of e opposite to n, or nil.
func (d *Diagram) Other(e *Edge, n *Node) *Node {
	return d.nodes[e.Other(n.ID)]
}

// IncomingNodes returns the set of nodes connected to n by an edge accepted
// by edgeFilter where n is the edge target, plus the far endpoints of
// equivalence edges (which carry meaning in both directions), filtered by
// nodeFilter.
func (d *Diagram) IncomingNodes(n *Node, edgeFilter EdgeFilter, nodeFilter NodeFilter) []*Node {
	return d.neighbors(n, edgeFilter, nodeFilter, func(e *Edge) bool {
		return e.Target == n.ID || e.Kind == EdgeEquivalence
	})
}

// OutgoingNodes returns the set of nodes connected to n by an edge accepted
// by edgeFilter where n is the edge source, plus the far endpoints of
// equivalence edges, filtered by nodeFilter.
func (d *Diagram) OutgoingNodes(n *Node, edgeFilter EdgeFilter, nodeFilter NodeFilter) []*Node {
	return d.neighbors(n, edgeFilter, nodeFilter, func(e *Edge) bool {
		return e.Source == n.ID || e.Kind == EdgeEquivalence
	})
}

// AdjacentNodes returns the set of nodes connected to n in either direction
// by an edge accepted by edgeFilter, filtered by nodeFilter.
func (d *Diagram) AdjacentNodes(n *Node, edgeFilter EdgeFilter, nodeFilter NodeFilter) []*Node {
	return d.neighbors(n, edgeFilter, nodeFilter, func(*Edge) bool { return true })
}

func (d *Diagram) neighbors(n *Node, edgeFilter EdgeFilter, nodeFilter NodeFilter, direction func(*Edge) bool) []*Node {
	if edgeFilter == nil {
		edgeFilter = AnyEdge
	}
	if nodeFilter == nil {
		nodeFilter = AnyNode
	}
	var out []*Node
	seen := make(map[string]bool)
	for _, e := range d.NodeEdges(n) {
		if !direction(e) || !edgeFilter(e) {
			continue
		}
		other := d.Other(e, n)
		if other == nil || seen[other.ID] || !nodeFilter(other) {
			continue
		}
		seen[other.ID] = true
		out = append(out, other)
	}
	return out
}

// InputNodes returns the operand nodes of a constructor in input-edge
// insertion order, filtered by nodeFilter.
func (d *Diagram) InputNodes(n *Node, nodeFilter NodeFilter) []*Node {
	if nodeFilter == nil {
		nodeFilter = AnyNode
	}
	out := make([]*Node, 0, len(n.Inputs))
	for _, edgeID := range n.Inputs {
		e := d.edges[edgeID]
		if e == nil {
			continue
		}
		operand := d.Other(e, n)
		if operand != nil && nodeFilter(operand) {
			out = append(out, operand)
		}
	}
	return out
}
