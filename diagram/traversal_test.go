package diagram

import (
	"testing"
)

// chainDiagram builds a -- b -- c -- d connected by inclusion edges, with a
// side branch b -- x over an input edge.
func chainDiagram(t *testing.T) *Diagram {
	t.Helper()
	d := New("chain")
	build(t, d, []*Node{
		NewNode("a", KindConcept),
		NewNode("b", KindConcept),
		NewNode("c", KindConcept),
		NewNode("d", KindConcept),
		NewNode("x", KindUnion),
	}, []*Edge{
		{ID: "e1", Kind: EdgeInclusion, Source: "a", Target: "b"},
		{ID: "e2", Kind: EdgeInclusion, Source: "b", Target: "c"},
		{ID: "e3", Kind: EdgeInclusion, Source: "c", Target: "d"},
		{ID: "e4", Kind: EdgeInput, Source: "b", Target: "x"},
	})
	return d
}

func TestBFSVisitsAllReachable(t *testing.T) {
	d := chainDiagram(t)
	got := ids(BFS(d, d.Node("a"), TraversalOptions{}))
	want := []string{"a", "b", "c", "x", "d"}
	if !equalIDs(got, want) {
		t.Errorf("BFS order = %v, want %v", got, want)
	}
}

func TestDFSVisitsAllReachable(t *testing.T) {
	d := chainDiagram(t)
	got := ids(DFS(d, d.Node("a"), TraversalOptions{}))
	// DFS explores the most recently discovered branch first.
	want := []string{"a", "b", "x", "c", "d"}
	if !equalIDs(got, want) {
		t.Errorf("DFS order = %v, want %v", got, want)
	}
}

func TestTraversalEdgeFilter(t *testing.T) {
	d := chainDiagram(t)
	onlyInclusion := func(e *Edge) bool { return e.Kind == EdgeInclusion }
	got := ids(BFS(d, d.Node("a"), TraversalOptions{Edges: onlyInclusion}))
	want := []string{"a", "b", "c", "d"}
	if !equalIDs(got, want) {
		t.Errorf("BFS with edge filter = %v, want %v", got, want)
	}
}

func TestTraversalNodeFilterBlocksSubtree(t *testing.T) {
	d := chainDiagram(t)
	notC := func(n *Node) bool { return n.ID != "c" }
	got := ids(BFS(d, d.Node("a"), TraversalOptions{Nodes: notC}))
	// d is only reachable through c, so it is never discovered.
	want := []string{"a", "b", "x"}
	if !equalIDs(got, want) {
		t.Errorf("BFS with node filter = %v, want %v", got, want)
	}
}

func TestTraversalVisitFilterIncludesButDoesNotExpand(t *testing.T) {
	d := chainDiagram(t)
	stopAtC := func(n *Node) bool { return n.ID != "c" }
	got := ids(BFS(d, d.Node("a"), TraversalOptions{Visit: stopAtC}))
	// c itself appears in the result but its neighbors are not explored
	// through it.
	want := []string{"a", "b", "c", "x"}
	if !equalIDs(got, want) {
		t.Errorf("BFS with visit filter = %v, want %v", got, want)
	}
}

func TestTraversalSingleNode(t *testing.T) {
	d := New("single")
	n := NewNode("only", KindConcept)
	if err := d.AddNode(n); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	got := ids(BFS(d, n, TraversalOptions{}))
	if !equalIDs(got, []string{"only"}) {
		t.Errorf("BFS on isolated node = %v, want [only]", got)
	}
}
