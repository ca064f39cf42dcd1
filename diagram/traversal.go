package diagram

// TraversalOptions carries the pluggable filters for BFS and DFS.
//
//   - Edges: an edge is followed only if the filter accepts it.
//   - Nodes: a node rejected by the filter is neither visited nor expanded,
//     unless it is reachable through some other accepted node.
//   - Visit: a node rejected by the filter IS included in the result, but its
//     neighbors are not explored through it.
//
// A nil filter accepts everything.
type TraversalOptions struct {
	Edges EdgeFilter
	Nodes NodeFilter
	Visit NodeFilter
}

func (o TraversalOptions) normalize() TraversalOptions {
	if o.Edges == nil {
		o.Edges = AnyEdge
	}
	if o.Nodes == nil {
		o.Nodes = AnyNode
	}
	if o.Visit == nil {
		o.Visit = AnyNode
	}
	return o
}

// BFS performs a breadth-first traversal from source and returns the visited
// nodes ordered by visit time.
func BFS(d *Diagram, source *Node, opts TraversalOptions) []*Node {
	opts = opts.normalize()
	queue := []*Node{source}
	visited := map[string]bool{source.ID: true}
	var ordered []*Node
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		ordered = append(ordered, node)
		if !opts.Visit(node) {
			continue
		}
		for _, e := range d.NodeEdges(node) {
			if !opts.Edges(e) {
				continue
			}
			next := d.Other(e, node)
			if next == nil || visited[next.ID] || !opts.Nodes(next) {
				continue
			}
			visited[next.ID] = true
			queue = append(queue, next)
		}
	}
	return ordered
}

// DFS performs a depth-first traversal from source and returns the visited
// nodes ordered by visit time.
func DFS(d *Diagram, source *Node, opts TraversalOptions) []*Node {
	opts = opts.normalize()
	stack := []*Node{source}
	visited := make(map[string]bool)
	var ordered []*Node
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[node.ID] {
			continue
		}
		visited[node.ID] = true
		ordered = append(ordered, node)
		if !opts.Visit(node) {
			continue
		}
		for _, e := range d.NodeEdges(node) {
			if !opts.Edges(e) {
				continue
			}
			next := d.Other(e, node)
			if next == nil || visited[next.ID] || !opts.Nodes(next) {
				continue
			}
			stack = append(stack, next)
		}
	}
	return ordered
}
