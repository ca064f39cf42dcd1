package diagram

// EdgeKind enumerates the Graphol edge types.
type EdgeKind int

const (
	EdgeInput EdgeKind = iota + 1
	EdgeInclusion
	EdgeEquivalence
	EdgeMembership
	EdgeSame
	EdgeDifferent
)

// String returns the Graphol name for the edge kind.
func (k EdgeKind) String() string {
	switch k {
	case EdgeInput:
		return "input"
	case EdgeInclusion:
		return "inclusion"
	case EdgeEquivalence:
		return "equivalence"
	case EdgeMembership:
		return "membership"
	case EdgeSame:
		return "same"
	case EdgeDifferent:
		return "different"
	default:
		return "unknown"
	}
}

// Edge is a typed relation between two nodes. Endpoints are held by ID; the
// owning diagram resolves them.
type Edge struct {
	ID     string
	Kind   EdgeKind
	Source string
	Target string

	// Equivalent marks an Inclusion edge as a bidirectional subsumption.
	// Meaningless on other kinds.
	Equivalent bool
}

// IsEquivalence reports whether the edge expresses a bidirectional
// subsumption: either an Equivalence edge or an Inclusion edge with the
// equivalence flag set.
func (e *Edge) IsEquivalence() bool {
	return e.Kind == EdgeEquivalence || (e.Kind == EdgeInclusion && e.Equivalent)
}

// Other returns the ID of the endpoint opposite to nodeID, or "" when nodeID
// is not an endpoint of the edge.
func (e *Edge) Other(nodeID string) string {
	switch nodeID {
	case e.Source:
		return e.Target
	case e.Target:
		return e.Source
	default:
		return ""
	}
}
