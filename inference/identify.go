// Package inference computes the semantic identity of diagram nodes from
// their graph context.
//
// Identity flows along input, inclusion, and equivalence edges: atomic nodes
// carry a fixed identity, constructor nodes inherit one from their neighbors.
// Where the neighborhood disagrees the node is marked Unknown; the engine
// itself never fails, deferring hard errors to the expression compiler.
package inference

import (
	"github.com/c360studio/graphol/diagram"
)

// nodeSet tracks diagram nodes by ID.
type nodeSet map[string]*diagram.Node

func (s nodeSet) add(n *diagram.Node)      { s[n.ID] = n }
func (s nodeSet) remove(n *diagram.Node)   { delete(s, n.ID) }
func (s nodeSet) has(n *diagram.Node) bool { _, ok := s[n.ID]; return ok }

// Identify recomputes the identity of every node in the undetermined region
// reachable from source. The traversal expands only through nodes whose
// identity is still contextual, so already-resolved subgraphs bound the
// propagation.
//
// The pass is idempotent: running it twice without intervening mutation
// yields identical identities.
func Identify(d *diagram.Diagram, source *diagram.Node) {
	followable := func(e *diagram.Edge) bool {
		switch e.Kind {
		case diagram.EdgeInput, diagram.EdgeInclusion, diagram.EdgeEquivalence:
			return true
		default:
			return false
		}
	}
	contextual := func(n *diagram.Node) bool { return n.CanBeNeutral() }

	collection := diagram.BFS(d, source, diagram.TraversalOptions{
		Edges: followable,
		Visit: contextual,
	})

	weak := make(nodeSet)
	strong := make(nodeSet)
	excluded := make(nodeSet)
	for _, n := range collection {
		if contextual(n) {
			weak.add(n)
		} else {
			strong.add(n)
		}
	}

	for _, n := range collection {
		if !weak.has(n) {
			continue
		}
		switch n.Kind {
		case diagram.KindEnumeration:
			identifyEnumeration(d, n, strong)
		case diagram.KindRangeRestriction:
			identifyRangeRestriction(d, n, strong)
		case diagram.KindPropertyAssertion:
			identifyPropertyAssertion(d, n, strong)
			// Property assertions operate at instance level and never
			// contribute to, or inherit from, the schema-level vote.
			weak.remove(n)
			excluded.add(n)
		}
	}

	inherited := unanimous(strong)
	for _, n := range collection {
		if weak.has(n) && !strong.has(n) && !excluded.has(n) {
			n.SetIdentity(inherited)
		}
	}
}

// IdentifyAll resolves every contextual identity in the diagram by running
// the inference pass from each node in turn. Already-resolved regions are
// skipped, so the cost stays proportional to the undetermined surface.
func IdentifyAll(d *diagram.Diagram) {
	for _, n := range d.Nodes() {
		Identify(d, n)
	}
}

// unanimous implements the identity merge rule: an empty contributing set
// yields Neutral, a single shared identity yields that identity, and any
// disagreement yields Unknown. This is a unanimity check, not a plurality
// vote.
func unanimous(contributors nodeSet) diagram.Identity {
	result := diagram.IdentityNeutral
	first := true
	for _, n := range contributors {
		if first {
			result = n.Identity()
			first = false
			continue
		}
		if n.Identity() != result {
			return diagram.IdentityUnknown
		}
	}
	return result
}

// identifyEnumeration resolves an Enumeration node from its individual and
// literal operands: all individuals make it a Concept, all values make it a
// ValueDomain. The consumed operands are removed from the strong set since
// they describe the enumeration's members, not its own identity.
func identifyEnumeration(d *diagram.Diagram, n *diagram.Node, strong nodeSet) {
	inputEdge := func(e *diagram.Edge) bool {
		return e.Kind == diagram.EdgeInput && e.Target == n.ID
	}
	memberNode := func(x *diagram.Node) bool {
		return x.Kind == diagram.KindIndividual || x.Kind == diagram.KindLiteral
	}
	operands := d.IncomingNodes(n, inputEdge, memberNode)

	computed := diagram.IdentityNeutral
	for _, operand := range operands {
		mapped := diagram.IdentityConcept
		if operand.Identity() == diagram.IdentityValue {
			mapped = diagram.IdentityValueDomain
		}
		if computed == diagram.IdentityNeutral {
			computed = mapped
		} else if computed != mapped {
			computed = diagram.IdentityUnknown
			break
		}
	}

	n.SetIdentity(computed)
	if n.Identity() != diagram.IdentityNeutral {
		strong.add(n)
	}
	for _, operand := range operands {
		strong.remove(operand)
	}
}

// identifyRangeRestriction resolves a RangeRestriction node from the
// identity of its carrier operand: a role or concept carrier makes it a
// Concept, an attribute or value-domain carrier makes it a ValueDomain.
func identifyRangeRestriction(d *diagram.Diagram, n *diagram.Node, strong nodeSet) {
	inputEdge := func(e *diagram.Edge) bool {
		return e.Kind == diagram.EdgeInput && e.Target == n.ID
	}
	carrier := func(x *diagram.Node) bool {
		if x.CanBeNeutral() {
			return false
		}
		switch x.Identity() {
		case diagram.IdentityRole, diagram.IdentityAttribute,
			diagram.IdentityConcept, diagram.IdentityValueDomain:
			return true
		default:
			return false
		}
	}
	operands := d.IncomingNodes(n, inputEdge, carrier)

	computed := diagram.IdentityNeutral
	for _, operand := range operands {
		mapped := diagram.IdentityConcept
		switch operand.Identity() {
		case diagram.IdentityAttribute, diagram.IdentityValueDomain:
			mapped = diagram.IdentityValueDomain
		}
		if computed == diagram.IdentityNeutral {
			computed = mapped
		} else if computed != mapped {
			computed = diagram.IdentityUnknown
			break
		}
	}

	n.SetIdentity(computed)
	if n.Identity() != diagram.IdentityNeutral {
		strong.add(n)
	}
	for _, operand := range operands {
		strong.remove(operand)
	}
}

// identifyPropertyAssertion resolves a PropertyAssertion node. A membership
// edge to a role or attribute decides the instance flavor directly; failing
// that, two or more individual operands make it a role instance, downgraded
// to an attribute instance when a value participates.
func identifyPropertyAssertion(d *diagram.Diagram, n *diagram.Node, strong nodeSet) {
	membership := func(e *diagram.Edge) bool {
		return e.Kind == diagram.EdgeMembership && e.Source == n.ID
	}
	property := func(x *diagram.Node) bool {
		switch x.Kind {
		case diagram.KindRole, diagram.KindRoleInverse, diagram.KindAttribute:
			return true
		default:
			return false
		}
	}
	computed := diagram.IdentityNeutral
	for _, target := range d.OutgoingNodes(n, membership, property) {
		if target.Kind == diagram.KindAttribute {
			computed = diagram.IdentityAttributeInstance
		} else {
			computed = diagram.IdentityRoleInstance
		}
		break
	}

	operandNode := func(x *diagram.Node) bool {
		return x.Kind == diagram.KindIndividual || x.Kind == diagram.KindLiteral
	}
	operands := d.InputNodes(n, operandNode)

	if computed == diagram.IdentityNeutral && len(operands) >= 2 {
		computed = diagram.IdentityRoleInstance
		for _, operand := range operands {
			if operand.Identity() == diagram.IdentityValue {
				computed = diagram.IdentityAttributeInstance
				break
			}
		}
	}

	n.SetIdentity(computed)
	for _, operand := range operands {
		strong.remove(operand)
	}
}
