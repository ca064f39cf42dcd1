package diagram

// NodeKind enumerates the Graphol node types.
type NodeKind int

// Predicate (atomic) kinds come first, constructor kinds after
// KindDomainRestriction, mirroring the Graphol item ordering.
const (
	KindConcept NodeKind = iota + 1
	KindAttribute
	KindRole
	KindValueDomain
	KindIndividual
	KindLiteral
	KindFacet
	KindDomainRestriction
	KindRangeRestriction
	KindComplement
	KindIntersection
	KindUnion
	KindDisjointUnion
	KindEnumeration
	KindDatatypeRestriction
	KindRoleInverse
	KindRoleChain
	KindPropertyAssertion
	KindHasKey
)

// String returns the Graphol name for the node kind.
func (k NodeKind) String() string {
	switch k {
	case KindConcept:
		return "concept"
	case KindAttribute:
		return "attribute"
	case KindRole:
		return "role"
	case KindValueDomain:
		return "value-domain"
	case KindIndividual:
		return "individual"
	case KindLiteral:
		return "literal"
	case KindFacet:
		return "facet"
	case KindDomainRestriction:
		return "domain-restriction"
	case KindRangeRestriction:
		return "range-restriction"
	case KindComplement:
		return "complement"
	case KindIntersection:
		return "intersection"
	case KindUnion:
		return "union"
	case KindDisjointUnion:
		return "disjoint-union"
	case KindEnumeration:
		return "enumeration"
	case KindDatatypeRestriction:
		return "datatype-restriction"
	case KindRoleInverse:
		return "role-inverse"
	case KindRoleChain:
		return "role-chain"
	case KindPropertyAssertion:
		return "property-assertion"
	case KindHasKey:
		return "has-key"
	default:
		return "unknown"
	}
}

// IsConstructor reports whether the kind represents a logical operator whose
// identity is contextual rather than fixed.
func (k NodeKind) IsConstructor() bool {
	return k >= KindDomainRestriction
}

// IsPredicate reports whether the kind is an atomic predicate node backed by
// an IRI (concept, role, attribute, value-domain, individual).
func (k NodeKind) IsPredicate() bool {
	return k >= KindConcept && k <= KindIndividual
}

// Identity is the semantic role a node plays in the diagram.
type Identity int

const (
	IdentityNeutral Identity = iota
	IdentityConcept
	IdentityRole
	IdentityAttribute
	IdentityValueDomain
	IdentityIndividual
	IdentityValue
	IdentityRoleInstance
	IdentityAttributeInstance
	IdentityFacet
	IdentityUnknown
)

// String returns the display name of the identity.
func (i Identity) String() string {
	switch i {
	case IdentityNeutral:
		return "Neutral"
	case IdentityConcept:
		return "Concept"
	case IdentityRole:
		return "Role"
	case IdentityAttribute:
		return "Attribute"
	case IdentityValueDomain:
		return "ValueDomain"
	case IdentityIndividual:
		return "Individual"
	case IdentityValue:
		return "Value"
	case IdentityRoleInstance:
		return "RoleInstance"
	case IdentityAttributeInstance:
		return "AttributeInstance"
	case IdentityFacet:
		return "Facet"
	default:
		return "Unknown"
	}
}

// RestrictionKind selects the shape a domain/range restriction compiles to.
type RestrictionKind int

const (
	RestrictionNone RestrictionKind = iota
	RestrictionExists
	RestrictionForall
	RestrictionSelf
	RestrictionCardinality
)

// String returns the display name of the restriction kind.
func (r RestrictionKind) String() string {
	switch r {
	case RestrictionExists:
		return "exists"
	case RestrictionForall:
		return "forall"
	case RestrictionSelf:
		return "self"
	case RestrictionCardinality:
		return "cardinality"
	default:
		return "none"
	}
}

// Literal is the lexical payload of a literal node or a facet value.
type Literal struct {
	LexicalForm string
	Datatype    string
	Language    string
}

// Facet describes a facet node: a constraining facet paired with a literal.
type Facet struct {
	ConstrainingFacet string
	Value             Literal
}

// Annotation is a single annotation assertion attached to a predicate node.
type Annotation struct {
	Property string
	Value    string
	IsIRI    bool
}

// Node is a typed vertex of a Graphol diagram. Nodes are owned by their
// diagram; edges reference them by ID.
type Node struct {
	ID   string
	Kind NodeKind

	// IRI backs predicate nodes; empty for constructors and literals.
	IRI string

	// Literal backs literal nodes.
	Literal Literal

	// Facet backs facet nodes.
	Facet Facet

	// Restriction configures domain/range restriction nodes. MinCardinality
	// and MaxCardinality are only consulted when Restriction is
	// RestrictionCardinality; nil means the bound is unconstrained.
	Restriction    RestrictionKind
	MinCardinality *int
	MaxCardinality *int

	// Object property characteristics (role nodes); Functional is also
	// meaningful on attribute nodes.
	Functional        bool
	InverseFunctional bool
	Symmetric         bool
	Asymmetric        bool
	Reflexive         bool
	Irreflexive       bool
	Transitive        bool

	// Annotations attached to the node's IRI.
	Annotations []Annotation

	// Inputs is the insertion-ordered list of incoming Input edge IDs.
	// Operand order matters for role chains and property assertions, so the
	// order is stored explicitly rather than recovered from edge iteration.
	Inputs []string

	identity Identity
}

// NewNode creates a node of the given kind with its initial identity: the
// fixed identity for atomic kinds, Neutral for contextual constructors.
func NewNode(id string, kind NodeKind) *Node {
	n := &Node{ID: id, Kind: kind}
	n.identity = initialIdentity(kind)
	return n
}

func initialIdentity(kind NodeKind) Identity {
	switch kind {
	case KindConcept:
		return IdentityConcept
	case KindRole, KindRoleInverse, KindRoleChain:
		return IdentityRole
	case KindAttribute:
		return IdentityAttribute
	case KindValueDomain, KindDatatypeRestriction:
		return IdentityValueDomain
	case KindIndividual:
		return IdentityIndividual
	case KindLiteral:
		return IdentityValue
	case KindFacet:
		return IdentityFacet
	case KindDomainRestriction:
		return IdentityConcept
	default:
		return IdentityNeutral
	}
}

// Identity returns the node's current identity.
func (n *Node) Identity() Identity {
	return n.identity
}

// SetIdentity sets the node's identity if it is admissible for the node's
// kind; inadmissible values are recorded as Unknown. Only the identity
// inference engine should call this.
func (n *Node) SetIdentity(identity Identity) {
	if identity == IdentityUnknown {
		n.identity = IdentityUnknown
		return
	}
	for _, adm := range n.Identities() {
		if adm == identity {
			n.identity = identity
			return
		}
	}
	n.identity = IdentityUnknown
}

// Identities returns the set of identities the node may assume. Constructor
// kinds whose identity is contextual include Neutral; predicate kinds that
// support punning include Individual alongside their schema identity.
func (n *Node) Identities() []Identity {
	switch n.Kind {
	case KindConcept:
		return []Identity{IdentityConcept, IdentityIndividual}
	case KindRole:
		return []Identity{IdentityRole, IdentityIndividual}
	case KindAttribute:
		return []Identity{IdentityAttribute, IdentityIndividual}
	case KindValueDomain, KindDatatypeRestriction:
		return []Identity{IdentityValueDomain}
	case KindIndividual:
		return []Identity{IdentityIndividual}
	case KindLiteral:
		return []Identity{IdentityValue}
	case KindFacet:
		return []Identity{IdentityFacet}
	case KindDomainRestriction:
		return []Identity{IdentityConcept}
	case KindRangeRestriction, KindIntersection, KindUnion, KindDisjointUnion, KindEnumeration:
		return []Identity{IdentityConcept, IdentityValueDomain, IdentityNeutral}
	case KindComplement:
		return []Identity{IdentityConcept, IdentityRole, IdentityAttribute, IdentityValueDomain, IdentityNeutral}
	case KindRoleInverse, KindRoleChain:
		return []Identity{IdentityRole}
	case KindPropertyAssertion:
		return []Identity{IdentityRoleInstance, IdentityAttributeInstance, IdentityNeutral}
	case KindHasKey:
		// A key never assumes the identity of its operands; it only
		// collects them for the axiom pass.
		return []Identity{IdentityNeutral}
	default:
		return nil
	}
}

// CanBeNeutral reports whether Neutral is among the node's admissible
// identities, i.e. whether the node's identity is contextual.
func (n *Node) CanBeNeutral() bool {
	for _, adm := range n.Identities() {
		if adm == IdentityNeutral {
			return true
		}
	}
	return false
}
