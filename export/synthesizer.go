package export

import (
	"github.com/c360studio/graphol/config"
	"github.com/c360studio/graphol/diagram"
	"github.com/c360studio/graphol/owl"
)

// Synthesizer turns diagram structure into OWL 2 axioms. Node-level axioms
// (declarations come from the compiler, characteristics, disjointness,
// domains and ranges, annotations) are derived per node; assertion edges are
// dispatched on their kind and endpoint identities.
type Synthesizer struct {
	d        *diagram.Diagram
	compiler *Compiler
	factory  *owl.Factory
	cfg      config.ExportConfig
	axioms   *owl.AxiomSet
}

// NewSynthesizer creates a synthesizer sharing the compiler's pass state.
func NewSynthesizer(d *diagram.Diagram, compiler *Compiler, factory *owl.Factory, cfg config.ExportConfig, axioms *owl.AxiomSet) *Synthesizer {
	return &Synthesizer{d: d, compiler: compiler, factory: factory, cfg: cfg, axioms: axioms}
}

// add records an axiom, subject to the configured axiom filter.
func (s *Synthesizer) add(a owl.Axiom) {
	if s.cfg.Enabled(a.Type) {
		s.axioms.Add(a)
	}
}

// NodeAxioms derives the axioms a single node contributes independent of any
// assertion edge.
func (s *Synthesizer) NodeAxioms(n *diagram.Node) error {
	switch n.Kind {
	case diagram.KindRole:
		if err := s.roleCharacteristics(n); err != nil {
			return err
		}
	case diagram.KindAttribute:
		if n.Functional {
			expr, err := s.compiler.Compile(n)
			if err != nil {
				return err
			}
			s.add(s.factory.FunctionalDataProperty(expr))
		}
	case diagram.KindDisjointUnion:
		if err := s.disjointUnion(n); err != nil {
			return err
		}
	case diagram.KindComplement:
		if err := s.complementDisjointness(n); err != nil {
			return err
		}
	case diagram.KindDomainRestriction:
		if err := s.domainAxioms(n); err != nil {
			return err
		}
	case diagram.KindRangeRestriction:
		if err := s.rangeAxioms(n); err != nil {
			return err
		}
	case diagram.KindHasKey:
		if err := s.hasKey(n); err != nil {
			return err
		}
	}
	if n.Kind.IsPredicate() && len(n.Annotations) > 0 {
		s.annotations(n)
	}
	return nil
}

func (s *Synthesizer) roleCharacteristics(n *diagram.Node) error {
	if !n.Functional && !n.InverseFunctional && !n.Symmetric && !n.Asymmetric &&
		!n.Reflexive && !n.Irreflexive && !n.Transitive {
		return nil
	}
	expr, err := s.compiler.Compile(n)
	if err != nil {
		return err
	}
	if n.Functional {
		s.add(s.factory.FunctionalObjectProperty(expr))
	}
	if n.InverseFunctional {
		s.add(s.factory.InverseFunctionalObjectProperty(expr))
	}
	if n.Symmetric {
		s.add(s.factory.SymmetricObjectProperty(expr))
	}
	if n.Asymmetric {
		s.add(s.factory.AsymmetricObjectProperty(expr))
	}
	if n.Reflexive {
		s.add(s.factory.ReflexiveObjectProperty(expr))
	}
	if n.Irreflexive {
		s.add(s.factory.IrreflexiveObjectProperty(expr))
	}
	if n.Transitive {
		s.add(s.factory.TransitiveObjectProperty(expr))
	}
	return nil
}

// disjointUnion emits pairwise disjointness over the union's operands. The
// covering equivalence comes from whatever inclusion edges the node takes
// part in.
func (s *Synthesizer) disjointUnion(n *diagram.Node) error {
	if n.Identity() != diagram.IdentityConcept || !s.cfg.Enabled(owl.AxiomDisjointClasses) {
		return nil
	}
	operands := s.d.InputNodes(n, func(x *diagram.Node) bool {
		return x.Identity() == diagram.IdentityConcept
	})
	if len(operands) < 2 {
		return nil
	}
	exprs := make([]owl.Expression, len(operands))
	for i, operand := range operands {
		expr, err := s.compiler.Compile(operand)
		if err != nil {
			return err
		}
		exprs[i] = expr
	}
	s.add(s.factory.DisjointClasses(exprs...))
	return nil
}

// complementDisjointness emits a disjointness between a complement's operand
// and every class expression the complement is asserted against, replacing
// the subsumption-through-negation encoding.
func (s *Synthesizer) complementDisjointness(n *diagram.Node) error {
	if n.Identity() != diagram.IdentityConcept || !s.cfg.Enabled(owl.AxiomDisjointClasses) {
		return nil
	}
	operands := s.d.InputNodes(n, func(x *diagram.Node) bool {
		return x.Identity() == diagram.IdentityConcept
	})
	if len(operands) == 0 {
		return nil
	}
	operandExpr, err := s.compiler.Compile(operands[0])
	if err != nil {
		return err
	}
	assertedAgainst := s.d.AdjacentNodes(n, func(e *diagram.Edge) bool {
		return e.Kind == diagram.EdgeInclusion || e.Kind == diagram.EdgeEquivalence
	}, func(x *diagram.Node) bool {
		return x.Identity() == diagram.IdentityConcept
	})
	for _, other := range assertedAgainst {
		otherExpr, err := s.compiler.Compile(other)
		if err != nil {
			return err
		}
		s.add(s.factory.DisjointClasses(operandExpr, otherExpr))
	}
	return nil
}

// subsumptionEdge accepts the edges that assert subsumption or equivalence.
func subsumptionEdge(e *diagram.Edge) bool {
	return e.Kind == diagram.EdgeInclusion || e.Kind == diagram.EdgeEquivalence
}

// unqualifiedExists reports whether n is an existential restriction with no
// filler operand, i.e. one that translates to a domain or range axiom.
func (s *Synthesizer) unqualifiedExists(n *diagram.Node) bool {
	if n.Restriction != diagram.RestrictionExists {
		return false
	}
	fillers := s.d.InputNodes(n, func(x *diagram.Node) bool {
		return x.Identity() == diagram.IdentityConcept || x.Identity() == diagram.IdentityValueDomain
	})
	return len(fillers) == 0
}

func (s *Synthesizer) domainAxioms(n *diagram.Node) error {
	if !s.unqualifiedExists(n) {
		return nil
	}
	operand, err := s.compiler.restrictionOperand(n)
	if err != nil {
		return err
	}
	property, err := s.compiler.Compile(operand)
	if err != nil {
		return err
	}
	domains := s.d.OutgoingNodes(n, subsumptionEdge, func(x *diagram.Node) bool {
		return x.Identity() == diagram.IdentityConcept
	})
	for _, domain := range domains {
		expr, err := s.compiler.Compile(domain)
		if err != nil {
			return err
		}
		if operand.Identity() == diagram.IdentityAttribute {
			s.add(s.factory.DataPropertyDomain(property, expr))
		} else {
			s.add(s.factory.ObjectPropertyDomain(property, expr))
		}
	}
	return nil
}

func (s *Synthesizer) rangeAxioms(n *diagram.Node) error {
	if !s.unqualifiedExists(n) {
		return nil
	}
	operand, err := s.compiler.restrictionOperand(n)
	if err != nil {
		return err
	}
	property, err := s.compiler.Compile(operand)
	if err != nil {
		return err
	}
	if operand.Identity() == diagram.IdentityAttribute {
		ranges := s.d.OutgoingNodes(n, subsumptionEdge, func(x *diagram.Node) bool {
			return x.Identity() == diagram.IdentityValueDomain
		})
		for _, rng := range ranges {
			expr, err := s.compiler.Compile(rng)
			if err != nil {
				return err
			}
			s.add(s.factory.DataPropertyRange(property, expr))
		}
		return nil
	}
	ranges := s.d.OutgoingNodes(n, subsumptionEdge, func(x *diagram.Node) bool {
		return x.Identity() == diagram.IdentityConcept
	})
	for _, rng := range ranges {
		expr, err := s.compiler.Compile(rng)
		if err != nil {
			return err
		}
		s.add(s.factory.ObjectPropertyRange(property, expr))
	}
	return nil
}

func (s *Synthesizer) hasKey(n *diagram.Node) error {
	expr, err := s.compiler.Compile(n)
	if err != nil {
		return err
	}
	key, ok := expr.(owl.KeySet)
	if !ok {
		return nodeError(n, ErrMalformed, "has-key node did not compile to a key set")
	}
	s.add(s.factory.HasKey(key.Class, key.Properties))
	return nil
}

func (s *Synthesizer) annotations(n *diagram.Node) {
	subject := owl.IRIRef{IRI: n.IRI}
	for _, a := range n.Annotations {
		property := owl.IRIRef{IRI: a.Property}
		var value owl.Expression
		if a.IsIRI {
			value = owl.IRIRef{IRI: a.Value}
		} else {
			value = s.factory.Literal(a.Value, "", "")
		}
		s.add(s.factory.AnnotationAssertion(property, subject, value))
	}
}

// EdgeAxioms dispatches an assertion edge to its axiom mapping. Edges whose
// endpoint identities match no mapping fail with ErrMalformed.
func (s *Synthesizer) EdgeAxioms(e *diagram.Edge) error {
	source := s.d.Node(e.Source)
	target := s.d.Node(e.Target)
	switch {
	case e.Kind == diagram.EdgeInput:
		return nil
	case e.IsEquivalence():
		return s.equivalence(e, source, target)
	case e.Kind == diagram.EdgeInclusion:
		return s.inclusion(e, source, target)
	case e.Kind == diagram.EdgeMembership:
		return s.membership(e, source, target)
	case e.Kind == diagram.EdgeSame:
		return s.sameOrDifferent(e, source, target, true)
	case e.Kind == diagram.EdgeDifferent:
		return s.sameOrDifferent(e, source, target, false)
	default:
		return edgeError(e, ErrMalformed, "unknown edge kind")
	}
}

func (s *Synthesizer) inclusion(e *diagram.Edge, source, target *diagram.Node) error {
	switch {
	case source.Identity() == diagram.IdentityConcept && target.Identity() == diagram.IdentityConcept:
		return s.subClassOf(source, target)

	case source.Identity() == diagram.IdentityRole && target.Identity() == diagram.IdentityRole:
		if source.Kind == diagram.KindRoleChain {
			if target.Kind != diagram.KindRole && target.Kind != diagram.KindRoleInverse {
				return edgeError(e, ErrMalformed, "role chain must be included in a role")
			}
			chain, err := s.compiler.Compile(source)
			if err != nil {
				return err
			}
			super, err := s.compiler.Compile(target)
			if err != nil {
				return err
			}
			s.add(s.factory.SubPropertyChainOf(chain, super))
			return nil
		}
		if source.Kind != diagram.KindRole && source.Kind != diagram.KindRoleInverse {
			return edgeError(e, ErrMalformed, "invalid inclusion source")
		}
		sub, err := s.compiler.Compile(source)
		if err != nil {
			return err
		}
		super, err := s.compiler.Compile(target)
		if err != nil {
			return err
		}
		if target.Kind == diagram.KindComplement {
			s.add(s.factory.DisjointObjectProperties(sub, super))
			return nil
		}
		if target.Kind != diagram.KindRole && target.Kind != diagram.KindRoleInverse {
			return edgeError(e, ErrMalformed, "invalid inclusion target")
		}
		s.add(s.factory.SubObjectPropertyOf(sub, super))
		return nil

	case source.Identity() == diagram.IdentityAttribute && target.Identity() == diagram.IdentityAttribute:
		if source.Kind != diagram.KindAttribute {
			return edgeError(e, ErrMalformed, "invalid inclusion source")
		}
		sub, err := s.compiler.Compile(source)
		if err != nil {
			return err
		}
		super, err := s.compiler.Compile(target)
		if err != nil {
			return err
		}
		if target.Kind == diagram.KindComplement {
			s.add(s.factory.DisjointDataProperties(sub, super))
			return nil
		}
		if target.Kind != diagram.KindAttribute {
			return edgeError(e, ErrMalformed, "invalid inclusion target")
		}
		s.add(s.factory.SubDataPropertyOf(sub, super))
		return nil

	case source.Kind == diagram.KindRangeRestriction && target.Identity() == diagram.IdentityValueDomain:
		// Covered by the data property range axiom from the node pass.
		return nil

	default:
		return edgeError(e, ErrMalformed, "no axiom mapping for inclusion between "+source.Identity().String()+" and "+target.Identity().String())
	}
}

// subClassOf emits the subsumption axioms for one directed concept
// inclusion, applying the complement redirect, the domain/range redirect,
// and optional normalization.
func (s *Synthesizer) subClassOf(sub, super *diagram.Node) error {
	// Complement endpoints become disjointness in the node pass; a
	// SubClassOf here would double-encode the negation.
	if sub.Kind == diagram.KindComplement || super.Kind == diagram.KindComplement {
		return nil
	}
	// An unqualified existential restriction source already produced a
	// domain or range axiom.
	if (sub.Kind == diagram.KindDomainRestriction || sub.Kind == diagram.KindRangeRestriction) && s.unqualifiedExists(sub) {
		return nil
	}
	if s.cfg.Normalize {
		if sub.Kind == diagram.KindUnion || sub.Kind == diagram.KindDisjointUnion {
			operands := s.d.InputNodes(sub, func(x *diagram.Node) bool {
				return x.Identity() == diagram.IdentityConcept
			})
			superExpr, err := s.compiler.Compile(super)
			if err != nil {
				return err
			}
			for _, operand := range operands {
				expr, err := s.compiler.Compile(operand)
				if err != nil {
					return err
				}
				s.add(s.factory.SubClassOf(expr, superExpr))
			}
			return nil
		}
		if super.Kind == diagram.KindIntersection {
			operands := s.d.InputNodes(super, func(x *diagram.Node) bool {
				return x.Identity() == diagram.IdentityConcept
			})
			subExpr, err := s.compiler.Compile(sub)
			if err != nil {
				return err
			}
			for _, operand := range operands {
				expr, err := s.compiler.Compile(operand)
				if err != nil {
					return err
				}
				s.add(s.factory.SubClassOf(subExpr, expr))
			}
			return nil
		}
	}
	subExpr, err := s.compiler.Compile(sub)
	if err != nil {
		return err
	}
	superExpr, err := s.compiler.Compile(super)
	if err != nil {
		return err
	}
	s.add(s.factory.SubClassOf(subExpr, superExpr))
	return nil
}

func (s *Synthesizer) equivalence(e *diagram.Edge, source, target *diagram.Node) error {
	switch {
	case source.Identity() == diagram.IdentityConcept && target.Identity() == diagram.IdentityConcept:
		if s.cfg.Normalize {
			if err := s.subClassOf(source, target); err != nil {
				return err
			}
			return s.subClassOf(target, source)
		}
		a, err := s.compiler.Compile(source)
		if err != nil {
			return err
		}
		b, err := s.compiler.Compile(target)
		if err != nil {
			return err
		}
		s.add(s.factory.EquivalentClasses(a, b))
		return nil

	case source.Identity() == diagram.IdentityRole && target.Identity() == diagram.IdentityRole:
		if source.Kind == diagram.KindRoleInverse || target.Kind == diagram.KindRoleInverse {
			return s.inverseProperties(source, target)
		}
		a, err := s.compiler.Compile(source)
		if err != nil {
			return err
		}
		b, err := s.compiler.Compile(target)
		if err != nil {
			return err
		}
		if s.cfg.Normalize {
			s.add(s.factory.SubObjectPropertyOf(a, b))
			s.add(s.factory.SubObjectPropertyOf(b, a))
			return nil
		}
		s.add(s.factory.EquivalentObjectProperties(a, b))
		return nil

	case source.Identity() == diagram.IdentityAttribute && target.Identity() == diagram.IdentityAttribute:
		a, err := s.compiler.Compile(source)
		if err != nil {
			return err
		}
		b, err := s.compiler.Compile(target)
		if err != nil {
			return err
		}
		if s.cfg.Normalize {
			s.add(s.factory.SubDataPropertyOf(a, b))
			s.add(s.factory.SubDataPropertyOf(b, a))
			return nil
		}
		s.add(s.factory.EquivalentDataProperties(a, b))
		return nil

	default:
		return edgeError(e, ErrMalformed, "no axiom mapping for equivalence between "+source.Identity().String()+" and "+target.Identity().String())
	}
}

// inverseProperties handles an equivalence where one side is a role inverse:
// P ≡ inv(Q) becomes InverseObjectProperties(P, Q).
func (s *Synthesizer) inverseProperties(source, target *diagram.Node) error {
	forward, inverted := source, target
	if source.Kind == diagram.KindRoleInverse {
		forward, inverted = target, source
	}
	operands := s.d.InputNodes(inverted, func(x *diagram.Node) bool {
		return x.Kind == diagram.KindRole
	})
	if len(operands) == 0 {
		return nodeError(inverted, ErrMissingOperand, "role inverse has no operand")
	}
	forwardExpr, err := s.compiler.Compile(forward)
	if err != nil {
		return err
	}
	inverseExpr, err := s.compiler.Compile(operands[0])
	if err != nil {
		return err
	}
	s.add(s.factory.InverseObjectProperties(forwardExpr, inverseExpr))
	return nil
}

// assertable reports whether a node can stand for an individual in an
// assertion: individual nodes directly, predicate nodes through punning.
func assertable(n *diagram.Node) bool {
	switch n.Kind {
	case diagram.KindIndividual, diagram.KindConcept, diagram.KindRole, diagram.KindAttribute:
		return true
	}
	return false
}

func (s *Synthesizer) membership(e *diagram.Edge, source, target *diagram.Node) error {
	switch {
	case assertable(source) && target.Identity() == diagram.IdentityConcept:
		individual, err := s.compiler.CompileIndividual(source)
		if err != nil {
			return err
		}
		class, err := s.compiler.Compile(target)
		if err != nil {
			return err
		}
		s.add(s.factory.ClassAssertion(class, individual))
		return nil

	case source.Identity() == diagram.IdentityRoleInstance:
		pair, err := s.assertionPair(source)
		if err != nil {
			return err
		}
		if target.Kind == diagram.KindComplement {
			property, err := s.complementProperty(target, diagram.IdentityRole)
			if err != nil {
				return err
			}
			s.add(s.factory.NegativeObjectPropertyAssertion(property, pair.First, pair.Second))
			return nil
		}
		if target.Identity() != diagram.IdentityRole {
			return edgeError(e, ErrMalformed, "role instance asserted against "+target.Identity().String())
		}
		property, err := s.compiler.Compile(target)
		if err != nil {
			return err
		}
		s.add(s.factory.ObjectPropertyAssertion(property, pair.First, pair.Second))
		return nil

	case source.Identity() == diagram.IdentityAttributeInstance:
		pair, err := s.assertionPair(source)
		if err != nil {
			return err
		}
		if target.Kind == diagram.KindComplement {
			property, err := s.complementProperty(target, diagram.IdentityAttribute)
			if err != nil {
				return err
			}
			s.add(s.factory.NegativeDataPropertyAssertion(property, pair.First, pair.Second))
			return nil
		}
		if target.Identity() != diagram.IdentityAttribute {
			return edgeError(e, ErrMalformed, "attribute instance asserted against "+target.Identity().String())
		}
		property, err := s.compiler.Compile(target)
		if err != nil {
			return err
		}
		s.add(s.factory.DataPropertyAssertion(property, pair.First, pair.Second))
		return nil

	default:
		return edgeError(e, ErrMalformed, "no axiom mapping for membership between "+source.Identity().String()+" and "+target.Identity().String())
	}
}

func (s *Synthesizer) assertionPair(n *diagram.Node) (owl.Pair, error) {
	expr, err := s.compiler.Compile(n)
	if err != nil {
		return owl.Pair{}, err
	}
	pair, ok := expr.(owl.Pair)
	if !ok {
		return owl.Pair{}, nodeError(n, ErrMalformed, "assertion source did not compile to a pair")
	}
	return pair, nil
}

// complementProperty resolves the negated property of a complement node used
// as a negative assertion target.
func (s *Synthesizer) complementProperty(n *diagram.Node, identity diagram.Identity) (owl.Expression, error) {
	operands := s.d.InputNodes(n, func(x *diagram.Node) bool {
		return x.Identity() == identity
	})
	if len(operands) == 0 {
		return nil, nodeError(n, ErrMissingOperand, "complement has no operand")
	}
	return s.compiler.Compile(operands[0])
}

func (s *Synthesizer) sameOrDifferent(e *diagram.Edge, source, target *diagram.Node, same bool) error {
	if !assertable(source) || !assertable(target) {
		return edgeError(e, ErrMalformed, "identity assertion between "+source.Identity().String()+" and "+target.Identity().String())
	}
	a, err := s.compiler.CompileIndividual(source)
	if err != nil {
		return err
	}
	b, err := s.compiler.CompileIndividual(target)
	if err != nil {
		return err
	}
	if same {
		s.add(s.factory.SameIndividual(a, b))
	} else {
		s.add(s.factory.DifferentIndividuals(a, b))
	}
	return nil
}
