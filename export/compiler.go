// Package export translates Graphol diagrams into OWL 2 axioms: an
// expression compiler for node subtrees, an axiom synthesizer for nodes and
// assertion edges, and a worker that drives a full diagram pass with
// cancellation and progress reporting.
package export

import (
	"github.com/c360studio/graphol/config"
	"github.com/c360studio/graphol/diagram"
	"github.com/c360studio/graphol/owl"
	"github.com/c360studio/graphol/vocabulary/owl2"
)

// Compiler translates diagram nodes into OWL 2 expressions. Results are
// memoized per pass, so shared subtrees compile once regardless of how many
// expressions reference them.
//
// Atomic predicate nodes record their declaration axioms as a side effect,
// which keeps declarations tied to the nodes that actually compile.
type Compiler struct {
	d       *diagram.Diagram
	factory *owl.Factory
	cfg     config.ExportConfig
	axioms  *owl.AxiomSet

	cache map[string]owl.Expression

	// individuals memoizes predicate nodes compiled under punning, keyed
	// separately because the same node may also compile as a schema entity.
	individuals map[string]owl.Expression
}

// NewCompiler creates a compiler for one pass over d. Recorded declarations
// accumulate into axioms.
func NewCompiler(d *diagram.Diagram, factory *owl.Factory, cfg config.ExportConfig, axioms *owl.AxiomSet) *Compiler {
	return &Compiler{
		d:           d,
		factory:     factory,
		cfg:         cfg,
		axioms:      axioms,
		cache:       make(map[string]owl.Expression),
		individuals: make(map[string]owl.Expression),
	}
}

// Compile returns the OWL 2 expression for n, building it on first use.
func (c *Compiler) Compile(n *diagram.Node) (owl.Expression, error) {
	if expr, ok := c.cache[n.ID]; ok {
		return expr, nil
	}
	expr, err := c.build(n)
	if err != nil {
		return nil, err
	}
	c.cache[n.ID] = expr
	return expr, nil
}

// CompileIndividual compiles a node as an individual. Predicate nodes whose
// identity was inferred as Individual (punning) compile to a named individual
// carrying the predicate's IRI; individual and literal nodes compile as
// usual.
func (c *Compiler) CompileIndividual(n *diagram.Node) (owl.Expression, error) {
	switch n.Kind {
	case diagram.KindConcept, diagram.KindRole, diagram.KindAttribute:
		if expr, ok := c.individuals[n.ID]; ok {
			return expr, nil
		}
		expr := c.factory.Individual(n.IRI)
		c.declare(expr)
		c.individuals[n.ID] = expr
		return expr, nil
	default:
		return c.Compile(n)
	}
}

func (c *Compiler) build(n *diagram.Node) (owl.Expression, error) {
	switch n.Kind {
	case diagram.KindConcept:
		return c.concept(n), nil
	case diagram.KindRole:
		return c.role(n), nil
	case diagram.KindAttribute:
		return c.attribute(n), nil
	case diagram.KindValueDomain:
		return c.valueDomain(n), nil
	case diagram.KindIndividual:
		expr := c.factory.Individual(n.IRI)
		c.declare(expr)
		return expr, nil
	case diagram.KindLiteral:
		return c.factory.Literal(n.Literal.LexicalForm, n.Literal.Datatype, n.Literal.Language), nil
	case diagram.KindFacet:
		return c.facet(n)
	case diagram.KindDomainRestriction:
		return c.domainRestriction(n)
	case diagram.KindRangeRestriction:
		return c.rangeRestriction(n)
	case diagram.KindComplement:
		return c.complement(n)
	case diagram.KindIntersection, diagram.KindUnion, diagram.KindDisjointUnion:
		return c.boolean(n)
	case diagram.KindEnumeration:
		return c.enumeration(n)
	case diagram.KindDatatypeRestriction:
		return c.datatypeRestriction(n)
	case diagram.KindRoleInverse:
		return c.roleInverse(n)
	case diagram.KindRoleChain:
		return c.roleChain(n)
	case diagram.KindPropertyAssertion:
		return c.propertyAssertion(n)
	case diagram.KindHasKey:
		return c.hasKey(n)
	default:
		return nil, nodeError(n, ErrMalformed, "unknown node kind")
	}
}

// declare records a declaration axiom for a named entity, subject to the
// axiom filter. Built-in entities are never declared.
func (c *Compiler) declare(entity owl.Expression) {
	if !c.cfg.Enabled(owl.AxiomDeclaration) {
		return
	}
	c.axioms.Add(c.factory.Declaration(entity))
}

func (c *Compiler) concept(n *diagram.Node) owl.Expression {
	switch {
	case owl2.IsThing(n.IRI):
		return c.factory.Thing()
	case owl2.IsNothing(n.IRI):
		return c.factory.Nothing()
	}
	expr := c.factory.Class(n.IRI)
	c.declare(expr)
	return expr
}

func (c *Compiler) role(n *diagram.Node) owl.Expression {
	expr := c.factory.ObjectProperty(n.IRI)
	if !owl2.IsTopObjectProperty(n.IRI) && !owl2.IsBottomObjectProperty(n.IRI) {
		c.declare(expr)
	}
	return expr
}

func (c *Compiler) attribute(n *diagram.Node) owl.Expression {
	expr := c.factory.DataProperty(n.IRI)
	if !owl2.IsTopDataProperty(n.IRI) && !owl2.IsBottomDataProperty(n.IRI) {
		c.declare(expr)
	}
	return expr
}

func (c *Compiler) valueDomain(n *diagram.Node) owl.Expression {
	expr := c.factory.Datatype(n.IRI)
	c.declare(expr)
	return expr
}

// facet compiles a facet node, which must feed a datatype restriction.
func (c *Compiler) facet(n *diagram.Node) (owl.Expression, error) {
	attached := false
	for _, e := range c.d.NodeEdges(n) {
		if e.Kind != diagram.EdgeInput || e.Source != n.ID {
			continue
		}
		target := c.d.Node(e.Target)
		if target != nil && target.Kind == diagram.KindDatatypeRestriction {
			attached = true
			break
		}
	}
	if !attached {
		return nil, nodeError(n, ErrDisconnectedFacet, "facet not attached to a datatype restriction")
	}
	if !owl2.IsFacet(n.Facet.ConstrainingFacet) {
		return nil, nodeError(n, ErrUnsupportedOperand, "unknown constraining facet "+n.Facet.ConstrainingFacet)
	}
	value := c.factory.Literal(n.Facet.Value.LexicalForm, n.Facet.Value.Datatype, n.Facet.Value.Language)
	lit, ok := value.(owl.Literal)
	if !ok {
		return nil, nodeError(n, ErrMalformed, "facet value is not a literal")
	}
	return c.factory.FacetRestriction(n.Facet.ConstrainingFacet, lit), nil
}

func (c *Compiler) complement(n *diagram.Node) (owl.Expression, error) {
	if n.Identity() == diagram.IdentityUnknown {
		return nil, nodeError(n, ErrUnsupportedOperand, "unresolved identity")
	}
	operands := c.d.InputNodes(n, func(x *diagram.Node) bool {
		switch x.Identity() {
		case diagram.IdentityConcept, diagram.IdentityValueDomain, diagram.IdentityRole, diagram.IdentityAttribute:
			return true
		}
		return false
	})
	if len(operands) == 0 {
		return nil, nodeError(n, ErrMissingOperand, "complement has no operand")
	}
	if len(operands) > 1 {
		return nil, nodeError(n, ErrTooManyOperands, "complement admits one operand")
	}
	operand := operands[0]
	expr, err := c.Compile(operand)
	if err != nil {
		return nil, err
	}
	switch operand.Identity() {
	case diagram.IdentityConcept:
		return c.factory.ComplementOf(expr), nil
	case diagram.IdentityValueDomain:
		return c.factory.DataComplementOf(expr), nil
	default:
		// Role and attribute operands pass through: the complement only
		// has meaning on the axiom level (property disjointness), so the
		// expression is the operand itself.
		return expr, nil
	}
}

func (c *Compiler) boolean(n *diagram.Node) (owl.Expression, error) {
	if n.Identity() == diagram.IdentityUnknown {
		return nil, nodeError(n, ErrUnsupportedOperand, "unresolved identity")
	}
	operands := c.d.InputNodes(n, func(x *diagram.Node) bool {
		return x.Identity() == n.Identity()
	})
	if len(operands) == 0 {
		return nil, nodeError(n, ErrMissingOperand, n.Kind.String()+" has no operands")
	}
	exprs := make([]owl.Expression, len(operands))
	for i, operand := range operands {
		expr, err := c.Compile(operand)
		if err != nil {
			return nil, err
		}
		exprs[i] = expr
	}
	switch n.Identity() {
	case diagram.IdentityConcept:
		if n.Kind == diagram.KindIntersection {
			return c.factory.IntersectionOf(exprs), nil
		}
		return c.factory.UnionOf(exprs), nil
	case diagram.IdentityValueDomain:
		if n.Kind == diagram.KindIntersection {
			return c.factory.DataIntersectionOf(exprs), nil
		}
		return c.factory.DataUnionOf(exprs), nil
	default:
		return nil, nodeError(n, ErrUnsupportedOperand, "boolean constructor over "+n.Identity().String())
	}
}

func (c *Compiler) enumeration(n *diagram.Node) (owl.Expression, error) {
	if n.Identity() == diagram.IdentityUnknown {
		return nil, nodeError(n, ErrUnsupportedOperand, "unresolved identity")
	}
	operands := c.d.InputNodes(n, func(x *diagram.Node) bool {
		return x.Kind == diagram.KindIndividual || x.Kind == diagram.KindLiteral
	})
	if len(operands) == 0 {
		return nil, nodeError(n, ErrMissingOperand, "enumeration has no members")
	}
	exprs := make([]owl.Expression, len(operands))
	for i, operand := range operands {
		expr, err := c.Compile(operand)
		if err != nil {
			return nil, err
		}
		exprs[i] = expr
	}
	switch n.Identity() {
	case diagram.IdentityConcept:
		return c.factory.OneOf(exprs), nil
	case diagram.IdentityValueDomain:
		return c.factory.DataOneOf(exprs), nil
	default:
		return nil, nodeError(n, ErrUnsupportedOperand, "enumeration over "+n.Identity().String())
	}
}

func (c *Compiler) datatypeRestriction(n *diagram.Node) (owl.Expression, error) {
	datatypes := c.d.InputNodes(n, func(x *diagram.Node) bool {
		return x.Kind == diagram.KindValueDomain
	})
	if len(datatypes) == 0 {
		return nil, nodeError(n, ErrMissingOperand, "datatype restriction has no value domain")
	}
	datatype, err := c.Compile(datatypes[0])
	if err != nil {
		return nil, err
	}
	facetNodes := c.d.InputNodes(n, func(x *diagram.Node) bool {
		return x.Kind == diagram.KindFacet
	})
	if len(facetNodes) == 0 {
		return nil, nodeError(n, ErrMissingOperand, "datatype restriction has no facets")
	}
	facets := make([]owl.FacetRestriction, 0, len(facetNodes))
	for _, fn := range facetNodes {
		expr, err := c.Compile(fn)
		if err != nil {
			return nil, err
		}
		fr, ok := expr.(owl.FacetRestriction)
		if !ok {
			return nil, nodeError(fn, ErrMalformed, "facet node did not compile to a facet restriction")
		}
		facets = append(facets, fr)
	}
	return c.factory.DatatypeRestriction(datatype, facets), nil
}

func (c *Compiler) roleInverse(n *diagram.Node) (owl.Expression, error) {
	operands := c.d.InputNodes(n, func(x *diagram.Node) bool {
		return x.Kind == diagram.KindRole
	})
	if len(operands) == 0 {
		return nil, nodeError(n, ErrMissingOperand, "role inverse has no operand")
	}
	if len(operands) > 1 {
		return nil, nodeError(n, ErrTooManyOperands, "role inverse admits one operand")
	}
	expr, err := c.Compile(operands[0])
	if err != nil {
		return nil, err
	}
	return c.factory.InverseOf(expr), nil
}

func (c *Compiler) roleChain(n *diagram.Node) (owl.Expression, error) {
	operands := c.d.InputNodes(n, nil)
	if len(operands) == 0 {
		return nil, nodeError(n, ErrMissingOperand, "role chain has no operands")
	}
	exprs := make([]owl.Expression, len(operands))
	for i, operand := range operands {
		if operand.Kind != diagram.KindRole && operand.Kind != diagram.KindRoleInverse {
			return nil, nodeError(operand, ErrUnsupportedOperand, "role chain operand must be a role or role inverse")
		}
		expr, err := c.Compile(operand)
		if err != nil {
			return nil, err
		}
		exprs[i] = expr
	}
	return c.factory.PropertyChain(exprs), nil
}

func (c *Compiler) propertyAssertion(n *diagram.Node) (owl.Expression, error) {
	if n.Identity() == diagram.IdentityUnknown {
		return nil, nodeError(n, ErrUnsupportedOperand, "unresolved identity")
	}
	operands := c.d.InputNodes(n, nil)
	for _, operand := range operands {
		switch operand.Kind {
		case diagram.KindIndividual, diagram.KindLiteral,
			diagram.KindConcept, diagram.KindRole, diagram.KindAttribute:
		default:
			return nil, nodeError(n, ErrUnsupportedOperand, "property assertion operand must be an individual or literal")
		}
	}
	if len(operands) < 2 {
		return nil, nodeError(n, ErrMissingOperand, "property assertion needs two operands")
	}
	if len(operands) > 2 {
		return nil, nodeError(n, ErrTooManyOperands, "property assertion admits two operands")
	}
	first, err := c.CompileIndividual(operands[0])
	if err != nil {
		return nil, err
	}
	second, err := c.CompileIndividual(operands[1])
	if err != nil {
		return nil, err
	}
	return c.factory.PairOf(first, second), nil
}

// hasKey compiles a has-key node into the class/property collection the
// axiom pass consumes: exactly one class expression operand plus at least
// one role or attribute operand.
func (c *Compiler) hasKey(n *diagram.Node) (owl.Expression, error) {
	classes := c.d.InputNodes(n, func(x *diagram.Node) bool {
		return x.Identity() == diagram.IdentityConcept
	})
	if len(classes) == 0 {
		return nil, nodeError(n, ErrMissingOperand, "has-key has no class expression operand")
	}
	if len(classes) > 1 {
		return nil, nodeError(n, ErrTooManyOperands, "has-key admits one class expression operand")
	}
	class, err := c.Compile(classes[0])
	if err != nil {
		return nil, err
	}
	properties := c.d.InputNodes(n, func(x *diagram.Node) bool {
		return x.Identity() == diagram.IdentityRole || x.Identity() == diagram.IdentityAttribute
	})
	if len(properties) == 0 {
		return nil, nodeError(n, ErrMissingOperand, "has-key needs at least one property operand")
	}
	exprs := make([]owl.Expression, len(properties))
	for i, p := range properties {
		expr, err := c.Compile(p)
		if err != nil {
			return nil, err
		}
		exprs[i] = expr
	}
	return c.factory.KeySetOf(class, exprs), nil
}

// restrictionOperand resolves the property operand of a domain or range
// restriction: the input node whose identity is Role or Attribute.
func (c *Compiler) restrictionOperand(n *diagram.Node) (*diagram.Node, error) {
	operands := c.d.InputNodes(n, func(x *diagram.Node) bool {
		return x.Identity() == diagram.IdentityRole || x.Identity() == diagram.IdentityAttribute
	})
	if len(operands) == 0 {
		return nil, nodeError(n, ErrMissingOperand, "restriction has no property operand")
	}
	return operands[0], nil
}

// restrictionFiller resolves the optional filler operand of a restriction
// node, or nil when the restriction is unqualified.
func (c *Compiler) restrictionFiller(n *diagram.Node, identity diagram.Identity) *diagram.Node {
	fillers := c.d.InputNodes(n, func(x *diagram.Node) bool {
		return x.Identity() == identity
	})
	if len(fillers) == 0 {
		return nil
	}
	return fillers[0]
}

func (c *Compiler) domainRestriction(n *diagram.Node) (owl.Expression, error) {
	operand, err := c.restrictionOperand(n)
	if err != nil {
		return nil, err
	}
	if operand.Identity() == diagram.IdentityAttribute {
		return c.dataRestriction(n, operand, false)
	}
	return c.objectRestriction(n, operand, false)
}

func (c *Compiler) rangeRestriction(n *diagram.Node) (owl.Expression, error) {
	operand, err := c.restrictionOperand(n)
	if err != nil {
		return nil, err
	}
	if operand.Identity() == diagram.IdentityAttribute {
		// The range of a data property is a data range, not a class
		// expression; the restriction participates in range axioms only.
		return nil, nodeError(n, ErrUnsupportedOperand, "attribute range restriction is not a class expression")
	}
	return c.objectRestriction(n, operand, true)
}

// objectRestriction builds the class expression for a domain or range
// restriction over an object property. Range restrictions restrict the
// inverse property.
func (c *Compiler) objectRestriction(n *diagram.Node, operand *diagram.Node, inverse bool) (owl.Expression, error) {
	ope, err := c.Compile(operand)
	if err != nil {
		return nil, err
	}
	if inverse {
		ope = c.factory.InverseOf(ope)
	}
	var filler owl.Expression = c.factory.Thing()
	if fn := c.restrictionFiller(n, diagram.IdentityConcept); fn != nil {
		filler, err = c.Compile(fn)
		if err != nil {
			return nil, err
		}
	}
	switch n.Restriction {
	case diagram.RestrictionSelf:
		return c.factory.HasSelf(ope), nil
	case diagram.RestrictionExists:
		return c.factory.SomeValuesFrom(ope, filler), nil
	case diagram.RestrictionForall:
		return c.factory.AllValuesFrom(ope, filler), nil
	case diagram.RestrictionCardinality:
		var bounds []owl.Expression
		if n.MinCardinality != nil {
			bounds = append(bounds, c.factory.MinCardinality(*n.MinCardinality, ope, filler))
		}
		if n.MaxCardinality != nil {
			bounds = append(bounds, c.factory.MaxCardinality(*n.MaxCardinality, ope, filler))
		}
		switch len(bounds) {
		case 0:
			return nil, nodeError(n, ErrMissingCardinality, "cardinality restriction has no bounds")
		case 1:
			return bounds[0], nil
		default:
			return c.factory.IntersectionOf(bounds), nil
		}
	default:
		return nil, nodeError(n, ErrMalformed, "restriction node without a restriction")
	}
}

// dataRestriction builds the class expression for a domain restriction over a
// data property.
func (c *Compiler) dataRestriction(n *diagram.Node, operand *diagram.Node, inverse bool) (owl.Expression, error) {
	if inverse {
		return nil, nodeError(n, ErrUnsupportedOperand, "attribute range restriction is not a class expression")
	}
	dpe, err := c.Compile(operand)
	if err != nil {
		return nil, err
	}
	var filler owl.Expression = c.factory.TopDatatype()
	if fn := c.restrictionFiller(n, diagram.IdentityValueDomain); fn != nil {
		filler, err = c.Compile(fn)
		if err != nil {
			return nil, err
		}
	}
	switch n.Restriction {
	case diagram.RestrictionSelf:
		return nil, nodeError(n, ErrUnsupportedOperand, "self restriction over a data property")
	case diagram.RestrictionExists:
		return c.factory.DataSomeValuesFrom(dpe, filler), nil
	case diagram.RestrictionForall:
		return c.factory.DataAllValuesFrom(dpe, filler), nil
	case diagram.RestrictionCardinality:
		var bounds []owl.Expression
		if n.MinCardinality != nil {
			bounds = append(bounds, c.factory.DataMinCardinality(*n.MinCardinality, dpe, filler))
		}
		if n.MaxCardinality != nil {
			bounds = append(bounds, c.factory.DataMaxCardinality(*n.MaxCardinality, dpe, filler))
		}
		switch len(bounds) {
		case 0:
			return nil, nodeError(n, ErrMissingCardinality, "cardinality restriction has no bounds")
		case 1:
			return bounds[0], nil
		default:
			return c.factory.IntersectionOf(bounds), nil
		}
	default:
		return nil, nodeError(n, ErrMalformed, "restriction node without a restriction")
	}
}
