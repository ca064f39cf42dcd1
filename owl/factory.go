package owl

import "github.com/c360studio/graphol/vocabulary/owl2"

// Factory builds canonical expressions and axioms. It is stateless; one
// factory may serve any number of compilation passes.
type Factory struct{}

// NewFactory creates a factory.
func NewFactory() *Factory { return &Factory{} }

// Entities.

// Class builds a named class, mapping the built-in IRIs to owl:Thing and
// owl:Nothing as-is.
func (f *Factory) Class(iri string) Expression { return Class{IRI: iri} }

// Thing returns the universal class.
func (f *Factory) Thing() Expression { return Class{IRI: owl2.Thing} }

// Nothing returns the empty class.
func (f *Factory) Nothing() Expression { return Class{IRI: owl2.Nothing} }

// ObjectProperty builds a named object property.
func (f *Factory) ObjectProperty(iri string) Expression { return ObjectProperty{IRI: iri} }

// DataProperty builds a named data property.
func (f *Factory) DataProperty(iri string) Expression { return DataProperty{IRI: iri} }

// Datatype builds a named datatype.
func (f *Factory) Datatype(iri string) Expression { return Datatype{IRI: iri} }

// TopDatatype returns rdfs:Literal.
func (f *Factory) TopDatatype() Expression { return Datatype{IRI: owl2.TopDatatype} }

// Individual builds a named individual.
func (f *Factory) Individual(iri string) Expression { return NamedIndividual{IRI: iri} }

// Literal builds a typed or language-tagged literal. An empty datatype with
// no language tag defaults to rdf:PlainLiteral.
func (f *Factory) Literal(lexicalForm, datatype, language string) Expression {
	if language == "" && datatype == "" {
		datatype = owl2.PlainLiteral
	}
	return Literal{LexicalForm: lexicalForm, Datatype: datatype, Language: language}
}

// Property expressions.

// InverseOf builds the inverse of an object property expression, collapsing
// a double inverse back to the original property.
func (f *Factory) InverseOf(property Expression) Expression {
	if inv, ok := property.(ObjectInverseOf); ok {
		return inv.Property
	}
	return ObjectInverseOf{Property: property}
}

// PropertyChain builds an ordered object property chain.
func (f *Factory) PropertyChain(properties []Expression) Expression {
	out := make([]Expression, len(properties))
	copy(out, properties)
	return ObjectPropertyChain{Properties: out}
}

// Class expressions and data ranges.

// ComplementOf builds an object complement.
func (f *Factory) ComplementOf(operand Expression) Expression {
	return ObjectComplementOf{Operand: operand}
}

// DataComplementOf builds a data complement.
func (f *Factory) DataComplementOf(operand Expression) Expression {
	return DataComplementOf{Operand: operand}
}

// IntersectionOf builds an object intersection with set semantics.
func (f *Factory) IntersectionOf(operands []Expression) Expression {
	return ObjectIntersectionOf{Operands: canonical(operands)}
}

// DataIntersectionOf builds a data intersection with set semantics.
func (f *Factory) DataIntersectionOf(operands []Expression) Expression {
	return DataIntersectionOf{Operands: canonical(operands)}
}

// UnionOf builds an object union with set semantics.
func (f *Factory) UnionOf(operands []Expression) Expression {
	return ObjectUnionOf{Operands: canonical(operands)}
}

// DataUnionOf builds a data union with set semantics.
func (f *Factory) DataUnionOf(operands []Expression) Expression {
	return DataUnionOf{Operands: canonical(operands)}
}

// OneOf builds an individual enumeration with set semantics.
func (f *Factory) OneOf(individuals []Expression) Expression {
	return ObjectOneOf{Individuals: canonical(individuals)}
}

// DataOneOf builds a literal enumeration with set semantics.
func (f *Factory) DataOneOf(literals []Expression) Expression {
	return DataOneOf{Literals: canonical(literals)}
}

// SomeValuesFrom builds an existential object restriction.
func (f *Factory) SomeValuesFrom(property, filler Expression) Expression {
	return ObjectSomeValuesFrom{Property: property, Filler: filler}
}

// AllValuesFrom builds a universal object restriction.
func (f *Factory) AllValuesFrom(property, filler Expression) Expression {
	return ObjectAllValuesFrom{Property: property, Filler: filler}
}

// HasSelf builds a local reflexivity restriction.
func (f *Factory) HasSelf(property Expression) Expression {
	return ObjectHasSelf{Property: property}
}

// MinCardinality builds a minimum cardinality object restriction.
func (f *Factory) MinCardinality(n int, property, filler Expression) Expression {
	return ObjectMinCardinality{Cardinality: n, Property: property, Filler: filler}
}

// MaxCardinality builds a maximum cardinality object restriction.
func (f *Factory) MaxCardinality(n int, property, filler Expression) Expression {
	return ObjectMaxCardinality{Cardinality: n, Property: property, Filler: filler}
}

// DataSomeValuesFrom builds an existential data restriction.
func (f *Factory) DataSomeValuesFrom(property, filler Expression) Expression {
	return DataSomeValuesFrom{Property: property, Filler: filler}
}

// DataAllValuesFrom builds a universal data restriction.
func (f *Factory) DataAllValuesFrom(property, filler Expression) Expression {
	return DataAllValuesFrom{Property: property, Filler: filler}
}

// DataMinCardinality builds a minimum cardinality data restriction.
func (f *Factory) DataMinCardinality(n int, property, filler Expression) Expression {
	return DataMinCardinality{Cardinality: n, Property: property, Filler: filler}
}

// DataMaxCardinality builds a maximum cardinality data restriction.
func (f *Factory) DataMaxCardinality(n int, property, filler Expression) Expression {
	return DataMaxCardinality{Cardinality: n, Property: property, Filler: filler}
}

// FacetRestriction pairs a constraining facet with its value.
func (f *Factory) FacetRestriction(facet string, value Literal) FacetRestriction {
	return FacetRestriction{Facet: facet, Value: value}
}

// DatatypeRestriction builds a datatype narrowed by facet restrictions; the
// facet set is canonicalized by key.
func (f *Factory) DatatypeRestriction(datatype Expression, facets []FacetRestriction) Expression {
	out := make([]FacetRestriction, len(facets))
	copy(out, facets)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Key() < out[j-1].Key(); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return DatatypeRestriction{Datatype: datatype, Facets: out}
}

// PairOf builds the ordered individual pair a property assertion compiles
// to.
func (f *Factory) PairOf(first, second Expression) Expression {
	return Pair{First: first, Second: second}
}

// KeySetOf builds the class/property collection a has-key node compiles to;
// the property set is canonicalized.
func (f *Factory) KeySetOf(class Expression, properties []Expression) Expression {
	return KeySet{Class: class, Properties: canonical(properties)}
}

// Axioms. Unordered axiom types canonicalize their operands; ordered types
// (subsumptions, assertions, domains/ranges) keep operand position.

// Declaration builds a declaration axiom for a named entity.
func (f *Factory) Declaration(entity Expression) Axiom {
	return Axiom{Type: AxiomDeclaration, Operands: []Expression{entity}}
}

// SubClassOf builds sub ⊑ super.
func (f *Factory) SubClassOf(sub, super Expression) Axiom {
	return Axiom{Type: AxiomSubClassOf, Operands: []Expression{sub, super}}
}

// EquivalentClasses builds an equivalence over the given class expressions.
func (f *Factory) EquivalentClasses(operands ...Expression) Axiom {
	return Axiom{Type: AxiomEquivalentClasses, Operands: canonical(operands)}
}

// DisjointClasses builds a disjointness over the given class expressions.
func (f *Factory) DisjointClasses(operands ...Expression) Axiom {
	return Axiom{Type: AxiomDisjointClasses, Operands: canonical(operands)}
}

// SubObjectPropertyOf builds sub ⊑ super for object properties.
func (f *Factory) SubObjectPropertyOf(sub, super Expression) Axiom {
	return Axiom{Type: AxiomSubObjectPropertyOf, Operands: []Expression{sub, super}}
}

// SubPropertyChainOf builds chain ⊑ super.
func (f *Factory) SubPropertyChainOf(chain, super Expression) Axiom {
	return Axiom{Type: AxiomSubPropertyChainOf, Operands: []Expression{chain, super}}
}

// EquivalentObjectProperties builds an equivalence over object properties.
func (f *Factory) EquivalentObjectProperties(operands ...Expression) Axiom {
	return Axiom{Type: AxiomEquivalentObjectProperties, Operands: canonical(operands)}
}

// DisjointObjectProperties builds a disjointness over object properties.
func (f *Factory) DisjointObjectProperties(operands ...Expression) Axiom {
	return Axiom{Type: AxiomDisjointObjectProperties, Operands: canonical(operands)}
}

// InverseObjectProperties states that two object properties are mutually
// inverse.
func (f *Factory) InverseObjectProperties(forward, inverse Expression) Axiom {
	return Axiom{Type: AxiomInverseObjectProperties, Operands: canonical([]Expression{forward, inverse})}
}

// FunctionalObjectProperty builds the functional characteristic axiom.
func (f *Factory) FunctionalObjectProperty(property Expression) Axiom {
	return Axiom{Type: AxiomFunctionalObjectProperty, Operands: []Expression{property}}
}

// InverseFunctionalObjectProperty builds the inverse-functional
// characteristic axiom.
func (f *Factory) InverseFunctionalObjectProperty(property Expression) Axiom {
	return Axiom{Type: AxiomInverseFunctionalObjectProperty, Operands: []Expression{property}}
}

// SymmetricObjectProperty builds the symmetric characteristic axiom.
func (f *Factory) SymmetricObjectProperty(property Expression) Axiom {
	return Axiom{Type: AxiomSymmetricObjectProperty, Operands: []Expression{property}}
}

// AsymmetricObjectProperty builds the asymmetric characteristic axiom.
func (f *Factory) AsymmetricObjectProperty(property Expression) Axiom {
	return Axiom{Type: AxiomAsymmetricObjectProperty, Operands: []Expression{property}}
}

// ReflexiveObjectProperty builds the reflexive characteristic axiom.
func (f *Factory) ReflexiveObjectProperty(property Expression) Axiom {
	return Axiom{Type: AxiomReflexiveObjectProperty, Operands: []Expression{property}}
}

// IrreflexiveObjectProperty builds the irreflexive characteristic axiom.
func (f *Factory) IrreflexiveObjectProperty(property Expression) Axiom {
	return Axiom{Type: AxiomIrreflexiveObjectProperty, Operands: []Expression{property}}
}

// TransitiveObjectProperty builds the transitive characteristic axiom.
func (f *Factory) TransitiveObjectProperty(property Expression) Axiom {
	return Axiom{Type: AxiomTransitiveObjectProperty, Operands: []Expression{property}}
}

// HasKey states that the given properties uniquely identify named instances
// of the class expression.
func (f *Factory) HasKey(class Expression, properties []Expression) Axiom {
	operands := append([]Expression{class}, canonical(properties)...)
	return Axiom{Type: AxiomHasKey, Operands: operands}
}

// SubDataPropertyOf builds sub ⊑ super for data properties.
func (f *Factory) SubDataPropertyOf(sub, super Expression) Axiom {
	return Axiom{Type: AxiomSubDataPropertyOf, Operands: []Expression{sub, super}}
}

// EquivalentDataProperties builds an equivalence over data properties.
func (f *Factory) EquivalentDataProperties(operands ...Expression) Axiom {
	return Axiom{Type: AxiomEquivalentDataProperties, Operands: canonical(operands)}
}

// DisjointDataProperties builds a disjointness over data properties.
func (f *Factory) DisjointDataProperties(operands ...Expression) Axiom {
	return Axiom{Type: AxiomDisjointDataProperties, Operands: canonical(operands)}
}

// FunctionalDataProperty builds the functional characteristic axiom for a
// data property.
func (f *Factory) FunctionalDataProperty(property Expression) Axiom {
	return Axiom{Type: AxiomFunctionalDataProperty, Operands: []Expression{property}}
}

// ObjectPropertyDomain builds a domain axiom for an object property.
func (f *Factory) ObjectPropertyDomain(property, domain Expression) Axiom {
	return Axiom{Type: AxiomObjectPropertyDomain, Operands: []Expression{property, domain}}
}

// ObjectPropertyRange builds a range axiom for an object property.
func (f *Factory) ObjectPropertyRange(property, rng Expression) Axiom {
	return Axiom{Type: AxiomObjectPropertyRange, Operands: []Expression{property, rng}}
}

// DataPropertyDomain builds a domain axiom for a data property.
func (f *Factory) DataPropertyDomain(property, domain Expression) Axiom {
	return Axiom{Type: AxiomDataPropertyDomain, Operands: []Expression{property, domain}}
}

// DataPropertyRange builds a range axiom for a data property.
func (f *Factory) DataPropertyRange(property, rng Expression) Axiom {
	return Axiom{Type: AxiomDataPropertyRange, Operands: []Expression{property, rng}}
}

// ClassAssertion states that an individual belongs to a class expression.
func (f *Factory) ClassAssertion(class, individual Expression) Axiom {
	return Axiom{Type: AxiomClassAssertion, Operands: []Expression{class, individual}}
}

// ObjectPropertyAssertion states that two individuals are related by an
// object property.
func (f *Factory) ObjectPropertyAssertion(property, subject, object Expression) Axiom {
	return Axiom{Type: AxiomObjectPropertyAssertion, Operands: []Expression{property, subject, object}}
}

// NegativeObjectPropertyAssertion states that two individuals are not
// related by an object property.
func (f *Factory) NegativeObjectPropertyAssertion(property, subject, object Expression) Axiom {
	return Axiom{Type: AxiomNegativeObjectPropertyAssertion, Operands: []Expression{property, subject, object}}
}

// DataPropertyAssertion states that an individual carries a literal value.
func (f *Factory) DataPropertyAssertion(property, subject, value Expression) Axiom {
	return Axiom{Type: AxiomDataPropertyAssertion, Operands: []Expression{property, subject, value}}
}

// NegativeDataPropertyAssertion states that an individual does not carry a
// literal value.
func (f *Factory) NegativeDataPropertyAssertion(property, subject, value Expression) Axiom {
	return Axiom{Type: AxiomNegativeDataPropertyAssertion, Operands: []Expression{property, subject, value}}
}

// SameIndividual states that the given individuals denote one entity.
func (f *Factory) SameIndividual(operands ...Expression) Axiom {
	return Axiom{Type: AxiomSameIndividual, Operands: canonical(operands)}
}

// DifferentIndividuals states that the given individuals denote distinct
// entities.
func (f *Factory) DifferentIndividuals(operands ...Expression) Axiom {
	return Axiom{Type: AxiomDifferentIndividuals, Operands: canonical(operands)}
}

// AnnotationAssertion attaches an annotation value to a subject IRI.
func (f *Factory) AnnotationAssertion(property, subject, value Expression) Axiom {
	return Axiom{Type: AxiomAnnotationAssertion, Operands: []Expression{property, subject, value}}
}
