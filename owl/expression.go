// Package owl provides the target-ontology intermediate representation the
// translation core compiles into: OWL 2 expressions, axioms, and a
// deduplicating axiom set.
//
// Values are immutable and structurally comparable through their canonical
// key, which uses OWL 2 functional-syntax spelling. Unordered n-ary
// constructs canonicalize their operands, so two expressions built from the
// same operands in different orders compare equal.
package owl

import (
	"fmt"
	"sort"
	"strings"
)

// Expression is an OWL 2 class expression, property expression, data range,
// individual, or literal.
type Expression interface {
	// Key returns the canonical structural key of the expression.
	Key() string
}

// Class is a named class.
type Class struct{ IRI string }

// ObjectProperty is a named object property.
type ObjectProperty struct{ IRI string }

// DataProperty is a named data property.
type DataProperty struct{ IRI string }

// Datatype is a named datatype.
type Datatype struct{ IRI string }

// NamedIndividual is a named individual.
type NamedIndividual struct{ IRI string }

// IRIRef is a bare IRI, used as annotation subject or value.
type IRIRef struct{ IRI string }

func (e Class) Key() string           { return "<" + e.IRI + ">" }
func (e ObjectProperty) Key() string  { return "<" + e.IRI + ">" }
func (e DataProperty) Key() string    { return "<" + e.IRI + ">" }
func (e Datatype) Key() string        { return "<" + e.IRI + ">" }
func (e NamedIndividual) Key() string { return "<" + e.IRI + ">" }
func (e IRIRef) Key() string          { return "<" + e.IRI + ">" }

// Literal is a typed or language-tagged literal.
type Literal struct {
	LexicalForm string
	Datatype    string
	Language    string
}

func (e Literal) Key() string {
	if e.Language != "" {
		return fmt.Sprintf("%q@%s", e.LexicalForm, e.Language)
	}
	return fmt.Sprintf("%q^^<%s>", e.LexicalForm, e.Datatype)
}

// ObjectInverseOf is the inverse of an object property expression.
type ObjectInverseOf struct{ Property Expression }

func (e ObjectInverseOf) Key() string {
	return "ObjectInverseOf(" + e.Property.Key() + ")"
}

// ObjectComplementOf is the negation of a class expression.
type ObjectComplementOf struct{ Operand Expression }

func (e ObjectComplementOf) Key() string {
	return "ObjectComplementOf(" + e.Operand.Key() + ")"
}

// DataComplementOf is the negation of a data range.
type DataComplementOf struct{ Operand Expression }

func (e DataComplementOf) Key() string {
	return "DataComplementOf(" + e.Operand.Key() + ")"
}

// ObjectIntersectionOf is an n-ary class intersection. Operands are held in
// canonical order.
type ObjectIntersectionOf struct{ Operands []Expression }

func (e ObjectIntersectionOf) Key() string {
	return nary("ObjectIntersectionOf", e.Operands)
}

// ObjectUnionOf is an n-ary class union. Operands are held in canonical
// order.
type ObjectUnionOf struct{ Operands []Expression }

func (e ObjectUnionOf) Key() string { return nary("ObjectUnionOf", e.Operands) }

// DataIntersectionOf is an n-ary data range intersection.
type DataIntersectionOf struct{ Operands []Expression }

func (e DataIntersectionOf) Key() string {
	return nary("DataIntersectionOf", e.Operands)
}

// DataUnionOf is an n-ary data range union.
type DataUnionOf struct{ Operands []Expression }

func (e DataUnionOf) Key() string { return nary("DataUnionOf", e.Operands) }

// ObjectOneOf is an enumeration of individuals.
type ObjectOneOf struct{ Individuals []Expression }

func (e ObjectOneOf) Key() string { return nary("ObjectOneOf", e.Individuals) }

// DataOneOf is an enumeration of literals.
type DataOneOf struct{ Literals []Expression }

func (e DataOneOf) Key() string { return nary("DataOneOf", e.Literals) }

// ObjectSomeValuesFrom is an existential object restriction.
type ObjectSomeValuesFrom struct{ Property, Filler Expression }

func (e ObjectSomeValuesFrom) Key() string {
	return binary("ObjectSomeValuesFrom", e.Property, e.Filler)
}

// ObjectAllValuesFrom is a universal object restriction.
type ObjectAllValuesFrom struct{ Property, Filler Expression }

func (e ObjectAllValuesFrom) Key() string {
	return binary("ObjectAllValuesFrom", e.Property, e.Filler)
}

// ObjectHasSelf is a local reflexivity restriction.
type ObjectHasSelf struct{ Property Expression }

func (e ObjectHasSelf) Key() string {
	return "ObjectHasSelf(" + e.Property.Key() + ")"
}

// ObjectMinCardinality is a minimum cardinality object restriction.
type ObjectMinCardinality struct {
	Cardinality int
	Property    Expression
	Filler      Expression
}

func (e ObjectMinCardinality) Key() string {
	return cardinality("ObjectMinCardinality", e.Cardinality, e.Property, e.Filler)
}

// ObjectMaxCardinality is a maximum cardinality object restriction.
type ObjectMaxCardinality struct {
	Cardinality int
	Property    Expression
	Filler      Expression
}

func (e ObjectMaxCardinality) Key() string {
	return cardinality("ObjectMaxCardinality", e.Cardinality, e.Property, e.Filler)
}

// DataSomeValuesFrom is an existential data restriction.
type DataSomeValuesFrom struct{ Property, Filler Expression }

func (e DataSomeValuesFrom) Key() string {
	return binary("DataSomeValuesFrom", e.Property, e.Filler)
}

// DataAllValuesFrom is a universal data restriction.
type DataAllValuesFrom struct{ Property, Filler Expression }

func (e DataAllValuesFrom) Key() string {
	return binary("DataAllValuesFrom", e.Property, e.Filler)
}

// DataMinCardinality is a minimum cardinality data restriction.
type DataMinCardinality struct {
	Cardinality int
	Property    Expression
	Filler      Expression
}

func (e DataMinCardinality) Key() string {
	return cardinality("DataMinCardinality", e.Cardinality, e.Property, e.Filler)
}

// DataMaxCardinality is a maximum cardinality data restriction.
type DataMaxCardinality struct {
	Cardinality int
	Property    Expression
	Filler      Expression
}

func (e DataMaxCardinality) Key() string {
	return cardinality("DataMaxCardinality", e.Cardinality, e.Property, e.Filler)
}

// FacetRestriction pairs a constraining facet with its restriction value.
type FacetRestriction struct {
	Facet string
	Value Literal
}

func (e FacetRestriction) Key() string {
	return "FacetRestriction(<" + e.Facet + "> " + e.Value.Key() + ")"
}

// DatatypeRestriction is a datatype narrowed by a set of facet restrictions.
type DatatypeRestriction struct {
	Datatype Expression
	Facets   []FacetRestriction
}

func (e DatatypeRestriction) Key() string {
	parts := make([]string, 0, len(e.Facets)+1)
	parts = append(parts, e.Datatype.Key())
	for _, f := range e.Facets {
		parts = append(parts, f.Key())
	}
	return "DatatypeRestriction(" + strings.Join(parts, " ") + ")"
}

// ObjectPropertyChain is an ordered composition of object property
// expressions. Unlike the n-ary boolean constructs, order is significant.
type ObjectPropertyChain struct{ Properties []Expression }

func (e ObjectPropertyChain) Key() string {
	parts := make([]string, len(e.Properties))
	for i, p := range e.Properties {
		parts[i] = p.Key()
	}
	return "ObjectPropertyChain(" + strings.Join(parts, " ") + ")"
}

// Pair is an ordered pair of individuals or literals, produced by property
// assertion nodes and consumed only by the axiom synthesizer. A Pair is
// never itself part of an axiom.
type Pair struct{ First, Second Expression }

func (e Pair) Key() string { return binary("Pair", e.First, e.Second) }

// KeySet pairs a class expression with the property expressions that
// uniquely identify its named instances. Like Pair, it is produced by
// has-key nodes and consumed only by the axiom synthesizer.
type KeySet struct {
	Class      Expression
	Properties []Expression
}

func (e KeySet) Key() string {
	parts := make([]string, 0, len(e.Properties)+1)
	parts = append(parts, e.Class.Key())
	for _, p := range e.Properties {
		parts = append(parts, p.Key())
	}
	return "KeySet(" + strings.Join(parts, " ") + ")"
}

func nary(name string, operands []Expression) string {
	parts := make([]string, len(operands))
	for i, op := range operands {
		parts[i] = op.Key()
	}
	return name + "(" + strings.Join(parts, " ") + ")"
}

func binary(name string, a, b Expression) string {
	return name + "(" + a.Key() + " " + b.Key() + ")"
}

func cardinality(name string, n int, property, filler Expression) string {
	return fmt.Sprintf("%s(%d %s %s)", name, n, property.Key(), filler.Key())
}

// canonical returns a copy of operands sorted by structural key, giving
// unordered constructs set semantics.
func canonical(operands []Expression) []Expression {
	out := make([]Expression, len(operands))
	copy(out, operands)
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}
