package owl

import (
	"sort"
	"strings"
)

// AxiomType names an OWL 2 axiom kind. The names double as the vocabulary of
// the export axiom filter.
type AxiomType string

const (
	AxiomAnnotationAssertion              AxiomType = "AnnotationAssertion"
	AxiomAsymmetricObjectProperty         AxiomType = "AsymmetricObjectProperty"
	AxiomClassAssertion                   AxiomType = "ClassAssertion"
	AxiomDataPropertyAssertion            AxiomType = "DataPropertyAssertion"
	AxiomDataPropertyDomain               AxiomType = "DataPropertyDomain"
	AxiomDataPropertyRange                AxiomType = "DataPropertyRange"
	AxiomDeclaration                      AxiomType = "Declaration"
	AxiomDifferentIndividuals             AxiomType = "DifferentIndividuals"
	AxiomDisjointClasses                  AxiomType = "DisjointClasses"
	AxiomDisjointDataProperties           AxiomType = "DisjointDataProperties"
	AxiomDisjointObjectProperties         AxiomType = "DisjointObjectProperties"
	AxiomEquivalentClasses                AxiomType = "EquivalentClasses"
	AxiomEquivalentDataProperties         AxiomType = "EquivalentDataProperties"
	AxiomEquivalentObjectProperties       AxiomType = "EquivalentObjectProperties"
	AxiomFunctionalDataProperty           AxiomType = "FunctionalDataProperty"
	AxiomFunctionalObjectProperty         AxiomType = "FunctionalObjectProperty"
	AxiomHasKey                           AxiomType = "HasKey"
	AxiomInverseFunctionalObjectProperty  AxiomType = "InverseFunctionalObjectProperty"
	AxiomInverseObjectProperties          AxiomType = "InverseObjectProperties"
	AxiomIrreflexiveObjectProperty        AxiomType = "IrreflexiveObjectProperty"
	AxiomNegativeDataPropertyAssertion    AxiomType = "NegativeDataPropertyAssertion"
	AxiomNegativeObjectPropertyAssertion  AxiomType = "NegativeObjectPropertyAssertion"
	AxiomObjectPropertyAssertion          AxiomType = "ObjectPropertyAssertion"
	AxiomObjectPropertyDomain             AxiomType = "ObjectPropertyDomain"
	AxiomObjectPropertyRange              AxiomType = "ObjectPropertyRange"
	AxiomReflexiveObjectProperty          AxiomType = "ReflexiveObjectProperty"
	AxiomSameIndividual                   AxiomType = "SameIndividual"
	AxiomSubClassOf                       AxiomType = "SubClassOf"
	AxiomSubDataPropertyOf                AxiomType = "SubDataPropertyOf"
	AxiomSubObjectPropertyOf              AxiomType = "SubObjectPropertyOf"
	AxiomSubPropertyChainOf               AxiomType = "SubPropertyChainOf"
	AxiomSymmetricObjectProperty          AxiomType = "SymmetricObjectProperty"
	AxiomTransitiveObjectProperty         AxiomType = "TransitiveObjectProperty"
)

// AxiomTypes lists every axiom type, in name order.
func AxiomTypes() []AxiomType {
	return []AxiomType{
		AxiomAnnotationAssertion, AxiomAsymmetricObjectProperty,
		AxiomClassAssertion, AxiomDataPropertyAssertion,
		AxiomDataPropertyDomain, AxiomDataPropertyRange, AxiomDeclaration,
		AxiomDifferentIndividuals, AxiomDisjointClasses,
		AxiomDisjointDataProperties, AxiomDisjointObjectProperties,
		AxiomEquivalentClasses, AxiomEquivalentDataProperties,
		AxiomEquivalentObjectProperties, AxiomFunctionalDataProperty,
		AxiomFunctionalObjectProperty, AxiomHasKey,
		AxiomInverseFunctionalObjectProperty,
		AxiomInverseObjectProperties, AxiomIrreflexiveObjectProperty,
		AxiomNegativeDataPropertyAssertion,
		AxiomNegativeObjectPropertyAssertion, AxiomObjectPropertyAssertion,
		AxiomObjectPropertyDomain, AxiomObjectPropertyRange,
		AxiomReflexiveObjectProperty, AxiomSameIndividual, AxiomSubClassOf,
		AxiomSubDataPropertyOf, AxiomSubObjectPropertyOf,
		AxiomSubPropertyChainOf, AxiomSymmetricObjectProperty,
		AxiomTransitiveObjectProperty,
	}
}

// Axiom is a single OWL 2 axiom: a type plus its operand expressions in
// canonical order. Axioms are opaque to the translation core; equality is
// structural through Key.
type Axiom struct {
	Type     AxiomType
	Operands []Expression
}

// Key returns the canonical structural key of the axiom.
func (a Axiom) Key() string {
	parts := make([]string, len(a.Operands))
	for i, op := range a.Operands {
		parts[i] = op.Key()
	}
	return string(a.Type) + "(" + strings.Join(parts, " ") + ")"
}

// AxiomSet is an unordered collection of axioms deduplicated by structural
// equality.
type AxiomSet struct {
	byKey map[string]Axiom
}

// NewAxiomSet creates an empty axiom set.
func NewAxiomSet() *AxiomSet {
	return &AxiomSet{byKey: make(map[string]Axiom)}
}

// Add inserts an axiom; duplicates are ignored.
func (s *AxiomSet) Add(a Axiom) {
	s.byKey[a.Key()] = a
}

// Len returns the number of distinct axioms.
func (s *AxiomSet) Len() int { return len(s.byKey) }

// Contains reports whether the set holds a structurally equal axiom.
func (s *AxiomSet) Contains(a Axiom) bool {
	_, ok := s.byKey[a.Key()]
	return ok
}

// Slice returns the axioms in stable (key) order.
func (s *AxiomSet) Slice() []Axiom {
	keys := make([]string, 0, len(s.byKey))
	for k := range s.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Axiom, len(keys))
	for i, k := range keys {
		out[i] = s.byKey[k]
	}
	return out
}

// ByType returns the axioms of the given type in stable order.
func (s *AxiomSet) ByType(t AxiomType) []Axiom {
	var out []Axiom
	for _, a := range s.Slice() {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}
