package owl2

// Namespace prefixes for the standard vocabularies.
const (
	// OWLNamespace is the OWL 2 namespace prefix.
	OWLNamespace = "http://www.w3.org/2002/07/owl#"

	// RDFNamespace is the RDF namespace prefix.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFSNamespace is the RDF Schema namespace prefix.
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	// XSDNamespace is the XML Schema datatypes namespace prefix.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"
)

// Built-in entity IRIs. Graphol predicate nodes carrying one of these IRIs are
// translated to the corresponding built-in construct instead of a declared
// entity.
const (
	// Thing is the universal class owl:Thing.
	Thing = OWLNamespace + "Thing"

	// Nothing is the empty class owl:Nothing.
	Nothing = OWLNamespace + "Nothing"

	// TopObjectProperty is the universal object property.
	TopObjectProperty = OWLNamespace + "topObjectProperty"

	// BottomObjectProperty is the empty object property.
	BottomObjectProperty = OWLNamespace + "bottomObjectProperty"

	// TopDataProperty is the universal data property.
	TopDataProperty = OWLNamespace + "topDataProperty"

	// BottomDataProperty is the empty data property.
	BottomDataProperty = OWLNamespace + "bottomDataProperty"

	// TopDatatype is rdfs:Literal, the universal datatype used as the
	// default filler for unqualified data restrictions.
	TopDatatype = RDFSNamespace + "Literal"

	// PlainLiteral is the default datatype for literals that carry no
	// explicit datatype.
	PlainLiteral = RDFNamespace + "PlainLiteral"
)

// IsThing reports whether iri names the universal class.
func IsThing(iri string) bool { return iri == Thing }

// IsNothing reports whether iri names the empty class.
func IsNothing(iri string) bool { return iri == Nothing }

// IsTopObjectProperty reports whether iri names the universal object property.
func IsTopObjectProperty(iri string) bool { return iri == TopObjectProperty }

// IsBottomObjectProperty reports whether iri names the empty object property.
func IsBottomObjectProperty(iri string) bool { return iri == BottomObjectProperty }

// IsTopDataProperty reports whether iri names the universal data property.
func IsTopDataProperty(iri string) bool { return iri == TopDataProperty }

// IsBottomDataProperty reports whether iri names the empty data property.
func IsBottomDataProperty(iri string) bool { return iri == BottomDataProperty }
