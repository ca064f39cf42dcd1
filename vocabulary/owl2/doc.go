// Package owl2 provides IRI constants for the OWL 2, RDF(S), and XSD
// vocabularies used by the Graphol translation core.
//
// The constants cover the built-in entities that Graphol diagrams may
// reference without declaring them (owl:Thing, owl:topObjectProperty, ...),
// the XSD datatypes available on value-domain nodes, and the OWL 2
// constraining facets available on facet nodes.
package owl2
