package owl2

// OWL 2 constraining facet IRIs available on Graphol facet nodes.
const (
	FacetLength       = XSDNamespace + "length"
	FacetMinLength    = XSDNamespace + "minLength"
	FacetMaxLength    = XSDNamespace + "maxLength"
	FacetPattern      = XSDNamespace + "pattern"
	FacetMinInclusive = XSDNamespace + "minInclusive"
	FacetMinExclusive = XSDNamespace + "minExclusive"
	FacetMaxInclusive = XSDNamespace + "maxInclusive"
	FacetMaxExclusive = XSDNamespace + "maxExclusive"
	FacetLangRange    = RDFNamespace + "langRange"
)

// Facets lists every constraining facet IRI a facet node may carry.
func Facets() []string {
	return []string{
		FacetLength, FacetMinLength, FacetMaxLength, FacetPattern,
		FacetMinInclusive, FacetMinExclusive, FacetMaxInclusive,
		FacetMaxExclusive, FacetLangRange,
	}
}

// IsFacet reports whether iri is a known constraining facet.
func IsFacet(iri string) bool {
	for _, f := range Facets() {
		if f == iri {
			return true
		}
	}
	return false
}
