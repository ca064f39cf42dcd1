package owl2

// XSD datatype IRIs available on Graphol value-domain nodes.
const (
	XSDAnyURI             = XSDNamespace + "anyURI"
	XSDBase64Binary       = XSDNamespace + "base64Binary"
	XSDBoolean            = XSDNamespace + "boolean"
	XSDByte               = XSDNamespace + "byte"
	XSDDateTime           = XSDNamespace + "dateTime"
	XSDDateTimeStamp      = XSDNamespace + "dateTimeStamp"
	XSDDecimal            = XSDNamespace + "decimal"
	XSDDouble             = XSDNamespace + "double"
	XSDFloat              = XSDNamespace + "float"
	XSDHexBinary          = XSDNamespace + "hexBinary"
	XSDInt                = XSDNamespace + "int"
	XSDInteger            = XSDNamespace + "integer"
	XSDLanguage           = XSDNamespace + "language"
	XSDLong               = XSDNamespace + "long"
	XSDName               = XSDNamespace + "Name"
	XSDNCName             = XSDNamespace + "NCName"
	XSDNegativeInteger    = XSDNamespace + "negativeInteger"
	XSDNMTOKEN            = XSDNamespace + "NMTOKEN"
	XSDNonNegativeInteger = XSDNamespace + "nonNegativeInteger"
	XSDNonPositiveInteger = XSDNamespace + "nonPositiveInteger"
	XSDNormalizedString   = XSDNamespace + "normalizedString"
	XSDPositiveInteger    = XSDNamespace + "positiveInteger"
	XSDShort              = XSDNamespace + "short"
	XSDString             = XSDNamespace + "string"
	XSDToken              = XSDNamespace + "token"
	XSDUnsignedByte       = XSDNamespace + "unsignedByte"
	XSDUnsignedInt        = XSDNamespace + "unsignedInt"
	XSDUnsignedLong       = XSDNamespace + "unsignedLong"
	XSDUnsignedShort      = XSDNamespace + "unsignedShort"
	RDFXMLLiteral         = RDFNamespace + "XMLLiteral"
)

// Datatypes lists every datatype IRI a value-domain node may carry.
func Datatypes() []string {
	return []string{
		XSDAnyURI, XSDBase64Binary, XSDBoolean, XSDByte, XSDDateTime,
		XSDDateTimeStamp, XSDDecimal, XSDDouble, XSDFloat, XSDHexBinary,
		XSDInt, XSDInteger, XSDLanguage, XSDLong, XSDName, XSDNCName,
		XSDNegativeInteger, XSDNMTOKEN, XSDNonNegativeInteger,
		XSDNonPositiveInteger, XSDNormalizedString, XSDPositiveInteger,
		XSDShort, XSDString, XSDToken, XSDUnsignedByte, XSDUnsignedInt,
		XSDUnsignedLong, XSDUnsignedShort, RDFXMLLiteral, PlainLiteral,
		TopDatatype,
	}
}
