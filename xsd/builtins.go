package xsd

import "github.com/erraggy/wsdltools/internal/naming"

// Primitive identifies the normalized kind of an XSD built-in type.
type Primitive int

const (
	// PrimitiveString covers xsd:string and every built-in with no closer match.
	PrimitiveString Primitive = iota
	// PrimitiveInt covers xsd:int, xsd:short, xsd:byte, and their
	// unsigned counterparts.
	PrimitiveInt
	// PrimitiveInteger covers the arbitrary-precision xsd:integer family
	// (nonNegativeInteger, positiveInteger, and friends).
	PrimitiveInteger
	// PrimitiveLong covers xsd:long and xsd:unsignedLong.
	PrimitiveLong
	// PrimitiveFloat covers xsd:float.
	PrimitiveFloat
	// PrimitiveDouble covers xsd:double.
	PrimitiveDouble
	// PrimitiveDecimal covers xsd:decimal.
	PrimitiveDecimal
	// PrimitiveBoolean covers xsd:boolean.
	PrimitiveBoolean
	// PrimitiveDate covers xsd:date.
	PrimitiveDate
	// PrimitiveDateTime covers xsd:dateTime.
	PrimitiveDateTime
	// PrimitiveTime covers xsd:time.
	PrimitiveTime
	// PrimitiveBase64 covers xsd:base64Binary.
	PrimitiveBase64
	// PrimitiveHex covers xsd:hexBinary.
	PrimitiveHex
	// PrimitiveURI covers xsd:anyURI.
	PrimitiveURI
)

// String returns the canonical XSD local name for the primitive kind.
func (p Primitive) String() string {
	switch p {
	case PrimitiveString:
		return "string"
	case PrimitiveInt:
		return "int"
	case PrimitiveInteger:
		return "integer"
	case PrimitiveLong:
		return "long"
	case PrimitiveFloat:
		return "float"
	case PrimitiveDouble:
		return "double"
	case PrimitiveDecimal:
		return "decimal"
	case PrimitiveBoolean:
		return "boolean"
	case PrimitiveDate:
		return "date"
	case PrimitiveDateTime:
		return "dateTime"
	case PrimitiveTime:
		return "time"
	case PrimitiveBase64:
		return "base64Binary"
	case PrimitiveHex:
		return "hexBinary"
	case PrimitiveURI:
		return "anyURI"
	default:
		return "unknown"
	}
}

// builtins maps lowercased XSD built-in local names to primitive kinds.
// Names not present here are not built-ins and must resolve to a declared
// type in the graph.
var builtins = map[string]Primitive{
	"string":             PrimitiveString,
	"normalizedstring":   PrimitiveString,
	"token":              PrimitiveString,
	"language":           PrimitiveString,
	"name":               PrimitiveString,
	"ncname":             PrimitiveString,
	"qname":              PrimitiveString,
	"id":                 PrimitiveString,
	"idref":              PrimitiveString,
	"duration":           PrimitiveString,
	"anytype":            PrimitiveString,
	"anysimpletype":      PrimitiveString,
	"int":                PrimitiveInt,
	"short":              PrimitiveInt,
	"byte":               PrimitiveInt,
	"unsignedint":        PrimitiveInt,
	"unsignedshort":      PrimitiveInt,
	"unsignedbyte":       PrimitiveInt,
	"integer":            PrimitiveInteger,
	"nonnegativeinteger": PrimitiveInteger,
	"nonpositiveinteger": PrimitiveInteger,
	"positiveinteger":    PrimitiveInteger,
	"negativeinteger":    PrimitiveInteger,
	"long":               PrimitiveLong,
	"unsignedlong":       PrimitiveLong,
	"float":              PrimitiveFloat,
	"double":             PrimitiveDouble,
	"decimal":            PrimitiveDecimal,
	"boolean":            PrimitiveBoolean,
	"date":               PrimitiveDate,
	"datetime":           PrimitiveDateTime,
	"time":               PrimitiveTime,
	"gyear":              PrimitiveDate,
	"gyearmonth":         PrimitiveDate,
	"base64binary":       PrimitiveBase64,
	"hexbinary":          PrimitiveHex,
	"anyuri":             PrimitiveURI,
}

// LookupBuiltin maps a (possibly prefixed) XSD type name to its primitive
// kind. The namespace prefix is ignored: WSDL documents bind the XML Schema
// namespace to arbitrary prefixes, and built-in local names do not collide
// with user declarations in practice.
func LookupBuiltin(qname string) (Primitive, bool) {
	p, ok := builtins[lower(naming.Local(qname))]
	return p, ok
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
