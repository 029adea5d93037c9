// Package naming provides qualified-name and case utilities for WSDL/XSD names.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser performs Unicode-correct title casing (strings.Title is deprecated).
var titleCaser = cases.Title(language.English, cases.NoLower)

// Local strips the namespace prefix from a qualified name.
// Example: "tns:GetUserRequest" -> "GetUserRequest"
// Example: "xsd:string" -> "string"
func Local(qname string) string {
	if idx := strings.IndexByte(qname, ':'); idx >= 0 {
		return qname[idx+1:]
	}
	return qname
}

// Prefix returns the namespace prefix of a qualified name, or "" if unprefixed.
// Example: "tns:GetUserRequest" -> "tns"
func Prefix(qname string) string {
	if idx := strings.IndexByte(qname, ':'); idx >= 0 {
		return qname[:idx]
	}
	return ""
}

// Anonymous synthesizes a schema name for an anonymous inline type, scoped to
// its parent declaration. The segments are title-cased and concatenated so the
// result reads as a PascalCase compound name.
// Example: Anonymous("user", "address") -> "UserAddress"
func Anonymous(segments ...string) string {
	var sb strings.Builder
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		sb.WriteString(titleCaser.String(Local(seg)))
	}
	return sb.String()
}

// ToPascalCase converts a string to PascalCase.
// Separators (underscore, hyphen, dot, slash) trigger capitalization of the next letter.
// Example: "user_profile" -> "UserProfile"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	capitalizeNext := true

	for _, r := range s {
		if r == '_' || r == '-' || r == '.' || r == '/' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}
