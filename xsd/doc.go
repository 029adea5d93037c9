// Package xsd resolves the XML Schema fragments of a WSDL <types> section
// into a canonical type graph.
//
// Resolution is a two-phase pipeline: all top-level simpleType, complexType,
// and element declarations across all fragments are indexed by name first,
// then each is resolved into an immutable [Node]. Indexing before resolving
// makes forward references and mutually-referential declarations order
// independent.
//
// The graph is name-keyed rather than pointer-linked: named nodes reference
// each other through [TypeRef] name lookups, so reference cycles (legal in
// XSD) are represented structurally instead of by unbounded inlining.
// Objects that participate in a cycle are marked Cyclic, which downstream
// projection uses to force emission as named component schemas.
//
// # Quick Start
//
//	graph, warnings, err := xsd.Resolve(fragments)
//	if err != nil {
//	    var resErr *wsdlerrors.ResolutionError
//	    if errors.As(err, &resErr) {
//	        // resErr.Kind distinguishes unknown types from bad cardinality
//	    }
//	    return err
//	}
//	node, ok := graph.Lookup("GetUserRequest")
//
// Errors returned from resolution are fatal: an unresolved type name or a
// malformed minOccurs/maxOccurs attribute aborts the whole conversion. Lossy
// but recoverable constructs (complexContent restriction) surface as
// warnings instead.
//
// A [Resolver] serves exactly one conversion request; the returned [Graph]
// is immutable and safe for concurrent reads.
package xsd
