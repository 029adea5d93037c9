package xsd

import "github.com/erraggy/wsdltools/internal/naming"

// Kind discriminates the node variants of the type graph.
type Kind int

const (
	// KindPrimitive is a leaf node mapped from an XSD built-in type.
	KindPrimitive Kind = iota
	// KindEnum is a simple type restricted to an ordered set of literals.
	KindEnum
	// KindObject is a complex type with an ordered field list.
	KindObject
	// KindArray is a synthesized collection wrapper for an element whose
	// cardinality alone implies a collection without a named wrapper type.
	KindArray
	// KindReference is a named pointer to another node in the graph.
	KindReference
)

// String returns the string representation of the node kind.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindEnum:
		return "enum"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindReference:
		return "reference"
	default:
		return "unknown"
	}
}

// Node is a single resolved type in the graph. Exactly one variant's
// fields are meaningful, selected by Kind:
//
//   - KindPrimitive: Primitive
//   - KindEnum:      Primitive (base kind) and Values
//   - KindObject:    Fields, and Cyclic when the object participates in a
//     reference cycle
//   - KindArray:     Item
//   - KindReference: Target
//
// Named nodes carry their qualified local name in Name; anonymous inline
// nodes have an empty Name. Nodes are immutable once resolution completes.
type Node struct {
	Kind      Kind
	Name      string
	Doc       string
	Primitive Primitive
	Values    []string
	Fields    []Field
	Item      *TypeRef
	Target    string
	Cyclic    bool
}

// Field is one (name, type, cardinality) entry of an object node, in
// declaration order.
type Field struct {
	Name     string
	Type     TypeRef
	Required bool
	IsArray  bool
	Nillable bool
	Doc      string
}

// TypeRef points at a node either by name (a lookup into the graph) or
// inline (an anonymous node owned by the referencing field). Exactly one
// of Name and Inline is set.
type TypeRef struct {
	Name   string
	Inline *Node
}

// IsInline reports whether the reference carries an anonymous inline node.
func (r TypeRef) IsInline() bool {
	return r.Inline != nil
}

// Graph is the resolved, name-keyed type graph for one conversion request.
// Construction happens entirely inside Resolve; afterwards the graph is
// immutable and safe for concurrent reads.
type Graph struct {
	nodes map[string]*Node
	order []string
}

func newGraph() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

func (g *Graph) add(name string, n *Node) {
	if _, exists := g.nodes[name]; !exists {
		g.order = append(g.order, name)
	}
	g.nodes[name] = n
}

// Lookup returns the named node, or false when no declaration with that
// name was resolved.
func (g *Graph) Lookup(name string) (*Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// Names returns all resolved node names in declaration order. The order is
// deterministic for identical input, which keeps repeated conversions
// byte-identical.
func (g *Graph) Names() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Len returns the number of named nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// RefFor maps a (possibly prefixed) type or element name to a TypeRef.
// Built-in names yield an inline primitive; declared names yield a named
// reference. The second return is false when the name is neither.
func (g *Graph) RefFor(qname string) (TypeRef, bool) {
	if p, ok := LookupBuiltin(qname); ok {
		return TypeRef{Inline: &Node{Kind: KindPrimitive, Primitive: p}}, true
	}
	local := naming.Local(qname)
	if _, ok := g.nodes[local]; ok {
		return TypeRef{Name: local}, true
	}
	return TypeRef{}, false
}
