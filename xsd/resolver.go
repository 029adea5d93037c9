package xsd

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/erraggy/wsdltools/internal/issues"
	"github.com/erraggy/wsdltools/internal/naming"
	"github.com/erraggy/wsdltools/internal/severity"
	"github.com/erraggy/wsdltools/wsdlerrors"
)

// Decode parses a standalone schema document (the pre-fetched target of an
// xsd:import or xsd:include) into a Schema fragment.
func Decode(data []byte) (*Schema, error) {
	var s Schema
	if err := xml.Unmarshal(data, &s); err != nil {
		return nil, &wsdlerrors.ParseError{
			Source:  "schema",
			Message: "document is not a well-formed schema",
			Cause:   err,
		}
	}
	return &s, nil
}

// Resolver resolves schema fragments into a type graph. A Resolver is used
// for exactly one resolution pass and must not be shared across conversions.
type Resolver struct {
	// Logger receives diagnostic output; nil disables logging
	Logger Logger

	types     map[string]*indexedType
	elements  map[string]*Element
	typeOrder []string
	elemOrder []string

	graph     *Graph
	resolving map[string]bool
	cyclic    map[string]bool
	warnings  []issues.Issue
}

// indexedType holds one named declaration; exactly one variant is set.
type indexedType struct {
	simple  *SimpleType
	complex *ComplexType
}

// NewResolver creates a resolver for one conversion request.
func NewResolver() *Resolver {
	return &Resolver{
		types:     make(map[string]*indexedType),
		elements:  make(map[string]*Element),
		graph:     newGraph(),
		resolving: make(map[string]bool),
		cyclic:    make(map[string]bool),
	}
}

// Resolve is a convenience that indexes and resolves the given fragments
// with a fresh resolver. It returns the completed graph and any
// non-fatal warnings; a non-nil error is fatal and leaves no usable graph.
func Resolve(fragments []*Schema) (*Graph, []issues.Issue, error) {
	return NewResolver().Resolve(fragments)
}

// Resolve indexes all top-level declarations across all fragments, then
// resolves each one. Indexing before resolving is required because
// declarations may reference each other in any order, including forward
// references.
func (r *Resolver) Resolve(fragments []*Schema) (*Graph, []issues.Issue, error) {
	for _, frag := range fragments {
		if frag == nil {
			continue
		}
		r.index(frag)
	}
	r.logger().Debug("indexed schema declarations",
		"types", len(r.types), "elements", len(r.elements))

	for _, name := range r.typeOrder {
		if _, err := r.resolveType(name); err != nil {
			return nil, r.warnings, err
		}
	}
	for _, name := range r.elemOrder {
		if err := r.resolveElement(name); err != nil {
			return nil, r.warnings, err
		}
	}

	r.logger().Debug("resolved type graph", "nodes", r.graph.Len(), "warnings", len(r.warnings))
	return r.graph, r.warnings, nil
}

// index records all named top-level declarations of one fragment.
// Duplicate names keep the first declaration; redefinition across imported
// fragments is tolerated rather than fatal.
func (r *Resolver) index(frag *Schema) {
	for _, st := range frag.SimpleTypes {
		if st.Name == "" {
			continue
		}
		if _, dup := r.types[st.Name]; dup {
			continue
		}
		r.types[st.Name] = &indexedType{simple: st}
		r.typeOrder = append(r.typeOrder, st.Name)
	}
	for _, ct := range frag.ComplexTypes {
		if ct.Name == "" {
			continue
		}
		if _, dup := r.types[ct.Name]; dup {
			continue
		}
		r.types[ct.Name] = &indexedType{complex: ct}
		r.typeOrder = append(r.typeOrder, ct.Name)
	}
	for _, el := range frag.Elements {
		if el.Name == "" {
			continue
		}
		if _, dup := r.elements[el.Name]; dup {
			continue
		}
		r.elements[el.Name] = el
		r.elemOrder = append(r.elemOrder, el.Name)
	}
}

// resolveType resolves the named declaration into a graph node. A (nil, nil)
// return means resolution of this name is already in progress further up the
// stack: the caller must reference it by name, and the node is marked cyclic.
func (r *Resolver) resolveType(name string) (*Node, error) {
	if n, ok := r.graph.Lookup(name); ok {
		return n, nil
	}
	if r.resolving[name] {
		r.cyclic[name] = true
		r.logger().Debug("cycle detected", "type", name)
		return nil, nil
	}

	it, ok := r.types[name]
	if !ok {
		return nil, &wsdlerrors.ResolutionError{
			Kind: wsdlerrors.ResolutionUnknownType,
			Name: name,
		}
	}

	r.resolving[name] = true
	defer delete(r.resolving, name)

	var (
		node *Node
		err  error
	)
	switch {
	case it.simple != nil:
		node, err = r.resolveSimple(it.simple)
	case it.complex != nil:
		node, err = r.resolveComplex(it.complex, name)
	}
	if err != nil {
		return nil, err
	}

	node.Name = name
	node.Cyclic = r.cyclic[name]
	r.graph.add(name, node)
	return node, nil
}

// resolveSimple maps a simple type to a primitive or enum node. Enumeration
// facets override the base mapping, preserving facet order.
func (r *Resolver) resolveSimple(st *SimpleType) (*Node, error) {
	base := PrimitiveString
	if st.Restriction != nil && st.Restriction.Base != "" {
		if p, ok := LookupBuiltin(st.Restriction.Base); ok {
			base = p
		} else {
			// Restriction of another named simple type: inherit its kind.
			target, err := r.resolveType(naming.Local(st.Restriction.Base))
			if err != nil {
				return nil, err
			}
			if target != nil && (target.Kind == KindPrimitive || target.Kind == KindEnum) {
				base = target.Primitive
			}
		}
	}

	if st.Restriction != nil && len(st.Restriction.Enum) > 0 {
		values := make([]string, 0, len(st.Restriction.Enum))
		for _, e := range st.Restriction.Enum {
			values = append(values, e.Value)
		}
		return &Node{Kind: KindEnum, Primitive: base, Values: values, Doc: st.Doc}, nil
	}
	return &Node{Kind: KindPrimitive, Primitive: base, Doc: st.Doc}, nil
}

// resolveComplex maps a complex type to an object node. scope names the
// enclosing declaration for error reporting and anonymous-type naming.
func (r *Resolver) resolveComplex(ct *ComplexType, scope string) (*Node, error) {
	var fields []Field

	switch {
	case ct.ComplexContent != nil:
		ext := ct.ComplexContent.Extension
		if ext == nil && ct.ComplexContent.Restriction != nil {
			ext = ct.ComplexContent.Restriction
			r.warn(issues.Issue{
				Path:     issues.FormatPath("types", scope),
				Message:  "complexContent restriction treated as extension",
				Severity: severity.SeverityWarning,
				Code:     issues.CodeAmbiguousRestriction,
				Context:  "field narrowing is not supported; base fields are retained",
			})
		}
		if ext != nil {
			merged, err := r.baseFields(ext.Base, scope)
			if err != nil {
				return nil, err
			}
			own, err := r.buildFields(elementsOf(ext.Sequence, ext.All), scope)
			if err != nil {
				return nil, err
			}
			fields = mergeFields(merged, own)
		}

	case ct.SimpleContent != nil:
		// Simple content projects as its base type; attributes have no
		// JSON counterpart and are dropped.
		base := PrimitiveString
		if ext := ct.SimpleContent.Extension; ext != nil {
			if p, ok := LookupBuiltin(ext.Base); ok {
				base = p
			}
		}
		return &Node{Kind: KindPrimitive, Primitive: base, Doc: ct.Doc}, nil

	default:
		own, err := r.buildFields(elementsOf(ct.Sequence, ct.All), scope)
		if err != nil {
			return nil, err
		}
		fields = own
	}

	return &Node{Kind: KindObject, Fields: fields, Doc: ct.Doc}, nil
}

// baseFields resolves an extension base and returns a copy of its fields.
func (r *Resolver) baseFields(base, scope string) ([]Field, error) {
	if base == "" {
		return nil, nil
	}
	if _, ok := LookupBuiltin(base); ok {
		// Extending a built-in adds no fields.
		return nil, nil
	}

	local := naming.Local(base)
	node, err := r.resolveType(local)
	if err != nil {
		return nil, err
	}
	if node == nil {
		// The base is still being resolved: the derivation chain is cyclic
		// and the base's fields cannot be merged.
		return nil, &wsdlerrors.ResolutionError{
			Kind:    wsdlerrors.ResolutionCyclicWithoutAnchor,
			Name:    local,
			Message: fmt.Sprintf("cyclic type derivation via %s", scope),
		}
	}
	if node.Kind != KindObject {
		return nil, nil
	}
	merged := make([]Field, len(node.Fields))
	copy(merged, node.Fields)
	return merged, nil
}

// buildFields computes (name, typeRef, required, isArray) for each child
// element, in declaration order.
func (r *Resolver) buildFields(elems []*Element, scope string) ([]Field, error) {
	if len(elems) == 0 {
		return nil, nil
	}
	fields := make([]Field, 0, len(elems))
	for _, el := range elems {
		f, err := r.buildField(el, scope)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func (r *Resolver) buildField(el *Element, scope string) (Field, error) {
	name := el.Name
	if name == "" && el.Ref != "" {
		name = naming.Local(el.Ref)
	}

	required, isArray, err := r.cardinality(el, scope, name)
	if err != nil {
		return Field{}, err
	}

	ref, err := r.fieldTypeRef(el, scope, name)
	if err != nil {
		return Field{}, err
	}

	// An anonymous inline type with collection cardinality has no named
	// wrapper; synthesize one so the shape survives on its own.
	if isArray && ref.IsInline() && ref.Inline.Kind == KindObject {
		inner := ref
		ref = TypeRef{Inline: &Node{Kind: KindArray, Item: &inner}}
		isArray = false
	}

	return Field{
		Name:     name,
		Type:     ref,
		Required: required,
		IsArray:  isArray,
		Nillable: el.Nillable,
		Doc:      el.Doc,
	}, nil
}

// cardinality computes required (minOccurs != 0) and isArray (maxOccurs
// "unbounded" or > 1). Absent attributes default to 1 per XSD, so an
// element without minOccurs is required.
func (r *Resolver) cardinality(el *Element, scope, field string) (required, isArray bool, err error) {
	required = true
	if el.MinOccurs != "" {
		min, convErr := strconv.Atoi(el.MinOccurs)
		if convErr != nil || min < 0 {
			return false, false, r.cardinalityError(scope, field, "minOccurs", el.MinOccurs)
		}
		required = min != 0
	}

	if el.MaxOccurs != "" {
		if el.MaxOccurs == "unbounded" {
			return required, true, nil
		}
		max, convErr := strconv.Atoi(el.MaxOccurs)
		if convErr != nil || max < 0 {
			return false, false, r.cardinalityError(scope, field, "maxOccurs", el.MaxOccurs)
		}
		isArray = max > 1
	}
	return required, isArray, nil
}

func (r *Resolver) cardinalityError(scope, field, attr, value string) error {
	return &wsdlerrors.ResolutionError{
		Kind:    wsdlerrors.ResolutionInvalidCardinality,
		Name:    issues.FormatPath(scope, field),
		Message: fmt.Sprintf("%s=%q is not a non-negative integer or \"unbounded\"", attr, value),
	}
}

// fieldTypeRef computes the type reference for one element, synthesizing
// anonymous nodes for inline type definitions.
func (r *Resolver) fieldTypeRef(el *Element, scope, field string) (TypeRef, error) {
	switch {
	case el.Ref != "":
		local := naming.Local(el.Ref)
		if err := r.resolveElement(local); err != nil {
			return TypeRef{}, err
		}
		return TypeRef{Name: local}, nil

	case el.Type != "":
		if p, ok := LookupBuiltin(el.Type); ok {
			return TypeRef{Inline: &Node{Kind: KindPrimitive, Primitive: p}}, nil
		}
		local := naming.Local(el.Type)
		if _, err := r.resolveType(local); err != nil {
			return TypeRef{}, err
		}
		return TypeRef{Name: local}, nil

	case el.ComplexType != nil:
		anon, err := r.resolveComplex(el.ComplexType, naming.Anonymous(scope, field))
		if err != nil {
			return TypeRef{}, err
		}
		return TypeRef{Inline: anon}, nil

	case el.SimpleType != nil:
		anon, err := r.resolveSimple(el.SimpleType)
		if err != nil {
			return TypeRef{}, err
		}
		return TypeRef{Inline: anon}, nil

	default:
		// No type information at all; the permissive reading is string.
		return TypeRef{Inline: &Node{Kind: KindPrimitive, Primitive: PrimitiveString}}, nil
	}
}

// resolveElement resolves a named top-level element declaration into the
// graph. Element declarations share the graph namespace with types: when an
// element references a type of the same local name (the common
// document/literal pattern), the type node satisfies lookups for both.
func (r *Resolver) resolveElement(name string) error {
	if _, ok := r.graph.Lookup(name); ok {
		return nil
	}
	if r.resolving["element:"+name] {
		r.cyclic[name] = true
		return nil
	}

	el, ok := r.elements[name]
	if !ok {
		// Fall back to a type declaration with the same local name.
		if _, typeOK := r.types[name]; typeOK {
			_, err := r.resolveType(name)
			return err
		}
		return &wsdlerrors.ResolutionError{
			Kind: wsdlerrors.ResolutionUnknownType,
			Name: name,
		}
	}

	r.resolving["element:"+name] = true
	defer delete(r.resolving, "element:"+name)

	var (
		node *Node
		err  error
	)
	switch {
	case el.Type != "":
		if p, ok := LookupBuiltin(el.Type); ok {
			node = &Node{Kind: KindPrimitive, Primitive: p, Doc: el.Doc}
		} else {
			local := naming.Local(el.Type)
			if _, err = r.resolveType(local); err != nil {
				return err
			}
			if local == name {
				// Element and type share a name and the type node is
				// already in the graph under it.
				return nil
			}
			node = &Node{Kind: KindReference, Target: local, Doc: el.Doc}
		}

	case el.ComplexType != nil:
		node, err = r.resolveComplex(el.ComplexType, name)
		if err != nil {
			return err
		}

	case el.SimpleType != nil:
		node, err = r.resolveSimple(el.SimpleType)
		if err != nil {
			return err
		}

	default:
		node = &Node{Kind: KindPrimitive, Primitive: PrimitiveString, Doc: el.Doc}
	}

	if _, exists := r.graph.Lookup(name); exists {
		// A type declaration with the same name resolved first; it wins.
		return nil
	}
	node.Name = name
	node.Cyclic = r.cyclic[name]
	r.graph.add(name, node)
	return nil
}

func (r *Resolver) warn(i issues.Issue) {
	r.warnings = append(r.warnings, i)
}

func (r *Resolver) logger() Logger {
	if r.Logger == nil {
		return nopLogger{}
	}
	return r.Logger
}

// mergeFields appends own onto base, replacing base fields that own
// redeclares by name. Redeclaration happens when a restriction repeats the
// base's elements.
func mergeFields(base, own []Field) []Field {
	if len(base) == 0 {
		return own
	}
	index := make(map[string]int, len(base))
	for i, f := range base {
		index[f.Name] = i
	}
	for _, f := range own {
		if i, exists := index[f.Name]; exists {
			base[i] = f
			continue
		}
		base = append(base, f)
	}
	return base
}

// elementsOf flattens the element lists of a sequence and an all group.
// All-groups are unordered in XSD but projection preserves declaration order.
func elementsOf(seq *Sequence, all *All) []*Element {
	var elems []*Element
	if seq != nil {
		elems = append(elems, seq.Elements...)
	}
	if all != nil {
		elems = append(elems, all.Elements...)
	}
	return elems
}
