package java

import (
	"github.com/javabind/javabind/ir"
)

// OwnerKind identifies the member that declared a type expression.
type OwnerKind int

const (
	OwnerMethod OwnerKind = iota // method return type
	OwnerParam                   // method parameter
	OwnerField                   // generated-class field
	OwnerEvent                   // event payload
)

// Owner is the resolution context for a type expression: which member
// declared it, where that member lives, and the nearest enclosing type
// definition that owner-local classes attach to. Threading it explicitly
// keeps resolution a function of (expression, owner, registry) with no
// back-references into the tree.
type Owner struct {
	// Path is the member's dot path, the key for override lookups.
	Path string

	// Kind is the declaring member's kind.
	Kind OwnerKind

	// Name is the declaring member's name; it names generated classes.
	Name string

	// Parent is the name of the member's own parent (the method for a
	// parameter, the class for a field, the interface for a method).
	Parent string

	// Scope receives owner-local classes.
	Scope ClassScope
}

// NominalKind distinguishes generated classes from generated enums.
type NominalKind int

const (
	NominalClass NominalKind = iota
	NominalEnum
)

// NominalRef points at a nominal type produced (or assumed pre-existing) by
// resolution. Owner is empty for global types and names the enclosing scope
// for owner-local classes.
type NominalRef struct {
	Kind  NominalKind
	Name  string
	Owner string
}

// Resolved is the outcome of resolving one type expression: the Java type
// text, the nullability flag, the nominal type it produced if any, and the
// per-variant renderings when the expression is an anonymous union that can
// drive method overloads.
type Resolved struct {
	expr        ir.Expr
	text        string
	nullable    bool
	ref         *NominalRef
	customName  string
	customClass bool
	union       bool
	variants    []string
}

// Java returns the target type text.
func (r *Resolved) Java() string { return r.text }

// Nullable reports whether the expression was an anonymous {T, null} union.
func (r *Resolved) Nullable() bool { return r.nullable }

// Ref returns the nominal type reference, or nil for plain builtins.
func (r *Resolved) Ref() *NominalRef { return r.ref }

// IsUnion reports whether the expression is a non-nullable anonymous union,
// the shape that expands into method overloads.
func (r *Resolved) IsUnion() bool { return r.union }

// UnionSize returns the number of supported union variants. A bare
// argument-less function variant and a null variant are not counted.
func (r *Resolved) UnionSize() int { return len(r.variants) }

// Variant returns the Java rendering of the i-th supported union variant.
func (r *Resolved) Variant(i int) string { return r.variants[i] }

// IsCustomClass reports whether the expression (after discarding
// nullability) is an anonymous object literal, i.e. resolves to a generated
// class.
func (r *Resolved) IsCustomClass() bool { return r.customClass }

// Resolver converts type expressions into Resolved values, consulting the
// override table first and populating the nominal type registry as it goes.
// A resolver instance caches by node identity, so repeated resolution of the
// same expression is idempotent and never asks the registry twice.
type Resolver struct {
	reg       *Registry
	overrides *Overrides
	cache     map[ir.Expr]*Resolved
}

// NewResolver returns a resolver writing to reg.
func NewResolver(reg *Registry, overrides *Overrides) *Resolver {
	return &Resolver{
		reg:       reg,
		overrides: overrides,
		cache:     make(map[ir.Expr]*Resolved),
	}
}

// Registry returns the registry this resolver populates.
func (r *Resolver) Registry() *Registry { return r.reg }

// Resolve converts e, declared by owner, into its Java binding shape.
func (r *Resolver) Resolve(e ir.Expr, owner Owner) (*Resolved, error) {
	if cached, ok := r.cache[e]; ok {
		return cached, nil
	}

	res := &Resolved{expr: e}

	mapping, overridden := r.overrides.Types[owner.Path]
	if overridden {
		// The override bypasses materialization entirely; its target type is
		// assumed to pre-exist. The declared source text must match the
		// structural rendering so that schema drift is caught instead of
		// silently generating against a stale assumption.
		got := ir.Format(e)
		if mapping.From != got {
			return nil, ir.Errorf(ir.CodeOverrideMismatch, owner.Path,
				"unexpected source type: expected %q, found %q", mapping.From, got)
		}
		res.customName = mapping.To
		res.ref = &NominalRef{Kind: NominalClass, Name: mapping.To}
	} else if err := r.materialize(e, owner, res); err != nil {
		return nil, err
	}

	res.nullable = isNullable(e)
	stripped := stripNullable(e)
	if _, ok := stripped.(*ir.Object); ok {
		res.customClass = true
	}
	if u, ok := stripped.(*ir.Union); ok && u.Name == "" && !res.nullable && !overridden {
		res.union = true
	}

	switch {
	case overridden:
		res.text = mapping.To
	case res.union && owner.Kind == OwnerParam:
		// A union parameter's own spelling is never declared; each overload
		// specializes it to one variant.
		res.text = "Object"
	default:
		text, err := r.convert(stripped, owner, res, 0)
		if err != nil {
			return nil, err
		}
		res.text = text
	}

	if res.union {
		u := stripped.(*ir.Union)
		variants := supportedVariants(u)
		arrayOverloads := 0
		for _, v := range variants {
			if _, ok := v.(*ir.Array); ok {
				arrayOverloads++
			}
		}
		for _, v := range variants {
			text, err := r.convert(v, owner, res, arrayOverloads)
			if err != nil {
				return nil, err
			}
			res.variants = append(res.variants, text)
		}
	}

	r.cache[e] = res
	return res, nil
}

// materialize walks e and creates the nominal types it requires: a named
// union becomes a global enum, an object literal becomes a generated class
// whose scope depends on the declaring member. Several union branches may
// reference the same literal shape; only the first materializes it.
func (r *Resolver) materialize(e ir.Expr, owner Owner, res *Resolved) error {
	switch t := e.(type) {
	case *ir.Union:
		if t.Name == "" {
			for _, m := range t.Members {
				if err := r.materialize(m, owner, res); err != nil {
					return err
				}
			}
			return nil
		}
		enum, err := r.reg.CreateEnum(t)
		if err != nil {
			return err
		}
		if res.ref == nil && (e == res.expr || e == stripNullable(res.expr)) {
			res.ref = &NominalRef{Kind: NominalEnum, Name: enum.Name}
		}
		return nil
	case *ir.Array:
		return r.materialize(t.Elem, owner, res)
	case *ir.MapOf:
		if err := r.materialize(t.Key, owner, res); err != nil {
			return err
		}
		return r.materialize(t.Value, owner, res)
	case *ir.Generic:
		for _, a := range t.Args {
			if err := r.materialize(a, owner, res); err != nil {
				return err
			}
		}
		return nil
	case *ir.Object:
		if res.customName != "" {
			// Same literal referenced from several union branches, e.g.
			// Object|Array<Object>.
			return nil
		}
		if owner.Kind == OwnerMethod || owner.Kind == OwnerField ||
			(owner.Kind == OwnerParam && owner.Name != "options") {
			name, ok := r.overrides.CustomTypeNames[owner.Name]
			if !ok {
				name = toTitle(owner.Name)
			}
			if _, err := r.reg.CreateClass(name, owner, t, r); err != nil {
				return err
			}
			res.customName = name
			res.ref = &NominalRef{Kind: NominalClass, Name: name}
			return nil
		}
		// Options-bag parameters and event payloads stay local to their
		// interface unit.
		name := toTitle(owner.Parent) + toTitle(owner.Name)
		if _, err := createNested(owner.Scope, name, owner, res.expr, r); err != nil {
			return err
		}
		res.customName = name
		res.ref = &NominalRef{Kind: NominalClass, Name: name, Owner: owner.Scope.ScopeName()}
		return nil
	default:
		return nil
	}
}

// convert maps an expression onto its Java spelling. arrayOverloads is the
// number of array-typed variants in the union being expanded, when e is one
// of them: two List-typed overloads would be indistinguishable after generic
// erasure, so multiple array variants of one parameter render as Java arrays
// instead.
func (r *Resolver) convert(e ir.Expr, owner Owner, res *Resolved, arrayOverloads int) (string, error) {
	switch t := e.(type) {
	case *ir.Primitive:
		if s, ok := builtins[t.Name]; ok {
			return s, nil
		}
		return t.Name, nil
	case *ir.Union:
		if t.Name != "" {
			return t.Name, nil
		}
		if owner.Kind == OwnerField {
			// A field typed as an unnamed multi-variant union has no single
			// Java type; the field is declared Object and its builder
			// methods carry the per-variant types.
			return "Object", nil
		}
		return "", ir.Errorf(ir.CodeUnnamedUnion, e.Path(), "unexpected union without a name")
	case *ir.Array:
		elem, err := r.convert(t.Elem, owner, res, arrayOverloads)
		if err != nil {
			return "", err
		}
		if owner.Kind == OwnerParam && arrayOverloads > 1 {
			return elem + "[]", nil
		}
		return "List<" + elem + ">", nil
	case *ir.MapOf:
		if t.Spelled == "Object" {
			expr := ir.Format(e)
			if expr != "Object<string, string>" && expr != "Object<string, any>" {
				return "", ir.Errorf(ir.CodeUnsupportedTypeShape, e.Path(), "unexpected object type: %s", expr)
			}
		}
		key, err := r.convert(t.Key, owner, res, arrayOverloads)
		if err != nil {
			return "", err
		}
		value, err := r.convert(t.Value, owner, res, arrayOverloads)
		if err != nil {
			return "", err
		}
		return "Map<" + key + ", " + value + ">", nil
	case *ir.Generic:
		if t.Name == "Promise" && len(t.Args) == 1 {
			// The async wrapper is erased at the binding-shape level.
			return r.convert(t.Args[0], owner, res, arrayOverloads)
		}
		return "", ir.Errorf(ir.CodeUnsupportedTypeShape, e.Path(), "no mapping for generic %s", ir.Format(e))
	case *ir.Func:
		if len(t.Args) == 1 {
			param, err := r.convert(t.Args[0], owner, res, arrayOverloads)
			if err != nil {
				return "", err
			}
			if t.Return == nil {
				return "Consumer<" + param + ">", nil
			}
			if ret, ok := t.Return.(*ir.Primitive); ok && ret.Name == "boolean" {
				return "Predicate<" + param + ">", nil
			}
			return "", ir.Errorf(ir.CodeUnsupportedTypeShape, e.Path(), "no mapping for function return type in %s", ir.Format(e))
		}
		return "", ir.Errorf(ir.CodeUnsupportedTypeShape, e.Path(), "unsupported function type arity %d", len(t.Args))
	case *ir.Object:
		if res.customName != "" {
			return res.customName, nil
		}
		return "", ir.Errorf(ir.CodeUnsupportedTypeShape, e.Path(), "object literal did not materialize a class")
	default:
		return "", ir.Errorf(ir.CodeUnsupportedTypeShape, e.Path(), "no mapping for %s", ir.Format(e))
	}
}

// isNullable reports whether e is an anonymous two-member union with a null
// member. That shape never materializes as a union; it collapses to a
// nullable rendering of the other member.
func isNullable(e ir.Expr) bool {
	u, ok := e.(*ir.Union)
	if !ok || u.Name != "" || len(u.Members) != 2 {
		return false
	}
	for _, m := range u.Members {
		if ir.IsNull(m) {
			return true
		}
	}
	return false
}

// stripNullable unwraps the {T, null} shape down to T; any other expression
// is returned unchanged.
func stripNullable(e ir.Expr) ir.Expr {
	if !isNullable(e) {
		return e
	}
	u := e.(*ir.Union)
	for _, m := range u.Members {
		if !ir.IsNull(m) {
			return m
		}
	}
	return e
}

// supportedVariants returns the union members that participate in overload
// expansion: null variants and bare argument-less function variants are
// dropped.
func supportedVariants(u *ir.Union) []ir.Expr {
	var out []ir.Expr
	for _, m := range u.Members {
		if ir.IsNull(m) {
			continue
		}
		if f, ok := m.(*ir.Func); ok && len(f.Args) == 0 {
			continue
		}
		out = append(out, m)
	}
	return out
}
