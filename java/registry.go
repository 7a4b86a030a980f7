package java

import (
	"sort"

	"github.com/javabind/javabind/ir"
)

// NominalType is a generated class or enum held by the registry.
type NominalType interface {
	NominalName() string
	nominal()
}

// GeneratedEnum is a named string-literal union materialized as a Java enum.
type GeneratedEnum struct {
	Name   string
	Values []string
	Path   string
}

// NominalName returns the enum's name.
func (e *GeneratedEnum) NominalName() string { return e.Name }

func (*GeneratedEnum) nominal() {}

// sameValues reports whether both enums declare the same ordered value list.
func (e *GeneratedEnum) sameValues(other *GeneratedEnum) bool {
	if len(e.Values) != len(other.Values) {
		return false
	}
	for i := range e.Values {
		if e.Values[i] != other.Values[i] {
			return false
		}
	}
	return true
}

// GeneratedClass is an anonymous object literal materialized as a Java class.
// Field-owned literals materialize globally, so classes never nest inside
// other generated classes; owner-local classes attach to interface units.
type GeneratedClass struct {
	Name   string
	Fields []*FieldDecl

	// IsReturnType marks classes that only describe method results; they get
	// no constructor or builder methods.
	IsReturnType bool

	Path    string
	Comment string
}

// NominalName returns the class's name.
func (c *GeneratedClass) NominalName() string { return c.Name }

func (*GeneratedClass) nominal() {}

// RequiredFields returns the class's required fields in declaration order.
func (c *GeneratedClass) RequiredFields() []*FieldDecl {
	var req []*FieldDecl
	for _, f := range c.Fields {
		if f.Required {
			req = append(req, f)
		}
	}
	return req
}

// sameFields reports whether both classes declare structurally identical
// ordered field sets.
func (c *GeneratedClass) sameFields(other *GeneratedClass) bool {
	if len(c.Fields) != len(other.Fields) {
		return false
	}
	for i, f := range c.Fields {
		o := other.Fields[i]
		if f.Name != o.Name || f.Required != o.Required {
			return false
		}
		if f.Type.Java() != o.Type.Java() || f.Type.Nullable() != o.Type.Nullable() {
			return false
		}
	}
	return true
}

// FieldDecl is one field of a generated class, with its type resolved.
type FieldDecl struct {
	Name     string
	Comment  string
	Required bool
	Type     *Resolved
	Path     string
}

// ClassScope is the interface declaration unit that owner-local classes
// attach to.
type ClassScope interface {
	FindNested(name string) *GeneratedClass
	AddNested(c *GeneratedClass)
	ScopeName() string
}

// Registry creates, deduplicates and validates global nominal types. It is
// append-only and shared across the whole run: the resolver writes to it
// while resolving type expressions and the emitter reads the accumulated
// types afterwards. Owner-local classes do not live here; they attach to
// their ClassScope.
type Registry struct {
	types map[string]NominalType
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]NominalType)}
}

// Lookup returns the global nominal type with the given name, or nil.
func (g *Registry) Lookup(name string) NominalType {
	return g.types[name]
}

// Types returns all global nominal types sorted by name, for deterministic
// output.
func (g *Registry) Types() []NominalType {
	names := make([]string, 0, len(g.types))
	for name := range g.types {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]NominalType, 0, len(names))
	for _, name := range names {
		out = append(out, g.types[name])
	}
	return out
}

// CreateEnum materializes a named union as a global enum. Every non-null
// member's literal text becomes one value. Registration is idempotent by
// name: a second enum with the same name must declare the identical ordered
// value list.
func (g *Registry) CreateEnum(u *ir.Union) (*GeneratedEnum, error) {
	if u.Name == "" {
		return nil, ir.Errorf(ir.CodeUnnamedUnion, u.Path(), "cannot create enum from unnamed union")
	}
	e := &GeneratedEnum{Name: u.Name, Path: u.Path()}
	seen := make(map[string]bool)
	for _, m := range u.Members {
		if ir.IsNull(m) {
			return nil, ir.Errorf(ir.CodeSchemaShape, u.Path(), "unexpected null member in enum %s", u.Name)
		}
		v := enumValueName(ir.Format(m))
		if seen[v] {
			return nil, ir.Errorf(ir.CodeSchemaShape, u.Path(), "duplicate value %s in enum %s", v, u.Name)
		}
		seen[v] = true
		e.Values = append(e.Values, v)
	}
	if existing := g.types[u.Name]; existing != nil {
		other, ok := existing.(*GeneratedEnum)
		if !ok || !other.sameValues(e) {
			return nil, ir.Errorf(ir.CodeDuplicateNominalType, u.Path(), "enum %s registered twice with different values", u.Name)
		}
		return other, nil
	}
	g.types[u.Name] = e
	return e, nil
}

// CreateClass materializes an object literal as a global class. The class is
// always built (field resolution may itself register further nominal types);
// if a class with the same name already exists the two definitions must be
// structurally identical.
func (g *Registry) CreateClass(name string, owner Owner, e ir.Expr, r *Resolver) (*GeneratedClass, error) {
	c, err := buildClass(name, owner, e, r)
	if err != nil {
		return nil, err
	}
	if existing := g.types[name]; existing != nil {
		other, ok := existing.(*GeneratedClass)
		if !ok || !other.sameFields(c) {
			return nil, ir.Errorf(ir.CodeDuplicateNominalType, owner.Path, "class %s registered twice with different definitions", name)
		}
		return other, nil
	}
	g.types[name] = c
	return c, nil
}

// createNested materializes an owner-local class inside scope. Unlike global
// classes, owner-local creation is first-writer-wins: a same-named class is
// treated as already materialized with no structural consistency check.
func createNested(scope ClassScope, name string, owner Owner, e ir.Expr, r *Resolver) (*GeneratedClass, error) {
	if existing := scope.FindNested(name); existing != nil {
		return existing, nil
	}
	c, err := buildClass(name, owner, e, r)
	if err != nil {
		return nil, err
	}
	scope.AddNested(c)
	return c, nil
}

// buildClass unwraps e down to the underlying object literal and resolves
// one field per declared property. Field resolution is mutually recursive
// with the resolver: a field's own object-literal type materializes a class
// nested in this one.
func buildClass(name string, owner Owner, e ir.Expr, r *Resolver) (*GeneratedClass, error) {
	c := &GeneratedClass{
		Name:         name,
		IsReturnType: owner.Kind == OwnerMethod,
		Path:         owner.Path,
	}
	obj, err := unwrapObject(e, owner.Path)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		// The unwrap chain ended on a non-object node; the class stays empty.
		return c, nil
	}
	for _, prop := range obj.Properties {
		// Field-owned literals take the global branch, so no scope is needed.
		fieldOwner := Owner{
			Path:   prop.Path,
			Kind:   OwnerField,
			Name:   prop.Name,
			Parent: name,
		}
		rt, err := r.Resolve(prop.Type, fieldOwner)
		if err != nil {
			return nil, err
		}
		c.Fields = append(c.Fields, &FieldDecl{
			Name:     prop.Name,
			Comment:  prop.Comment,
			Required: prop.Required,
			Type:     rt,
			Path:     prop.Path,
		})
	}
	return c, nil
}

// unwrapObject strips a possible single-member union (discarding a null
// variant) and any chain of single-argument template wrappers to reach the
// underlying object literal. Returns nil when the chain ends elsewhere.
func unwrapObject(e ir.Expr, path string) (*ir.Object, error) {
	if u, ok := e.(*ir.Union); ok {
		if u.Name != "" {
			return nil, ir.Errorf(ir.CodeSchemaShape, path, "unexpected named union %s", u.Name)
		}
		for _, m := range u.Members {
			if !ir.IsNull(m) {
				e = m
				break
			}
		}
	}
	for {
		switch t := e.(type) {
		case *ir.Array:
			e = t.Elem
		case *ir.Generic:
			if len(t.Args) != 1 {
				return nil, ir.Errorf(ir.CodeUnsupportedTypeShape, path, "unexpected number of template arguments for %s", t.Name)
			}
			e = t.Args[0]
		case *ir.Object:
			return t, nil
		default:
			return nil, nil
		}
	}
}
