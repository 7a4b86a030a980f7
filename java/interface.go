package java

import (
	"github.com/javabind/javabind/ir"
	"github.com/javabind/javabind/schema"
)

// InterfaceUnit is one assembled interface declaration: supertypes, events,
// methods and the owner-local classes materialized while resolving its
// member types. Global nominal types accumulate in the shared registry
// instead.
type InterfaceUnit struct {
	Name    string
	Comment string
	Extends []string
	Events  []*Event
	Methods []*Method
	Nested  []*GeneratedClass
}

// FindNested returns the owner-local class with the given name, or nil.
func (u *InterfaceUnit) FindNested(name string) *GeneratedClass {
	for _, c := range u.Nested {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// AddNested appends an owner-local class.
func (u *InterfaceUnit) AddNested(c *GeneratedClass) { u.Nested = append(u.Nested, c) }

// ScopeName returns the interface name, used as the owner-local scope
// identity.
func (u *InterfaceUnit) ScopeName() string { return u.Name }

// Assembler composes interface declaration units, sharing one registry and
// one resolver across the whole run so that global nominal types deduplicate
// across interfaces.
type Assembler struct {
	reg       *Registry
	res       *Resolver
	overrides *Overrides
}

// NewAssembler returns an assembler with an empty registry.
func NewAssembler(overrides *Overrides) *Assembler {
	reg := NewRegistry()
	return &Assembler{
		reg:       reg,
		res:       NewResolver(reg, overrides),
		overrides: overrides,
	}
}

// Registry returns the shared nominal type registry.
func (a *Assembler) Registry() *Registry { return a.reg }

// Resolver returns the shared resolver.
func (a *Assembler) Resolver() *Resolver { return a.res }

// Assemble resolves every member type of in and composes the declaration
// unit. The schema must already be preprocessed for the target language.
func (a *Assembler) Assemble(in *schema.Interface) (*InterfaceUnit, error) {
	unit := &InterfaceUnit{Name: in.Name, Comment: in.Comment}

	if in.Extends != "" && a.overrides.isBaseInterface(in.Extends) {
		unit.Extends = append(unit.Extends, in.Extends)
	}
	if a.overrides.isCloseable(in.Name) {
		unit.Extends = append(unit.Extends, "AutoCloseable")
	}

	for _, m := range in.Members {
		switch m.Kind {
		case schema.KindMethod, schema.KindProperty:
			method, err := a.assembleMethod(unit, in, m)
			if err != nil {
				return nil, err
			}
			if method != nil {
				unit.Methods = append(unit.Methods, method)
			}
		case schema.KindEvent:
			event, err := a.assembleEvent(unit, in, m)
			if err != nil {
				return nil, err
			}
			unit.Events = append(unit.Events, event)
		default:
			return nil, ir.Errorf(ir.CodeSchemaShape, in.Name+"."+m.Name, "unexpected member kind %q", m.Kind)
		}
	}
	return unit, nil
}

func (a *Assembler) assembleMethod(unit *InterfaceUnit, in *schema.Interface, m *schema.Member) (*Method, error) {
	path := in.Name + "." + m.Name
	if raw, ok := a.overrides.Signatures[path]; ok && len(raw) == 0 {
		// Entirely hand-written elsewhere; skip resolution so the schema's
		// declared types cannot materialize anything for it.
		return nil, nil
	}

	method := &Method{
		Name:          m.Name,
		Path:          path,
		Comment:       m.Comment,
		ReturnComment: m.ReturnComment,
	}

	retExpr, err := ir.FromSchema(m.Type, path)
	if err != nil {
		return nil, err
	}
	method.Returns, err = a.res.Resolve(retExpr, Owner{
		Path:   path,
		Kind:   OwnerMethod,
		Name:   m.Name,
		Parent: in.Name,
		Scope:  unit,
	})
	if err != nil {
		return nil, err
	}

	for _, arg := range m.Args {
		// An options bag that declares no properties for this language has
		// nothing to bind.
		if arg.Name == "options" && (arg.Type == nil || len(arg.Type.Properties) == 0) {
			continue
		}
		paramPath := path + "." + arg.Name
		paramExpr, err := ir.FromSchema(arg.Type, paramPath)
		if err != nil {
			return nil, err
		}
		rt, err := a.res.Resolve(paramExpr, Owner{
			Path:   paramPath,
			Kind:   OwnerParam,
			Name:   arg.Name,
			Parent: m.Name,
			Scope:  unit,
		})
		if err != nil {
			return nil, err
		}
		method.Params = append(method.Params, &Param{
			Name:     arg.Name,
			Comment:  arg.Comment,
			Optional: !arg.Required,
			Type:     rt,
		})
	}
	return method, nil
}

func (a *Assembler) assembleEvent(unit *InterfaceUnit, in *schema.Interface, m *schema.Member) (*Event, error) {
	path := in.Name + "." + m.Name
	expr, err := ir.FromSchema(m.Type, path)
	if err != nil {
		return nil, err
	}
	rt, err := a.res.Resolve(expr, Owner{
		Path:   path,
		Kind:   OwnerEvent,
		Name:   m.Name,
		Parent: in.Name,
		Scope:  unit,
	})
	if err != nil {
		return nil, err
	}
	return &Event{Name: m.Name, Comment: m.Comment, Type: rt}, nil
}
