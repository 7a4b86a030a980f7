package java

import "github.com/javabind/javabind/ir"

// Method is one resolved interface method (schema properties are methods
// too; Java has no properties).
type Method struct {
	Name          string
	Path          string
	Comment       string
	ReturnComment string
	Returns       *Resolved
	Params        []*Param
}

// Param is one resolved method parameter.
type Param struct {
	Name     string
	Comment  string
	Optional bool
	Type     *Resolved
}

// Event is one resolved interface event; it expands into an on/off listener
// method pair.
type Event struct {
	Name    string
	Comment string
	Type    *Resolved
}

// Signature is one public method signature in the derived overload set.
// Exactly one of two shapes:
//
//   - Raw lines, for hand-authored overrides: emitted verbatim;
//   - a derived signature: declared when ForwardArgs is nil, or a default
//     method delegating to the full-arity signature with ForwardArgs as the
//     call arguments.
type Signature struct {
	Raw []string

	Returns     string
	Name        string
	Params      []*Param
	ParamTypes  []string
	ForwardArgs []string
}

// DeriveSignatures computes the public overload set for m.
//
// Two expansions compose multiplicatively. If some parameter resolves to a
// non-nullable anonymous union, the first such parameter (declaration order)
// drives one overload per supported variant. Within each overload, every
// optional-parameter suffix produces one default-delegating signature that
// omits the suffix and substitutes a zero sentinel for its leading
// parameter.
//
// A hand-authored override for m's path bypasses derivation; an empty
// override list suppresses the method (the caller emits nothing).
func DeriveSignatures(m *Method, overrides *Overrides) ([]Signature, error) {
	if raw, ok := overrides.Signatures[m.Path]; ok {
		if len(raw) == 0 {
			return nil, nil
		}
		return []Signature{{Raw: raw, Params: m.Params}}, nil
	}

	numOverloads := 1
	for _, p := range m.Params {
		if p.Type.IsUnion() {
			numOverloads = p.Type.UnionSize()
			break
		}
	}

	var sigs []Signature
	for i := 0; i < numOverloads; i++ {
		for j := len(m.Params) - 1; j >= 0; j-- {
			if !m.Params[j].Optional {
				continue
			}
			sig, err := deriveDefaultSignature(m, i, j)
			if err != nil {
				return nil, err
			}
			sigs = append(sigs, sig)
		}
		full, err := deriveFullSignature(m, i)
		if err != nil {
			return nil, err
		}
		sigs = append(sigs, full)
	}
	return sigs, nil
}

// deriveFullSignature renders the full-arity declaration for overload index
// i, with the union-typed parameters specialized to their i-th variant.
func deriveFullSignature(m *Method, i int) (Signature, error) {
	sig := Signature{
		Returns: m.Returns.Java(),
		Name:    m.Name,
		Params:  m.Params,
	}
	for _, p := range m.Params {
		t, err := paramType(p, i)
		if err != nil {
			return Signature{}, err
		}
		sig.ParamTypes = append(sig.ParamTypes, t)
	}
	return sig, nil
}

// deriveDefaultSignature renders the delegating overload that omits the
// optional-parameter suffix starting at index j. The omitted leading
// parameter is forwarded as a zero sentinel; optional parameters after it
// are dropped from both signature and call (the shorter delegate they need
// is generated by a later suffix position).
func deriveDefaultSignature(m *Method, i, j int) (Signature, error) {
	sig := Signature{
		Returns: m.Returns.Java(),
		Name:    m.Name,
	}
	for k, p := range m.Params {
		if k == j {
			sentinel := "null"
			if p.Type.Java() == "int" {
				sentinel = "0"
			}
			sig.ForwardArgs = append(sig.ForwardArgs, sentinel)
			continue
		}
		if p.Optional && k > j {
			continue
		}
		t, err := paramType(p, i)
		if err != nil {
			return Signature{}, err
		}
		sig.Params = append(sig.Params, p)
		sig.ParamTypes = append(sig.ParamTypes, t)
		sig.ForwardArgs = append(sig.ForwardArgs, sanitizeIdentifier(p.Name))
	}
	return sig, nil
}

func paramType(p *Param, i int) (string, error) {
	if !p.Type.IsUnion() {
		return p.Type.Java(), nil
	}
	if i >= p.Type.UnionSize() {
		return "", ir.Errorf(ir.CodeUnsupportedTypeShape, p.Type.expr.Path(),
			"union parameter %s has %d variants, overload index %d requested", p.Name, p.Type.UnionSize(), i)
	}
	return p.Type.Variant(i), nil
}

// FieldType returns the declared Java type for a generated-class field.
// Nullable fields wrap in Optional so that "explicitly null" stays
// distinguishable; optional fields box primitives so that "unset" stays
// representable. Required fields keep the unboxed representation.
func FieldType(f *FieldDecl) string {
	t := f.Type.Java()
	if f.Type.Nullable() {
		t = "Optional<" + t + ">"
	}
	if !f.Required {
		switch t {
		case "int":
			t = "Integer"
		case "double":
			t = "Double"
		case "boolean":
			t = "Boolean"
		}
	}
	return t
}

// Builder is one fluent with<Field> method of a generated class.
type Builder struct {
	Field *FieldDecl

	// ParamType is the accepted parameter type; empty for convenience
	// builders, which take Construct's fields instead.
	ParamType string

	// Construct, when non-nil, lists the required fields of the field's own
	// generated class: the builder accepts them directly and constructs the
	// nested instance inline.
	Construct []*FieldDecl
}

// DeriveBuilders computes the builder methods for an optional field. A field
// typed as an anonymous, non-custom union gets one builder per supported
// variant; a field typed as a generated class with required fields gets an
// additional convenience overload; every other field gets a single builder
// for its resolved type.
func DeriveBuilders(f *FieldDecl, reg *Registry) []Builder {
	if f.Type.customName == "" && f.Type.IsUnion() {
		var out []Builder
		for i := 0; i < f.Type.UnionSize(); i++ {
			out = append(out, Builder{Field: f, ParamType: f.Type.Variant(i)})
		}
		return out
	}
	var out []Builder
	if f.Type.IsCustomClass() {
		if c, ok := reg.Lookup(f.Type.Java()).(*GeneratedClass); ok {
			if req := c.RequiredFields(); len(req) > 0 {
				out = append(out, Builder{Field: f, Construct: req})
			}
		}
	}
	return append(out, Builder{Field: f, ParamType: f.Type.Java()})
}
