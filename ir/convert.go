package ir

import "github.com/javabind/javabind/schema"

// FromSchema converts a preprocessed schema type node into an Expr. path is
// the dot path of the member the node types; the whole expression tree shares
// it, since intermediate type nodes do not introduce new named scopes.
//
// A nil node converts to the void primitive (methods without a declared
// return type).
func FromSchema(t *schema.Type, path string) (Expr, error) {
	if t == nil {
		return Prim("void", path), nil
	}
	base := exprBase{path: path}

	if len(t.Union) > 0 {
		members := make([]Expr, 0, len(t.Union))
		for _, m := range t.Union {
			e, err := FromSchema(m, path)
			if err != nil {
				return nil, err
			}
			members = append(members, e)
		}
		return &Union{exprBase: base, Name: t.Name, Members: members}, nil
	}

	if t.Name == "function" {
		args := make([]Expr, 0, len(t.Args))
		for _, a := range t.Args {
			e, err := FromSchema(a, path)
			if err != nil {
				return nil, err
			}
			args = append(args, e)
		}
		var ret Expr
		if t.ReturnType != nil {
			var err error
			ret, err = FromSchema(t.ReturnType, path)
			if err != nil {
				return nil, err
			}
		}
		return &Func{exprBase: base, Args: args, Return: ret}, nil
	}

	if len(t.Templates) > 0 {
		switch t.Name {
		case "Array":
			if len(t.Templates) != 1 {
				return nil, Errorf(CodeSchemaShape, path, "Array expects one template argument, found %d", len(t.Templates))
			}
			elem, err := FromSchema(t.Templates[0], path)
			if err != nil {
				return nil, err
			}
			return &Array{exprBase: base, Elem: elem}, nil
		case "Map", "Object":
			if len(t.Templates) != 2 {
				return nil, Errorf(CodeSchemaShape, path, "%s expects two template arguments, found %d", t.Name, len(t.Templates))
			}
			key, err := FromSchema(t.Templates[0], path)
			if err != nil {
				return nil, err
			}
			value, err := FromSchema(t.Templates[1], path)
			if err != nil {
				return nil, err
			}
			return &MapOf{exprBase: base, Key: key, Value: value, Spelled: t.Name}, nil
		default:
			args := make([]Expr, 0, len(t.Templates))
			for _, a := range t.Templates {
				e, err := FromSchema(a, path)
				if err != nil {
					return nil, err
				}
				args = append(args, e)
			}
			return &Generic{exprBase: base, Name: t.Name, Args: args}, nil
		}
	}

	if t.Name == "Object" {
		props := make([]Property, 0, len(t.Properties))
		for _, p := range t.Properties {
			if p.Name == "" {
				return nil, Errorf(CodeSchemaShape, path, "object property without a name")
			}
			propPath := path + "." + p.Name
			pt, err := FromSchema(p.Type, propPath)
			if err != nil {
				return nil, err
			}
			props = append(props, Property{
				Name:     p.Name,
				Type:     pt,
				Required: p.Required,
				Comment:  p.Comment,
				Path:     propPath,
			})
		}
		return &Object{exprBase: base, Properties: props}, nil
	}

	if t.Name == "" {
		return nil, Errorf(CodeSchemaShape, path, "type node without a name")
	}
	return &Primitive{exprBase: base, Name: t.Name}, nil
}
