package schema

import "fmt"

// Preprocess filters the API tree down to the nodes applicable to lang and
// applies per-node overrides in place. It must run to completion before any
// path is computed from the tree, since paths are derived from (possibly
// aliased) names.
//
// Three transformations are applied, in order, at every node that carries a
// langs declaration:
//
//  1. nodes whose langs.only allow-list excludes lang are removed together
//     with their subtree;
//  2. a langs.aliases entry for lang replaces the node's name;
//  3. a langs.types entry for lang replaces the node's declared type verbatim.
//
// The returned slice shares nodes with the input; callers must not reuse the
// input after preprocessing.
func Preprocess(api []*Interface, lang string) ([]*Interface, error) {
	out := api[:0]
	for _, iface := range api {
		if !supported(iface.Langs, lang) {
			continue
		}
		applyAlias(&iface.Name, iface.Langs, lang)
		members, err := preprocessMembers(iface.Members, lang, iface.Name)
		if err != nil {
			return nil, err
		}
		iface.Members = members
		out = append(out, iface)
	}
	return out, nil
}

func preprocessMembers(members []*Member, lang, where string) ([]*Member, error) {
	out := members[:0]
	for _, m := range members {
		if !supported(m.Langs, lang) {
			continue
		}
		applyAlias(&m.Name, m.Langs, lang)
		if err := applyTypeOverride(m, lang, where+"."+m.Name); err != nil {
			return nil, err
		}
		args, err := preprocessMembers(m.Args, lang, where+"."+m.Name)
		if err != nil {
			return nil, err
		}
		m.Args = args
		if m.Type != nil {
			if err := preprocessType(m.Type, lang, where+"."+m.Name); err != nil {
				return nil, err
			}
		}
		out = append(out, m)
	}
	return out, nil
}

// preprocessType walks a type expression so that union members, template
// arguments and object-literal properties see the same filtering, aliasing
// and overrides as top-level members. Aliases matter here too: a named union
// can be renamed per language, and that name later becomes the enum name.
func preprocessType(t *Type, lang, where string) error {
	applyAlias(&t.Name, t.Langs, lang)
	t.Union = filterTypes(t.Union, lang)
	t.Templates = filterTypes(t.Templates, lang)
	t.Args = filterTypes(t.Args, lang)
	for _, child := range t.Union {
		if err := preprocessType(child, lang, where); err != nil {
			return err
		}
	}
	for _, child := range t.Templates {
		if err := preprocessType(child, lang, where); err != nil {
			return err
		}
	}
	for _, child := range t.Args {
		if err := preprocessType(child, lang, where); err != nil {
			return err
		}
	}
	if t.ReturnType != nil && !supported(t.ReturnType.Langs, lang) {
		t.ReturnType = nil
	}
	if t.ReturnType != nil {
		if err := preprocessType(t.ReturnType, lang, where); err != nil {
			return err
		}
	}
	props, err := preprocessMembers(t.Properties, lang, where)
	if err != nil {
		return err
	}
	t.Properties = props
	return nil
}

func filterTypes(types []*Type, lang string) []*Type {
	out := types[:0]
	for _, t := range types {
		if supported(t.Langs, lang) {
			out = append(out, t)
		}
	}
	return out
}

func supported(langs *Langs, lang string) bool {
	if langs == nil || len(langs.Only) == 0 {
		return true
	}
	for _, l := range langs.Only {
		if l == lang {
			return true
		}
	}
	return false
}

func applyAlias(name *string, langs *Langs, lang string) {
	if langs == nil {
		return
	}
	if alias, ok := langs.Aliases[lang]; ok {
		*name = alias
	}
}

func applyTypeOverride(m *Member, lang, where string) error {
	if m.Langs == nil || m.Langs.Types == nil {
		return nil
	}
	override, ok := m.Langs.Types[lang]
	if !ok {
		return nil
	}
	if override == nil || override.Name == "" && override.Union == nil && override.Templates == nil && override.Properties == nil {
		return fmt.Errorf("malformed type override for %q at %s", lang, where)
	}
	m.Type = override
	return nil
}
