package java

import (
	"regexp"
	"strings"
)

// Emitter renders assembled declaration units as Java source text. It walks
// the structures the assembler and deriver produced; all shape decisions
// (overload sets, builder methods, field boxing) happen before emission.
type Emitter struct {
	// Package is the Java package for generated interfaces; generated
	// nominal types go to Package + ".options".
	Package string

	// Frontmatter is prepended verbatim to every generated file, before the
	// package declaration. Typically a license or "generated code" header.
	Frontmatter string

	overrides *Overrides
	registry  *Registry
}

// NewEmitter returns an emitter for units assembled against reg.
func NewEmitter(pkg, frontmatter string, overrides *Overrides, reg *Registry) *Emitter {
	return &Emitter{Package: pkg, Frontmatter: frontmatter, overrides: overrides, registry: reg}
}

// EmitInterface renders one interface declaration file.
func (e *Emitter) EmitInterface(u *InterfaceUnit) ([]byte, error) {
	var body []string
	offset := "  "

	for _, ev := range u.Events {
		body = append(body, "")
		e.emitEvent(&body, offset, ev)
	}
	if len(u.Events) > 0 {
		body = append(body, "")
	}
	for _, c := range u.Nested {
		e.emitClass(&body, offset, c, false)
	}
	for _, m := range u.Methods {
		if err := e.emitMethod(&body, offset, m); err != nil {
			return nil, err
		}
	}

	var out []string
	e.emitHeader(&out, e.Package, strings.Join(body, "\n"))
	writeJavadoc(&out, "", formatComment(u.Comment))
	decl := "public interface " + u.Name
	if len(u.Extends) > 0 {
		decl += " extends " + strings.Join(u.Extends, ", ")
	}
	out = append(out, decl+" {")
	out = append(out, body...)
	out = append(out, "}")
	return []byte(strings.Join(out, "\n") + "\n"), nil
}

// EmitNominal renders one global nominal type file in the options package.
func (e *Emitter) EmitNominal(t NominalType) ([]byte, error) {
	var body []string
	switch n := t.(type) {
	case *GeneratedEnum:
		e.emitEnum(&body, n)
	case *GeneratedClass:
		e.emitClass(&body, "", n, true)
	}
	var out []string
	e.emitHeader(&out, e.Package+".options", strings.Join(body, "\n"))
	out = append(out, body...)
	return []byte(strings.Join(out, "\n") + "\n"), nil
}

// emitHeader writes the frontmatter, package declaration and the imports
// the body needs.
func (e *Emitter) emitHeader(out *[]string, pkg, body string) {
	if e.Frontmatter != "" {
		*out = append(*out, e.Frontmatter)
	}
	*out = append(*out, "package "+pkg+";", "")
	for _, imp := range neededImports(body, pkg, e.Package, e.registry) {
		*out = append(*out, "import "+imp+";")
	}
	*out = append(*out, "")
}

func (e *Emitter) emitEvent(out *[]string, offset string, ev *Event) {
	name := toTitle(ev.Name)
	listener := "Consumer<" + ev.Type.Java() + ">"
	writeJavadoc(out, offset, formatComment(ev.Comment))
	*out = append(*out, offset+"void on"+name+"("+listener+" handler);")
	*out = append(*out, offset+"void off"+name+"("+listener+" handler);")
}

func (e *Emitter) emitMethod(out *[]string, offset string, m *Method) error {
	sigs, err := DeriveSignatures(m, e.overrides)
	if err != nil {
		return err
	}
	for _, sig := range sigs {
		if sig.Raw != nil {
			for i, line := range sig.Raw {
				if i == len(sig.Raw)-1 {
					methodJavadoc(out, offset, m, sig.Params)
				}
				*out = append(*out, offset+line)
			}
			continue
		}
		methodJavadoc(out, offset, m, sig.Params)
		decl := sig.Returns + " " + sig.Name + "(" + paramList(sig) + ")"
		if sig.ForwardArgs == nil {
			*out = append(*out, offset+decl+";")
			continue
		}
		ret := "return "
		if sig.Returns == "void" {
			ret = ""
		}
		*out = append(*out, offset+"default "+decl+" {")
		*out = append(*out, offset+"  "+ret+sig.Name+"("+strings.Join(sig.ForwardArgs, ", ")+");")
		*out = append(*out, offset+"}")
	}
	return nil
}

func paramList(sig Signature) string {
	parts := make([]string, 0, len(sig.Params))
	for i, p := range sig.Params {
		parts = append(parts, sig.ParamTypes[i]+" "+sanitizeIdentifier(p.Name))
	}
	return strings.Join(parts, ", ")
}

func (e *Emitter) emitEnum(out *[]string, n *GeneratedEnum) {
	*out = append(*out, "public enum "+n.Name+" {\n  "+strings.Join(n.Values, ",\n  ")+"\n}")
}

// emitClass renders a generated class; top-level classes in the options
// package and classes nested inside other classes are public, classes
// nested directly in an interface body rely on the interface's implicit
// member visibility.
func (e *Emitter) emitClass(out *[]string, offset string, c *GeneratedClass, topLevel bool) {
	access := ""
	if topLevel {
		access = "public "
	}
	*out = append(*out, offset+access+"class "+c.Name+" {")
	bodyOffset := offset + "  "

	for _, f := range c.Fields {
		writeJavadoc(out, bodyOffset, formatComment(f.Comment))
		*out = append(*out, bodyOffset+"public "+FieldType(f)+" "+sanitizeIdentifier(f.Name)+";")
	}
	*out = append(*out, "")
	if !c.IsReturnType {
		e.emitConstructor(out, bodyOffset, c)
		e.emitBuilders(out, bodyOffset, c)
	}
	*out = append(*out, offset+"}")
}

func (e *Emitter) emitConstructor(out *[]string, offset string, c *GeneratedClass) {
	req := c.RequiredFields()
	if len(req) == 0 {
		return
	}
	args := make([]string, 0, len(req))
	for _, f := range req {
		args = append(args, f.Type.Java()+" "+sanitizeIdentifier(f.Name))
	}
	*out = append(*out, offset+"public "+c.Name+"("+strings.Join(args, ", ")+") {")
	for _, f := range req {
		name := sanitizeIdentifier(f.Name)
		*out = append(*out, offset+"  this."+name+" = "+name+";")
	}
	*out = append(*out, offset+"}")
}

func (e *Emitter) emitBuilders(out *[]string, offset string, c *GeneratedClass) {
	for _, f := range c.Fields {
		if f.Required {
			continue
		}
		for _, b := range DeriveBuilders(f, e.registry) {
			e.emitBuilder(out, offset, c, b)
		}
	}
}

func (e *Emitter) emitBuilder(out *[]string, offset string, c *GeneratedClass, b Builder) {
	f := b.Field
	name := sanitizeIdentifier(f.Name)
	method := "with" + toTitle(f.Name)

	if b.Construct != nil {
		params := make([]string, 0, len(b.Construct))
		args := make([]string, 0, len(b.Construct))
		for _, rf := range b.Construct {
			params = append(params, rf.Type.Java()+" "+sanitizeIdentifier(rf.Name))
			args = append(args, sanitizeIdentifier(rf.Name))
		}
		*out = append(*out, offset+"public "+c.Name+" "+method+"("+strings.Join(params, ", ")+") {")
		*out = append(*out, offset+"  return "+method+"(new "+f.Type.Java()+"("+strings.Join(args, ", ")+"));")
		*out = append(*out, offset+"}")
		return
	}

	*out = append(*out, offset+"public "+c.Name+" "+method+"("+b.ParamType+" "+name+") {")
	rvalue := name
	if f.Type.Nullable() {
		rvalue = "Optional.ofNullable(" + name + ")"
	}
	*out = append(*out, offset+"  this."+name+" = "+rvalue+";")
	*out = append(*out, offset+"  return this;")
	*out = append(*out, offset+"}")
}

// Import detection over the rendered body. Scanning the output text keeps
// the import list in lockstep with what actually got emitted, without
// threading usage flags through every derivation.
var importMarkers = []struct {
	re  *regexp.Regexp
	imp string
}{
	{regexp.MustCompile(`\bPath\b`), "java.nio.file.Path"},
	{regexp.MustCompile(`\bConsumer<`), "java.util.function.Consumer"},
	{regexp.MustCompile(`\bPredicate<`), "java.util.function.Predicate"},
	{regexp.MustCompile(`\bPattern\b`), "java.util.regex.Pattern"},
	{regexp.MustCompile(`\bInputStream\b`), "java.io.InputStream"},
}

func neededImports(body, pkg, basePkg string, reg *Registry) []string {
	imports := []string{"java.util.*"}
	for _, m := range importMarkers {
		if m.re.MatchString(body) {
			imports = append(imports, m.imp)
		}
	}
	// Interface files reference option types by simple name; one wildcard
	// import covers them.
	if pkg == basePkg && reg != nil {
		for _, t := range reg.Types() {
			if regexp.MustCompile(`\b` + regexp.QuoteMeta(t.NominalName()) + `\b`).MatchString(body) {
				imports = append(imports, basePkg+".options.*")
				break
			}
		}
	}
	return imports
}
