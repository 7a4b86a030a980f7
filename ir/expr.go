// Package ir defines the type-expression representation shared by the
// resolver and the target-language generators. The schema's raw type nodes,
// whose shape is distinguished at runtime by which keys happen to be present,
// are converted into this closed tagged union so that resolution can rely on
// exhaustive case coverage instead of ad hoc key checks.
package ir

// ExprKind identifies the category of a type expression.
type ExprKind int

const (
	KindPrimitive ExprKind = iota // Builtin or named scalar type
	KindArray                     // Ordered collection (Array<T>)
	KindMap                       // Key-value mapping (Map<K,V> or Object<K,V>)
	KindUnion                     // Union of types, possibly named
	KindGeneric                   // Remaining templated forms (Promise<T>, ...)
	KindFunc                      // Function type
	KindObject                    // Anonymous object literal
)

// String returns the string representation of the expression kind.
func (k ExprKind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindArray:
		return "Array"
	case KindMap:
		return "Map"
	case KindUnion:
		return "Union"
	case KindGeneric:
		return "Generic"
	case KindFunc:
		return "Func"
	case KindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// Expr is the base interface for all type expressions.
//
// Expressions are read-only views over the preprocessed schema tree: they are
// built once, carry the dot-joined path of the member that declared them, and
// are never mutated afterwards. Node identity (pointer equality) is the
// resolver's cache key.
type Expr interface {
	// Kind returns the expression kind for type switching.
	Kind() ExprKind

	// Path returns the dot-joined chain of owning interface/method/param/
	// field names. A type node reuses the path of the member it types.
	Path() string

	// Ensure only types in this package implement Expr.
	sealed()
}

type exprBase struct {
	path string
}

func (b exprBase) Path() string { return b.path }
func (exprBase) sealed()        {}

// Primitive is a scalar or otherwise opaque named type: int, float, string,
// boolean, void, null, and target-mapped names such as Buffer, URL, RegExp,
// Readable, Serializable, EvaluationArgument, any, path.
type Primitive struct {
	exprBase
	Name string
}

// Kind returns KindPrimitive.
func (e *Primitive) Kind() ExprKind { return KindPrimitive }

// Array is an ordered collection of Elem values.
type Array struct {
	exprBase
	Elem Expr
}

// Kind returns KindArray.
func (e *Array) Kind() ExprKind { return KindArray }

// MapOf is a key-value mapping. The schema spells maps either as Map<K,V> or
// as Object<K,V>; Spelled preserves the schema keyword because the canonical
// rendering must reproduce it and the Object spelling carries an extra
// key/value restriction in the resolver.
type MapOf struct {
	exprBase
	Key     Expr
	Value   Expr
	Spelled string
}

// Kind returns KindMap.
func (e *MapOf) Kind() ExprKind { return KindMap }

// Union is an ordered sequence of member types. An empty Name marks an
// anonymous union; a member that is the null primitive marks nullability.
type Union struct {
	exprBase
	Name    string
	Members []Expr
}

// Kind returns KindUnion.
func (e *Union) Kind() ExprKind { return KindUnion }

// Generic covers templated forms other than arrays and maps, such as
// Promise<T>.
type Generic struct {
	exprBase
	Name string
	Args []Expr
}

// Kind returns KindGeneric.
func (e *Generic) Kind() ExprKind { return KindGeneric }

// Func is a function type. Return is nil when the function declares no
// return type.
type Func struct {
	exprBase
	Args   []Expr
	Return Expr
}

// Kind returns KindFunc.
func (e *Func) Kind() ExprKind { return KindFunc }

// Object is an anonymous object literal. Object expressions are the only
// ones that materialize into generated classes.
type Object struct {
	exprBase
	Properties []Property
}

// Kind returns KindObject.
func (e *Object) Kind() ExprKind { return KindObject }

// Property is one declared property of an object literal.
type Property struct {
	Name     string
	Type     Expr
	Required bool
	Comment  string

	// Path is the property's own dot path (the literal's path plus the
	// property name), used for override lookups on option fields.
	Path string
}

// IsNull reports whether e is the null primitive.
func IsNull(e Expr) bool {
	p, ok := e.(*Primitive)
	return ok && p.Name == "null"
}

// Convenience constructors, used by tests and by hand-built expressions.

// Prim returns a Primitive expression.
func Prim(name, path string) *Primitive {
	return &Primitive{exprBase: exprBase{path: path}, Name: name}
}

// ArrayOf returns an Array expression.
func ArrayOf(elem Expr, path string) *Array {
	return &Array{exprBase: exprBase{path: path}, Elem: elem}
}

// MapExpr returns a MapOf expression with the given schema spelling.
func MapExpr(spelled string, key, value Expr, path string) *MapOf {
	return &MapOf{exprBase: exprBase{path: path}, Key: key, Value: value, Spelled: spelled}
}

// UnionOf returns a Union expression.
func UnionOf(name string, path string, members ...Expr) *Union {
	return &Union{exprBase: exprBase{path: path}, Name: name, Members: members}
}

// GenericOf returns a Generic expression.
func GenericOf(name string, path string, args ...Expr) *Generic {
	return &Generic{exprBase: exprBase{path: path}, Name: name, Args: args}
}

// FuncOf returns a Func expression.
func FuncOf(path string, ret Expr, args ...Expr) *Func {
	return &Func{exprBase: exprBase{path: path}, Args: args, Return: ret}
}

// ObjectOf returns an Object expression.
func ObjectOf(path string, props ...Property) *Object {
	return &Object{exprBase: exprBase{path: path}, Properties: props}
}
