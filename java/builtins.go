package java

// builtins maps schema primitive names to their Java spelling. Names absent
// from the table pass through unchanged; that covers references to other
// generated interfaces (ElementHandle, Frame, ...) which are already spelled
// the way Java wants them.
var builtins = map[string]string{
	"int":                "int",
	"float":              "double",
	"boolean":            "boolean",
	"string":             "String",
	"void":               "void",
	"path":               "Path",
	"EvaluationArgument": "Object",
	"Serializable":       "Object",
	"any":                "Object",
	"Readable":           "InputStream",
	"Buffer":             "byte[]",
	"URL":                "String",
	"RegExp":             "Pattern",
}
