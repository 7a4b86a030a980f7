// Package java derives Java binding declarations from the language-agnostic
// API schema: it resolves type expressions into target type spellings,
// materializes generated classes and enums, and computes the overload set
// each method needs because Java has no native union types or default
// arguments.
package java

import (
	"strings"
	"unicode"
)

// Java reserved words that cannot be used as identifiers.
var reservedWords = map[string]bool{
	"abstract":     true,
	"assert":       true,
	"boolean":      true,
	"break":        true,
	"byte":         true,
	"case":         true,
	"catch":        true,
	"char":         true,
	"class":        true,
	"const":        true,
	"continue":     true,
	"default":      true,
	"do":           true,
	"double":       true,
	"else":         true,
	"enum":         true,
	"extends":      true,
	"final":        true,
	"finally":      true,
	"float":        true,
	"for":          true,
	"goto":         true,
	"if":           true,
	"implements":   true,
	"import":       true,
	"instanceof":   true,
	"int":          true,
	"interface":    true,
	"long":         true,
	"native":       true,
	"new":          true,
	"package":      true,
	"private":      true,
	"protected":    true,
	"public":       true,
	"return":       true,
	"short":        true,
	"static":       true,
	"strictfp":     true,
	"super":        true,
	"switch":       true,
	"synchronized": true,
	"this":         true,
	"throw":        true,
	"throws":       true,
	"transient":    true,
	"try":          true,
	"void":         true,
	"volatile":     true,
	"while":        true,
}

// escapeReservedWord escapes a reserved word by appending an underscore.
func escapeReservedWord(name string) string {
	if reservedWords[name] {
		return name + "_"
	}
	return name
}

// toTitle upper-cases the first rune of name.
func toTitle(name string) string {
	if name == "" {
		return ""
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// enumValueName converts a union member literal into an enum value
// identifier: surrounding quotes are stripped, hyphens become underscores and
// the result is upper-cased.
func enumValueName(literal string) string {
	v := strings.Trim(literal, `"'`)
	v = strings.ReplaceAll(v, "-", "_")
	return strings.ToUpper(v)
}

// sanitizeIdentifier makes a name valid as a Java identifier.
func sanitizeIdentifier(name string) string {
	if name == "" {
		return "_"
	}

	var b strings.Builder
	if unicode.IsDigit(rune(name[0])) {
		b.WriteRune('_')
	}
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return escapeReservedWord(b.String())
}
