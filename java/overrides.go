package java

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TypeMapping is one entry of the explicit type-override table. From must
// match the canonical structural rendering of the type expression at the
// keyed path exactly; To is the hand-authored replacement type name, assumed
// to pre-exist in the target surface.
type TypeMapping struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Overrides is the static configuration consumed by resolution and overload
// derivation. It ships with built-in defaults and can be extended from a
// YAML file; none of it is derived from the schema.
type Overrides struct {
	// CustomTypeNames renames generated classes for a few well-known
	// property names, to avoid redundant singular/plural class names
	// (a "cookies" parameter produces a Cookie class, not a Cookies class).
	CustomTypeNames map[string]string `yaml:"customTypeNames"`

	// Types replaces the structurally-derived type at a node path with a
	// hand-authored one, after checking the source text matches.
	Types map[string]TypeMapping `yaml:"types"`

	// Signatures replaces a method's whole derived overload set with a fixed
	// ordered list of complete Java signatures, keyed by method path. An
	// empty list suppresses the method entirely.
	Signatures map[string][]string `yaml:"signatures"`

	// BaseInterfaces is the allow-list of supertypes an interface may
	// declare; an extends clause naming anything else is dropped.
	BaseInterfaces []string `yaml:"baseInterfaces"`

	// CloseableInterfaces lists interfaces that must additionally implement
	// AutoCloseable.
	CloseableInterfaces []string `yaml:"closeableInterfaces"`
}

// DefaultOverrides returns the built-in override tables.
func DefaultOverrides() *Overrides {
	return &Overrides{
		CustomTypeNames: map[string]string{
			"cookies": "Cookie",
			"files":   "FilePayload",
			"values":  "SelectOption",
		},
		Types: map[string]TypeMapping{},
		Signatures: map[string][]string{
			"Page.setViewportSize": {
				"void setViewportSize(int width, int height);",
			},
			"BrowserContext.cookies": {
				"default List<Cookie> cookies() { return cookies((List<String>) null); }",
				"default List<Cookie> cookies(String url) { return cookies(Arrays.asList(url)); }",
				"List<Cookie> cookies(List<String> urls);",
			},
			"BrowserContext.addCookies": {
				"void addCookies(List<Cookie> cookies);",
			},
		},
		BaseInterfaces:      []string{"Browser", "JSHandle", "BrowserContext"},
		CloseableInterfaces: []string{"Playwright", "Browser", "BrowserContext", "Page"},
	}
}

// MergeFile overlays override tables read from a YAML file on top of o.
// Map entries replace same-keyed entries; list values replace the lists
// wholesale when non-empty.
func (o *Overrides) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read overrides file: %w", err)
	}
	var extra Overrides
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return fmt.Errorf("failed to parse overrides file %s: %w", path, err)
	}
	for k, v := range extra.CustomTypeNames {
		o.CustomTypeNames[k] = v
	}
	for k, v := range extra.Types {
		o.Types[k] = v
	}
	for k, v := range extra.Signatures {
		o.Signatures[k] = v
	}
	if len(extra.BaseInterfaces) > 0 {
		o.BaseInterfaces = extra.BaseInterfaces
	}
	if len(extra.CloseableInterfaces) > 0 {
		o.CloseableInterfaces = extra.CloseableInterfaces
	}
	return nil
}

func (o *Overrides) isBaseInterface(name string) bool {
	for _, b := range o.BaseInterfaces {
		if b == name {
			return true
		}
	}
	return false
}

func (o *Overrides) isCloseable(name string) bool {
	for _, c := range o.CloseableInterfaces {
		if c == name {
			return true
		}
	}
	return false
}
