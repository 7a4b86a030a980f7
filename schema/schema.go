// Package schema models the parsed API description consumed by the generator.
// The input is a JSON array of interface nodes produced by the upstream API
// tooling; this package only decodes it into typed nodes and applies the
// per-language preprocessing pass. It never interprets type expressions;
// that is the ir and java packages' job.
package schema

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
)

// Interface is a top-level API interface node.
type Interface struct {
	Name    string    `json:"name"`
	Extends string    `json:"extends,omitempty"`
	Comment string    `json:"comment,omitempty"`
	Members []*Member `json:"members"`
	Langs   *Langs    `json:"langs,omitempty"`
}

// Member is a method, property or event declared on an interface, or a
// method argument, or a property of an anonymous object type.
type Member struct {
	Kind          string    `json:"kind,omitempty"`
	Name          string    `json:"name"`
	Comment       string    `json:"comment,omitempty"`
	ReturnComment string    `json:"returnComment,omitempty"`
	Required      bool      `json:"required"`
	Type          *Type     `json:"type"`
	Args          []*Member `json:"args,omitempty"`
	Langs         *Langs    `json:"langs,omitempty"`
}

// Member kinds.
const (
	KindMethod   = "method"
	KindProperty = "property"
	KindEvent    = "event"
)

// Type is a raw type-expression node. Which keys are present determines the
// shape: Union for unions, Templates for templated containers, Args and
// ReturnType for function types, Properties for anonymous object literals.
// The ir package converts these into a closed tagged union.
type Type struct {
	Name       string    `json:"name"`
	Union      []*Type   `json:"union,omitempty"`
	Templates  []*Type   `json:"templates,omitempty"`
	Args       []*Type   `json:"args,omitempty"`
	ReturnType *Type     `json:"returnType,omitempty"`
	Properties []*Member `json:"properties,omitempty"`
	Langs      *Langs    `json:"langs,omitempty"`
}

// Langs carries per-language applicability and overrides for a node.
type Langs struct {
	// Only is an allow-list of language identifiers. Empty means the node
	// applies to every target language.
	Only []string `json:"only,omitempty"`

	// Aliases renames the node for a specific language.
	Aliases map[string]string `json:"aliases,omitempty"`

	// Types replaces the node's declared type for a specific language.
	Types map[string]*Type `json:"types,omitempty"`
}

// Load decodes an API description from r.
func Load(r io.Reader) ([]*Interface, error) {
	var api []*Interface
	dec := json.NewDecoder(r)
	if err := dec.Decode(&api); err != nil {
		return nil, fmt.Errorf("failed to decode api schema: %w", err)
	}
	return api, nil
}

// LoadFile decodes an API description from a file on disk.
func LoadFile(path string) ([]*Interface, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open api schema: %w", err)
	}
	defer f.Close()
	return Load(f)
}
