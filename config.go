package javabind

import (
	"context"
	"fmt"

	"github.com/javabind/javabind/schema"
	"github.com/javabind/javabind/sink"
)

// Generator provides a fluent API for binding generation.
// Create with FromFile() or FromSchema() and configure with method chaining.
//
// Example:
//
//	javabind.FromFile("api.json").
//	    WithPackage("com.microsoft.playwright").
//	    ToDir("./src/main/java/com/microsoft/playwright")
type Generator struct {
	api []*schema.Interface
	err error
	cfg Config
}

// FromFile creates a Generator that reads the API description from a JSON
// file. Load errors surface from the terminal operation.
func FromFile(path string) *Generator {
	api, err := schema.LoadFile(path)
	if err != nil {
		return &Generator{err: fmt.Errorf("failed to load schema %s: %w", path, err)}
	}
	return &Generator{api: api}
}

// FromSchema creates a Generator for an already-decoded API description.
func FromSchema(api []*schema.Interface) *Generator {
	return &Generator{api: api}
}

// WithLang sets the target-language identifier matched against the schema's
// langs declarations. Defaults to "java".
func (g *Generator) WithLang(lang string) *Generator {
	g.cfg.Lang = lang
	return g
}

// WithPackage sets the Java package for generated interfaces. Generated
// option types go to the ".options" subpackage.
func (g *Generator) WithPackage(pkg string) *Generator {
	g.cfg.Package = pkg
	return g
}

// WithOverridesFile extends the built-in override tables from a YAML file.
func (g *Generator) WithOverridesFile(path string) *Generator {
	g.cfg.OverridesFile = path
	return g
}

// WithFrontmatter adds content to the top of every generated file, before
// the package declaration.
func (g *Generator) WithFrontmatter(content string) *Generator {
	g.cfg.Frontmatter = content
	return g
}

// ToDir generates files under the specified directory.
// This is a terminal operation that writes files to disk.
func (g *Generator) ToDir(dir string) (*GenerateResult, error) {
	return g.To(context.Background(), sink.NewFilesystemSink(dir))
}

// To generates files into the given sink. This is a terminal operation.
func (g *Generator) To(ctx context.Context, out sink.OutputSink) (*GenerateResult, error) {
	if g.err != nil {
		return nil, g.err
	}
	return Generate(ctx, g.api, &g.cfg, out)
}
