// Package javabind generates strongly-typed Java binding sources from a
// language-agnostic API description. The schema package decodes and
// preprocesses the description, the java package resolves type expressions
// into binding shapes, and the sink package receives the rendered files.
package javabind

import (
	"context"
	"fmt"

	"github.com/javabind/javabind/java"
	"github.com/javabind/javabind/schema"
	"github.com/javabind/javabind/sink"
)

// Config holds the configuration for one generation run.
type Config struct {
	// Lang is the target-language identifier matched against the schema's
	// langs declarations. Default: "java".
	Lang string

	// Package is the Java package for generated interfaces; generated
	// option types go to Package + ".options". Default: "com.example.api".
	Package string

	// OverridesFile optionally extends the built-in override tables from a
	// YAML file.
	OverridesFile string

	// Frontmatter is prepended to every generated file, before the package
	// declaration.
	Frontmatter string
}

// GenerateResult reports what a run produced.
type GenerateResult struct {
	// Interfaces is the number of interface declaration units emitted.
	Interfaces int

	// Types is the number of global nominal types emitted.
	Types int

	// Files lists the written paths, relative to the sink root.
	Files []string
}

// Generate runs the whole pipeline over an already-loaded schema: preprocess
// for the target language, assemble every interface against one shared
// nominal-type registry, then emit every declaration unit into out.
//
// Any resolution inconsistency aborts the run before the first file is
// written; there is no partial output mode.
func Generate(ctx context.Context, api []*schema.Interface, cfg *Config, out sink.OutputSink) (*GenerateResult, error) {
	cfg = applyConfigDefaults(cfg)

	overrides := java.DefaultOverrides()
	if cfg.OverridesFile != "" {
		if err := overrides.MergeFile(cfg.OverridesFile); err != nil {
			return nil, err
		}
	}

	api, err := schema.Preprocess(api, cfg.Lang)
	if err != nil {
		return nil, fmt.Errorf("failed to preprocess schema: %w", err)
	}

	asm := java.NewAssembler(overrides)
	units := make([]*java.InterfaceUnit, 0, len(api))
	for _, iface := range api {
		unit, err := asm.Assemble(iface)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}

	em := java.NewEmitter(cfg.Package, cfg.Frontmatter, overrides, asm.Registry())
	result := &GenerateResult{Interfaces: len(units)}

	for _, u := range units {
		content, err := em.EmitInterface(u)
		if err != nil {
			return nil, err
		}
		path := u.Name + ".java"
		if err := out.WriteFile(ctx, path, content); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, path)
	}
	for _, t := range asm.Registry().Types() {
		content, err := em.EmitNominal(t)
		if err != nil {
			return nil, err
		}
		path := "options/" + t.NominalName() + ".java"
		if err := out.WriteFile(ctx, path, content); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, path)
		result.Types++
	}
	return result, nil
}

// applyConfigDefaults returns a copy of cfg with defaults applied.
func applyConfigDefaults(cfg *Config) *Config {
	result := *cfg
	if result.Lang == "" {
		result.Lang = "java"
	}
	if result.Package == "" {
		result.Package = "com.example.api"
	}
	return &result
}
