package java

import (
	"strings"
	"testing"

	"github.com/javabind/javabind/ir"
)

func TestEmitInterface_Minimal(t *testing.T) {
	reg, res := newTestResolver()
	m := &Method{
		Name:    "close",
		Path:    "Frame.close",
		Returns: voidReturn(t, res, "Frame.close"),
	}
	unit := &InterfaceUnit{Name: "Frame", Methods: []*Method{m}}

	e := NewEmitter("com.example.api", "", DefaultOverrides(), reg)
	out, err := e.EmitInterface(unit)
	if err != nil {
		t.Fatalf("EmitInterface error: %v", err)
	}
	src := string(out)
	for _, want := range []string{
		"package com.example.api;",
		"import java.util.*;",
		"public interface Frame {",
		"  void close();",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("output missing %q:\n%s", want, src)
		}
	}
}

func TestEmitInterface_Extends(t *testing.T) {
	reg, _ := newTestResolver()
	unit := &InterfaceUnit{Name: "Page", Extends: []string{"Frame", "AutoCloseable"}}
	e := NewEmitter("com.example.api", "", DefaultOverrides(), reg)
	out, err := e.EmitInterface(unit)
	if err != nil {
		t.Fatalf("EmitInterface error: %v", err)
	}
	if !strings.Contains(string(out), "public interface Page extends Frame, AutoCloseable {") {
		t.Errorf("missing extends clause:\n%s", out)
	}
}

func TestEmitInterface_DefaultOverloads(t *testing.T) {
	reg, res := newTestResolver()
	m := &Method{
		Name:    "reload",
		Path:    "Page.reload",
		Returns: voidReturn(t, res, "Page.reload"),
		Params: []*Param{{
			Name:     "timeout",
			Optional: true,
			Type:     resolveParam(t, res, ir.Prim("int", "Page.reload.timeout"), "Page.reload.timeout", "timeout", "reload"),
		}},
	}
	unit := &InterfaceUnit{Name: "Page", Methods: []*Method{m}}
	e := NewEmitter("com.example.api", "", DefaultOverrides(), reg)
	out, err := e.EmitInterface(unit)
	if err != nil {
		t.Fatalf("EmitInterface error: %v", err)
	}
	src := string(out)
	for _, want := range []string{
		"  default void reload() {",
		"    reload(0);",
		"  void reload(int timeout);",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("output missing %q:\n%s", want, src)
		}
	}
}

func TestEmitInterface_Events(t *testing.T) {
	reg, res := newTestResolver()
	ev := &Event{
		Name: "request",
		Type: mustResolve(t, res, ir.Prim("Request", "Page.request"), Owner{Path: "Page.request", Kind: OwnerEvent, Name: "request", Parent: "Page"}),
	}
	unit := &InterfaceUnit{Name: "Page", Events: []*Event{ev}}
	e := NewEmitter("com.example.api", "", DefaultOverrides(), reg)
	out, err := e.EmitInterface(unit)
	if err != nil {
		t.Fatalf("EmitInterface error: %v", err)
	}
	src := string(out)
	for _, want := range []string{
		"  void onRequest(Consumer<Request> handler);",
		"  void offRequest(Consumer<Request> handler);",
		"import java.util.function.Consumer;",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("output missing %q:\n%s", want, src)
		}
	}
}

func TestEmitInterface_ImportDetection(t *testing.T) {
	reg, res := newTestResolver()
	m := &Method{
		Name:    "addScript",
		Path:    "Page.addScript",
		Returns: voidReturn(t, res, "Page.addScript"),
		Params: []*Param{{
			Name: "script",
			Type: resolveParam(t, res, ir.Prim("path", "Page.addScript.script"), "Page.addScript.script", "script", "addScript"),
		}},
	}
	unit := &InterfaceUnit{Name: "Page", Methods: []*Method{m}}
	e := NewEmitter("com.example.api", "", DefaultOverrides(), reg)
	out, err := e.EmitInterface(unit)
	if err != nil {
		t.Fatalf("EmitInterface error: %v", err)
	}
	if !strings.Contains(string(out), "import java.nio.file.Path;") {
		t.Errorf("missing Path import:\n%s", out)
	}
}

func TestEmitInterface_Frontmatter(t *testing.T) {
	reg, _ := newTestResolver()
	e := NewEmitter("com.example.api", "/* generated */", DefaultOverrides(), reg)
	out, err := e.EmitInterface(&InterfaceUnit{Name: "Page"})
	if err != nil {
		t.Fatalf("EmitInterface error: %v", err)
	}
	if !strings.HasPrefix(string(out), "/* generated */\npackage com.example.api;") {
		t.Errorf("frontmatter not first:\n%s", out)
	}
}

func TestEmitNominal_Enum(t *testing.T) {
	reg, _ := newTestResolver()
	e := NewEmitter("com.example.api", "", DefaultOverrides(), reg)
	out, err := e.EmitNominal(&GeneratedEnum{Name: "Media", Values: []string{"SCREEN", "PRINT"}})
	if err != nil {
		t.Fatalf("EmitNominal error: %v", err)
	}
	src := string(out)
	for _, want := range []string{
		"package com.example.api.options;",
		"public enum Media {",
		"  SCREEN,",
		"  PRINT",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("output missing %q:\n%s", want, src)
		}
	}
}

func TestEmitNominal_ClassWithBuilders(t *testing.T) {
	reg, res := newTestResolver()
	obj := ir.ObjectOf("Page.screenshot.options",
		ir.Property{Name: "path", Type: ir.Prim("path", "Page.screenshot.options.path"), Path: "Page.screenshot.options.path"},
		ir.Property{Name: "quality", Type: ir.Prim("int", "Page.screenshot.options.quality"), Path: "Page.screenshot.options.quality"},
	)
	owner := Owner{Path: "Page.screenshot.options", Kind: OwnerParam, Name: "screenshotOptions", Parent: "screenshot"}
	c, err := reg.CreateClass("ScreenshotOptions", owner, obj, res)
	if err != nil {
		t.Fatalf("CreateClass error: %v", err)
	}

	e := NewEmitter("com.example.api", "", DefaultOverrides(), reg)
	out, err := e.EmitNominal(c)
	if err != nil {
		t.Fatalf("EmitNominal error: %v", err)
	}
	src := string(out)
	for _, want := range []string{
		"public class ScreenshotOptions {",
		"  public Path path;",
		"  public Integer quality;",
		"  public ScreenshotOptions withPath(Path path) {",
		"    this.path = path;",
		"    return this;",
		"  public ScreenshotOptions withQuality(int quality) {",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("output missing %q:\n%s", want, src)
		}
	}
}

func TestEmitNominal_ReturnTypeClassHasNoBuilders(t *testing.T) {
	reg, res := newTestResolver()
	obj := ir.ObjectOf("Page.viewportSize",
		ir.Property{Name: "width", Type: ir.Prim("int", "Page.viewportSize.width"), Required: true, Path: "Page.viewportSize.width"})
	owner := Owner{Path: "Page.viewportSize", Kind: OwnerMethod, Name: "viewportSize", Parent: "Page"}
	c, err := reg.CreateClass("ViewportSize", owner, obj, res)
	if err != nil {
		t.Fatalf("CreateClass error: %v", err)
	}

	e := NewEmitter("com.example.api", "", DefaultOverrides(), reg)
	out, err := e.EmitNominal(c)
	if err != nil {
		t.Fatalf("EmitNominal error: %v", err)
	}
	src := string(out)
	if strings.Contains(src, "withWidth") {
		t.Errorf("return-type class should have no builder methods:\n%s", src)
	}
	if strings.Contains(src, "public ViewportSize(") {
		t.Errorf("return-type class should have no constructor:\n%s", src)
	}
}

func TestEmitNominal_RequiredFieldConstructor(t *testing.T) {
	reg, res := newTestResolver()
	obj := ir.ObjectOf("A.geo",
		ir.Property{Name: "latitude", Type: ir.Prim("float", "A.geo.latitude"), Required: true, Path: "A.geo.latitude"},
		ir.Property{Name: "longitude", Type: ir.Prim("float", "A.geo.longitude"), Required: true, Path: "A.geo.longitude"},
	)
	owner := Owner{Path: "A.geo", Kind: OwnerParam, Name: "geo", Parent: "a"}
	c, err := reg.CreateClass("Geolocation", owner, obj, res)
	if err != nil {
		t.Fatalf("CreateClass error: %v", err)
	}

	e := NewEmitter("com.example.api", "", DefaultOverrides(), reg)
	out, err := e.EmitNominal(c)
	if err != nil {
		t.Fatalf("EmitNominal error: %v", err)
	}
	src := string(out)
	for _, want := range []string{
		"public Geolocation(double latitude, double longitude) {",
		"  this.latitude = latitude;",
		"  this.longitude = longitude;",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("output missing %q:\n%s", want, src)
		}
	}
}

func TestWriteJavadoc(t *testing.T) {
	var out []string
	writeJavadoc(&out, "  ", "Returns the page's `title`.")
	src := strings.Join(out, "\n")
	for _, want := range []string{
		"  /**",
		"   * Returns the page's {@code title}.",
		"   */",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("javadoc missing %q:\n%s", want, src)
		}
	}
}

func TestFormatComment_StripsCodeFences(t *testing.T) {
	in := "Clicks an element.\n```java\npage.click(\"a\");\n```\nMore text."
	got := formatComment(in)
	if strings.Contains(got, "```") {
		t.Errorf("code fence survived: %q", got)
	}
	if !strings.Contains(got, "Clicks an element.") || !strings.Contains(got, "More text.") {
		t.Errorf("surrounding text lost: %q", got)
	}
}

func TestSanitizeIdentifier(t *testing.T) {
	tests := []struct{ in, want string }{
		{"default", "default_"},
		{"new", "new_"},
		{"timeout", "timeout"},
		{"2fa", "_2fa"},
		{"no-wait", "no_wait"},
		{"", "_"},
	}
	for _, tt := range tests {
		if got := sanitizeIdentifier(tt.in); got != tt.want {
			t.Errorf("sanitizeIdentifier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEnumValueName(t *testing.T) {
	tests := []struct{ in, want string }{
		{`"screen"`, "SCREEN"},
		{`"no-preference"`, "NO_PREFERENCE"},
		{`'print'`, "PRINT"},
	}
	for _, tt := range tests {
		if got := enumValueName(tt.in); got != tt.want {
			t.Errorf("enumValueName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
