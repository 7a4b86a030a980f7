package java

import (
	"errors"
	"testing"

	"github.com/javabind/javabind/ir"
)

func newTestResolver() (*Registry, *Resolver) {
	reg := NewRegistry()
	return reg, NewResolver(reg, DefaultOverrides())
}

func assertCode(t *testing.T, err error, code ir.ErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var e *ir.Error
	if !errors.As(err, &e) {
		t.Fatalf("error type = %T, want *ir.Error", err)
	}
	if e.Code != code {
		t.Errorf("error code = %s, want %s (%v)", e.Code, code, err)
	}
}

func TestCreateEnum_ValueMapping(t *testing.T) {
	reg := NewRegistry()
	u := ir.UnionOf("ColorScheme", "p",
		ir.Prim(`"light"`, "p"),
		ir.Prim(`"dark"`, "p"),
		ir.Prim(`"no-preference"`, "p"))
	e, err := reg.CreateEnum(u)
	if err != nil {
		t.Fatalf("CreateEnum error: %v", err)
	}
	want := []string{"LIGHT", "DARK", "NO_PREFERENCE"}
	if len(e.Values) != len(want) {
		t.Fatalf("values = %v, want %v", e.Values, want)
	}
	for i := range want {
		if e.Values[i] != want[i] {
			t.Errorf("values[%d] = %q, want %q", i, e.Values[i], want[i])
		}
	}
	if reg.Lookup("ColorScheme") != e {
		t.Error("enum not registered under its name")
	}
}

func TestCreateEnum_IdempotentByName(t *testing.T) {
	reg := NewRegistry()
	first, err := reg.CreateEnum(ir.UnionOf("Media", "p1", ir.Prim(`"screen"`, "p1"), ir.Prim(`"print"`, "p1")))
	if err != nil {
		t.Fatalf("first CreateEnum error: %v", err)
	}
	second, err := reg.CreateEnum(ir.UnionOf("Media", "p2", ir.Prim(`"screen"`, "p2"), ir.Prim(`"print"`, "p2")))
	if err != nil {
		t.Fatalf("second CreateEnum error: %v", err)
	}
	if first != second {
		t.Error("same-named identical enum should return the registered instance")
	}
	if len(reg.Types()) != 1 {
		t.Errorf("registry holds %d types, want 1", len(reg.Types()))
	}
}

func TestCreateEnum_ConflictingValues(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.CreateEnum(ir.UnionOf("Media", "p1", ir.Prim(`"screen"`, "p1"))); err != nil {
		t.Fatalf("first CreateEnum error: %v", err)
	}
	_, err := reg.CreateEnum(ir.UnionOf("Media", "p2", ir.Prim(`"print"`, "p2")))
	assertCode(t, err, ir.CodeDuplicateNominalType)
}

func TestCreateEnum_Unnamed(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.CreateEnum(ir.UnionOf("", "p", ir.Prim(`"a"`, "p")))
	assertCode(t, err, ir.CodeUnnamedUnion)
}

func TestCreateEnum_NullMember(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.CreateEnum(ir.UnionOf("Media", "p", ir.Prim(`"screen"`, "p"), ir.Prim("null", "p")))
	assertCode(t, err, ir.CodeSchemaShape)
}

func TestCreateEnum_DuplicateValue(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.CreateEnum(ir.UnionOf("Media", "p", ir.Prim(`"screen"`, "p"), ir.Prim(`'screen'`, "p")))
	assertCode(t, err, ir.CodeSchemaShape)
}

func TestCreateClass_Fields(t *testing.T) {
	reg, res := newTestResolver()
	obj := ir.ObjectOf("Page.viewportSize",
		ir.Property{Name: "width", Type: ir.Prim("int", "Page.viewportSize.width"), Required: true, Path: "Page.viewportSize.width"},
		ir.Property{Name: "height", Type: ir.Prim("int", "Page.viewportSize.height"), Required: true, Path: "Page.viewportSize.height"},
	)
	owner := Owner{Path: "Page.viewportSize", Kind: OwnerMethod, Name: "viewportSize", Parent: "Page"}
	c, err := reg.CreateClass("ViewportSize", owner, obj, res)
	if err != nil {
		t.Fatalf("CreateClass error: %v", err)
	}
	if len(c.Fields) != 2 {
		t.Fatalf("fields = %d, want 2", len(c.Fields))
	}
	if c.Fields[0].Name != "width" || c.Fields[0].Type.Java() != "int" {
		t.Errorf("first field = %s %s, want int width", c.Fields[0].Type.Java(), c.Fields[0].Name)
	}
	if !c.IsReturnType {
		t.Error("method-owned class should be marked as a return type")
	}
	if reg.Lookup("ViewportSize") != c {
		t.Error("class not registered under its name")
	}
}

func TestCreateClass_StructuralConflict(t *testing.T) {
	reg, res := newTestResolver()
	owner := Owner{Path: "A.position", Kind: OwnerParam, Name: "position", Parent: "a"}
	first := ir.ObjectOf("A.position",
		ir.Property{Name: "x", Type: ir.Prim("int", "A.position.x"), Required: true, Path: "A.position.x"})
	if _, err := reg.CreateClass("Position", owner, first, res); err != nil {
		t.Fatalf("first CreateClass error: %v", err)
	}

	second := ir.ObjectOf("B.position",
		ir.Property{Name: "x", Type: ir.Prim("string", "B.position.x"), Required: true, Path: "B.position.x"})
	_, err := reg.CreateClass("Position", Owner{Path: "B.position", Kind: OwnerParam, Name: "position", Parent: "b"}, second, res)
	assertCode(t, err, ir.CodeDuplicateNominalType)
}

func TestCreateClass_IdenticalDefinitionDeduplicates(t *testing.T) {
	reg, res := newTestResolver()
	mk := func(path string) ir.Expr {
		return ir.ObjectOf(path,
			ir.Property{Name: "x", Type: ir.Prim("int", path+".x"), Required: true, Path: path + ".x"})
	}
	first, err := reg.CreateClass("Position", Owner{Path: "A.position", Kind: OwnerParam, Name: "position", Parent: "a"}, mk("A.position"), res)
	if err != nil {
		t.Fatalf("first CreateClass error: %v", err)
	}
	second, err := reg.CreateClass("Position", Owner{Path: "B.position", Kind: OwnerParam, Name: "position", Parent: "b"}, mk("B.position"), res)
	if err != nil {
		t.Fatalf("second CreateClass error: %v", err)
	}
	if first != second {
		t.Error("structurally identical class should deduplicate to the registered instance")
	}
}

func TestCreateClass_UnwrapsWrappers(t *testing.T) {
	reg, res := newTestResolver()
	obj := ir.ObjectOf("BrowserContext.cookies",
		ir.Property{Name: "name", Type: ir.Prim("string", "BrowserContext.cookies.name"), Required: true, Path: "BrowserContext.cookies.name"})
	wrapped := ir.ArrayOf(obj, "BrowserContext.cookies")
	owner := Owner{Path: "BrowserContext.cookies", Kind: OwnerMethod, Name: "cookies", Parent: "BrowserContext"}
	c, err := reg.CreateClass("Cookie", owner, wrapped, res)
	if err != nil {
		t.Fatalf("CreateClass error: %v", err)
	}
	if len(c.Fields) != 1 || c.Fields[0].Name != "name" {
		t.Errorf("fields = %#v, want the unwrapped object's name field", c.Fields)
	}
}

func TestCreateClass_NonObjectStaysEmpty(t *testing.T) {
	reg, res := newTestResolver()
	owner := Owner{Path: "X.value", Kind: OwnerMethod, Name: "value", Parent: "X"}
	c, err := reg.CreateClass("Value", owner, ir.Prim("string", "X.value"), res)
	if err != nil {
		t.Fatalf("CreateClass error: %v", err)
	}
	if len(c.Fields) != 0 {
		t.Errorf("fields = %d, want 0", len(c.Fields))
	}
}

func TestCreateNested_FirstWriterWins(t *testing.T) {
	_, res := newTestResolver()
	scope := &InterfaceUnit{Name: "Page"}

	first := ir.ObjectOf("Page.click.options",
		ir.Property{Name: "timeout", Type: ir.Prim("float", "Page.click.options.timeout"), Path: "Page.click.options.timeout"})
	owner := Owner{Path: "Page.click.options", Kind: OwnerParam, Name: "options", Parent: "click", Scope: scope}
	c1, err := createNested(scope, "ClickOptions", owner, first, res)
	if err != nil {
		t.Fatalf("first createNested error: %v", err)
	}

	// A later literal under the same derived name is not re-materialized,
	// even when its shape differs.
	second := ir.ObjectOf("Page.click.options",
		ir.Property{Name: "force", Type: ir.Prim("boolean", "Page.click.options.force"), Path: "Page.click.options.force"})
	c2, err := createNested(scope, "ClickOptions", owner, second, res)
	if err != nil {
		t.Fatalf("second createNested error: %v", err)
	}
	if c1 != c2 {
		t.Error("owner-local creation should return the first materialized class")
	}
	if len(scope.Nested) != 1 {
		t.Errorf("scope holds %d nested classes, want 1", len(scope.Nested))
	}
	if len(c2.Fields) != 1 || c2.Fields[0].Name != "timeout" {
		t.Errorf("kept fields = %#v, want the first writer's timeout field", c2.Fields)
	}
}

func TestRegistry_TypesSorted(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		if _, err := reg.CreateEnum(ir.UnionOf(name, "p", ir.Prim(`"v"`, "p"))); err != nil {
			t.Fatalf("CreateEnum(%s) error: %v", name, err)
		}
	}
	types := reg.Types()
	want := []string{"Alpha", "Mid", "Zeta"}
	for i, n := range want {
		if types[i].NominalName() != n {
			t.Errorf("Types()[%d] = %s, want %s", i, types[i].NominalName(), n)
		}
	}
}
