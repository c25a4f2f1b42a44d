package interp

import "github.com/cwbudde/go-brewin/internal/ast"

// Param is one formal parameter of a MethodDef: a resolved declared type
// paired with a name (spec.md §3: "Formals are a sequence of
// (declared_type, name) pairs").
type Param struct {
	Type string
	Name string
}

// MethodDef is spec.md §3's (return_type, name, formal_params, body_tree).
type MethodDef struct {
	ReturnType string
	Name       string
	Params     []Param
	Body       ast.Node
}

// FieldDef is spec.md §3's (declared_type, name, default_value_literal),
// already typechecked against its declared type at class-build time.
type FieldDef struct {
	DeclaredType string
	Name         string
	Default      Value
}

// ClassDef is spec.md §3's (name, superclass_name?, fields[], methods[]).
// SuperclassName is empty when the class has no superclass.
type ClassDef struct {
	Name           string
	SuperclassName string
	Fields         []*FieldDef
	Methods        []*MethodDef
}

// FindMethod returns this class's own method of the given name, or nil —
// it does not walk the superclass chain: per spec.md §4.5, super
// delegation on a missing method is the dispatcher's job, not the class
// definition's.
func (c *ClassDef) FindMethod(name string) *MethodDef {
	for _, m := range c.Methods {
		if m.Name == name {
			return m
		}
	}
	return nil
}

func isPrimitiveTag(t string) bool {
	switch t {
	case "INT", "BOOL", "STRING", "VOID", "NOTHING":
		return true
	}
	return false
}

// resolveType implements spec.md §4.3's resolve_type: a primitive
// keyword resolves to its tag, a known class name or the current class's
// own name resolves to itself, anything else is a fatal TYPE_ERROR.
func (ci *ClassIndex) resolveType(name, selfName string) (string, error) {
	kw := ci.kw
	switch name {
	case kw.Int:
		return "INT", nil
	case kw.Bool:
		return "BOOL", nil
	case kw.String:
		return "STRING", nil
	case kw.Void:
		return "VOID", nil
	case kw.Nothing:
		return "NOTHING", nil
	}
	if _, ok := ci.classes[name]; ok {
		return name, nil
	}
	if name == selfName {
		return name, nil
	}
	return "", newError(TypeError, 0, "invalid type name %s", name)
}

// checkTypeAndValue implements spec.md §4.3's check_type_and_value:
// null-refinement, then class-to-class subtype walking, then exact
// primitive-tag equality. It returns a (possibly retargeted) value
// rather than mutating val in place (spec.md §9's design note).
func (ci *ClassIndex) checkTypeAndValue(expected string, val Value, isParam bool, line int) (Value, error) {
	expectedIsClass := !isPrimitiveTag(expected)

	// 1. Null-refinement: a not-yet-refined null literal takes on the
	// expected class.
	if expectedIsClass && val.Type == TypeClass && val.ClassName == "" {
		return NullValue(expected), nil
	}

	// 2. Class-to-class: walk the actual value's ancestor chain.
	if expectedIsClass && val.Type == TypeClass && val.ClassName != "" {
		if !ci.isAncestorOrSelf(val.ClassName, expected) {
			return Value{}, newError(TypeError, line, "mismatched classes")
		}
		if isParam {
			return Value{Type: TypeClass, ClassName: expected, Obj: val.Obj}, nil
		}
		return val, nil
	}

	// 3. Primitive: exact tag equality.
	if expected != val.Type.String() {
		if isParam {
			return Value{}, newError(NameError, line, "mismatched parameter and value")
		}
		return Value{}, newError(TypeError, line, "mismatched type and value")
	}
	return val, nil
}

// isAncestorOrSelf reports whether target is cls itself or appears
// somewhere in cls's superclass chain. Used both by checkTypeAndValue's
// class-to-class step and by the binary-operator evaluator's class-type
// unification (spec.md §4.7).
func (ci *ClassIndex) isAncestorOrSelf(cls, target string) bool {
	cur := cls
	for {
		if cur == target {
			return true
		}
		cd, ok := ci.classes[cur]
		if !ok || cd.SuperclassName == "" {
			return false
		}
		cur = cd.SuperclassName
	}
}
