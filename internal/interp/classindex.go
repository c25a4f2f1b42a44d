package interp

import "github.com/cwbudde/go-brewin/internal/ast"

// ClassIndex is the program-scoped class-name -> ClassDef mapping of
// spec.md §3/§4.4, built once before execution and immutable thereafter
// (spec.md §5).
type ClassIndex struct {
	classes map[string]*ClassDef
	kw      *Keywords
}

// Lookup returns the ClassDef for name, or ok=false if it is undefined.
func (ci *ClassIndex) Lookup(name string) (*ClassDef, bool) {
	cd, ok := ci.classes[name]
	return cd, ok
}

// Names returns every class name the index defines, in no particular
// order — callers that want a stable listing (e.g. the `classes` CLI
// subcommand) sort the result themselves.
func (ci *ClassIndex) Names() []string {
	names := make([]string, 0, len(ci.classes))
	for name := range ci.classes {
		names = append(names, name)
	}
	return names
}

// BuildClassIndex builds the class index from a parsed program tree in
// two passes, so forward references between classes resolve regardless
// of declaration order (spec.md §4.4): pass 1 registers every class name
// and rejects duplicates; pass 2 constructs each ClassDef, which
// validates its own fields and methods.
func BuildClassIndex(program ast.Node, kw *Keywords) (*ClassIndex, error) {
	ci := &ClassIndex{classes: map[string]*ClassDef{}, kw: kw}

	top, ok := program.(*ast.List)
	if !ok {
		return nil, newError(SyntaxError, program.Line(), "program is not a sequence of forms")
	}

	var classForms []*ast.List
	for _, item := range top.Items {
		form, ok := item.(*ast.List)
		if !ok {
			continue
		}
		head, ok := form.Head()
		if !ok || head != kw.Class {
			continue
		}
		name, ok := classNameOf(form)
		if !ok {
			return nil, newError(SyntaxError, form.Line(), "malformed class definition")
		}
		if _, dup := ci.classes[name]; dup {
			return nil, newError(TypeError, form.Line(), "duplicate class name %s", name)
		}
		ci.classes[name] = nil
		classForms = append(classForms, form)
	}

	for _, form := range classForms {
		name, _ := classNameOf(form)
		cd, err := ci.buildClassDef(form)
		if err != nil {
			return nil, err
		}
		ci.classes[name] = cd
	}

	return ci, nil
}

func classNameOf(form *ast.List) (string, bool) {
	if form.Len() < 2 {
		return "", false
	}
	return atomLiteral(form.At(1))
}

func atomLiteral(n ast.Node) (string, bool) {
	a, ok := n.(*ast.Atom)
	if !ok {
		return "", false
	}
	return a.Tok.Literal, true
}

// buildClassDef parses (class Name [inherits Super] member...) into a
// ClassDef, validating that no field or method name repeats (spec.md §3).
func (ci *ClassIndex) buildClassDef(form *ast.List) (*ClassDef, error) {
	name, _ := classNameOf(form)
	cd := &ClassDef{Name: name}

	bodyStart := 2
	if form.Len() > 2 {
		if head, ok := atomLiteral(form.At(2)); ok && head == ci.kw.Inherits {
			super, ok := atomLiteral(form.At(3))
			if !ok {
				return nil, newError(SyntaxError, form.Line(), "malformed inherits clause in class %s", name)
			}
			cd.SuperclassName = super
			bodyStart = 4
		}
	}

	seenFields := map[string]bool{}
	seenMethods := map[string]bool{}

	for i := bodyStart; i < form.Len(); i++ {
		member, ok := form.At(i).(*ast.List)
		if !ok {
			continue
		}
		head, ok := member.Head()
		if !ok {
			continue
		}
		switch head {
		case ci.kw.Field:
			fd, err := ci.buildFieldDef(cd, member)
			if err != nil {
				return nil, err
			}
			if seenFields[fd.Name] {
				return nil, newError(NameError, member.Line(), "duplicate field %s", fd.Name)
			}
			seenFields[fd.Name] = true
			cd.Fields = append(cd.Fields, fd)
		case ci.kw.Method:
			md, err := ci.buildMethodDef(cd, member)
			if err != nil {
				return nil, err
			}
			if seenMethods[md.Name] {
				return nil, newError(NameError, member.Line(), "duplicate method %s", md.Name)
			}
			seenMethods[md.Name] = true
			cd.Methods = append(cd.Methods, md)
		}
	}

	return cd, nil
}

// (field type name default)
func (ci *ClassIndex) buildFieldDef(owner *ClassDef, member *ast.List) (*FieldDef, error) {
	if member.Len() != 4 {
		return nil, newError(SyntaxError, member.Line(), "malformed field definition")
	}
	typeName, _ := atomLiteral(member.At(1))
	fieldName, _ := atomLiteral(member.At(2))
	literal, _ := atomLiteral(member.At(3))

	declared, err := ci.resolveType(typeName, owner.Name)
	if err != nil {
		return nil, err
	}

	val, ok := ParseLiteral(ci.kw, literal, declared)
	if !ok {
		return nil, newError(SyntaxError, member.Line(), "invalid default value for field %s", fieldName)
	}
	val, err = ci.checkTypeAndValue(declared, val, false, member.Line())
	if err != nil {
		return nil, err
	}

	return &FieldDef{DeclaredType: declared, Name: fieldName, Default: val}, nil
}

// (method return_type name (formals...) body)
func (ci *ClassIndex) buildMethodDef(owner *ClassDef, member *ast.List) (*MethodDef, error) {
	if member.Len() != 5 {
		return nil, newError(SyntaxError, member.Line(), "malformed method definition")
	}
	retTypeName, _ := atomLiteral(member.At(1))
	methodName, _ := atomLiteral(member.At(2))
	formalsNode, ok := member.At(3).(*ast.List)
	if !ok {
		return nil, newError(SyntaxError, member.Line(), "malformed formal parameter list in method %s", methodName)
	}

	retType, err := ci.resolveType(retTypeName, owner.Name)
	if err != nil {
		return nil, err
	}

	var params []Param
	seen := map[string]bool{}
	for _, item := range formalsNode.Items {
		pair, ok := item.(*ast.List)
		if !ok || pair.Len() != 2 {
			return nil, newError(SyntaxError, member.Line(), "malformed formal parameter in method %s", methodName)
		}
		pTypeName, _ := atomLiteral(pair.At(0))
		pName, _ := atomLiteral(pair.At(1))
		pType, err := ci.resolveType(pTypeName, owner.Name)
		if err != nil {
			return nil, err
		}
		if seen[pName] {
			return nil, newError(NameError, member.Line(), "duplicate formal param %s", pName)
		}
		seen[pName] = true
		params = append(params, Param{Type: pType, Name: pName})
	}

	return &MethodDef{
		ReturnType: retType,
		Name:       methodName,
		Params:     params,
		Body:       member.At(4),
	}, nil
}
