package interp

import "github.com/cwbudde/go-brewin/internal/ast"

// eval is spec.md §4.7's expression evaluator.
func (o *ObjectDef) eval(env *Environment, node ast.Node, firstObj *ObjectDef) (Value, error) {
	switch n := node.(type) {
	case *ast.Atom:
		return o.evalAtom(env, n, firstObj)
	case *ast.List:
		return o.evalList(env, n, firstObj)
	default:
		return Value{}, newError(SyntaxError, node.Line(), "malformed expression")
	}
}

// evalAtom resolves a bare-word leaf in spec.md §4.7's order: a local or
// parameter binding, then an instance field, then the reserved `me`,
// then a literal, and finally a NAME_ERROR.
func (o *ObjectDef) evalAtom(env *Environment, a *ast.Atom, firstObj *ObjectDef) (Value, error) {
	name := a.Tok.Literal

	if val, ok := env.Get(name); ok {
		return val, nil
	}
	if val, ok := o.fields[name]; ok {
		return val, nil
	}

	kw := o.interp.kw
	if name == kw.Me {
		self := o
		if firstObj != nil {
			self = firstObj
		}
		return ObjectValue(self.class.Name, self), nil
	}

	if val, ok := ParseLiteral(kw, name, ""); ok {
		return val, nil
	}

	return Value{}, newError(NameError, a.Tok.Pos.Line, "invalid field or parameter %s", name)
}

// evalList dispatches a parenthesized expression form: a binary or unary
// operator application, a `call`, or a `new`.
func (o *ObjectDef) evalList(env *Environment, list *ast.List, firstObj *ObjectDef) (Value, error) {
	head, ok := list.Head()
	if !ok {
		return Value{}, newError(SyntaxError, list.Line(), "malformed expression")
	}
	kw := o.interp.kw

	switch {
	case isBinaryOp(head):
		return o.evalBinary(env, list, head, firstObj)
	case head == "!":
		return o.evalUnary(env, list, head, firstObj)
	case head == kw.Call:
		return o.evalCall(env, list, firstObj)
	case head == kw.New:
		return o.evalNew(env, list, firstObj)
	default:
		return Value{}, newError(SyntaxError, list.Line(), "unknown expression form %s", head)
	}
}

func (o *ObjectDef) evalBinary(env *Environment, list *ast.List, op string, firstObj *ObjectDef) (Value, error) {
	if list.Len() != 3 {
		return Value{}, newError(SyntaxError, list.Line(), "malformed binary expression")
	}
	v1, err := o.eval(env, list.At(1), firstObj)
	if err != nil {
		return Value{}, err
	}
	v2, err := o.eval(env, list.At(2), firstObj)
	if err != nil {
		return Value{}, err
	}

	// Unify two distinct, already-refined class types by walking one
	// operand's ancestor chain for the other's exact class, trying both
	// directions (spec.md §4.7 — grounded on
	// original_source/interpreterv2.py's asymmetric unification, not a
	// symmetric lowest-common-ancestor search).
	if v1.Type == TypeClass && v2.Type == TypeClass && v1.ClassName != "" && v2.ClassName != "" && v1.ClassName != v2.ClassName {
		ci := o.interp.classes
		switch {
		case ci.isAncestorOrSelf(v1.ClassName, v2.ClassName):
			v1 = Value{Type: TypeClass, ClassName: v2.ClassName, Obj: v1.Obj}
		case ci.isAncestorOrSelf(v2.ClassName, v1.ClassName):
			v2 = Value{Type: TypeClass, ClassName: v1.ClassName, Obj: v2.Obj}
		}
	}

	return applyBinaryOp(list.Line(), op, v1, v2)
}

func (o *ObjectDef) evalUnary(env *Environment, list *ast.List, op string, firstObj *ObjectDef) (Value, error) {
	if list.Len() != 2 {
		return Value{}, newError(SyntaxError, list.Line(), "malformed unary expression")
	}
	v, err := o.eval(env, list.At(1), firstObj)
	if err != nil {
		return Value{}, err
	}
	if v.Type != TypeBool {
		return Value{}, newError(TypeError, list.Line(), "unary %s applied to a non-boolean", op)
	}
	return BoolValue(!v.BoolVal), nil
}

// evalCall implements spec.md §4.7's call expression, used both in
// expression and statement position: the receiver resolves to `me`
// (the dynamic self), `super` (this object's super-object), or an
// arbitrary expression; a null receiver is a FAULT_ERROR.
func (o *ObjectDef) evalCall(env *Environment, list *ast.List, firstObj *ObjectDef) (Value, error) {
	if list.Len() < 3 {
		return Value{}, newError(SyntaxError, list.Line(), "malformed call expression")
	}
	kw := o.interp.kw

	var target *ObjectDef
	if receiverName, ok := atomLiteral(list.At(1)); ok && receiverName == kw.Me {
		target = o
		if firstObj != nil {
			target = firstObj
		}
	} else if ok && receiverName == kw.Super {
		target = o.super
	} else {
		recv, err := o.eval(env, list.At(1), firstObj)
		if err != nil {
			return Value{}, err
		}
		if recv.Type != TypeClass {
			return Value{}, newError(TypeError, list.Line(), "call receiver is not an object reference")
		}
		target = recv.Obj
	}

	if target == nil {
		return Value{}, newError(FaultError, list.Line(), "null dereference on call receiver")
	}

	methodName, ok := atomLiteral(list.At(2))
	if !ok {
		return Value{}, newError(SyntaxError, list.Line(), "malformed call expression")
	}

	var args []Value
	for i := 3; i < list.Len(); i++ {
		v, err := o.eval(env, list.At(i), firstObj)
		if err != nil {
			return Value{}, err
		}
		args = append(args, v)
	}

	return target.CallMethod(methodName, args, list.Line(), firstObj)
}

func (o *ObjectDef) evalNew(env *Environment, list *ast.List, firstObj *ObjectDef) (Value, error) {
	if list.Len() != 2 {
		return Value{}, newError(SyntaxError, list.Line(), "malformed new expression")
	}
	className, ok := atomLiteral(list.At(1))
	if !ok {
		return Value{}, newError(SyntaxError, list.Line(), "malformed new expression")
	}
	obj, err := o.interp.Instantiate(className, list.Line())
	if err != nil {
		return Value{}, err
	}
	return ObjectValue(className, obj), nil
}
