package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/go-brewin/internal/ast"
)

// exec is spec.md §4.6's statement executor: every statement form
// returns (PROCEED, _, nil) or (RETURN, value, nil), or propagates the
// first error raised anywhere beneath it (spec.md §5, §2.3 of
// SPEC_FULL.md — no catch point anywhere in this package). o is the
// object whose fields are in scope; firstObj is the dynamic self used by
// nested `me` and `call` expressions (spec.md §4.5).
func (o *ObjectDef) exec(env *Environment, node ast.Node, firstObj *ObjectDef) (execStatus, Value, error) {
	list, ok := node.(*ast.List)
	if !ok {
		return statusProceed, Value{}, newError(SyntaxError, node.Line(), "expected a statement form")
	}
	head, ok := list.Head()
	if !ok {
		return statusProceed, Value{}, newError(SyntaxError, node.Line(), "expected a statement form")
	}

	if o.interp.trace != nil {
		fmt.Fprintf(o.interp.trace, "%d: %s\n", node.Line(), node.String())
	}

	kw := o.interp.kw
	switch head {
	case kw.Begin:
		return o.execBegin(env, list, firstObj)
	case kw.Let:
		return o.execLet(env, list, firstObj)
	case kw.Set:
		return o.execSet(env, list, firstObj)
	case kw.If:
		return o.execIf(env, list, firstObj)
	case kw.While:
		return o.execWhile(env, list, firstObj)
	case kw.Return:
		return o.execReturn(env, list, firstObj)
	case kw.Call:
		return o.execCall(env, list, firstObj)
	case kw.Print:
		return o.execPrint(env, list, firstObj)
	case kw.InputS:
		return o.execInput(env, list, firstObj, true)
	case kw.InputI:
		return o.execInput(env, list, firstObj, false)
	default:
		return statusProceed, Value{}, newError(SyntaxError, node.Line(), "unknown statement %s", head)
	}
}

func (o *ObjectDef) execBegin(env *Environment, list *ast.List, firstObj *ObjectDef) (execStatus, Value, error) {
	for i := 1; i < list.Len(); i++ {
		status, val, err := o.exec(env, list.At(i), firstObj)
		if err != nil {
			return statusProceed, Value{}, err
		}
		if status == statusReturn {
			return status, val, nil
		}
	}
	return statusProceed, Value{}, nil
}

// execLet implements spec.md §4.6's `let`: a ((type name literal) ...)
// binding list pushes exactly one new frame, in effect for the
// remainder of the let body only.
func (o *ObjectDef) execLet(env *Environment, list *ast.List, firstObj *ObjectDef) (execStatus, Value, error) {
	bindings, ok := list.At(1).(*ast.List)
	if !ok {
		return statusProceed, Value{}, newError(SyntaxError, list.Line(), "malformed let bindings")
	}

	env.Push()
	defer env.Pop()

	seen := map[string]bool{}
	for _, b := range bindings.Items {
		triple, ok := b.(*ast.List)
		if !ok || triple.Len() != 3 {
			return statusProceed, Value{}, newError(SyntaxError, list.Line(), "malformed let binding")
		}
		typeName, _ := atomLiteral(triple.At(0))
		name, _ := atomLiteral(triple.At(1))
		literal, _ := atomLiteral(triple.At(2))

		declared, err := o.interp.classes.resolveType(typeName, o.class.Name)
		if err != nil {
			return statusProceed, Value{}, err
		}
		val, ok := ParseLiteral(o.interp.kw, literal, declared)
		if !ok {
			return statusProceed, Value{}, newError(SyntaxError, list.Line(), "invalid literal in let binding %s", name)
		}
		val, err = o.interp.classes.checkTypeAndValue(declared, val, false, list.Line())
		if err != nil {
			return statusProceed, Value{}, err
		}

		if seen[name] {
			return statusProceed, Value{}, newError(NameError, list.Line(), "duplicate let binding %s", name)
		}
		seen[name] = true
		env.Define(name, val)
	}

	for i := 2; i < list.Len(); i++ {
		status, val, err := o.exec(env, list.At(i), firstObj)
		if err != nil {
			return statusProceed, Value{}, err
		}
		if status == statusReturn {
			return status, val, nil
		}
	}
	return statusProceed, Value{}, nil
}

func (o *ObjectDef) execSet(env *Environment, list *ast.List, firstObj *ObjectDef) (execStatus, Value, error) {
	name, ok := atomLiteral(list.At(1))
	if !ok {
		return statusProceed, Value{}, newError(SyntaxError, list.Line(), "malformed set statement")
	}
	val, err := o.eval(env, list.At(2), firstObj)
	if err != nil {
		return statusProceed, Value{}, err
	}
	if err := o.setVariable(env, name, val, list.Line()); err != nil {
		return statusProceed, Value{}, err
	}
	return statusProceed, Value{}, nil
}

func (o *ObjectDef) execIf(env *Environment, list *ast.List, firstObj *ObjectDef) (execStatus, Value, error) {
	cond, err := o.eval(env, list.At(1), firstObj)
	if err != nil {
		return statusProceed, Value{}, err
	}
	if cond.Type != TypeBool {
		return statusProceed, Value{}, newError(TypeError, list.Line(), "if condition is not a boolean")
	}
	if cond.BoolVal {
		return o.exec(env, list.At(2), firstObj)
	}
	// A bare `if` with a false condition and no else branch proceeds
	// with no error (spec.md §9's open-question decision).
	if list.Len() == 4 {
		return o.exec(env, list.At(3), firstObj)
	}
	return statusProceed, Value{}, nil
}

func (o *ObjectDef) execWhile(env *Environment, list *ast.List, firstObj *ObjectDef) (execStatus, Value, error) {
	for {
		cond, err := o.eval(env, list.At(1), firstObj)
		if err != nil {
			return statusProceed, Value{}, err
		}
		if cond.Type != TypeBool {
			return statusProceed, Value{}, newError(TypeError, list.Line(), "while condition is not a boolean")
		}
		if !cond.BoolVal {
			return statusProceed, Value{}, nil
		}
		status, val, err := o.exec(env, list.At(2), firstObj)
		if err != nil {
			return statusProceed, Value{}, err
		}
		if status == statusReturn {
			return status, val, nil
		}
	}
}

func (o *ObjectDef) execReturn(env *Environment, list *ast.List, firstObj *ObjectDef) (execStatus, Value, error) {
	if list.Len() == 1 {
		return statusReturn, NothingValue(), nil
	}
	val, err := o.eval(env, list.At(1), firstObj)
	if err != nil {
		return statusProceed, Value{}, err
	}
	return statusReturn, val, nil
}

// execCall is the statement-position form of `call`: the returned value
// is discarded, which per spec.md §9's open-question decision is never
// itself an error, even when that value is NOTHING.
func (o *ObjectDef) execCall(env *Environment, list *ast.List, firstObj *ObjectDef) (execStatus, Value, error) {
	if _, err := o.evalCall(env, list, firstObj); err != nil {
		return statusProceed, Value{}, err
	}
	return statusProceed, Value{}, nil
}

func (o *ObjectDef) execPrint(env *Environment, list *ast.List, firstObj *ObjectDef) (execStatus, Value, error) {
	var sb strings.Builder
	for i := 1; i < list.Len(); i++ {
		val, err := o.eval(env, list.At(i), firstObj)
		if err != nil {
			return statusProceed, Value{}, err
		}
		sb.WriteString(val.Display())
	}
	o.interp.host.Output(sb.String())
	return statusProceed, Value{}, nil
}

func (o *ObjectDef) execInput(env *Environment, list *ast.List, firstObj *ObjectDef, isString bool) (execStatus, Value, error) {
	name, ok := atomLiteral(list.At(1))
	if !ok {
		return statusProceed, Value{}, newError(SyntaxError, list.Line(), "malformed input statement")
	}

	line, err := o.interp.host.GetInput()
	if err != nil {
		return statusProceed, Value{}, newError(FaultError, list.Line(), "reading input: %v", err)
	}

	var val Value
	if isString {
		val = StringValue(line)
	} else {
		n, convErr := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if convErr != nil {
			return statusProceed, Value{}, newError(TypeError, list.Line(), "input %q is not a valid integer", line)
		}
		val = IntValue(n)
	}

	if err := o.setVariable(env, name, val, list.Line()); err != nil {
		return statusProceed, Value{}, err
	}
	return statusProceed, Value{}, nil
}
