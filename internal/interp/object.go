package interp

// ObjectDef is a per-instance runtime object (spec.md §3/§4.5): its own
// field state, a method table of its class's own methods, and an
// optional super-object — a distinct instance of the superclass that
// this object exclusively owns. Grounded directly on
// original_source/interpreterv2.py's ObjectDef, which has no equivalent
// in go-dws's flattened single-instance-plus-parent-pointer ClassInfo
// model: Brewin's exact-arity super-delegation and first_obj threading
// (spec.md §4.5/§9) require one ObjectDef per level of the hierarchy.
type ObjectDef struct {
	class   *ClassDef
	fields  map[string]Value
	methods map[string]*MethodDef
	super   *ObjectDef
	interp  *Interpreter
}

// execStatus is the PROCEED/RETURN tag every statement evaluator returns
// (spec.md §4.6).
type execStatus int

const (
	statusProceed execStatus = iota
	statusReturn
)

// Instantiate builds a new ObjectDef of the named class, recursively
// instantiating its superclass (if any) as a separate super-object
// first, and materializing each field's default value fresh (spec.md
// §4.5). callerLine is used only to locate an "unknown class" error at
// the `new` expression that triggered the instantiation.
func (in *Interpreter) Instantiate(className string, callerLine int) (*ObjectDef, error) {
	cd, ok := in.classes.Lookup(className)
	if !ok {
		return nil, newError(TypeError, callerLine, "no class named %s found", className)
	}

	var super *ObjectDef
	if cd.SuperclassName != "" {
		var err error
		super, err = in.Instantiate(cd.SuperclassName, callerLine)
		if err != nil {
			return nil, err
		}
	}

	fields := make(map[string]Value, len(cd.Fields))
	for _, f := range cd.Fields {
		fields[f.Name] = f.Default
	}
	methods := make(map[string]*MethodDef, len(cd.Methods))
	for _, m := range cd.Methods {
		methods[m.Name] = m
	}

	return &ObjectDef{class: cd, fields: fields, methods: methods, super: super, interp: in}, nil
}

// CallMethod is spec.md §4.5's call_method. Dispatch falls through to
// the super-object not only when the name is unknown but also on arity
// mismatch (the "inheritance-by-exact-arity" rule §9 says to preserve
// exactly), threading first_obj through so a nested `me`/`super` and
// field access still resolve against the right objects.
func (o *ObjectDef) CallMethod(name string, args []Value, callerLine int, firstObj *ObjectDef) (Value, error) {
	md, ok := o.methods[name]
	if !ok || len(md.Params) != len(args) {
		if o.super != nil {
			next := firstObj
			if next == nil {
				next = o
			}
			return o.super.CallMethod(name, args, callerLine, next)
		}
		if !ok {
			return Value{}, newError(NameError, callerLine, "unknown method %s", name)
		}
		return Value{}, newError(NameError, callerLine, "invalid number of parameters in call to %s", name)
	}

	env := NewEnvironment(nil)
	seen := map[string]bool{}
	for i, p := range md.Params {
		actual, err := o.interp.classes.checkTypeAndValue(p.Type, args[i], true, callerLine)
		if err != nil {
			return Value{}, err
		}
		if seen[p.Name] {
			return Value{}, newError(NameError, callerLine, "duplicate formal param %s", p.Name)
		}
		seen[p.Name] = true
		env.Define(p.Name, actual)
	}

	dynSelf := o
	if firstObj != nil {
		dynSelf = firstObj
	}

	status, val, err := o.exec(env, md.Body, dynSelf)
	if err != nil {
		return Value{}, err
	}

	if status == statusReturn && val.Type != TypeNothing {
		return o.interp.classes.checkTypeAndValue(md.ReturnType, val, false, callerLine)
	}

	return defaultReturn(md.ReturnType), nil
}

// defaultReturn synthesizes the implicit return value for a method that
// falls off the end of its body or uses a bare `return` (spec.md §4.5).
func defaultReturn(returnType string) Value {
	switch returnType {
	case "INT":
		return IntValue(0)
	case "BOOL":
		return BoolValue(false)
	case "STRING":
		return StringValue("")
	case "VOID", "NOTHING":
		return NothingValue()
	default:
		return NullValue(returnType)
	}
}

// typeTag returns the string a value's current static type resolves to:
// a primitive tag, or the class name for a class-typed value. Used to
// recover "the binding's declared type" from an already-bound Value,
// since env frames and fields store checked values directly rather than
// a separate declared-type table per binding.
func typeTag(v Value) string {
	if v.Type == TypeClass {
		return v.ClassName
	}
	return v.Type.String()
}

// setVariable implements spec.md §4.6's __set_variable_aux: parameters
// and locals shadow fields. The environment is checked first, then
// instance fields, then NAME_ERROR.
func (o *ObjectDef) setVariable(env *Environment, name string, val Value, line int) error {
	if val.Type == TypeNothing {
		return newError(TypeError, line, "can't assign nothing to %s", name)
	}

	if existing, ok := env.Get(name); ok {
		checked, err := o.interp.classes.checkTypeAndValue(typeTag(existing), val, false, line)
		if err != nil {
			return err
		}
		env.Set(name, checked)
		return nil
	}

	existing, ok := o.fields[name]
	if !ok {
		return newError(NameError, line, "unknown variable %s", name)
	}
	checked, err := o.interp.classes.checkTypeAndValue(typeTag(existing), val, false, line)
	if err != nil {
		return err
	}
	o.fields[name] = checked
	return nil
}
