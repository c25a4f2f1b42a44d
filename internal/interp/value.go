package interp

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ValueType is the closed enumeration of primitive kinds from spec.md §3.
// A full type is either one of these primitive tags or a class-name
// string; Value.ClassName carries the class name when Type is TypeClass.
type ValueType int

const (
	// TypeInt tags a signed integer payload.
	TypeInt ValueType = iota
	// TypeBool tags a boolean payload.
	TypeBool
	// TypeString tags a byte-string payload.
	TypeString
	// TypeClass tags an object reference or null. When ClassName is
	// empty the value is the generic "null" type used only for the
	// null literal before assignment context refines it (spec.md §3).
	TypeClass
	// TypeNothing tags the unit value produced by a bare `return`.
	TypeNothing
	// TypeVoid tags the unit value used only for a method's declared
	// return shape; no expression ever evaluates to TypeVoid.
	TypeVoid
)

// String renders the primitive tag the way spec.md spells it.
func (t ValueType) String() string {
	switch t {
	case TypeInt:
		return "INT"
	case TypeBool:
		return "BOOL"
	case TypeString:
		return "STRING"
	case TypeClass:
		return "CLASS"
	case TypeNothing:
		return "NOTHING"
	case TypeVoid:
		return "VOID"
	default:
		return "UNKNOWN"
	}
}

// Value is the tagged (type, payload) pair of spec.md §3. Rather than the
// in-place mutation the original design uses to retarget a generic-null
// literal to a specific class (spec.md §9's design note), every place
// that would have mutated a Value in place instead returns a freshly
// materialized one; the observable semantics are identical.
type Value struct {
	Type ValueType

	// ClassName holds the class name when Type is TypeClass. Empty
	// means the generic, not-yet-refined null type.
	ClassName string

	IntVal  int64
	BoolVal bool
	StrVal  string

	// Obj is non-nil for a live object reference; nil means null.
	Obj *ObjectDef
}

// IntValue constructs an INT value.
func IntValue(n int64) Value { return Value{Type: TypeInt, IntVal: n} }

// BoolValue constructs a BOOL value.
func BoolValue(b bool) Value { return Value{Type: TypeBool, BoolVal: b} }

// StringValue constructs a STRING value, NFC-normalizing the payload so
// that two source files spelling the same accented text differently
// still compare and sort identically.
func StringValue(s string) Value { return Value{Type: TypeString, StrVal: norm.NFC.String(s)} }

// NothingValue constructs the NOTHING unit value.
func NothingValue() Value { return Value{Type: TypeNothing} }

// NullValue constructs a null reference of the given class name ("" for
// the generic, unrefined null type).
func NullValue(className string) Value { return Value{Type: TypeClass, ClassName: className} }

// ObjectValue wraps a live object reference, tagged with its class name.
func ObjectValue(className string, obj *ObjectDef) Value {
	return Value{Type: TypeClass, ClassName: className, Obj: obj}
}

// IsNull reports whether a class-typed value holds no live reference.
func (v Value) IsNull() bool { return v.Type == TypeClass && v.Obj == nil }

// Display renders a value for the `print` statement (spec.md §4.6):
// BOOL becomes true/false, INT/STRING render naturally; object
// references are never printed and callers must not rely on a format.
func (v Value) Display() string {
	switch v.Type {
	case TypeBool:
		if v.BoolVal {
			return "true"
		}
		return "false"
	case TypeInt:
		return strconv.FormatInt(v.IntVal, 10)
	case TypeString:
		return v.StrVal
	default:
		return ""
	}
}

// ParseLiteral applies the literal rules of spec.md §4.1, in order, to a
// bare token. expectedClass supplies the class name a null literal
// should be tagged with (the generic "CLASS" type when unknown/absent).
// ok is false when the token is not a literal at all, in which case the
// caller treats it as a variable name.
func ParseLiteral(kw *Keywords, tok string, expectedClass string) (val Value, ok bool) {
	switch tok {
	case kw.True:
		return BoolValue(true), true
	case kw.False:
		return BoolValue(false), true
	}

	if strings.HasPrefix(tok, `"`) {
		return StringValue(strings.Trim(tok, `"`)), true
	}

	if isIntLiteral(tok) {
		n, err := strconv.ParseInt(tok, 10, 64)
		if err == nil {
			return IntValue(n), true
		}
	}

	if tok == kw.Null {
		return NullValue(expectedClass), true
	}

	if tok == kw.Nothing {
		return NothingValue(), true
	}

	return Value{}, false
}

// isIntLiteral reports whether tok, with a single leading '-' stripped,
// is all digits (spec.md §4.1 rule 3).
func isIntLiteral(tok string) bool {
	s := strings.TrimPrefix(tok, "-")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
