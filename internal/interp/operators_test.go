package interp

import "testing"

// TestIsBinaryOp verifies the recognized operator token set.
func TestIsBinaryOp(t *testing.T) {
	for _, op := range []string{"+", "-", "*", "/", "%", "==", "!=", "<", "<=", ">", ">=", "&", "|"} {
		if !isBinaryOp(op) {
			t.Errorf("isBinaryOp(%q) = false, want true", op)
		}
	}
	if isBinaryOp("!") {
		t.Error("unary ! should not be a binary op")
	}
	if isBinaryOp("call") {
		t.Error("'call' should not be a binary op")
	}
}

// TestApplyBinaryOpInt verifies every INT operator, including
// truncating-toward-zero division and modulo (spec.md's explicit
// host-integer-semantics rule, not the floor division of
// original_source/interpreterv2.py).
func TestApplyBinaryOpInt(t *testing.T) {
	tests := []struct {
		op      string
		a, b    int64
		wantInt int64
		wantBoo bool
		isBool  bool
	}{
		{"+", 2, 3, 5, false, false},
		{"-", 5, 3, 2, false, false},
		{"*", 4, 3, 12, false, false},
		{"/", 7, 2, 3, false, false},
		{"/", -7, 2, -3, false, false},
		{"%", 7, 2, 1, false, false},
		{"%", -7, 2, -1, false, false},
		{"==", 2, 2, 0, true, true},
		{"!=", 2, 3, 0, true, true},
		{"<", 2, 3, 0, true, true},
		{"<=", 3, 3, 0, true, true},
		{">", 3, 2, 0, true, true},
		{">=", 3, 3, 0, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			got, err := applyBinaryOp(0, tt.op, IntValue(tt.a), IntValue(tt.b))
			if err != nil {
				t.Fatalf("applyBinaryOp error: %v", err)
			}
			if tt.isBool {
				if got.BoolVal != tt.wantBoo {
					t.Errorf("%d %s %d = %v, want %v", tt.a, tt.op, tt.b, got.BoolVal, tt.wantBoo)
				}
			} else if got.IntVal != tt.wantInt {
				t.Errorf("%d %s %d = %d, want %d", tt.a, tt.op, tt.b, got.IntVal, tt.wantInt)
			}
		})
	}
}

// TestApplyBinaryOpString verifies concatenation and lexicographic
// ordering on STRING operands.
func TestApplyBinaryOpString(t *testing.T) {
	got, err := applyBinaryOp(0, "+", StringValue("foo"), StringValue("bar"))
	if err != nil {
		t.Fatalf("applyBinaryOp error: %v", err)
	}
	if got.StrVal != "foobar" {
		t.Errorf("foo+bar = %q, want foobar", got.StrVal)
	}

	got, err = applyBinaryOp(0, "<", StringValue("a"), StringValue("b"))
	if err != nil {
		t.Fatalf("applyBinaryOp error: %v", err)
	}
	if !got.BoolVal {
		t.Error(`"a" < "b" should be true`)
	}
}

// TestApplyBinaryOpBool verifies logical and/or and equality on BOOL
// operands.
func TestApplyBinaryOpBool(t *testing.T) {
	got, err := applyBinaryOp(0, "&", BoolValue(true), BoolValue(false))
	if err != nil {
		t.Fatalf("applyBinaryOp error: %v", err)
	}
	if got.BoolVal {
		t.Error("true & false should be false")
	}

	got, err = applyBinaryOp(0, "|", BoolValue(true), BoolValue(false))
	if err != nil {
		t.Fatalf("applyBinaryOp error: %v", err)
	}
	if !got.BoolVal {
		t.Error("true | false should be true")
	}
}

// TestApplyBinaryOpClassIdentity verifies CLASS operands compare by
// reference, including null-equals-null.
func TestApplyBinaryOpClassIdentity(t *testing.T) {
	obj := &ObjectDef{}

	got, err := applyBinaryOp(0, "==", ObjectValue("Dog", obj), ObjectValue("Dog", obj))
	if err != nil {
		t.Fatalf("applyBinaryOp error: %v", err)
	}
	if !got.BoolVal {
		t.Error("same object should compare equal")
	}

	got, err = applyBinaryOp(0, "==", NullValue("Dog"), NullValue("Dog"))
	if err != nil {
		t.Fatalf("applyBinaryOp error: %v", err)
	}
	if !got.BoolVal {
		t.Error("null should equal null")
	}
}

// TestApplyBinaryOpIncompatibleTypes verifies mismatched operand types
// and unsupported operator/operand pairs are TYPE_ERROR.
func TestApplyBinaryOpIncompatibleTypes(t *testing.T) {
	_, err := applyBinaryOp(3, "+", IntValue(1), StringValue("x"))
	assertKind(t, err, TypeError)

	_, err = applyBinaryOp(3, "+", BoolValue(true), BoolValue(false))
	assertKind(t, err, TypeError)

	_, err = applyBinaryOp(3, "&", IntValue(1), IntValue(2))
	assertKind(t, err, TypeError)
}

// TestApplyBinaryOpDivideByZero verifies INT division and modulo by
// zero raise FAULT_ERROR rather than panicking the host process.
func TestApplyBinaryOpDivideByZero(t *testing.T) {
	_, err := applyBinaryOp(7, "/", IntValue(1), IntValue(0))
	assertKind(t, err, FaultError)

	_, err = applyBinaryOp(7, "%", IntValue(1), IntValue(0))
	assertKind(t, err, FaultError)
}
