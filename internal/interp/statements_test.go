package interp

import (
	"testing"

	"github.com/cwbudde/go-brewin/internal/sexpr"
)

// callMain builds a one-class program whose `main` method body is
// bodySrc, instantiates it, calls main with no arguments, and returns
// the result plus the fake host used for print/input.
func callMain(t *testing.T, bodySrc string) (Value, *fakeHost) {
	t.Helper()
	source := `(class Program (method int main () ` + bodySrc + `))`
	in, host := newTestInterpreter(t, source)
	obj, err := in.Instantiate("Program", 0)
	if err != nil {
		t.Fatalf("Instantiate error: %v", err)
	}
	val, err := obj.CallMethod("main", nil, 0, nil)
	if err != nil {
		t.Fatalf("CallMethod error: %v", err)
	}
	return val, host
}

func callMainExpectError(t *testing.T, bodySrc string) error {
	t.Helper()
	source := `(class Program (method int main () ` + bodySrc + `))`
	in, _ := newTestInterpreter(t, source)
	obj, err := in.Instantiate("Program", 0)
	if err != nil {
		t.Fatalf("Instantiate error: %v", err)
	}
	_, err = obj.CallMethod("main", nil, 0, nil)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	return err
}

// TestExecBegin verifies a begin block runs every statement in order
// and an early return short-circuits the remaining ones.
func TestExecBegin(t *testing.T) {
	val, host := callMain(t, `
		(begin
			(print "a")
			(return 1)
			(print "b"))
	`)
	if val.IntVal != 1 {
		t.Errorf("return value = %d, want 1", val.IntVal)
	}
	if len(host.printed) != 1 || host.printed[0] != "a" {
		t.Errorf("printed = %v, want [a] only", host.printed)
	}
}

// TestExecLetScoping verifies a let binding is visible inside its body
// and a duplicate binding within the same let is a NAME_ERROR.
func TestExecLetScoping(t *testing.T) {
	val, _ := callMain(t, `
		(let ((int x 10))
			(return x))
	`)
	if val.IntVal != 10 {
		t.Errorf("x = %d, want 10", val.IntVal)
	}

	err := callMainExpectError(t, `
		(let ((int x 1) (int x 2))
			(return x))
	`)
	assertKind(t, err, NameError)
}

// TestExecSet verifies set resolves and updates a let-bound local.
func TestExecSet(t *testing.T) {
	val, _ := callMain(t, `
		(let ((int x 1))
			(begin
				(set x 2)
				(return x)))
	`)
	if val.IntVal != 2 {
		t.Errorf("x = %d, want 2", val.IntVal)
	}
}

// TestExecIfTrueBranch verifies a true condition runs the then branch.
func TestExecIfTrueBranch(t *testing.T) {
	val, _ := callMain(t, `(if true (return 1) (return 2))`)
	if val.IntVal != 1 {
		t.Errorf("result = %d, want 1", val.IntVal)
	}
}

// TestExecIfElseBranch verifies a false condition runs the else branch
// when present.
func TestExecIfElseBranch(t *testing.T) {
	val, _ := callMain(t, `(if false (return 1) (return 2))`)
	if val.IntVal != 2 {
		t.Errorf("result = %d, want 2", val.IntVal)
	}
}

// TestExecIfNoElseProceeds verifies a false condition with no else
// branch proceeds with no error, per spec.md §9's open-question
// decision.
func TestExecIfNoElseProceeds(t *testing.T) {
	val, _ := callMain(t, `
		(begin
			(if false (return 1))
			(return 9))
	`)
	if val.IntVal != 9 {
		t.Errorf("result = %d, want 9", val.IntVal)
	}
}

// TestExecIfNonBoolCondition verifies a non-boolean condition is a
// TYPE_ERROR.
func TestExecIfNonBoolCondition(t *testing.T) {
	err := callMainExpectError(t, `(if 1 (return 1))`)
	assertKind(t, err, TypeError)
}

// TestExecWhile verifies a while loop runs until its condition is
// false.
func TestExecWhile(t *testing.T) {
	val, _ := callMain(t, `
		(let ((int i 0) (int sum 0))
			(begin
				(while (< i 5)
					(begin
						(set sum (+ sum i))
						(set i (+ i 1))))
				(return sum)))
	`)
	if val.IntVal != 10 {
		t.Errorf("sum = %d, want 10", val.IntVal)
	}
}

// TestExecReturnBare verifies a bare `return` in an int method yields
// the int default, 0, in place of NOTHING.
func TestExecReturnBare(t *testing.T) {
	val, _ := callMain(t, `(return)`)
	if val.Type != TypeInt || val.IntVal != 0 {
		t.Errorf("bare return = %+v, want INT 0", val)
	}
}

// TestExecCallDiscardsValue verifies a statement-position call does not
// itself error even when the called method returns NOTHING.
func TestExecCallDiscardsValue(t *testing.T) {
	source := `
		(class Program
			(method void noop () (return))
			(method int main ()
				(begin
					(call me noop)
					(return 1))))
	`
	ok, tree, msg := sexpr.Parse(source)
	if !ok {
		t.Fatalf("parse error: %s", msg)
	}
	ci, err := BuildClassIndex(tree, DefaultKeywords())
	if err != nil {
		t.Fatal(err)
	}
	in := NewInterpreter(ci, &fakeHost{}, DefaultKeywords())
	obj, err := in.Instantiate("Program", 0)
	if err != nil {
		t.Fatal(err)
	}
	val, err := obj.CallMethod("main", nil, 0, nil)
	if err != nil {
		t.Fatalf("CallMethod error: %v", err)
	}
	if val.IntVal != 1 {
		t.Errorf("result = %d, want 1", val.IntVal)
	}
}

// TestExecPrintConcatenates verifies print concatenates the Display()
// of every argument with no separator.
func TestExecPrintConcatenates(t *testing.T) {
	_, host := callMain(t, `
		(begin
			(print "x=" 1 " ok=" true)
			(return 0))
	`)
	if len(host.printed) != 1 || host.printed[0] != "x=1 ok=true" {
		t.Errorf("printed = %v", host.printed)
	}
}

// TestExecInputS verifies inputs reads a line from the host and binds
// it as a STRING.
func TestExecInputS(t *testing.T) {
	source := `(class Program (method string main () (let ((string line "")) (begin (inputs line) (return line)))))`
	ok, tree, msg := sexpr.Parse(source)
	if !ok {
		t.Fatalf("parse error: %s", msg)
	}
	ci, err := BuildClassIndex(tree, DefaultKeywords())
	if err != nil {
		t.Fatal(err)
	}
	host := &fakeHost{inputs: []string{"hello"}}
	in := NewInterpreter(ci, host, DefaultKeywords())
	obj, err := in.Instantiate("Program", 0)
	if err != nil {
		t.Fatal(err)
	}
	val, err := obj.CallMethod("main", nil, 0, nil)
	if err != nil {
		t.Fatalf("CallMethod error: %v", err)
	}
	if val.StrVal != "hello" {
		t.Errorf("line = %q, want hello", val.StrVal)
	}
}

// TestExecInputI verifies inputi parses the host's line as an integer
// and rejects a non-numeric one with a TYPE_ERROR.
func TestExecInputI(t *testing.T) {
	source := `(class Program (method int main () (let ((int n 0)) (begin (inputi n) (return n)))))`
	ok, tree, msg := sexpr.Parse(source)
	if !ok {
		t.Fatalf("parse error: %s", msg)
	}
	ci, err := BuildClassIndex(tree, DefaultKeywords())
	if err != nil {
		t.Fatal(err)
	}

	host := &fakeHost{inputs: []string{"42"}}
	in := NewInterpreter(ci, host, DefaultKeywords())
	obj, err := in.Instantiate("Program", 0)
	if err != nil {
		t.Fatal(err)
	}
	val, err := obj.CallMethod("main", nil, 0, nil)
	if err != nil {
		t.Fatalf("CallMethod error: %v", err)
	}
	if val.IntVal != 42 {
		t.Errorf("n = %d, want 42", val.IntVal)
	}

	host2 := &fakeHost{inputs: []string{"not-a-number"}}
	in2 := NewInterpreter(ci, host2, DefaultKeywords())
	obj2, err := in2.Instantiate("Program", 0)
	if err != nil {
		t.Fatal(err)
	}
	_, err = obj2.CallMethod("main", nil, 0, nil)
	assertKind(t, err, TypeError)
}

