package chanlog

import (
	"cmp"
	"fmt"
)

// CheckFailure is the panic value raised by a failed check.
type CheckFailure struct {
	Prefix string
	A, B   any
	Op     string
}

func (f CheckFailure) Error() string {
	return "fatal error: " + f.description()
}

func (f CheckFailure) description() string {
	return fmt.Sprintf("failed %s %s %s %s", f.Prefix, repr(f.A), f.Op, repr(f.B))
}

// CheckGE panics unless a >= b, after dumping the stack to the default logger.
func CheckGE[T cmp.Ordered](a, b T) { checkGE(Default(), 1, a, b) }

// CheckGT panics unless a > b, after dumping the stack to the default logger.
func CheckGT[T cmp.Ordered](a, b T) { checkGT(Default(), 1, a, b) }

// CheckLE panics unless a <= b, after dumping the stack to the default logger.
func CheckLE[T cmp.Ordered](a, b T) { checkLE(Default(), 1, a, b) }

// CheckLT panics unless a < b, after dumping the stack to the default logger.
func CheckLT[T cmp.Ordered](a, b T) { checkLT(Default(), 1, a, b) }

// CheckGEOn is CheckGE against an explicit logger.
func CheckGEOn[T cmp.Ordered](l *Logger, a, b T) { checkGE(l, 1, a, b) }

// CheckGTOn is CheckGT against an explicit logger.
func CheckGTOn[T cmp.Ordered](l *Logger, a, b T) { checkGT(l, 1, a, b) }

// CheckLEOn is CheckLE against an explicit logger.
func CheckLEOn[T cmp.Ordered](l *Logger, a, b T) { checkLE(l, 1, a, b) }

// CheckLTOn is CheckLT against an explicit logger.
func CheckLTOn[T cmp.Ordered](l *Logger, a, b T) { checkLT(l, 1, a, b) }

func checkGE[T cmp.Ordered](l *Logger, skip int, a, b T) {
	if a >= b {
		return
	}
	l.checkFailed(skip+1, CheckFailure{Prefix: "check_ge", A: a, Op: ">=", B: b})
}

func checkGT[T cmp.Ordered](l *Logger, skip int, a, b T) {
	if a > b {
		return
	}
	l.checkFailed(skip+1, CheckFailure{Prefix: "check_gt", A: a, Op: ">", B: b})
}

func checkLE[T cmp.Ordered](l *Logger, skip int, a, b T) {
	if a <= b {
		return
	}
	l.checkFailed(skip+1, CheckFailure{Prefix: "check_le", A: a, Op: "<=", B: b})
}

func checkLT[T cmp.Ordered](l *Logger, skip int, a, b T) {
	if a < b {
		return
	}
	l.checkFailed(skip+1, CheckFailure{Prefix: "check_lt", A: a, Op: "<", B: b})
}

// checkFailed dumps the stack from the checking call site outward, then
// panics with the failure.
func (l *Logger) checkFailed(skip int, failure CheckFailure) {
	l.stack(skip+1, []any{failure.description()})
	panic(failure)
}
