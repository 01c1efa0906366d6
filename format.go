package chanlog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// lineBuilder renders a variadic argument list into log lines.
type lineBuilder struct {
	buf   []byte
	prior []byte
}

// parseLines renders args attributed to frame f under tag.
// The first value uses its display form, the rest their debug form.
func parseLines(f Frame, tag string, args []any) []string {
	if len(args) == 0 {
		args = []any{""}
	}

	b := &lineBuilder{buf: make([]byte, 0, 128)}
	b.buf = fmt.Appendf(b.buf, "%s %s %d %s: ", tag, f.Base(), f.Line, f.Scope())
	b.buf = appendDisplay(b.buf, args[0])
	b.prior = b.buf
	for _, arg := range args[1:] {
		b.next(appendDebug(nil, arg))
	}
	return b.lines()
}

// quickLines renders args without a call-site prefix, all in display form.
func quickLines(args []any) []string {
	b := &lineBuilder{buf: make([]byte, 0, 64)}
	if len(args) > 0 {
		b.buf = appendDisplay(b.buf, args[0])
		args = args[1:]
	}
	b.prior = b.buf
	for _, arg := range args {
		b.next(appendDisplay(nil, arg))
	}
	return b.lines()
}

// next appends one rendered value, space separated unless the previous
// piece ended a line.
func (b *lineBuilder) next(piece []byte) {
	if len(b.prior) == 0 || b.prior[len(b.prior)-1] != '\n' {
		b.buf = append(b.buf, ' ')
	}
	b.buf = append(b.buf, piece...)
	b.prior = piece
}

func (b *lineBuilder) lines() []string {
	return strings.Split(string(b.buf), "\n")
}

// appendDisplay appends the human-facing form of v.
func appendDisplay(buf []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		return append(buf, val...)
	case []byte:
		return append(buf, val...)
	case nil:
		return append(buf, "<nil>"...)
	case error, fmt.Stringer:
		return append(buf, stringifyMessage(val)...)
	}
	if num, ok := appendNumber(buf, v); ok {
		return num
	}
	return append(buf, stringifyMessage(v)...)
}

// appendDebug appends the quoted, machine-readable form of v.
func appendDebug(buf []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		return strconv.AppendQuote(buf, val)
	case []byte:
		return strconv.AppendQuote(buf, string(val))
	case error:
		return strconv.AppendQuote(buf, val.Error())
	case nil:
		return append(buf, "nil"...)
	}
	if num, ok := appendNumber(buf, v); ok {
		return num
	}
	return fmt.Appendf(buf, "%#v", v)
}

// appendNumber appends bools, integers and floats in plain decimal form.
// It reports false for any other type.
func appendNumber(buf []byte, v any) ([]byte, bool) {
	switch val := v.(type) {
	case bool:
		return strconv.AppendBool(buf, val), true
	case int:
		return strconv.AppendInt(buf, int64(val), 10), true
	case int8:
		return strconv.AppendInt(buf, int64(val), 10), true
	case int16:
		return strconv.AppendInt(buf, int64(val), 10), true
	case int32:
		return strconv.AppendInt(buf, int64(val), 10), true
	case int64:
		return strconv.AppendInt(buf, val, 10), true
	case uint:
		return strconv.AppendUint(buf, uint64(val), 10), true
	case uint8:
		return strconv.AppendUint(buf, uint64(val), 10), true
	case uint16:
		return strconv.AppendUint(buf, uint64(val), 10), true
	case uint32:
		return strconv.AppendUint(buf, uint64(val), 10), true
	case uint64:
		return strconv.AppendUint(buf, val, 10), true
	case uintptr:
		return strconv.AppendUint(buf, uint64(val), 10), true
	case float32:
		return appendFloat(buf, float64(val), 32), true
	case float64:
		return appendFloat(buf, val, 64), true
	}
	return buf, false
}

// appendFloat uses positional notation for magnitudes in [1e-4, 1e16) and
// exponent notation outside it, e.g. 0.25, 1e-07, 1e+21.
func appendFloat(buf []byte, f float64, bitSize int) []byte {
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.AppendFloat(buf, f, 'e', -1, bitSize)
	}
	return strconv.AppendFloat(buf, f, 'f', -1, bitSize)
}

// repr returns the debug form of v as a string.
func repr(v any) string {
	return string(appendDebug(nil, v))
}

// stringifyMessage converts any type to a string representation
func stringifyMessage(msg any) string {
	switch m := msg.(type) {
	case string:
		return m
	case error:
		return m.Error()
	case fmt.Stringer:
		return m.String()
	default:
		return fmt.Sprintf("%+v", m)
	}
}
