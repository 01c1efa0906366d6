package chanlog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLinesLayout(t *testing.T) {
	f := Frame{File: "/src/app/foo.py", Line: 42, Function: "main.bar"}

	lines := parseLines(f, "info", []any{"hello", 7})
	assert.Equal(t, []string{"info foo.py 42 bar: hello 7"}, lines)
}

func TestParseLinesNoArgs(t *testing.T) {
	f := Frame{File: "foo.go", Line: 3, Function: "example.com/pkg.run"}

	assert.Equal(t, []string{"info foo.go 3 run: "}, parseLines(f, "info", nil))
}

func TestParseLinesDebugForm(t *testing.T) {
	f := Frame{File: "foo.go", Line: 1, Function: "pkg.f"}

	lines := parseLines(f, "t", []any{"msg", "quoted", 2.5, true, nil, errors.New("bad")})
	assert.Equal(t, []string{`t foo.go 1 f: msg "quoted" 2.5 true nil "bad"`}, lines)
}

func TestParseLinesSizedNumbers(t *testing.T) {
	f := Frame{File: "foo.go", Line: 1, Function: "pkg.f"}

	lines := parseLines(f, "info", []any{"n", uint8(7), int32(4), float32(1.5), []byte("ab"), uint(3), uint64(1 << 40), int8(-2), uintptr(9)})
	assert.Equal(t, []string{`info foo.go 1 f: n 7 4 1.5 "ab" 3 1099511627776 -2 9`}, lines)

	assert.Equal(t, []string{"ab 7 -1 0.5"}, quickLines([]any{[]byte("ab"), uint16(7), int16(-1), float32(0.5)}))
}

func TestFloatNotation(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{0.25, "0.25"},
		{1.5, "1.5"},
		{0.0001, "0.0001"},
		{1e-7, "1e-07"},
		{1e21, "1e+21"},
		{-3e16, "-3e+16"},
		{123456.5, "123456.5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, string(appendDisplay(nil, tt.in)), tt.in)
		assert.Equal(t, tt.want, repr(tt.in), tt.in)
	}
}

func TestParseLinesSplitsOnNewline(t *testing.T) {
	f := Frame{File: "foo.go", Line: 1, Function: "pkg.f"}

	lines := parseLines(f, "t", []any{"first\nsecond\n", 1})
	// no separator after a piece ending in a newline
	assert.Equal(t, []string{"t foo.go 1 f: first", "second", "1"}, lines)
}

func TestQuickLines(t *testing.T) {
	assert.Equal(t, []string{"a b 3"}, quickLines([]any{"a", "b", 3}))
	assert.Equal(t, []string{"top", "next more"}, quickLines([]any{"top\n", "next", "more"}))
	assert.Equal(t, []string{""}, quickLines(nil))
}

func TestQuickLinesEmptyPrior(t *testing.T) {
	// an empty piece is always followed by a separator
	assert.Equal(t, []string{" x"}, quickLines([]any{"", "x"}))
}

type point struct{ X, Y int }

func (p point) String() string { return "point" }

func TestRenderings(t *testing.T) {
	assert.Equal(t, "point", string(appendDisplay(nil, point{1, 2})))
	assert.Equal(t, "chanlog.point{X:1, Y:2}", repr(point{1, 2}))
	assert.Equal(t, `"a\tb"`, repr("a\tb"))
	assert.Equal(t, "<nil>", string(appendDisplay(nil, nil)))
	assert.Equal(t, "0.25", string(appendDisplay(nil, 0.25)))
}
