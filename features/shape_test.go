package features

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	cases := []struct {
		token string
		shape string
	}{
		{"USD100", "UUUDDD"},
		{"Monday", "ULLLLL"},
		{"12-34", "DD-DD"},
		{"Mr.", "UL."},
		{"(a)", "(L)"},
		{"[b]", "(L)"},
		{"{c}", "(L)"},
		{"<d>", "(L)"},
		{"a:b;c?d!e", "L;L;L;L;L"},
		{"x.y,z", "L.L.L"},
		{"a+b*c/d=e|f_g", "L-L-L-L-L-L-L"},
		{"'s", "'L"},
		{"", ""},
		{"जी", "जी"},
	}
	for _, c := range cases {
		require.Equal(t, c.shape, Shape(c.token), "shape of %q", c.token)
	}
}

func TestShapeKeepsRuneLength(t *testing.T) {
	for _, token := range []string{"USD100", "बजे", "a1+ ", "日本語42"} {
		require.Equal(t, len([]rune(token)), len([]rune(Shape(token))), "token %q", token)
	}
}

func TestDegenerate(t *testing.T) {
	cases := []struct {
		src string
		dst string
	}{
		{"UUUDDD", "UD"},
		{"UD", "UD"},
		{"", ""},
		{"aaa", "a"},
		{"aabbaa", "aba"},
		{"ULLLLL", "UL"},
	}
	for _, c := range cases {
		require.Equal(t, c.dst, Degenerate(c.src), "degenerate of %q", c.src)
	}
}

func TestDegenerateIdempotent(t *testing.T) {
	for _, src := range []string{"UUUDDD", "aabbaa", "", "x", "ULDULD", "झझझ"} {
		once := Degenerate(src)
		require.Equal(t, once, Degenerate(once), "source %q", src)
	}
}
