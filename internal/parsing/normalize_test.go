package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"lowercases", "Python AND Django", "python and django"},
		{"collapses whitespace", "a   b\t\nc", "a b c"},
		{"keeps allowed punctuation", "skills: go, rust; more!", "skills: go, rust; more!"},
		{"replaces disallowed characters", "c++ & c# @home", "c c home"},
		{"keeps parentheses and hyphens", "(2015-2019)", "(2015-2019)"},
		{"trims edges", "  hello  ", "hello"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.input))
		})
	}
}

func TestNormalize_NeverPanicsOnArbitraryInput(t *testing.T) {
	inputs := []string{
		"\x00\x01\x02",
		"日本語テキスト",
		"emoji 🚀 résumé",
		string([]byte{0xff, 0xfe, 0xfd}),
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { _ = Normalize(in) })
	}
}
