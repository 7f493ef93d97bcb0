package command_test

import (
	"testing"

	"github.com/mn2tech/studiocmd/command"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty input", input: "", expected: nil},
		{name: "whitespace only", input: " \t\n ", expected: nil},
		{name: "single verb", input: "help", expected: []string{"help"}},
		{name: "verb and argument", input: "grain month", expected: []string{"grain", "month"}},
		{name: "runs of whitespace", input: "  grain \t  month  ", expected: []string{"grain", "month"}},
		{name: "comma inside double quotes", input: `theme "dark, blue"`, expected: []string{"theme", "dark, blue"}},
		{name: "single quotes keep spaces", input: `measure 'Total Sales'`, expected: []string{"measure", "Total Sales"}},
		{name: "irregular commas", input: "focus a, b ,c", expected: []string{"focus", "a", "b", "c"}},
		{name: "consecutive commas", input: "a,,,b", expected: []string{"a", "b"}},
		{name: "only commas", input: ", , ,", expected: nil},
		{name: "escaped quote inside quotes", input: `theme 'it\'s'`, expected: []string{"theme", "it's"}},
		{name: "escaped backslash", input: `time "a\\b"`, expected: []string{"time", `a\b`}},
		{name: "unterminated quote", input: `breakdown by "Sales Region`, expected: []string{"breakdown", "by", "Sales Region"}},
		{name: "empty quotes", input: `theme ""`, expected: []string{"theme", ""}},
		{name: "quote inside a word is literal", input: `ab"cd`, expected: []string{`ab"cd`}},
		{name: "quoted token followed by word", input: `"a b"c`, expected: []string{"a b", "c"}},
		{name: "unicode is preserved", input: "measure Größe", expected: []string{"measure", "Größe"}},
		{name: "invalid utf-8 is kept", input: "theme a\xffb", expected: []string{"theme", "a\xffb"}},
		{name: "invalid utf-8 inside quotes", input: "theme \"x\xfe y\"", expected: []string{"theme", "x\xfe y"}},
		{name: "byte order mark is whitespace", input: "\ufeffhelp", expected: []string{"help"}},
		{name: "byte order mark between tokens", input: "grain\ufeffmonth", expected: []string{"grain", "month"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, testCase.expected, command.Tokenize(testCase.input))
		})
	}
}

func TestTokenize_KeepsNonSeparatorCharacters(t *testing.T) {
	t.Parallel()

	input := "topn 20; add-map x=1 ☃"
	tokens := command.Tokenize(input)

	require.Equal(t, []string{"topn", "20;", "add-map", "x=1", "☃"}, tokens)
}
