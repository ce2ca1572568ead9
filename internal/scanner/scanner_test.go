package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqlkit/gqlkit/internal/scanner"
)

func TestScanTokens(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		input    string
		expected []string
		err      string
	}{
		{"empty", "", []string{`{Type: EOF, Lexeme: "", Literal: <nil>, Pos: 1:1}`}, ""},
		{"syntax error", "⌘", nil, "[line 1] Error: Unexpected character. '⌘'"},
		{
			"punctuators",
			"[]{}:",
			[]string{
				`{Type: LEFT_BRACKET, Lexeme: "[", Literal: <nil>, Pos: 1:1}`,
				`{Type: RIGHT_BRACKET, Lexeme: "]", Literal: <nil>, Pos: 1:2}`,
				`{Type: LEFT_BRACE, Lexeme: "{", Literal: <nil>, Pos: 1:3}`,
				`{Type: RIGHT_BRACE, Lexeme: "}", Literal: <nil>, Pos: 1:4}`,
				`{Type: COLON, Lexeme: ":", Literal: <nil>, Pos: 1:5}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Pos: 1:6}`,
			},
			"",
		},
		{
			"int",
			"42",
			[]string{
				`{Type: INT, Lexeme: "42", Literal: 42, Pos: 1:1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Pos: 1:3}`,
			},
			"",
		},
		{
			"negative int",
			"-7",
			[]string{
				`{Type: INT, Lexeme: "-7", Literal: -7, Pos: 1:1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Pos: 1:3}`,
			},
			"",
		},
		{
			"float",
			"3.14",
			[]string{
				`{Type: FLOAT, Lexeme: "3.14", Literal: 3.14, Pos: 1:1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Pos: 1:5}`,
			},
			"",
		},
		{
			"float exponent",
			"1e3",
			[]string{
				`{Type: FLOAT, Lexeme: "1e3", Literal: 1000, Pos: 1:1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Pos: 1:4}`,
			},
			"",
		},
		{
			"float signed exponent",
			"2.5e-1",
			[]string{
				`{Type: FLOAT, Lexeme: "2.5e-1", Literal: 0.25, Pos: 1:1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Pos: 1:7}`,
			},
			"",
		},
		{
			"string",
			`"hi"`,
			[]string{
				`{Type: STRING, Lexeme: "\"hi\"", Literal: "hi", Pos: 1:1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Pos: 1:5}`,
			},
			"",
		},
		{
			"keywords",
			"true false null",
			[]string{
				`{Type: TRUE, Lexeme: "true", Literal: <nil>, Pos: 1:1}`,
				`{Type: FALSE, Lexeme: "false", Literal: <nil>, Pos: 1:6}`,
				`{Type: NULL, Lexeme: "null", Literal: <nil>, Pos: 1:12}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Pos: 1:16}`,
			},
			"",
		},
		{
			"enum name",
			"RED",
			[]string{
				`{Type: NAME, Lexeme: "RED", Literal: <nil>, Pos: 1:1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Pos: 1:4}`,
			},
			"",
		},
		{
			"variable",
			"$id",
			[]string{
				`{Type: VARIABLE, Lexeme: "$id", Literal: "id", Pos: 1:1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Pos: 1:4}`,
			},
			"",
		},
		{
			"commas are whitespace",
			"[1, 2]",
			[]string{
				`{Type: LEFT_BRACKET, Lexeme: "[", Literal: <nil>, Pos: 1:1}`,
				`{Type: INT, Lexeme: "1", Literal: 1, Pos: 1:2}`,
				`{Type: INT, Lexeme: "2", Literal: 2, Pos: 1:5}`,
				`{Type: RIGHT_BRACKET, Lexeme: "]", Literal: <nil>, Pos: 1:6}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Pos: 1:7}`,
			},
			"",
		},
		{
			"comment",
			"# comment\n42",
			[]string{
				`{Type: INT, Lexeme: "42", Literal: 42, Pos: 2:1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Pos: 2:3}`,
			},
			"",
		},
		{"int overflow", "2147483648", nil, "[line 1] Error: Integer out of 32-bit range."},
		{"unterminated string", `"abc`, nil, "[line 1] Error: Unterminated string."},
		{"newline in string", "\"ab\nc\"", nil, "[line 1] Error: Unterminated string."},
		{"invalid escape", `"a\qb"`, nil, "[line 1] Error: Invalid escape sequence. 'q'"},
		{"bare dollar", "$ ", nil, "[line 1] Error: Expected variable name after '$'."},
		{"bare minus", "-x", nil, "[line 1] Error: Invalid number."},
		{"dangling exponent", "1e", nil, "[line 1] Error: Invalid number."},
		{"unexpected character", "@", nil, "[line 1] Error: Unexpected character. '@'"},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tokens, err := scanner.NewScanner(tc.input).Scan()
			if tc.err != "" {
				require.EqualError(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			var actual []string
			for _, tok := range tokens {
				actual = append(actual, tok.GoString())
			}
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestScanStringEscapes(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		input    string
		expected string
	}{
		{"quote and backslash", `"a\"b\\c"`, `a"b\c`},
		{"control characters", `"a\nb\tc\rd\be\ff"`, "a\nb\tc\rd\be\ff"},
		{"solidus", `"a\/b"`, "a/b"},
		{"unicode escape", `"\u0041\u2603"`, "A☃"},
		{"unicode passthrough", `"A☃"`, "A☃"},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tokens, err := scanner.NewScanner(tc.input).Scan()
			require.NoError(t, err)
			require.Len(t, tokens, 2)
			assert.Equal(t, tc.expected, tokens[0].Literal)
		})
	}
}
