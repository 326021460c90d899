package oscript

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func readAllTokens(input string) []LexerToken {
	l := NewLexer(input)
	var tokens []LexerToken
	for {
		tk := l.NextToken()
		tokens = append(tokens, tk)
		if tk.Type == TokenEOF {
			break
		}
	}
	return tokens
}

func TestLexEmptyString(t *testing.T) {
	input := ""
	want := []LexerToken{{Type: TokenEOF, Literal: ""}}
	got := readAllTokens(input)
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("token mismatch (-got +want):\n%s", diff)
	}
}

func TestLexScientificNotation(t *testing.T) {
	for _, input := range []string{
		"1e-3",
		"1e+3",
		"1.0e-4",
		"1.0e+53",
	} {
		want := []LexerToken{
			{Type: TokenFloat, Literal: input},
			{Type: TokenEOF, Literal: ""},
		}
		got := readAllTokens(input)
		if diff := cmp.Diff(got, want); diff != "" {
			t.Errorf("token mismatch (-got +want):\n%s", diff)
		}
	}
}

func TestIllegalStringEscape(t *testing.T) {
	input := `"\a"`
	want := []LexerToken{
		{Type: TokenIllegal, Literal: `\a`},
		{Type: TokenEOF, Literal: ""},
	}

	got := readAllTokens(input)

	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("token mismatch (-got +want):\n%s", diff)
	}
}

func TestLexExamples(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []LexerToken
	}{
		{
			name:  "MirroredSpheres",
			input: TestdataMirroredSpheres,
			want: []LexerToken{
				{Type: TokenFloat, Literal: "5.0"},
				{Type: TokenIdent, Literal: "mirror"},
				{Type: TokenIdent, Literal: "sphere"},
				{Type: TokenBinder, Literal: "/s"},
				{Type: TokenIdent, Literal: "s"},
				{Type: TokenFloat, Literal: "-1.2"},
				{Type: TokenFloat, Literal: "0.0"},
				{Type: TokenFloat, Literal: "3.0"},
				{Type: TokenIdent, Literal: "translate"},
				{Type: TokenIdent, Literal: "s"},
				{Type: TokenFloat, Literal: "1.2"},
				{Type: TokenFloat, Literal: "1.0"},
				{Type: TokenFloat, Literal: "3.0"},
				{Type: TokenIdent, Literal: "translate"},
				{Type: TokenIdent, Literal: "union"},
				{Type: TokenBinder, Literal: "/assembly"},
				{Type: TokenIdent, Literal: "assembly"},
				{Type: TokenFloat, Literal: "-20.0"},
				{Type: TokenFloat, Literal: "0.0"},
				{Type: TokenFloat, Literal: "0.0"},
				{Type: TokenFloat, Literal: "1.0"},
				{Type: TokenFloat, Literal: "0.0"},
				{Type: TokenFloat, Literal: "0.0"},
				{Type: TokenIdent, Literal: "ray"},
				{Type: TokenString, Literal: "sphere.path"},
				{Type: TokenIdent, Literal: "trace"},
				{Type: TokenLCurly, Literal: "{"},
				{Type: TokenRCurly, Literal: "}"},
				{Type: TokenLBracket, Literal: "["},
				{Type: TokenRBracket, Literal: "]"},
				{Type: TokenBinder, Literal: "/ident"},
				{Type: TokenBoolean, Literal: "true"},
				{Type: TokenBoolean, Literal: "false"},
				{Type: TokenInt, Literal: "123"},
				{Type: TokenFloat, Literal: "1.23"},
				{Type: TokenString, Literal: "hello"},
				{Type: TokenEOF, Literal: ""},
			},
		},
		{
			name:  "WedgeAssembly",
			input: TestdataWedgeAssembly,
			want: []LexerToken{
				{Type: TokenFloat, Literal: "1.0"},
				{Type: TokenFloat, Literal: "0.5"},
				{Type: TokenFloat, Literal: "0.5"},
				{Type: TokenIdent, Literal: "point"},
				{Type: TokenBinder, Literal: "/tint"},
				{Type: TokenFloat, Literal: "1.0"},
				{Type: TokenIdent, Literal: "glass"},
				{Type: TokenIdent, Literal: "box"},
				{Type: TokenBinder, Literal: "/block"},
				{Type: TokenIdent, Literal: "block"},
				{Type: TokenFloat, Literal: "0.0"},
				{Type: TokenFloat, Literal: "-0.5"},
				{Type: TokenFloat, Literal: "4.0"},
				{Type: TokenIdent, Literal: "translate"},
				{Type: TokenBinder, Literal: "/block"},
				{Type: TokenFloat, Literal: "2.0"},
				{Type: TokenFloat, Literal: "45.0"},
				{Type: TokenIdent, Literal: "glass"},
				{Type: TokenIdent, Literal: "wedge"},
				{Type: TokenBinder, Literal: "/prism"},
				{Type: TokenIdent, Literal: "block"},
				{Type: TokenIdent, Literal: "prism"},
				{Type: TokenIdent, Literal: "difference"},
				{Type: TokenBinder, Literal: "/result"},
				{Type: TokenIdent, Literal: "result"},
				{Type: TokenFloat, Literal: "-10.0"},
				{Type: TokenFloat, Literal: "10.0"},
				{Type: TokenFloat, Literal: "0.0"},
				{Type: TokenFloat, Literal: "1.0"},
				{Type: TokenFloat, Literal: "0.0"},
				{Type: TokenFloat, Literal: "0.0"},
				{Type: TokenIdent, Literal: "ray"},
				{Type: TokenString, Literal: "box.path"},
				{Type: TokenIdent, Literal: "trace"},
				{Type: TokenEOF, Literal: ""},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := readAllTokens(tt.input)
			if diff := cmp.Diff(got, tt.want); diff != "" {
				t.Errorf("token mismatch (-got +want):\n%s", diff)
			}
		})
	}
}
