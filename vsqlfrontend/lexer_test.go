package vsqlfrontend

import "testing"

func TestLexKinds(t *testing.T) {
	cases := []struct {
		src  string
		want []tokenKind
	}{
		{"user.email", []tokenKind{tokName, tokDot, tokName, tokEOF}},
		{"1 + 2", []tokenKind{tokInt, tokPlus, tokInt, tokEOF}},
		{"1.5e2", []tokenKind{tokNumber, tokEOF}},
		{"a == b and not c", []tokenKind{tokName, tokEq, tokName, tokAnd, tokNot, tokName, tokEOF}},
		{"a not in b", []tokenKind{tokName, tokNot, tokIn, tokName, tokEOF}},
		{"a is not None", []tokenKind{tokName, tokIs, tokNot, tokNone, tokEOF}},
		{"f(1, 2)", []tokenKind{tokName, tokLParen, tokInt, tokComma, tokInt, tokRParen, tokEOF}},
		{"a[1:2]", []tokenKind{tokName, tokLBracket, tokInt, tokColon, tokInt, tokRBracket, tokEOF}},
		{"{/}", []tokenKind{tokEmptySet, tokEOF}},
		{"#fff", []tokenKind{tokColor, tokEOF}},
		{"@(2024-01-01)", []tokenKind{tokDate, tokEOF}},
		{"@(2024-01-01T12:00:00)", []tokenKind{tokDatetime, tokEOF}},
		{"'hi'", []tokenKind{tokStr, tokEOF}},
	}
	for _, c := range cases {
		tokens, err := lex(c.src)
		if err != nil {
			t.Fatalf("lex(%q): %v", c.src, err)
		}
		if len(tokens) != len(c.want) {
			t.Fatalf("lex(%q): got %d tokens, want %d", c.src, len(tokens), len(c.want))
		}
		for i, k := range c.want {
			if tokens[i].kind != k {
				t.Errorf("lex(%q): token %d kind = %v, want %v", c.src, i, tokens[i].kind, k)
			}
		}
	}
}

func TestLexStringEscapes(t *testing.T) {
	tokens, err := lex(`'it\'s a \\test\n'`)
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	got := tokens[0].strVal
	want := "it's a \\test\n"
	if got != want {
		t.Errorf("strVal = %q, want %q", got, want)
	}
}

func TestLexColorDigitCounts(t *testing.T) {
	valid := []string{"#fff", "#ffff", "#ffffff", "#ffffffff"}
	for _, src := range valid {
		if _, err := lex(src); err != nil {
			t.Errorf("lex(%q): unexpected error: %v", src, err)
		}
	}
	if _, err := lex("#ff"); err == nil {
		t.Errorf("lex(%q): expected error for bad digit count", "#ff")
	}
}

func TestLexUnterminatedString(t *testing.T) {
	if _, err := lex(`'unterminated`); err == nil {
		t.Error("expected error for unterminated string literal")
	}
}

func TestLexUnexpectedCharacter(t *testing.T) {
	if _, err := lex("a $ b"); err == nil {
		t.Error("expected error for unexpected character")
	}
}
