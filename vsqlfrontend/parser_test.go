package vsqlfrontend

import (
	"errors"
	"testing"

	"github.com/ha1tch/vsql/vsql"
)

func TestParseAtoms(t *testing.T) {
	cases := []struct {
		src  string
		kind hostKind
	}{
		{"None", hkNone},
		{"True", hkBool},
		{"False", hkBool},
		{"42", hkInt},
		{"3.14", hkNumber},
		{"'hi'", hkStr},
		{"@(2024-01-01)", hkDate},
		{"@(2024-01-01T12:00:00)", hkDatetime},
		{"#fff", hkColor},
		{"{/}", hkEmptySet},
		{"x", hkName},
	}
	for _, c := range cases {
		n, err := Parse(c.src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.src, err)
		}
		if n.kind != c.kind {
			t.Errorf("Parse(%q).kind = %v, want %v", c.src, n.kind, c.kind)
		}
	}
}

func TestParseAttributeItemSlice(t *testing.T) {
	n, err := Parse("user.email")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.kind != hkAttr || n.name != "email" || n.receiver.kind != hkName {
		t.Errorf("unexpected tree for user.email: %+v", n)
	}

	n, err = Parse("a[1]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.kind != hkItem || len(n.args) != 1 {
		t.Errorf("unexpected tree for a[1]: %+v", n)
	}

	n, err = Parse("a[1:2]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.kind != hkSlice || len(n.args) != 2 || n.args[0] == nil || n.args[1] == nil {
		t.Errorf("unexpected tree for a[1:2]: %+v", n)
	}

	n, err = Parse("a[:2]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.kind != hkSlice || n.args[0] != nil || n.args[1] == nil {
		t.Errorf("unexpected tree for a[:2]: %+v", n)
	}
}

func TestParseCallShapes(t *testing.T) {
	n, err := Parse("f(1, 2)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.kind != hkCall || n.receiver.kind != hkName || len(n.args) != 2 {
		t.Errorf("unexpected tree for f(1, 2): %+v", n)
	}

	n, err = Parse("a.b(1)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.kind != hkCall || n.receiver.kind != hkAttr || len(n.args) != 1 {
		t.Errorf("unexpected tree for a.b(1): %+v", n)
	}
}

func TestParseTernaryAndPrecedence(t *testing.T) {
	n, err := Parse("1 if a else 2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.kind != hkIf || len(n.args) != 3 {
		t.Errorf("unexpected tree for ternary: %+v", n)
	}

	// "a or b and c" must parse as "a or (b and c)" (and binds tighter).
	n, err = Parse("a or b and c")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.kind != hkBinary || n.op != "or" {
		t.Fatalf("expected top-level or, got %+v", n)
	}
	right := n.args[1]
	if right.kind != hkBinary || right.op != "and" {
		t.Errorf("expected right operand to be an and-expression, got %+v", right)
	}
}

func TestParseListSetDisplay(t *testing.T) {
	n, err := Parse("[1, 2, 3]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.kind != hkList || len(n.items) != 3 {
		t.Errorf("unexpected tree for list display: %+v", n)
	}

	n, err = Parse("{1, 2}")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.kind != hkSet || len(n.items) != 2 {
		t.Errorf("unexpected tree for set display: %+v", n)
	}
}

func TestParseRejectsEmptyBraces(t *testing.T) {
	if _, err := Parse("{}"); err == nil {
		t.Error("expected {} to be rejected (ambiguous with empty mapping); use {/} instead")
	}
}

func TestParseRejectsKeywordArgument(t *testing.T) {
	_, err := Parse("f(x=1)")
	if err == nil {
		t.Fatal("expected keyword argument to be rejected")
	}
	var kwErr *vsql.KeywordArgumentError
	if !errors.As(err, &kwErr) {
		t.Errorf("expected *vsql.KeywordArgumentError, got %T: %v", err, err)
	}
}

func TestParseRejectsLambdaAndComprehension(t *testing.T) {
	cases := []string{
		"lambda x: x",
		"[x for x in y]",
		"{x for x in y}",
	}
	for _, src := range cases {
		_, err := Parse(src)
		if err == nil {
			t.Errorf("Parse(%q): expected rejection, got none", src)
			continue
		}
		var synErr *vsql.UnsupportedSyntaxError
		if !errors.As(err, &synErr) {
			t.Errorf("Parse(%q): expected *vsql.UnsupportedSyntaxError, got %T: %v", src, err, err)
		}
	}
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	if _, err := Parse("1 2"); err == nil {
		t.Error("expected trailing-input error for \"1 2\"")
	}
}
