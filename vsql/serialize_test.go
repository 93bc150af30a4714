package vsql

import "testing"

func TestSerializeLiteral(t *testing.T) {
	n := MakeInt(42)
	s := Serialize(n)
	if s.NodeType != KindInt {
		t.Errorf("NodeType = %s, want %s", s.NodeType, KindInt)
	}
	if s.NodeValue != "42" {
		t.Errorf("NodeValue = %q, want %q", s.NodeValue, "42")
	}
	if s.ResultType != Int {
		t.Errorf("ResultType = %s, want Int", s.ResultType)
	}
	if s.Error != NoError {
		t.Errorf("Error = %s, want NoError", s.Error)
	}
	if len(s.Children) != 0 {
		t.Errorf("expected no children for a literal, got %d", len(s.Children))
	}
}

// TestSerializeRoundTripsChildOrder checks that serialising a tree
// preserves child visit order exactly, since
// a consumer reconstructs structure from the flat tuple form by trusting
// that order.
func TestSerializeRoundTripsChildOrder(t *testing.T) {
	left := MakeInt(1)
	right := MakeInt(2)
	table := coreTableForSerializeTest(t)
	n := MakeBinary(table, KindAdd, left, right)

	s := Serialize(n)
	if len(s.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(s.Children))
	}
	if s.Children[0].NodeValue != "1" || s.Children[1].NodeValue != "2" {
		t.Errorf("children out of order: %+v", s.Children)
	}
}

func TestSerializeFieldRefValue(t *testing.T) {
	env := Environment{"x": {Identifier: "x", Datatype: Int, FieldSQL: "x_col"}}
	n := MakeRootFieldRef(env, "x")
	s := Serialize(n)
	if s.NodeValue != "x" {
		t.Errorf("NodeValue = %q, want %q", s.NodeValue, "x")
	}
}

func TestDiagnosticStringReportsError(t *testing.T) {
	n := MakeRootFieldRef(Environment{}, "missing")
	got := DiagnosticString(n)
	want := `fieldref: FIELD in "missing"`
	if got != want {
		t.Errorf("DiagnosticString = %q, want %q", got, want)
	}
}

func TestDiagnosticStringReportsOK(t *testing.T) {
	n := MakeInt(1)
	got := DiagnosticString(n)
	want := "constint: ok (int)"
	if got != want {
		t.Errorf("DiagnosticString = %q, want %q", got, want)
	}
}

func coreTableForSerializeTest(t *testing.T) *RuleTable {
	t.Helper()
	b := NewRuleBuilder(NopLogger())
	if err := RegisterCoreRules(b); err != nil {
		t.Fatalf("RegisterCoreRules: %v", err)
	}
	return b.Freeze()
}
