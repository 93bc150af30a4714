package vsql

import "testing"

func TestExpandSpecUnionProduct(t *testing.T) {
	expansions, name, err := expandSpec("BOOL <- INT_NUMBER == INT_NUMBER")
	if err != nil {
		t.Fatalf("expandSpec: %v", err)
	}
	if name != "" {
		t.Errorf("expected no name for an operator spec, got %q", name)
	}
	if len(expansions) != 4 {
		t.Fatalf("expected 2x2 = 4 expansions, got %d", len(expansions))
	}
	for _, e := range expansions {
		if e.result != Bool {
			t.Errorf("expected result Bool, got %s", e.result)
		}
	}
}

func TestExpandSpecName(t *testing.T) {
	_, name, err := expandSpec("INT <- int STR")
	if err != nil {
		t.Fatalf("expandSpec: %v", err)
	}
	if name != "int" {
		t.Errorf("name = %q, want %q", name, "int")
	}
}

func TestExpandSpecBackref(t *testing.T) {
	expansions, _, err := expandSpec("BOOL <- STR_CLOB == T2")
	if err != nil {
		t.Fatalf("expandSpec: %v", err)
	}
	if len(expansions) != 2 {
		t.Fatalf("expected 2 expansions (one per union member), got %d", len(expansions))
	}
	for _, e := range expansions {
		if e.operands[0] != e.operands[1] {
			t.Errorf("backref T2 should force operand[1] == operand[0], got %s vs %s", e.operands[0], e.operands[1])
		}
	}
}

func TestExpandSpecBackrefToBackrefIsFatal(t *testing.T) {
	// Slots count the result as 1, so here slot 3 (T2) is a backref and
	// slot 4 (T3) refers to it.
	_, _, err := expandSpec("BOOL <- STR == T2 == T3")
	if err == nil {
		t.Fatal("expected error for a backreference resolving to another backreference")
	}
}

func TestExpandSpecBackrefOutOfRange(t *testing.T) {
	_, _, err := expandSpec("BOOL <- STR == T5")
	if err == nil {
		t.Fatal("expected error for an out-of-range backreference")
	}
}

func TestExpandSpecUnknownDatatype(t *testing.T) {
	_, _, err := expandSpec("BOOL <- NOTATYPE == STR")
	if err == nil {
		t.Fatal("expected error for an unknown datatype token")
	}
}

func TestExpandSpecIsIdempotentAcrossCalls(t *testing.T) {
	// §8 invariant 3: registering the exact same spec twice must expand to
	// the same set of (result, operands) tuples both times, so that
	// RuleBuilder's dedup-by-Key logic sees true duplicates, not
	// accidental near-misses from nondeterministic map iteration.
	spec := "BOOL <- INT_NUMBER_STR == INT_NUMBER_STR"
	first, _, err := expandSpec(spec)
	if err != nil {
		t.Fatalf("expandSpec: %v", err)
	}
	second, _, err := expandSpec(spec)
	if err != nil {
		t.Fatalf("expandSpec: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("expansion count differs across calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].result != second[i].result || len(first[i].operands) != len(second[i].operands) {
			t.Fatalf("expansion %d differs across calls: %+v vs %+v", i, first[i], second[i])
		}
		for j := range first[i].operands {
			if first[i].operands[j] != second[i].operands[j] {
				t.Fatalf("expansion %d operand %d differs across calls: %s vs %s", i, j, first[i].operands[j], second[i].operands[j])
			}
		}
	}
}

func TestAddRulesDropsDuplicates(t *testing.T) {
	b := NewRuleBuilder(NopLogger())
	if err := b.AddRules(KindAdd, "INT <- INT + INT", "({s1} + {s2})"); err != nil {
		t.Fatalf("AddRules: %v", err)
	}
	if err := b.AddRules(KindAdd, "INT <- INT + INT", "({s1} + {s2} + 0)"); err != nil {
		t.Fatalf("AddRules (duplicate): %v", err)
	}
	table := b.Freeze()
	rule, found := table.Lookup(KindAdd, "", []DataType{Int, Int})
	if !found {
		t.Fatal("expected the rule to be registered")
	}
	if len(rule.Template) == 0 {
		t.Fatal("expected a non-empty template")
	}
	// The first registration wins; the duplicate's template never applies.
	got := templateSource(rule.Template)
	if got == "({s1} + {s2} + 0)" {
		t.Error("expected the second AddRules call to be dropped as a duplicate, not to overwrite the first")
	}
}
