package vsqlfrontend

import (
	"strings"
	"testing"

	"github.com/ha1tch/vsql/vsql"
	"github.com/ha1tch/vsql/vsqlfixture"
)

func compile(t *testing.T, src string, env vsql.Environment, table *vsql.RuleTable) *vsql.Node {
	t.Helper()
	n, err := Compile(src, env, table)
	if err != nil {
		t.Fatalf("Compile(%q): %v", src, err)
	}
	return n
}

func coreTable(t *testing.T) *vsql.RuleTable {
	t.Helper()
	b := vsql.NewRuleBuilder(vsql.NopLogger())
	if err := vsql.RegisterCoreRules(b); err != nil {
		t.Fatalf("RegisterCoreRules: %v", err)
	}
	return b.Freeze()
}

func TestCompileFieldRefChain(t *testing.T) {
	env := vsqlfixture.TrivialSelect()
	table := coreTable(t)

	n := compile(t, "user.email", env, table)
	if n.Kind != vsql.KindFieldRef {
		t.Fatalf("expected a FieldRef, got %s", n.Kind)
	}
	if n.Identifier() != "user.email" {
		t.Errorf("Identifier() = %q, want %q", n.Identifier(), "user.email")
	}
	if n.Error != vsql.NoError {
		t.Errorf("unexpected error: %s", n.Error)
	}
}

func TestCompileAutoJoinChain(t *testing.T) {
	env := vsqlfixture.AutoJoin()
	table := coreTable(t)

	n := compile(t, "r.v_parent.v_name", env, table)
	if n.Kind != vsql.KindFieldRef {
		t.Fatalf("expected a FieldRef, got %s", n.Kind)
	}
	if n.Identifier() != "r.v_parent.v_name" {
		t.Errorf("Identifier() = %q, want %q", n.Identifier(), "r.v_parent.v_name")
	}
}

func TestCompileUnresolvedName(t *testing.T) {
	env := vsqlfixture.TrivialSelect()
	table := coreTable(t)

	n := compile(t, "nosuchfield", env, table)
	if n.Error != vsql.Field {
		t.Errorf("expected Error = Field for an unresolved name, got %s", n.Error)
	}
}

func TestCompileBinaryAndTernary(t *testing.T) {
	env := vsqlfixture.TrivialSelect()
	table := coreTable(t)

	n := compile(t, "1 + 2", env, table)
	if n.Kind != vsql.KindAdd {
		t.Errorf("expected KindAdd, got %s", n.Kind)
	}

	n = compile(t, "1 if True else 2", env, table)
	if n.Kind != vsql.KindIf {
		t.Errorf("expected KindIf, got %s", n.Kind)
	}
}

func TestCompileFunctionCallBypassesFieldLookup(t *testing.T) {
	env := vsqlfixture.TrivialSelect()
	table := coreTable(t)

	// "user" resolves to a field in env, but as a call target it must be
	// read as a bare function name -- the callee's host shape decides,
	// never a prior field/env lookup for that identifier (§4.3).
	n, err := Compile("user(1)", env, table)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if n.Kind != vsql.KindFunc {
		t.Errorf("expected KindFunc, got %s", n.Kind)
	}
}

func TestCompileMethodCall(t *testing.T) {
	env := vsqlfixture.TrivialSelect()
	table := coreTable(t)

	n, err := Compile("user.email.upper()", env, table)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if n.Kind != vsql.KindMeth {
		t.Errorf("expected KindMeth, got %s", n.Kind)
	}
	if !strings.Contains(n.SourceText, "upper") {
		t.Errorf("expected SourceText to mention upper(), got %q", n.SourceText)
	}
}
