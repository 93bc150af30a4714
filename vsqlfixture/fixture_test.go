package vsqlfixture

import (
	"strings"
	"testing"

	"github.com/ha1tch/vsql/vsql"
)

// TestTrivialSelect reproduces SPEC_FULL.md §8 end-to-end scenario 1: a
// single select/orderby/orderby against the "user" environment must join
// exactly one table, reusing its alias across every leaf field.
func TestTrivialSelect(t *testing.T) {
	env := TrivialSelect()

	userRef := vsql.MakeRootFieldRef(env, "user")
	emailRef := vsql.MakeFieldRef(userRef, env["user"].RefGroup, "email")
	firstnameRef := vsql.MakeFieldRef(userRef, env["user"].RefGroup, "firstname")
	surnameRef := vsql.MakeFieldRef(userRef, env["user"].RefGroup, "surname")

	table := vsql.NewRuleBuilder(vsql.NopLogger()).Freeze()
	q := vsql.NewQuery(table, "", nil)
	q.Select(emailRef)
	q.OrderBy(firstnameRef, "asc", "")
	q.OrderBy(surnameRef, "desc", "")

	got := q.SQLSource("  ")

	wantLines := []string{
		"t1.ide_account /* user.email */",
		"identity t1 /* user */",
		"<global-user-sql> = t1.ide_id(+) /* user */",
		"t1.ide_firstname /* user.firstname */ asc",
		"t1.ide_surname /* user.surname */ desc",
	}
	for _, want := range wantLines {
		if !strings.Contains(got, want) {
			t.Errorf("SQLSource() missing %q, got:\n%s", want, got)
		}
	}
	if strings.Count(got, "identity t") != 1 {
		t.Errorf("expected exactly one identity join, got:\n%s", got)
	}
}

// TestAutoJoin reproduces SPEC_FULL.md §8 end-to-end scenario 5: chaining
// through a self-referential applookup field must allocate two distinct
// aliases and link them with one join predicate.
func TestAutoJoin(t *testing.T) {
	env := AutoJoin()
	builder := vsql.NewRuleBuilder(vsql.NopLogger())
	if err := vsql.RegisterCoreRules(builder); err != nil {
		t.Fatalf("RegisterCoreRules: %v", err)
	}
	table := builder.Freeze()

	r := vsql.MakeRootFieldRef(env, "r")
	vParent := vsql.MakeFieldRef(r, env["r"].RefGroup, "v_parent")
	vName := vsql.MakeFieldRef(vParent, vParent.Field.RefGroup, "v_name")

	eq := vsql.MakeBinary(table, vsql.KindEQ, vName, vsql.MakeStr("Science"))
	if eq.Error != vsql.NoError {
		t.Fatalf("r.v_parent.v_name == 'Science' failed to validate: %s", eq.Error)
	}

	q := vsql.NewQuery(table, "", nil)
	q.Where(eq)

	got := q.SQLSource("  ")

	if !strings.Contains(got, "dat_science t1") {
		t.Errorf("expected alias t1 to be registered, got:\n%s", got)
	}
	if !strings.Contains(got, "t2.dat_name") {
		t.Errorf("expected leaf to reference t2.dat_name, got:\n%s", got)
	}
	if !strings.Contains(got, "t1.fk_parent = t2.dat_id(+)") {
		t.Errorf("expected join predicate t1.fk_parent = t2.dat_id(+), got:\n%s", got)
	}
	if strings.Count(got, "dat_science t") != 2 {
		t.Errorf("expected exactly two dat_science joins, got:\n%s", got)
	}
}
