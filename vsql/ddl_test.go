package vsql

import (
	"strings"
	"testing"
)

func TestGenerateDDLContainsCreateTableAndProcedure(t *testing.T) {
	b := NewRuleBuilder(NopLogger())
	if err := RegisterCoreRules(b); err != nil {
		t.Fatalf("RegisterCoreRules: %v", err)
	}
	table := b.Freeze()

	ddl := GenerateDDL(table)
	if !strings.Contains(ddl, "create table "+DDLTableName) {
		t.Error("expected a CREATE TABLE statement for DDLTableName")
	}
	if !strings.Contains(ddl, "create or replace procedure vsql_rule_regenerate") {
		t.Error("expected the regeneration procedure")
	}
	if !strings.Contains(ddl, "delete from "+DDLTableName) {
		t.Error("expected the procedure to clear the table before reinserting")
	}
	if strings.Count(ddl, "insert into "+DDLTableName) != table.RuleCount() {
		t.Errorf("expected one insert per registered rule (%d), got %d",
			table.RuleCount(), strings.Count(ddl, "insert into "+DDLTableName))
	}
}

func TestGenerateDDLIsDeterministic(t *testing.T) {
	b := NewRuleBuilder(NopLogger())
	if err := RegisterCoreRules(b); err != nil {
		t.Fatalf("RegisterCoreRules: %v", err)
	}
	table := b.Freeze()

	first := GenerateDDL(table)
	second := GenerateDDL(table)
	if first != second {
		t.Error("GenerateDDL must be deterministic across calls against the same table")
	}
}

func TestSortedRowsOrdersByKindThenKey(t *testing.T) {
	b := NewRuleBuilder(NopLogger())
	if err := b.AddRules(KindAdd, "INT <- INT + INT", "({s1} + {s2})"); err != nil {
		t.Fatalf("AddRules: %v", err)
	}
	if err := b.AddRules(KindSub, "INT <- INT - INT", "({s1} - {s2})"); err != nil {
		t.Fatalf("AddRules: %v", err)
	}
	table := b.Freeze()

	rows := sortedRows(table)
	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		if prev.Kind > cur.Kind || (prev.Kind == cur.Kind && prev.Key() > cur.Key()) {
			t.Fatalf("rows not sorted: %s/%s before %s/%s", prev.Kind, prev.Key(), cur.Kind, cur.Key())
		}
	}
}
