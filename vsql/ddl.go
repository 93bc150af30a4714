package vsql

import (
	"fmt"
	"sort"
	"strings"
)

// DDLTableName is the Oracle table that stores one row per registered
// rule. Exported so a caller generating a full schema can reference it
// without string-matching GenerateDDL's output.
const DDLTableName = "vsql_rule"

// GenerateDDL walks table and emits the Oracle DDL that recreates its rule
// set: a CREATE TABLE statement plus a PL/SQL procedure that repopulates it
// (§6.2 "Outputs", §9 "Serialisation": "the rule-table DDL emitter... is a
// pure function over the in-memory rule table"). This reuses the shape of
// the storage package's generator/procedure pair -- walk an in-memory
// structure, emit DDL text -- but targets Oracle alone, since multi-dialect
// emission is out of scope for vSQL (§1 Non-goals).
func GenerateDDL(table *RuleTable) string {
	var b strings.Builder
	writeCreateTable(&b)
	b.WriteString("\n")
	writeRegenerationProcedure(&b, table)
	return b.String()
}

func writeCreateTable(b *strings.Builder) {
	fmt.Fprintf(b, "create table %s (\n", DDLTableName)
	b.WriteString("  rule_kind      varchar2(32) not null,\n")
	b.WriteString("  rule_name      varchar2(64),\n")
	b.WriteString("  rule_key       varchar2(400) not null,\n")
	b.WriteString("  result_type    varchar2(32) not null,\n")
	b.WriteString("  source_template varchar2(4000) not null,\n")
	fmt.Fprintf(b, "  constraint pk_%s primary key (rule_kind, rule_key)\n", DDLTableName)
	b.WriteString(");\n")
}

func writeRegenerationProcedure(b *strings.Builder, table *RuleTable) {
	b.WriteString("create or replace procedure vsql_rule_regenerate as\n")
	b.WriteString("begin\n")
	fmt.Fprintf(b, "  delete from %s;\n", DDLTableName)
	for _, row := range sortedRows(table) {
		fmt.Fprintf(b, "  insert into %s (rule_kind, rule_name, rule_key, result_type, source_template) values (%s, %s, %s, %s, %s);\n",
			DDLTableName,
			sqlStringLiteral(string(row.Kind)),
			nullableStringLiteral(row.Name),
			sqlStringLiteral(row.Key()),
			sqlStringLiteral(row.Result.String()),
			sqlStringLiteral(templateSource(row.Template)))
	}
	b.WriteString("  commit;\n")
	b.WriteString("end vsql_rule_regenerate;\n")
}

func nullableStringLiteral(s string) string {
	if s == "" {
		return "null"
	}
	return sqlStringLiteral(s)
}

// templateSource reconstitutes an approximation of the original template
// string from its tokenised form, for DDL round-tripping / auditing. It
// need not byte-for-byte match the authoring string (whitespace around
// literals may differ); it only has to re-tokenise to the same token
// sequence, which GenerateDDL's consumers rely on for regeneration, not
// for display fidelity.
func templateSource(tokens []templateToken) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.operand == 0 {
			b.WriteString(t.literal)
			continue
		}
		if t.isTypeRef {
			fmt.Fprintf(&b, "{t%d}", t.operand)
		} else {
			fmt.Fprintf(&b, "{s%d}", t.operand)
		}
	}
	return b.String()
}

// sortedRows returns every registered rule in a deterministic order
// (kind, then key) so GenerateDDL's output is stable across runs for the
// same RuleTable -- important for diffing regenerated DDL in CI.
func sortedRows(table *RuleTable) []*Rule {
	var rows []*Rule
	for _, byKey := range table.rules {
		for _, r := range byKey {
			rows = append(rows, r)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Kind != rows[j].Kind {
			return rows[i].Kind < rows[j].Kind
		}
		return rows[i].Key() < rows[j].Key()
	})
	return rows
}
