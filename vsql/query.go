package vsql

import (
	"context"
	"fmt"
	"strings"
)

// entry is one accumulated SELECT/FROM/WHERE/ORDER BY fragment: its
// rendered SQL text and the AST node it was derived from, whose source
// text becomes the trailing "/* ... */" comment (§4.4) when the clause is
// rendered.
type entry struct {
	sql    string
	origin *Node
}

// orderByEntry additionally carries sort direction and null ordering.
type orderByEntry struct {
	entry
	direction string
	nulls     string
}

// Query accumulates the SELECT/FROM/WHERE/ORDER BY state for one emitted
// statement (§4.5). It is not safe for concurrent use: build one Query per
// statement on a single goroutine, the way the source builds one query
// object per host-template SQL expression.
//
// Query itself operates on already-compiled *Node trees; the source-string
// entry points named by spec.md §4.5 (`select(*exprs)`, `where(*exprs)`,
// `orderby(expr, direction?, nulls?)`, each parsing against a stored
// variable environment) live one layer up in vsqlfrontend.Query, since
// parsing a vSQL source string requires vsqlfrontend, and vsqlfrontend
// already imports this package -- vsql itself cannot depend back on its
// own frontend. vsqlfrontend.Query wraps a Query and supplies the missing
// Environment.
type Query struct {
	table   *RuleTable
	logger  Logger
	comment string

	selectOrder []string
	selectByKey map[string]bool

	fromOrder []string
	fromByKey map[string]bool

	whereOrder []string
	whereByKey map[string]bool

	orderBy []orderByEntry

	// aliasOf maps a FieldRef's dotted Identifier() to the table alias
	// already registered for it, so re-traversing the same path (e.g. two
	// select expressions both reaching through r.v_parent) contributes
	// exactly one FROM entry (§8 Testable Property 5).
	aliasOf   map[string]string
	nextAlias int
}

// NewQuery creates an empty Query against table. comment, if non-empty, is
// rendered as a leading "/* comment */" line by SQLSource, matching the
// source's `Query.__init__(self, comment=None, **vars)`. A nil logger is
// replaced with NopLogger().
func NewQuery(table *RuleTable, comment string, logger Logger) *Query {
	if logger == nil {
		logger = NopLogger()
	}
	return &Query{
		table:       table,
		logger:      logger,
		comment:     comment,
		selectByKey: make(map[string]bool),
		fromByKey:   make(map[string]bool),
		whereByKey:  make(map[string]bool),
		aliasOf:     make(map[string]string),
	}
}

// Select adds expr to the SELECT list. A node carrying an error is not
// added -- strict mode (§4.6/§7, §8 scenario 3) refuses to register a
// broken expression rather than silently emit wrong SQL, but callers are
// still free to inspect or serialise the rejected node for diagnostics.
func (q *Query) Select(expr *Node) *Query {
	if !q.requireValid(expr) {
		return q
	}
	text := emitSQL(q, expr)
	q.addEntry(&q.selectOrder, q.selectByKey, entry{sql: text, origin: expr})
	return q
}

// Where adds expr to the WHERE list, ANDed with any existing predicates.
// A non-bool expr is wrapped with the vSQL bool() builtin and compared
// against the backend's truthy literal (1), since every SQL predicate
// position here expects the 0/1 boolean encoding used throughout emission
// (§4.4 "Boolean literals").
func (q *Query) Where(expr *Node) *Query {
	if !q.requireValid(expr) {
		return q
	}
	target := expr
	if expr.Datatype != Bool {
		target = MakeFunc(q.table, "bool", []*Node{expr})
		if !q.requireValid(target) {
			return q
		}
	}
	text := emitSQL(q, target)
	if target != expr {
		text = fmt.Sprintf("%s = 1", text)
	}
	q.addEntry(&q.whereOrder, q.whereByKey, entry{sql: text, origin: expr})
	return q
}

// OrderBy appends expr to the ORDER BY list. direction is "asc", "desc", or
// "" (no explicit direction, which SQL treats as ascending); nulls is
// "first", "last", or "" (backend default), matching the source's
// `orderby(expr, direction=None, nulls=None)`.
func (q *Query) OrderBy(expr *Node, direction, nulls string) *Query {
	if !q.requireValid(expr) {
		return q
	}
	text := emitSQL(q, expr)
	q.orderBy = append(q.orderBy, orderByEntry{
		entry:     entry{sql: text, origin: expr},
		direction: direction,
		nulls:     nulls,
	})
	return q
}

// requireValid reports whether n is clean (Error == NoError). A broken
// node is logged and skipped rather than panicking -- per §4.6 the
// compiler is intentionally total, and an invalid-but-constructible node
// reaching the query builder is an ordinary failure, not a programmer
// mistake that warrants aborting the whole query.
func (q *Query) requireValid(n *Node) bool {
	if n.Error == NoError {
		return true
	}
	q.logger.Debug(context.Background(), "vsql: query builder refused an invalid node under strict mode",
		"error", n.Error, "source", n.Source())
	return false
}

func (q *Query) addEntry(order *[]string, seen map[string]bool, e entry) {
	rendered := render(e)
	if seen[e.sql] {
		return
	}
	seen[e.sql] = true
	*order = append(*order, rendered)
}

func render(e entry) string {
	return fmt.Sprintf("%s /* %s */", e.sql, e.origin.Source())
}

// registerJoin implements the auto-join algorithm of §4.5. It is called
// with p set to the FieldRef node whose own RefGroup is about to be
// entered -- NOT the leaf being emitted. Every leaf hanging directly off
// the same p (e.g. user.email and user.firstname both hang off the
// "user" node) shares the single join registered for p, which is why
// dedup is keyed by p's own dotted identifier rather than the leaf's.
// Returns the table alias to qualify children of p with, or "" if p
// needs no alias (a root reference, or a field reached through a
// virtual, table-less group).
func registerJoin(q *Query, p *Node) string {
	if p.Error != NoError {
		return ""
	}
	ident := p.Identifier()
	if alias, ok := q.aliasOf[ident]; ok {
		return alias
	}

	masterAlias := ""
	if p.Parent != nil {
		masterAlias = registerJoin(q, p.Parent)
	}

	q.nextAlias++
	alias := fmt.Sprintf("t%d", q.nextAlias)

	if p.Field != nil && p.Field.JoinSQL != "" {
		pred := strings.NewReplacer("{m}", masterAlias, "{d}", alias).Replace(p.Field.JoinSQL)
		q.addEntry(&q.whereOrder, q.whereByKey, entry{sql: pred, origin: p})
	}

	if p.Field == nil || p.Field.RefGroup == nil || p.Field.RefGroup.IsVirtual() {
		// Virtual group: the alias number is still burned (never reused),
		// but neither recorded for reuse nor given a FROM entry, matching
		// the source's unconditional-allocate-then-conditionally-commit
		// behaviour rather than backing the counter out.
		q.logger.Debug(context.Background(), "vsql: field reached through virtual group, no join registered",
			"identifier", ident)
		return ""
	}

	q.aliasOf[ident] = alias
	tableExpr := p.Field.RefGroup.TableSQL + " " + alias
	q.addEntry(&q.fromOrder, q.fromByKey, entry{sql: tableExpr, origin: p})
	return alias
}

// SQLSource renders the accumulated query, indenting clause bodies with
// indent (typically a tab, matching the teacher's rendering convention).
// FROM falls back to the Oracle "dual" pseudo-table when no join was ever
// registered (§4.5).
func (q *Query) SQLSource(indent string) string {
	var b strings.Builder

	if q.comment != "" {
		b.WriteString("/* ")
		b.WriteString(q.comment)
		b.WriteString(" */\n")
	}

	b.WriteString("select\n")
	writeClause(&b, indent, q.selectOrder, ",")

	b.WriteString("\nfrom\n")
	if len(q.fromOrder) == 0 {
		b.WriteString(indent)
		b.WriteString("dual")
	} else {
		writeClause(&b, indent, q.fromOrder, ",")
	}

	if len(q.whereOrder) > 0 {
		b.WriteString("\nwhere\n")
		writeClause(&b, indent, q.whereOrder, " and")
	}

	if len(q.orderBy) > 0 {
		b.WriteString("\norder by\n")
		lines := make([]string, len(q.orderBy))
		for i, ob := range q.orderBy {
			line := render(ob.entry)
			if ob.direction != "" {
				line = fmt.Sprintf("%s %s", line, ob.direction)
			}
			if ob.nulls != "" {
				line = fmt.Sprintf("%s nulls %s", line, ob.nulls)
			}
			lines[i] = line
		}
		writeClause(&b, indent, lines, ",")
	}

	return b.String()
}

// writeClause writes lines one per (indented) line, joining them with sep
// placed at the end of each line but before the next one (e.g. "," or
// " and"), the way a hand-formatted SQL statement reads.
func writeClause(b *strings.Builder, indent string, lines []string, sep string) {
	for i, line := range lines {
		if i > 0 {
			b.WriteString(sep)
			b.WriteString("\n")
		}
		b.WriteString(indent)
		b.WriteString(line)
	}
}
