package vsqlfrontend

import "github.com/ha1tch/vsql/vsql"

// Query is the source-string-driven query builder named by spec.md §4.5:
// `select(*exprs)`, `where(*exprs)`, `orderby(expr, direction?, nulls?)`
// each parse a vSQL source string against a stored variable environment
// before handing the resulting AST to the underlying vsql.Query. It wraps
// vsql.Query rather than extending it because compiling a source string
// requires this package, and vsql cannot import its own frontend back.
//
// Parse/map failures are the fatal conditions of §4.6 (an unsupported host
// construct, a keyword argument): Query keeps the first one it sees on err
// rather than panicking, so a chained builder call stays chainable; check
// Err after building.
type Query struct {
	inner *vsql.Query
	env   vsql.Environment
	table *vsql.RuleTable
	err   error
}

// NewQuery creates an empty Query against table, compiling expressions
// against env. comment is rendered as the query's leading SQL comment; a
// nil logger is replaced with vsql.NopLogger().
func NewQuery(table *vsql.RuleTable, env vsql.Environment, comment string, logger vsql.Logger) *Query {
	return &Query{
		inner: vsql.NewQuery(table, comment, logger),
		env:   env,
		table: table,
	}
}

// Err returns the first fatal compile error encountered by Select, Where or
// OrderBy, if any. Once set, subsequent calls on the same Query are no-ops.
func (q *Query) Err() error {
	return q.err
}

func (q *Query) compile(src string) (*vsql.Node, bool) {
	if q.err != nil {
		return nil, false
	}
	n, err := Compile(src, q.env, q.table)
	if err != nil {
		q.err = err
		return nil, false
	}
	return n, true
}

// Select parses each of exprs against the stored environment and adds it
// to the SELECT list.
func (q *Query) Select(exprs ...string) *Query {
	for _, src := range exprs {
		if n, ok := q.compile(src); ok {
			q.inner.Select(n)
		}
	}
	return q
}

// Where parses each of exprs against the stored environment and ANDs it
// into the WHERE list.
func (q *Query) Where(exprs ...string) *Query {
	for _, src := range exprs {
		if n, ok := q.compile(src); ok {
			q.inner.Where(n)
		}
	}
	return q
}

// OrderBy parses expr against the stored environment and appends it to the
// ORDER BY list. direction is "asc", "desc" or ""; nulls is "first", "last"
// or "".
func (q *Query) OrderBy(expr string, direction, nulls string) *Query {
	if n, ok := q.compile(expr); ok {
		q.inner.OrderBy(n, direction, nulls)
	}
	return q
}

// SQLSource renders the accumulated query; see vsql.Query.SQLSource.
func (q *Query) SQLSource(indent string) string {
	return q.inner.SQLSource(indent)
}
