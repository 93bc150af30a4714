package vsql

// WildcardIdentifier is the special Field/Group entry identifier that
// accepts any user-supplied leaf name (§3 "Fields and Groups"): groups
// exposing dynamically-named leaves, such as request parameters, register
// a single Field under this key instead of one Field per possible name.
const WildcardIdentifier = "*"

// Field describes a named vSQL variable backed by a column, or by an
// inline function call for virtual groups (§3).
type Field struct {
	// Identifier is the name as it appears in vSQL source, or
	// WildcardIdentifier for a group's dynamically-named fallback entry.
	Identifier string

	Datatype DataType

	// FieldSQL is the fragment emitted for leaf access. For ordinary
	// fields it typically contains no placeholders; for wildcard fields it
	// may reference the resolved leaf identifier (substituted by the SQL
	// emitter, not stored here).
	FieldSQL string

	// JoinSQL is the predicate fragment added to WHERE when this field's
	// owning table is joined to its parent. "{m}" is replaced with the
	// parent (master) alias, "{d}" with this field's (detail) alias.
	// Empty for fields that need no join predicate (e.g. a virtual
	// group's fields).
	JoinSQL string

	// RefGroup is the Group reached by attribute access through this
	// field, or nil if the field is a scalar leaf.
	RefGroup *Group
}

// Group describes a table (or a virtual, non-table-backed collection) of
// Fields (§3).
type Group struct {
	// TableSQL is the table expression registered in FROM when this group
	// is joined. Empty for a virtual group, which never produces a FROM
	// entry.
	TableSQL string

	fields map[string]*Field
}

// NewGroup builds a Group from an explicit field list. A virtual group has
// tableSQL == "".
func NewGroup(tableSQL string, fields ...*Field) *Group {
	g := &Group{TableSQL: tableSQL, fields: make(map[string]*Field, len(fields))}
	for _, f := range fields {
		g.fields[f.Identifier] = f
	}
	return g
}

// IsVirtual reports whether g has no backing table (§3 invariant: a group
// with tablesql = null never produces a FROM entry).
func (g *Group) IsVirtual() bool { return g.TableSQL == "" }

// Lookup resolves identifier against g, falling back to the wildcard entry
// when no exact match exists. found is false if neither is present.
func (g *Group) Lookup(identifier string) (field *Field, found bool) {
	if f, ok := g.fields[identifier]; ok {
		return f, true
	}
	if f, ok := g.fields[WildcardIdentifier]; ok {
		return f, true
	}
	return nil, false
}

// Environment maps root identifiers (user, record, app, params, ...) to
// their Field, as consumed by the frontend and the query builder (§6.1).
type Environment map[string]*Field
