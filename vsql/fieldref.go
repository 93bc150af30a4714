package vsql

// MakeFieldRef builds a field reference node. `parent` is nil for a root
// reference (looked up directly in the Environment by the caller);
// non-nil for attribute-style traversal through a parent field's
// RefGroup (§4.2.2).
//
// Resolution: consult parent's resolved Field's RefGroup (or, for a root
// reference, the Group implied by the root Field passed in `group`); look
// up identifier verbatim, falling back to the group's wildcard entry. A
// failed lookup sets Error = Field and Datatype = Null, without throwing
// -- an unresolved field name is ordinary bad input, not a programmer
// mistake (§4.6).
func MakeFieldRef(parent *Node, group *Group, identifier string) *Node {
	n := &Node{
		Kind:       KindFieldRef,
		Parent:     parent,
		Value:      identifier,
		Datatype:   Null,
		SourceText: identifier,
	}
	if parent != nil {
		n.Content = []ContentToken{child(parent), lit("."), lit(identifier)}
		n.SourceText = buildSource(n.Content)
		if parent.Error != NoError {
			n.Error = SubnodeError
			return n
		}
	} else {
		n.Content = []ContentToken{lit(identifier)}
	}

	if group == nil {
		n.Error = Field
		return n
	}
	field, ok := group.Lookup(identifier)
	if !ok {
		n.Error = Field
		return n
	}
	n.Field = field
	n.Datatype = field.Datatype
	n.Error = NoError
	return n
}

// RootGroup wraps a root Field's implicit Group (a single-field group used
// only to make MakeFieldRef's "parent has a Group" contract uniform for
// root references too).
func RootGroup(field *Field) *Group {
	return NewGroup("", field)
}

// MakeRootFieldRef resolves a root identifier against env (§6.1 "Variable
// environment").
func MakeRootFieldRef(env Environment, identifier string) *Node {
	field, ok := env[identifier]
	if !ok {
		n := &Node{Kind: KindFieldRef, Value: identifier, Datatype: Null, Error: Field}
		n.Content = []ContentToken{lit(identifier)}
		n.SourceText = identifier
		return n
	}
	n := &Node{
		Kind:     KindFieldRef,
		Value:    identifier,
		Field:    field,
		Datatype: field.Datatype,
	}
	n.Content = []ContentToken{lit(identifier)}
	n.SourceText = identifier
	return n
}

// Identifier returns the dotted path of a FieldRef chain, e.g. "r.v_parent".
func (n *Node) Identifier() string {
	if n.Kind != KindFieldRef {
		return ""
	}
	if n.Parent == nil {
		return n.Value
	}
	return n.Parent.Identifier() + "." + n.Value
}
