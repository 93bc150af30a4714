package vsql

// ErrorKind is a non-throwing validation failure attached to an AST node.
// Unlike a Go error, an ErrorKind is data: it travels with the node so a
// caller can serialise or diagnose a broken expression without the
// compiler ever panicking or returning an error value for ordinary bad
// input (see §7 of the design notes: only programmer mistakes are fatal).
type ErrorKind string

const (
	// NoError marks a node that validated successfully.
	NoError ErrorKind = ""

	// SubnodeError is set when any child already carries an error; it
	// short-circuits rule lookup for the parent (see validate.go).
	SubnodeError ErrorKind = "SUBNODEERROR"

	// NodeType is reserved for node kinds that are structurally invalid
	// regardless of operand types (unused by the shipped rule table but
	// kept for parity with the source enumeration).
	NodeType ErrorKind = "NODETYPE"

	// Arity marks a function/method call whose name is known but whose
	// argument count has no matching rule.
	Arity ErrorKind = "ARITY"

	// SubnodeTypes marks a node whose name (if any) is known but whose
	// concrete operand types have no matching rule.
	SubnodeTypes ErrorKind = "SUBNODETYPES"

	// Field marks a FieldRef that failed to resolve against its parent's
	// Group (including the group's wildcard entry).
	Field ErrorKind = "FIELD"

	// Name marks a function/method/attribute reference whose name is not
	// registered at all, for any operand types.
	Name ErrorKind = "NAME"

	ListTypeUnknown      ErrorKind = "LISTTYPEUNKNOWN"
	ListMixedTypes       ErrorKind = "LISTMIXEDTYPES"
	ListUnsupportedTypes ErrorKind = "LISTUNSUPPORTEDTYPES"
	SetTypeUnknown       ErrorKind = "SETTYPEUNKNOWN"
	SetMixedTypes        ErrorKind = "SETMIXEDTYPES"
	SetUnsupportedTypes  ErrorKind = "SETUNSUPPORTEDTYPES"
)

// IsError reports whether e represents a validation failure.
func (e ErrorKind) IsError() bool { return e != NoError }
