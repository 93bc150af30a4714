package vsql

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ContentToken is one element of a Node's content list (§3 "AST nodes"):
// either a literal fragment of source text, or a child Node.
// Concatenating a node's tokens in order gives its source text. The
// constructors build that text from the node's children with canonical
// spacing and synthetic parenthesisation, and the frontend mapper builds
// through the same constructors, so a compiled expression's source text is
// a reconstruction, not a copy of the original string (its whitespace and
// redundant parentheses are not kept).
type ContentToken struct {
	Literal string
	Child   *Node
}

// Node is a vSQL AST node. Rather than one Go type per construct (the
// source's class hierarchy), a single tagged struct carries every
// construct's fields; Kind says which of them are meaningful. This is the
// "sum type" re-architecture the design notes call for (§9), chosen over a
// Go interface-per-kind because so much behaviour (Source, validation,
// serialisation) is identical across kinds and only the operand shape
// varies.
type Node struct {
	Kind NodeKind

	// Content holds the node exactly as it should be rendered back to
	// source: literal fragments interleaved with child nodes, in order.
	Content []ContentToken

	// SourceText is the concatenation of Content, cached at construction
	// time since the tree is immutable once built.
	SourceText string

	Datatype DataType
	Error    ErrorKind

	// Rule is the matched rule for this node, or nil if Error != NoError.
	Rule *Rule

	// Value is the identifier for FieldRef and the name for
	// Attr/Func/Meth; serialisation's nodevalue reads it for those kinds
	// and renders constants from their literal payloads below.
	Value string

	// Literal payloads. Only the field matching Kind is meaningful.
	BoolValue     bool
	IntValue      int64
	NumberValue   decimal.Decimal
	StrValue      string
	ColorValue    uint32 // packed 0xRRGGBBAA
	DateValue     time.Time // truncated to a whole day, UTC
	DatetimeValue time.Time // truncated to a whole second, UTC (§4.2.1)

	// FieldRef.
	Parent *Node // parent FieldRef, nil for a root reference
	Field  *Field

	// Operator/call operands, in declaration order (receiver first for
	// Attr/Meth).
	Operands []*Node

	// ListOrSet item nodes (Kind == KindList || KindSet).
	Items []*Node
}

// Precedence returns the node's operator-precedence class, used by
// synthetic make() to decide parenthesisation of operands.
func (n *Node) Precedence() int { return n.Kind.Precedence() }

// Source returns the node's original (or synthetically reconstructed)
// source text.
func (n *Node) Source() string { return n.SourceText }

func buildSource(content []ContentToken) string {
	var b strings.Builder
	for _, t := range content {
		if t.Child != nil {
			b.WriteString(t.Child.SourceText)
		} else {
			b.WriteString(t.Literal)
		}
	}
	return b.String()
}

// lit returns a literal-only content token.
func lit(s string) ContentToken { return ContentToken{Literal: s} }

// child returns a child-node content token.
func child(n *Node) ContentToken { return ContentToken{Child: n} }

// parenthesized wraps child's tokens in "(" ")" when wrap is true.
func parenthesized(n *Node, wrap bool) []ContentToken {
	if wrap {
		return []ContentToken{lit("("), child(n), lit(")")}
	}
	return []ContentToken{child(n)}
}

// needsParenLeft/needsParenRight implement the binary/unary parenthesation
// rule from §4.2: left operand parenthesised when strictly lower
// precedence, right/unary operand parenthesised when lower-or-equal.
func needsParenLeft(operand *Node, nodePrec int) bool  { return operand.Precedence() < nodePrec }
func needsParenRight(operand *Node, nodePrec int) bool { return operand.Precedence() <= nodePrec }

// Children returns the node's direct AST children in visit order,
// regardless of Kind. Used by serialisation.
func (n *Node) Children() []*Node {
	switch n.Kind {
	case KindFieldRef:
		if n.Parent != nil {
			return []*Node{n.Parent}
		}
		return nil
	case KindList, KindSet:
		return n.Items
	default:
		return n.Operands
	}
}

// HasError reports whether n or any transitive child carries an error.
func (n *Node) HasError() bool { return n.Error != NoError }
