package vsql

import "fmt"

// SourceRange is the half-open [Start, End) byte offset of a node's source
// text within the original expression string. No code in this module
// records source offsets on a Node -- neither the constructors in this
// package nor the frontend mapper -- so Serialize leaves Range at the
// zero value for every node.
type SourceRange struct {
	Start int
	End   int
}

// SerializedNode is one row of the persisted-AST tuple encoding (§6.2,
// §9 "Serialisation"): nodetype, nodevalue, the inferred result datatype,
// the error kind, and the node's source range, with children following in
// visit order.
type SerializedNode struct {
	NodeType   NodeKind
	NodeValue  string
	ResultType DataType
	Error      ErrorKind
	Range      SourceRange
	Children   []SerializedNode
}

// Serialize walks n and its descendants into the persisted tuple form. It
// is a pure function over the AST, as the design notes require (§9): no
// framework-level (de)serialiser, just a direct recursive walk.
func Serialize(n *Node) SerializedNode {
	children := n.Children()
	out := SerializedNode{
		NodeType:   n.Kind,
		NodeValue:  nodeValue(n),
		ResultType: n.Datatype,
		Error:      n.Error,
		Children:   make([]SerializedNode, len(children)),
	}
	for i, c := range children {
		out.Children[i] = Serialize(c)
	}
	return out
}

// nodeValue computes the short textual nodevalue (§3 "a computed
// nodevalue"): the constant's value rendered as text for literals (an
// unquoted string, true/false, a formatted date), the identifier for
// FieldRef, the name for Attr/Func/Meth, and empty for everything else
// (operators carry no name of their own -- their Kind already says which
// operator it is).
func nodeValue(n *Node) string {
	switch n.Kind {
	case KindNone:
		return "None"
	case KindBool:
		return fmt.Sprintf("%t", n.BoolValue)
	case KindInt:
		return fmt.Sprintf("%d", n.IntValue)
	case KindNumber:
		return n.NumberValue.String()
	case KindStr, KindClob:
		return n.StrValue
	case KindColor:
		return fmt.Sprintf("%08x", n.ColorValue)
	case KindDate:
		return n.DateValue.Format("2006-01-02")
	case KindDatetime:
		return n.DatetimeValue.Format("2006-01-02T15:04:05")
	case KindFieldRef:
		return n.Value
	case KindAttr, KindFunc, KindMeth:
		return n.Value
	default:
		return ""
	}
}

// DiagnosticString renders a single-node diagnostic (§7 "User-visible
// behaviour"): node type, error code, and original source span, used for
// surfacing a broken subtree without aborting the rest of the query.
func DiagnosticString(n *Node) string {
	if n.Error == NoError {
		return fmt.Sprintf("%s: ok (%s)", n.Kind, n.Datatype)
	}
	return fmt.Sprintf("%s: %s in %q", n.Kind, n.Error, n.Source())
}
