package vsql

// MakeAttr builds an attribute access node `receiver.name` (§4.2.5). The
// rule key is (receiver type, name); an unknown attribute on an otherwise
// valid receiver type yields SubnodeTypes, an unknown name across every
// type yields Name.
func MakeAttr(table *RuleTable, receiver *Node, name string) *Node {
	n := &Node{Kind: KindAttr, Value: name, Operands: []*Node{receiver}}
	n.Datatype, n.Error, n.Rule = validateChildren(table, KindAttr, name, n.Operands)
	n.Content = append(parenthesized(receiver, needsParenRight(receiver, KindAttr.Precedence())), lit("."), lit(name))
	n.SourceText = buildSource(n.Content)
	return n
}

// MakeFunc builds a function call node `name(args...)` (§4.2.5). The rule
// key is (name, arg1 type, ..., argN type): a function call has no
// receiver. Registration maintains a names[function_name] -> arities index
// (RuleTable.names) that drives the Name/Arity distinction independently
// of any particular argument's type.
func MakeFunc(table *RuleTable, name string, args []*Node) *Node {
	n := &Node{Kind: KindFunc, Value: name, Operands: args}
	n.Datatype, n.Error, n.Rule = validateChildren(table, KindFunc, name, args)
	n.Content = append([]ContentToken{lit(name), lit("(")}, buildArgTokens(args)...)
	n.Content = append(n.Content, lit(")"))
	n.SourceText = buildSource(n.Content)
	return n
}

// MakeMeth builds a method call node `receiver.name(args...)` (§4.2.5).
// The rule key is (receiver type, name, arg1 type, ..., argN type).
func MakeMeth(table *RuleTable, receiver *Node, name string, args []*Node) *Node {
	operands := make([]*Node, 0, len(args)+1)
	operands = append(operands, receiver)
	operands = append(operands, args...)

	n := &Node{Kind: KindMeth, Value: name, Operands: operands}
	n.Datatype, n.Error, n.Rule = validateChildren(table, KindMeth, name, operands)

	n.Content = append(parenthesized(receiver, needsParenRight(receiver, KindMeth.Precedence())), lit("."), lit(name), lit("("))
	n.Content = append(n.Content, buildArgTokens(args)...)
	n.Content = append(n.Content, lit(")"))
	n.SourceText = buildSource(n.Content)
	return n
}

func buildArgTokens(args []*Node) []ContentToken {
	var tokens []ContentToken
	for i, a := range args {
		if i > 0 {
			tokens = append(tokens, lit(", "))
		}
		tokens = append(tokens, child(a))
	}
	return tokens
}

// CallArgs returns the argument nodes of a Func or Meth node (excluding
// the receiver, for Meth).
func (n *Node) CallArgs() []*Node {
	switch n.Kind {
	case KindFunc:
		return n.Operands
	case KindMeth:
		if len(n.Operands) == 0 {
			return nil
		}
		return n.Operands[1:]
	default:
		return nil
	}
}

// Receiver returns the receiver node of an Attr or Meth node, or nil.
func (n *Node) Receiver() *Node {
	switch n.Kind {
	case KindAttr, KindMeth:
		if len(n.Operands) == 0 {
			return nil
		}
		return n.Operands[0]
	default:
		return nil
	}
}
