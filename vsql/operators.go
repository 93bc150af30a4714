package vsql

// operatorSpelling is the source text rendered between (or before, for
// unary) operands by synthetic make(). It exists only for source
// reconstruction; SQL emission always goes through the matched rule's
// template, never through this table.
var operatorSpelling = map[NodeKind]string{
	KindNot:      "not ",
	KindNeg:      "-",
	KindBitNot:   "~",
	KindAdd:      "+",
	KindSub:      "-",
	KindMul:      "*",
	KindTrueDiv:  "/",
	KindFloorDiv: "//",
	KindMod:      "%",
	KindAnd:      "and",
	KindOr:       "or",
	KindBitAnd:   "&",
	KindBitOr:    "|",
	KindBitXor:   "^",
	KindShiftL:   "<<",
	KindShiftR:   ">>",
	KindEQ:       "==",
	KindNE:       "!=",
	KindLT:       "<",
	KindLE:       "<=",
	KindGT:       ">",
	KindGE:       ">=",
	KindContains: "in",
	KindNotIn:    "not in",
	KindIs:       "is",
	KindIsNot:    "is not",
}

// MakeUnary builds a unary operator node (not/-/~) and validates it
// against table (§4.2.4).
func MakeUnary(table *RuleTable, kind NodeKind, operand *Node) *Node {
	n := &Node{Kind: kind, Operands: []*Node{operand}}
	n.Datatype, n.Error, n.Rule = validateChildren(table, kind, "", n.Operands)

	spelling := operatorSpelling[kind]
	wrap := needsParenRight(operand, kind.Precedence())
	n.Content = append([]ContentToken{lit(spelling)}, parenthesized(operand, wrap)...)
	n.SourceText = buildSource(n.Content)
	return n
}

// MakeBinary builds a binary operator node and validates it against table
// (§4.2.4). This covers arithmetic, bitwise, logical, comparison,
// containment, is/is-not, and item access ([]).
func MakeBinary(table *RuleTable, kind NodeKind, left, right *Node) *Node {
	n := &Node{Kind: kind, Operands: []*Node{left, right}}
	n.Datatype, n.Error, n.Rule = validateChildren(table, kind, "", n.Operands)

	prec := kind.Precedence()
	leftTokens := parenthesized(left, needsParenLeft(left, prec))
	rightTokens := parenthesized(right, needsParenRight(right, prec))

	if kind == KindItem {
		n.Content = append(append(leftTokens, lit("[")), append(rightTokens, lit("]"))...)
	} else {
		spelling := operatorSpelling[kind]
		mid := lit(" " + spelling + " ")
		n.Content = append(append(leftTokens, mid), rightTokens...)
	}
	n.SourceText = buildSource(n.Content)
	return n
}

// MakeIf builds the ternary `trueExpr if condExpr else falseExpr` (§4.2.4).
// The rule lookup key is (trueExpr.Datatype, condExpr.Datatype,
// falseExpr.Datatype), in that order, matching the source syntax order.
//
// The synthetic parenthesisation of falseExpr compares falseExpr's own
// precedence against the ternary's precedence -- not condExpr's, which an
// easy copy-paste mistake this design deliberately avoids (§9).
func MakeIf(table *RuleTable, trueExpr, condExpr, falseExpr *Node) *Node {
	n := &Node{Kind: KindIf, Operands: []*Node{trueExpr, condExpr, falseExpr}}
	n.Datatype, n.Error, n.Rule = validateChildren(table, KindIf, "", n.Operands)

	prec := KindIf.Precedence()
	trueTokens := parenthesized(trueExpr, needsParenLeft(trueExpr, prec))
	condTokens := parenthesized(condExpr, needsParenRight(condExpr, prec))
	falseTokens := parenthesized(falseExpr, needsParenRight(falseExpr, prec))

	n.Content = nil
	n.Content = append(n.Content, trueTokens...)
	n.Content = append(n.Content, lit(" if "))
	n.Content = append(n.Content, condTokens...)
	n.Content = append(n.Content, lit(" else "))
	n.Content = append(n.Content, falseTokens...)
	n.SourceText = buildSource(n.Content)
	return n
}

// MakeSlice builds a slice expression `obj[index1:index2]` (§4.2.4). A nil
// index1 or index2 means an open-ended bound; it is represented as a
// constructed None literal, never as a Go nil, so that Children() always
// yields exactly three non-nil nodes.
func MakeSlice(table *RuleTable, obj, index1, index2 *Node) *Node {
	if index1 == nil {
		index1 = MakeNone()
	}
	if index2 == nil {
		index2 = MakeNone()
	}
	n := &Node{Kind: KindSlice, Operands: []*Node{obj, index1, index2}}
	n.Datatype, n.Error, n.Rule = validateChildren(table, KindSlice, "", n.Operands)

	prec := KindSlice.Precedence()
	objTokens := parenthesized(obj, needsParenLeft(obj, prec))
	n.Content = append(n.Content, objTokens...)
	n.Content = append(n.Content, lit("["))
	if index1.Kind != KindNone {
		n.Content = append(n.Content, child(index1))
	}
	n.Content = append(n.Content, lit(":"))
	if index2.Kind != KindNone {
		n.Content = append(n.Content, child(index2))
	}
	n.Content = append(n.Content, lit("]"))
	n.SourceText = buildSource(n.Content)
	return n
}
