package vsql

// validateChildren implements the two-phase validation in §4.2:
//
//  1. If any child already has an error, the parent's error becomes
//     SubnodeError and its datatype becomes Null. Rule lookup is skipped
//     entirely in this case -- it is not attempted and its result (even if
//     it would coincidentally match some registered rule) can never
//     overwrite the propagated SubnodeError. This is a deliberate
//     short-circuit, not an incidental one.
//  2. Otherwise the operand types (taken from each child's own, already
//     valid, Datatype) are looked up in the rule table under (kind, name).
//     A match copies the rule's result type; a miss is classified into
//     Name, Arity, or SubnodeTypes via RuleTable.Classify.
func validateChildren(table *RuleTable, kind NodeKind, name string, children []*Node) (DataType, ErrorKind, *Rule) {
	for _, c := range children {
		if c.Error != NoError {
			return Null, SubnodeError, nil
		}
	}
	operands := make([]DataType, len(children))
	for i, c := range children {
		operands[i] = c.Datatype
	}
	if rule, ok := table.Lookup(kind, name, operands); ok {
		return rule.Result, NoError, rule
	}
	return Null, table.Classify(kind, name, len(children)), nil
}
