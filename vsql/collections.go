package vsql

// List and set literals are not rule-table driven (§4.2.3): their
// validation logic is fixed, not extensible, so these constructors take no
// RuleTable argument.

func buildSeqContent(open string, items []*Node, close string) []ContentToken {
	content := []ContentToken{lit(open)}
	for i, it := range items {
		if i > 0 {
			content = append(content, lit(", "))
		}
		content = append(content, child(it))
	}
	content = append(content, lit(close))
	return content
}

// MakeList builds a list literal (§4.2.3). An empty item list yields
// ListTypeUnknown; a non-empty list of all-None items yields NullList with
// no error; mismatched non-null item types yield ListMixedTypes; item
// types with no list counterpart (color, geo, ...) yield
// ListUnsupportedTypes.
func MakeList(items []*Node) *Node {
	n := &Node{Kind: KindList, Items: items}
	n.Content = buildSeqContent("[", items, "]")
	n.SourceText = buildSource(n.Content)

	for _, it := range items {
		if it.Error != NoError {
			n.Error = SubnodeError
			n.Datatype = Null
			return n
		}
	}
	if len(items) == 0 {
		n.Error = ListTypeUnknown
		n.Datatype = Null
		return n
	}
	itemTypes := make([]DataType, len(items))
	for i, it := range items {
		itemTypes[i] = it.Datatype
	}
	unified, sawNonNull, agree := ItemDataType(itemTypes)
	if !sawNonNull {
		n.Datatype = NullList
		n.Error = NoError
		return n
	}
	if !agree {
		n.Error = ListMixedTypes
		n.Datatype = Null
		return n
	}
	listType, ok := ListDataTypeFor(unified)
	if !ok {
		n.Error = ListUnsupportedTypes
		n.Datatype = Null
		return n
	}
	n.Datatype = listType
	n.Error = NoError
	return n
}

// MakeSet builds a non-empty set literal `{item, ...}` (§4.2.3). The
// literal empty-braces form `{}` is rejected by the frontend's parser
// (ambiguous with the host language's empty-mapping syntax) before it
// would ever reach here; the dedicated empty-set constructor is
// MakeEmptySet.
func MakeSet(items []*Node) *Node {
	n := &Node{Kind: KindSet, Items: items}
	n.Content = buildSeqContent("{", items, "}")
	n.SourceText = buildSource(n.Content)

	for _, it := range items {
		if it.Error != NoError {
			n.Error = SubnodeError
			n.Datatype = Null
			return n
		}
	}
	if len(items) == 0 {
		n.Error = SetTypeUnknown
		n.Datatype = Null
		return n
	}
	itemTypes := make([]DataType, len(items))
	for i, it := range items {
		itemTypes[i] = it.Datatype
	}
	unified, sawNonNull, agree := ItemDataType(itemTypes)
	if !sawNonNull {
		n.Datatype = NullSet
		n.Error = NoError
		return n
	}
	if !agree {
		n.Error = SetMixedTypes
		n.Datatype = Null
		return n
	}
	setType, ok := SetDataTypeFor(unified)
	if !ok {
		n.Error = SetUnsupportedTypes
		n.Datatype = Null
		return n
	}
	n.Datatype = setType
	n.Error = NoError
	return n
}

// MakeEmptySet builds the dedicated empty-set literal `{/}` (§8 boundary
// behaviour): datatype NullSet, never an error. Plain `{}` is not this --
// it is rejected by the frontend parser as ambiguous with the host
// language's empty-mapping display.
func MakeEmptySet() *Node {
	n := &Node{Kind: KindSet, Items: nil, Datatype: NullSet, Error: NoError}
	n.Content = []ContentToken{lit("{/}")}
	n.SourceText = buildSource(n.Content)
	return n
}
