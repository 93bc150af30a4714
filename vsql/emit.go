package vsql

import (
	"fmt"
	"strings"
)

// paramsLookupFunc is the backend PL/SQL helper invoked for `params.*`
// references (§4.4). Like every other `vsqlimpl_pkg.*`/`livingapi_pkg.*`
// name in this package, it is an opaque string from vSQL's point of view
// (§9 "Open questions"): the core defines no Go type or stub for it, only
// the literal text baked into emitted SQL.
const paramsLookupFunc = "vsqlimpl_pkg.param"

// emitSQL renders n's SQL fragment, recursively expanding the matched
// rule's template for operator/call nodes and special-casing FieldRef and
// literal kinds. It has the side effect (for FieldRef) of registering the
// join required to reach the field, via registerJoin -- see §4.5 and the
// "Field-reference join side-effects" design note (§9): this keeps the
// eager, emission-coupled registration the source actually uses, rather
// than the separated-passes alternative the design notes suggest as a
// possible improvement (see DESIGN.md).
func emitSQL(q *Query, n *Node) string {
	switch n.Kind {
	case KindFieldRef:
		return emitFieldRef(q, n)
	case KindNone:
		return "null"
	case KindBool:
		if n.BoolValue {
			return "1"
		}
		return "0"
	case KindInt:
		return fmt.Sprintf("%d", n.IntValue)
	case KindNumber:
		return n.NumberValue.String()
	case KindStr, KindClob:
		return sqlStringLiteral(n.StrValue)
	case KindDate:
		return fmt.Sprintf("to_date('%04d-%02d-%02d', 'YYYY-MM-DD')",
			n.DateValue.Year(), n.DateValue.Month(), n.DateValue.Day())
	case KindDatetime:
		return fmt.Sprintf("to_date('%04d-%02d-%02d %02d:%02d:%02d', 'YYYY-MM-DD HH24:MI:SS')",
			n.DatetimeValue.Year(), n.DatetimeValue.Month(), n.DatetimeValue.Day(),
			n.DatetimeValue.Hour(), n.DatetimeValue.Minute(), n.DatetimeValue.Second())
	case KindColor:
		return fmt.Sprintf("%d", n.ColorValue)
	case KindList, KindSet:
		return emitSeq(q, n)
	default:
		if n.Rule == nil {
			// A broken node (Error != NoError) is still serialisable but has
			// no SQL rendering of its own; the query builder refuses to add
			// it under strict mode (§4.6, §8 scenario 3), so reaching this
			// branch only happens for a deliberately tolerant-mode render.
			return fmt.Sprintf("/* invalid %s: %s */", n.Kind, n.Error)
		}
		return emitTemplate(q, n)
	}
}

func emitTemplate(q *Query, n *Node) string {
	var b strings.Builder
	for _, tok := range n.Rule.Template {
		if tok.operand == 0 {
			b.WriteString(tok.literal)
			continue
		}
		operand := n.Operands[tok.operand-1]
		if tok.isTypeRef {
			b.WriteString(TemplateAlias(operand.Datatype).String())
		} else {
			b.WriteString(emitSQL(q, operand))
		}
	}
	return b.String()
}

func emitSeq(q *Query, n *Node) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, item := range n.Items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(emitSQL(q, item))
	}
	b.WriteByte(')')
	return b.String()
}

func sqlStringLiteral(s string) string {
	if s == "" {
		return "null"
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// emitFieldRef implements the three-way FieldRef emission rule (§4.4).
func emitFieldRef(q *Query, n *Node) string {
	if n.Error != NoError {
		return fmt.Sprintf("/* broken field %s */", n.Value)
	}

	ident := n.Identifier()
	if strings.HasPrefix(ident, "params.") {
		parentIdent := ""
		if n.Parent != nil {
			parentIdent = n.Parent.Identifier()
		}
		return fmt.Sprintf("%s(%s, %s)", paramsLookupFunc, sqlStringLiteral(parentIdent), sqlStringLiteral(n.Value))
	}

	fieldSQL := resolveWildcardFieldSQL(n)

	if n.Parent == nil {
		// Root reference: accessed directly, no table of its own.
		return fieldSQL
	}

	alias := registerJoin(q, n.Parent)
	if alias == "" {
		// Virtual group: no owning table, emitted verbatim.
		return fieldSQL
	}
	return alias + "." + fieldSQL
}

// resolveWildcardFieldSQL substitutes the user-supplied leaf identifier
// into a wildcard field's SQL template (§3, §9 "Wildcard field groups"):
// the Field is registered under the group's "*" entry, but the emitted
// SQL must reference the name the user actually wrote, never the literal
// "*".
func resolveWildcardFieldSQL(n *Node) string {
	if n.Field == nil {
		return ""
	}
	if n.Field.Identifier != WildcardIdentifier {
		return n.Field.FieldSQL
	}
	return strings.ReplaceAll(n.Field.FieldSQL, "{leaf}", n.Value)
}
