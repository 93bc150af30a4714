package vsqlfrontend

import (
	"fmt"

	"github.com/ha1tch/vsql/vsql"
)

var binaryKind = map[string]vsql.NodeKind{
	"+":      vsql.KindAdd,
	"-":      vsql.KindSub,
	"*":      vsql.KindMul,
	"/":      vsql.KindTrueDiv,
	"//":     vsql.KindFloorDiv,
	"%":      vsql.KindMod,
	"and":    vsql.KindAnd,
	"or":     vsql.KindOr,
	"&":      vsql.KindBitAnd,
	"|":      vsql.KindBitOr,
	"^":      vsql.KindBitXor,
	"<<":     vsql.KindShiftL,
	">>":     vsql.KindShiftR,
	"==":     vsql.KindEQ,
	"!=":     vsql.KindNE,
	"<":      vsql.KindLT,
	"<=":     vsql.KindLE,
	">":      vsql.KindGT,
	">=":     vsql.KindGE,
	"in":     vsql.KindContains,
	"not in": vsql.KindNotIn,
	"is":     vsql.KindIs,
	"is not": vsql.KindIsNot,
}

var unaryKind = map[string]vsql.NodeKind{
	"not": vsql.KindNot,
	"-":   vsql.KindNeg,
	"~":   vsql.KindBitNot,
}

// Compile parses source and maps it onto a vsql.Node, resolving names
// against env and validating operators/calls/attributes against table
// (§4.3's mapping rules). A syntax-level failure (malformed tokens,
// unsupported construct, keyword argument) is returned as an error; a
// semantic failure (unresolved name, type mismatch) is never an error --
// it comes back as a *vsql.Node with a non-NoError Error field, per
// vSQL's non-throwing error model (§4.6).
func Compile(source string, env vsql.Environment, table *vsql.RuleTable) (*vsql.Node, error) {
	host, err := Parse(source)
	if err != nil {
		return nil, err
	}
	m := &mapper{source: source, env: env, table: table}
	return m.mapNode(host)
}

type mapper struct {
	source string
	env    vsql.Environment
	table  *vsql.RuleTable
}

func (m *mapper) mapNode(h *Node) (*vsql.Node, error) {
	switch h.kind {
	case hkName:
		return vsql.MakeRootFieldRef(m.env, h.name), nil
	case hkNone:
		return vsql.MakeNone(), nil
	case hkBool:
		return vsql.MakeBool(h.boolVal), nil
	case hkInt:
		return vsql.MakeInt(h.intVal), nil
	case hkNumber:
		return vsql.MakeNumber(h.numberVal), nil
	case hkStr:
		return vsql.MakeStr(h.strVal), nil
	case hkDate:
		y, mo, d := h.dateVal.Date()
		return vsql.MakeDate(y, int(mo), d), nil
	case hkDatetime:
		return vsql.MakeDatetime(h.datetimeVal), nil
	case hkColor:
		return vsql.MakeColor(h.colorVal[0], h.colorVal[1], h.colorVal[2], h.colorVal[3]), nil
	case hkEmptySet:
		return vsql.MakeEmptySet(), nil
	case hkList:
		items, err := m.mapAll(h.items)
		if err != nil {
			return nil, err
		}
		return vsql.MakeList(items), nil
	case hkSet:
		items, err := m.mapAll(h.items)
		if err != nil {
			return nil, err
		}
		return vsql.MakeSet(items), nil
	case hkAttr:
		return m.mapAttr(h)
	case hkItem:
		obj, err := m.mapNode(h.receiver)
		if err != nil {
			return nil, err
		}
		index, err := m.mapNode(h.args[0])
		if err != nil {
			return nil, err
		}
		return vsql.MakeBinary(m.table, vsql.KindItem, obj, index), nil
	case hkSlice:
		obj, err := m.mapNode(h.receiver)
		if err != nil {
			return nil, err
		}
		index1, err := m.mapOptional(h.args[0])
		if err != nil {
			return nil, err
		}
		index2, err := m.mapOptional(h.args[1])
		if err != nil {
			return nil, err
		}
		return vsql.MakeSlice(m.table, obj, index1, index2), nil
	case hkCall:
		return m.mapCall(h)
	case hkUnary:
		operand, err := m.mapNode(h.args[0])
		if err != nil {
			return nil, err
		}
		kind, ok := unaryKind[h.op]
		if !ok {
			return nil, fmt.Errorf("vsqlfrontend: unknown unary operator %q", h.op)
		}
		return vsql.MakeUnary(m.table, kind, operand), nil
	case hkBinary:
		left, err := m.mapNode(h.args[0])
		if err != nil {
			return nil, err
		}
		right, err := m.mapNode(h.args[1])
		if err != nil {
			return nil, err
		}
		kind, ok := binaryKind[h.op]
		if !ok {
			return nil, fmt.Errorf("vsqlfrontend: unknown binary operator %q", h.op)
		}
		return vsql.MakeBinary(m.table, kind, left, right), nil
	case hkIf:
		trueExpr, err := m.mapNode(h.args[0])
		if err != nil {
			return nil, err
		}
		cond, err := m.mapNode(h.args[1])
		if err != nil {
			return nil, err
		}
		falseExpr, err := m.mapNode(h.args[2])
		if err != nil {
			return nil, err
		}
		return vsql.MakeIf(m.table, trueExpr, cond, falseExpr), nil
	}
	return nil, &vsql.UnsupportedSyntaxError{Construct: fmt.Sprintf("host node kind %d", h.kind), Source: m.source}
}

// mapOptional maps a possibly-nil slice/item bound; a nil Node means an
// open-ended slice bound, carried straight through as a Go nil (MakeSlice
// itself substitutes a constructed None literal for it).
func (m *mapper) mapOptional(h *Node) (*vsql.Node, error) {
	if h == nil {
		return nil, nil
	}
	return m.mapNode(h)
}

func (m *mapper) mapAll(hs []*Node) ([]*vsql.Node, error) {
	out := make([]*vsql.Node, len(hs))
	for i, h := range hs {
		n, err := m.mapNode(h)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// mapAttr implements §4.3's attribute-access mapping rule: if the receiver
// maps to a FieldRef whose resolved Field carries a RefGroup, "a.b" is
// itself a FieldRef traversing into that group; otherwise it is a plain
// attribute-access node validated against table.
func (m *mapper) mapAttr(h *Node) (*vsql.Node, error) {
	receiver, err := m.mapNode(h.receiver)
	if err != nil {
		return nil, err
	}
	if receiver.Kind == vsql.KindFieldRef && receiver.Field != nil && receiver.Field.RefGroup != nil {
		return vsql.MakeFieldRef(receiver, receiver.Field.RefGroup, h.name), nil
	}
	return vsql.MakeAttr(m.table, receiver, h.name), nil
}

// mapCall implements §4.3's call-mapping rule: the callee's *host* shape
// decides function-call vs. method-call interpretation, inspected before
// any mapping of the callee takes place -- a bare name is always a
// function call, bypassing env/field lookup for that identifier entirely,
// even if a field of the same name exists.
func (m *mapper) mapCall(h *Node) (*vsql.Node, error) {
	args, err := m.mapAll(h.args)
	if err != nil {
		return nil, err
	}
	callee := h.receiver
	switch callee.kind {
	case hkName:
		return vsql.MakeFunc(m.table, callee.name, args), nil
	case hkAttr:
		receiver, err := m.mapNode(callee.receiver)
		if err != nil {
			return nil, err
		}
		return vsql.MakeMeth(m.table, receiver, callee.name, args), nil
	default:
		return nil, &vsql.UnsupportedSyntaxError{Construct: "call on a non-name, non-attribute expression", Source: m.source}
	}
}
