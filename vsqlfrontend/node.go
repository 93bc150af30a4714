package vsqlfrontend

import (
	"time"

	"github.com/shopspring/decimal"
)

type hostKind int

const (
	hkName hostKind = iota
	hkNone
	hkBool
	hkInt
	hkNumber
	hkStr
	hkDate
	hkDatetime
	hkColor
	hkList
	hkSet
	hkEmptySet
	hkAttr
	hkItem
	hkSlice
	hkCall
	hkUnary
	hkBinary
	hkIf
)

// Node is the small host-AST produced by Parse: one tagged struct per
// SPEC_FULL.md §9's "re-architect as sum types" note, the same shape
// vsql.Node itself uses, rather than one Go type per grammar production.
// Its fields are unexported -- the only supported way to act on a parsed
// tree is to hand it to Compile (or walk it from within this package).
type Node struct {
	kind     hostKind
	pos, end int

	name string // hkName, hkAttr (attribute name)

	boolVal     bool
	intVal      int64
	numberVal   decimal.Decimal
	strVal      string
	dateVal     time.Time
	datetimeVal time.Time
	colorVal    [4]uint8

	// hkUnary: operand in args[0]. hkBinary: left=args[0], right=args[1].
	// hkIf: true=args[0], cond=args[1], false=args[2].
	// hkAttr/hkCall: receiver/callee in receiver. hkItem: object=receiver,
	// index=args[0]. hkSlice: object=receiver, args=[index1, index2]
	// (nil element means an open bound).
	op       string
	receiver *Node
	args     []*Node
	items    []*Node // hkList, hkSet
}
