package vsql

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// expansion is one concrete (result, operands) combination produced by
// expanding the union tokens in a signature spec.
type expansion struct {
	result   DataType
	operands []DataType
}

var specTokenPattern = regexp.MustCompile(`[A-Za-z][A-Za-z0-9_]*|\?`)

// slotKind distinguishes the two things a non-name token in a spec
// string can be: a (possibly unioned) set of concrete datatypes, or a
// backreference to an earlier slot's resolved type.
type slotKind int

const (
	slotUnion slotKind = iota
	slotBackref
)

type specSlot struct {
	kind    slotKind
	union   []DataType // slotUnion
	backref int        // slotBackref; 1-based, counts only type-bearing slots
}

// expandSpec parses a signature spec such as "BOOL <- STR_CLOB == STR_CLOB"
// or "INT <- DATE year" (attribute access) or "BOOL <- ? NULL" (the `?`
// placeholder used for and/or/in/is/not, which would otherwise tokenize
// indistinguishably from a function/method/attribute name) and expands its
// union tokens combinatorially into concrete (result, operands) tuples
// (§4.1, §9 "Open questions").
//
// The arrow "<-" and every operator symbol are non-word characters and so
// vanish entirely during tokenization; the node kind passed to AddRules is
// what actually identifies the operator. A spec never encodes its own
// operator symbol, only its operand/result *types* plus, for
// func/meth/attr rules, the literal lower-case name.
func expandSpec(spec string) (expansions []expansion, name string, err error) {
	tokens := specTokenPattern.FindAllString(spec, -1)
	if len(tokens) == 0 {
		return nil, "", fmt.Errorf("empty rule spec")
	}

	var slots []specSlot
	sawName := false
	for _, tok := range tokens {
		if tok == "?" {
			// Placeholder for a keyword operator; contributes neither a
			// type slot nor a name.
			continue
		}
		if isBackref(tok) {
			n, convErr := strconv.Atoi(tok[1:])
			if convErr != nil {
				return nil, "", fmt.Errorf("malformed backreference %q", tok)
			}
			slots = append(slots, specSlot{kind: slotBackref, backref: n})
			continue
		}
		if isLowerWord(tok) {
			if sawName {
				return nil, "", fmt.Errorf("rule spec has more than one name token: %q", spec)
			}
			name = tok
			sawName = true
			continue
		}
		union, convErr := parseUnion(tok)
		if convErr != nil {
			return nil, "", convErr
		}
		slots = append(slots, specSlot{kind: slotUnion, union: union})
	}

	if len(slots) == 0 {
		return nil, "", fmt.Errorf("rule spec has no result type: %q", spec)
	}

	// Validate backreferences up front: a backref may only point at an
	// earlier union slot. A backref pointing at another backref is the one
	// case the design notes call out as a genuine authoring mistake
	// ("a rule spec whose forward reference resolves to another forward
	// reference"), and is fatal rather than silently resolved.
	for i, s := range slots {
		if s.kind != slotBackref {
			continue
		}
		if s.backref < 1 || s.backref > len(slots) {
			return nil, "", fmt.Errorf("backreference T%d out of range in %q", s.backref, spec)
		}
		if s.backref-1 >= i {
			return nil, "", fmt.Errorf("backreference T%d in %q does not point to an earlier slot", s.backref, spec)
		}
		if slots[s.backref-1].kind == slotBackref {
			return nil, "", fmt.Errorf("backreference T%d in %q resolves to another backreference", s.backref, spec)
		}
	}

	// Cartesian product over the union slots, in slot order.
	var unionIdx []int
	for i, s := range slots {
		if s.kind == slotUnion {
			unionIdx = append(unionIdx, i)
		}
	}

	assignment := make([]DataType, len(slots))
	var walk func(pos int) error
	walk = func(pos int) error {
		if pos == len(unionIdx) {
			for i, s := range slots {
				if s.kind == slotBackref {
					assignment[i] = assignment[s.backref-1]
				}
			}
			cp := make([]DataType, len(slots))
			copy(cp, assignment)
			expansions = append(expansions, expansion{result: cp[0], operands: cp[1:]})
			return nil
		}
		slotPos := unionIdx[pos]
		for _, dt := range slots[slotPos].union {
			assignment[slotPos] = dt
			if err := walk(pos + 1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(0); err != nil {
		return nil, "", err
	}
	return expansions, name, nil
}

func isBackref(tok string) bool {
	if len(tok) < 2 || (tok[0] != 'T' && tok[0] != 't') {
		return false
	}
	for _, r := range tok[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isLowerWord(tok string) bool {
	for _, r := range tok {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func parseUnion(tok string) ([]DataType, error) {
	parts := strings.Split(tok, "_")
	union := make([]DataType, 0, len(parts))
	for _, p := range parts {
		dt, ok := ParseDataType(p)
		if !ok {
			return nil, fmt.Errorf("unknown datatype token %q", p)
		}
		union = append(union, dt)
	}
	return union, nil
}
