package vsql

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Rule is one row of the type-system/emission table: an operand-type
// signature for a given node kind, the datatype it infers, and the SQL
// template used to emit it (§4.1).
type Rule struct {
	Kind     NodeKind
	Result   DataType
	Name     string     // function/method/attribute name; empty for operators
	Operands []DataType // operand datatypes in declaration order
	Template []templateToken
}

// Key is the comparable lookup key derived from Operands (and Name, for
// func/meth/attr rules). It is what RuleTable.Lookup and the registration
// idempotence check (§8 invariant 3) compare by.
func (r *Rule) Key() string { return ruleKey(r.Kind, r.Name, r.Operands) }

func ruleKey(kind NodeKind, name string, operands []DataType) string {
	var b strings.Builder
	if name != "" {
		b.WriteString(name)
		b.WriteByte('\x00')
	}
	for i, dt := range operands {
		if i > 0 {
			b.WriteByte('\x00')
		}
		b.WriteString(dt.String())
	}
	return b.String()
}

// templateToken is one piece of a tokenised SQL emission template: either a
// literal SQL fragment, an operand-source reference ({s<n>}), or an
// operand-type-name reference ({t<n>}).
type templateToken struct {
	literal   string
	operand   int // 1-based; 0 means this is a literal token
	isTypeRef bool
}

var templatePlaceholder = regexp.MustCompile(`\{([st])(\d+)\}`)

// parseTemplate tokenises a source_template string such as
// "({s1} + {s2})" or "vsqlimpl_pkg.int_str({s1})" into literal and
// placeholder tokens.
func parseTemplate(template string) ([]templateToken, error) {
	var tokens []templateToken
	last := 0
	for _, loc := range templatePlaceholder.FindAllStringSubmatchIndex(template, -1) {
		if loc[0] > last {
			tokens = append(tokens, templateToken{literal: template[last:loc[0]]})
		}
		kindLetter := template[loc[2]:loc[3]]
		n, err := strconv.Atoi(template[loc[4]:loc[5]])
		if err != nil {
			return nil, fmt.Errorf("bad placeholder index in %q: %w", template, err)
		}
		tokens = append(tokens, templateToken{operand: n, isTypeRef: kindLetter == "t"})
		last = loc[1]
	}
	if last < len(template) {
		tokens = append(tokens, templateToken{literal: template[last:]})
	}
	return tokens, nil
}

// RuleBuilder accumulates rules before the table is frozen. It is the only
// way to populate a RuleTable: once Freeze is called, no further mutation
// is possible (§5, §10.3 — configuration is assembled once, then handed
// around as an immutable value).
type RuleBuilder struct {
	logger Logger
	rules  map[NodeKind]map[string]*Rule
	names  map[NodeKind]map[string]map[int]bool // name -> supported arities
}

// NewRuleBuilder creates an empty builder. A nil logger is replaced with
// NopLogger(), so callers that don't care about registration diagnostics
// don't need to wire one up.
func NewRuleBuilder(logger Logger) *RuleBuilder {
	if logger == nil {
		logger = NopLogger()
	}
	return &RuleBuilder{
		logger: logger,
		rules:  make(map[NodeKind]map[string]*Rule),
		names:  make(map[NodeKind]map[string]map[int]bool),
	}
}

// AddRules parses a signature spec and a source template (§4.1) and
// registers one rule per combinatorial expansion of the spec's union
// tokens. Registration is idempotent: for a given node kind, the first
// rule to claim a given Key() wins and later duplicates are silently
// dropped (logged at debug level), which is what lets broader rule sets
// be layered in without clobbering earlier, more specific ones.
func (b *RuleBuilder) AddRules(kind NodeKind, spec, template string) error {
	tmpl, err := parseTemplate(template)
	if err != nil {
		return &RuleSpecError{Kind: kind, Spec: spec, Err: errors.WithStack(err)}
	}
	expansions, name, err := expandSpec(spec)
	if err != nil {
		return &RuleSpecError{Kind: kind, Spec: spec, Err: errors.WithStack(err)}
	}
	if b.rules[kind] == nil {
		b.rules[kind] = make(map[string]*Rule)
	}
	if b.names[kind] == nil {
		b.names[kind] = make(map[string]map[int]bool)
	}
	for _, exp := range expansions {
		rule := &Rule{
			Kind:     kind,
			Result:   exp.result,
			Name:     name,
			Operands: exp.operands,
			Template: tmpl,
		}
		key := rule.Key()
		if _, exists := b.rules[kind][key]; exists {
			b.logger.Debug(context.Background(), "vsql: duplicate rule ignored",
				"kind", string(kind), "key", key, "spec", spec)
			continue
		}
		b.rules[kind][key] = rule

		arityName := name
		if arityName == "" {
			arityName = string(kind)
		}
		if b.names[kind][arityName] == nil {
			b.names[kind][arityName] = make(map[int]bool)
		}
		b.names[kind][arityName][len(exp.operands)] = true
	}
	b.logger.Debug(context.Background(), "vsql: registered rule set",
		"kind", string(kind), "spec", spec, "expansions", len(expansions))
	return nil
}

// Freeze returns an immutable snapshot of the builder's rule set. After
// Freeze, the builder itself may still be mutated (it is a plain Go value),
// but the returned RuleTable shares no mutable state with it: Freeze deep
// copies the rule maps.
func (b *RuleBuilder) Freeze() *RuleTable {
	rules := make(map[NodeKind]map[string]*Rule, len(b.rules))
	for kind, byKey := range b.rules {
		cp := make(map[string]*Rule, len(byKey))
		for k, v := range byKey {
			cp[k] = v
		}
		rules[kind] = cp
	}
	names := make(map[NodeKind]map[string]map[int]bool, len(b.names))
	for kind, byName := range b.names {
		cp := make(map[string]map[int]bool, len(byName))
		for n, arities := range byName {
			arCp := make(map[int]bool, len(arities))
			for a := range arities {
				arCp[a] = true
			}
			cp[n] = arCp
		}
		names[kind] = cp
	}
	return &RuleTable{rules: rules, names: names}
}

// RuleTable is the frozen result of a RuleBuilder. It is safe for
// concurrent read access from multiple goroutines (§5): nothing mutates it
// after Freeze.
type RuleTable struct {
	rules map[NodeKind]map[string]*Rule
	names map[NodeKind]map[string]map[int]bool
}

// Lookup finds the rule registered for kind with the given name (empty for
// pure operators) and operand types. found is false if no rule matches.
func (t *RuleTable) Lookup(kind NodeKind, name string, operands []DataType) (rule *Rule, found bool) {
	byKey := t.rules[kind]
	if byKey == nil {
		return nil, false
	}
	rule, found = byKey[ruleKey(kind, name, operands)]
	return rule, found
}

// Classify categorises a failed Lookup into Name, Arity, or SubnodeTypes
// (§4.2 step 4): Name if the identifier is not registered under kind at
// all; Arity if it is registered but never with this many operands; else
// SubnodeTypes.
func (t *RuleTable) Classify(kind NodeKind, name string, arity int) ErrorKind {
	arityName := name
	if arityName == "" {
		arityName = string(kind)
	}
	arities, ok := t.names[kind][arityName]
	if !ok {
		return Name
	}
	if !arities[arity] {
		return Arity
	}
	return SubnodeTypes
}

// RuleCount returns the number of registered rules across all node kinds,
// primarily for diagnostics and tests (it lets a test assert that a rule
// set of the expected size was loaded without hard-coding the exact
// count).
func (t *RuleTable) RuleCount() int {
	n := 0
	for _, byKey := range t.rules {
		n += len(byKey)
	}
	return n
}
