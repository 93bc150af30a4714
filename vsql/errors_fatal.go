package vsql

import "fmt"

// The errors in this file are the "thrown" half of vSQL's error model
// (§4.6, §7): they indicate a programmer mistake in the rule table itself,
// or a user expression that falls outside the accepted grammar subset, and
// they abort the compile immediately rather than attaching an ErrorKind to
// a node. They are plain Go errors, never panics.

// RuleSpecError is returned by RuleBuilder.AddRules when a rule spec string
// cannot be parsed: an unknown datatype token, a backreference to a slot
// that doesn't exist, or (the one case the source code itself calls out as
// a genuine mistake) a backreference whose target is itself an unresolved
// backreference.
type RuleSpecError struct {
	Kind NodeKind
	Spec string
	Err  error
}

func (e *RuleSpecError) Error() string {
	return fmt.Sprintf("vsql: invalid rule spec %q for %s: %v", e.Spec, e.Kind, e.Err)
}

func (e *RuleSpecError) Unwrap() error { return e.Err }

// UnsupportedSyntaxError is returned by the frontend (parser or mapper) when a host
// expression tree contains a construct outside the accepted grammar subset
// (§6.1): comprehensions, generator expressions, lambdas, or any host node
// type the mapper does not know how to translate.
type UnsupportedSyntaxError struct {
	Construct string
	Source    string
}

func (e *UnsupportedSyntaxError) Error() string {
	return fmt.Sprintf("vsql: unsupported syntax %s in %q", e.Construct, e.Source)
}

// KeywordArgumentError is returned when a call expression uses a keyword
// argument, which vSQL's accepted grammar subset explicitly excludes.
type KeywordArgumentError struct {
	Keyword string
	Source  string
}

func (e *KeywordArgumentError) Error() string {
	return fmt.Sprintf("vsql: keyword argument %q is not supported in %q", e.Keyword, e.Source)
}
