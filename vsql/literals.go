package vsql

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// This file builds the literal/constant AST variants (§4.2.1): one per
// literal datatype plus the None literal. Constants never fail to
// validate -- their datatype is fixed by construction -- so none of these
// constructors consult a RuleTable.

// MakeNone builds the `None` literal, datatype Null.
func MakeNone() *Node {
	n := &Node{Kind: KindNone, Datatype: Null, Value: "None"}
	n.Content = []ContentToken{lit("None")}
	n.SourceText = buildSource(n.Content)
	return n
}

// MakeBool builds a boolean literal.
func MakeBool(v bool) *Node {
	text := "False"
	if v {
		text = "True"
	}
	n := &Node{Kind: KindBool, Datatype: Bool, BoolValue: v, Value: text}
	n.Content = []ContentToken{lit(text)}
	n.SourceText = buildSource(n.Content)
	return n
}

// MakeInt builds an integer literal.
func MakeInt(v int64) *Node {
	text := fmt.Sprintf("%d", v)
	n := &Node{Kind: KindInt, Datatype: Int, IntValue: v, Value: text}
	n.Content = []ContentToken{lit(text)}
	n.SourceText = buildSource(n.Content)
	return n
}

// MakeNumber builds an arbitrary-precision numeric literal. The value is
// carried as decimal.Decimal, not float64, so that literals written by a
// vSQL author round-trip through SQL emission without binary-float
// rounding (§11 "Precision-preserving numeric constants").
func MakeNumber(v decimal.Decimal) *Node {
	text := v.String()
	n := &Node{Kind: KindNumber, Datatype: Number, NumberValue: v, Value: text}
	n.Content = []ContentToken{lit(text)}
	n.SourceText = buildSource(n.Content)
	return n
}

func quoteStr(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// MakeStr builds a string literal.
func MakeStr(v string) *Node {
	text := quoteStr(v)
	n := &Node{Kind: KindStr, Datatype: Str, StrValue: v, Value: text}
	n.Content = []ContentToken{lit(text)}
	n.SourceText = buildSource(n.Content)
	return n
}

// MakeClob builds a clob literal. The accepted source syntax is identical
// to MakeStr's; the two are kept distinct AST variants because the two
// datatypes are not interchangeable everywhere (see CompatibleTo).
func MakeClob(v string) *Node {
	text := quoteStr(v)
	n := &Node{Kind: KindClob, Datatype: Clob, StrValue: v, Value: text}
	n.Content = []ContentToken{lit(text)}
	n.SourceText = buildSource(n.Content)
	return n
}

// PackColor packs 8-bit RGBA channels into the 32-bit value the color
// datatype stores internally (§4.2.1: "the stored value is a 32-bit packed
// RGBA").
func PackColor(r, g, b, a uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

// MakeColor builds a color literal from its 8-bit RGBA channels.
func MakeColor(r, g, b, a uint8) *Node {
	packed := PackColor(r, g, b, a)
	text := formatColorLiteral(r, g, b, a)
	n := &Node{Kind: KindColor, Datatype: Color, ColorValue: packed, Value: text}
	n.Content = []ContentToken{lit(text)}
	n.SourceText = buildSource(n.Content)
	return n
}

func formatColorLiteral(r, g, b, a uint8) string {
	if a == 0xff {
		if isNibbleRepeat(r) && isNibbleRepeat(g) && isNibbleRepeat(b) {
			return fmt.Sprintf("#%x%x%x", r>>4, g>>4, b>>4)
		}
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func isNibbleRepeat(v uint8) bool { return v>>4 == v&0x0f }

// MakeDate builds a date literal, using the UL4 date-literal syntax
// `@(YYYY-MM-DD)`. The value is truncated to midnight UTC.
func MakeDate(y, m, d int) *Node {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	text := fmt.Sprintf("@(%04d-%02d-%02d)", y, m, d)
	n := &Node{Kind: KindDate, Datatype: Date, DateValue: t, Value: text}
	n.Content = []ContentToken{lit(text)}
	n.SourceText = buildSource(n.Content)
	return n
}

// MakeDatetime builds a datetime literal, using the UL4 datetime-literal
// syntax `@(YYYY-MM-DDTHH:MM:SS)`. Per §4.2.1, the value is truncated to a
// whole second (sub-second precision is dropped, not rounded).
func MakeDatetime(t time.Time) *Node {
	t = t.Truncate(time.Second).UTC()
	text := fmt.Sprintf("@(%04d-%02d-%02dT%02d:%02d:%02d)",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	n := &Node{Kind: KindDatetime, Datatype: Datetime, DatetimeValue: t, Value: text}
	n.Content = []ContentToken{lit(text)}
	n.SourceText = buildSource(n.Content)
	return n
}
