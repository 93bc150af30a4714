// Package vsql compiles a restricted, statically-typed expression language
// into parameterised Oracle SQL fragments. The type system is driven
// entirely by a rule table (see RuleTable) rather than by code: adding a
// new overload means registering a new rule, not writing a new switch case.
package vsql

import "strings"

// DataType is the closed set of value types a vSQL expression can carry.
type DataType uint8

const (
	Null DataType = iota
	Bool
	Int
	Number
	Str
	Clob
	Color
	Geo
	Date
	Datetime
	DateDelta
	DatetimeDelta
	MonthDelta
	NullList
	IntList
	NumberList
	StrList
	ClobList
	DateList
	DatetimeList
	NullSet
	IntSet
	NumberSet
	StrSet
	DateSet
	DatetimeSet

	numDataTypes
)

var dataTypeNames = [numDataTypes]string{
	Null:          "null",
	Bool:          "bool",
	Int:           "int",
	Number:        "number",
	Str:           "str",
	Clob:          "clob",
	Color:         "color",
	Geo:           "geo",
	Date:          "date",
	Datetime:      "datetime",
	DateDelta:     "datedelta",
	DatetimeDelta: "datetimedelta",
	MonthDelta:    "monthdelta",
	NullList:      "nulllist",
	IntList:       "intlist",
	NumberList:    "numberlist",
	StrList:       "strlist",
	ClobList:      "cloblist",
	DateList:      "datelist",
	DatetimeList:  "datetimelist",
	NullSet:       "nullset",
	IntSet:        "intset",
	NumberSet:     "numberset",
	StrSet:        "strset",
	DateSet:       "dateset",
	DatetimeSet:   "datetimeset",
}

// String returns the canonical lower-case name of the datatype, as used in
// rule specs and diagnostic output.
func (dt DataType) String() string {
	if dt >= numDataTypes {
		return "?"
	}
	return dataTypeNames[dt]
}

var dataTypeByName = func() map[string]DataType {
	m := make(map[string]DataType, numDataTypes)
	for dt := DataType(0); dt < numDataTypes; dt++ {
		m[dataTypeNames[dt]] = dt
	}
	return m
}()

// ParseDataType looks up a DataType by its canonical name (case-insensitive).
// It is used by the rule spec parser when expanding union tokens such as
// "BOOL_INT_NUMBER".
func ParseDataType(name string) (DataType, bool) {
	dt, ok := dataTypeByName[strings.ToLower(name)]
	return dt, ok
}

// typeAlias maps a datatype onto the (often coarser) type name used when
// substituting {t<n>} placeholders into SQL templates. Several distinct
// vSQL types share one SQL representation (e.g. bool and int are both
// NUMBER(1) columns on the Oracle side), so rule authors write a single
// template for the whole equivalence class.
var typeAlias = map[DataType]DataType{
	Bool:         Int,
	Date:         Datetime,
	DateList:     DatetimeList,
	DatetimeList: DatetimeList,
	IntSet:       IntList,
	NumberSet:    NumberList,
	StrSet:       StrList,
	DateSet:      DatetimeList,
	DatetimeSet:  DatetimeList,
}

// TemplateAlias resolves the type-name used for {t<n>} template
// substitution, following typeAlias. Types not present in the table are
// their own alias.
func TemplateAlias(dt DataType) DataType {
	if alias, ok := typeAlias[dt]; ok {
		return alias
	}
	return dt
}

// CompatibleTo reports whether the datatype `given` may be substituted
// wherever `required` is expected. Passing Null as `required` is not "no
// requirement": only Null is accepted then. Use CompatibleToOptional with
// a nil *DataType for "no requirement", which accepts everything.
//
// The relation is intentionally asymmetric: it answers "can I use `given`
// where `required` was asked for", not "are these the same type".
func CompatibleTo(given, required DataType) bool {
	switch {
	case given == Null:
		return true
	case given == required:
		return true
	case required == Str && given == Clob, required == Clob && given == Str:
		return true
	case required == Number && (given == Bool || given == Int || given == Number):
		return true
	case required == Int && given == Bool:
		return true
	case required == NumberList && given == IntList:
		return true
	case required == DatetimeList && given == DateList:
		return true
	case required == NumberSet && given == IntSet:
		return true
	case required == DatetimeSet && given == DateSet:
		return true
	case required == IntList && given == NullList, required == NumberList && given == NullList,
		required == StrList && given == NullList, required == ClobList && given == NullList,
		required == DateList && given == NullList, required == DatetimeList && given == NullList:
		return true
	case required == IntSet && given == NullSet, required == NumberSet && given == NullSet,
		required == StrSet && given == NullSet, required == DateSet && given == NullSet,
		required == DatetimeSet && given == NullSet:
		return true
	default:
		return false
	}
}

// CompatibleToOptional is CompatibleTo but treats a nil `required` as "no
// requirement" (always compatible), matching the "If required is None every
// given type is accepted" rule used for optional parameter typing.
func CompatibleToOptional(given DataType, required *DataType) bool {
	if required == nil {
		return true
	}
	return CompatibleTo(given, *required)
}

// DataTypeErrorKind builds the specific `DATATYPE_<TYPE>` error kind
// reported when a value fails a CompatibleTo check against a fixed
// requirement (e.g. a function argument declared to take `str`).
func DataTypeErrorKind(required DataType) ErrorKind {
	return ErrorKind("DATATYPE_" + strings.ToUpper(required.String()))
}

// IsList reports whether dt is one of the list datatypes.
func IsList(dt DataType) bool {
	switch dt {
	case NullList, IntList, NumberList, StrList, ClobList, DateList, DatetimeList:
		return true
	default:
		return false
	}
}

// IsSet reports whether dt is one of the set datatypes.
func IsSet(dt DataType) bool {
	switch dt {
	case NullSet, IntSet, NumberSet, StrSet, DateSet, DatetimeSet:
		return true
	default:
		return false
	}
}

// ItemDataType returns the element datatype unified from a sequence of item
// datatypes (ignoring Null items, which are always allowed as list/set
// members). ok is false when the items disagree on a non-null type.
func ItemDataType(items []DataType) (unified DataType, sawNonNull bool, ok bool) {
	ok = true
	unified = Null
	for _, it := range items {
		if it == Null {
			continue
		}
		if !sawNonNull {
			unified = it
			sawNonNull = true
			continue
		}
		if unified != it {
			ok = false
		}
	}
	return unified, sawNonNull, ok
}

// ListDataTypeFor maps a unified item type onto its list datatype. The
// second return value is false for item types with no list counterpart.
func ListDataTypeFor(item DataType) (DataType, bool) {
	switch item {
	case Int:
		return IntList, true
	case Number:
		return NumberList, true
	case Str:
		return StrList, true
	case Clob:
		return ClobList, true
	case Date:
		return DateList, true
	case Datetime:
		return DatetimeList, true
	default:
		return Null, false
	}
}

// SetDataTypeFor maps a unified item type onto its set datatype. The second
// return value is false for item types with no set counterpart.
func SetDataTypeFor(item DataType) (DataType, bool) {
	switch item {
	case Int:
		return IntSet, true
	case Number:
		return NumberSet, true
	case Str:
		return StrSet, true
	case Date:
		return DateSet, true
	case Datetime:
		return DatetimeSet, true
	default:
		return Null, false
	}
}
