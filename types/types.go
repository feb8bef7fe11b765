// Package types holds the data model produced by the argtypes parser:
// the closed set of value kinds a flag can be inferred as, and the
// type-partitioned collection a parse call returns.
package types

// Kind is the type variant inferred for the values of one flag.
// The set is closed: every non-empty value list maps to exactly one
// of the kinds below, and the zero value is never returned by a
// successful classification.
type Kind uint8

// ORDER IN WHICH THE KIND CONSTANTS APPEAR MATTERS.
const (
	// Invalid is the zero Kind.
	Invalid Kind = iota

	// Boolean is a single `true` or `false` literal.
	Boolean

	// String is any other value list, joined with single spaces.
	String

	// Integer is a single base-10 integer literal.
	Integer

	// Float is a single floating-point literal.
	Float

	// ListBoolean is two or more boolean literals.
	ListBoolean

	// ListInteger is two or more integer literals.
	ListInteger

	// ListFloat is two or more numeric literals, at least one of them not an integer.
	ListFloat

	// BracedListString is a `[a, b, c]` list whose pieces are not all numeric.
	BracedListString

	// BracedListInteger is a `[1, 2, 3]` list of integer pieces.
	BracedListInteger

	// BracedListFloat is a `[1.5, 2]` list of numeric pieces.
	BracedListFloat
)

var kindNames = [...]string{
	"invalid",             // Invalid
	"boolean",             // Boolean
	"string",              // String
	"integer",             // Integer
	"float",               // Float
	"list-boolean",        // ListBoolean
	"list-integer",        // ListInteger
	"list-float",          // ListFloat
	"braced-list-string",  // BracedListString
	"braced-list-integer", // BracedListInteger
	"braced-list-float",   // BracedListFloat
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "unrecognized kind"
	}

	return kindNames[k]
}

// IsList returns true if the kind produces a slice value.
func (k Kind) IsList() bool {
	return k >= ListBoolean && k <= BracedListFloat
}

// IsBraced returns true if the kind was detected from a bracketed list.
func (k Kind) IsBraced() bool {
	return k >= BracedListString && k <= BracedListFloat
}

// Bucket returns the kind under which values of k are stored in a
// Collection: braced lists collapse onto their unbraced counterparts,
// and braced strings onto the list-string bucket, which has no
// unbraced kind of its own.
func (k Kind) Bucket() Bucket {
	switch k {
	case Boolean:
		return BucketBooleans
	case String:
		return BucketStrings
	case Integer:
		return BucketIntegers
	case Float:
		return BucketFloats
	case BracedListString:
		return BucketListStrings
	case ListInteger, BracedListInteger:
		return BucketListIntegers
	case ListFloat, BracedListFloat:
		return BucketListFloats
	case ListBoolean:
		return BucketListBooleans
	default:
		return BucketNone
	}
}
