package types

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Bucket identifies one of the eight type-partitioned maps of a Collection.
type Bucket uint8

// Buckets are declared in their emission order.
const (
	BucketNone Bucket = iota
	BucketBooleans
	BucketStrings
	BucketIntegers
	BucketFloats
	BucketListStrings
	BucketListIntegers
	BucketListFloats
	BucketListBooleans
)

// Buckets lists all real buckets, in emission order.
var Buckets = []Bucket{
	BucketBooleans,
	BucketStrings,
	BucketIntegers,
	BucketFloats,
	BucketListStrings,
	BucketListIntegers,
	BucketListFloats,
	BucketListBooleans,
}

var bucketNames = [...]string{
	"none",
	"booleans",
	"strings",
	"integers",
	"floats",
	"list-strings",
	"list-integers",
	"list-floats",
	"list-booleans",
}

func (b Bucket) String() string {
	if int(b) >= len(bucketNames) {
		return "unrecognized bucket"
	}

	return bucketNames[b]
}

// Collection is the result of one parse call: every flag name appears
// in exactly one of its maps, chosen by the kind inferred for its values.
type Collection struct {
	Booleans     map[string]bool      `json:"booleans"      yaml:"booleans"`
	Strings      map[string]string    `json:"strings"       yaml:"strings"`
	Integers     map[string]int64     `json:"integers"      yaml:"integers"`
	Floats       map[string]float64   `json:"floats"        yaml:"floats"`
	ListStrings  map[string][]string  `json:"list_strings"  yaml:"list_strings"`
	ListIntegers map[string][]int64   `json:"list_integers" yaml:"list_integers"`
	ListFloats   map[string][]float64 `json:"list_floats"   yaml:"list_floats"`
	ListBooleans map[string][]bool    `json:"list_booleans" yaml:"list_booleans"`
}

// NewCollection returns a collection with all eight buckets allocated.
func NewCollection() *Collection {
	return &Collection{
		Booleans:     make(map[string]bool),
		Strings:      make(map[string]string),
		Integers:     make(map[string]int64),
		Floats:       make(map[string]float64),
		ListStrings:  make(map[string][]string),
		ListIntegers: make(map[string][]int64),
		ListFloats:   make(map[string][]float64),
		ListBooleans: make(map[string][]bool),
	}
}

// Len returns the number of flags stored across all buckets.
func (c *Collection) Len() int {
	return len(c.Booleans) + len(c.Strings) + len(c.Integers) + len(c.Floats) +
		len(c.ListStrings) + len(c.ListIntegers) + len(c.ListFloats) + len(c.ListBooleans)
}

// IsEmpty returns true if no flag was stored.
func (c *Collection) IsEmpty() bool {
	return c.Len() == 0
}

// Names returns the sorted names of all stored flags.
func (c *Collection) Names() []string {
	names := make([]string, 0, c.Len())
	for _, bucket := range Buckets {
		names = append(names, c.BucketNames(bucket)...)
	}

	sort.Strings(names)

	return names
}

// BucketNames returns the sorted names stored in a single bucket.
func (c *Collection) BucketNames(bucket Bucket) []string {
	switch bucket {
	case BucketBooleans:
		return sortedKeys(c.Booleans)
	case BucketStrings:
		return sortedKeys(c.Strings)
	case BucketIntegers:
		return sortedKeys(c.Integers)
	case BucketFloats:
		return sortedKeys(c.Floats)
	case BucketListStrings:
		return sortedKeys(c.ListStrings)
	case BucketListIntegers:
		return sortedKeys(c.ListIntegers)
	case BucketListFloats:
		return sortedKeys(c.ListFloats)
	case BucketListBooleans:
		return sortedKeys(c.ListBooleans)
	default:
		return nil
	}
}

// Lookup returns the value stored for name, whatever its bucket.
func (c *Collection) Lookup(name string) (any, bool) {
	bucket := c.Bucket(name)
	if bucket == BucketNone {
		return nil, false
	}

	return c.Get(bucket, name), true
}

// Get returns the value stored for name in a given bucket, or nil.
func (c *Collection) Get(bucket Bucket, name string) any {
	switch bucket {
	case BucketBooleans:
		return c.Booleans[name]
	case BucketStrings:
		return c.Strings[name]
	case BucketIntegers:
		return c.Integers[name]
	case BucketFloats:
		return c.Floats[name]
	case BucketListStrings:
		return c.ListStrings[name]
	case BucketListIntegers:
		return c.ListIntegers[name]
	case BucketListFloats:
		return c.ListFloats[name]
	case BucketListBooleans:
		return c.ListBooleans[name]
	default:
		return nil
	}
}

// Bucket returns the bucket holding name, or BucketNone.
func (c *Collection) Bucket(name string) Bucket {
	if _, ok := c.Booleans[name]; ok {
		return BucketBooleans
	}
	if _, ok := c.Strings[name]; ok {
		return BucketStrings
	}
	if _, ok := c.Integers[name]; ok {
		return BucketIntegers
	}
	if _, ok := c.Floats[name]; ok {
		return BucketFloats
	}
	if _, ok := c.ListStrings[name]; ok {
		return BucketListStrings
	}
	if _, ok := c.ListIntegers[name]; ok {
		return BucketListIntegers
	}
	if _, ok := c.ListFloats[name]; ok {
		return BucketListFloats
	}
	if _, ok := c.ListBooleans[name]; ok {
		return BucketListBooleans
	}

	return BucketNone
}

func sortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}
