// Package host adapts a parsed collection to the environments consuming it:
// a flat Go map, a cty object value, a pflag.FlagSet, or an encoded
// document (JSON, YAML, HCL or plain text).
//
// None of these adapters are needed to parse a command: they are the thin
// boundary between the typed collection and whatever hosts its values.
package host

import (
	"github.com/reeflective/argtypes/types"
)

// Entry is a single flag of a collection, with the bucket it was stored in.
type Entry struct {
	Name   string
	Bucket types.Bucket
	Value  any
}

// Flatten returns all flags of a collection, bucket by bucket in the
// order booleans, strings, integers, floats, list-strings, list-integers,
// list-floats and list-booleans. Names are sorted within a bucket.
func Flatten(coll *types.Collection) []Entry {
	if coll == nil {
		return nil
	}

	entries := make([]Entry, 0, coll.Len())

	for _, bucket := range types.Buckets {
		for _, name := range coll.BucketNames(bucket) {
			entries = append(entries, Entry{
				Name:   name,
				Bucket: bucket,
				Value:  coll.Get(bucket, name),
			})
		}
	}

	return entries
}

// ToMap flattens a collection into a single map from flag name to value.
func ToMap(coll *types.Collection) map[string]any {
	entries := Flatten(coll)
	flat := make(map[string]any, len(entries))

	for _, entry := range entries {
		flat[entry.Name] = entry.Value
	}

	return flat
}
