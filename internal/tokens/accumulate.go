// Package tokens splits a command string into whitespace-delimited tokens
// and groups them under the flag that owns them.
package tokens

import (
	"strings"
)

// FlagPrefix introduces a flag token.
const FlagPrefix = "--"

// boolValue is the synthetic value list stored for a boolean flag.
const boolValue = "true"

// Accumulated maps each flag name to the raw value tokens that followed it.
// Names are kept in the order they were first committed.
type Accumulated struct {
	names  []string
	values map[string][]string
}

// Names returns the committed flag names, in first-commit order.
func (a *Accumulated) Names() []string {
	names := make([]string, len(a.names))
	copy(names, a.names)

	return names
}

// Values returns the raw value tokens of a flag, and whether it was committed.
func (a *Accumulated) Values(name string) ([]string, bool) {
	vals, ok := a.values[name]

	return vals, ok
}

// Len returns the number of distinct committed flags.
func (a *Accumulated) Len() int {
	return len(a.names)
}

// commit stores values for name, replacing any earlier occurrence.
// A replaced name keeps its original position.
func (a *Accumulated) commit(name string, values []string) {
	if _, exists := a.values[name]; !exists {
		a.names = append(a.names, name)
	}

	a.values[name] = values
}

// Accumulate splits command on runs of whitespace and groups value tokens
// under the most recent flag token. Flags found in booleanFlags take no
// value and are stored as a single "true" token. The function never fails:
// value tokens seen before any flag, or after a boolean flag, are dropped,
// and a non-boolean flag without values produces no entry.
func Accumulate(command string, booleanFlags map[string]bool) *Accumulated {
	acc := &Accumulated{values: make(map[string][]string)}

	var (
		current string
		active  bool
		buffer  []string
	)

	for _, token := range strings.Fields(command) {
		if !strings.HasPrefix(token, FlagPrefix) {
			if active {
				buffer = append(buffer, token)
			}

			continue
		}

		if active && len(buffer) > 0 {
			acc.commit(current, buffer)
		}

		buffer = nil
		current = strings.TrimPrefix(token, FlagPrefix)

		if booleanFlags[current] {
			acc.commit(current, []string{boolValue})
			active = false
		} else {
			active = true
		}
	}

	if active && len(buffer) > 0 {
		acc.commit(current, buffer)
	}

	return acc
}

// AccumulateArgs is Accumulate over an already split argument vector.
// Arguments are rejoined with spaces, so an argument containing
// whitespace is split again.
func AccumulateArgs(args []string, booleanFlags map[string]bool) *Accumulated {
	return Accumulate(strings.Join(args, " "), booleanFlags)
}

// Set builds a lookup set from a list of boolean flag names.
func Set(names ...[]string) map[string]bool {
	set := make(map[string]bool)

	for _, list := range names {
		for _, name := range list {
			set[name] = true
		}
	}

	return set
}
