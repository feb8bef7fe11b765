package host

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/reeflective/argtypes/internal/errors"
	"github.com/reeflective/argtypes/internal/infer"
	"github.com/reeflective/argtypes/types"
)

// ApplyOption configures Apply.
type ApplyOption func(o *applyOpts)

type applyOpts struct {
	ignoreUnknown bool
}

// IgnoreUnknown makes Apply skip parsed flags not defined on the flag set,
// instead of reporting them.
func IgnoreUnknown() ApplyOption {
	return func(o *applyOpts) { o.ignoreUnknown = true }
}

// Apply sets the flags of fs from the values of a parsed collection,
// through the regular pflag.Value.Set of each flag, so that they are
// marked as changed. Lists are joined with commas, the separator
// accepted by pflag slice values.
//
// All known flags are set even if some names are unknown: the unknown
// names are then reported together in an error wrapping ErrUnknownFlag.
func Apply(coll *types.Collection, fs *pflag.FlagSet, opts ...ApplyOption) error {
	if coll == nil || fs == nil {
		return errors.ErrNilObject
	}

	var options applyOpts
	for _, opt := range opts {
		opt(&options)
	}

	var unknown []string

	for _, entry := range Flatten(coll) {
		if fs.Lookup(entry.Name) == nil {
			unknown = append(unknown, entry.Name)
			continue
		}

		text, err := FormatValue(entry.Value)
		if err != nil {
			return fmt.Errorf("flag --%s: %w", entry.Name, err)
		}

		if err := fs.Set(entry.Name, text); err != nil {
			return fmt.Errorf("failed to set --%s: %w", entry.Name, err)
		}
	}

	if len(unknown) > 0 && !options.ignoreUnknown {
		return fmt.Errorf("%w: --%s", errors.ErrUnknownFlag, strings.Join(unknown, ", --"))
	}

	return nil
}

// FormatValue returns the text a pflag.Value accepts for a collection value.
// String lists are written as a CSV record, as pflag string slices read them.
func FormatValue(val any) (string, error) {
	switch v := val.(type) {
	case bool:
		return strconv.FormatBool(v), nil
	case string:
		return v, nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return formatFloat(v), nil
	case []bool:
		return joinList(v, strconv.FormatBool), nil
	case []int64:
		return joinList(v, func(i int64) string { return strconv.FormatInt(i, 10) }), nil
	case []float64:
		return joinList(v, formatFloat), nil
	case []string:
		return csvRecord(v)
	default:
		return "", fmt.Errorf("unsupported value type %T", val)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func joinList[T any](list []T, format func(T) string) string {
	parts := make([]string, len(list))
	for i, elem := range list {
		parts[i] = format(elem)
	}

	return strings.Join(parts, ",")
}

func csvRecord(list []string) (string, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	if err := w.Write(list); err != nil {
		return "", err
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return "", err
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Inferred is a pflag.Value whose type is not declared, but inferred from
// the text it is set with, the same way Parse infers the values of a flag.
// Each call to Set replaces the previous value.
type Inferred struct {
	value infer.Value
	set   bool
}

// NewInferred returns an unset inferred value.
func NewInferred() *Inferred {
	return &Inferred{}
}

// Set splits s on whitespace and infers the kind of the resulting values.
func (v *Inferred) Set(s string) error {
	val, err := infer.Infer(strings.Fields(s))
	if err != nil {
		return err
	}

	v.value = val
	v.set = true

	return nil
}

// String returns the text form of the inferred value.
func (v *Inferred) String() string {
	if !v.set {
		return ""
	}

	text, err := FormatValue(v.value.Interface())
	if err != nil {
		return ""
	}

	return text
}

// Type returns the inferred kind, or "value" before the first Set.
func (v *Inferred) Type() string {
	if !v.set {
		return "value"
	}

	return v.value.Kind.String()
}

// Kind returns the inferred kind, types.Invalid before the first Set.
func (v *Inferred) Kind() types.Kind {
	return v.value.Kind
}

// Get returns the converted value, or nil before the first Set.
func (v *Inferred) Get() any {
	if !v.set {
		return nil
	}

	return v.value.Interface()
}
