package host

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"gopkg.in/yaml.v3"

	"github.com/reeflective/argtypes/internal/errors"
	"github.com/reeflective/argtypes/types"
)

// Format is an encoding for a parsed collection.
type Format string

const (
	// FormatJSON writes the flattened collection as an indented JSON object.
	FormatJSON Format = "json"

	// FormatYAML writes the flattened collection as a YAML mapping.
	FormatYAML Format = "yaml"

	// FormatHCL writes one HCL attribute per flag.
	FormatHCL Format = "hcl"

	// FormatText writes one `name bucket value` line per flag.
	FormatText Format = "text"
)

// Formats lists all supported encodings.
var Formats = []Format{FormatJSON, FormatYAML, FormatHCL, FormatText}

// Encode writes a collection to w in the given format.
func Encode(w io.Writer, coll *types.Collection, format Format) error {
	if coll == nil {
		return errors.ErrNilObject
	}

	switch format {
	case FormatJSON:
		return encodeJSON(w, coll)
	case FormatYAML:
		return encodeYAML(w, coll)
	case FormatHCL:
		return encodeHCL(w, coll)
	case FormatText:
		return encodeText(w, coll)
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnknownFormat, format)
	}
}

func encodeJSON(w io.Writer, coll *types.Collection) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(ToMap(coll)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

func encodeYAML(w io.Writer, coll *types.Collection) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(ToMap(coll)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return enc.Close()
}

func encodeHCL(w io.Writer, coll *types.Collection) error {
	file := hclwrite.NewEmptyFile()
	body := file.Body()

	for _, entry := range Flatten(coll) {
		if !hclsyntax.ValidIdentifier(entry.Name) {
			return fmt.Errorf("flag --%s: not a valid HCL attribute name", entry.Name)
		}

		val, err := ctyValue(entry.Value)
		if err != nil {
			return fmt.Errorf("flag --%s: %w", entry.Name, err)
		}

		body.SetAttributeValue(entry.Name, val)
	}

	_, err := file.WriteTo(w)

	return err
}

func encodeText(w io.Writer, coll *types.Collection) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for _, entry := range Flatten(coll) {
		text, err := FormatValue(entry.Value)
		if err != nil {
			return fmt.Errorf("flag --%s: %w", entry.Name, err)
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\n", entry.Name, entry.Bucket, text)
	}

	return tw.Flush()
}
