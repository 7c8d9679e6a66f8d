package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format names accepted by Write.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Write renders reports in the named format. Text output separates
// multiple reports with a blank line; YAML and JSON emit a single report as
// an object and several as a list.
func Write(w io.Writer, format string, reports ...Report) error {
	switch strings.ToLower(format) {
	case "", FormatText:
		for i, r := range reports {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if err := WriteText(w, r); err != nil {
				return err
			}
		}

		return nil
	case FormatYAML:
		if len(reports) == 1 {
			return WriteYAML(w, reports[0])
		}

		return encodeYAML(w, reports)
	case FormatJSON:
		if len(reports) == 1 {
			return WriteJSON(w, reports[0])
		}

		return encodeJSON(w, reports)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteText renders r as an aligned human-readable table.
func WriteText(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "algorithm:\t%s\n", r.Algorithm)
	fmt.Fprintf(tw, "catalog:\t%d items\n", r.CatalogSize)
	fmt.Fprintf(tw, "capacity:\t%s oz\n", num(r.Capacity))
	if r.Elapsed > 0 {
		fmt.Fprintf(tw, "elapsed:\t%s\n", r.Elapsed)
	}
	if len(r.Items) == 0 {
		fmt.Fprintln(tw, "selected:\tnone")
	} else {
		fmt.Fprintln(tw, "selected:")
		for _, l := range r.Items {
			fmt.Fprintf(tw, "  [%d]\t%s\t%s oz\t%s cal\n", l.Index, l.Name, num(l.Weight), num(l.Calories))
		}
	}
	fmt.Fprintf(tw, "total:\t%s oz, %s cal (%s%% of capacity)\n",
		num(r.TotalWeight), num(r.TotalCalories), strconv.FormatFloat(r.Utilization*100, 'f', 1, 64))

	return tw.Flush()
}

// WriteYAML renders r as a YAML document.
func WriteYAML(w io.Writer, r Report) error {
	return encodeYAML(w, r)
}

// WriteJSON renders r as indented JSON followed by a newline.
func WriteJSON(w io.Writer, r Report) error {
	return encodeJSON(w, r)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// num formats a float without trailing zeros.
func num(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
