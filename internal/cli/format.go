package cli

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/oliverbestmann/frustum/glm"
)

type Format string

const (
	FormatText Format = "text"
	FormatFlat Format = "flat"
	FormatJSON Format = "json"
	FormatBin  Format = "bin"
)

func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(value)); f {
	case FormatText, FormatFlat, FormatJSON, FormatBin:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q, expected one of text, flat, json, bin", value)
	}
}

type result struct {
	Viewport
	Matrix glm.Mat4f `json:"matrix"`
}

func write(out io.Writer, format Format, results []result) error {
	switch format {
	case FormatText:
		for _, r := range results {
			if _, err := fmt.Fprintf(out, "# %s\n%s\n", r.Viewport, r.Matrix); err != nil {
				return err
			}
		}

	case FormatFlat:
		for _, r := range results {
			columns := r.Matrix.ColumnMajor()

			values := make([]string, len(columns))
			for i, v := range columns {
				values[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
			}

			if _, err := fmt.Fprintln(out, strings.Join(values, " ")); err != nil {
				return err
			}
		}

	case FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

	case FormatBin:
		for _, r := range results {
			if _, err := out.Write(r.Matrix.Bytes(binary.LittleEndian)); err != nil {
				return err
			}
		}

	default:
		return fmt.Errorf("unknown format %q", format)
	}

	return nil
}
