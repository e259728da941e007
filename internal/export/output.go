// Package export renders a catalog and its dependency graph for output.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

func encodeJSONCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeJSONPretty(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeJSON encodes v followed by a newline, indented when pretty is set.
func EncodeJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return encodeJSONPretty(v)
	}
	return encodeJSONCompact(v)
}

// WriteTo writes data to outPath, or to stdout when outPath is "" or "-".
// Parent directories are created as needed.
func WriteTo(stdout io.Writer, outPath string, data []byte) error {
	if outPath == "" || outPath == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
