// Package iojson reads and writes JSON documents for command line tools.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Write encodes obj as indented JSON followed by a newline.
func Write(w io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// Decode reads a single JSON value of type T from r. Unknown fields are
// rejected so typos in hand written input surface early.
func Decode[T any](r io.Reader) (T, error) {
	var out T
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("decode JSON: %w", err)
	}
	return out, nil
}
