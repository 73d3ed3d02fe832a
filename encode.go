package pool

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// DecodeDocument reads a whole JSON document from r.
func DecodeDocument(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		var ferr *FormatError
		if errors.As(err, &ferr) {
			return nil, ferr
		}
		return nil, &FormatError{Err: fmt.Errorf("not a correct json: %w", err)}
	}
	return &doc, nil
}

// EncodeDocument writes doc as indented JSON followed by a newline.
func EncodeDocument(w io.Writer, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// DecodeGroup reads a document from r and rebuilds its Group.
func DecodeGroup(r io.Reader, f Format) (*Group, error) {
	doc, err := DecodeDocument(r)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc, f)
}

// EncodeGroup writes the canonical document of g to w.
func EncodeGroup(w io.Writer, g *Group, f Format) error {
	return EncodeDocument(w, g.ToDocument(f))
}
