package converters

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"
)

// Format names a document encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

// ParseFormat accepts a format name or a file extension
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "hcl":
		return FormatHCL, nil
	}
	return "", fmt.Errorf("unsupported format %q (must be: yaml, json, hcl)", s)
}

// EncodeYAML writes doc as YAML
func EncodeYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// DecodeYAML reads and validates a YAML document. Unknown keys are rejected.
func DecodeYAML(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Document{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return doc, doc.Validate()
}

// EncodeJSON writes doc as indented JSON
func EncodeJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// DecodeJSON reads and validates a JSON document. Unknown keys are rejected.
func DecodeJSON(r io.Reader) (Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return doc, doc.Validate()
}

type hclDocument struct {
	Title       string         `hcl:"title,optional"`
	Description string         `hcl:"description,optional"`
	Containers  []hclContainer `hcl:"container,block"`
}

type hclContainer struct {
	ID      string `hcl:"id,label"`
	Row     int    `hcl:"row"`
	Column  int    `hcl:"column"`
	Width   int    `hcl:"width"`
	Type    string `hcl:"type,optional"`
	Content string `hcl:"content,optional"`
}

// DecodeHCL reads and validates an HCL template. filename is only used in
// diagnostics.
func DecodeHCL(filename string, src []byte) (Document, error) {
	if filepath.Ext(filename) != ".hcl" {
		filename += ".hcl"
	}

	var raw hclDocument
	if err := hclsimple.Decode(filename, src, nil, &raw); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	doc := Document{
		Title:       raw.Title,
		Description: raw.Description,
		Containers:  make([]ContainerDoc, len(raw.Containers)),
	}
	for i, c := range raw.Containers {
		doc.Containers[i] = ContainerDoc{
			ID:      c.ID,
			Row:     c.Row,
			Column:  c.Column,
			Width:   c.Width,
			Content: c.Content,
		}
		if c.Type != "" {
			if err := doc.Containers[i].Type.UnmarshalText([]byte(c.Type)); err != nil {
				return Document{}, fmt.Errorf("%w: container %s: %w", ErrInvalidDocument, c.ID, err)
			}
		}
	}
	return doc, doc.Validate()
}

// Decode reads a document in the given format
func Decode(format Format, filename string, src []byte) (Document, error) {
	switch format {
	case FormatYAML:
		return DecodeYAML(bytes.NewReader(src))
	case FormatJSON:
		return DecodeJSON(bytes.NewReader(src))
	case FormatHCL:
		return DecodeHCL(filename, src)
	}
	return Document{}, fmt.Errorf("unsupported format %q", format)
}

// Encode writes a document in the given format. HCL is read-only.
func Encode(w io.Writer, format Format, doc Document) error {
	switch format {
	case FormatYAML:
		return EncodeYAML(w, doc)
	case FormatJSON:
		return EncodeJSON(w, doc)
	}
	return fmt.Errorf("cannot write %s documents", format)
}

// DecodeFile reads a document, picking the format from the file extension
func DecodeFile(path string) (Document, error) {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return Document{}, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading template: %w", err)
	}
	return Decode(format, path, src)
}
