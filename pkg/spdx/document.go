package spdx

import (
	"io"
	"os"

	"github.com/matzehuels/spdxlens/pkg/errors"
)

// Node type with special identifier semantics: its import declarations bring
// external identifiers into the document's scope.
const typeSpdxDocument = "SpdxDocument"

// Document is a parsed SPDX 3.0 JSON-LD document. Root is always an object.
type Document struct {
	Root *Value
}

// ContextURL returns the document's @context URL.
func (d *Document) ContextURL() (string, error) {
	url := d.Root.StringField("@context")
	if url == "" {
		return "", errors.New(errors.ErrCodeInvalidDocument, "document has no @context URL")
	}
	return url, nil
}

// Graph returns the @graph nodes in source order, or nil if the document has
// no @graph member.
func (d *Document) Graph() []*Value {
	g := d.Root.Field("@graph")
	if g == nil || g.Kind != KindArray {
		return nil
	}
	return g.Elems
}

// NodeID returns a node's identifier: @id, falling back to spdxId.
func NodeID(node *Value) string {
	if id := node.StringField("@id"); id != "" {
		return id
	}
	return node.StringField("spdxId")
}

// NodeType returns a node's type name, or "".
func NodeType(node *Value) string {
	return node.StringField("type")
}

// ReadDocument decodes a document from r. The root value must be an object.
func ReadDocument(r io.Reader) (*Document, error) {
	root, err := DecodeValue(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode document")
	}
	if root.Kind != KindObject {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "document root is %s, expected object", root.Kind)
	}
	return &Document{Root: root}, nil
}

// LoadDocument reads and decodes the document at path. Errors wrap the
// underlying cause with the file path for context.
func LoadDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()

	doc, err := ReadDocument(f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "load %s", path)
	}
	return doc, nil
}
