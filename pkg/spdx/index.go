package spdx

// Index is the set of every identifier known to exist in one document. It is
// built once per render, before anything is written, so forward references
// to identifiers declared later in the graph still resolve.
type Index map[string]struct{}

// Has reports whether id is a known identifier.
func (ix Index) Has(id string) bool {
	_, ok := ix[id]
	return ok
}

// BuildIndex scans the document's @graph once and collects identifiers.
// Every node identifier is added; for SpdxDocument nodes, each import
// entry's externalSpdxId is added as well. The scan is deliberately shallow:
// identifiers live on graph members and their direct imports, never on
// arbitrarily nested objects. Nodes and imports without an identifier are
// skipped silently.
func BuildIndex(d *Document) Index {
	ix := make(Index)
	for _, node := range d.Graph() {
		id := NodeID(node)
		if id == "" {
			continue
		}
		ix[id] = struct{}{}

		if NodeType(node) != typeSpdxDocument {
			continue
		}
		imports := node.Field("import")
		if imports == nil || imports.Kind != KindArray {
			continue
		}
		for _, imp := range imports.Elems {
			if ext := imp.StringField("externalSpdxId"); ext != "" {
				ix[ext] = struct{}{}
			}
		}
	}
	return ix
}
