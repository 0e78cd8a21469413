package elemgraph

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/spdxlens/pkg/spdx"
)

// typeRelationship marks graph members that contribute edges, not nodes.
const typeRelationship = "Relationship"

// Options configures diagram generation.
type Options struct {
	// Detailed includes the node's type under its identifier in labels.
	// When false, only the identifier is shown.
	Detailed bool
}

// ToDOT converts the document's element graph to Graphviz DOT format.
// Identified non-Relationship nodes become boxes; each Relationship node
// becomes one edge per "to" element, labeled with its relationshipType.
// Edge endpoints that are not declared in the graph (external references)
// still appear, so dangling references stay visible.
func ToDOT(doc *spdx.Document, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, node := range doc.Graph() {
		id := spdx.NodeID(node)
		if id == "" || spdx.NodeType(node) == typeRelationship {
			continue
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", id, fmtLabel(node, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, node := range doc.Graph() {
		if spdx.NodeType(node) != typeRelationship {
			continue
		}
		writeEdges(&buf, node)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(node *spdx.Value, detailed bool) string {
	id := spdx.NodeID(node)
	if !detailed {
		return id
	}
	if typ := spdx.NodeType(node); typ != "" {
		return id + "\n" + typ
	}
	return id
}

func writeEdges(buf *bytes.Buffer, rel *spdx.Value) {
	from := rel.StringField("from")
	if from == "" {
		return
	}
	label := rel.StringField("relationshipType")

	to := rel.Field("to")
	switch {
	case to == nil:
		return
	case to.Kind == spdx.KindString:
		writeEdge(buf, from, to.Str, label)
	case to.Kind == spdx.KindArray:
		for _, elem := range to.Elems {
			if elem.Kind == spdx.KindString {
				writeEdge(buf, from, elem.Str, label)
			}
		}
	}
}

func writeEdge(buf *bytes.Buffer, from, to, label string) {
	if label != "" {
		fmt.Fprintf(buf, "  %q -> %q [label=%q];\n", from, to, label)
		return
	}
	fmt.Fprintf(buf, "  %q -> %q;\n", from, to)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
