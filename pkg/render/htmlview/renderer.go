package htmlview

import (
	"context"
	"encoding/json"
	"html"
	"io"
	"strings"

	"github.com/matzehuels/spdxlens/pkg/docref"
	"github.com/matzehuels/spdxlens/pkg/jsonld"
	"github.com/matzehuels/spdxlens/pkg/spdx"
)

// Structural tokens, each wrapped in a token span so punctuation is styled
// uniformly.
const (
	tokLBrace   = `<span class="token">{</span>`
	tokRBrace   = `<span class="token">}</span>`
	tokLBracket = `<span class="token">[</span>`
	tokRBracket = `<span class="token">]</span>`
	tokQuote    = `<span class="token">"</span>`
	tokColon    = `<span class="token">:</span>`
	tokComma    = `<span class="token">,</span>`
)

// Renderer writes the annotated HTML view of one document. Create one per
// render; Write resets all per-render state before walking the tree.
type Renderer struct {
	doc      *spdx.Document
	root     *jsonld.Context
	resolver *docref.Resolver

	index   spdx.Index
	anchors map[string]struct{}
	out     *stickyWriter
}

// New creates a Renderer for doc, resolving names against the root context
// and linking terms through resolver.
func New(doc *spdx.Document, root *jsonld.Context, resolver *docref.Resolver) *Renderer {
	return &Renderer{doc: doc, root: root, resolver: resolver}
}

// Write renders the legend and the document body to w. The identifier index
// is built over the whole graph before the first byte of the tree is
// written, so forward references resolve. A validation failure aborts
// immediately, leaving whatever was already written.
func (r *Renderer) Write(ctx context.Context, w io.Writer) error {
	r.index = spdx.BuildIndex(r.doc)
	r.anchors = make(map[string]struct{})
	r.out = &stickyWriter{w: w}

	r.writeLegend()
	r.out.WriteString(`<pre class="code"><code>`)
	if err := r.writeObject(ctx, r.doc.Root, r.root, 0); err != nil {
		return err
	}
	r.out.WriteString("</code></pre>")
	return r.out.err
}

// writeValue dispatches on the runtime shape of v. Booleans and null are
// their own explicit cases; neither falls through the number branch.
func (r *Renderer) writeValue(ctx context.Context, v *spdx.Value, jctx *jsonld.Context, kind docref.Kind, indent int) error {
	switch v.Kind {
	case spdx.KindString:
		return r.writeString(ctx, v.Str, jctx, kind)
	case spdx.KindObject:
		return r.writeObject(ctx, v, jctx, indent)
	case spdx.KindArray:
		return r.writeList(ctx, v, jctx, indent)
	case spdx.KindBool:
		if v.Bool {
			r.out.WriteString(`<span class="boolean">true</span>`)
		} else {
			r.out.WriteString(`<span class="boolean">false</span>`)
		}
	case spdx.KindNumber:
		r.out.WriteString(`<span class="number">` + html.EscapeString(v.Number.String()) + `</span>`)
	case spdx.KindNull:
		r.out.WriteString(`<span class="number">null</span>`)
	}
	return nil
}

// writeString annotates one string value. Resolution runs first so its
// validation side effect happens in traversal order; a same-document
// identifier still wins over whatever the string resolves to externally.
func (r *Renderer) writeString(ctx context.Context, s string, jctx *jsonld.Context, kind docref.Kind) error {
	res, err := r.resolver.Resolve(ctx, kind, s, jctx)
	if err != nil {
		return err
	}

	switch {
	case r.index.Has(s):
		r.out.WriteString(`<a href="#` + html.EscapeString(s) + `">`)
		r.out.WriteString(stringSpan(s, "ident"))
		r.out.WriteString("</a>")
	case res.URL != "":
		r.out.WriteString(`<a href="` + html.EscapeString(res.URL) + `">`)
		r.out.WriteString(stringSpan(s, res.CSSClass))
		r.out.WriteString("</a>")
	case strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://"):
		r.out.WriteString(`<a href="` + html.EscapeString(s) + `">`)
		r.out.WriteString(stringSpan(s, "link"))
		r.out.WriteString("</a>")
	default:
		r.out.WriteString(stringSpan(s, "string"))
	}
	return nil
}

// writeObject renders a node. Up to three id-bearing spans wrap the braces,
// opened as class anchor, then own identifier, then external identifier, and
// closed in reverse. Members render in source order.
func (r *Renderer) writeObject(ctx context.Context, v *spdx.Value, jctx *jsonld.Context, indent int) error {
	spans := 0
	if typ := spdx.NodeType(v); typ != "" {
		if a := r.anchor(typ, "class", jctx); a != "" {
			r.out.WriteString(`<span id="` + html.EscapeString(a) + `">`)
			spans++
		}
	}
	if id := spdx.NodeID(v); id != "" {
		r.out.WriteString(`<span id="` + html.EscapeString(id) + `">`)
		spans++
	}
	if ext := v.StringField("externalSpdxId"); ext != "" {
		r.out.WriteString(`<span id="` + html.EscapeString(ext) + `">`)
		spans++
	}

	r.out.WriteString(tokLBrace)
	r.out.WriteString("\n")
	for i, m := range v.Members {
		if err := r.writeMember(ctx, m, jctx, indent+1); err != nil {
			return err
		}
		if i < len(v.Members)-1 {
			r.out.WriteString(tokComma)
		}
		r.out.WriteString("\n")
	}
	r.out.WriteString(indentStr(indent) + tokRBrace)

	for range spans {
		r.out.WriteString("</span>")
	}
	return nil
}

// writeMember renders one key/value pair, wrapped in a property-anchor span
// on the key's first occurrence. Resolving the key yields the sub-context
// its value is rendered under; the value of the "type" key alone resolves
// against the class namespace.
func (r *Renderer) writeMember(ctx context.Context, m spdx.Member, jctx *jsonld.Context, indent int) error {
	anchor := r.anchor(m.Key, "property", jctx)
	if anchor != "" {
		r.out.WriteString(`<span id="` + html.EscapeString(anchor) + `">`)
	}

	r.out.WriteString(indentStr(indent))
	res, err := r.resolver.Resolve(ctx, docref.KindProperties, m.Key, jctx)
	if err != nil {
		return err
	}
	if res.URL != "" {
		r.out.WriteString(`<a href="` + html.EscapeString(res.URL) + `">`)
	}
	css := res.CSSClass
	if css == "" {
		css = "string"
	}
	r.out.WriteString(stringSpan(m.Key, css))
	if res.URL != "" {
		r.out.WriteString("</a>")
	}
	r.out.WriteString(tokColon + " ")

	kind := docref.KindNone
	if m.Key == "type" {
		kind = docref.KindClasses
	}
	if err := r.writeValue(ctx, m.Value, res.Context, kind, indent); err != nil {
		return err
	}

	if anchor != "" {
		r.out.WriteString("</span>")
	}
	return nil
}

// writeList renders an array, always multi-line, elements under the same
// context as the array itself.
func (r *Renderer) writeList(ctx context.Context, v *spdx.Value, jctx *jsonld.Context, indent int) error {
	r.out.WriteString(tokLBracket)
	r.out.WriteString("\n")
	for i, elem := range v.Elems {
		r.out.WriteString(indentStr(indent + 1))
		if err := r.writeValue(ctx, elem, jctx, docref.KindNone, indent+1); err != nil {
			return err
		}
		if i < len(v.Elems)-1 {
			r.out.WriteString(tokComma)
		}
		r.out.WriteString("\n")
	}
	r.out.WriteString(indentStr(indent) + tokRBracket)
	return nil
}

// anchor hands out the DOM anchor for a term's first structural occurrence.
// The candidate is the term's IRI when the context binds one, otherwise
// prefix-name. A candidate already handed out yields "", so the same id is
// never emitted twice.
func (r *Renderer) anchor(name, prefix string, jctx *jsonld.Context) string {
	candidate := ""
	if term, ok := jctx.Lookup(name); ok {
		candidate = term.IRI
	}
	if candidate == "" {
		candidate = prefix + "-" + name
	}
	if _, taken := r.anchors[candidate]; taken {
		return ""
	}
	r.anchors[candidate] = struct{}{}
	return candidate
}

// writeLegend emits the color legend preceding the rendered document.
func (r *Renderer) writeLegend() {
	r.out.WriteString("<table>\n")
	r.out.WriteString("<tr><th>Legend</th></tr>\n")
	r.out.WriteString(`<tr><td><span class="string">String</span></td></tr>` + "\n")
	r.out.WriteString(`<tr><td><span class="classes">SPDX Class (link)</span></td></tr>` + "\n")
	r.out.WriteString(`<tr><td><span class="properties">SPDX Property (link)</span></td></tr>` + "\n")
	r.out.WriteString(`<tr><td><span class="vocabularies">SPDX Vocabulary (link)</span></td></tr>` + "\n")
	r.out.WriteString(`<tr><td><span class="ident">Identifier IRI (link)</span></td></tr>` + "\n")
	r.out.WriteString("</table>\n")
}

// stringSpan renders a quoted string literal: token quotes around a styled
// span holding the JSON-escaped, then HTML-escaped body.
func stringSpan(s, class string) string {
	return tokQuote + `<span class="` + class + `">` + escapeBody(s) + `</span>` + tokQuote
}

// escapeBody JSON-escapes s (without HTML-aware escaping, which would mangle
// the subsequent entity escaping) and strips the surrounding quotes, then
// HTML-escapes the result.
func escapeBody(s string) string {
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // encoding a string cannot fail
	quoted := strings.TrimSuffix(sb.String(), "\n")
	return html.EscapeString(quoted[1 : len(quoted)-1])
}

// indentStr returns two spaces per nesting level.
func indentStr(level int) string {
	return strings.Repeat("  ", level)
}

// stickyWriter forwards writes to w and remembers the first error, so the
// walk can ignore per-write errors and report once at the end.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (sw *stickyWriter) WriteString(s string) {
	if sw.err != nil {
		return
	}
	_, sw.err = io.WriteString(sw.w, s)
}
