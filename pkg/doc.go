// Package pkg provides the core libraries for spdxlens.
//
// # Overview
//
// Spdxlens renders SPDX 3.0 JSON-LD example documents into cross-linked
// HTML views for human inspection. The pkg directory is organized along the
// render pipeline:
//
//	SPDX JSON-LD document
//	         ↓
//	    [spdx] package (ordered value tree, document model, identity index)
//	         ↓
//	    [jsonld] package (fetched context, term resolution model)
//	         ↓
//	    [docref] package (documentation URLs + link validation)
//	         ↓
//	    [render/htmlview] / [render/elemgraph] (output)
//
// # Main Packages
//
// [spdx] - Ordered JSON value tree and document model. Decoding preserves
// member order and numeric source text exactly, which the renderer depends
// on. Also builds the identifier index used for same-document references.
//
// [jsonld] - The subset of JSON-LD context semantics SPDX documents use:
// term-to-IRI bindings, nested per-term contexts, and @vocab vocabularies.
//
// [docref] - Resolves term names to documentation URLs in the published
// specification model and validates each distinct URL at most once per
// render. A broken link is fatal for the render that derived it.
//
// [render/htmlview] - The annotated HTML renderer: a single depth-first
// walk combining context-sensitive resolution, identifier bookkeeping, and
// anchor deduplication.
//
// [render/elemgraph] - Element/relationship diagrams via Graphviz.
//
// [httputil] - The timeout-bearing HTTP client behind context fetching and
// link checks.
//
// [errors] - Structured error codes shared by the CLI and serve mode.
//
// [buildinfo] - Build-time version information set via ldflags.
//
// # Quick Start
//
// Render a document to HTML:
//
//	doc, _ := spdx.LoadDocument("example.json")
//	url, _ := doc.ContextURL()
//	client := httputil.NewClient(httputil.DefaultTimeout)
//	jctx, _ := jsonld.Fetch(ctx, client, url)
//	r := htmlview.New(doc, jctx, docref.NewResolver(docref.NewValidator(client)))
//	err := r.WritePage(ctx, out)
//
// [spdx]: https://pkg.go.dev/github.com/matzehuels/spdxlens/pkg/spdx
// [jsonld]: https://pkg.go.dev/github.com/matzehuels/spdxlens/pkg/jsonld
// [docref]: https://pkg.go.dev/github.com/matzehuels/spdxlens/pkg/docref
// [render/htmlview]: https://pkg.go.dev/github.com/matzehuels/spdxlens/pkg/render/htmlview
// [render/elemgraph]: https://pkg.go.dev/github.com/matzehuels/spdxlens/pkg/render/elemgraph
// [httputil]: https://pkg.go.dev/github.com/matzehuels/spdxlens/pkg/httputil
// [errors]: https://pkg.go.dev/github.com/matzehuels/spdxlens/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/spdxlens/pkg/buildinfo
package pkg
