// Package htmlview renders an SPDX 3.0 JSON-LD document as syntax-highlighted,
// cross-linked HTML.
//
// # Overview
//
// The renderer walks the document's value tree depth-first, preserving source
// member order and nesting exactly, and annotates every string it meets:
//
//   - identifiers known to the document become in-page links (#id)
//   - class, property, and vocabulary terms become links into the published
//     specification model, validated before they are trusted
//   - other absolute http(s) URLs become plain external links
//   - everything else renders as a quoted literal
//
// Name resolution is context-sensitive: each object key may switch the
// JSON-LD context its value is rendered under. The first structural
// occurrence of a class or property term receives a DOM anchor; recurrences
// render without one, so no id is ever emitted twice.
//
// All render state (identifier index, anchor set, validated URLs) lives in
// one renderer instance and is reset on every write, never shared across
// renders. Output is streamed: a fatal validation failure mid-walk leaves a
// truncated document behind, by design.
package htmlview
