// Package render groups the output views spdxlens can produce.
//
// # Overview
//
//   - [htmlview]: the annotated, cross-linked HTML view of a document
//   - [elemgraph]: node-link diagrams of the element/relationship structure
//
// Both views consume the same parsed document from pkg/spdx; they share no
// state and can be generated independently.
//
// [htmlview]: github.com/matzehuels/spdxlens/pkg/render/htmlview
// [elemgraph]: github.com/matzehuels/spdxlens/pkg/render/elemgraph
package render
