// Package elemgraph renders the element/relationship structure of an SPDX
// document as a node-link diagram.
//
// # Overview
//
// Every identified node of the document's @graph becomes a graph node;
// Relationship nodes contribute labeled edges from their "from" element to
// each "to" element. The diagram shows the reference structure the HTML view
// cross-links, which helps when an example's relationships get dense.
//
// [ToDOT] produces Graphviz DOT text; [RenderSVG] and [RenderPNG] rasterize
// it through the embedded Graphviz engine.
package elemgraph
