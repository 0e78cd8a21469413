// Package spdx models an SPDX 3.0 JSON-LD document as an ordered JSON value
// tree and provides the identifier index used to resolve same-document
// references.
//
// # Overview
//
// Rendering must reproduce the source document exactly, so the usual
// map-based JSON decoding is not enough: Go maps do not preserve member
// order. [Value] is a tagged variant decoded from the token stream of
// encoding/json, keeping object members in source order and numbers as their
// literal source text. Booleans and null are distinct kinds; neither is
// coerced through the number path.
//
// [Document] wraps the root value with accessors for the @context URL and
// the @graph node sequence. [BuildIndex] collects every identifier declared
// in the graph, including external identifiers imported by SpdxDocument
// nodes, so forward references resolve before any value is rendered.
package spdx
