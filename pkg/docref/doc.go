// Package docref resolves SPDX term names to documentation URLs in the
// published specification model and validates that those URLs exist.
//
// # Overview
//
// Resolution is context-sensitive: the same name can mean different things
// under different nested JSON-LD contexts, and a context declaring a generic
// vocabulary (@vocab) turns every name at that level into a vocabulary term.
// A resolved IRI is split into its last two path segments, profile and local
// name, which address a page in the specification model:
//
//	https://spdx.github.io/spdx-spec/v3.0.1/model/{profile}/{Kind}/{localName}
//
// Names absent from the context and IRIs too short to split are absorbed
// silently: the term renders unlinked and traversal continues. A URL that
// fails validation is fatal for the whole render.
//
// The pure URL computation is separated from the impure existence check
// behind the small [Checker] interface, so tests substitute a fake instead
// of performing network calls.
package docref
