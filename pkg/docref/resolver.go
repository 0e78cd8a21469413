package docref

import (
	"context"
	"fmt"
	"strings"

	"github.com/matzehuels/spdxlens/pkg/jsonld"
)

// Kind selects the section of the specification model a term belongs to.
type Kind string

// Term kinds. KindNone means the caller expects no documentation link for
// the name; only a generic-vocabulary context can still resolve it.
const (
	KindNone         Kind = ""
	KindClasses      Kind = "Classes"
	KindProperties   Kind = "Properties"
	KindVocabularies Kind = "Vocabularies"
)

// urlTemplate addresses a page of the published specification model.
const urlTemplate = "https://spdx.github.io/spdx-spec/v3.0.1/model/%s/%s/%s"

// Resolution is the outcome of resolving one name under one context.
// URL and CSSClass are empty when the name did not resolve; Context is the
// context to use for values reached through the name (the enclosing context
// unless the term's descriptor replaced it).
type Resolution struct {
	URL      string
	CSSClass string
	Context  *jsonld.Context
}

// Resolver turns (kind, name, context) triples into validated documentation
// URLs. Every non-empty URL it returns has passed the validator.
type Resolver struct {
	validator *Validator
}

// NewResolver creates a Resolver that confirms URLs through validator.
func NewResolver(validator *Validator) *Resolver {
	return &Resolver{validator: validator}
}

// Validator returns the resolver's validator, for summary reporting.
func (r *Resolver) Validator() *Validator { return r.validator }

// Resolve determines what name means under jctx.
//
// A context declaring @vocab resolves every name as a vocabulary term under
// the vocabulary IRI; the link targets the vocabulary page itself, not an
// individual entry. Otherwise the name is looked up in the context: absent
// names, descriptors without an IRI, and IRIs too short to split into
// profile and local name all resolve to nothing, which is not an error.
// The returned error is non-nil only when URL validation fails, and that is
// fatal for the render.
func (r *Resolver) Resolve(ctx context.Context, kind Kind, name string, jctx *jsonld.Context) (Resolution, error) {
	sub := jctx
	var iri string

	if jctx != nil && jctx.Vocab != "" {
		iri = jctx.Vocab
		kind = KindVocabularies
	} else {
		if kind == KindNone {
			return Resolution{Context: sub}, nil
		}
		term, ok := jctx.Lookup(name)
		if !ok {
			return Resolution{Context: sub}, nil
		}
		if term.Context != nil {
			sub = term.Context
		}
		if term.IRI == "" {
			return Resolution{Context: sub}, nil
		}
		iri = term.IRI
	}

	profile, local, ok := splitIRI(iri)
	if !ok {
		return Resolution{Context: sub}, nil
	}
	url := fmt.Sprintf(urlTemplate, profile, kind, local)

	if err := r.validator.Confirm(ctx, url); err != nil {
		return Resolution{}, err
	}
	return Resolution{
		URL:      url,
		CSSClass: strings.ToLower(string(kind)),
		Context:  sub,
	}, nil
}

// splitIRI extracts the last two path segments of an IRI, after stripping
// any trailing separator. An IRI with fewer than two separators cannot be
// split and is reported as not ok.
func splitIRI(iri string) (profile, local string, ok bool) {
	trimmed := strings.TrimRight(iri, "/")
	last := strings.LastIndex(trimmed, "/")
	if last < 0 {
		return "", "", false
	}
	prev := strings.LastIndex(trimmed[:last], "/")
	if prev < 0 {
		return "", "", false
	}
	return trimmed[prev+1 : last], trimmed[last+1:], true
}
