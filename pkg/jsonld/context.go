// Package jsonld models the subset of JSON-LD context mappings that SPDX 3.0
// documents rely on: term-to-IRI bindings, per-term nested contexts, and
// generic vocabularies (@vocab).
//
// A context answers, for one nesting level of the document, what IRI a name
// denotes and which context governs the values reached through that name.
// Contexts nest: a term's descriptor may carry its own @context, and objects
// reached through that term resolve their keys against it instead of the
// parent mapping.
package jsonld

// Term is one entry of a context mapping. A term may bind an IRI, introduce
// a nested context for the values reached through it, or both. A term with
// neither is still meaningful: it shadows the name without resolving it.
type Term struct {
	// IRI is the canonical identifier the term expands to, or "" if the
	// term's descriptor carries no @id.
	IRI string

	// Context is the nested context to use for values reached through this
	// term, or nil to keep using the enclosing context.
	Context *Context
}

// Context is one level of a JSON-LD context mapping.
type Context struct {
	// Vocab is the generic vocabulary IRI (@vocab), or "". When set, every
	// name at this level is a vocabulary term under that IRI.
	Vocab string

	terms map[string]Term
}

// Lookup returns the term bound to name and whether it exists.
func (c *Context) Lookup(name string) (Term, bool) {
	if c == nil {
		return Term{}, false
	}
	t, ok := c.terms[name]
	return t, ok
}

// Len returns the number of terms in the context.
func (c *Context) Len() int {
	if c == nil {
		return 0
	}
	return len(c.terms)
}

// Parse builds a Context from a decoded JSON mapping. Term values may be
// plain IRI strings or descriptor objects carrying @id and/or @context;
// anything else is ignored rather than rejected, since published contexts
// carry keyword entries (e.g. "@protected") the renderer has no use for.
func Parse(raw map[string]any) *Context {
	ctx := &Context{terms: make(map[string]Term, len(raw))}
	for name, val := range raw {
		if name == "@vocab" {
			if s, ok := val.(string); ok {
				ctx.Vocab = s
			}
			continue
		}
		switch v := val.(type) {
		case string:
			ctx.terms[name] = Term{IRI: v}
		case map[string]any:
			term := Term{}
			if id, ok := v["@id"].(string); ok {
				term.IRI = id
			}
			if sub, ok := v["@context"].(map[string]any); ok {
				term.Context = Parse(sub)
			}
			ctx.terms[name] = term
		}
	}
	return ctx
}
