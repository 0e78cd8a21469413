package jsonld

import (
	"context"

	"github.com/matzehuels/spdxlens/pkg/errors"
	"github.com/matzehuels/spdxlens/pkg/httputil"
)

// Fetch retrieves the context document at url and parses its inner @context
// mapping. The fetched document must be a JSON object whose "@context" member
// is itself an object; anything else is a context-load failure, which is
// fatal before any rendering starts.
func Fetch(ctx context.Context, client *httputil.Client, url string) (*Context, error) {
	var doc any
	if err := client.GetJSON(ctx, url, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeContextLoad, err, "fetch context %s", url)
	}

	root, ok := doc.(map[string]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeContextLoad, "context document %s is not an object", url)
	}
	inner, ok := root["@context"].(map[string]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeContextLoad, "context document %s has no @context mapping", url)
	}
	return Parse(inner), nil
}
