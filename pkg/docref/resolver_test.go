package docref

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/spdxlens/pkg/errors"
	"github.com/matzehuels/spdxlens/pkg/httputil"
	"github.com/matzehuels/spdxlens/pkg/jsonld"
)

// fakeChecker records every checked URL and fails those listed in failWith.
type fakeChecker struct {
	calls    []string
	failWith map[string]error
}

func (f *fakeChecker) Check(_ context.Context, url string) error {
	f.calls = append(f.calls, url)
	if err, ok := f.failWith[url]; ok {
		return err
	}
	return nil
}

func newResolver(failWith map[string]error) (*Resolver, *fakeChecker) {
	checker := &fakeChecker{failWith: failWith}
	return NewResolver(NewValidator(checker)), checker
}

func TestResolveClass(t *testing.T) {
	jctx := jsonld.Parse(map[string]any{
		"SpdxDocument": map[string]any{"@id": "https://spdx.org/rdf/3.0.1/terms/Core/SpdxDocument"},
	})
	r, checker := newResolver(nil)

	res, err := r.Resolve(context.Background(), KindClasses, "SpdxDocument", jctx)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	want := "https://spdx.github.io/spdx-spec/v3.0.1/model/Core/Classes/SpdxDocument"
	if res.URL != want {
		t.Errorf("URL = %q, want %q", res.URL, want)
	}
	if res.CSSClass != "classes" {
		t.Errorf("CSSClass = %q, want %q", res.CSSClass, "classes")
	}
	if len(checker.calls) != 1 {
		t.Errorf("checker calls = %d, want 1", len(checker.calls))
	}
}

func TestResolvePlainStringTerm(t *testing.T) {
	jctx := jsonld.Parse(map[string]any{
		"name": "https://spdx.org/rdf/3.0.1/terms/Core/name",
	})
	r, _ := newResolver(nil)

	res, err := r.Resolve(context.Background(), KindProperties, "name", jctx)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	want := "https://spdx.github.io/spdx-spec/v3.0.1/model/Core/Properties/name"
	if res.URL != want {
		t.Errorf("URL = %q, want %q", res.URL, want)
	}
	if res.CSSClass != "properties" {
		t.Errorf("CSSClass = %q", res.CSSClass)
	}
}

func TestResolveVocab(t *testing.T) {
	// Under a @vocab context, the name itself is a vocabulary entry and the
	// link targets the vocabulary page, regardless of the requested kind.
	jctx := jsonld.Parse(map[string]any{
		"@vocab": "https://spdx.org/rdf/3.0.1/terms/Software/SbomType/",
	})
	r, checker := newResolver(nil)

	res, err := r.Resolve(context.Background(), KindNone, "analyzed", jctx)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	want := "https://spdx.github.io/spdx-spec/v3.0.1/model/Software/Vocabularies/SbomType"
	if res.URL != want {
		t.Errorf("URL = %q, want %q", res.URL, want)
	}
	if res.CSSClass != "vocabularies" {
		t.Errorf("CSSClass = %q, want %q", res.CSSClass, "vocabularies")
	}

	// A second name under the same vocabulary maps to the same URL and must
	// not trigger a second network call.
	if _, err := r.Resolve(context.Background(), KindNone, "design", jctx); err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if len(checker.calls) != 1 {
		t.Errorf("checker calls = %d, want 1 (cache hit expected)", len(checker.calls))
	}
}

func TestResolveUnresolved(t *testing.T) {
	jctx := jsonld.Parse(map[string]any{
		"type":   "@type",
		"noIRI":  map[string]any{"@type": "@id"},
		"sparse": map[string]any{"@context": map[string]any{"inner": "https://spdx.org/rdf/3.0.1/terms/Core/inner"}},
	})

	tests := []struct {
		name string
		kind Kind
		term string
	}{
		{"kind none", KindNone, "type"},
		{"absent name", KindProperties, "unknown"},
		{"descriptor without IRI", KindProperties, "noIRI"},
		{"unsplittable IRI", KindProperties, "type"},
		{"descriptor with only context", KindProperties, "sparse"},
	}

	r, checker := newResolver(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Resolve(context.Background(), tt.kind, tt.term, jctx)
			if err != nil {
				t.Fatalf("Resolve() error: %v (unresolved terms are absorbed, not errors)", err)
			}
			if res.URL != "" || res.CSSClass != "" {
				t.Errorf("Resolve() = %+v, want unresolved", res)
			}
		})
	}
	if len(checker.calls) != 0 {
		t.Errorf("checker calls = %d, want 0", len(checker.calls))
	}
}

func TestResolveReturnsSubContext(t *testing.T) {
	jctx := jsonld.Parse(map[string]any{
		"creationInfo": map[string]any{
			"@id": "https://spdx.org/rdf/3.0.1/terms/Core/creationInfo",
			"@context": map[string]any{
				"created": "https://spdx.org/rdf/3.0.1/terms/Core/created",
			},
		},
	})
	r, _ := newResolver(nil)

	res, err := r.Resolve(context.Background(), KindProperties, "creationInfo", jctx)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if res.Context == nil {
		t.Fatal("Resolve() should return the descriptor's nested context")
	}
	if _, ok := res.Context.Lookup("created"); !ok {
		t.Error("sub-context missing term created")
	}

	// A term without a nested context keeps the enclosing one.
	res2, err := r.Resolve(context.Background(), KindProperties, "missing", jctx)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if res2.Context != jctx {
		t.Error("unresolved term should keep the enclosing context")
	}
}

func TestResolveValidationOncePerURL(t *testing.T) {
	// Two distinct terms resolving to the same IRI share one validation.
	jctx := jsonld.Parse(map[string]any{
		"alias1": "https://spdx.org/rdf/3.0.1/terms/Core/name",
		"alias2": "https://spdx.org/rdf/3.0.1/terms/Core/name",
	})
	r, checker := newResolver(nil)

	for range 3 {
		for _, name := range []string{"alias1", "alias2"} {
			if _, err := r.Resolve(context.Background(), KindProperties, name, jctx); err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
		}
	}
	if len(checker.calls) != 1 {
		t.Errorf("checker calls = %d, want 1", len(checker.calls))
	}
	if r.Validator().Checked() != 1 {
		t.Errorf("Checked() = %d, want 1", r.Validator().Checked())
	}
}

func TestResolveNotFoundFatal(t *testing.T) {
	jctx := jsonld.Parse(map[string]any{
		"ghost": "https://spdx.org/rdf/3.0.1/terms/Core/ghost",
	})
	badURL := "https://spdx.github.io/spdx-spec/v3.0.1/model/Core/Properties/ghost"
	r, _ := newResolver(map[string]error{badURL: httputil.ErrNotFound})

	_, err := r.Resolve(context.Background(), KindProperties, "ghost", jctx)
	if !errors.Is(err, errors.ErrCodeLinkNotFound) {
		t.Fatalf("Resolve() error = %v, want LINK_NOT_FOUND", err)
	}
	if !strings.Contains(err.Error(), badURL) {
		t.Errorf("error %q should name the offending URL", err)
	}
}

func TestResolveTransportFailureFatal(t *testing.T) {
	jctx := jsonld.Parse(map[string]any{
		"flaky": "https://spdx.org/rdf/3.0.1/terms/Core/flaky",
	})
	cause := fmt.Errorf("%w: status 503", httputil.ErrNetwork)
	r, checker := newResolver(map[string]error{
		"https://spdx.github.io/spdx-spec/v3.0.1/model/Core/Properties/flaky": cause,
	})

	_, err := r.Resolve(context.Background(), KindProperties, "flaky", jctx)
	if !errors.Is(err, errors.ErrCodeLinkTransport) {
		t.Fatalf("Resolve() error = %v, want LINK_TRANSPORT", err)
	}
	if !stderrors.Is(err, httputil.ErrNetwork) {
		t.Error("underlying cause should be preserved unmodified")
	}

	// No retry: one attempt, then the failure propagates.
	if len(checker.calls) != 1 {
		t.Errorf("checker calls = %d, want 1", len(checker.calls))
	}
}

func TestNopChecker(t *testing.T) {
	v := NewValidator(NopChecker{})
	if err := v.Confirm(context.Background(), "https://anything.invalid/at/all"); err != nil {
		t.Errorf("Confirm() error: %v", err)
	}
	if v.Checked() != 1 {
		t.Errorf("Checked() = %d, want 1", v.Checked())
	}
}

func TestSplitIRI(t *testing.T) {
	tests := []struct {
		iri     string
		profile string
		local   string
		ok      bool
	}{
		{"https://spdx.org/rdf/3.0.1/terms/Core/name", "Core", "name", true},
		{"https://spdx.org/rdf/3.0.1/terms/Software/SbomType/", "Software", "SbomType", true},
		{"@type", "", "", false},
		{"nosegments", "", "", false},
		{"one/segment", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.iri, func(t *testing.T) {
			profile, local, ok := splitIRI(tt.iri)
			if ok != tt.ok || profile != tt.profile || local != tt.local {
				t.Errorf("splitIRI(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.iri, profile, local, ok, tt.profile, tt.local, tt.ok)
			}
		})
	}
}
