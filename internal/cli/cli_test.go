package cli

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/spdxlens/internal/config"
)

// testCLI builds a CLI with a silent logger and default config, bypassing
// the user's config file.
func testCLI() *CLI {
	return &CLI{
		Logger: newLogger(io.Discard, LogInfo),
		Config: config.Default(),
	}
}

// contextServer serves a minimal JSON-LD context document. Its term IRIs are
// unsplittable keywords, so renders resolve nothing and touch no other host.
func contextServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"@context": {"type": "@type"}}`))
	}))
	t.Cleanup(server.Close)
	return server
}

// writeInput writes an example document pointing at the given context URL.
func writeInput(t *testing.T, dir, name, contextURL string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	doc := `{
		"@context": "` + contextURL + `",
		"@graph": [
			{"@id": "urn:doc", "type": "SpdxDocument"},
			{"@id": "urn:rel", "type": "Relationship", "from": "urn:doc", "to": ["urn:doc"], "relationshipType": "describes"}
		]
	}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommandArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"no args", []string{}, true},
		{"one arg", []string{"in.json"}, true},
		{"three args", []string{"a", "b", "c"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := testCLI().RootCommand()
			root.SetArgs(tt.args)
			root.SetOut(io.Discard)
			root.SetErr(io.Discard)

			err := root.Execute()
			if tt.wantErr && err == nil {
				t.Error("Execute() should fail")
			}
		})
	}
}

func TestRootCommandRenders(t *testing.T) {
	ctxServer := contextServer(t)
	dir := t.TempDir()
	input := writeInput(t, dir, "example.json", ctxServer.URL)
	output := filepath.Join(dir, "example.html")

	root := testCLI().RootCommand()
	root.SetArgs([]string{input, output})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Error("output should be a full HTML page")
	}
	if !strings.Contains(out, `<span id="urn:doc">`) {
		t.Error("output missing rendered node span")
	}
	if !strings.Contains(out, `<a href="#urn:doc">`) {
		t.Error("output missing same-document reference")
	}
}

func TestRootCommandSkipValidate(t *testing.T) {
	// The context binds a splittable term IRI, so a normal render would have
	// to confirm the derived documentation URL over the network. Offline mode
	// must still emit the link without any such call.
	ctxServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"@context": {"type": "@type", "SpdxDocument": "https://spdx.org/rdf/3.0.1/terms/Core/SpdxDocument"}}`))
	}))
	defer ctxServer.Close()

	dir := t.TempDir()
	input := writeInput(t, dir, "example.json", ctxServer.URL)
	output := filepath.Join(dir, "example.html")

	root := testCLI().RootCommand()
	root.SetArgs([]string{input, output, "--skip-validate"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !strings.Contains(string(data), `<a href="https://spdx.github.io/spdx-spec/v3.0.1/model/Core/Classes/SpdxDocument">`) {
		t.Error("offline render should still emit the documentation link")
	}
}

func TestRootCommandMissingInput(t *testing.T) {
	dir := t.TempDir()

	root := testCLI().RootCommand()
	root.SetArgs([]string{filepath.Join(dir, "missing.json"), filepath.Join(dir, "out.html")})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err == nil {
		t.Error("Execute() should fail for a missing input file")
	}
}

func TestRootCommandContextLoadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	dir := t.TempDir()
	input := writeInput(t, dir, "example.json", server.URL)
	output := filepath.Join(dir, "out.html")

	root := testCLI().RootCommand()
	root.SetArgs([]string{input, output})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err == nil {
		t.Error("Execute() should fail when the context cannot be fetched")
	}
	// Failure happened before any output.
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("no output file should exist after a context load failure")
	}
}

func TestCheckCommand(t *testing.T) {
	ctxServer := contextServer(t)
	dir := t.TempDir()
	input := writeInput(t, dir, "example.json", ctxServer.URL)

	root := testCLI().RootCommand()
	root.SetArgs([]string{"check", input})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	// check writes no HTML next to the input.
	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".html") {
			t.Errorf("check must not write HTML, found %s", e.Name())
		}
	}
}

func TestGraphCommandDOT(t *testing.T) {
	ctxServer := contextServer(t)
	dir := t.TempDir()
	input := writeInput(t, dir, "example.json", ctxServer.URL)
	output := filepath.Join(dir, "graph.dot")

	root := testCLI().RootCommand()
	root.SetArgs([]string{"graph", input, "-o", output})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("DOT output not written: %v", err)
	}
	dot := string(data)
	if !strings.Contains(dot, `"urn:doc" -> "urn:doc" [label="describes"];`) {
		t.Errorf("DOT missing relationship edge:\n%s", dot)
	}
}

func TestGraphCommandInvalidFormat(t *testing.T) {
	root := testCLI().RootCommand()
	root.SetArgs([]string{"graph", "in.json", "-f", "gif"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err == nil {
		t.Error("Execute() should reject unknown graph formats")
	}
}

func TestValidateGraphFormat(t *testing.T) {
	for _, valid := range []string{"dot", "svg", "png"} {
		if err := validateGraphFormat(valid); err != nil {
			t.Errorf("validateGraphFormat(%q) error: %v", valid, err)
		}
	}
	if err := validateGraphFormat("pdf"); err == nil {
		t.Error("validateGraphFormat(pdf) should fail")
	}
}
