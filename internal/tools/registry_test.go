package tools_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/exatools/exa-mcp-server/internal/exa"
	"github.com/exatools/exa-mcp-server/internal/tools"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

var wantTools = []string{
	"search",
	"fetch_content",
	"fetch_contents",
	"fetch_subpages",
	"find_similar_links",
	"answer_question",
	"research_start",
	"research_poll",
}

func newRegistry(t *testing.T, handler http.HandlerFunc) *tools.Registry {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return tools.NewRegistry(exa.NewClient("test-key", srv.URL))
}

// offlineRegistry fails the test if any tool reaches the network.
func offlineRegistry(t *testing.T) *tools.Registry {
	t.Helper()
	return newRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected upstream call: %s %s", r.Method, r.URL.Path)
	})
}

func TestListCatalog(t *testing.T) {
	descriptors := offlineRegistry(t).List()
	if len(descriptors) != len(wantTools) {
		t.Fatalf("got %d tools, want %d", len(descriptors), len(wantTools))
	}
	for i, want := range wantTools {
		d := descriptors[i]
		if d.Name != want {
			t.Errorf("tool %d = %q, want %q", i, d.Name, want)
		}
		if d.Description == "" {
			t.Errorf("tool %q has no description", d.Name)
		}
		if d.InputSchema["type"] != "object" {
			t.Errorf("tool %q schema is not an object schema", d.Name)
		}
	}
}

// Every advertised input schema must be a valid JSON Schema.
func TestCatalogSchemasCompile(t *testing.T) {
	for _, d := range offlineRegistry(t).List() {
		raw, err := json.Marshal(d.InputSchema)
		if err != nil {
			t.Fatalf("%s: marshal schema: %v", d.Name, err)
		}
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(string(raw)))
		if err != nil {
			t.Fatalf("%s: unmarshal schema: %v", d.Name, err)
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema.json", doc); err != nil {
			t.Fatalf("%s: add schema resource: %v", d.Name, err)
		}
		if _, err := c.Compile("schema.json"); err != nil {
			t.Errorf("%s: schema does not compile: %v", d.Name, err)
		}
	}
}

// Unknown tool names deliberately come back as a normal text result rather
// than a protocol error, so callers that only read text keep working.
func TestDispatchUnknownTool(t *testing.T) {
	results := offlineRegistry(t).Dispatch(context.Background(), "nonexistent_tool", nil)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if !strings.Contains(results[0].Text, "Unknown tool") {
		t.Errorf("text = %q, want Unknown tool message", results[0].Text)
	}
	if !strings.Contains(results[0].Text, "nonexistent_tool") {
		t.Errorf("text should name the requested tool, got %q", results[0].Text)
	}
}

func TestDispatchMissingRequiredArgument(t *testing.T) {
	results := offlineRegistry(t).Dispatch(context.Background(), "search", map[string]interface{}{})
	if !strings.HasPrefix(results[0].Text, "Error: ") {
		t.Fatalf("text = %q, want Error prefix", results[0].Text)
	}
	if !strings.Contains(results[0].Text, "query") {
		t.Errorf("text should name the missing argument, got %q", results[0].Text)
	}
}

func TestDispatchMissingCredential(t *testing.T) {
	r := tools.NewRegistry(exa.NewClient("", ""))
	results := r.Dispatch(context.Background(), "answer_question", map[string]interface{}{"query": "q"})
	if !strings.Contains(results[0].Text, "EXA_API_KEY") {
		t.Errorf("text = %q, want credential error", results[0].Text)
	}
}

func TestDispatchSubpageTargetMustBeList(t *testing.T) {
	results := offlineRegistry(t).Dispatch(context.Background(), "fetch_subpages", map[string]interface{}{
		"url":            "https://example.com",
		"subpage_target": "not-a-list",
	})
	if !strings.Contains(results[0].Text, "subpage_target") {
		t.Errorf("text = %q, want subpage_target validation error", results[0].Text)
	}
}

func TestDispatchFetchContentsEmptyList(t *testing.T) {
	results := offlineRegistry(t).Dispatch(context.Background(), "fetch_contents", map[string]interface{}{
		"urls": []interface{}{},
	})
	if !strings.Contains(results[0].Text, "urls") {
		t.Errorf("text = %q, want urls validation error", results[0].Text)
	}
}

func TestDispatchSearchSuccess(t *testing.T) {
	r := newRegistry(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"results": [{"title": "A", "url": "https://a.com", "text": "alpha"}]}`))
	})

	results := r.Dispatch(context.Background(), "search", map[string]interface{}{
		"query":       "hello",
		"num_results": float64(1),
	})
	if strings.HasPrefix(results[0].Text, "Error:") {
		t.Fatalf("unexpected error result: %s", results[0].Text)
	}
	if results[0].Type != "text" {
		t.Errorf("type = %q, want text", results[0].Type)
	}
	// Two-space indented JSON
	if !strings.Contains(results[0].Text, "\n  {") {
		t.Errorf("result should be indented JSON, got %q", results[0].Text)
	}

	var decoded []exa.SearchResult
	if err := json.Unmarshal([]byte(results[0].Text), &decoded); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Snippet != "alpha" {
		t.Errorf("unexpected decoded results: %+v", decoded)
	}
}

func TestDispatchSearchWithEnrichment(t *testing.T) {
	r := newRegistry(t, func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/search":
			w.Write([]byte(`{"results": [{"title": "T", "url": "https://a.com", "summary": "snip"}]}`))
		case "/contents":
			w.Write([]byte(`{"results": [{"title": "T", "url": "https://a.com", "text": "FULL"}]}`))
		default:
			t.Errorf("unexpected path %s", req.URL.Path)
		}
	})

	results := r.Dispatch(context.Background(), "search", map[string]interface{}{
		"query":        "q",
		"num_results":  float64(1),
		"include_text": true,
	})
	var decoded []map[string]any
	if err := json.Unmarshal([]byte(results[0].Text), &decoded); err != nil {
		t.Fatalf("result is not valid JSON: %v (%s)", err, results[0].Text)
	}
	if decoded[0]["text"] != "FULL" {
		t.Errorf("result should carry enriched text, got %v", decoded[0])
	}
}

func TestDispatchUpstreamErrorSurfacesStatus(t *testing.T) {
	r := newRegistry(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid key"}`))
	})

	results := r.Dispatch(context.Background(), "fetch_content", map[string]interface{}{
		"url": "https://a.com",
	})
	if !strings.HasPrefix(results[0].Text, "Error: ") {
		t.Fatalf("text = %q, want Error prefix", results[0].Text)
	}
	if !strings.Contains(results[0].Text, "401") {
		t.Errorf("text should carry the upstream status, got %q", results[0].Text)
	}
}

func TestDispatchFindSimilarTextMarker(t *testing.T) {
	r := newRegistry(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"results": [{"title": "S", "url": "https://s.com", "score": 0.5, "text": "body"}]}`))
	})

	results := r.Dispatch(context.Background(), "find_similar_links", map[string]interface{}{
		"url": "https://x.com",
	})
	var decoded []map[string]any
	if err := json.Unmarshal([]byte(results[0].Text), &decoded); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	text, present := decoded[0]["text"]
	if !present {
		t.Fatal("text key must always be present")
	}
	if text != nil {
		t.Errorf("text should be null without include_text, got %v", text)
	}
}
