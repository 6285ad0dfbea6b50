package vision

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func candidatePayload(text string) map[string]any {
	return map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"parts": []any{
						map[string]any{"text": text},
					},
				},
			},
		},
	}
}

func TestGenerateMetadataParsesEmbeddedJSON(t *testing.T) {
	metadataJSON := `{"title":"Sunset over calm mountain lake with pine forest","description":"A golden sunset.","keywords":["sunset","lake","mountain"],"topTenKeywords":["sunset"],"altText":"A lake at sunset.","category":"Landscapes"}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "demo-model:generateContent") {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "test" {
			t.Fatalf("unexpected api key header %q", got)
		}
		var req generateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 2 {
			t.Fatalf("unexpected request shape: %+v", req)
		}
		if req.Contents[0].Parts[0].InlineData == nil {
			t.Fatal("expected inline image data as first part")
		}
		if req.Contents[0].Parts[1].Text != MetadataPrompt {
			t.Fatal("expected metadata prompt as second part")
		}
		if err := json.NewEncoder(w).Encode(candidatePayload(metadataJSON)); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient("test", WithBaseURL(server.URL), WithModel("demo-model"))
	got, err := client.GenerateMetadata(context.Background(), "image/jpeg", []byte{0xFF, 0xD8})
	if err != nil {
		t.Fatalf("GenerateMetadata returned error: %v", err)
	}
	if got.Title != "Sunset over calm mountain lake with pine forest" {
		t.Fatalf("unexpected title: %q", got.Title)
	}
	if len(got.Keywords) != 3 || got.Keywords[0] != "sunset" {
		t.Fatalf("unexpected keywords: %v", got.Keywords)
	}
	if got.Category != "Landscapes" {
		t.Fatalf("unexpected category: %q", got.Category)
	}
	if got.Raw == "" {
		t.Fatal("expected raw payload to be kept")
	}
}

func TestGenerateMetadataHandlesCodeFence(t *testing.T) {
	fenced := "```json\n{\"title\":\"City street at night\",\"keywords\":[\"city\"],\"category\":\"Travel\"}\n```"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewEncoder(w).Encode(candidatePayload(fenced)); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient("test", WithBaseURL(server.URL))
	got, err := client.GenerateMetadata(context.Background(), "image/png", []byte{0x89})
	if err != nil {
		t.Fatalf("GenerateMetadata returned error: %v", err)
	}
	if got.Title != "City street at night" {
		t.Fatalf("unexpected title: %q", got.Title)
	}
}

func TestGenerateMetadataSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 429, "message": "quota exceeded"},
		})
	}))
	defer server.Close()

	client := NewClient("test", WithBaseURL(server.URL))
	_, err := client.GenerateMetadata(context.Background(), "image/jpeg", []byte{1})
	if err == nil {
		t.Fatal("expected error from http 429")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected status code in error, got %v", err)
	}
}

func TestGenerateMetadataRequiresInputs(t *testing.T) {
	client := NewClient("test")
	if _, err := client.GenerateMetadata(context.Background(), "image/jpeg", nil); err == nil {
		t.Fatal("expected error for empty image data")
	}
	if _, err := client.GenerateMetadata(context.Background(), "", []byte{1}); err == nil {
		t.Fatal("expected error for missing mime type")
	}
	keyless := NewClient("")
	if _, err := keyless.GenerateMetadata(context.Background(), "image/jpeg", []byte{1}); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestGenerateMetadataEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer server.Close()

	client := NewClient("test", WithBaseURL(server.URL))
	if _, err := client.GenerateMetadata(context.Background(), "image/jpeg", []byte{1}); err == nil {
		t.Fatal("expected error for empty candidates")
	}
}

func TestHealthCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewEncoder(w).Encode(candidatePayload(`{"ok":true}`)); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient("test", WithBaseURL(server.URL))
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck returned error: %v", err)
	}
}

func TestHealthCheckFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 401, "message": "invalid key"},
		})
	}))
	defer server.Close()

	client := NewClient("bad", WithBaseURL(server.URL))
	if err := client.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected health check to fail")
	}
}
