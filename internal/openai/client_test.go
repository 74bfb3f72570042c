package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCreateCompletion(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("request body decode: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"generated plan text"}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk-test", "gpt-4.1-mini")

	got, err := client.CreateCompletion(context.Background(), []Message{
		{Role: "user", Content: "plan my week"},
	}, 0.6)
	if err != nil {
		t.Fatalf("CreateCompletion error: %v", err)
	}
	if got != "generated plan text" {
		t.Errorf("content = %q, want %q", got, "generated plan text")
	}

	if gotAuth != "Bearer sk-test" {
		t.Errorf("Authorization = %q, want bearer API key", gotAuth)
	}
	if gotBody["model"] != "gpt-4.1-mini" {
		t.Errorf("model = %v, want gpt-4.1-mini", gotBody["model"])
	}
	if gotBody["temperature"] != 0.6 {
		t.Errorf("temperature = %v, want 0.6", gotBody["temperature"])
	}
}

func TestCreateCompletionUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"quota exceeded"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk-test", "gpt-4.1-mini")

	_, err := client.CreateCompletion(context.Background(), []Message{{Role: "user", Content: "x"}}, 0.7)
	if err == nil {
		t.Fatal("CreateCompletion succeeded on 429, want error")
	}
	// The upstream status and body go into the error for server-side logging
	if !strings.Contains(err.Error(), "429") || !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("error %q should carry upstream status and body", err)
	}
}

func TestCreateCompletionEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk-test", "gpt-4.1-mini")

	if _, err := client.CreateCompletion(context.Background(), []Message{{Role: "user", Content: "x"}}, 0.7); err == nil {
		t.Fatal("CreateCompletion succeeded with no choices, want error")
	}
}
