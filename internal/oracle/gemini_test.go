package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func testRecords() []PaymentRecord {
	return []PaymentRecord{
		{ID: "p1", MemberID: "m1", Amount: decimal.NewFromInt(100), Timestamp: "2024-05-01T10:00:00Z", PaymentMethod: "PayPal"},
		{ID: "p2", MemberID: "m2", Amount: decimal.NewFromInt(9000), Timestamp: "2024-05-02T03:00:00Z", PaymentMethod: "Credit Card"},
	}
}

// fakeGemini returns a server answering generateContent with text.
func fakeGemini(t *testing.T, status int, text string, check func(r *http.Request, body geminiRequest)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if check != nil {
			check(r, body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"code": status, "message": text}})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []any{
				map[string]any{"content": map[string]any{"parts": []any{map[string]any{"text": text}}}},
			},
		})
	}))
}

func TestGeminiClientPrioritize(t *testing.T) {
	reply := `[{"id":"p2","memberId":"m2","amount":9000,"timestamp":"2024-05-02T03:00:00Z","paymentMethod":"Credit Card"},
	           {"id":"p1","memberId":"m1","amount":100,"timestamp":"2024-05-01T10:00:00Z","paymentMethod":"PayPal"}]`

	server := fakeGemini(t, http.StatusOK, reply, func(r *http.Request, body geminiRequest) {
		if r.URL.Path != "/v1beta/models/test-model:generateContent" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "secret" {
			t.Errorf("missing API key header")
		}
		prompt := body.Contents[0].Parts[0].Text
		if !strings.Contains(prompt, "ID: p1, Member ID: m1, Amount: 100") {
			t.Errorf("prompt missing record line:\n%s", prompt)
		}
		if body.GenerationConfig.ResponseMimeType != "application/json" {
			t.Errorf("expected JSON response mime type, got %q", body.GenerationConfig.ResponseMimeType)
		}
	})
	defer server.Close()

	client := NewGeminiClient("secret", WithEndpoint(server.URL), WithModel("test-model"))
	got, err := client.Prioritize(context.Background(), testRecords())
	if err != nil {
		t.Fatalf("Prioritize failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "p2" || got[1].ID != "p1" {
		t.Errorf("unexpected order: %+v", got)
	}
}

func TestGeminiClientErrors(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		_, err := NewGeminiClient("").Prioritize(context.Background(), testRecords())
		if !errors.Is(err, ErrNotConfigured) {
			t.Errorf("expected ErrNotConfigured, got %v", err)
		}
	})

	t.Run("non-200 status", func(t *testing.T) {
		server := fakeGemini(t, http.StatusTooManyRequests, "quota exceeded", nil)
		defer server.Close()

		_, err := NewGeminiClient("k", WithEndpoint(server.URL)).Prioritize(context.Background(), testRecords())
		if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
			t.Errorf("expected quota error, got %v", err)
		}
	})

	t.Run("output is not an array", func(t *testing.T) {
		server := fakeGemini(t, http.StatusOK, "I think p2 looks suspicious.", nil)
		defer server.Close()

		_, err := NewGeminiClient("k", WithEndpoint(server.URL)).Prioritize(context.Background(), testRecords())
		if err == nil {
			t.Error("expected parse error, got nil")
		}
	})
}

func TestParseRecordsToleratesCodeFence(t *testing.T) {
	got, err := parseRecords("```json\n[{\"id\":\"p1\",\"amount\":\"12.5\"}]\n```")
	if err != nil {
		t.Fatalf("parseRecords failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "p1" || !got[0].Amount.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("unexpected records: %+v", got)
	}
}
