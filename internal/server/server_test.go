package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/azizulsheikh/studio/internal/auth"
	"github.com/azizulsheikh/studio/internal/fund"
	"github.com/azizulsheikh/studio/internal/metrics"
	"github.com/azizulsheikh/studio/internal/storage/jsonfile"
	"github.com/azizulsheikh/studio/pkg/api"
)

func setupServer(t *testing.T, staticDir string) *httptest.Server {
	t.Helper()
	files, err := jsonfile.New(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	authenticator, err := auth.NewPasswordAuthenticatorFromPlaintext("server-test-pw")
	if err != nil {
		t.Fatalf("failed to create authenticator: %v", err)
	}

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	handler := New(Options{
		Fund:          fund.New(files, nil, fund.WithMetrics(m)),
		Authenticator: authenticator,
		JWT:           auth.NewJWTManager("test-secret", time.Hour),
		Metrics:       m,
		Gatherer:      registry,
		StaticDir:     staticDir,
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestHealthz(t *testing.T) {
	server := setupServer(t, "")

	status, body := get(t, server.URL+"/healthz")
	if status != http.StatusOK || body != "ok" {
		t.Errorf("expected 200 ok, got %d %q", status, body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	server := setupServer(t, "")

	client := api.NewMemberServiceClient(http.DefaultClient, server.URL)
	if _, err := client.ListMembers(context.Background(), connect.NewRequest(&api.ListMembersRequest{})); err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}

	status, body := get(t, server.URL+"/metrics")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if !strings.Contains(body, "beeffund_rpc_requests_total") {
		t.Errorf("expected rpc counter in metrics output")
	}
	if !strings.Contains(body, api.MemberServiceListMembersProcedure) {
		t.Errorf("expected ListMembers procedure label in metrics output")
	}
}

func TestAuditServiceDisabledWithoutEvents(t *testing.T) {
	server := setupServer(t, "")

	client := api.NewAuditServiceClient(http.DefaultClient, server.URL)
	_, err := client.ListEvents(context.Background(), connect.NewRequest(&api.ListEventsRequest{}))
	if connect.CodeOf(err) != connect.CodeUnimplemented && connect.CodeOf(err) != connect.CodeNotFound {
		t.Errorf("expected audit service to be unmounted, got %v", err)
	}
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>fund</h1>"), 0o644); err != nil {
		t.Fatalf("failed to write index: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644); err != nil {
		t.Fatalf("failed to write asset: %v", err)
	}
	server := setupServer(t, dir)

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "root serves index", path: "/", want: "<h1>fund</h1>"},
		{name: "asset", path: "/app.js", want: "console.log(1)"},
		{name: "unknown path falls back to index", path: "/members/42", want: "<h1>fund</h1>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, server.URL+tt.path)
			if status != http.StatusOK {
				t.Fatalf("expected 200, got %d", status)
			}
			if body != tt.want {
				t.Errorf("body: expected %q, got %q", tt.want, body)
			}
		})
	}

	// RPC routes still reach Connect with static serving enabled
	client := api.NewMemberServiceClient(http.DefaultClient, server.URL)
	if _, err := client.ListMembers(context.Background(), connect.NewRequest(&api.ListMembersRequest{})); err != nil {
		t.Errorf("ListMembers failed with static dir mounted: %v", err)
	}
}

func TestCORSPreflight(t *testing.T) {
	server := setupServer(t, "")

	req, err := http.NewRequest(http.MethodOptions, server.URL+api.MemberServiceCreateMemberProcedure, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("missing CORS origin header")
	}
	if !strings.Contains(resp.Header.Get("Access-Control-Allow-Headers"), "Authorization") {
		t.Errorf("Authorization must be an allowed header")
	}
}
