package certgen

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestFetchToFile(t *testing.T) {
	body := []byte("%PDF-1.4 fake template")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.pdf" {
			http.NotFound(w, r)
			return
		}
		w.Write(body)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "template.pdf")

	if err := FetchToFile(context.Background(), srv.Client(), srv.URL+"/template.pdf", dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading fetched file: %v", err)
	}
	if string(got) != string(body) {
		t.Errorf("fetched content mismatch: %q", got)
	}

	if err := FetchToFile(context.Background(), srv.Client(), srv.URL+"/missing.pdf", dest); err == nil {
		t.Error("expected an error for a 404 response")
	}
}

func TestFetchToFileCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := FetchToFile(ctx, http.DefaultClient, "http://127.0.0.1:0/never", filepath.Join(t.TempDir(), "x"))
	if err == nil {
		t.Fatal("expected an error with a cancelled context")
	}
}
