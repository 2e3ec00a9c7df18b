package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rangekit/rangefetch/internal/config"
)

func serverForTest(t *testing.T) (*Server, string) {
	t.Helper()
	tmpDir := t.TempDir()

	cfg := config.Default()
	cfg.General.ProvidersOutputDir = filepath.Join(tmpDir, "providers")
	cfg.General.ChunksOutputDir = filepath.Join(tmpDir, "chunks")

	return NewServer(cfg), tmpDir
}

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create fixture dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
}

func TestHealth(t *testing.T) {
	s, _ := serverForTest(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
}

func TestProvidersList(t *testing.T) {
	s, _ := serverForTest(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/providers", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp providersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Automated) == 0 {
		t.Error("Expected automated providers in listing")
	}
	if len(resp.Manual) == 0 {
		t.Error("Expected manual providers in listing")
	}
	for _, p := range resp.Automated {
		if p.HasOutput {
			t.Errorf("Expected no generated output for %s", p.Name)
		}
	}
}

func TestProviderGet(t *testing.T) {
	s, tmpDir := serverForTest(t)
	writeFixture(t, filepath.Join(tmpDir, "providers", "aws.txt"), "10.0.0.0/8\n")

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/providers/aws", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var info providerInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !info.HasOutput {
		t.Error("Expected has_output to be true after writing the canonical file")
	}
	if info.Parser != "json-prefix-list" {
		t.Errorf("Expected parser json-prefix-list, got %s", info.Parser)
	}
}

func TestProviderGet_Manual(t *testing.T) {
	s, _ := serverForTest(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/providers/hetzner", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var info providerInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !info.Manual {
		t.Error("Expected hetzner to be flagged manual")
	}
}

func TestProviderGet_Unknown(t *testing.T) {
	s, _ := serverForTest(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/providers/bogus", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

func TestListGet(t *testing.T) {
	s, tmpDir := serverForTest(t)
	writeFixture(t, filepath.Join(tmpDir, "providers", "vpn.txt"), "10.0.0.0/24\n10.0.1.0/24\n")

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/lists/vpn", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "10.0.0.0/24\n10.0.1.0/24\n" {
		t.Errorf("Unexpected body: %q", rec.Body.String())
	}
}

func TestListGet_NoOutputYet(t *testing.T) {
	s, _ := serverForTest(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/lists/vpn", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for missing output, got %d", rec.Code)
	}
}

func TestChunks(t *testing.T) {
	s, tmpDir := serverForTest(t)
	writeFixture(t, filepath.Join(tmpDir, "chunks", "vpn", "vpn-part-001.txt"), "10.0.0.0/24\n")
	writeFixture(t, filepath.Join(tmpDir, "chunks", "vpn", "vpn-part-002.txt"), "10.0.1.0/24\n")

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/lists/vpn/chunks", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp["chunks"]) != 2 {
		t.Errorf("Expected 2 chunks, got %v", resp["chunks"])
	}

	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/lists/vpn/chunks/2", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "10.0.1.0/24\n" {
		t.Errorf("Unexpected chunk body: %q", rec.Body.String())
	}
}

func TestChunkGet_OutOfRange(t *testing.T) {
	s, tmpDir := serverForTest(t)
	writeFixture(t, filepath.Join(tmpDir, "chunks", "vpn", "vpn-part-001.txt"), "10.0.0.0/24\n")

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/lists/vpn/chunks/5", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for out-of-range chunk, got %d", rec.Code)
	}
}

func TestChunkGet_BadIndex(t *testing.T) {
	s, _ := serverForTest(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/lists/vpn/chunks/zero", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for non-numeric index, got %d", rec.Code)
	}
}
