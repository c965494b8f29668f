package blockscout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/duckchain-io/duckscan-mcp/internal/common"
)

func testClient(t *testing.T, baseURL string, timeout time.Duration) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: baseURL, Timeout: timeout}, common.NewSilentLogger())
	if err != nil {
		t.Fatalf("Unexpected error creating client: %v", err)
	}
	return c
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid https", Config{BaseURL: "https://blockscout.com/poa/core/api/v2", Timeout: 30 * time.Second}, false},
		{"valid http", Config{BaseURL: "http://localhost:4000/api/v2", Timeout: time.Second}, false},
		{"relative url", Config{BaseURL: "/api/v2", Timeout: time.Second}, true},
		{"bad scheme", Config{BaseURL: "ftp://example.com", Timeout: time.Second}, true},
		{"missing host", Config{BaseURL: "https://", Timeout: time.Second}, true},
		{"zero timeout", Config{BaseURL: "https://example.com", Timeout: 0}, true},
		{"negative timeout", Config{BaseURL: "https://example.com", Timeout: -time.Second}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr && err == nil {
				t.Errorf("Expected error for %+v", tc.cfg)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Unexpected error for %+v: %v", tc.cfg, err)
			}
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	c, err := New(Config{}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.BaseURL() != DefaultBaseURL {
		t.Errorf("Expected default base URL %s, got %s", DefaultBaseURL, c.BaseURL())
	}
	if c.Timeout() != DefaultTimeout {
		t.Errorf("Expected default timeout %s, got %s", DefaultTimeout, c.Timeout())
	}
}

func TestGet_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/transactions/0xabc" {
			t.Errorf("Expected /transactions/0xabc, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"hash": "0xabc", "status": "ok"})
	}))
	defer mockServer.Close()

	c := testClient(t, mockServer.URL, 5*time.Second)
	body, err := c.Get(context.Background(), "/transactions/0xabc", nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var result map[string]string
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if result["hash"] != "0xabc" {
		t.Errorf("Expected hash=0xabc, got %s", result["hash"])
	}
}

func TestGet_PayloadPassedThroughVerbatim(t *testing.T) {
	// Field order and whitespace of the upstream body must survive untouched.
	raw := `{"b":2,"a":1,  "nested":{"z":[3,2,1]}}`
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(raw))
	}))
	defer mockServer.Close()

	c := testClient(t, mockServer.URL, 5*time.Second)
	body, err := c.Get(context.Background(), "/stats", nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(body) != raw {
		t.Errorf("Expected body %q, got %q", raw, string(body))
	}
}

func TestGet_QueryParams(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("type"); got != "reorg" {
			t.Errorf("Expected type=reorg, got %q", got)
		}
		if _, present := r.URL.Query()["filter"]; present {
			t.Error("Empty-valued filter param should have been omitted")
		}
		w.Write([]byte(`[]`))
	}))
	defer mockServer.Close()

	c := testClient(t, mockServer.URL, 5*time.Second)
	query := url.Values{}
	query.Set("type", "reorg")
	query.Set("filter", "")
	if _, err := c.Get(context.Background(), "/blocks", query); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestGet_EmptyQueryOmitsQueryString(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("Expected no query string, got %q", r.URL.RawQuery)
		}
		w.Write([]byte(`[]`))
	}))
	defer mockServer.Close()

	c := testClient(t, mockServer.URL, 5*time.Second)
	query := url.Values{}
	query.Set("type", "")
	if _, err := c.Get(context.Background(), "/blocks", query); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestGet_UpstreamError(t *testing.T) {
	errBody := `{"message":"Not found"}`
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(errBody))
	}))
	defer mockServer.Close()

	c := testClient(t, mockServer.URL, 5*time.Second)
	_, err := c.Get(context.Background(), "/transactions/0xmissing", nil)
	if err == nil {
		t.Fatal("Expected error for 404 response")
	}
	if ErrorKind(err) != KindUpstream {
		t.Errorf("Expected upstream error kind, got %v", ErrorKind(err))
	}

	apiErr := err.(*Error)
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", apiErr.Status)
	}
	if string(apiErr.Body) != errBody {
		t.Errorf("Expected body carried verbatim, got %q", apiErr.Body)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("Error message should include status code: %s", err.Error())
	}
	if !strings.Contains(err.Error(), "Not found") {
		t.Errorf("Error message should include upstream body: %s", err.Error())
	}
}

func TestGet_MalformedResponse(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer mockServer.Close()

	c := testClient(t, mockServer.URL, 5*time.Second)
	_, err := c.Get(context.Background(), "/stats", nil)
	if err == nil {
		t.Fatal("Expected error for non-JSON body")
	}
	if ErrorKind(err) != KindMalformed {
		t.Errorf("Expected malformed response kind, got %v", ErrorKind(err))
	}
}

func TestGet_Timeout(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer mockServer.Close()

	c := testClient(t, mockServer.URL, 50*time.Millisecond)
	_, err := c.Get(context.Background(), "/stats", nil)
	if err == nil {
		t.Fatal("Expected timeout error")
	}
	if ErrorKind(err) != KindTimeout {
		t.Errorf("Expected timeout kind, got %v (%v)", ErrorKind(err), err)
	}
}

func TestGet_ConnectionRefused(t *testing.T) {
	c := testClient(t, "http://localhost:1", 2*time.Second)
	_, err := c.Get(context.Background(), "/stats", nil)
	if err == nil {
		t.Fatal("Expected connection error")
	}
	if ErrorKind(err) != KindConnection {
		t.Errorf("Expected connection failure kind, got %v (%v)", ErrorKind(err), err)
	}
}

func TestGet_ConcurrentCalls(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer mockServer.Close()

	c := testClient(t, mockServer.URL, 5*time.Second)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Get(context.Background(), "/stats", nil); err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestErrorKind_NonAdapterError(t *testing.T) {
	if kind := ErrorKind(context.Canceled); kind != 0 {
		t.Errorf("Expected zero kind for foreign error, got %v", kind)
	}
}
