package watsonx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const testModelID = "mistralai/mistral-large"

// newTokenServer returns a test IAM endpoint that validates the exchange
// request and responds with the given status.
func newTokenServer(t *testing.T, status int, body string) (server *httptest.Server) {
	t.Helper()
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("Failed to parse token form: %v", err)
		}
		if r.PostFormValue("apikey") != "test-key" {
			t.Error("Missing or incorrect apikey form value")
		}
		if r.PostFormValue("grant_type") != "urn:ibm:params:oauth:grant-type:apikey" {
			t.Error("Missing or incorrect grant_type form value")
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	return server
}

func newGenerationServer(t *testing.T, status int, body string) (server *httptest.Server) {
	t.Helper()
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ml/v1/text/generation" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("version") != APIVersion {
			t.Error("Missing or incorrect version query parameter")
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Error("Missing or incorrect bearer token")
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	return server
}

func newTestClient(tokenURL, baseURL string) (client *Client) {
	client = NewClient("test-key", "test-project")
	client.tokenURL = tokenURL
	client.baseURL = baseURL
	return client
}

func TestGenerateSuccess(t *testing.T) {
	tokenServer := newTokenServer(t, http.StatusOK, `{"access_token":"test-token"}`)
	defer tokenServer.Close()

	genServer := newGenerationServer(t, http.StatusOK, `{"results":[{"generated_text":"EXPERIENCE\n- Did X\n"}]}`)
	defer genServer.Close()

	client := newTestClient(tokenServer.URL, genServer.URL)

	text, err := client.Generate(context.Background(), testModelID, "test prompt")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !strings.Contains(text, "EXPERIENCE") {
		t.Errorf("Unexpected generated text: %q", text)
	}
}

func TestGenerateTokenStatusClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"malformed key", http.StatusBadRequest, ErrMalformedKey},
		{"authentication failure", http.StatusUnauthorized, ErrAuthentication},
		{"authorization failure", http.StatusForbidden, ErrAuthorization},
		{"server error", http.StatusInternalServerError, ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenServer := newTokenServer(t, tt.status, `{}`)
			defer tokenServer.Close()

			client := newTestClient(tokenServer.URL, "http://unused.invalid")

			_, err := client.Generate(context.Background(), testModelID, "test prompt")
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestGenerateStatusClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"model unavailable", http.StatusNotFound, `{}`, ErrModelUnavailable},
		{"authorization failure", http.StatusForbidden, `{}`, ErrAuthorization},
		{"rate limited", http.StatusTooManyRequests, `{}`, ErrRateLimited},
		{"server error", http.StatusBadGateway, `{}`, ErrServer},
		{"empty results", http.StatusOK, `{"results":[]}`, ErrEmptyResponse},
		{"blank generated text", http.StatusOK, `{"results":[{"generated_text":"   "}]}`, ErrEmptyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenServer := newTokenServer(t, http.StatusOK, `{"access_token":"test-token"}`)
			defer tokenServer.Close()

			genServer := newGenerationServer(t, tt.status, tt.body)
			defer genServer.Close()

			client := newTestClient(tokenServer.URL, genServer.URL)

			_, err := client.Generate(context.Background(), testModelID, "test prompt")
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestGenerateMissingAccessToken(t *testing.T) {
	tokenServer := newTokenServer(t, http.StatusOK, `{}`)
	defer tokenServer.Close()

	client := newTestClient(tokenServer.URL, "http://unused.invalid")

	_, err := client.Generate(context.Background(), testModelID, "test prompt")
	if !errors.Is(err, ErrServer) {
		t.Errorf("Expected ErrServer for missing access_token, got %v", err)
	}
}

func TestGenerateTimeout(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer tokenServer.Close()

	client := newTestClient(tokenServer.URL, "http://unused.invalid")
	client.tokenClient = &http.Client{Timeout: 20 * time.Millisecond}

	_, err := client.Generate(context.Background(), testModelID, "test prompt")
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("Expected ErrTimeout, got %v", err)
	}
}

func TestGenerateUnreachable(t *testing.T) {
	tokenServer := newTokenServer(t, http.StatusOK, `{}`)
	tokenServer.Close() // closed before use: connection refused

	client := newTestClient(tokenServer.URL, "http://unused.invalid")

	_, err := client.Generate(context.Background(), testModelID, "test prompt")
	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("Expected ErrUnreachable, got %v", err)
	}
}

func TestGenerateNoTokenCaching(t *testing.T) {
	exchanges := 0
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		exchanges++
		_, _ = w.Write([]byte(`{"access_token":"test-token"}`))
	}))
	defer tokenServer.Close()

	genServer := newGenerationServer(t, http.StatusOK, `{"results":[{"generated_text":"ok"}]}`)
	defer genServer.Close()

	client := newTestClient(tokenServer.URL, genServer.URL)

	for i := 0; i < 2; i++ {
		_, err := client.Generate(context.Background(), testModelID, "test prompt")
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
	}

	if exchanges != 2 {
		t.Errorf("Expected one token exchange per call, got %d for 2 calls", exchanges)
	}
}

func TestRemediation(t *testing.T) {
	if Remediation(ErrRateLimited) == "" {
		t.Error("Expected remediation hint for rate limiting")
	}
	if Remediation(errors.New("unrelated")) != "" {
		t.Error("Expected no hint for unclassified error")
	}
}
