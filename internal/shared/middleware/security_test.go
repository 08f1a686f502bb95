package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsHostAllowed(t *testing.T) {
	tests := []struct {
		name         string
		host         string
		allowedHosts []string
		want         bool
	}{
		{name: "empty list allows all", host: "example.com", allowedHosts: nil, want: true},
		{name: "exact match with port", host: "api.example.com:8080", allowedHosts: []string{"api.example.com:8080"}, want: true},
		{name: "entry without port matches any port", host: "localhost:3000", allowedHosts: []string{"localhost"}, want: true},
		{name: "IPv6 bracketed", host: "[::1]:8080", allowedHosts: []string{"::1"}, want: true},
		{name: "case and whitespace", host: "  Example.COM:8080 ", allowedHosts: []string{" example.com "}, want: true},
		{name: "unknown host", host: "evil.com", allowedHosts: []string{"example.com"}, want: false},
		{name: "subdomain mismatch", host: "sub.example.com", allowedHosts: []string{"example.com"}, want: false},
		{name: "IPv6 different address", host: "[::2]:8080", allowedHosts: []string{"[::1]:8080"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsHostAllowed(tt.host, tt.allowedHosts)
			if got != tt.want {
				t.Errorf("IsHostAllowed(%q, %v) = %v, want %v",
					tt.host, tt.allowedHosts, got, tt.want)
			}
		})
	}
}

func TestHostGuard(t *testing.T) {
	handler := HostGuard([]string{"ledger.example.com"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Host = "ledger.example.com:443"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("allowed host status = %d, want 200", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Host = "attacker.test"
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Errorf("disallowed host status = %d, want 403", rr.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	handler := SecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/accounts", nil))
	if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("missing X-Content-Type-Options")
	}
	if rr.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS set on a plain HTTP request")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Header().Get("Strict-Transport-Security") == "" {
		t.Error("missing HSTS behind a TLS-terminating proxy")
	}
}
