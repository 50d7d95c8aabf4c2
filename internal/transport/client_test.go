package transport

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		address string
		wantErr error
		proxied bool
	}{
		{name: "direct", address: "", proxied: false},
		{name: "valid socks5 address", address: "127.0.0.1:9050", proxied: true},
		{name: "missing port", address: "127.0.0.1", wantErr: ErrInvalidProxyAddress},
		{name: "port zero", address: "127.0.0.1:0", wantErr: ErrInvalidProxyAddress},
		{name: "non numeric port", address: "localhost:abc", wantErr: ErrInvalidProxyAddress},
		{name: "empty host", address: ":9050", wantErr: ErrInvalidProxyAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := NewClient(tt.address, time.Second)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Proxied() != tt.proxied {
				t.Errorf("Proxied() = %v, want %v", c.Proxied(), tt.proxied)
			}
			if c.ProxyAddress() != tt.address {
				t.Errorf("ProxyAddress() = %q, want %q", c.ProxyAddress(), tt.address)
			}
		})
	}
}

func TestNewHTTPClient(t *testing.T) {
	t.Parallel()

	c, err := NewClient("", 5*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	httpClient := c.NewHTTPClient()
	if httpClient.Timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", httpClient.Timeout)
	}
	if _, ok := httpClient.Transport.(*http.Transport); !ok {
		t.Fatal("expected *http.Transport")
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}))
	defer server.Close()

	resp, err := httpClient.Get(server.URL)
	if err != nil {
		t.Fatalf("direct request failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "ok" {
		t.Errorf("unexpected body %q", body)
	}
}

func TestHTTPClientWithConfig(t *testing.T) {
	t.Parallel()

	received := make(chan http.Header, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c, err := NewClient("", 5*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	httpClient := c.HTTPClientWithConfig("session=abc", map[string]string{"Accept-Language": "de"})
	if _, ok := httpClient.Transport.(*headerInjectingTransport); !ok {
		t.Fatal("expected header injecting transport")
	}

	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	req.Header.Set("Cookie", "pref=1")
	resp, err := httpClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	header := <-received
	gotCookie, gotHeader := header.Get("Cookie"), header.Get("Accept-Language")
	if gotCookie != "pref=1; session=abc" {
		t.Errorf("unexpected cookie %q", gotCookie)
	}
	if gotHeader != "de" {
		t.Errorf("unexpected Accept-Language %q", gotHeader)
	}
	if req.Header.Get("Cookie") != "pref=1" {
		t.Error("original request was modified")
	}
}

func TestHTTPClientWithConfig_NoExtras(t *testing.T) {
	t.Parallel()

	c, _ := NewClient("", time.Second)
	httpClient := c.HTTPClientWithConfig("", nil)
	if _, ok := httpClient.Transport.(*http.Transport); !ok {
		t.Error("expected plain transport when nothing is injected")
	}
}

func TestDialContext_ProxyUnavailable(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	c, err := NewClient(addr, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err = c.DialContext(ctx, "tcp", "example.com:80")
	if !errors.Is(err, ErrProxyCannotConnect) {
		t.Errorf("expected ErrProxyCannotConnect, got %v", err)
	}
}
