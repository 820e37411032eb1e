package httputil

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wonny/edgefinder/pkg/logger"
)

func TestRetryRecoversFromServerErrors(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("flaky"))
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client := NewWithTimeout(logger.NewNop(), 2*time.Second).
		WithRetry(3, time.Millisecond)

	// Every failed attempt's body is closed before the retry, so the
	// whole sequence runs over the same keep-alive pool
	resp, err := client.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}
	if hits != 3 {
		t.Errorf("server hit %d times, want 3", hits)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(body) != "ok" {
		t.Errorf("body = %q, want ok", body)
	}
}

func TestRateLimitSpacesRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	// 100 req/s, burst 1: requests 2 and 3 each wait ~10ms for a token
	client := NewWithTimeout(logger.NewNop(), 2*time.Second).
		DisableRetry().
		WithRateLimit(100, 1)

	start := time.Now()
	for i := 0; i < 3; i++ {
		resp, err := client.Get(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("Get() error: %v", err)
		}
		resp.Body.Close()
	}

	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Errorf("three limited requests finished in %v, want >= 15ms", elapsed)
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{500, true},
		{503, true},
		{429, true},
		{404, false},
		{200, false},
	}

	for _, tt := range tests {
		if got := IsRetryableError(tt.status); got != tt.want {
			t.Errorf("IsRetryableError(%d) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
