package transcript

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetch_JoinsSegments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("video_id"); got != "dQw4w9WgXcQ" {
			t.Errorf("video_id = %q", got)
		}
		if got := r.URL.Query().Get("language"); got != "en" {
			t.Errorf("language = %q", got)
		}
		w.Write([]byte(`{"transcript":[{"text":"never gonna"},{"text":"give you up"}]}`))
	}))
	defer srv.Close()

	c := NewClientWithBase(srv.URL, "test-key")
	got, err := c.Fetch(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "never gonna give you up" {
		t.Errorf("transcript = %q", got)
	}
}

func TestFetch_MissingTranscriptField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"search_metadata":{}}`))
	}))
	defer srv.Close()

	c := NewClientWithBase(srv.URL, "test-key")
	_, err := c.Fetch(context.Background(), "abc123def45")
	if !errors.Is(err, ErrNoTranscript) {
		t.Fatalf("err = %v, want ErrNoTranscript", err)
	}
}

func TestFetch_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":"out of credits"}`))
	}))
	defer srv.Close()

	c := NewClientWithBase(srv.URL, "test-key")
	_, err := c.Fetch(context.Background(), "abc123def45")

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if se.StatusCode != http.StatusPaymentRequired {
		t.Errorf("StatusCode = %d", se.StatusCode)
	}
	if se.Body == "" {
		t.Error("Body not carried through")
	}
}

func TestFetch_EmptySegments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"transcript":[]}`))
	}))
	defer srv.Close()

	c := NewClientWithBase(srv.URL, "test-key")
	got, err := c.Fetch(context.Background(), "abc123def45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("transcript = %q, want empty", got)
	}
}
