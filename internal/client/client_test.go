package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSummarize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/summarize" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		w.Write([]byte(`{"transcript":"T","summary":"S","is_cached":false,"title":"X","channel":"Y","thumbnail_url":"","video_id":"abc123def45","url":"https://youtu.be/abc123def45"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Summarize(context.Background(), "https://youtu.be/abc123def45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Transcript != "T" || resp.Summary != "S" || resp.IsCached {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Title != "X" || resp.Channel != "Y" {
		t.Errorf("unexpected metadata: %+v", resp)
	}
}

func TestDeleteTranscript_SendsAdminKey(t *testing.T) {
	var gotKey, gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("admin-key")
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.DeleteTranscript(context.Background(), "some-id", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "secret" {
		t.Errorf("admin-key = %q", gotKey)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/admin/transcript/some-id" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
}

func TestErrorDetailPreferred(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"No transcript found for this video","error":{"code":"NO_TRANSCRIPT","message":"No transcript found for this video"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Summarize(context.Background(), "https://youtu.be/abc123def45")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d", apiErr.Status)
	}
	if apiErr.Message != "No transcript found for this video" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestErrorGenericFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>nginx error</html>`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Health(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Message != GenericFailure {
		t.Errorf("Message = %q, want generic fallback", apiErr.Message)
	}
}

func TestHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/history" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`[{"id":"a","video_id":"v1"},{"id":"b","video_id":"v2"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	entries, err := c.History(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 || entries[0].ID != "a" || entries[1].ID != "b" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestChannelVideos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/channel-videos" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"channel_name":"N","videos":[{"position":1,"title":"t","link":"l","thumbnail":"","channel":{"name":"N"}}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.ChannelVideos(context.Background(), "https://www.youtube.com/@x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ChannelName != "N" || len(resp.Videos) != 1 {
		t.Errorf("unexpected response: %+v", resp)
	}
}
