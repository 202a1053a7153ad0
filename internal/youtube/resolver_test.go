package youtube

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

const channelPageHTML = `<!DOCTYPE html>
<html>
<head>
<meta property="og:title" content="Some Creator">
<meta property="og:url" content="https://www.youtube.com/channel/UCuAXFkgsw1L7xaCfnd5JJOw">
</head>
<body></body>
</html>`

const channelPageNoOgURL = `<!DOCTYPE html>
<html>
<head><meta property="og:title" content="Embedded Only"></head>
<body><script>var cfg = {"channelId":"UCBR8-60-B28hp2BmDPdntcQ"};</script></body>
</html>`

func TestParseChannelPage(t *testing.T) {
	info, err := ParseChannelPage([]byte(channelPageHTML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.ID != "UCuAXFkgsw1L7xaCfnd5JJOw" {
		t.Errorf("ID = %q", info.ID)
	}
	if info.Name != "Some Creator" {
		t.Errorf("Name = %q", info.Name)
	}
}

func TestParseChannelPage_EmbeddedFallback(t *testing.T) {
	info, err := ParseChannelPage([]byte(channelPageNoOgURL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.ID != "UCBR8-60-B28hp2BmDPdntcQ" {
		t.Errorf("ID = %q", info.ID)
	}
}

func TestParseChannelPage_NoID(t *testing.T) {
	if _, err := ParseChannelPage([]byte("<html><body>nothing here</body></html>")); err == nil {
		t.Fatal("expected error for page without channel ID")
	}
}

func TestResolve_ChannelURLShortCircuits(t *testing.T) {
	// A /channel/ URL must not trigger a page fetch.
	r := NewResolver()
	r.http = &http.Client{Transport: failingTransport{}}

	info, err := r.Resolve(context.Background(), "https://www.youtube.com/channel/UCuAXFkgsw1L7xaCfnd5JJOw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.ID != "UCuAXFkgsw1L7xaCfnd5JJOw" {
		t.Errorf("ID = %q", info.ID)
	}
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	panic("unexpected network call")
}

func TestOEmbedLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("format = %q, want json", got)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"title":         "A Video",
			"author_name":   "A Channel",
			"thumbnail_url": "https://i.ytimg.com/vi/x/hqdefault.jpg",
		})
	}))
	defer srv.Close()

	c := NewOEmbedClientWithBase(srv.URL)
	meta, err := c.Lookup(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.Title != "A Video" || meta.Channel != "A Channel" {
		t.Errorf("unexpected metadata: %+v", meta)
	}
}

func TestOEmbedLookup_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewOEmbedClientWithBase(srv.URL)
	if _, err := c.Lookup(context.Background(), "https://www.youtube.com/watch?v=gone"); err == nil {
		t.Fatal("expected error for 404")
	}
}
