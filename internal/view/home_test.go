package view

import (
	"context"
	"errors"
	"testing"

	"github.com/collymonsterr/podsummary/internal/client"
	"github.com/collymonsterr/podsummary/internal/model"
)

type fakeBackend struct {
	healthErr    error
	history      []model.Transcript
	historyErr   error
	summarize    *model.SummarizeResponse
	summarizeErr error
	deleteErr    error
	channels     *model.ChannelVideosResponse
	channelsErr  error

	healthCalls    int
	historyCalls   int
	summarizeCalls int
	deleteCalls    int
	channelCalls   int

	lastDeleteID  string
	lastDeleteKey string
	lastChannel   string
}

func (f *fakeBackend) Health(ctx context.Context) (*client.HealthResponse, error) {
	f.healthCalls++
	if f.healthErr != nil {
		return nil, f.healthErr
	}
	return &client.HealthResponse{Message: "ok"}, nil
}

func (f *fakeBackend) History(ctx context.Context) ([]model.Transcript, error) {
	f.historyCalls++
	return f.history, f.historyErr
}

func (f *fakeBackend) Summarize(ctx context.Context, youtubeURL string) (*model.SummarizeResponse, error) {
	f.summarizeCalls++
	return f.summarize, f.summarizeErr
}

func (f *fakeBackend) DeleteTranscript(ctx context.Context, id, adminKey string) error {
	f.deleteCalls++
	f.lastDeleteID = id
	f.lastDeleteKey = adminKey
	return f.deleteErr
}

func (f *fakeBackend) ChannelVideos(ctx context.Context, channelURL string) (*model.ChannelVideosResponse, error) {
	f.channelCalls++
	f.lastChannel = channelURL
	return f.channels, f.channelsErr
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(t.TempDir())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func sampleHistory(n int) []model.Transcript {
	out := make([]model.Transcript, n)
	for i := range out {
		out[i] = model.Transcript{
			ID:      string(rune('a' + i)),
			VideoID: "vid" + string(rune('a'+i)),
			URL:     "https://www.youtube.com/watch?v=vid" + string(rune('a'+i)),
			Title:   "title",
			Summary: "summary",
		}
	}
	return out
}

func TestSubmitRejectsInvalidInputWithoutRequest(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"not a url", "hello world"},
		{"wrong site", "https://vimeo.com/12345"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{}
			v := NewHomeView(backend, newTestSession(t))
			v.Submit(context.Background(), tt.input)
			if backend.summarizeCalls != 0 {
				t.Fatalf("summarize called %d times for invalid input", backend.summarizeCalls)
			}
			if v.ValidationErr == "" {
				t.Fatal("expected a validation message")
			}
			if v.Result.Phase != PhaseIdle {
				t.Fatalf("result phase = %v, want idle", v.Result.Phase)
			}
		})
	}
}

func TestSubmitSuccessShowsSummaryTab(t *testing.T) {
	backend := &fakeBackend{
		summarize: &model.SummarizeResponse{
			Summary: "s", Transcript: "t", VideoID: "abc123def45",
			Title: "Title", Channel: "Chan", URL: "https://youtu.be/abc123def45",
		},
	}
	v := NewHomeView(backend, newTestSession(t))
	v.ActiveTab = TabTranscript

	v.Submit(context.Background(), "https://youtu.be/abc123def45")

	if v.Result.Phase != PhaseSuccess {
		t.Fatalf("phase = %v, want success", v.Result.Phase)
	}
	if v.ActiveTab != TabSummary {
		t.Fatalf("active tab = %q, want summary", v.ActiveTab)
	}
	if v.Current == nil || v.Current.VideoID != "abc123def45" {
		t.Fatalf("current video = %+v", v.Current)
	}
	if backend.historyCalls != 1 {
		t.Fatalf("history refreshed %d times, want 1", backend.historyCalls)
	}
}

func TestSubmitIgnoredWhileLoading(t *testing.T) {
	backend := &fakeBackend{}
	v := NewHomeView(backend, newTestSession(t))
	v.Result.Phase = PhaseLoading

	v.Submit(context.Background(), "https://www.youtube.com/watch?v=abc123def45")

	if backend.summarizeCalls != 0 {
		t.Fatal("submit ran while a request was in flight")
	}
}

func TestSubmitFailureShowsServerDetail(t *testing.T) {
	backend := &fakeBackend{
		summarizeErr: &client.APIError{Status: 400, Message: "No transcript available for this video"},
	}
	v := NewHomeView(backend, newTestSession(t))

	v.Submit(context.Background(), "https://www.youtube.com/watch?v=abc123def45")

	if v.Result.Phase != PhaseError {
		t.Fatalf("phase = %v, want error", v.Result.Phase)
	}
	if v.Result.Err != "No transcript available for this video" {
		t.Fatalf("error = %q", v.Result.Err)
	}
}

func TestSubmitFailureWithoutDetailUsesGenericMessage(t *testing.T) {
	backend := &fakeBackend{summarizeErr: errors.New("dial tcp: connection refused")}
	v := NewHomeView(backend, newTestSession(t))

	v.Submit(context.Background(), "https://www.youtube.com/watch?v=abc123def45")

	if v.Result.Err != client.GenericFailure {
		t.Fatalf("error = %q, want generic message", v.Result.Err)
	}
}

func TestInitHealthFailureKeepsViewUsable(t *testing.T) {
	backend := &fakeBackend{healthErr: errors.New("down"), history: sampleHistory(2)}
	v := NewHomeView(backend, newTestSession(t))

	v.Init(context.Background())

	if v.ConnectivityErr == "" {
		t.Fatal("expected connectivity banner")
	}
	if v.History.Phase != PhaseSuccess || len(v.History.Value) != 2 {
		t.Fatalf("history not loaded: phase=%v len=%d", v.History.Phase, len(v.History.Value))
	}
}

func TestLoadHistoryRecentIsLeadingSubset(t *testing.T) {
	backend := &fakeBackend{history: sampleHistory(9)}
	v := NewHomeView(backend, newTestSession(t))

	v.LoadHistory(context.Background())

	if len(v.Recent) != recentCount {
		t.Fatalf("recent len = %d, want %d", len(v.Recent), recentCount)
	}
	for i := range v.Recent {
		if v.Recent[i].ID != v.History.Value[i].ID {
			t.Fatalf("recent[%d] = %q, history[%d] = %q", i, v.Recent[i].ID, i, v.History.Value[i].ID)
		}
	}
}

func TestHandleQueryDeepLinkSubmits(t *testing.T) {
	backend := &fakeBackend{
		summarize: &model.SummarizeResponse{Summary: "s", VideoID: "abc123def45"},
	}
	v := NewHomeView(backend, newTestSession(t))

	v.HandleQuery(context.Background(), map[string][]string{
		"video": {"https://www.youtube.com/watch?v=abc123def45"},
	})

	if backend.summarizeCalls != 1 {
		t.Fatalf("summarize calls = %d, want 1", backend.summarizeCalls)
	}
	if v.InputURL == "" {
		t.Fatal("input not pre-filled from deep link")
	}
}

func TestSelectHistoryUsesStoredEntryWithoutNetwork(t *testing.T) {
	backend := &fakeBackend{history: sampleHistory(3)}
	v := NewHomeView(backend, newTestSession(t))
	v.LoadHistory(context.Background())
	calls := backend.summarizeCalls

	v.SelectHistory("b")

	if backend.summarizeCalls != calls {
		t.Fatal("history selection hit the network")
	}
	if v.Result.Phase != PhaseSuccess || !v.Result.Value.IsCached {
		t.Fatalf("result = %+v, want cached success", v.Result)
	}
	if v.Current == nil || v.Current.VideoID != "vidb" {
		t.Fatalf("current = %+v", v.Current)
	}
}

func TestDeleteRequiresAdminMode(t *testing.T) {
	backend := &fakeBackend{history: sampleHistory(1)}
	v := NewHomeView(backend, newTestSession(t))
	v.LoadHistory(context.Background())

	v.Delete(context.Background(), "a")

	if backend.deleteCalls != 0 {
		t.Fatal("delete called without admin mode")
	}
	if v.DeleteErr == "" {
		t.Fatal("expected an admin-mode error message")
	}
}

func TestDeleteCurrentEntryClearsResult(t *testing.T) {
	backend := &fakeBackend{history: sampleHistory(3)}
	v := NewHomeView(backend, newTestSession(t))
	if err := v.EnableAdmin("secret"); err != nil {
		t.Fatalf("EnableAdmin: %v", err)
	}
	v.LoadHistory(context.Background())
	v.SelectHistory("b")

	v.Delete(context.Background(), "b")

	if backend.deleteCalls != 1 {
		t.Fatalf("delete calls = %d", backend.deleteCalls)
	}
	if backend.lastDeleteID != "b" || backend.lastDeleteKey != "secret" {
		t.Fatalf("delete sent id=%q key=%q", backend.lastDeleteID, backend.lastDeleteKey)
	}
	if v.Current != nil || v.Result.Phase != PhaseIdle {
		t.Fatalf("result not cleared: current=%+v phase=%v", v.Current, v.Result.Phase)
	}
}

func TestDeleteOtherEntryKeepsResult(t *testing.T) {
	backend := &fakeBackend{history: sampleHistory(3)}
	v := NewHomeView(backend, newTestSession(t))
	if err := v.EnableAdmin("secret"); err != nil {
		t.Fatalf("EnableAdmin: %v", err)
	}
	v.LoadHistory(context.Background())
	v.SelectHistory("b")

	v.Delete(context.Background(), "c")

	if v.Current == nil || v.Current.VideoID != "vidb" {
		t.Fatalf("displayed result was cleared: %+v", v.Current)
	}
}

func TestDeleteFailureShowsMessageAndKeepsHistory(t *testing.T) {
	backend := &fakeBackend{
		history:   sampleHistory(2),
		deleteErr: &client.APIError{Status: 403, Message: "Invalid admin key"},
	}
	v := NewHomeView(backend, newTestSession(t))
	if err := v.EnableAdmin("wrong"); err != nil {
		t.Fatalf("EnableAdmin: %v", err)
	}
	v.LoadHistory(context.Background())
	refreshes := backend.historyCalls

	v.Delete(context.Background(), "a")

	if v.DeleteErr != "Invalid admin key" {
		t.Fatalf("delete error = %q", v.DeleteErr)
	}
	if backend.historyCalls != refreshes {
		t.Fatal("history refreshed after a failed delete")
	}
}

func TestAdminModePersistsAcrossReload(t *testing.T) {
	dir := t.TempDir()
	s1, err := NewSession(dir)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	v1 := NewHomeView(&fakeBackend{}, s1)
	if v1.AdminMode {
		t.Fatal("admin mode on before enabling")
	}
	if err := v1.EnableAdmin("secret"); err != nil {
		t.Fatalf("EnableAdmin: %v", err)
	}

	// Simulated reload: fresh session from the same directory.
	s2, err := NewSession(dir)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	v2 := NewHomeView(&fakeBackend{}, s2)
	if !v2.AdminMode {
		t.Fatal("admin mode lost across reload")
	}
	if s2.AdminKey() != "secret" {
		t.Fatalf("stored key = %q", s2.AdminKey())
	}

	if err := v2.DisableAdmin(); err != nil {
		t.Fatalf("DisableAdmin: %v", err)
	}
	s3, err := NewSession(dir)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s3.AdminKey() != "" {
		t.Fatal("credential survived disable")
	}
}

func TestSetTabIgnoresUnknownValues(t *testing.T) {
	v := NewHomeView(&fakeBackend{}, newTestSession(t))
	v.SetTab(TabTranscript)
	if v.ActiveTab != TabTranscript {
		t.Fatalf("tab = %q", v.ActiveTab)
	}
	v.SetTab(Tab("settings"))
	if v.ActiveTab != TabTranscript {
		t.Fatalf("unknown tab accepted: %q", v.ActiveTab)
	}
}
