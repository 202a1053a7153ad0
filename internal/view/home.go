package view

import (
	"context"
	"errors"
	"net/url"

	"github.com/collymonsterr/podsummary/internal/client"
	"github.com/collymonsterr/podsummary/internal/model"
	"github.com/collymonsterr/podsummary/internal/youtube"
)

// Tab selects which pane of the result card is shown.
type Tab string

const (
	TabSummary    Tab = "summary"
	TabTranscript Tab = "transcript"
)

// recentCount is how many history entries the sidebar shows.
const recentCount = 6

const (
	msgInvalidURL  = "Please enter a valid YouTube URL"
	msgBackendDown = "Cannot connect to the backend service"
	msgAdminNeeded = "Admin mode is required to delete entries"
)

// CurrentVideo is the metadata card shown next to a result.
type CurrentVideo struct {
	VideoID      string
	URL          string
	Title        string
	Channel      string
	ThumbnailURL string
}

// HomeView drives the summarize page: the URL form, the result card
// with its summary/transcript tabs, the history panel, and admin mode.
// Each request kind carries its own Async state so one failing never
// clobbers another.
type HomeView struct {
	backend Backend
	session *Session

	InputURL        string
	ValidationErr   string
	ConnectivityErr string

	Result  Async[*model.SummarizeResponse]
	Current *CurrentVideo

	ActiveTab Tab

	History     Async[[]model.Transcript]
	Recent      []model.Transcript
	ShowHistory bool

	AdminMode bool
	DeleteErr string
	deleting  bool
}

func NewHomeView(backend Backend, session *Session) *HomeView {
	return &HomeView{
		backend:   backend,
		session:   session,
		ActiveTab: TabSummary,
		AdminMode: session.AdminKey() != "",
	}
}

// Init runs the mount-time work: a health probe and the initial history
// fetch. A failed probe only sets the connectivity banner; the view
// stays usable.
func (v *HomeView) Init(ctx context.Context) {
	if _, err := v.backend.Health(ctx); err != nil {
		v.ConnectivityErr = msgBackendDown
	} else {
		v.ConnectivityErr = ""
	}
	v.LoadHistory(ctx)
}

// HandleQuery applies deep-link params. A non-empty "video" param fills
// the form and submits immediately.
func (v *HomeView) HandleQuery(ctx context.Context, query url.Values) {
	if video := query.Get("video"); video != "" {
		v.InputURL = video
		v.Submit(ctx, video)
	}
}

// LoadHistory refetches the stored history; the recent sidebar is the
// leading slice of the same list, so both panels always agree.
func (v *HomeView) LoadHistory(ctx context.Context) {
	v.History.start()
	entries, err := v.backend.History(ctx)
	if err != nil {
		v.History.fail(messageOf(err))
		return
	}
	v.History.succeed(entries)
	if len(entries) > recentCount {
		entries = entries[:recentCount]
	}
	v.Recent = entries
}

// Submit validates the URL and runs one summarize request. Empty or
// non-YouTube input fails client-side without touching the network; a
// submit while one is in flight is ignored.
func (v *HomeView) Submit(ctx context.Context, youtubeURL string) {
	if v.Result.Loading() {
		return
	}
	v.ValidationErr = ""
	if youtubeURL == "" || !youtube.IsVideoURL(youtubeURL) {
		v.ValidationErr = msgInvalidURL
		return
	}

	v.Current = nil
	v.Result.start()
	resp, err := v.backend.Summarize(ctx, youtubeURL)
	if err != nil {
		v.Result.fail(messageOf(err))
		return
	}
	v.applyResult(resp)
	v.LoadHistory(ctx)
}

// SelectHistory shows a stored entry without a network round trip,
// populating the view exactly like a cached summarize response.
func (v *HomeView) SelectHistory(id string) {
	entry := v.findEntry(id)
	if entry == nil {
		return
	}
	v.ValidationErr = ""
	v.InputURL = entry.URL
	v.applyResult(model.ResponseFromTranscript(entry, true))
}

// SetTab switches the result pane; unknown values are ignored.
func (v *HomeView) SetTab(tab Tab) {
	if tab == TabSummary || tab == TabTranscript {
		v.ActiveTab = tab
	}
}

func (v *HomeView) ToggleHistory() { v.ShowHistory = !v.ShowHistory }

// EnableAdmin stores the credential for subsequent deletes. The key is
// not verified here; a wrong key surfaces on the first delete.
func (v *HomeView) EnableAdmin(key string) error {
	if key == "" {
		return errors.New("empty admin key")
	}
	if err := v.session.SetAdminKey(key); err != nil {
		return err
	}
	v.AdminMode = true
	return nil
}

func (v *HomeView) DisableAdmin() error {
	if err := v.session.ClearAdminKey(); err != nil {
		return err
	}
	v.AdminMode = false
	return nil
}

// Delete removes a history entry. On success both history panels are
// refreshed, and if the deleted entry is the one on display the result
// card is cleared too.
func (v *HomeView) Delete(ctx context.Context, id string) {
	if v.deleting {
		return
	}
	if !v.AdminMode {
		v.DeleteErr = msgAdminNeeded
		return
	}
	v.deleting = true
	defer func() { v.deleting = false }()

	entry := v.findEntry(id)
	v.DeleteErr = ""
	if err := v.backend.DeleteTranscript(ctx, id, v.session.AdminKey()); err != nil {
		v.DeleteErr = messageOf(err)
		return
	}
	if entry != nil && v.Current != nil && v.Current.VideoID == entry.VideoID {
		v.Current = nil
		v.Result = Async[*model.SummarizeResponse]{}
	}
	v.LoadHistory(ctx)
}

func (v *HomeView) applyResult(resp *model.SummarizeResponse) {
	v.Result.succeed(resp)
	v.Current = &CurrentVideo{
		VideoID:      resp.VideoID,
		URL:          resp.URL,
		Title:        resp.Title,
		Channel:      resp.Channel,
		ThumbnailURL: resp.ThumbnailURL,
	}
	v.ActiveTab = TabSummary
}

func (v *HomeView) findEntry(id string) *model.Transcript {
	for i := range v.History.Value {
		if v.History.Value[i].ID == id {
			return &v.History.Value[i]
		}
	}
	return nil
}

// messageOf turns a backend error into the string the user sees,
// preferring the server's own detail.
func messageOf(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return client.GenericFailure
}
