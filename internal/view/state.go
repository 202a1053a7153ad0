// Package view holds the UI controllers: HomeView and ChannelView state
// machines over the backend API, plus the route table that maps paths
// to them. Rendering lives in internal/webui; everything here is plain
// state so it can be tested without HTTP.
package view

// Phase is the lifecycle of one async request kind. Modeling it as a
// single enum (instead of independent loading/error booleans) makes
// impossible combinations unrepresentable.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

// Async is the tagged result for one request kind: at most one of
// Value/Err is meaningful, selected by Phase.
type Async[T any] struct {
	Phase Phase
	Value T
	Err   string
}

func (a *Async[T]) start() {
	var zero T
	a.Phase = PhaseLoading
	a.Value = zero
	a.Err = ""
}

func (a *Async[T]) succeed(v T) {
	a.Phase = PhaseSuccess
	a.Value = v
	a.Err = ""
}

func (a *Async[T]) fail(msg string) {
	var zero T
	a.Phase = PhaseError
	a.Value = zero
	a.Err = msg
}

// Loading reports whether a request of this kind is outstanding; the
// trigger control is disabled while it is.
func (a *Async[T]) Loading() bool { return a.Phase == PhaseLoading }

// Ready reports a completed request with a usable Value.
func (a *Async[T]) Ready() bool { return a.Phase == PhaseSuccess }

// Failed reports a completed request whose Err should be shown.
func (a *Async[T]) Failed() bool { return a.Phase == PhaseError }
