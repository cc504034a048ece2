package screentest

import (
	"sync"

	"github.com/go-drift/rudder/pkg/screen"
)

// RecordingHost implements screen.Host for tests. It counts rebuild
// requests and queues post-frame callbacks until FlushFrames is called.
// All methods are safe for concurrent use.
type RecordingHost[V any] struct {
	mu        sync.Mutex
	rebuilds  int
	postFrame []func()

	// LoadingView and ErrorView are returned by the default-view builders.
	// ErrorView receives the error message.
	LoadingView V
	ErrorView   func(message string) V
}

var _ screen.Host[string] = (*RecordingHost[string])(nil)

// NewRecordingHost returns a host whose default loading view is the zero
// value of V and whose default error view is likewise zero.
func NewRecordingHost[V any]() *RecordingHost[V] {
	return &RecordingHost[V]{}
}

// MarkNeedsBuild records one rebuild request.
func (h *RecordingHost[V]) MarkNeedsBuild() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rebuilds++
}

// Rebuilds returns the number of rebuild requests recorded so far.
func (h *RecordingHost[V]) Rebuilds() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rebuilds
}

// PostFrame queues fn until the next FlushFrames.
func (h *RecordingHost[V]) PostFrame(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.postFrame = append(h.postFrame, fn)
}

// PendingFrames returns the number of queued post-frame callbacks.
func (h *RecordingHost[V]) PendingFrames() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.postFrame)
}

// FlushFrames runs all queued post-frame callbacks in order. Callbacks
// queued during the flush run on the next flush.
func (h *RecordingHost[V]) FlushFrames() {
	h.mu.Lock()
	queued := h.postFrame
	h.postFrame = nil
	h.mu.Unlock()
	for _, fn := range queued {
		fn()
	}
}

// BuildLoading returns LoadingView.
func (h *RecordingHost[V]) BuildLoading() V {
	return h.LoadingView
}

// BuildError returns ErrorView(message), or the zero value when ErrorView
// is unset.
func (h *RecordingHost[V]) BuildError(message string) V {
	if h.ErrorView != nil {
		return h.ErrorView(message)
	}
	var zero V
	return zero
}
