package toast

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/monojitgoswami69/portfolio-admin-client/pkg/bus"
)

// Change announces a completed mutation so independent views can refresh.
type Change struct {
	Category string
	ToastID  string
}

// Operation keywords that classify a completed toast into a Change category.
// Completions matching none of them publish nothing.
var changeCategories = []string{"upload", "archive", "restore", "delete"}

const (
	// DefaultDismissAfter removes finished toasts on wide viewports.
	DefaultDismissAfter = 5 * time.Second
	// DefaultCompactDismissAfter removes finished toasts on narrow viewports.
	DefaultCompactDismissAfter = 3 * time.Second
)

// Queue tracks in-flight and recently finished operations in insertion
// order. Operations never fail: updates and removals on unknown ids are
// silent no-ops. All methods are safe for concurrent use.
type Queue struct {
	mu     sync.Mutex
	order  []string
	items  map[string]*Toast
	timers map[string]*time.Timer

	changes bus.Broadcaster[Change]

	dismissAfter        time.Duration
	compactDismissAfter time.Duration
	compact             bool
	closed              bool
}

// Option configures a Queue.
type Option func(*Queue)

// WithDismissAfter sets the auto-dismiss delay for wide viewports.
func WithDismissAfter(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.dismissAfter = d
		}
	}
}

// WithCompactDismissAfter sets the auto-dismiss delay for narrow viewports.
func WithCompactDismissAfter(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.compactDismissAfter = d
		}
	}
}

// WithCompactViewport selects the shorter dismiss delay.
func WithCompactViewport(compact bool) Option {
	return func(q *Queue) {
		q.compact = compact
	}
}

// NewQueue creates a toast queue. changes receives a Change for every
// completed mutation-type toast; pass nil to disable the broadcast.
func NewQueue(changes bus.Broadcaster[Change], opts ...Option) *Queue {
	q := &Queue{
		items:               make(map[string]*Toast),
		timers:              make(map[string]*time.Timer),
		changes:             changes,
		dismissAfter:        DefaultDismissAfter,
		compactDismissAfter: DefaultCompactDismissAfter,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Add inserts a toast, assigning a generated id when none is given and
// defaulting the status to pending. Adding an id that is already present
// replaces that entry in place rather than duplicating it. Returns the id.
func (q *Queue) Add(t Toast) string {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = StatusPending
	}

	q.mu.Lock()
	if _, exists := q.items[t.ID]; !exists {
		q.order = append(q.order, t.ID)
	}
	q.items[t.ID] = &t
	if t.Status.terminal() {
		q.armDismissLocked(t.ID)
	} else {
		q.disarmDismissLocked(t.ID)
	}
	q.mu.Unlock()

	return t.ID
}

// Update merges patch into the toast matching id. Unknown ids are ignored.
// A status transition into complete publishes a Change when the toast's
// type, or its lowercased action when the type is empty, contains one of
// the known operation keywords.
func (q *Queue) Update(id string, patch Patch) {
	q.mu.Lock()
	t, ok := q.items[id]
	if !ok {
		q.mu.Unlock()
		return
	}

	wasComplete := t.Status == StatusComplete
	patch.apply(t)

	var change *Change
	if !wasComplete && t.Status == StatusComplete {
		if category, ok := classify(*t); ok {
			change = &Change{Category: category, ToastID: id}
		}
	}
	if t.Status.terminal() {
		q.armDismissLocked(id)
	} else {
		q.disarmDismissLocked(id)
	}
	q.mu.Unlock()

	if change != nil && q.changes != nil {
		_ = q.changes.Publish(context.Background(), *change)
	}
}

// Remove deletes the toast matching id and cancels its dismiss timer.
// Removing an absent id is a no-op.
func (q *Queue) Remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.removeLocked(id)
}

// removeLocked deletes id and cancels its timer. Callers must hold q.mu.
func (q *Queue) removeLocked(id string) {
	q.disarmDismissLocked(id)
	if _, ok := q.items[id]; !ok {
		return
	}
	delete(q.items, id)
	q.order = slices.DeleteFunc(q.order, func(existing string) bool {
		return existing == id
	})
}

// ShowSuccess adds a completed toast with the given message and returns its id.
func (q *Queue) ShowSuccess(message string, title ...string) string {
	t := Toast{Status: StatusComplete, Message: message}
	if len(title) > 0 {
		t.Title = title[0]
	}
	return q.Add(t)
}

// ShowError adds an error toast with the given message and returns its id.
func (q *Queue) ShowError(message string, title ...string) string {
	t := Toast{Status: StatusError, Message: message}
	if len(title) > 0 {
		t.Title = title[0]
	}
	return q.Add(t)
}

// List returns a snapshot of all toasts in insertion order.
func (q *Queue) List() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Toast, 0, len(q.order))
	for _, id := range q.order {
		out = append(out, *q.items[id])
	}
	return out
}

// Len returns the number of toasts currently in the queue.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Get returns a copy of the toast matching id.
func (q *Queue) Get(id string) (Toast, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	t, ok := q.items[id]
	if !ok {
		return Toast{}, false
	}
	return *t, true
}

// Listen forwards external add and patch events to the queue until ctx is
// cancelled or both subscribers are closed. This is how code outside the
// view tree drives the queue.
func (q *Queue) Listen(ctx context.Context, adds bus.Subscriber[Toast], patches bus.Subscriber[PatchEvent]) {
	go func() {
		addCh := adds.Events()
		patchCh := patches.Events()
		for addCh != nil || patchCh != nil {
			select {
			case t, ok := <-addCh:
				if !ok {
					addCh = nil
					continue
				}
				q.Add(t)
			case e, ok := <-patchCh:
				if !ok {
					patchCh = nil
					continue
				}
				q.Update(e.ID, e.Patch)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Close cancels all dismiss timers. Further operations still mutate the
// queue but no longer schedule dismissals.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}
}

// armDismissLocked schedules removal of id after the configured delay,
// replacing any previous timer so repeated arming never stacks. Callers
// must hold q.mu.
func (q *Queue) armDismissLocked(id string) {
	if q.closed {
		return
	}
	if timer, ok := q.timers[id]; ok {
		timer.Stop()
	}
	delay := q.dismissAfter
	if q.compact {
		delay = q.compactDismissAfter
	}
	q.timers[id] = time.AfterFunc(delay, func() {
		q.dismiss(id)
	})
}

// disarmDismissLocked cancels the dismiss timer for id, if any. Entries
// that leave a terminal status must not be removed by a stale timer.
// Callers must hold q.mu.
func (q *Queue) disarmDismissLocked(id string) {
	if timer, ok := q.timers[id]; ok {
		timer.Stop()
		delete(q.timers, id)
	}
}

// dismiss is the timer callback. The status is re-checked under the lock
// because a timer already firing cannot be stopped: a toast moved back to
// pending stays put.
func (q *Queue) dismiss(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	t, ok := q.items[id]
	if !ok || !t.Status.terminal() {
		return
	}
	q.removeLocked(id)
}

// classify maps a finished toast onto a Change category using its type, or
// its lowercased action when no type is set.
func classify(t Toast) (string, bool) {
	subject := t.Type
	if subject == "" {
		subject = strings.ToLower(t.Action)
	}
	for _, category := range changeCategories {
		if strings.Contains(subject, category) {
			return category, true
		}
	}
	return "", false
}
