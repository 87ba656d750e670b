package toast_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monojitgoswami69/portfolio-admin-client/pkg/bus"
	"github.com/monojitgoswami69/portfolio-admin-client/pkg/toast"
)

func TestQueueAdd(t *testing.T) {
	t.Parallel()

	t.Run("assigns id and pending status", func(t *testing.T) {
		t.Parallel()

		q := toast.NewQueue(nil)
		defer q.Close()

		id := q.Add(toast.Toast{Title: "Upload"})
		require.NotEmpty(t, id)

		got, ok := q.Get(id)
		require.True(t, ok)
		assert.Equal(t, toast.StatusPending, got.Status)
		assert.Equal(t, "Upload", got.Title)
	})

	t.Run("keeps caller-supplied id", func(t *testing.T) {
		t.Parallel()

		q := toast.NewQueue(nil)
		defer q.Close()

		id := q.Add(toast.Toast{ID: "custom", Message: "hi"})
		assert.Equal(t, "custom", id)
	})

	t.Run("re-adding an id replaces, never duplicates", func(t *testing.T) {
		t.Parallel()

		q := toast.NewQueue(nil)
		defer q.Close()

		q.Add(toast.Toast{ID: "x", Title: "first"})
		q.Add(toast.Toast{ID: "x", Title: "second"})

		assert.Equal(t, 1, q.Len())
		got, _ := q.Get("x")
		assert.Equal(t, "second", got.Title)
	})

	t.Run("insertion order is display order", func(t *testing.T) {
		t.Parallel()

		q := toast.NewQueue(nil)
		defer q.Close()

		q.Add(toast.Toast{ID: "a"})
		q.Add(toast.Toast{ID: "b"})
		q.Add(toast.Toast{ID: "c"})

		list := q.List()
		require.Len(t, list, 3)
		assert.Equal(t, "a", list[0].ID)
		assert.Equal(t, "b", list[1].ID)
		assert.Equal(t, "c", list[2].ID)
	})
}

func TestQueueUpdate(t *testing.T) {
	t.Parallel()

	t.Run("merges fields last-write-wins", func(t *testing.T) {
		t.Parallel()

		q := toast.NewQueue(nil)
		defer q.Close()

		id := q.Add(toast.Toast{Title: "Upload", Message: "starting", Progress: 0})

		q.Update(id, toast.Patch{Progress: toast.IntOf(40)})
		q.Update(id, toast.Patch{Progress: toast.IntOf(80), Message: toast.StringOf("almost done")})

		got, _ := q.Get(id)
		assert.Equal(t, "Upload", got.Title, "untouched fields survive the merge")
		assert.Equal(t, 80, got.Progress)
		assert.Equal(t, "almost done", got.Message)
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		t.Parallel()

		q := toast.NewQueue(nil)
		defer q.Close()

		q.Update("ghost", toast.Patch{Status: toast.StatusOf(toast.StatusComplete)})
		assert.Equal(t, 0, q.Len(), "update must never create entries")
	})

	t.Run("bulk progress overrides percentage and label", func(t *testing.T) {
		t.Parallel()

		q := toast.NewQueue(nil)
		defer q.Close()

		id := q.Add(toast.Toast{Action: "Uploading", Progress: 10})
		q.Update(id, toast.Patch{Bulk: &toast.Bulk{Current: 3, Total: 4}})

		got, _ := q.Get(id)
		assert.Equal(t, 75, got.Percent())
		assert.Equal(t, "3 of 4", got.Label())
	})
}

func TestQueueRemove(t *testing.T) {
	t.Parallel()

	q := toast.NewQueue(nil)
	defer q.Close()

	id := q.Add(toast.Toast{})
	q.Remove(id)
	q.Remove(id) // idempotent

	assert.Equal(t, 0, q.Len())
	_, ok := q.Get(id)
	assert.False(t, ok)
}

func TestQueueConvenienceProducers(t *testing.T) {
	t.Parallel()

	q := toast.NewQueue(nil, toast.WithDismissAfter(time.Hour))
	defer q.Close()

	successID := q.ShowSuccess("saved", "Knowledge")
	errorID := q.ShowError("save failed")

	success, _ := q.Get(successID)
	assert.Equal(t, toast.StatusComplete, success.Status)
	assert.Equal(t, "Knowledge", success.Title)

	failure, _ := q.Get(errorID)
	assert.Equal(t, toast.StatusError, failure.Status)
	assert.Equal(t, "save failed", failure.Message)
}

func TestQueueChangeBroadcast(t *testing.T) {
	t.Parallel()

	t.Run("completed upload publishes tagged change", func(t *testing.T) {
		t.Parallel()

		changes := bus.NewMemory[toast.Change](4)
		defer changes.Close()
		sub := changes.Subscribe(context.Background())
		defer sub.Close()

		q := toast.NewQueue(changes, toast.WithDismissAfter(time.Hour))
		defer q.Close()

		id := q.Add(toast.Toast{Title: "Upload", Status: toast.StatusPending})
		q.Update(id, toast.Patch{
			Status: toast.StatusOf(toast.StatusComplete),
			Type:   toast.StringOf("upload"),
		})

		select {
		case change := <-sub.Events():
			assert.Equal(t, "upload", change.Category)
			assert.Equal(t, id, change.ToastID)
		case <-time.After(time.Second):
			t.Fatal("expected a change broadcast")
		}

		got, ok := q.Get(id)
		require.True(t, ok)
		assert.Equal(t, toast.StatusComplete, got.Status)
	})

	t.Run("falls back to lowercased action", func(t *testing.T) {
		t.Parallel()

		changes := bus.NewMemory[toast.Change](4)
		defer changes.Close()
		sub := changes.Subscribe(context.Background())
		defer sub.Close()

		q := toast.NewQueue(changes, toast.WithDismissAfter(time.Hour))
		defer q.Close()

		id := q.Add(toast.Toast{Action: "Deleting project", Status: toast.StatusPending})
		q.Update(id, toast.Patch{Status: toast.StatusOf(toast.StatusComplete)})

		select {
		case change := <-sub.Events():
			assert.Equal(t, "delete", change.Category)
		case <-time.After(time.Second):
			t.Fatal("expected a change broadcast")
		}
	})

	t.Run("unmatched completion publishes nothing", func(t *testing.T) {
		t.Parallel()

		changes := bus.NewMemory[toast.Change](4)
		defer changes.Close()
		sub := changes.Subscribe(context.Background())
		defer sub.Close()

		q := toast.NewQueue(changes, toast.WithDismissAfter(time.Hour))
		defer q.Close()

		id := q.Add(toast.Toast{Action: "Saving draft", Status: toast.StatusPending})
		q.Update(id, toast.Patch{Status: toast.StatusOf(toast.StatusComplete)})

		select {
		case change := <-sub.Events():
			t.Fatalf("unexpected change broadcast: %+v", change)
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("already complete toast does not rebroadcast", func(t *testing.T) {
		t.Parallel()

		changes := bus.NewMemory[toast.Change](4)
		defer changes.Close()
		sub := changes.Subscribe(context.Background())
		defer sub.Close()

		q := toast.NewQueue(changes, toast.WithDismissAfter(time.Hour))
		defer q.Close()

		id := q.Add(toast.Toast{Type: "upload", Status: toast.StatusPending})
		q.Update(id, toast.Patch{Status: toast.StatusOf(toast.StatusComplete)})
		<-sub.Events()

		q.Update(id, toast.Patch{Message: toast.StringOf("still complete")})

		select {
		case change := <-sub.Events():
			t.Fatalf("unexpected second broadcast: %+v", change)
		case <-time.After(100 * time.Millisecond):
		}
	})
}

func TestQueueAutoDismiss(t *testing.T) {
	t.Parallel()

	t.Run("terminal toast is removed after the delay", func(t *testing.T) {
		t.Parallel()

		q := toast.NewQueue(nil, toast.WithDismissAfter(30*time.Millisecond))
		defer q.Close()

		id := q.Add(toast.Toast{Status: toast.StatusComplete})

		require.Eventually(t, func() bool {
			_, ok := q.Get(id)
			return !ok
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("compact viewport uses the shorter delay", func(t *testing.T) {
		t.Parallel()

		q := toast.NewQueue(nil,
			toast.WithDismissAfter(time.Hour),
			toast.WithCompactDismissAfter(30*time.Millisecond),
			toast.WithCompactViewport(true),
		)
		defer q.Close()

		id := q.Add(toast.Toast{Status: toast.StatusError})

		require.Eventually(t, func() bool {
			_, ok := q.Get(id)
			return !ok
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("manual removal wins and the toast never reappears", func(t *testing.T) {
		t.Parallel()

		q := toast.NewQueue(nil, toast.WithDismissAfter(50*time.Millisecond))
		defer q.Close()

		id := q.Add(toast.Toast{Status: toast.StatusComplete})
		q.Remove(id)

		time.Sleep(100 * time.Millisecond)
		_, ok := q.Get(id)
		assert.False(t, ok)
		assert.Equal(t, 0, q.Len())
	})

	t.Run("re-arming replaces the timer instead of stacking", func(t *testing.T) {
		t.Parallel()

		q := toast.NewQueue(nil, toast.WithDismissAfter(60*time.Millisecond))
		defer q.Close()

		id := q.Add(toast.Toast{Status: toast.StatusComplete})
		// Repeated terminal updates simulate re-renders of the same entry.
		q.Update(id, toast.Patch{Message: toast.StringOf("a"), Status: toast.StatusOf(toast.StatusComplete)})
		q.Update(id, toast.Patch{Message: toast.StringOf("b"), Status: toast.StatusOf(toast.StatusComplete)})

		require.Eventually(t, func() bool {
			_, ok := q.Get(id)
			return !ok
		}, time.Second, 5*time.Millisecond)
		assert.Equal(t, 0, q.Len())
	})

	t.Run("moving back to pending disarms the timer", func(t *testing.T) {
		t.Parallel()

		q := toast.NewQueue(nil, toast.WithDismissAfter(50*time.Millisecond))
		defer q.Close()

		// A retried operation flips a finished toast back to pending; the
		// dismiss timer armed for the terminal state must not survive that.
		id := q.Add(toast.Toast{Status: toast.StatusComplete})
		q.Update(id, toast.Patch{Status: toast.StatusOf(toast.StatusPending)})

		time.Sleep(150 * time.Millisecond)
		got, ok := q.Get(id)
		require.True(t, ok)
		assert.Equal(t, toast.StatusPending, got.Status)
	})

	t.Run("re-adding an id as pending disarms the timer", func(t *testing.T) {
		t.Parallel()

		q := toast.NewQueue(nil, toast.WithDismissAfter(50*time.Millisecond))
		defer q.Close()

		q.Add(toast.Toast{ID: "x", Status: toast.StatusComplete})
		q.Add(toast.Toast{ID: "x", Status: toast.StatusPending})

		time.Sleep(150 * time.Millisecond)
		_, ok := q.Get("x")
		assert.True(t, ok)
	})

	t.Run("pending toast is never auto-dismissed", func(t *testing.T) {
		t.Parallel()

		q := toast.NewQueue(nil, toast.WithDismissAfter(30*time.Millisecond))
		defer q.Close()

		id := q.Add(toast.Toast{Status: toast.StatusPending})
		time.Sleep(80 * time.Millisecond)

		_, ok := q.Get(id)
		assert.True(t, ok)
	})
}

func TestQueueListen(t *testing.T) {
	t.Parallel()

	adds := bus.NewMemory[toast.Toast](4)
	patches := bus.NewMemory[toast.PatchEvent](4)
	defer adds.Close()
	defer patches.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := toast.NewQueue(nil, toast.WithDismissAfter(time.Hour))
	defer q.Close()
	q.Listen(ctx, adds.Subscribe(ctx), patches.Subscribe(ctx))

	require.NoError(t, adds.Publish(ctx, toast.Toast{ID: "ext", Title: "External"}))

	require.Eventually(t, func() bool {
		_, ok := q.Get("ext")
		return ok
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, patches.Publish(ctx, toast.PatchEvent{
		ID:    "ext",
		Patch: toast.Patch{Message: toast.StringOf("updated externally")},
	}))

	require.Eventually(t, func() bool {
		got, ok := q.Get("ext")
		return ok && got.Message == "updated externally"
	}, time.Second, 5*time.Millisecond)
}

func TestQueueSequenceSemantics(t *testing.T) {
	t.Parallel()

	// Applying a mixed operation sequence left-to-right yields exactly the
	// mathematical result of the per-field merges.
	q := toast.NewQueue(nil, toast.WithDismissAfter(time.Hour))
	defer q.Close()

	a := q.Add(toast.Toast{ID: "a", Title: "A", Progress: 10})
	b := q.Add(toast.Toast{ID: "b", Title: "B"})
	q.Update(a, toast.Patch{Progress: toast.IntOf(50)})
	q.Remove(b)
	q.Update(b, toast.Patch{Title: toast.StringOf("zombie")}) // no-op, b is gone
	q.Update(a, toast.Patch{Status: toast.StatusOf(toast.StatusComplete)})

	list := q.List()
	require.Len(t, list, 1)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "A", list[0].Title)
	assert.Equal(t, 50, list[0].Progress)
	assert.Equal(t, toast.StatusComplete, list[0].Status)
}
