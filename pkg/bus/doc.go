// Package bus provides a typed in-process publish/subscribe channel.
//
// The console uses it for its process-wide signals: driving the toast queue
// from code outside the view tree, announcing completed mutations to
// dashboard-like views, and forcing a logout when the session expires.
// Publishing never blocks; a slow subscriber misses the event and its
// subscription ends.
//
// Basic usage:
//
//	changes := bus.NewMemory[string](8)
//	defer changes.Close()
//
//	sub := changes.Subscribe(ctx)
//	defer sub.Close()
//
//	changes.Publish(ctx, "upload")
//
//	for event := range sub.Events() {
//		fmt.Println(event)
//	}
package bus
