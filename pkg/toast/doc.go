// Package toast tracks transient status records for in-flight and recently
// finished operations, the way the console surfaces them to the operator.
//
// Toasts are pure in-memory state: created by a producer, merged in place by
// id, removed explicitly or by an auto-dismiss timer once they reach a
// terminal status. Completed mutation-type toasts publish a Change on the
// queue's broadcaster so dashboard-like views know to refresh.
package toast
