package toast

import "fmt"

// Status is the lifecycle state of a toast.
type Status string

const (
	StatusPending  Status = "pending"
	StatusComplete Status = "complete"
	StatusError    Status = "error"
)

// terminal reports whether a toast in this status is eligible for
// auto-dismiss.
func (s Status) terminal() bool {
	return s == StatusComplete || s == StatusError
}

// Bulk describes a multi-item batch operation. When present it overrides the
// plain progress percentage and the action label.
type Bulk struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// Toast is a transient status record for an in-flight or recently finished
// operation. All descriptive fields are optional and default to empty.
type Toast struct {
	ID       string `json:"id"`
	Status   Status `json:"status"`
	Progress int    `json:"progress"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	FileName string `json:"fileName"`
	Action   string `json:"action"`
	Type     string `json:"type"`
	Bulk     *Bulk  `json:"bulkProgress,omitempty"`
}

// Percent returns the display percentage: the bulk ratio when a batch is
// attached, the plain progress value otherwise.
func (t Toast) Percent() int {
	if t.Bulk != nil && t.Bulk.Total > 0 {
		return t.Bulk.Current * 100 / t.Bulk.Total
	}
	return t.Progress
}

// Label returns the display label for the operation, preferring the bulk
// counter over the action text.
func (t Toast) Label() string {
	if t.Bulk != nil && t.Bulk.Total > 0 {
		return fmt.Sprintf("%d of %d", t.Bulk.Current, t.Bulk.Total)
	}
	return t.Action
}

// Patch is a partial update merged into an existing toast. Nil fields are
// left untouched; set fields win last-write per field.
type Patch struct {
	Status   *Status `json:"status,omitempty"`
	Progress *int    `json:"progress,omitempty"`
	Title    *string `json:"title,omitempty"`
	Message  *string `json:"message,omitempty"`
	FileName *string `json:"fileName,omitempty"`
	Action   *string `json:"action,omitempty"`
	Type     *string `json:"type,omitempty"`
	Bulk     *Bulk   `json:"bulkProgress,omitempty"`
}

func (p Patch) apply(t *Toast) {
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Progress != nil {
		t.Progress = *p.Progress
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Message != nil {
		t.Message = *p.Message
	}
	if p.FileName != nil {
		t.FileName = *p.FileName
	}
	if p.Action != nil {
		t.Action = *p.Action
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Bulk != nil {
		t.Bulk = p.Bulk
	}
}

// PatchEvent carries an external update request for the toast with the
// given id, delivered over the update event channel.
type PatchEvent struct {
	ID string `json:"id"`
	Patch
}

// StatusOf is a convenience for building a Patch status pointer.
func StatusOf(s Status) *Status { return &s }

// StringOf is a convenience for building a Patch string pointer.
func StringOf(s string) *string { return &s }

// IntOf is a convenience for building a Patch int pointer.
func IntOf(i int) *int { return &i }
