package model

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Todo is owned by the backend; the client never assigns or rewrites IDs.
type Todo struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	Priority    Priority   `json:"priority"`
	Category    *string    `json:"category,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Overdue reports whether the todo has a due date strictly in the past and
// is not completed. Recomputed on every render; never cached.
func (t Todo) Overdue(now time.Time) bool {
	return t.DueDate != nil && !t.Completed && t.DueDate.Before(now)
}

// Draft is the payload for create and full-update requests. Optional fields
// are nil when the user left them blank (see NewDraft).
type Draft struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Priority    Priority   `json:"priority"`
	Category    *string    `json:"category"`
	DueDate     *time.Time `json:"due_date"`
}

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

type SortKey string

const (
	SortCreatedAt SortKey = "created_at"
	SortDueDate   SortKey = "due_date"
	SortPriority  SortKey = "priority"
	SortTitle     SortKey = "title"
)

// SortKeys lists the selectable sort keys in display order.
var SortKeys = []SortKey{SortCreatedAt, SortDueDate, SortPriority, SortTitle}

type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Criteria is the client-side view selection. It lives only for the session
// and is never persisted; the backend receives it as query parameters.
type Criteria struct {
	Filter   Filter
	Search   string
	SortBy   SortKey
	Order    Order
	Category *string
	Priority *Priority
}

func DefaultCriteria() Criteria {
	return Criteria{
		Filter: FilterAll,
		SortBy: SortCreatedAt,
		Order:  OrderDesc,
	}
}

// Statistics is a read-only snapshot computed by the backend. The backend
// also reports per-priority counts; only these four are displayed.
type Statistics struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Overdue   int `json:"overdue"`
}

// CompletionPercent returns the completed/total ratio rounded to a whole
// percent, and 0 when there are no todos at all.
func (s Statistics) CompletionPercent() int {
	if s.Total <= 0 {
		return 0
	}
	return int(float64(s.Completed)/float64(s.Total)*100 + 0.5)
}
