package batch

// EventType identifies what happened to a file.
type EventType int

const (
	EventRenamed EventType = iota
	EventPlanned
	EventSkipped
	EventFailed
	EventCategoryRejected
	EventReverted
)

// Event reports the outcome of one step of a run.
type Event struct {
	Type    EventType
	Path    string
	NewPath string
	Reason  string
	Err     error
}

// ReportFunc receives events as a run proceeds.
type ReportFunc func(event Event)

// Result holds the counts of a finished run.
type Result struct {
	RunID    string
	Renamed  int
	Skipped  int
	Failed   int
	Reverted int
}
