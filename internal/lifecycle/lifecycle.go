// Package lifecycle derives display and permission data from task and
// application statuses. Everything here is pure: no network, no storage,
// and no failure modes: malformed server data degrades to safe defaults
// instead of interrupting rendering.
package lifecycle

import "github.com/taskmarket/taskmarket-go/internal/models"

// ProgressKind tags a derived progress value so renderers distinguish a
// cancelled task from on-track progress without numeric conventions.
type ProgressKind string

const (
	ProgressOnTrack   ProgressKind = "ON_TRACK"
	ProgressCancelled ProgressKind = "CANCELLED"
	ProgressUnknown   ProgressKind = "UNKNOWN"
)

// Progress is the derived completion state of a task.
type Progress struct {
	Kind    ProgressKind
	Percent int
}

// Sentinel values kept from the original numeric convention: cancelled
// renders as 101 so a progress bar can tell it apart from 100% complete,
// and unknown renders as 0.
const (
	cancelledSentinel = 101
	unknownSentinel   = 0
)

var progressPercent = map[models.TaskStatus]int{
	models.TaskStatusCreated:    10,
	models.TaskStatusPending:    25,
	models.TaskStatusInProgress: 50,
	models.TaskStatusReview:     75,
	models.TaskStatusCompleted:  100,
}

// ProgressForStatus maps a task status to its progress. Unrecognized
// statuses map to ProgressUnknown; callers should log a data-integrity
// warning and keep rendering.
func ProgressForStatus(status models.TaskStatus) Progress {
	if status == models.TaskStatusCancelled {
		return Progress{Kind: ProgressCancelled}
	}
	if pct, ok := progressPercent[status]; ok {
		return Progress{Kind: ProgressOnTrack, Percent: pct}
	}
	return Progress{Kind: ProgressUnknown}
}

// Value flattens a Progress to the single-number convention legacy
// renderers expect: the percentage when on track, 101 for cancelled,
// 0 for unknown.
func (p Progress) Value() int {
	switch p.Kind {
	case ProgressOnTrack:
		return p.Percent
	case ProgressCancelled:
		return cancelledSentinel
	default:
		return unknownSentinel
	}
}

var statusLabels = map[models.TaskStatus]string{
	models.TaskStatusCreated:    "Created",
	models.TaskStatusPending:    "Pending",
	models.TaskStatusInProgress: "In Progress",
	models.TaskStatusReview:     "Under Review",
	models.TaskStatusCompleted:  "Completed",
	models.TaskStatusCancelled:  "Cancelled",
}

// LabelForStatus returns the human-readable label for a status.
// Unrecognized statuses map to "Unknown Status".
func LabelForStatus(status models.TaskStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return "Unknown Status"
}

// forwardNext is the single forward path a task moves along. CANCELLED is
// reachable from any non-terminal state and is handled separately.
var forwardNext = map[models.TaskStatus]models.TaskStatus{
	models.TaskStatusCreated:    models.TaskStatusPending,
	models.TaskStatusPending:    models.TaskStatusInProgress,
	models.TaskStatusInProgress: models.TaskStatusReview,
	models.TaskStatusReview:     models.TaskStatusCompleted,
}

// CanTransition reports whether the client may request moving a task from
// one status to another. The server owns the authoritative state machine;
// this mirror exists so the client can refuse to offer impossible actions.
func CanTransition(from, to models.TaskStatus) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}
	if from.IsTerminal() {
		return false
	}
	if to == models.TaskStatusCancelled {
		return true
	}
	return forwardNext[from] == to
}
