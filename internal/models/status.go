package models

import "strings"

// TaskStatus is the server-reported lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusReview     TaskStatus = "REVIEW"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

// IsValid returns true if the status is one of the known lifecycle states.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusCreated, TaskStatusPending, TaskStatusInProgress,
		TaskStatusReview, TaskStatusCompleted, TaskStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if no further transitions are possible.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusCancelled
}

// PaymentStatus tracks payment settlement; only meaningful once the task
// reaches COMPLETED.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusConfirmed PaymentStatus = "CONFIRMED"
)

// ApplicationStatus is the poster's decision on a tasker's application.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusDenied   ApplicationStatus = "DENIED"

	// ApplicationStatusNone is a derived value meaning the viewer has no
	// application on record for a task. It never appears on the wire.
	ApplicationStatusNone ApplicationStatus = "NONE"
)

// NormalizeTaskStatus canonicalizes a wire value to upper-case. Unknown
// values pass through upper-cased; callers degrade them to safe defaults
// rather than rejecting the record.
func NormalizeTaskStatus(raw string) TaskStatus {
	return TaskStatus(canonical(raw))
}

// NormalizeApplicationStatus canonicalizes a wire value to upper-case.
// The backend has emitted both "accepted" and "ACCEPTED" historically, so
// all comparisons happen against the normalized form.
func NormalizeApplicationStatus(raw string) ApplicationStatus {
	return ApplicationStatus(canonical(raw))
}

func canonical(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
