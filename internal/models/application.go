package models

import "time"

// TaskApplication represents one user's application to one task. The
// server enforces at most one application per (task, user) pair; the
// client assumes that holds.
type TaskApplication struct {
	ID        string            `json:"id"`
	Task      Task              `json:"task"`
	Applicant User              `json:"applicant"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Normalize canonicalizes enum casing after decoding a wire record.
func (a *TaskApplication) Normalize() {
	a.Status = NormalizeApplicationStatus(string(a.Status))
	a.Task.Normalize()
}
