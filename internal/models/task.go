package models

import "time"

// Location is the free-text place a task happens at, with optional
// coordinates when the poster picked a suggestion from autocomplete.
type Location struct {
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Task represents one marketplace job as reported by the server. The
// client never owns task state; it only mirrors the latest full record
// the server handed it.
type Task struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Category       string        `json:"category"`
	Location       Location      `json:"location"`
	Offer          float64       `json:"offer"`
	Status         TaskStatus    `json:"status"`
	PaymentStatus  PaymentStatus `json:"payment_status,omitempty"`
	TaskPoster     User          `json:"task_poster"`
	TaskerAssigned *User         `json:"tasker_assigned,omitempty"`
	PosterRated    bool          `json:"poster_rated"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Normalize canonicalizes enum casing after decoding a wire record.
func (t *Task) Normalize() {
	t.Status = NormalizeTaskStatus(string(t.Status))
	if t.PaymentStatus != "" {
		t.PaymentStatus = PaymentStatus(canonical(string(t.PaymentStatus)))
	}
}
