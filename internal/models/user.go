package models

// User is the partial profile attached to tasks and applications. It is
// owned by the session subsystem; everything here is read-only reference
// data from the core's point of view.
type User struct {
	ID             string  `json:"id"`
	Username       string  `json:"username"`
	ProfilePicture string  `json:"profile_picture,omitempty"`
	Rating         float64 `json:"rating"`
	TasksPosted    int     `json:"tasks_posted"`
	TasksCompleted int     `json:"tasks_completed"`
	IsTasker       bool    `json:"is_tasker"`
}
