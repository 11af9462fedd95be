package lifecycle

import "github.com/taskmarket/taskmarket-go/internal/models"

// Action is something the current viewer may do to a task right now.
type Action string

const (
	ActionApply            Action = "apply"
	ActionCancel           Action = "cancel"
	ActionApprove          Action = "approve"
	ActionConfirm          Action = "confirm"
	ActionComplete         Action = "complete"
	ActionRate             Action = "rate"
	ActionTrack            Action = "track"
	ActionViewApplications Action = "view_applications"
)

// ActionSet is the set of actions currently offered to a viewer.
type ActionSet map[Action]struct{}

// Contains reports whether the action is in the set.
func (s ActionSet) Contains(a Action) bool {
	_, ok := s[a]
	return ok
}

func (s ActionSet) add(actions ...Action) {
	for _, a := range actions {
		s[a] = struct{}{}
	}
}

// Role is the viewer's relationship to a task.
type Role string

const (
	RolePoster           Role = "poster"
	RoleAssignedTasker   Role = "assigned_tasker"
	RolePendingApplicant Role = "pending_applicant"
	RoleDeniedApplicant  Role = "denied_applicant"
	RoleBystander        Role = "bystander"
)

// ClassifyViewer determines the viewer's role from the task record and
// the viewer's own application, if any. An accepted applicant is the
// assigned tasker; the two were the same screen state in practice.
func ClassifyViewer(task models.Task, application *models.TaskApplication, viewerID string) Role {
	if viewerID == "" {
		return RoleBystander
	}
	if task.TaskPoster.ID == viewerID {
		return RolePoster
	}
	if task.TaskerAssigned != nil && task.TaskerAssigned.ID == viewerID {
		return RoleAssignedTasker
	}
	if application != nil && application.Applicant.ID == viewerID {
		switch application.Status {
		case models.ApplicationStatusAccepted:
			return RoleAssignedTasker
		case models.ApplicationStatusDenied:
			return RoleDeniedApplicant
		case models.ApplicationStatusPending:
			return RolePendingApplicant
		}
	}
	return RoleBystander
}

// ActionsForViewer derives the actions offered to the viewer given their
// role and the task's current status. Unrecognized statuses yield an
// empty set; pending and denied applicants get view-only screens.
func ActionsForViewer(task models.Task, application *models.TaskApplication, viewerID string) ActionSet {
	actions := ActionSet{}
	if !task.Status.IsValid() {
		return actions
	}

	switch ClassifyViewer(task, application, viewerID) {
	case RolePoster:
		switch task.Status {
		case models.TaskStatusCreated:
			actions.add(ActionConfirm)
		case models.TaskStatusPending:
			actions.add(ActionTrack, ActionViewApplications)
		case models.TaskStatusInProgress:
			actions.add(ActionTrack)
		case models.TaskStatusReview:
			actions.add(ActionApprove)
		case models.TaskStatusCompleted:
			if !task.PosterRated {
				actions.add(ActionRate)
			}
		}
		if !task.Status.IsTerminal() {
			actions.add(ActionCancel)
		}
	case RoleAssignedTasker:
		if task.Status == models.TaskStatusInProgress {
			actions.add(ActionComplete)
		}
	case RoleBystander:
		// Applications open once the poster has confirmed the task onto
		// the public feed.
		if task.Status == models.TaskStatusPending {
			actions.add(ActionApply)
		}
	}
	return actions
}
