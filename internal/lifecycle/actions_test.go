package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskmarket/taskmarket-go/internal/models"
)

const (
	posterID    = "user-poster"
	taskerID    = "user-tasker"
	bystanderID = "user-bystander"
)

func makeTask(status models.TaskStatus) models.Task {
	return models.Task{
		ID:         "task-1",
		Title:      "Assemble a bookshelf",
		Status:     status,
		TaskPoster: models.User{ID: posterID, Username: "poster"},
	}
}

func makeAssignedTask(status models.TaskStatus) models.Task {
	task := makeTask(status)
	task.TaskerAssigned = &models.User{ID: taskerID, Username: "tasker"}
	return task
}

func makeApplication(status models.ApplicationStatus) *models.TaskApplication {
	return &models.TaskApplication{
		ID:        "app-1",
		Task:      makeTask(models.TaskStatusPending),
		Applicant: models.User{ID: taskerID},
		Status:    status,
	}
}

func TestClassifyViewer(t *testing.T) {
	task := makeAssignedTask(models.TaskStatusInProgress)

	assert.Equal(t, RolePoster, ClassifyViewer(task, nil, posterID))
	assert.Equal(t, RoleAssignedTasker, ClassifyViewer(task, nil, taskerID))
	assert.Equal(t, RoleBystander, ClassifyViewer(task, nil, bystanderID))
	assert.Equal(t, RoleBystander, ClassifyViewer(task, nil, ""))

	open := makeTask(models.TaskStatusPending)
	assert.Equal(t, RolePendingApplicant, ClassifyViewer(open, makeApplication(models.ApplicationStatusPending), taskerID))
	assert.Equal(t, RoleDeniedApplicant, ClassifyViewer(open, makeApplication(models.ApplicationStatusDenied), taskerID))
	assert.Equal(t, RoleAssignedTasker, ClassifyViewer(open, makeApplication(models.ApplicationStatusAccepted), taskerID))
}

func TestClassifyViewer_ApplicationForOtherUserIgnored(t *testing.T) {
	task := makeTask(models.TaskStatusPending)
	app := makeApplication(models.ApplicationStatusPending)
	assert.Equal(t, RoleBystander, ClassifyViewer(task, app, bystanderID))
}

func TestActionsForViewer_PosterDecisionTable(t *testing.T) {
	tests := []struct {
		status models.TaskStatus
		want   []Action
	}{
		{models.TaskStatusCreated, []Action{ActionConfirm, ActionCancel}},
		{models.TaskStatusPending, []Action{ActionTrack, ActionViewApplications, ActionCancel}},
		{models.TaskStatusInProgress, []Action{ActionTrack, ActionCancel}},
		{models.TaskStatusReview, []Action{ActionApprove, ActionCancel}},
		{models.TaskStatusCancelled, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			actions := ActionsForViewer(makeTask(tt.status), nil, posterID)
			assert.Len(t, actions, len(tt.want))
			for _, a := range tt.want {
				assert.True(t, actions.Contains(a), "missing %s", a)
			}
		})
	}
}

func TestActionsForViewer_PosterRating(t *testing.T) {
	task := makeTask(models.TaskStatusCompleted)
	actions := ActionsForViewer(task, nil, posterID)
	assert.True(t, actions.Contains(ActionRate))
	assert.Len(t, actions, 1)

	task.PosterRated = true
	assert.Empty(t, ActionsForViewer(task, nil, posterID))
}

func TestActionsForViewer_PosterCancelEscape(t *testing.T) {
	cancellable := []models.TaskStatus{
		models.TaskStatusCreated,
		models.TaskStatusPending,
		models.TaskStatusInProgress,
		models.TaskStatusReview,
	}
	for _, s := range cancellable {
		assert.True(t, ActionsForViewer(makeTask(s), nil, posterID).Contains(ActionCancel), "status %s", s)
	}

	for _, s := range []models.TaskStatus{models.TaskStatusCompleted, models.TaskStatusCancelled} {
		assert.False(t, ActionsForViewer(makeTask(s), nil, posterID).Contains(ActionCancel), "status %s", s)
	}
}

func TestActionsForViewer_AssignedTasker(t *testing.T) {
	actions := ActionsForViewer(makeAssignedTask(models.TaskStatusInProgress), nil, taskerID)
	assert.True(t, actions.Contains(ActionComplete))
	assert.Len(t, actions, 1)

	assert.Empty(t, ActionsForViewer(makeAssignedTask(models.TaskStatusReview), nil, taskerID))
	assert.Empty(t, ActionsForViewer(makeAssignedTask(models.TaskStatusCompleted), nil, taskerID))
}

func TestActionsForViewer_AcceptedApplicantActsAsTasker(t *testing.T) {
	task := makeTask(models.TaskStatusInProgress)
	actions := ActionsForViewer(task, makeApplication(models.ApplicationStatusAccepted), taskerID)
	assert.True(t, actions.Contains(ActionComplete))
}

func TestActionsForViewer_Applicants(t *testing.T) {
	task := makeTask(models.TaskStatusPending)

	// Pending and denied applicants get view-only screens.
	assert.Empty(t, ActionsForViewer(task, makeApplication(models.ApplicationStatusPending), taskerID))
	assert.Empty(t, ActionsForViewer(task, makeApplication(models.ApplicationStatusDenied), taskerID))
}

func TestActionsForViewer_Bystander(t *testing.T) {
	actions := ActionsForViewer(makeTask(models.TaskStatusPending), nil, bystanderID)
	assert.True(t, actions.Contains(ActionApply))
	assert.Len(t, actions, 1)

	// Applications only open once the task is on the feed.
	assert.Empty(t, ActionsForViewer(makeTask(models.TaskStatusCreated), nil, bystanderID))
	assert.Empty(t, ActionsForViewer(makeTask(models.TaskStatusInProgress), nil, bystanderID))
	assert.Empty(t, ActionsForViewer(makeTask(models.TaskStatusCancelled), nil, bystanderID))
}

func TestActionsForViewer_UnknownStatusDegradesToEmpty(t *testing.T) {
	task := makeTask(models.TaskStatus("SOMETHING_NEW"))
	assert.Empty(t, ActionsForViewer(task, nil, posterID))
	assert.Empty(t, ActionsForViewer(task, nil, bystanderID))
}
