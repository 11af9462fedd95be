package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskmarket/taskmarket-go/internal/api"
	"github.com/taskmarket/taskmarket-go/internal/cache"
	"github.com/taskmarket/taskmarket-go/internal/lifecycle"
	"github.com/taskmarket/taskmarket-go/internal/models"
	"github.com/taskmarket/taskmarket-go/internal/session"
)

var (
	ErrTitleRequired    = errors.New("title is required")
	ErrOfferNotPositive = errors.New("offer must be a positive amount")
	ErrTaskIDRequired   = errors.New("task id is required")
)

// TaskAPI is the slice of the remote API the task service consumes.
type TaskAPI interface {
	GetTask(ctx context.Context, id string) (*models.Task, error)
	ListOpenTasks(ctx context.Context, status models.TaskStatus, opts api.ListOptions) ([]models.Task, error)
	GetUserTasks(ctx context.Context) (*api.UserTasks, error)
	CreateTask(ctx context.Context, input api.CreateTaskInput) (*models.Task, error)
	Apply(ctx context.Context, taskID string) (*models.TaskApplication, error)
	AcceptApplication(ctx context.Context, applicationID string) (*models.Task, error)
	Approve(ctx context.Context, taskID string) (*models.Task, error)
	Complete(ctx context.Context, taskID string) (*models.Task, error)
	Confirm(ctx context.Context, taskID string) (*models.Task, error)
	Cancel(ctx context.Context, taskID string) (*models.Task, error)
	Rate(ctx context.Context, taskID string, rating float64) (*models.Task, error)
}

// TaskService ties the remote API, the session cache, and the lifecycle
// rules together: reads go through the cache, and every mutation pushes
// the server's full updated record back into it so all screens agree.
type TaskService struct {
	api     TaskAPI
	cache   *cache.TaskCache
	session session.Provider
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskAPI TaskAPI, taskCache *cache.TaskCache, sess session.Provider) *TaskService {
	return &TaskService{
		api:     taskAPI,
		cache:   taskCache,
		session: sess,
	}
}

// Task returns the task for an id, serving from cache when possible and
// falling back to a network fetch on a miss. A fetched record refreshes
// any cached copies but is not added to a partition; partitions only
// change on listing fetches and explicit inserts.
func (s *TaskService) Task(ctx context.Context, id string) (models.Task, error) {
	if id == "" {
		return models.Task{}, ErrTaskIDRequired
	}

	if task, ok := s.cache.GetByID(id); ok {
		return task, nil
	}

	task, err := s.api.GetTask(ctx, id)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to fetch task: %w", err)
	}
	s.cache.Upsert(*task)
	return *task, nil
}

// RefreshUserTasks replaces all three partitions from the server's view
// of the user's tasks.
func (s *TaskService) RefreshUserTasks(ctx context.Context) error {
	userTasks, err := s.api.GetUserTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch user tasks: %w", err)
	}

	s.cache.ReplaceTasks(cache.PartitionPosted, userTasks.Posted)
	s.cache.ReplaceTasks(cache.PartitionAssigned, userTasks.Assigned)
	s.cache.ReplaceApplications(userTasks.Applied)
	return nil
}

// BrowseOpenTasks returns the public feed of tasks open for applications.
// Feed results are display-only and never enter the cache.
func (s *TaskService) BrowseOpenTasks(ctx context.Context, opts api.ListOptions) ([]models.Task, error) {
	tasks, err := s.api.ListOpenTasks(ctx, models.TaskStatusPending, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch open tasks: %w", err)
	}
	return tasks, nil
}

// PostTask creates a new task and inserts it into the posted partition.
func (s *TaskService) PostTask(ctx context.Context, input api.CreateTaskInput) (models.Task, error) {
	if input.Title == "" {
		return models.Task{}, ErrTitleRequired
	}
	if input.Offer <= 0 {
		return models.Task{}, ErrOfferNotPositive
	}

	task, err := s.api.CreateTask(ctx, input)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	s.cache.AddTask(cache.PartitionPosted, *task)
	return *task, nil
}

// Apply submits the viewer's application and records it in the applied
// partition, refreshing any cached copies of the task.
func (s *TaskService) Apply(ctx context.Context, taskID string) (models.TaskApplication, error) {
	if taskID == "" {
		return models.TaskApplication{}, ErrTaskIDRequired
	}

	app, err := s.api.Apply(ctx, taskID)
	if err != nil {
		return models.TaskApplication{}, fmt.Errorf("failed to apply: %w", err)
	}
	s.cache.AddApplication(*app)
	s.cache.Upsert(app.Task)
	return *app, nil
}

// Accept accepts an application to one of the viewer's posted tasks.
func (s *TaskService) Accept(ctx context.Context, applicationID string) (models.Task, error) {
	task, err := s.api.AcceptApplication(ctx, applicationID)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to accept application: %w", err)
	}
	s.cache.Upsert(*task)
	return *task, nil
}

// Confirm publishes a freshly created task onto the feed.
func (s *TaskService) Confirm(ctx context.Context, taskID string) (models.Task, error) {
	return s.mutate(ctx, taskID, s.api.Confirm, "confirm task")
}

// Complete marks the viewer's assigned in-progress task as done, moving
// it under review.
func (s *TaskService) Complete(ctx context.Context, taskID string) (models.Task, error) {
	return s.mutate(ctx, taskID, s.api.Complete, "complete task")
}

// Approve accepts the delivered work, completing the task.
func (s *TaskService) Approve(ctx context.Context, taskID string) (models.Task, error) {
	return s.mutate(ctx, taskID, s.api.Approve, "approve task")
}

// Cancel cancels a non-terminal task.
func (s *TaskService) Cancel(ctx context.Context, taskID string) (models.Task, error) {
	return s.mutate(ctx, taskID, s.api.Cancel, "cancel task")
}

// Rate submits the poster's rating for completed work.
func (s *TaskService) Rate(ctx context.Context, taskID string, rating float64) (models.Task, error) {
	if taskID == "" {
		return models.Task{}, ErrTaskIDRequired
	}
	task, err := s.api.Rate(ctx, taskID, rating)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to rate task: %w", err)
	}
	s.cache.Upsert(*task)
	return *task, nil
}

func (s *TaskService) mutate(ctx context.Context, taskID string, call func(context.Context, string) (*models.Task, error), what string) (models.Task, error) {
	if taskID == "" {
		return models.Task{}, ErrTaskIDRequired
	}
	task, err := call(ctx, taskID)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to %s: %w", what, err)
	}
	s.cache.Upsert(*task)
	return *task, nil
}

// ActionsFor derives the actions the signed-in viewer may take on a
// task, consulting the cached application if one exists.
func (s *TaskService) ActionsFor(task models.Task) lifecycle.ActionSet {
	viewerID := s.session.ViewerID()
	var application *models.TaskApplication
	if app, ok := s.cache.ApplicationFor(task.ID, viewerID); ok {
		application = &app
	}
	return lifecycle.ActionsForViewer(task, application, viewerID)
}

// ApplicationStatus reports where the viewer's application to a task
// stands, from cache only.
func (s *TaskService) ApplicationStatus(taskID string) models.ApplicationStatus {
	return s.cache.ApplicationStatus(taskID, s.session.ViewerID())
}
