// Package api is the thin HTTP wrapper around the remote task API. Every
// mutating endpoint returns the full updated record; the client never
// applies partial patches it did not receive in full.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/taskmarket/taskmarket-go/internal/constants"
	"github.com/taskmarket/taskmarket-go/internal/models"
	"github.com/taskmarket/taskmarket-go/internal/session"
)

var (
	ErrMissingTaskID        = errors.New("task id is required")
	ErrMissingApplicationID = errors.New("application id is required")
)

// Client calls the remote task API. All methods are context-aware and
// attach the session's bearer token.
type Client struct {
	baseURL string
	http    *http.Client
	session session.Provider
}

// New creates a Client for the given API base URL.
func New(baseURL string, sess session.Provider, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = constants.DefaultHTTPTimeout
	}
	return &Client{
		baseURL: baseURL,
		session: sess,
		http:    &http.Client{Timeout: timeout},
	}
}

// ListOptions holds pagination parameters for feed listings.
type ListOptions struct {
	Page     int
	PageSize int
}

func (o ListOptions) normalized() ListOptions {
	if o.Page < constants.MinPage {
		o.Page = constants.MinPage
	}
	if o.PageSize <= 0 || o.PageSize > constants.MaxPageSize {
		o.PageSize = constants.DefaultPageSize
	}
	return o
}

// UserTasks is the response of GET /user/tasks: the viewer's three
// partitions in one payload.
type UserTasks struct {
	Posted   []models.Task            `json:"posted"`
	Assigned []models.Task            `json:"assigned"`
	Applied  []models.TaskApplication `json:"applied"`
}

// CreateTaskInput is the payload for posting a new task.
type CreateTaskInput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Location    models.Location `json:"location"`
	Offer       float64         `json:"offer"`
}

// GetTask fetches a single task by id.
func (c *Client) GetTask(ctx context.Context, id string) (*models.Task, error) {
	if id == "" {
		return nil, ErrMissingTaskID
	}
	return c.taskRequest(ctx, http.MethodGet, "/tasks/"+url.PathEscape(id), nil)
}

// ListOpenTasks fetches the public feed filtered by status.
func (c *Client) ListOpenTasks(ctx context.Context, status models.TaskStatus, opts ListOptions) ([]models.Task, error) {
	opts = opts.normalized()
	q := url.Values{}
	q.Set("status", string(status))
	q.Set("page", strconv.Itoa(opts.Page))
	q.Set("limit", strconv.Itoa(opts.PageSize))

	var out struct {
		Tasks []models.Task `json:"tasks"`
	}
	if err := c.do(ctx, http.MethodGet, "/tasks?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	for i := range out.Tasks {
		out.Tasks[i].Normalize()
	}
	return out.Tasks, nil
}

// GetUserTasks fetches the viewer's posted, assigned, and applied
// partitions in a single call.
func (c *Client) GetUserTasks(ctx context.Context) (*UserTasks, error) {
	var out UserTasks
	if err := c.do(ctx, http.MethodGet, "/user/tasks", nil, &out); err != nil {
		return nil, err
	}
	for i := range out.Posted {
		out.Posted[i].Normalize()
	}
	for i := range out.Assigned {
		out.Assigned[i].Normalize()
	}
	for i := range out.Applied {
		out.Applied[i].Normalize()
	}
	return &out, nil
}

// CreateTask posts a new task and returns the created record.
func (c *Client) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	return c.taskRequest(ctx, http.MethodPost, "/tasks", input)
}

// Apply submits the viewer's application to a task.
func (c *Client) Apply(ctx context.Context, taskID string) (*models.TaskApplication, error) {
	if taskID == "" {
		return nil, ErrMissingTaskID
	}
	var app models.TaskApplication
	if err := c.do(ctx, http.MethodPost, "/tasks/"+url.PathEscape(taskID)+"/apply", nil, &app); err != nil {
		return nil, err
	}
	app.Normalize()
	return &app, nil
}

// AcceptApplication accepts a tasker's application; the returned task
// carries the newly assigned tasker.
func (c *Client) AcceptApplication(ctx context.Context, applicationID string) (*models.Task, error) {
	if applicationID == "" {
		return nil, ErrMissingApplicationID
	}
	return c.taskRequest(ctx, http.MethodPatch, "/applications/"+url.PathEscape(applicationID)+"/accept", nil)
}

// Approve moves a task under review to completed.
func (c *Client) Approve(ctx context.Context, taskID string) (*models.Task, error) {
	return c.taskAction(ctx, http.MethodPatch, taskID, "approve")
}

// Complete moves the assigned tasker's in-progress task to review.
func (c *Client) Complete(ctx context.Context, taskID string) (*models.Task, error) {
	return c.taskAction(ctx, http.MethodPatch, taskID, "complete")
}

// Confirm publishes a freshly created task onto the feed.
func (c *Client) Confirm(ctx context.Context, taskID string) (*models.Task, error) {
	return c.taskAction(ctx, http.MethodPost, taskID, "confirm")
}

// Cancel cancels a non-terminal task.
func (c *Client) Cancel(ctx context.Context, taskID string) (*models.Task, error) {
	return c.taskAction(ctx, http.MethodPatch, taskID, "cancel")
}

// Rate submits the poster's rating of the completed work.
func (c *Client) Rate(ctx context.Context, taskID string, rating float64) (*models.Task, error) {
	if taskID == "" {
		return nil, ErrMissingTaskID
	}
	payload := map[string]any{"rating": rating}
	return c.taskRequest(ctx, http.MethodPost, "/tasks/"+url.PathEscape(taskID)+"/rate", payload)
}

// UpdateAvatar replaces the viewer's profile picture and returns the
// confirmed user record.
func (c *Client) UpdateAvatar(ctx context.Context, pictureURL string) (*models.User, error) {
	payload := map[string]any{"profile_picture": pictureURL}
	var user models.User
	if err := c.do(ctx, http.MethodPatch, "/user/avatar", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) taskAction(ctx context.Context, method, taskID, action string) (*models.Task, error) {
	if taskID == "" {
		return nil, ErrMissingTaskID
	}
	return c.taskRequest(ctx, method, "/tasks/"+url.PathEscape(taskID)+"/"+action, nil)
}

func (c *Client) taskRequest(ctx context.Context, method, path string, payload any) (*models.Task, error) {
	var task models.Task
	if err := c.do(ctx, method, path, payload, &task); err != nil {
		return nil, err
	}
	task.Normalize()
	return &task, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
