// Package cache holds the session-scoped, in-memory view of the tasks the
// current user has posted, is assigned to, or has applied to. It is the
// single source of truth between fetches: screens read from it, and every
// server response that carries a full task record is pushed back into it.
//
// Writes are last-write-wins per task id with full-record replacement
// only. The server owns every field; the cache never merges partial data.
package cache

import (
	"sync"

	"github.com/taskmarket/taskmarket-go/internal/models"
)

// Partition is one of the logical task groupings from the viewer's
// perspective.
type Partition string

const (
	PartitionPosted   Partition = "posted"
	PartitionAssigned Partition = "assigned"
)

// Scope selects what Clear evicts.
type Scope string

const (
	ScopeTasks        Scope = "tasks"
	ScopeApplications Scope = "applications"
	ScopeAll          Scope = "all"
)

// TaskCache is the in-memory task store for one app session. The zero
// value is not usable; construct with New.
type TaskCache struct {
	mu       sync.RWMutex
	posted   []models.Task
	assigned []models.Task
	applied  []models.TaskApplication
}

// New creates an empty TaskCache.
func New() *TaskCache {
	return &TaskCache{}
}

// ReplaceTasks replaces the full contents of the posted or assigned
// partition after a listing fetch. An empty slice clears the partition.
func (c *TaskCache) ReplaceTasks(p Partition, tasks []models.Task) {
	fresh := make([]models.Task, len(tasks))
	copy(fresh, tasks)

	c.mu.Lock()
	defer c.mu.Unlock()
	switch p {
	case PartitionPosted:
		c.posted = fresh
	case PartitionAssigned:
		c.assigned = fresh
	}
}

// ReplaceApplications replaces the full contents of the applied
// partition after a listing fetch.
func (c *TaskCache) ReplaceApplications(apps []models.TaskApplication) {
	fresh := make([]models.TaskApplication, len(apps))
	copy(fresh, apps)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.applied = fresh
}

// Upsert replaces the task by id everywhere that id is already known:
// the posted and assigned partitions, and the task snapshot embedded in
// applied entries. If the id is not present anywhere this is a no-op;
// callers that create a task add it to a partition explicitly.
func (c *TaskCache) Upsert(task models.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()
	replaceByID(c.posted, task)
	replaceByID(c.assigned, task)
	for i := range c.applied {
		if c.applied[i].Task.ID == task.ID {
			c.applied[i].Task = task
		}
	}
}

func replaceByID(tasks []models.Task, task models.Task) {
	for i := range tasks {
		if tasks[i].ID == task.ID {
			tasks[i] = task
		}
	}
}

// AddTask inserts a task at the front of a partition. Inserting an id the
// partition already holds is a silent no-op; fast double-taps and retried
// requests must not double-insert.
func (c *TaskCache) AddTask(p Partition, task models.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch p {
	case PartitionPosted:
		if !containsID(c.posted, task.ID) {
			c.posted = append([]models.Task{task}, c.posted...)
		}
	case PartitionAssigned:
		if !containsID(c.assigned, task.ID) {
			c.assigned = append([]models.Task{task}, c.assigned...)
		}
	}
}

func containsID(tasks []models.Task, id string) bool {
	for i := range tasks {
		if tasks[i].ID == id {
			return true
		}
	}
	return false
}

// AddApplication inserts an application at the front of the applied
// partition, idempotent by application id.
func (c *TaskCache) AddApplication(app models.TaskApplication) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.applied {
		if c.applied[i].ID == app.ID {
			return
		}
	}
	c.applied = append([]models.TaskApplication{app}, c.applied...)
}

// GetByID returns the cached task for an id, searching assigned before
// posted: a tasker mid-work has the fresher copy on the assigned side.
// ok is false on a miss; the caller falls back to a network fetch.
func (c *TaskCache) GetByID(id string) (models.Task, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.assigned {
		if c.assigned[i].ID == id {
			return c.assigned[i], true
		}
	}
	for i := range c.posted {
		if c.posted[i].ID == id {
			return c.posted[i], true
		}
	}
	return models.Task{}, false
}

// Tasks returns a copy of the posted or assigned partition.
func (c *TaskCache) Tasks(p Partition) []models.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var src []models.Task
	switch p {
	case PartitionPosted:
		src = c.posted
	case PartitionAssigned:
		src = c.assigned
	}
	out := make([]models.Task, len(src))
	copy(out, src)
	return out
}

// Applications returns a copy of the applied partition.
func (c *TaskCache) Applications() []models.TaskApplication {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.TaskApplication, len(c.applied))
	copy(out, c.applied)
	return out
}

// ApplicationFor returns the viewer's application to a task, if cached.
func (c *TaskCache) ApplicationFor(taskID, userID string) (models.TaskApplication, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.applied {
		if c.applied[i].Task.ID == taskID && c.applied[i].Applicant.ID == userID {
			return c.applied[i], true
		}
	}
	return models.TaskApplication{}, false
}

// ApplicationStatus reports where a user's application to a task stands.
// Returns ApplicationStatusNone when no application is cached.
func (c *TaskCache) ApplicationStatus(taskID, userID string) models.ApplicationStatus {
	app, ok := c.ApplicationFor(taskID, userID)
	if !ok {
		return models.ApplicationStatusNone
	}
	return app.Status
}

// Clear evicts all tasks, all applications, or everything. Invoked on
// logout; a cold start rebuilds the cache from server responses.
func (c *TaskCache) Clear(scope Scope) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if scope == ScopeTasks || scope == ScopeAll {
		c.posted = nil
		c.assigned = nil
	}
	if scope == ScopeApplications || scope == ScopeAll {
		c.applied = nil
	}
}
