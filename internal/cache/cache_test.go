package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/taskmarket/taskmarket-go/internal/models"
)

// TaskCacheTestSuite defines the test suite for TaskCache
type TaskCacheTestSuite struct {
	suite.Suite
	cache *TaskCache
}

// SetupTest runs before each test
func (suite *TaskCacheTestSuite) SetupTest() {
	suite.cache = New()
}

func (suite *TaskCacheTestSuite) makeTask(id, title string) models.Task {
	return models.Task{
		ID:         id,
		Title:      title,
		Status:     models.TaskStatusPending,
		TaskPoster: models.User{ID: "poster-1"},
		UpdatedAt:  time.Now(),
	}
}

func (suite *TaskCacheTestSuite) makeApplication(id, taskID, userID string, status models.ApplicationStatus) models.TaskApplication {
	return models.TaskApplication{
		ID:        id,
		Task:      suite.makeTask(taskID, "applied task"),
		Applicant: models.User{ID: userID},
		Status:    status,
	}
}

func (suite *TaskCacheTestSuite) TestReplaceTasks() {
	suite.cache.ReplaceTasks(PartitionPosted, []models.Task{
		suite.makeTask("t1", "one"),
		suite.makeTask("t2", "two"),
	})
	suite.Len(suite.cache.Tasks(PartitionPosted), 2)

	// A later fetch replaces the partition wholesale.
	suite.cache.ReplaceTasks(PartitionPosted, []models.Task{suite.makeTask("t3", "three")})
	tasks := suite.cache.Tasks(PartitionPosted)
	suite.Len(tasks, 1)
	suite.Equal("t3", tasks[0].ID)

	// An empty fetch clears it.
	suite.cache.ReplaceTasks(PartitionPosted, nil)
	suite.Empty(suite.cache.Tasks(PartitionPosted))
}

func (suite *TaskCacheTestSuite) TestReplaceTasksDoesNotTouchOtherPartition() {
	suite.cache.ReplaceTasks(PartitionAssigned, []models.Task{suite.makeTask("t1", "one")})
	suite.cache.ReplaceTasks(PartitionPosted, []models.Task{suite.makeTask("t2", "two")})

	suite.Len(suite.cache.Tasks(PartitionAssigned), 1)
	suite.Len(suite.cache.Tasks(PartitionPosted), 1)
}

func (suite *TaskCacheTestSuite) TestAddTaskIdempotent() {
	task := suite.makeTask("t1", "one")
	suite.cache.AddTask(PartitionPosted, task)
	suite.cache.AddTask(PartitionPosted, task)

	suite.Len(suite.cache.Tasks(PartitionPosted), 1)
}

func (suite *TaskCacheTestSuite) TestAddTaskInsertsAtFront() {
	suite.cache.AddTask(PartitionPosted, suite.makeTask("t1", "old"))
	suite.cache.AddTask(PartitionPosted, suite.makeTask("t2", "new"))

	tasks := suite.cache.Tasks(PartitionPosted)
	suite.Equal("t2", tasks[0].ID)
	suite.Equal("t1", tasks[1].ID)
}

func (suite *TaskCacheTestSuite) TestUpsertRoundTrip() {
	task := suite.makeTask("t1", "original")
	suite.cache.AddTask(PartitionPosted, task)

	task.Title = "renamed"
	task.Status = models.TaskStatusInProgress
	suite.cache.Upsert(task)

	got, ok := suite.cache.GetByID("t1")
	suite.True(ok)
	suite.Equal(task, got)
}

func (suite *TaskCacheTestSuite) TestUpsertUnknownIDIsNoOp() {
	suite.cache.AddTask(PartitionPosted, suite.makeTask("t1", "one"))
	suite.cache.Upsert(suite.makeTask("t2", "phantom"))

	suite.Len(suite.cache.Tasks(PartitionPosted), 1)
	_, ok := suite.cache.GetByID("t2")
	suite.False(ok)
}

func (suite *TaskCacheTestSuite) TestUpsertRefreshesEmbeddedApplicationTask() {
	suite.cache.AddApplication(suite.makeApplication("a1", "t1", "u1", models.ApplicationStatusPending))

	updated := suite.makeTask("t1", "applied task")
	updated.Status = models.TaskStatusInProgress
	suite.cache.Upsert(updated)

	apps := suite.cache.Applications()
	suite.Equal(models.TaskStatusInProgress, apps[0].Task.Status)
}

func (suite *TaskCacheTestSuite) TestGetByIDPrefersAssigned() {
	posted := suite.makeTask("X", "stale posted copy")
	assigned := suite.makeTask("X", "fresh assigned copy")
	suite.cache.AddTask(PartitionPosted, posted)
	suite.cache.AddTask(PartitionAssigned, assigned)

	got, ok := suite.cache.GetByID("X")
	suite.True(ok)
	suite.Equal("fresh assigned copy", got.Title)
}

func (suite *TaskCacheTestSuite) TestGetByIDMiss() {
	_, ok := suite.cache.GetByID("nope")
	suite.False(ok)
}

func (suite *TaskCacheTestSuite) TestLastWriteWins() {
	// Writes replace the whole record by arrival order; no timestamp
	// reconciliation happens even when the later write is older.
	v1 := suite.makeTask("t1", "v1")
	v1.UpdatedAt = time.Now()
	v2 := suite.makeTask("t1", "v2")
	v2.UpdatedAt = v1.UpdatedAt.Add(-time.Hour)

	suite.cache.AddTask(PartitionPosted, v1)
	suite.cache.Upsert(v2)

	got, _ := suite.cache.GetByID("t1")
	suite.Equal("v2", got.Title)
}

func (suite *TaskCacheTestSuite) TestApplicationStatus() {
	suite.Equal(models.ApplicationStatusNone, suite.cache.ApplicationStatus("t1", "u1"))

	suite.cache.AddApplication(suite.makeApplication("a1", "t1", "u1", models.ApplicationStatusPending))
	suite.Equal(models.ApplicationStatusPending, suite.cache.ApplicationStatus("t1", "u1"))
	suite.Equal(models.ApplicationStatusNone, suite.cache.ApplicationStatus("t1", "someone-else"))

	suite.cache.ReplaceApplications([]models.TaskApplication{
		suite.makeApplication("a1", "t1", "u1", models.ApplicationStatusAccepted),
	})
	suite.Equal(models.ApplicationStatusAccepted, suite.cache.ApplicationStatus("t1", "u1"))
}

func (suite *TaskCacheTestSuite) TestAddApplicationIdempotent() {
	app := suite.makeApplication("a1", "t1", "u1", models.ApplicationStatusPending)
	suite.cache.AddApplication(app)
	suite.cache.AddApplication(app)

	suite.Len(suite.cache.Applications(), 1)
}

func (suite *TaskCacheTestSuite) TestClearScopes() {
	suite.cache.AddTask(PartitionPosted, suite.makeTask("t1", "one"))
	suite.cache.AddTask(PartitionAssigned, suite.makeTask("t2", "two"))
	suite.cache.AddApplication(suite.makeApplication("a1", "t3", "u1", models.ApplicationStatusPending))

	suite.cache.Clear(ScopeTasks)
	suite.Empty(suite.cache.Tasks(PartitionPosted))
	suite.Empty(suite.cache.Tasks(PartitionAssigned))
	suite.Len(suite.cache.Applications(), 1)

	suite.cache.Clear(ScopeApplications)
	suite.Empty(suite.cache.Applications())
}

func (suite *TaskCacheTestSuite) TestClearAll() {
	suite.cache.AddTask(PartitionPosted, suite.makeTask("t1", "one"))
	suite.cache.AddApplication(suite.makeApplication("a1", "t2", "u1", models.ApplicationStatusPending))

	suite.cache.Clear(ScopeAll)
	suite.Empty(suite.cache.Tasks(PartitionPosted))
	suite.Empty(suite.cache.Applications())
}

func TestTaskCacheTestSuite(t *testing.T) {
	suite.Run(t, new(TaskCacheTestSuite))
}

func TestTasksReturnsCopy(t *testing.T) {
	c := New()
	c.AddTask(PartitionPosted, models.Task{ID: "t1", Title: "one"})

	tasks := c.Tasks(PartitionPosted)
	tasks[0].Title = "mutated"

	got, _ := c.GetByID("t1")
	assert.Equal(t, "one", got.Title)
}
