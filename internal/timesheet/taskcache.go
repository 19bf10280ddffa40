package timesheet

import (
	"context"
	"sync"

	"github.com/prismworks/timesheet-console/internal/backend"
	"github.com/prismworks/timesheet-console/internal/models"
)

// TaskCache caches each project's task list the first time that project is
// selected, so re-selecting a project never refetches. Entries live as long
// as the editor draft.
type TaskCache struct {
	mu        sync.Mutex
	api       backend.TaskAPI
	token     string
	byProject map[uint64][]models.Task
}

// NewTaskCache builds a cache backed by the given API and bearer token.
func NewTaskCache(api backend.TaskAPI, token string) *TaskCache {
	return &TaskCache{
		api:       api,
		token:     token,
		byProject: make(map[uint64][]models.Task),
	}
}

// Get returns the project's tasks, fetching on first use. Concurrent first
// uses of the same project may fetch twice; both fetches return the same
// collection and the second write is a no-op in effect.
func (c *TaskCache) Get(ctx context.Context, projectID uint64) ([]models.Task, error) {
	c.mu.Lock()
	tasks, ok := c.byProject[projectID]
	c.mu.Unlock()
	if ok {
		return tasks, nil
	}

	tasks, err := c.api.ListTasksByProject(ctx, c.token, projectID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.byProject[projectID] = tasks
	c.mu.Unlock()
	return tasks, nil
}

// Peek returns cached tasks without fetching.
func (c *TaskCache) Peek(projectID uint64) ([]models.Task, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	tasks, ok := c.byProject[projectID]
	return tasks, ok
}

// Prewarm loads every listed project concurrently. Used when opening an
// existing timesheet so each referenced project's dropdown is ready. The
// first fetch error wins; already-cached projects are skipped.
func (c *TaskCache) Prewarm(ctx context.Context, projectIDs []uint64) error {
	seen := make(map[uint64]bool)
	var wg sync.WaitGroup
	var errMu sync.Mutex
	var firstErr error

	for _, id := range projectIDs {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		if _, ok := c.Peek(id); ok {
			continue
		}

		wg.Add(1)
		go func(projectID uint64) {
			defer wg.Done()
			if _, err := c.Get(ctx, projectID); err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
			}
		}(id)
	}

	wg.Wait()
	return firstErr
}
