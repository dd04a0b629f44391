package tasks

import (
	"context"
	"sync"

	"github.com/smartfarm-io/console/pkg/models"
)

// InMemoryStore implements Repository with seeded dispatch items.
type InMemoryStore struct {
	mu    sync.RWMutex
	items []models.TaskItem
}

// seedTasks mirrors the dispatch items the console shows until a real
// task endpoint exists.
func seedTasks() []models.TaskItem {
	return []models.TaskItem{
		{ID: 101, Type: "Pest Control", Priority: "High", Status: models.TaskPending, Target: "Palm #182", Assignee: "Unassigned", Age: "2 hrs ago"},
		{ID: 102, Type: "Fertilize", Priority: "Medium", Status: models.TaskInProgress, Target: "Zone A", Assignee: "Ahmed", Age: "5 hrs ago"},
		{ID: 103, Type: "Harvest Check", Priority: "Low", Status: models.TaskDone, Target: "Sector 4", Assignee: "Ali", Age: "1 day ago"},
	}
}

// NewInMemoryStore creates a repository pre-populated with seed data.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		items: seedTasks(),
	}
}

func (s *InMemoryStore) List(_ context.Context) ([]models.TaskItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.TaskItem, len(s.items))
	copy(out, s.items)

	return out, nil
}

func (s *InMemoryStore) UpdateStatus(_ context.Context, id int, status models.TaskStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Status = status
			return nil
		}
	}

	return ErrUnknownTask
}
