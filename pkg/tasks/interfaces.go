// Package tasks provides the dispatch board data source. The console
// currently ships a seeded in-memory repository standing in for a real
// task-management backend; swapping in another implementation requires
// no caller change.
package tasks

import (
	"context"

	"github.com/smartfarm-io/console/pkg/models"
)

// Repository is the task board capability.
type Repository interface {
	List(ctx context.Context) ([]models.TaskItem, error)
	UpdateStatus(ctx context.Context, id int, status models.TaskStatus) error
}
