package models

// TaskStatus is the closed set of dispatch states.
type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskDone       TaskStatus = "Done"
)

// Valid reports whether s is a member of the closed status set.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskDone:
		return true
	default:
		return false
	}
}

// TaskItem is one dispatch work item on the task board.
type TaskItem struct {
	ID       int        `json:"id"`
	Type     string     `json:"type"`
	Priority string     `json:"priority"`
	Status   TaskStatus `json:"status"`
	Target   string     `json:"target"`
	Assignee string     `json:"assigned"`
	Age      string     `json:"time"`
}
