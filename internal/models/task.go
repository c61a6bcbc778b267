package models

// Task is a to-do item owned by exactly one user. Ownership is bound to the
// authenticated caller at creation and every query filters on owner_id.
type Task struct {
	ID      int    `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	IsDone  bool   `json:"is_done" db:"is_done"`
	OwnerID int    `json:"owner_id" db:"owner_id"`
}

// TaskStats mirrors /api/tasks/stats.
type TaskStats struct {
	TotalTasks   int `json:"total_tasks"`
	PendingTasks int `json:"pending_tasks"`
}
