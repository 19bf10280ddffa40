package models

// Task is a unit of work scoped to a project.
type Task struct {
	TaskID    uint64 `json:"taskId"`
	TaskName  string `json:"taskName"`
	Active    bool   `json:"active"`
	ProjectID uint64 `json:"projectId"`
}
