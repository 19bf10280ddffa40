// Package views converts domain state into the shapes templates render.
package views

import (
	"strconv"

	"github.com/prismworks/timesheet-console/internal/models"
)

// Option is one dropdown entry.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// CustomerOptions builds the customer dropdown.
func CustomerOptions(customers []models.Customer, selected uint64) []Option {
	opts := make([]Option, 0, len(customers))
	for _, c := range customers {
		opts = append(opts, Option{
			Value:    strconv.FormatUint(c.CustomerID, 10),
			Label:    c.CustomerName,
			Selected: c.CustomerID == selected,
		})
	}
	return opts
}

// ProjectOptions builds the project dropdown.
func ProjectOptions(projects []models.Project, selected uint64) []Option {
	opts := make([]Option, 0, len(projects))
	for _, p := range projects {
		opts = append(opts, Option{
			Value:    strconv.FormatUint(p.ProjectID, 10),
			Label:    p.ProjectName,
			Selected: p.ProjectID == selected,
		})
	}
	return opts
}

// AssignedProjectOptions builds the project dropdown from the resource's
// assignments, which is what the grid editor offers.
func AssignedProjectOptions(assignments []models.Assignment, selected uint64) []Option {
	opts := make([]Option, 0, len(assignments))
	seen := make(map[uint64]bool)
	for _, a := range assignments {
		if a.ProjectID == 0 || seen[a.ProjectID] {
			continue
		}
		seen[a.ProjectID] = true
		label := a.ProjectName
		if label == "" {
			label = "Project " + strconv.FormatUint(a.ProjectID, 10)
		}
		opts = append(opts, Option{
			Value:    strconv.FormatUint(a.ProjectID, 10),
			Label:    label,
			Selected: a.ProjectID == selected,
		})
	}
	return opts
}

// TaskOptions builds the task dropdown.
func TaskOptions(tasks []models.Task, selected uint64) []Option {
	opts := make([]Option, 0, len(tasks))
	for _, t := range tasks {
		opts = append(opts, Option{
			Value:    strconv.FormatUint(t.TaskID, 10),
			Label:    t.TaskName,
			Selected: t.TaskID == selected,
		})
	}
	return opts
}

// ResourceOptions builds the resource dropdown for the assignment form.
func ResourceOptions(resources []models.Resource, selected uint64) []Option {
	opts := make([]Option, 0, len(resources))
	for _, r := range resources {
		opts = append(opts, Option{
			Value:    strconv.FormatUint(r.ResourceID, 10),
			Label:    r.FullName(),
			Selected: r.ResourceID == selected,
		})
	}
	return opts
}

// RoleOptions builds the role dropdown for the resource form.
func RoleOptions(selected models.Role) []Option {
	return []Option{
		{Value: "1", Label: "Admin", Selected: selected == models.RoleAdmin},
		{Value: "2", Label: "User", Selected: selected == models.RoleUser},
	}
}
