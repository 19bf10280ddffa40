// Package backend is the console's typed client for the timesheet backend's
// REST API. Every call is independent: the bearer token is attached per
// request and there is no retry, caching, or deduplication. The backend
// remains the authority for persistence and authorization; this package only
// reports what it said.
package backend

import (
	"context"

	"github.com/prismworks/timesheet-console/internal/models"
)

// AuthAPI covers credential exchange.
type AuthAPI interface {
	// Login exchanges credentials for a bearer token and identity fields.
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
}

// ResourceAPI covers employee records.
type ResourceAPI interface {
	ListResources(ctx context.Context, token string) ([]models.Resource, error)
	GetResource(ctx context.Context, token string, id uint64) (*models.Resource, error)
	CreateResource(ctx context.Context, token string, r models.Resource) error
	UpdateResource(ctx context.Context, token string, id uint64, r models.Resource) error
}

// CustomerAPI covers client companies.
type CustomerAPI interface {
	ListCustomers(ctx context.Context, token string) ([]models.Customer, error)
	ListActiveCustomers(ctx context.Context, token string) ([]models.Customer, error)
	GetCustomer(ctx context.Context, token string, id uint64) (*models.Customer, error)
	CreateCustomer(ctx context.Context, token string, cu models.Customer) error
	UpdateCustomer(ctx context.Context, token string, id uint64, cu models.Customer) error
}

// ProjectAPI covers projects. Create and update carry the owning customer
// out of band (path segment / query parameter), matching the backend's
// contract.
type ProjectAPI interface {
	ListProjects(ctx context.Context, token string) ([]models.Project, error)
	ListProjectsByCustomer(ctx context.Context, token string, customerID uint64) ([]models.Project, error)
	GetProject(ctx context.Context, token string, id uint64) (*models.Project, error)
	CreateProject(ctx context.Context, token string, customerID uint64, p models.Project) error
	UpdateProject(ctx context.Context, token string, id, customerID uint64, p models.Project) error
}

// TaskAPI covers project tasks.
type TaskAPI interface {
	ListTasksByProject(ctx context.Context, token string, projectID uint64) ([]models.Task, error)
	GetTask(ctx context.Context, token string, id uint64) (*models.Task, error)
	CreateTask(ctx context.Context, token string, t models.Task) error
	UpdateTask(ctx context.Context, token string, id uint64, t models.Task) error
}

// AssignmentAPI covers resource-to-project assignments.
type AssignmentAPI interface {
	ListAssignments(ctx context.Context, token string) ([]models.Assignment, error)
	ListAssignmentsByResource(ctx context.Context, token string, resourceID uint64) ([]models.Assignment, error)
	ListAssignmentsByProject(ctx context.Context, token string, projectID uint64) ([]models.Assignment, error)
	GetAssignment(ctx context.Context, token string, id uint64) (*models.Assignment, error)
	CreateAssignment(ctx context.Context, token string, a models.Assignment) error
	UpdateAssignment(ctx context.Context, token string, id uint64, a models.Assignment) error
}

// TimesheetAPI covers weekly timesheets.
type TimesheetAPI interface {
	ListTimesheetsByResource(ctx context.Context, token string, resourceID uint64) ([]models.Timesheet, error)
	GetTimesheet(ctx context.Context, token string, id uint64) (*models.Timesheet, error)
	// TimesheetExists asks whether a timesheet is already recorded for the
	// (resource, week) pair. The backend enforces the uniqueness; this is
	// the advisory pre-check the grid editor runs before allowing save.
	TimesheetExists(ctx context.Context, token string, resourceID uint64, weekStart, weekEnd string) (bool, error)
	SubmitTimesheet(ctx context.Context, token string, ts models.Timesheet) error
}

// API is the full backend surface consumed by the console.
type API interface {
	AuthAPI
	ResourceAPI
	CustomerAPI
	ProjectAPI
	TaskAPI
	AssignmentAPI
	TimesheetAPI
}
