package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound             = errors.New("resource not found")
	ErrDuplicateApplication = errors.New("application already exists for this job")
	ErrUsernameTaken        = errors.New("username already taken")
)

type Job struct {
	ID          int64     `json:"id"`
	PosterID    int64     `json:"poster_id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// JobFilter narrows a job listing. Keyword matches title, description or
// company; Location matches location. Both are case-insensitive substring
// matches and combine with AND.
type JobFilter struct {
	Keyword  string
	Location string
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	// Fetch returns jobs newest-first with the filter applied, plus the
	// total count of matching rows.
	Fetch(ctx context.Context, filter JobFilter, limit, offset int) ([]Job, int64, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id int64) error
}

// JobDetail bundles a job with the data the detail endpoint exposes:
// the applications list (poster only) and the caller's own application.
type JobDetail struct {
	Job            *Job          `json:"job"`
	Applications   []Application `json:"applications,omitempty"`
	HasApplied     bool          `json:"has_applied"`
	OwnApplication *Application  `json:"own_application,omitempty"`
}

type JobUsecase interface {
	CreateJob(ctx context.Context, actorID int64, job *Job) error
	GetJobDetail(ctx context.Context, actorID int64, jobID int64) (*JobDetail, error)
	ListJobs(ctx context.Context, filter JobFilter, page int) ([]Job, int64, error)
	UpdateJob(ctx context.Context, actorID int64, job *Job) error
	DeleteJob(ctx context.Context, actorID int64, jobID int64) error
}
