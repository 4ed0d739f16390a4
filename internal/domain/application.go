package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusApplied     = "applied"
	ApplicationStatusReview      = "review"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusAccepted    = "accepted"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusWithdrawn   = "withdrawn"
)

// Application represents a candidate's application to a job.
type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	ApplicantID int64     `json:"applicant_id"`
	ResumePath  string    `json:"resume_path"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined data for list responses
	ApplicantName *string `json:"applicant_name,omitempty"`
	JobTitle      *string `json:"job_title,omitempty"`
}

// ResumeUpload is the file payload attached to an application.
type ResumeUpload struct {
	Filename string
	Size     int64
	Data     []byte
}

type ApplicationRepository interface {
	// Create inserts a new application. A unique-constraint violation on
	// (job_id, applicant_id) is returned as ErrDuplicateApplication.
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
	GetByApplicantID(ctx context.Context, applicantID int64) ([]Application, error)
	GetByJobAndApplicant(ctx context.Context, jobID, applicantID int64) (*Application, error)
	Exists(ctx context.Context, jobID, applicantID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type ApplicationUsecase interface {
	// Candidate operations
	Apply(ctx context.Context, actorID int64, jobID int64, resume ResumeUpload, coverLetter string) (*Application, error)
	GetMyApplications(ctx context.Context, actorID int64) ([]Application, error)
	Withdraw(ctx context.Context, actorID int64, applicationID int64) error

	// Employer operations
	Shortlist(ctx context.Context, actorID int64, applicationID int64) error
	UpdateStatus(ctx context.Context, actorID int64, applicationID int64, action Action) error
}
