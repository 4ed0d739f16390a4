package domain

import (
	"context"
	"time"
)

// Interview status constants
const (
	InterviewStatusScheduled   = "scheduled"
	InterviewStatusRescheduled = "rescheduled"
	InterviewStatusCompleted   = "completed"
	InterviewStatusCanceled    = "canceled"
)

// Interview mode constants
const (
	InterviewModeVideo  = "video"
	InterviewModePhone  = "phone"
	InterviewModeOnsite = "onsite"
)

type Interview struct {
	ID            int64     `json:"id"`
	ApplicationID int64     `json:"application_id"`
	CreatedBy     int64     `json:"created_by"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Mode          string    `json:"mode"`
	Location      string    `json:"location,omitempty"`
	MeetLink      string    `json:"meet_link,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Status        string    `json:"status"`
	InviteSent    bool      `json:"invite_sent"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// InterviewInput carries the schedulable fields of an interview. Status
// may only request the completed outcome; every other status change goes
// through schedule and cancel.
type InterviewInput struct {
	ScheduledAt time.Time `validate:"required"`
	Mode        string    `validate:"required,oneof=video phone onsite"`
	Location    string    `validate:"max=255"`
	MeetLink    string    `validate:"max=512"`
	Notes       string
	Status      string `validate:"omitempty,oneof=completed"`
}

type InterviewRepository interface {
	Create(ctx context.Context, iv *Interview) error
	GetByID(ctx context.Context, id int64) (*Interview, error)
	GetByApplicationID(ctx context.Context, applicationID int64) ([]Interview, error)
	Update(ctx context.Context, iv *Interview) error
	SetInviteSent(ctx context.Context, id int64, sent bool) error
}

type InterviewUsecase interface {
	Schedule(ctx context.Context, actorID int64, applicationID int64, input InterviewInput) (*Interview, error)
	Update(ctx context.Context, actorID int64, interviewID int64, input InterviewInput) (*Interview, error)
	Cancel(ctx context.Context, actorID int64, interviewID int64) error
	ListByApplication(ctx context.Context, actorID int64, applicationID int64) ([]Interview, error)
}
