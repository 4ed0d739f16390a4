package domain

import "context"

// NotificationDispatcher sends transactional emails after workflow
// transitions. Every method is best-effort from the caller's point of view:
// usecases log and swallow the returned error, so delivery failure never
// affects the triggering operation.
type NotificationDispatcher interface {
	Welcome(ctx context.Context, user *User) error
	ApplicationReceived(ctx context.Context, applicant *User, job *Job) error
	NewApplication(ctx context.Context, poster *User, applicant *User, job *Job) error
	Shortlisted(ctx context.Context, applicant *User, job *Job) error
	InterviewScheduled(ctx context.Context, recipient *User, job *Job, iv *Interview) error
	InterviewCanceled(ctx context.Context, applicant *User, job *Job, iv *Interview) error
}
