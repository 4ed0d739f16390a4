package notification

import (
	"context"
	"fmt"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/email"
	"go-jobportal-backend/pkg/logger"
)

// MetricsRecorder counts dispatch outcomes. Implemented by metrics.Collector.
type MetricsRecorder interface {
	RecordNotificationSent()
	RecordNotificationFailure()
}

// Dispatcher builds plain-text workflow emails and sends them through a
// Mailer. Recipients without an email address are skipped without error,
// matching the rest of the best-effort contract.
type Dispatcher struct {
	mailer  email.Mailer
	metrics MetricsRecorder
}

func NewDispatcher(mailer email.Mailer, metrics MetricsRecorder) *Dispatcher {
	return &Dispatcher{mailer: mailer, metrics: metrics}
}

func (d *Dispatcher) send(to, subject, body string) error {
	if to == "" {
		logger.Log.Warn("skipping notification: recipient has no email address", "subject", subject)
		return nil
	}
	if err := d.mailer.Send(to, subject, body); err != nil {
		if d.metrics != nil {
			d.metrics.RecordNotificationFailure()
		}
		return err
	}
	if d.metrics != nil {
		d.metrics.RecordNotificationSent()
	}
	return nil
}

func (d *Dispatcher) Welcome(_ context.Context, user *domain.User) error {
	subject := "Welcome to JobPortal"
	body := fmt.Sprintf("Hi %s,\n\nThanks for registering at JobPortal.", user.Username)
	return d.send(user.Email, subject, body)
}

func (d *Dispatcher) ApplicationReceived(_ context.Context, applicant *domain.User, job *domain.Job) error {
	subject := fmt.Sprintf("Application received for %s", job.Title)
	body := fmt.Sprintf(
		"Hi %s,\n\nThanks for applying to %q at %s.\n\nWe have received your application and will review it shortly.",
		applicant.Username, job.Title, job.Company,
	)
	return d.send(applicant.Email, subject, body)
}

func (d *Dispatcher) NewApplication(_ context.Context, poster *domain.User, applicant *domain.User, job *domain.Job) error {
	subject := fmt.Sprintf("New application for %s", job.Title)
	body := fmt.Sprintf(
		"Hi %s,\n\n%s has applied to your job posting: %q.\n\nPlease login to review the application.",
		poster.Username, applicant.Username, job.Title,
	)
	return d.send(poster.Email, subject, body)
}

func (d *Dispatcher) Shortlisted(_ context.Context, applicant *domain.User, job *domain.Job) error {
	subject := fmt.Sprintf("You have been shortlisted for %s", job.Title)
	body := fmt.Sprintf(
		"Hi %s,\n\nGood news! Your application for %q at %s has been shortlisted.\n\nThe employer may contact you to schedule an interview.",
		applicant.Username, job.Title, job.Company,
	)
	return d.send(applicant.Email, subject, body)
}

func (d *Dispatcher) InterviewScheduled(_ context.Context, recipient *domain.User, job *domain.Job, iv *domain.Interview) error {
	subject := fmt.Sprintf("Interview scheduled for %s", job.Title)
	body := fmt.Sprintf(
		"Hi %s,\n\nAn interview for %q at %s has been scheduled.\n\nWhen: %s\nMode: %s",
		recipient.Username, job.Title, job.Company,
		iv.ScheduledAt.Format("Mon, 02 Jan 2006 15:04 MST"), iv.Mode,
	)
	if iv.Location != "" {
		body += fmt.Sprintf("\nLocation: %s", iv.Location)
	}
	if iv.MeetLink != "" {
		body += fmt.Sprintf("\nMeeting link: %s", iv.MeetLink)
	}
	if iv.Notes != "" {
		body += fmt.Sprintf("\n\nNotes: %s", iv.Notes)
	}
	return d.send(recipient.Email, subject, body)
}

func (d *Dispatcher) InterviewCanceled(_ context.Context, applicant *domain.User, job *domain.Job, iv *domain.Interview) error {
	subject := fmt.Sprintf("Interview canceled for %s", job.Title)
	body := fmt.Sprintf(
		"Hi %s,\n\nThe interview for %q at %s scheduled on %s has been canceled.",
		applicant.Username, job.Title, job.Company,
		iv.ScheduledAt.Format("Mon, 02 Jan 2006 15:04 MST"),
	)
	return d.send(applicant.Email, subject, body)
}
