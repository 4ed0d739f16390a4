package usecase

import (
	"context"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type interviewUsecase struct {
	ivRepo     domain.InterviewRepository
	appRepo    domain.ApplicationRepository
	jobRepo    domain.JobRepository
	userRepo   domain.UserRepository
	dispatcher domain.NotificationDispatcher
	validate   *validator.Validate
}

func NewInterviewUsecase(
	ivRepo domain.InterviewRepository,
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	userRepo domain.UserRepository,
	dispatcher domain.NotificationDispatcher,
	validate *validator.Validate,
) domain.InterviewUsecase {
	return &interviewUsecase{
		ivRepo:     ivRepo,
		appRepo:    appRepo,
		jobRepo:    jobRepo,
		userRepo:   userRepo,
		dispatcher: dispatcher,
		validate:   validate,
	}
}

// Schedule creates an interview for an application. The interview is
// persisted first; then schedule notices go to both the applicant and the
// poster, and invite_sent flips to true only when both dispatches succeed.
// The interview survives dispatch failure either way.
func (uc *interviewUsecase) Schedule(ctx context.Context, actorID int64, applicationID int64, input domain.InterviewInput) (*domain.Interview, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	app, job, err := uc.authorizePoster(ctx, actorID, applicationID)
	if err != nil {
		return nil, err
	}

	iv := &domain.Interview{
		ApplicationID: applicationID,
		CreatedBy:     actorID,
		ScheduledAt:   input.ScheduledAt,
		Mode:          input.Mode,
		Location:      input.Location,
		MeetLink:      input.MeetLink,
		Notes:         input.Notes,
		Status:        domain.InterviewStatusScheduled,
	}
	if err := uc.ivRepo.Create(ctx, iv); err != nil {
		return nil, apperror.Internal(err)
	}

	if uc.notifyScheduled(ctx, app, job, iv) {
		if err := uc.ivRepo.SetInviteSent(ctx, iv.ID, true); err != nil {
			logger.Log.Warn("failed to mark invite as sent", "interview_id", iv.ID, "error", err)
		} else {
			iv.InviteSent = true
		}
	}

	return iv, nil
}

// notifyScheduled dispatches schedule notices to applicant and poster.
// Returns true only when both succeed.
func (uc *interviewUsecase) notifyScheduled(ctx context.Context, app *domain.Application, job *domain.Job, iv *domain.Interview) bool {
	ok := true

	applicant, err := uc.userRepo.GetByID(ctx, app.ApplicantID)
	if err != nil {
		logger.Log.Warn("applicant lookup failed, skipping interview notice", "interview_id", iv.ID, "error", err)
		ok = false
	} else if err := uc.dispatcher.InterviewScheduled(ctx, applicant, job, iv); err != nil {
		logger.Log.Warn("applicant interview notice failed", "interview_id", iv.ID, "error", err)
		ok = false
	}

	poster, err := uc.userRepo.GetByID(ctx, job.PosterID)
	if err != nil {
		logger.Log.Warn("poster lookup failed, skipping interview notice", "interview_id", iv.ID, "error", err)
		ok = false
	} else if err := uc.dispatcher.InterviewScheduled(ctx, poster, job, iv); err != nil {
		logger.Log.Warn("poster interview notice failed", "interview_id", iv.ID, "error", err)
		ok = false
	}

	return ok
}

// Update edits an interview's schedule fields. Restricted to the poster of
// the underlying job. An interview that is still live moves to rescheduled
// through the transition table; a status of completed in the input marks
// the interview as held instead.
func (uc *interviewUsecase) Update(ctx context.Context, actorID int64, interviewID int64, input domain.InterviewInput) (*domain.Interview, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	iv, err := uc.ivRepo.GetByID(ctx, interviewID)
	if err != nil {
		return nil, apperror.NotFound("Interview not found")
	}
	if _, _, err := uc.authorizePoster(ctx, actorID, iv.ApplicationID); err != nil {
		return nil, err
	}

	iv.ScheduledAt = input.ScheduledAt
	iv.Mode = input.Mode
	iv.Location = input.Location
	iv.MeetLink = input.MeetLink
	iv.Notes = input.Notes

	switch {
	case input.Status == domain.InterviewStatusCompleted:
		next, terr := domain.NextInterviewStatus(iv.Status, domain.ActionComplete, domain.RolePoster)
		if terr != nil {
			return nil, apperror.New(400, terr.Error(), terr)
		}
		iv.Status = next
	case iv.Status == domain.InterviewStatusScheduled || iv.Status == domain.InterviewStatusRescheduled:
		next, terr := domain.NextInterviewStatus(iv.Status, domain.ActionReschedule, domain.RolePoster)
		if terr != nil {
			return nil, apperror.New(400, terr.Error(), terr)
		}
		iv.Status = next
	}

	if err := uc.ivRepo.Update(ctx, iv); err != nil {
		return nil, apperror.Internal(err)
	}
	return iv, nil
}

// Cancel sets the interview to canceled and sends a best-effort
// cancellation notice to the applicant.
func (uc *interviewUsecase) Cancel(ctx context.Context, actorID int64, interviewID int64) error {
	iv, err := uc.ivRepo.GetByID(ctx, interviewID)
	if err != nil {
		return apperror.NotFound("Interview not found")
	}
	app, job, err := uc.authorizePoster(ctx, actorID, iv.ApplicationID)
	if err != nil {
		return err
	}

	next, terr := domain.NextInterviewStatus(iv.Status, domain.ActionCancel, domain.RolePoster)
	if terr != nil {
		return apperror.New(400, terr.Error(), terr)
	}
	iv.Status = next
	if err := uc.ivRepo.Update(ctx, iv); err != nil {
		return apperror.Internal(err)
	}

	if applicant, aerr := uc.userRepo.GetByID(ctx, app.ApplicantID); aerr == nil {
		if err := uc.dispatcher.InterviewCanceled(ctx, applicant, job, iv); err != nil {
			logger.Log.Warn("cancellation notice failed", "interview_id", iv.ID, "error", err)
		}
	} else {
		logger.Log.Warn("applicant lookup failed, skipping cancellation notice", "interview_id", iv.ID, "error", aerr)
	}

	return nil
}

// ListByApplication returns an application's interviews for its applicant
// or the poster of its job.
func (uc *interviewUsecase) ListByApplication(ctx context.Context, actorID int64, applicationID int64) ([]domain.Interview, error) {
	app, err := uc.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, apperror.NotFound("Application not found")
	}
	job, err := uc.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	if app.ApplicantID != actorID && job.PosterID != actorID {
		return nil, apperror.Forbidden("Not authorized to view these interviews")
	}

	interviews, err := uc.ivRepo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return interviews, nil
}

func (uc *interviewUsecase) authorizePoster(ctx context.Context, actorID, applicationID int64) (*domain.Application, *domain.Job, error) {
	app, err := uc.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, nil, apperror.NotFound("Application not found")
	}
	job, err := uc.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, nil, apperror.NotFound("Job not found")
	}
	if job.PosterID != actorID {
		return nil, nil, apperror.Forbidden("Only the job poster can manage interviews for this application")
	}
	return app, job, nil
}
