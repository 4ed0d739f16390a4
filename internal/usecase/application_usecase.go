package usecase

import (
	"context"
	"errors"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/logger"
	"go-jobportal-backend/pkg/storage"
	"go-jobportal-backend/pkg/validation"
)

type applicationUsecase struct {
	appRepo    domain.ApplicationRepository
	jobRepo    domain.JobRepository
	userRepo   domain.UserRepository
	resumes    storage.ResumeStore
	dispatcher domain.NotificationDispatcher
}

func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	userRepo domain.UserRepository,
	resumes storage.ResumeStore,
	dispatcher domain.NotificationDispatcher,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo:    appRepo,
		jobRepo:    jobRepo,
		userRepo:   userRepo,
		resumes:    resumes,
		dispatcher: dispatcher,
	}
}

// Apply submits an application: employer accounts are refused, duplicates
// are refused (pre-check plus unique-constraint translation for the
// concurrent case), and the resume must pass validation before anything is
// persisted. Confirmation and poster-alert emails are independent and
// best-effort.
func (uc *applicationUsecase) Apply(ctx context.Context, actorID int64, jobID int64, resume domain.ResumeUpload, coverLetter string) (*domain.Application, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}

	profile, err := uc.userRepo.GetProfile(ctx, actorID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile.IsEmployer {
		return nil, apperror.Forbidden("Employer accounts cannot apply to jobs")
	}

	exists, err := uc.appRepo.Exists(ctx, jobID, actorID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job")
	}

	if err := validation.ValidateResume(resume.Filename, resume.Size, resume.Data); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	resumePath, err := uc.resumes.Save(ctx, actorID, resume.Filename, resume.Data)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	app := &domain.Application{
		JobID:       jobID,
		ApplicantID: actorID,
		ResumePath:  resumePath,
		CoverLetter: coverLetter,
		Status:      domain.ApplicationStatusApplied,
	}
	if err := uc.appRepo.Create(ctx, app); err != nil {
		// The insert failed, so the stored resume belongs to no
		// application. Remove it best-effort.
		if derr := uc.resumes.Delete(ctx, resumePath); derr != nil {
			logger.Log.Warn("failed to remove orphaned resume", "path", resumePath, "error", derr)
		}
		// Concurrent duplicate: the store rejected the second writer.
		if errors.Is(err, domain.ErrDuplicateApplication) {
			return nil, apperror.Conflict("You have already applied to this job")
		}
		return nil, apperror.Internal(err)
	}

	applicant, err := uc.userRepo.GetByID(ctx, actorID)
	if err == nil {
		if err := uc.dispatcher.ApplicationReceived(ctx, applicant, job); err != nil {
			logger.Log.Warn("applicant confirmation email failed", "application_id", app.ID, "error", err)
		}
		if poster, perr := uc.userRepo.GetByID(ctx, job.PosterID); perr == nil {
			if err := uc.dispatcher.NewApplication(ctx, poster, applicant, job); err != nil {
				logger.Log.Warn("poster notification email failed", "application_id", app.ID, "error", err)
			}
		} else {
			logger.Log.Warn("poster lookup failed, skipping notification", "job_id", job.ID, "error", perr)
		}
	} else {
		logger.Log.Warn("applicant lookup failed, skipping notifications", "application_id", app.ID, "error", err)
	}

	return app, nil
}

func (uc *applicationUsecase) GetMyApplications(ctx context.Context, actorID int64) ([]domain.Application, error) {
	apps, err := uc.appRepo.GetByApplicantID(ctx, actorID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// Withdraw moves the actor's own application to withdrawn. The transition
// table permits it from any state, so withdrawing twice stays withdrawn.
// No notification is sent.
func (uc *applicationUsecase) Withdraw(ctx context.Context, actorID int64, applicationID int64) error {
	app, err := uc.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return apperror.NotFound("Application not found")
	}
	if app.ApplicantID != actorID {
		return apperror.Forbidden("Only the applicant can withdraw this application")
	}

	next, err := domain.NextApplicationStatus(app.Status, domain.ActionWithdraw, domain.RoleApplicant)
	if err != nil {
		return apperror.New(400, err.Error(), err)
	}
	if err := uc.appRepo.UpdateStatus(ctx, applicationID, next); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// Shortlist moves an application to shortlisted. Restricted to the poster
// of the underlying job; notifies the applicant best-effort.
func (uc *applicationUsecase) Shortlist(ctx context.Context, actorID int64, applicationID int64) error {
	app, job, err := uc.authorizePoster(ctx, actorID, applicationID)
	if err != nil {
		return err
	}

	next, err := domain.NextApplicationStatus(app.Status, domain.ActionShortlist, domain.RolePoster)
	if err != nil {
		return apperror.New(400, err.Error(), err)
	}
	if err := uc.appRepo.UpdateStatus(ctx, applicationID, next); err != nil {
		return apperror.Internal(err)
	}

	if applicant, aerr := uc.userRepo.GetByID(ctx, app.ApplicantID); aerr == nil {
		if err := uc.dispatcher.Shortlisted(ctx, applicant, job); err != nil {
			logger.Log.Warn("shortlist notification email failed", "application_id", applicationID, "error", err)
		}
	} else {
		logger.Log.Warn("applicant lookup failed, skipping notification", "application_id", applicationID, "error", aerr)
	}

	return nil
}

// UpdateStatus applies a poster-side review/accept/reject action through
// the transition table. Shortlisting has its own method because it
// notifies the applicant.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, actorID int64, applicationID int64, action domain.Action) error {
	switch action {
	case domain.ActionReview, domain.ActionAccept, domain.ActionReject:
	default:
		return apperror.BadRequest("Invalid action. Must be: review, accept, or reject")
	}

	app, _, err := uc.authorizePoster(ctx, actorID, applicationID)
	if err != nil {
		return err
	}

	next, err := domain.NextApplicationStatus(app.Status, action, domain.RolePoster)
	if err != nil {
		return apperror.New(400, err.Error(), err)
	}
	if err := uc.appRepo.UpdateStatus(ctx, applicationID, next); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// authorizePoster loads the application and its job, then verifies the
// actor posted that job.
func (uc *applicationUsecase) authorizePoster(ctx context.Context, actorID, applicationID int64) (*domain.Application, *domain.Job, error) {
	app, err := uc.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, nil, apperror.NotFound("Application not found")
	}
	job, err := uc.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, nil, apperror.NotFound("Job not found")
	}
	if job.PosterID != actorID {
		return nil, nil, apperror.Forbidden("Only the job poster can manage this application")
	}
	return app, job, nil
}
