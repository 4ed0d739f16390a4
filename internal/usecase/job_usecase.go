package usecase

import (
	"context"
	"errors"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo  domain.JobRepository
	appRepo  domain.ApplicationRepository
	userRepo domain.UserRepository
	pageSize int
}

func NewJobUsecase(
	jobRepo domain.JobRepository,
	appRepo domain.ApplicationRepository,
	userRepo domain.UserRepository,
	pageSize int,
) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:  jobRepo,
		appRepo:  appRepo,
		userRepo: userRepo,
		pageSize: pageSize,
	}
}

// CreateJob creates a job posting with the actor as poster. Only users
// whose profile marks them as an employer may post; a missing profile
// reads as a non-employer default and is refused the same way.
func (uc *jobUsecase) CreateJob(ctx context.Context, actorID int64, job *domain.Job) error {
	profile, err := uc.userRepo.GetProfile(ctx, actorID)
	if err != nil {
		return apperror.Internal(err)
	}
	if !profile.IsEmployer {
		return apperror.Forbidden("Only employer accounts can post jobs")
	}

	job.PosterID = actorID
	if err := uc.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// GetJobDetail returns the job plus viewer-dependent extras: the caller's
// own application if any, and the full applications list when the caller
// is the poster. actorID of zero means an anonymous viewer.
func (uc *jobUsecase) GetJobDetail(ctx context.Context, actorID int64, jobID int64) (*domain.JobDetail, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}

	detail := &domain.JobDetail{Job: job}

	if actorID != 0 {
		own, err := uc.appRepo.GetByJobAndApplicant(ctx, jobID, actorID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Internal(err)
		}
		if own != nil {
			detail.HasApplied = true
			detail.OwnApplication = own
		}

		if job.PosterID == actorID {
			apps, err := uc.appRepo.GetByJobID(ctx, jobID)
			if err != nil {
				return nil, apperror.Internal(err)
			}
			detail.Applications = apps
		}
	}

	return detail, nil
}

func (uc *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter, page int) ([]domain.Job, int64, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * uc.pageSize

	jobs, total, err := uc.jobRepo.Fetch(ctx, filter, uc.pageSize, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return jobs, total, nil
}

// UpdateJob mutates a job. Restricted to its poster; the poster itself is
// immutable after creation.
func (uc *jobUsecase) UpdateJob(ctx context.Context, actorID int64, job *domain.Job) error {
	existing, err := uc.jobRepo.GetByID(ctx, job.ID)
	if err != nil {
		return apperror.NotFound("Job not found")
	}
	if existing.PosterID != actorID {
		return apperror.Forbidden("Only the job poster can update this job")
	}

	job.PosterID = existing.PosterID
	if err := uc.jobRepo.Update(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *jobUsecase) DeleteJob(ctx context.Context, actorID int64, jobID int64) error {
	existing, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return apperror.NotFound("Job not found")
	}
	if existing.PosterID != actorID {
		return apperror.Forbidden("Only the job poster can delete this job")
	}

	if err := uc.jobRepo.Delete(ctx, jobID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
