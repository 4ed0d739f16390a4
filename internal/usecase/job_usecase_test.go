package usecase_test

import (
	"context"
	"testing"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type jobFixture struct {
	jobRepo  *MockJobRepo
	appRepo  *MockApplicationRepo
	userRepo *MockUserRepo
	uc       domain.JobUsecase
}

func newJobFixture() *jobFixture {
	f := &jobFixture{
		jobRepo:  new(MockJobRepo),
		appRepo:  new(MockApplicationRepo),
		userRepo: new(MockUserRepo),
	}
	f.uc = usecase.NewJobUsecase(f.jobRepo, f.appRepo, f.userRepo, 20)
	return f
}

func TestCreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should stamp the actor as poster", func(t *testing.T) {
		f := newJobFixture()
		f.userRepo.On("GetProfile", ctx, int64(2)).Return(&domain.Profile{UserID: 2, IsEmployer: true, CompanyName: "Acme"}, nil)
		f.jobRepo.On("Create", ctx, mock.MatchedBy(func(j *domain.Job) bool {
			return j.PosterID == 2
		})).Return(nil)

		err := f.uc.CreateJob(ctx, 2, &domain.Job{Title: "Go Engineer", Company: "Acme"})
		assert.NoError(t, err)
		f.jobRepo.AssertExpectations(t)
	})

	t.Run("Should refuse non-employer accounts", func(t *testing.T) {
		f := newJobFixture()
		f.userRepo.On("GetProfile", ctx, int64(5)).Return(&domain.Profile{UserID: 5}, nil)

		err := f.uc.CreateJob(ctx, 5, &domain.Job{Title: "Go Engineer"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only employer accounts")
		f.jobRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGetJobDetail(t *testing.T) {
	ctx := context.Background()

	job := &domain.Job{ID: 1, PosterID: 2, Title: "Go Engineer"}

	t.Run("Should skip application lookups for anonymous viewers", func(t *testing.T) {
		f := newJobFixture()
		f.jobRepo.On("GetByID", ctx, int64(1)).Return(job, nil)

		detail, err := f.uc.GetJobDetail(ctx, 0, 1)
		assert.NoError(t, err)
		assert.False(t, detail.HasApplied)
		assert.Nil(t, detail.Applications)
		f.appRepo.AssertNotCalled(t, "GetByJobAndApplicant", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should surface the caller's own application", func(t *testing.T) {
		f := newJobFixture()
		own := &domain.Application{ID: 3, JobID: 1, ApplicantID: 5, Status: domain.ApplicationStatusApplied}
		f.jobRepo.On("GetByID", ctx, int64(1)).Return(job, nil)
		f.appRepo.On("GetByJobAndApplicant", ctx, int64(1), int64(5)).Return(own, nil)

		detail, err := f.uc.GetJobDetail(ctx, 5, 1)
		assert.NoError(t, err)
		assert.True(t, detail.HasApplied)
		assert.Equal(t, own, detail.OwnApplication)
		assert.Nil(t, detail.Applications)
	})

	t.Run("Should include all applications for the poster", func(t *testing.T) {
		f := newJobFixture()
		f.jobRepo.On("GetByID", ctx, int64(1)).Return(job, nil)
		f.appRepo.On("GetByJobAndApplicant", ctx, int64(1), int64(2)).Return(nil, domain.ErrNotFound)
		f.appRepo.On("GetByJobID", ctx, int64(1)).Return([]domain.Application{{ID: 3}, {ID: 4}}, nil)

		detail, err := f.uc.GetJobDetail(ctx, 2, 1)
		assert.NoError(t, err)
		assert.False(t, detail.HasApplied)
		assert.Len(t, detail.Applications, 2)
	})
}

func TestListJobs(t *testing.T) {
	ctx := context.Background()

	t.Run("Should translate the page number into an offset", func(t *testing.T) {
		f := newJobFixture()
		f.jobRepo.On("Fetch", ctx, domain.JobFilter{}, 20, 20).Return([]domain.Job{}, int64(42), nil)

		_, total, err := f.uc.ListJobs(ctx, domain.JobFilter{}, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), total)
		f.jobRepo.AssertExpectations(t)
	})

	t.Run("Should clamp page numbers below one", func(t *testing.T) {
		f := newJobFixture()
		f.jobRepo.On("Fetch", ctx, domain.JobFilter{}, 20, 0).Return([]domain.Job{}, int64(0), nil)

		_, _, err := f.uc.ListJobs(ctx, domain.JobFilter{}, -3)
		assert.NoError(t, err)
		f.jobRepo.AssertExpectations(t)
	})

	t.Run("Should pass the filter through", func(t *testing.T) {
		f := newJobFixture()
		filter := domain.JobFilter{Keyword: "go", Location: "Berlin"}
		f.jobRepo.On("Fetch", ctx, filter, 20, 0).Return([]domain.Job{{ID: 1}}, int64(1), nil)

		jobs, _, err := f.uc.ListJobs(ctx, filter, 1)
		assert.NoError(t, err)
		assert.Len(t, jobs, 1)
	})
}

func TestUpdateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should keep the original poster on update", func(t *testing.T) {
		f := newJobFixture()
		f.jobRepo.On("GetByID", ctx, int64(1)).Return(&domain.Job{ID: 1, PosterID: 2}, nil)
		f.jobRepo.On("Update", ctx, mock.MatchedBy(func(j *domain.Job) bool {
			return j.PosterID == 2
		})).Return(nil)

		err := f.uc.UpdateJob(ctx, 2, &domain.Job{ID: 1, PosterID: 999, Title: "Updated"})
		assert.NoError(t, err)
		f.jobRepo.AssertExpectations(t)
	})

	t.Run("Should refuse a non-poster", func(t *testing.T) {
		f := newJobFixture()
		f.jobRepo.On("GetByID", ctx, int64(1)).Return(&domain.Job{ID: 1, PosterID: 2}, nil)

		err := f.uc.UpdateJob(ctx, 8, &domain.Job{ID: 1, Title: "Hijacked"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only the job poster")
		f.jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDeleteJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should delete for the poster", func(t *testing.T) {
		f := newJobFixture()
		f.jobRepo.On("GetByID", ctx, int64(1)).Return(&domain.Job{ID: 1, PosterID: 2}, nil)
		f.jobRepo.On("Delete", ctx, int64(1)).Return(nil)

		err := f.uc.DeleteJob(ctx, 2, 1)
		assert.NoError(t, err)
	})

	t.Run("Should refuse a non-poster", func(t *testing.T) {
		f := newJobFixture()
		f.jobRepo.On("GetByID", ctx, int64(1)).Return(&domain.Job{ID: 1, PosterID: 2}, nil)

		err := f.uc.DeleteJob(ctx, 8, 1)
		assert.Error(t, err)
		f.jobRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
