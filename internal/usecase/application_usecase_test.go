package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var pdfResume = domain.ResumeUpload{
	Filename: "cv.pdf",
	Size:     8,
	Data:     []byte("%PDF-1.4"),
}

type appFixture struct {
	appRepo    *MockApplicationRepo
	jobRepo    *MockJobRepo
	userRepo   *MockUserRepo
	resumes    *MockResumeStore
	dispatcher *MockDispatcher
	uc         domain.ApplicationUsecase
}

func newAppFixture() *appFixture {
	f := &appFixture{
		appRepo:    new(MockApplicationRepo),
		jobRepo:    new(MockJobRepo),
		userRepo:   new(MockUserRepo),
		resumes:    new(MockResumeStore),
		dispatcher: new(MockDispatcher),
	}
	f.uc = usecase.NewApplicationUsecase(f.appRepo, f.jobRepo, f.userRepo, f.resumes, f.dispatcher)
	return f
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	job := &domain.Job{ID: 1, PosterID: 2, Title: "Go Engineer", Company: "Acme"}
	applicant := &domain.User{ID: 5, Username: "alice", Email: "alice@example.com"}
	poster := &domain.User{ID: 2, Username: "acme_hr", Email: "hr@acme.example"}

	t.Run("Should persist the application and notify both parties", func(t *testing.T) {
		f := newAppFixture()
		f.jobRepo.On("GetByID", ctx, int64(1)).Return(job, nil)
		f.userRepo.On("GetProfile", ctx, int64(5)).Return(&domain.Profile{UserID: 5}, nil)
		f.appRepo.On("Exists", ctx, int64(1), int64(5)).Return(false, nil)
		f.resumes.On("Save", ctx, int64(5), "cv.pdf", pdfResume.Data).Return("resumes/user_5/cv.pdf", nil)
		f.appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)
		f.userRepo.On("GetByID", ctx, int64(5)).Return(applicant, nil)
		f.userRepo.On("GetByID", ctx, int64(2)).Return(poster, nil)
		f.dispatcher.On("ApplicationReceived", ctx, applicant, job).Return(nil)
		f.dispatcher.On("NewApplication", ctx, poster, applicant, job).Return(nil)

		app, err := f.uc.Apply(ctx, 5, 1, pdfResume, "hello")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusApplied, app.Status)
		assert.Equal(t, "resumes/user_5/cv.pdf", app.ResumePath)
		assert.Equal(t, "hello", app.CoverLetter)
		f.dispatcher.AssertExpectations(t)
	})

	t.Run("Should refuse employer accounts", func(t *testing.T) {
		f := newAppFixture()
		f.jobRepo.On("GetByID", ctx, int64(1)).Return(job, nil)
		f.userRepo.On("GetProfile", ctx, int64(9)).Return(&domain.Profile{UserID: 9, IsEmployer: true}, nil)

		_, err := f.uc.Apply(ctx, 9, 1, pdfResume, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Employer accounts cannot apply")
		f.appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should refuse a second application to the same job", func(t *testing.T) {
		f := newAppFixture()
		f.jobRepo.On("GetByID", ctx, int64(1)).Return(job, nil)
		f.userRepo.On("GetProfile", ctx, int64(5)).Return(&domain.Profile{UserID: 5}, nil)
		f.appRepo.On("Exists", ctx, int64(1), int64(5)).Return(true, nil)

		_, err := f.uc.Apply(ctx, 5, 1, pdfResume, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already applied")
	})

	t.Run("Should translate a unique violation from a concurrent duplicate", func(t *testing.T) {
		f := newAppFixture()
		f.jobRepo.On("GetByID", ctx, int64(1)).Return(job, nil)
		f.userRepo.On("GetProfile", ctx, int64(5)).Return(&domain.Profile{UserID: 5}, nil)
		f.appRepo.On("Exists", ctx, int64(1), int64(5)).Return(false, nil)
		f.resumes.On("Save", ctx, int64(5), "cv.pdf", pdfResume.Data).Return("resumes/user_5/cv.pdf", nil)
		f.appRepo.On("Create", ctx, mock.Anything).Return(domain.ErrDuplicateApplication)
		f.resumes.On("Delete", ctx, "resumes/user_5/cv.pdf").Return(nil)

		_, err := f.uc.Apply(ctx, 5, 1, pdfResume, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already applied")
		f.resumes.AssertCalled(t, "Delete", ctx, "resumes/user_5/cv.pdf")
	})

	t.Run("Should still report the insert error when removing the orphaned resume fails", func(t *testing.T) {
		f := newAppFixture()
		f.jobRepo.On("GetByID", ctx, int64(1)).Return(job, nil)
		f.userRepo.On("GetProfile", ctx, int64(5)).Return(&domain.Profile{UserID: 5}, nil)
		f.appRepo.On("Exists", ctx, int64(1), int64(5)).Return(false, nil)
		f.resumes.On("Save", ctx, int64(5), "cv.pdf", pdfResume.Data).Return("resumes/user_5/cv.pdf", nil)
		f.appRepo.On("Create", ctx, mock.Anything).Return(errors.New("insert failed"))
		f.resumes.On("Delete", ctx, "resumes/user_5/cv.pdf").Return(errors.New("remove failed"))

		_, err := f.uc.Apply(ctx, 5, 1, pdfResume, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Internal Server Error")
	})

	t.Run("Should reject an invalid resume before storing anything", func(t *testing.T) {
		f := newAppFixture()
		f.jobRepo.On("GetByID", ctx, int64(1)).Return(job, nil)
		f.userRepo.On("GetProfile", ctx, int64(5)).Return(&domain.Profile{UserID: 5}, nil)
		f.appRepo.On("Exists", ctx, int64(1), int64(5)).Return(false, nil)

		bad := domain.ResumeUpload{Filename: "cv.exe", Size: 4, Data: []byte("MZxx")}
		_, err := f.uc.Apply(ctx, 5, 1, bad, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "PDF, DOC or DOCX")
		f.resumes.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should keep the application when notification emails fail", func(t *testing.T) {
		f := newAppFixture()
		f.jobRepo.On("GetByID", ctx, int64(1)).Return(job, nil)
		f.userRepo.On("GetProfile", ctx, int64(5)).Return(&domain.Profile{UserID: 5}, nil)
		f.appRepo.On("Exists", ctx, int64(1), int64(5)).Return(false, nil)
		f.resumes.On("Save", ctx, int64(5), "cv.pdf", pdfResume.Data).Return("resumes/user_5/cv.pdf", nil)
		f.appRepo.On("Create", ctx, mock.Anything).Return(nil)
		f.userRepo.On("GetByID", ctx, int64(5)).Return(applicant, nil)
		f.userRepo.On("GetByID", ctx, int64(2)).Return(poster, nil)
		f.dispatcher.On("ApplicationReceived", ctx, applicant, job).Return(errors.New("smtp down"))
		f.dispatcher.On("NewApplication", ctx, poster, applicant, job).Return(errors.New("smtp down"))

		app, err := f.uc.Apply(ctx, 5, 1, pdfResume, "")
		assert.NoError(t, err)
		assert.NotNil(t, app)
	})

	t.Run("Should fail when the job does not exist", func(t *testing.T) {
		f := newAppFixture()
		f.jobRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := f.uc.Apply(ctx, 5, 99, pdfResume, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")
	})
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()

	t.Run("Should move the application to withdrawn", func(t *testing.T) {
		f := newAppFixture()
		f.appRepo.On("GetByID", ctx, int64(3)).Return(&domain.Application{ID: 3, ApplicantID: 5, Status: domain.ApplicationStatusApplied}, nil)
		f.appRepo.On("UpdateStatus", ctx, int64(3), domain.ApplicationStatusWithdrawn).Return(nil)

		err := f.uc.Withdraw(ctx, 5, 3)
		assert.NoError(t, err)
		f.appRepo.AssertExpectations(t)
	})

	t.Run("Should stay withdrawn when withdrawn twice", func(t *testing.T) {
		f := newAppFixture()
		f.appRepo.On("GetByID", ctx, int64(3)).Return(&domain.Application{ID: 3, ApplicantID: 5, Status: domain.ApplicationStatusWithdrawn}, nil)
		f.appRepo.On("UpdateStatus", ctx, int64(3), domain.ApplicationStatusWithdrawn).Return(nil)

		err := f.uc.Withdraw(ctx, 5, 3)
		assert.NoError(t, err)
	})

	t.Run("Should work from a shortlisted application", func(t *testing.T) {
		f := newAppFixture()
		f.appRepo.On("GetByID", ctx, int64(3)).Return(&domain.Application{ID: 3, ApplicantID: 5, Status: domain.ApplicationStatusShortlisted}, nil)
		f.appRepo.On("UpdateStatus", ctx, int64(3), domain.ApplicationStatusWithdrawn).Return(nil)

		err := f.uc.Withdraw(ctx, 5, 3)
		assert.NoError(t, err)
	})

	t.Run("Should refuse anyone but the applicant", func(t *testing.T) {
		f := newAppFixture()
		f.appRepo.On("GetByID", ctx, int64(3)).Return(&domain.Application{ID: 3, ApplicantID: 5, Status: domain.ApplicationStatusApplied}, nil)

		err := f.uc.Withdraw(ctx, 8, 3)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only the applicant")
		f.appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestShortlist(t *testing.T) {
	ctx := context.Background()

	app := &domain.Application{ID: 3, JobID: 1, ApplicantID: 5, Status: domain.ApplicationStatusApplied}
	job := &domain.Job{ID: 1, PosterID: 2, Title: "Go Engineer"}
	applicant := &domain.User{ID: 5, Username: "alice", Email: "alice@example.com"}

	t.Run("Should shortlist and notify the applicant", func(t *testing.T) {
		f := newAppFixture()
		f.appRepo.On("GetByID", ctx, int64(3)).Return(app, nil)
		f.jobRepo.On("GetByID", ctx, int64(1)).Return(job, nil)
		f.appRepo.On("UpdateStatus", ctx, int64(3), domain.ApplicationStatusShortlisted).Return(nil)
		f.userRepo.On("GetByID", ctx, int64(5)).Return(applicant, nil)
		f.dispatcher.On("Shortlisted", ctx, applicant, job).Return(nil)

		err := f.uc.Shortlist(ctx, 2, 3)
		assert.NoError(t, err)
		f.dispatcher.AssertExpectations(t)
	})

	t.Run("Should refuse a non-poster", func(t *testing.T) {
		f := newAppFixture()
		f.appRepo.On("GetByID", ctx, int64(3)).Return(app, nil)
		f.jobRepo.On("GetByID", ctx, int64(1)).Return(job, nil)

		err := f.uc.Shortlist(ctx, 8, 3)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only the job poster")
		f.appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should succeed when the notification fails", func(t *testing.T) {
		f := newAppFixture()
		f.appRepo.On("GetByID", ctx, int64(3)).Return(app, nil)
		f.jobRepo.On("GetByID", ctx, int64(1)).Return(job, nil)
		f.appRepo.On("UpdateStatus", ctx, int64(3), domain.ApplicationStatusShortlisted).Return(nil)
		f.userRepo.On("GetByID", ctx, int64(5)).Return(applicant, nil)
		f.dispatcher.On("Shortlisted", ctx, applicant, job).Return(errors.New("smtp down"))

		err := f.uc.Shortlist(ctx, 2, 3)
		assert.NoError(t, err)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()

	app := &domain.Application{ID: 3, JobID: 1, ApplicantID: 5, Status: domain.ApplicationStatusShortlisted}
	job := &domain.Job{ID: 1, PosterID: 2}

	t.Run("Should accept an application", func(t *testing.T) {
		f := newAppFixture()
		f.appRepo.On("GetByID", ctx, int64(3)).Return(app, nil)
		f.jobRepo.On("GetByID", ctx, int64(1)).Return(job, nil)
		f.appRepo.On("UpdateStatus", ctx, int64(3), domain.ApplicationStatusAccepted).Return(nil)

		err := f.uc.UpdateStatus(ctx, 2, 3, domain.ActionAccept)
		assert.NoError(t, err)
	})

	t.Run("Should reject an unknown action", func(t *testing.T) {
		f := newAppFixture()

		err := f.uc.UpdateStatus(ctx, 2, 3, domain.Action("promote"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid action")
		f.appRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Should not let the poster use withdraw through this path", func(t *testing.T) {
		f := newAppFixture()

		err := f.uc.UpdateStatus(ctx, 2, 3, domain.ActionWithdraw)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid action")
	})
}
