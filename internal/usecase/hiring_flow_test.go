package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestHiringFlow walks one vacancy through its whole lifecycle over shared
// mock state: the employer posts a job, a candidate applies with a resume,
// a second apply is refused, the employer shortlists, schedules an
// interview and finally cancels it.
func TestHiringFlow(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepo)
	jobRepo := new(MockJobRepo)
	appRepo := new(MockApplicationRepo)
	ivRepo := new(MockInterviewRepo)
	resumes := new(MockResumeStore)
	dispatcher := new(MockDispatcher)

	jobUC := usecase.NewJobUsecase(jobRepo, appRepo, userRepo, 20)
	appUC := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo, resumes, dispatcher)
	ivUC := usecase.NewInterviewUsecase(ivRepo, appRepo, jobRepo, userRepo, dispatcher, validator.New())

	poster := &domain.User{ID: 1, Username: "acme_hr", Email: "hr@acme.test"}
	applicant := &domain.User{ID: 2, Username: "jane", Email: "jane@example.test"}
	userRepo.On("GetProfile", ctx, int64(1)).Return(&domain.Profile{UserID: 1, IsEmployer: true, CompanyName: "Acme"}, nil)
	userRepo.On("GetProfile", ctx, int64(2)).Return(&domain.Profile{UserID: 2}, nil)
	userRepo.On("GetByID", ctx, int64(1)).Return(poster, nil)
	userRepo.On("GetByID", ctx, int64(2)).Return(applicant, nil)

	// Employer posts the job.
	job := &domain.Job{Title: "Backend Engineer", Company: "Acme", Description: "Go services", Location: "Jakarta"}
	jobRepo.On("Create", ctx, job).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Job).ID = 10
	}).Return(nil)

	require.NoError(t, jobUC.CreateJob(ctx, 1, job))
	require.Equal(t, int64(10), job.ID)
	assert.Equal(t, int64(1), job.PosterID)
	jobRepo.On("GetByID", ctx, int64(10)).Return(job, nil)

	// Candidate applies with a 2 MB PDF resume.
	resumeData := append([]byte("%PDF-1.4\n"), make([]byte, 2*1024*1024)...)
	upload := domain.ResumeUpload{Filename: "jane_cv.pdf", Size: int64(len(resumeData)), Data: resumeData}

	appRepo.On("Exists", ctx, int64(10), int64(2)).Return(false, nil).Once()
	resumes.On("Save", ctx, int64(2), "jane_cv.pdf", resumeData).Return("resumes/user_2/jane_cv.pdf", nil)
	var app *domain.Application
	appRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		app = args.Get(1).(*domain.Application)
		app.ID = 100
	}).Return(nil)
	dispatcher.On("ApplicationReceived", ctx, applicant, job).Return(nil)
	dispatcher.On("NewApplication", ctx, poster, applicant, job).Return(nil)

	created, err := appUC.Apply(ctx, 2, 10, upload, "I would love to work on this.")
	require.NoError(t, err)
	require.Equal(t, int64(100), created.ID)
	assert.Equal(t, domain.ApplicationStatusApplied, created.Status)
	assert.Equal(t, "resumes/user_2/jane_cv.pdf", created.ResumePath)

	// A second apply to the same job is refused.
	appRepo.On("Exists", ctx, int64(10), int64(2)).Return(true, nil)
	_, err = appUC.Apply(ctx, 2, 10, upload, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already applied")
	resumes.AssertNumberOfCalls(t, "Save", 1)

	// Employer shortlists the application.
	appRepo.On("GetByID", ctx, int64(100)).Return(app, nil)
	appRepo.On("UpdateStatus", ctx, int64(100), domain.ApplicationStatusShortlisted).Run(func(args mock.Arguments) {
		app.Status = args.String(2)
	}).Return(nil)
	dispatcher.On("Shortlisted", ctx, applicant, job).Return(nil)

	require.NoError(t, appUC.Shortlist(ctx, 1, 100))
	assert.Equal(t, domain.ApplicationStatusShortlisted, app.Status)

	// Employer schedules an interview; both notices land, so the invite
	// counts as sent.
	var iv *domain.Interview
	ivRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		iv = args.Get(1).(*domain.Interview)
		iv.ID = 200
	}).Return(nil)
	dispatcher.On("InterviewScheduled", ctx, applicant, job, mock.Anything).Return(nil)
	dispatcher.On("InterviewScheduled", ctx, poster, job, mock.Anything).Return(nil)
	ivRepo.On("SetInviteSent", ctx, int64(200), true).Return(nil)

	scheduled, err := ivUC.Schedule(ctx, 1, 100, domain.InterviewInput{
		ScheduledAt: time.Now().Add(72 * time.Hour),
		Mode:        domain.InterviewModeVideo,
		MeetLink:    "https://meet.example/acme-jane",
	})
	require.NoError(t, err)
	require.Equal(t, int64(200), scheduled.ID)
	assert.True(t, scheduled.InviteSent)
	assert.Equal(t, domain.InterviewStatusScheduled, scheduled.Status)
	dispatcher.AssertNumberOfCalls(t, "InterviewScheduled", 2)

	// Employer cancels; the applicant is notified.
	ivRepo.On("GetByID", ctx, int64(200)).Return(iv, nil)
	ivRepo.On("Update", ctx, iv).Return(nil)
	dispatcher.On("InterviewCanceled", ctx, applicant, job, iv).Return(nil)

	require.NoError(t, ivUC.Cancel(ctx, 1, 200))
	assert.Equal(t, domain.InterviewStatusCanceled, iv.Status)
	dispatcher.AssertNumberOfCalls(t, "InterviewCanceled", 1)

	dispatcher.AssertExpectations(t)
	resumes.AssertExpectations(t)
	appRepo.AssertExpectations(t)
	ivRepo.AssertExpectations(t)
}
