package domain_test

import (
	"errors"
	"testing"

	"go-jobportal-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNextApplicationStatus(t *testing.T) {
	t.Run("Should allow withdraw from every known status", func(t *testing.T) {
		for _, from := range []string{
			domain.ApplicationStatusApplied,
			domain.ApplicationStatusReview,
			domain.ApplicationStatusShortlisted,
			domain.ApplicationStatusAccepted,
			domain.ApplicationStatusRejected,
			domain.ApplicationStatusWithdrawn,
		} {
			next, err := domain.NextApplicationStatus(from, domain.ActionWithdraw, domain.RoleApplicant)
			assert.NoError(t, err, "from %s", from)
			assert.Equal(t, domain.ApplicationStatusWithdrawn, next)
		}
	})

	t.Run("Should allow the poster to shortlist regardless of current status", func(t *testing.T) {
		for _, from := range []string{
			domain.ApplicationStatusApplied,
			domain.ApplicationStatusReview,
			domain.ApplicationStatusRejected,
		} {
			next, err := domain.NextApplicationStatus(from, domain.ActionShortlist, domain.RolePoster)
			assert.NoError(t, err, "from %s", from)
			assert.Equal(t, domain.ApplicationStatusShortlisted, next)
		}
	})

	t.Run("Should refuse poster actions from the applicant", func(t *testing.T) {
		_, err := domain.NextApplicationStatus(domain.ApplicationStatusApplied, domain.ActionShortlist, domain.RoleApplicant)
		assert.Error(t, err)

		var te *domain.InvalidTransitionError
		assert.True(t, errors.As(err, &te))
		assert.Equal(t, domain.ActionShortlist, te.Action)
	})

	t.Run("Should refuse withdraw from the poster", func(t *testing.T) {
		_, err := domain.NextApplicationStatus(domain.ApplicationStatusApplied, domain.ActionWithdraw, domain.RolePoster)
		assert.Error(t, err)
	})

	t.Run("Should refuse an unknown current status", func(t *testing.T) {
		_, err := domain.NextApplicationStatus("archived", domain.ActionShortlist, domain.RolePoster)
		assert.Error(t, err)
	})

	t.Run("Should refuse an interview action on an application", func(t *testing.T) {
		_, err := domain.NextApplicationStatus(domain.ApplicationStatusApplied, domain.ActionCancel, domain.RolePoster)
		assert.Error(t, err)
	})

	t.Run("Should map accept and reject to their statuses", func(t *testing.T) {
		next, err := domain.NextApplicationStatus(domain.ApplicationStatusShortlisted, domain.ActionAccept, domain.RolePoster)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusAccepted, next)

		next, err = domain.NextApplicationStatus(domain.ApplicationStatusShortlisted, domain.ActionReject, domain.RolePoster)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusRejected, next)
	})
}

func TestNextInterviewStatus(t *testing.T) {
	t.Run("Should cancel from scheduled and rescheduled", func(t *testing.T) {
		for _, from := range []string{domain.InterviewStatusScheduled, domain.InterviewStatusRescheduled} {
			next, err := domain.NextInterviewStatus(from, domain.ActionCancel, domain.RolePoster)
			assert.NoError(t, err, "from %s", from)
			assert.Equal(t, domain.InterviewStatusCanceled, next)
		}
	})

	t.Run("Should move to rescheduled on reschedule", func(t *testing.T) {
		next, err := domain.NextInterviewStatus(domain.InterviewStatusScheduled, domain.ActionReschedule, domain.RolePoster)
		assert.NoError(t, err)
		assert.Equal(t, domain.InterviewStatusRescheduled, next)
	})

	t.Run("Should refuse interview actions from the applicant", func(t *testing.T) {
		_, err := domain.NextInterviewStatus(domain.InterviewStatusScheduled, domain.ActionCancel, domain.RoleApplicant)
		assert.Error(t, err)
	})

	t.Run("Should refuse an unknown status", func(t *testing.T) {
		_, err := domain.NextInterviewStatus("pending", domain.ActionCancel, domain.RolePoster)
		assert.Error(t, err)
	})

	t.Run("Should name the offending transition in the error", func(t *testing.T) {
		_, err := domain.NextInterviewStatus(domain.InterviewStatusScheduled, domain.ActionCancel, domain.RoleApplicant)
		assert.Contains(t, err.Error(), "cancel")
		assert.Contains(t, err.Error(), "scheduled")
	})
}
