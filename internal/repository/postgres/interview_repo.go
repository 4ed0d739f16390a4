package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type interviewRepo struct {
	db *pgxpool.Pool
}

func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

func (r *interviewRepo) Create(ctx context.Context, iv *domain.Interview) error {
	now := time.Now()
	iv.CreatedAt = now
	iv.UpdatedAt = now
	if iv.Status == "" {
		iv.Status = domain.InterviewStatusScheduled
	}

	query := `
		INSERT INTO interviews (application_id, created_by, scheduled_at, mode, location, meet_link, notes, status, invite_sent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	return r.db.QueryRow(ctx, query,
		iv.ApplicationID, iv.CreatedBy, iv.ScheduledAt, iv.Mode, iv.Location,
		iv.MeetLink, iv.Notes, iv.Status, iv.InviteSent, iv.CreatedAt, iv.UpdatedAt,
	).Scan(&iv.ID)
}

func (r *interviewRepo) GetByID(ctx context.Context, id int64) (*domain.Interview, error) {
	query := `
		SELECT id, application_id, created_by, scheduled_at, mode, location, meet_link, notes, status, invite_sent, created_at, updated_at
		FROM interviews WHERE id = $1`

	var iv domain.Interview
	err := r.db.QueryRow(ctx, query, id).Scan(
		&iv.ID, &iv.ApplicationID, &iv.CreatedBy, &iv.ScheduledAt, &iv.Mode, &iv.Location,
		&iv.MeetLink, &iv.Notes, &iv.Status, &iv.InviteSent, &iv.CreatedAt, &iv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &iv, nil
}

func (r *interviewRepo) GetByApplicationID(ctx context.Context, applicationID int64) ([]domain.Interview, error) {
	query := `
		SELECT id, application_id, created_by, scheduled_at, mode, location, meet_link, notes, status, invite_sent, created_at, updated_at
		FROM interviews WHERE application_id = $1 ORDER BY scheduled_at DESC`

	rows, err := r.db.Query(ctx, query, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interviews []domain.Interview
	for rows.Next() {
		var iv domain.Interview
		if err := rows.Scan(
			&iv.ID, &iv.ApplicationID, &iv.CreatedBy, &iv.ScheduledAt, &iv.Mode, &iv.Location,
			&iv.MeetLink, &iv.Notes, &iv.Status, &iv.InviteSent, &iv.CreatedAt, &iv.UpdatedAt,
		); err != nil {
			return nil, err
		}
		interviews = append(interviews, iv)
	}
	return interviews, nil
}

func (r *interviewRepo) Update(ctx context.Context, iv *domain.Interview) error {
	query := `
		UPDATE interviews
		SET scheduled_at = $2, mode = $3, location = $4, meet_link = $5, notes = $6, status = $7, updated_at = $8
		WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		iv.ID, iv.ScheduledAt, iv.Mode, iv.Location, iv.MeetLink, iv.Notes, iv.Status, time.Now(),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *interviewRepo) SetInviteSent(ctx context.Context, id int64, sent bool) error {
	result, err := r.db.Exec(ctx,
		`UPDATE interviews SET invite_sent = $2, updated_at = $3 WHERE id = $1`,
		id, sent, time.Now(),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
