package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. The unique constraint on
// (job_id, applicant_id) resolves concurrent duplicate submissions; the
// violation is translated to ErrDuplicateApplication so the handler can
// surface "already applied" instead of a server error.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	now := time.Now()
	app.AppliedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusApplied
	}

	query := `
		INSERT INTO applications (job_id, applicant_id, resume_path, cover_letter, status, applied_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		app.JobID,
		app.ApplicantID,
		app.ResumePath,
		app.CoverLetter,
		app.Status,
		app.AppliedAt,
		app.UpdatedAt,
	).Scan(&app.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.applicant_id, a.resume_path, a.cover_letter,
			a.status, a.applied_at, a.updated_at,
			u.username as applicant_name,
			j.title as job_title
		FROM applications a
		LEFT JOIN users u ON a.applicant_id = u.id
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE a.id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.ApplicantID, &app.ResumePath, &app.CoverLetter,
		&app.Status, &app.AppliedAt, &app.UpdatedAt,
		&app.ApplicantName, &app.JobTitle,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.applicant_id, a.resume_path, a.cover_letter,
			a.status, a.applied_at, a.updated_at,
			u.username as applicant_name
		FROM applications a
		LEFT JOIN users u ON a.applicant_id = u.id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.ApplicantID, &app.ResumePath, &app.CoverLetter,
			&app.Status, &app.AppliedAt, &app.UpdatedAt,
			&app.ApplicantName,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, nil
}

func (r *applicationRepo) GetByApplicantID(ctx context.Context, applicantID int64) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.applicant_id, a.resume_path, a.cover_letter,
			a.status, a.applied_at, a.updated_at,
			j.title as job_title
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE a.applicant_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.ApplicantID, &app.ResumePath, &app.CoverLetter,
			&app.Status, &app.AppliedAt, &app.UpdatedAt,
			&app.JobTitle,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, nil
}

func (r *applicationRepo) GetByJobAndApplicant(ctx context.Context, jobID, applicantID int64) (*domain.Application, error) {
	query := `
		SELECT id, job_id, applicant_id, resume_path, cover_letter, status, applied_at, updated_at
		FROM applications WHERE job_id = $1 AND applicant_id = $2`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, jobID, applicantID).Scan(
		&app.ID, &app.JobID, &app.ApplicantID, &app.ResumePath, &app.CoverLetter,
		&app.Status, &app.AppliedAt, &app.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) Exists(ctx context.Context, jobID, applicantID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, jobID, applicantID).Scan(&exists)
	return exists, err
}

// UpdateStatus updates the status of an application and sets updated_at
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
