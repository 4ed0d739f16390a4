package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	query := `INSERT INTO jobs (poster_id, title, company, description, location, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRow(ctx, query,
		job.PosterID, job.Title, job.Company, job.Description, job.Location,
		job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT id, poster_id, title, company, description, location, created_at, updated_at FROM jobs WHERE id = $1`
	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.PosterID, &job.Title, &job.Company, &job.Description, &job.Location,
		&job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// Fetch returns jobs newest-first. Keyword matches title, description or
// company; location matches location. Both filters are case-insensitive
// substring matches and combine with AND.
func (r *jobRepo) Fetch(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.Job, int64, error) {
	where := ""
	args := []interface{}{}

	if filter.Keyword != "" {
		args = append(args, "%"+filter.Keyword+"%")
		n := len(args)
		where += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d OR company ILIKE $%d)", n, n, n)
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		where += fmt.Sprintf(" AND location ILIKE $%d", len(args))
	}

	countQuery := `SELECT COUNT(*) FROM jobs WHERE 1=1` + where
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	listQuery := fmt.Sprintf(
		`SELECT id, poster_id, title, company, description, location, created_at, updated_at
		 FROM jobs WHERE 1=1%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args),
	)

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(&job.ID, &job.PosterID, &job.Title, &job.Company, &job.Description, &job.Location, &job.CreatedAt, &job.UpdatedAt); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}

	return jobs, total, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET title = $2, company = $3, description = $4, location = $5, updated_at = $6 WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Company, job.Description, job.Location, time.Now(),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
