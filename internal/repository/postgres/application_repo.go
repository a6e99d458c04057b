package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/validation"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewJobApplicationRepository(db *pgxpool.Pool) domain.JobApplicationRepository {
	return &applicationRepo{db: db}
}

const applicationColumns = `id, job_id, candidate_id, candidate_name, job_title,
	status, applied_at, is_deleted, deleted_at`

func scanApplication(row pgx.Row) (*domain.JobApplication, error) {
	var a domain.JobApplication
	err := row.Scan(
		&a.ID, &a.JobID, &a.CandidateID, &a.CandidateName, &a.JobTitle,
		&a.Status, &a.AppliedAt, &a.IsDeleted, &a.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepo) FindByID(ctx context.Context, id string) (*domain.JobApplication, error) {
	if err := validation.UUID(id, "id"); err != nil {
		return nil, err
	}
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE id = $1 AND is_deleted = FALSE`
	return scanApplication(queryerFrom(ctx, r.db).QueryRow(ctx, query, id))
}

func (r *applicationRepo) ListByJobID(ctx context.Context, jobID string, page, size int) ([]domain.JobApplication, int64, error) {
	if err := validation.UUID(jobID, "jobId"); err != nil {
		return nil, 0, err
	}
	return r.listBy(ctx, "job_id", jobID, page, size)
}

func (r *applicationRepo) ListByCandidateID(ctx context.Context, candidateID string, page, size int) ([]domain.JobApplication, int64, error) {
	if err := validation.UUID(candidateID, "candidateId"); err != nil {
		return nil, 0, err
	}
	return r.listBy(ctx, "candidate_id", candidateID, page, size)
}

func (r *applicationRepo) listBy(ctx context.Context, column, value string, page, size int) ([]domain.JobApplication, int64, error) {
	q := queryerFrom(ctx, r.db)

	var total int64
	countQuery := `SELECT COUNT(*) FROM job_applications WHERE ` + column + ` = $1 AND is_deleted = FALSE`
	if err := q.QueryRow(ctx, countQuery, value).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + applicationColumns + ` FROM job_applications
	          WHERE ` + column + ` = $1 AND is_deleted = FALSE
	          ORDER BY applied_at DESC LIMIT $2 OFFSET $3`
	rows, err := q.Query(ctx, query, value, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var apps []domain.JobApplication
	for rows.Next() {
		var a domain.JobApplication
		if err := rows.Scan(
			&a.ID, &a.JobID, &a.CandidateID, &a.CandidateName, &a.JobTitle,
			&a.Status, &a.AppliedAt, &a.IsDeleted, &a.DeletedAt,
		); err != nil {
			return nil, 0, err
		}
		apps = append(apps, a)
	}
	return apps, total, rows.Err()
}

func (r *applicationRepo) ExistsActive(ctx context.Context, jobID, candidateID string) (bool, error) {
	if err := validation.UUID(jobID, "jobId"); err != nil {
		return false, err
	}
	if err := validation.UUID(candidateID, "candidateId"); err != nil {
		return false, err
	}
	var exists bool
	query := `SELECT EXISTS (
		SELECT 1 FROM job_applications
		WHERE job_id = $1 AND candidate_id = $2 AND is_deleted = FALSE)`
	err := queryerFrom(ctx, r.db).QueryRow(ctx, query, jobID, candidateID).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) Insert(ctx context.Context, app *domain.JobApplication) error {
	if err := validation.UUID(app.ID, "id"); err != nil {
		return err
	}
	if err := validation.UUID(app.JobID, "jobId"); err != nil {
		return err
	}
	if err := validation.UUID(app.CandidateID, "candidateId"); err != nil {
		return err
	}

	appliedAt := app.AppliedAt
	if appliedAt.IsZero() {
		appliedAt = time.Now().UTC()
	}
	status := app.Status
	if status == "" {
		status = domain.ApplicationStatusApplied
	}

	query := `
		INSERT INTO job_applications (id, job_id, candidate_id, candidate_name, job_title, status, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	// The partial unique index on (job_id, candidate_id) WHERE NOT is_deleted
	// backs up the existence check so concurrent duplicates lose cleanly.
	_, err := queryerFrom(ctx, r.db).Exec(ctx, query,
		app.ID, app.JobID, app.CandidateID, app.CandidateName, app.JobTitle, status, appliedAt,
	)
	return duplicateFrom(err, "Candidate has already applied to this job")
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if err := validation.UUID(id, "id"); err != nil {
		return err
	}
	query := `UPDATE job_applications SET status = $2 WHERE id = $1 AND is_deleted = FALSE`
	tag, err := queryerFrom(ctx, r.db).Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) SoftDelete(ctx context.Context, id string) (*domain.JobApplication, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	query := `UPDATE job_applications SET is_deleted = TRUE, deleted_at = now() WHERE id = $1 AND is_deleted = FALSE`
	if _, err := queryerFrom(ctx, r.db).Exec(ctx, query, id); err != nil {
		return nil, err
	}
	return existing, nil
}
