package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/validation"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, company_id, company_name, title, job_description,
	required_professional_experience, required_educational_experience,
	status, applicant_count, is_deleted, deleted_at, created_at, updated_at`

func scanJob(row pgx.Row) (*domain.Job, error) {
	var j domain.Job
	err := row.Scan(
		&j.ID, &j.CompanyID, &j.CompanyName, &j.Title, &j.JobDescription,
		&j.RequiredProfessionalExperience, &j.RequiredEducationalExperience,
		&j.Status, &j.ApplicantCount, &j.IsDeleted, &j.DeletedAt, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

func (r *jobRepo) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	if err := validation.UUID(id, "id"); err != nil {
		return nil, err
	}
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1 AND is_deleted = FALSE`
	return scanJob(queryerFrom(ctx, r.db).QueryRow(ctx, query, id))
}

func (r *jobRepo) List(ctx context.Context, page, size int, companyID, status string) ([]domain.Job, int64, error) {
	q := queryerFrom(ctx, r.db)

	where := `WHERE is_deleted = FALSE`
	args := []any{}
	if companyID != "" {
		if err := validation.UUID(companyID, "companyId"); err != nil {
			return nil, 0, err
		}
		args = append(args, companyID)
		where += ` AND company_id = $1`
	}
	if status != "" {
		args = append(args, status)
		if len(args) == 1 {
			where += ` AND status = $1`
		} else {
			where += ` AND status = $2`
		}
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM jobs `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + jobColumns + ` FROM jobs ` + where + `
	          ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, size, page*size)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	return collectJobs(rows, total)
}

func (r *jobRepo) ListAll(ctx context.Context, page, size int) ([]domain.Job, int64, error) {
	q := queryerFrom(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + jobColumns + ` FROM jobs
	          ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := q.Query(ctx, query, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	return collectJobs(rows, total)
}

func collectJobs(rows pgx.Rows, total int64) ([]domain.Job, int64, error) {
	var jobs []domain.Job
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(
			&j.ID, &j.CompanyID, &j.CompanyName, &j.Title, &j.JobDescription,
			&j.RequiredProfessionalExperience, &j.RequiredEducationalExperience,
			&j.Status, &j.ApplicantCount, &j.IsDeleted, &j.DeletedAt, &j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, j)
	}
	return jobs, total, rows.Err()
}

func (r *jobRepo) Upsert(ctx context.Context, job *domain.Job) error {
	if err := validation.UUID(job.ID, "id"); err != nil {
		return err
	}
	if err := validation.UUID(job.CompanyID, "companyId"); err != nil {
		return err
	}
	if err := validation.Required(job.Title, "title"); err != nil {
		return err
	}

	createdAt := job.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	status := job.Status
	if status == "" {
		status = domain.JobStatusOpen
	}

	// On conflict only the mutable fields change: company_id, company_name
	// and applicant_count belong to the existing row.
	query := `
		INSERT INTO jobs (id, company_id, company_name, title, job_description,
			required_professional_experience, required_educational_experience,
			status, applicant_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, $9, now())
		ON CONFLICT (id)
		DO UPDATE SET
			title = EXCLUDED.title,
			job_description = EXCLUDED.job_description,
			required_professional_experience = EXCLUDED.required_professional_experience,
			required_educational_experience = EXCLUDED.required_educational_experience,
			status = EXCLUDED.status,
			updated_at = now()`
	_, err := queryerFrom(ctx, r.db).Exec(ctx, query,
		job.ID, job.CompanyID, job.CompanyName, job.Title, job.JobDescription,
		job.RequiredProfessionalExperience, job.RequiredEducationalExperience,
		status, createdAt,
	)
	return err
}

func (r *jobRepo) SoftDelete(ctx context.Context, id string) (*domain.Job, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	query := `UPDATE jobs SET is_deleted = TRUE, deleted_at = now() WHERE id = $1 AND is_deleted = FALSE`
	if _, err := queryerFrom(ctx, r.db).Exec(ctx, query, id); err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *jobRepo) CloseByCompanyID(ctx context.Context, companyID string) error {
	if err := validation.UUID(companyID, "companyId"); err != nil {
		return err
	}
	query := `UPDATE jobs SET status = $2, updated_at = now()
	          WHERE company_id = $1 AND status = $3 AND is_deleted = FALSE`
	_, err := queryerFrom(ctx, r.db).Exec(ctx, query, companyID, domain.JobStatusClosed, domain.JobStatusOpen)
	return err
}

func (r *jobRepo) IncrementApplicantCount(ctx context.Context, jobID string) error {
	if err := validation.UUID(jobID, "jobId"); err != nil {
		return err
	}
	query := `UPDATE jobs SET applicant_count = applicant_count + 1, updated_at = now()
	          WHERE id = $1 AND is_deleted = FALSE`
	_, err := queryerFrom(ctx, r.db).Exec(ctx, query, jobID)
	return err
}
