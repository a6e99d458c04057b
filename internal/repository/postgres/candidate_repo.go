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

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

const candidateColumns = `id, user_id, name, email, phone, photo_url,
	portfolio_url, github_url, linkedin_url,
	current_company, current_title, working_since,
	license, patents, certifications,
	status, is_deleted, deleted_at, created_at, updated_at`

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.PhotoURL,
		&c.PortfolioURL, &c.GithubURL, &c.LinkedinURL,
		&c.CurrentCompany, &c.CurrentTitle, &c.WorkingSince,
		&c.License, &c.Patents, &c.Certifications,
		&c.Status, &c.IsDeleted, &c.DeletedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *candidateRepo) FindByID(ctx context.Context, id string) (*domain.Candidate, error) {
	if err := validation.UUID(id, "id"); err != nil {
		return nil, err
	}
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1 AND is_deleted = FALSE`
	return scanCandidate(queryerFrom(ctx, r.db).QueryRow(ctx, query, id))
}

func (r *candidateRepo) FindByUserID(ctx context.Context, userID string) (*domain.Candidate, error) {
	if err := validation.UUID(userID, "userId"); err != nil {
		return nil, err
	}
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE user_id = $1 AND is_deleted = FALSE`
	return scanCandidate(queryerFrom(ctx, r.db).QueryRow(ctx, query, userID))
}

func (r *candidateRepo) ListActive(ctx context.Context, page, size int) ([]domain.Candidate, int64, error) {
	return r.list(ctx, page, size, false)
}

func (r *candidateRepo) ListAll(ctx context.Context, page, size int) ([]domain.Candidate, int64, error) {
	return r.list(ctx, page, size, true)
}

func (r *candidateRepo) list(ctx context.Context, page, size int, includeDeleted bool) ([]domain.Candidate, int64, error) {
	q := queryerFrom(ctx, r.db)

	where := `WHERE is_deleted = FALSE`
	if includeDeleted {
		where = ``
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM candidates `+where).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + candidateColumns + ` FROM candidates ` + where + `
	          ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := q.Query(ctx, query, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.PhotoURL,
			&c.PortfolioURL, &c.GithubURL, &c.LinkedinURL,
			&c.CurrentCompany, &c.CurrentTitle, &c.WorkingSince,
			&c.License, &c.Patents, &c.Certifications,
			&c.Status, &c.IsDeleted, &c.DeletedAt, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		candidates = append(candidates, c)
	}
	return candidates, total, rows.Err()
}

func (r *candidateRepo) Upsert(ctx context.Context, c *domain.Candidate) error {
	if err := validation.UUID(c.ID, "id"); err != nil {
		return err
	}
	if err := validation.Required(c.Name, "name"); err != nil {
		return err
	}
	if err := validation.Email(c.Email); err != nil {
		return err
	}

	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	status := c.Status
	if status == "" {
		status = domain.StatusActive
	}

	query := `
		INSERT INTO candidates (id, user_id, name, email, phone, photo_url,
			portfolio_url, github_url, linkedin_url,
			current_company, current_title, working_since,
			license, patents, certifications, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, now())
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name, email = EXCLUDED.email, phone = EXCLUDED.phone,
			photo_url = EXCLUDED.photo_url, portfolio_url = EXCLUDED.portfolio_url,
			github_url = EXCLUDED.github_url, linkedin_url = EXCLUDED.linkedin_url,
			current_company = EXCLUDED.current_company, current_title = EXCLUDED.current_title,
			working_since = EXCLUDED.working_since, license = EXCLUDED.license,
			patents = EXCLUDED.patents, certifications = EXCLUDED.certifications,
			status = EXCLUDED.status, updated_at = now()`
	_, err := queryerFrom(ctx, r.db).Exec(ctx, query,
		c.ID, c.UserID, c.Name, c.Email, c.Phone, c.PhotoURL,
		c.PortfolioURL, c.GithubURL, c.LinkedinURL,
		c.CurrentCompany, c.CurrentTitle, c.WorkingSince,
		c.License, c.Patents, c.Certifications, status, createdAt,
	)
	return err
}

func (r *candidateRepo) SoftDelete(ctx context.Context, id string) (*domain.Candidate, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	query := `UPDATE candidates SET is_deleted = TRUE, deleted_at = now() WHERE id = $1 AND is_deleted = FALSE`
	if _, err := queryerFrom(ctx, r.db).Exec(ctx, query, id); err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *candidateRepo) SetStatus(ctx context.Context, id, status string) (*domain.Candidate, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	query := `UPDATE candidates SET status = $2, updated_at = now() WHERE id = $1 AND is_deleted = FALSE`
	if _, err := queryerFrom(ctx, r.db).Exec(ctx, query, id, status); err != nil {
		return nil, err
	}
	return existing, nil
}
