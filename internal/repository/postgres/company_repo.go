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

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

const companyColumns = `id, user_id, name, logo_url, details, corporate_website,
	hr_contact_name, hr_contact_email, legal_contact_name, legal_contact_email,
	status, is_deleted, deleted_at, created_at, updated_at`

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.LogoURL, &c.Details, &c.CorporateWebsite,
		&c.HRContactName, &c.HRContactEmail, &c.LegalContactName, &c.LegalContactEmail,
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

func (r *companyRepo) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	if err := validation.UUID(id, "id"); err != nil {
		return nil, err
	}
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1 AND is_deleted = FALSE`
	return scanCompany(queryerFrom(ctx, r.db).QueryRow(ctx, query, id))
}

func (r *companyRepo) FindByUserID(ctx context.Context, userID string) (*domain.Company, error) {
	if err := validation.UUID(userID, "userId"); err != nil {
		return nil, err
	}
	query := `SELECT ` + companyColumns + ` FROM companies WHERE user_id = $1 AND is_deleted = FALSE`
	return scanCompany(queryerFrom(ctx, r.db).QueryRow(ctx, query, userID))
}

func (r *companyRepo) ListActive(ctx context.Context, page, size int) ([]domain.Company, int64, error) {
	return r.list(ctx, page, size, false)
}

func (r *companyRepo) ListAll(ctx context.Context, page, size int) ([]domain.Company, int64, error) {
	return r.list(ctx, page, size, true)
}

func (r *companyRepo) list(ctx context.Context, page, size int, includeDeleted bool) ([]domain.Company, int64, error) {
	q := queryerFrom(ctx, r.db)

	where := `WHERE is_deleted = FALSE`
	if includeDeleted {
		where = ``
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM companies `+where).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + companyColumns + ` FROM companies ` + where + `
	          ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := q.Query(ctx, query, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var c domain.Company
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Name, &c.LogoURL, &c.Details, &c.CorporateWebsite,
			&c.HRContactName, &c.HRContactEmail, &c.LegalContactName, &c.LegalContactEmail,
			&c.Status, &c.IsDeleted, &c.DeletedAt, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		companies = append(companies, c)
	}
	return companies, total, rows.Err()
}

func (r *companyRepo) Upsert(ctx context.Context, c *domain.Company) error {
	if err := validation.UUID(c.ID, "id"); err != nil {
		return err
	}
	if err := validation.Required(c.Name, "name"); err != nil {
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
		INSERT INTO companies (id, user_id, name, logo_url, details, corporate_website,
			hr_contact_name, hr_contact_email, legal_contact_name, legal_contact_email,
			status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name, logo_url = EXCLUDED.logo_url,
			details = EXCLUDED.details, corporate_website = EXCLUDED.corporate_website,
			hr_contact_name = EXCLUDED.hr_contact_name, hr_contact_email = EXCLUDED.hr_contact_email,
			legal_contact_name = EXCLUDED.legal_contact_name, legal_contact_email = EXCLUDED.legal_contact_email,
			status = EXCLUDED.status, updated_at = now()`
	_, err := queryerFrom(ctx, r.db).Exec(ctx, query,
		c.ID, c.UserID, c.Name, c.LogoURL, c.Details, c.CorporateWebsite,
		c.HRContactName, c.HRContactEmail, c.LegalContactName, c.LegalContactEmail,
		status, createdAt,
	)
	return err
}

func (r *companyRepo) SoftDelete(ctx context.Context, id string) (*domain.Company, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	query := `UPDATE companies SET is_deleted = TRUE, deleted_at = now() WHERE id = $1 AND is_deleted = FALSE`
	if _, err := queryerFrom(ctx, r.db).Exec(ctx, query, id); err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *companyRepo) SetStatus(ctx context.Context, id, status string) (*domain.Company, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	query := `UPDATE companies SET status = $2, updated_at = now() WHERE id = $1 AND is_deleted = FALSE`
	if _, err := queryerFrom(ctx, r.db).Exec(ctx, query, id, status); err != nil {
		return nil, err
	}
	return existing, nil
}
