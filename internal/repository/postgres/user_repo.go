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

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, username, password_hash, role, linked_entity_id, status, is_deleted, deleted_at, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.LinkedEntityID,
		&u.Status, &u.IsDeleted, &u.DeletedAt, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if err := validation.UUID(id, "id"); err != nil {
		return nil, err
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND is_deleted = FALSE`
	return scanUser(queryerFrom(ctx, r.db).QueryRow(ctx, query, id))
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if err := validation.Required(username, "username"); err != nil {
		return nil, err
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND is_deleted = FALSE`
	return scanUser(queryerFrom(ctx, r.db).QueryRow(ctx, query, username))
}

func (r *userRepo) ListActive(ctx context.Context, page, size int) ([]domain.User, int64, error) {
	return r.list(ctx, page, size, false)
}

func (r *userRepo) ListAll(ctx context.Context, page, size int) ([]domain.User, int64, error) {
	return r.list(ctx, page, size, true)
}

func (r *userRepo) list(ctx context.Context, page, size int, includeDeleted bool) ([]domain.User, int64, error) {
	q := queryerFrom(ctx, r.db)

	where := `WHERE is_deleted = FALSE`
	if includeDeleted {
		where = ``
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users `+where).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + userColumns + ` FROM users ` + where + `
	          ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := q.Query(ctx, query, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.LinkedEntityID,
			&u.Status, &u.IsDeleted, &u.DeletedAt, &u.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

func (r *userRepo) Upsert(ctx context.Context, user *domain.User) error {
	if err := validation.UUID(user.ID, "id"); err != nil {
		return err
	}
	if err := validation.Required(user.Username, "username"); err != nil {
		return err
	}
	if err := validation.Required(user.Role, "role"); err != nil {
		return err
	}

	createdAt := user.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	status := user.Status
	if status == "" {
		status = domain.StatusActive
	}

	query := `
		INSERT INTO users (id, username, password_hash, role, linked_entity_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id)
		DO UPDATE SET
			username = EXCLUDED.username,
			password_hash = EXCLUDED.password_hash,
			role = EXCLUDED.role,
			linked_entity_id = EXCLUDED.linked_entity_id,
			status = EXCLUDED.status`
	// usernames are unique among live rows, so a second account claiming a
	// taken name trips the partial index rather than silently overwriting
	_, err := queryerFrom(ctx, r.db).Exec(ctx, query,
		user.ID, user.Username, user.PasswordHash, user.Role,
		user.LinkedEntityID, status, createdAt,
	)
	return duplicateFrom(err, "Username is already taken")
}

func (r *userRepo) SoftDelete(ctx context.Context, id string) (*domain.User, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	query := `UPDATE users SET is_deleted = TRUE, deleted_at = now() WHERE id = $1 AND is_deleted = FALSE`
	if _, err := queryerFrom(ctx, r.db).Exec(ctx, query, id); err != nil {
		return nil, err
	}
	return existing, nil
}
