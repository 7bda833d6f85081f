// Package user implements the user directory using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/campusshare/roommate-backend/internal/adapter/postgres"
	"github.com/campusshare/roommate-backend/internal/domain"
)

const table = "users"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var columns = []string{
	"id", "username", "email", "name", "phone_number", "whatsapp_number", "created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Expr("id = ?", id)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user query: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetContactSummaries returns the contact cards of the given users keyed by
// user ID. Unknown IDs are left out of the map.
func (r *Repo) GetContactSummaries(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.ContactSummary, error) {
	out := make(map[uuid.UUID]domain.ContactSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := psql.Select("id", "name", "phone_number", "whatsapp_number").
		From(table).
		Where(squirrel.Expr("id = ANY(?)", ids)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build contact summaries query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "users", idList(ids))
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.ContactSummary
		if err := rows.Scan(&c.OwnerID, &c.Name, &c.PhoneNumber, &c.WhatsAppNumber); err != nil {
			return nil, postgres.MapError(err, "users", idList(ids))
		}
		out[c.OwnerID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "users", idList(ids))
	}

	return out, nil
}

// Create inserts a user. Duplicate usernames or emails fail with
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := time.Now().UTC()
	createdAt, updatedAt := u.CreatedAt, u.UpdatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(id, u.Username, u.Email, u.Name, u.PhoneNumber, u.WhatsAppNumber, createdAt, updatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create user query: %w", err)
	}

	created, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return created, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Name, &u.PhoneNumber, &u.WhatsAppNumber, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// idList prints a short description of an ID batch for error messages.
type idList []uuid.UUID

func (l idList) String() string {
	if len(l) == 1 {
		return l[0].String()
	}
	return fmt.Sprintf("[%d ids]", len(l))
}
