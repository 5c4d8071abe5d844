package repository

import (
	"context"
	"errors"

	"portfolio-api/internal/database"
	"portfolio-api/internal/domain/portfolio"

	"github.com/google/uuid"
)

var ErrContactMessageNotFound = errors.New("contact message not found")

type ContactRepository interface {
	List(ctx context.Context) ([]portfolio.ContactMessage, error)
	ListUnread(ctx context.Context) ([]portfolio.ContactMessage, error)
	GetByID(ctx context.Context, id uuid.UUID) (portfolio.ContactMessage, error)
	Create(ctx context.Context, m portfolio.ContactMessage) error
	Update(ctx context.Context, m portfolio.ContactMessage) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresContactRepository struct {
	db database.DB
}

func NewPostgresContactRepository(db database.DB) *PostgresContactRepository {
	return &PostgresContactRepository{db: db}
}

const contactColumns = `id, name, email, subject, message, phone, is_read, is_replied, created_at, updated_at`

func (r *PostgresContactRepository) List(ctx context.Context) ([]portfolio.ContactMessage, error) {
	return r.list(ctx,
		`SELECT `+contactColumns+` FROM contact_messages ORDER BY created_at DESC`)
}

func (r *PostgresContactRepository) ListUnread(ctx context.Context) ([]portfolio.ContactMessage, error) {
	return r.list(ctx,
		`SELECT `+contactColumns+` FROM contact_messages WHERE is_read = FALSE ORDER BY created_at DESC`)
}

func (r *PostgresContactRepository) list(ctx context.Context, query string) ([]portfolio.ContactMessage, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]portfolio.ContactMessage, 0)
	for rows.Next() {
		var m portfolio.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message,
			&m.Phone, &m.IsRead, &m.IsReplied, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresContactRepository) GetByID(ctx context.Context, id uuid.UUID) (portfolio.ContactMessage, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contact_messages WHERE id = $1`, id)

	var m portfolio.ContactMessage
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message,
		&m.Phone, &m.IsRead, &m.IsReplied, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if isNoRows(err) {
			return portfolio.ContactMessage{}, ErrContactMessageNotFound
		}
		return portfolio.ContactMessage{}, err
	}
	return m, nil
}

func (r *PostgresContactRepository) Create(ctx context.Context, m portfolio.ContactMessage) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO contact_messages (`+contactColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.ID, m.Name, m.Email, m.Subject, m.Message, m.Phone,
		m.IsRead, m.IsReplied, m.CreatedAt, m.UpdatedAt,
	)
	return err
}

func (r *PostgresContactRepository) Update(ctx context.Context, m portfolio.ContactMessage) error {
	n, err := r.db.Exec(ctx,
		`UPDATE contact_messages SET
			name = $2, email = $3, subject = $4, message = $5, phone = $6,
			is_read = $7, is_replied = $8, updated_at = $9
		 WHERE id = $1`,
		m.ID, m.Name, m.Email, m.Subject, m.Message, m.Phone,
		m.IsRead, m.IsReplied, m.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrContactMessageNotFound
	}
	return nil
}

func (r *PostgresContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrContactMessageNotFound
	}
	return nil
}
