package repository

import (
	"context"
	"errors"

	"portfolio-api/internal/database"
	"portfolio-api/internal/domain/portfolio"

	"github.com/google/uuid"
)

var ErrAboutProfileNotFound = errors.New("about profile not found")

type AboutRepository interface {
	List(ctx context.Context) ([]portfolio.AboutProfile, error)
	GetByID(ctx context.Context, id uuid.UUID) (portfolio.AboutProfile, error)
	FindActive(ctx context.Context) (portfolio.AboutProfile, error)
	Create(ctx context.Context, p portfolio.AboutProfile) error
	Update(ctx context.Context, p portfolio.AboutProfile) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresAboutRepository struct {
	db database.DB
}

func NewPostgresAboutRepository(db database.DB) *PostgresAboutRepository {
	return &PostgresAboutRepository{db: db}
}

const aboutColumns = `id, name, title, bio, email, phone, location, profile_image, resume_file,
	linkedin_url, github_url, twitter_url, website_url, is_active, created_at, updated_at`

func (r *PostgresAboutRepository) List(ctx context.Context) ([]portfolio.AboutProfile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+aboutColumns+` FROM about_profiles ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]portfolio.AboutProfile, 0)
	for rows.Next() {
		p, err := scanAboutProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresAboutRepository) GetByID(ctx context.Context, id uuid.UUID) (portfolio.AboutProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+aboutColumns+` FROM about_profiles WHERE id = $1`, id)
	return scanAboutProfileRow(row)
}

func (r *PostgresAboutRepository) FindActive(ctx context.Context) (portfolio.AboutProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+aboutColumns+` FROM about_profiles WHERE is_active = TRUE
		 ORDER BY created_at DESC LIMIT 1`)
	return scanAboutProfileRow(row)
}

// Create inserts the profile. When it is active, every other row is
// demoted in the same transaction so readers never observe two active
// profiles.
func (r *PostgresAboutRepository) Create(ctx context.Context, p portfolio.AboutProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if p.IsActive {
		if _, err := tx.Exec(ctx,
			`UPDATE about_profiles SET is_active = FALSE WHERE is_active = TRUE`); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO about_profiles (`+aboutColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		p.ID, p.Name, p.Title, p.Bio, p.Email, p.Phone, p.Location,
		p.ProfileImage, p.ResumeFile, p.LinkedinURL, p.GithubURL,
		p.TwitterURL, p.WebsiteURL, p.IsActive, p.CreatedAt, p.UpdatedAt,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresAboutRepository) Update(ctx context.Context, p portfolio.AboutProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if p.IsActive {
		if _, err := tx.Exec(ctx,
			`UPDATE about_profiles SET is_active = FALSE WHERE is_active = TRUE AND id <> $1`,
			p.ID); err != nil {
			return err
		}
	}

	n, err := tx.Exec(ctx,
		`UPDATE about_profiles SET
			name = $2, title = $3, bio = $4, email = $5, phone = $6, location = $7,
			profile_image = $8, resume_file = $9, linkedin_url = $10, github_url = $11,
			twitter_url = $12, website_url = $13, is_active = $14, updated_at = $15
		 WHERE id = $1`,
		p.ID, p.Name, p.Title, p.Bio, p.Email, p.Phone, p.Location,
		p.ProfileImage, p.ResumeFile, p.LinkedinURL, p.GithubURL,
		p.TwitterURL, p.WebsiteURL, p.IsActive, p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAboutProfileNotFound
	}

	return tx.Commit(ctx)
}

func (r *PostgresAboutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM about_profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAboutProfileNotFound
	}
	return nil
}

func scanAboutProfileRow(row database.Row) (portfolio.AboutProfile, error) {
	return scanAboutProfile(row)
}

func scanAboutProfile(row database.Row) (portfolio.AboutProfile, error) {
	var p portfolio.AboutProfile
	err := row.Scan(
		&p.ID, &p.Name, &p.Title, &p.Bio, &p.Email, &p.Phone, &p.Location,
		&p.ProfileImage, &p.ResumeFile, &p.LinkedinURL, &p.GithubURL,
		&p.TwitterURL, &p.WebsiteURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return portfolio.AboutProfile{}, ErrAboutProfileNotFound
		}
		return portfolio.AboutProfile{}, err
	}
	return p, nil
}
