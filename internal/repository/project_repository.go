package repository

import (
	"context"
	"errors"

	"portfolio-api/internal/database"
	"portfolio-api/internal/domain/portfolio"

	"github.com/google/uuid"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectListFilter struct {
	// Search is matched case-insensitively as a substring over title,
	// description and technologies.
	Search string
	// Order overrides the default sort (display_order ASC,
	// created_at DESC) when non-empty.
	Order []OrderClause
}

type ProjectRepository interface {
	List(ctx context.Context, f ProjectListFilter) ([]portfolio.Project, error)
	ListFeatured(ctx context.Context) ([]portfolio.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (portfolio.Project, error)
	Create(ctx context.Context, p portfolio.Project) error
	Update(ctx context.Context, p portfolio.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

const projectColumns = `id, title, description, short_description, image_url, url, github_url,
	technologies, is_featured, display_order, created_at, updated_at`

func (r *PostgresProjectRepository) List(ctx context.Context, f ProjectListFilter) ([]portfolio.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	args := []any{}
	if f.Search != "" {
		query += ` WHERE title ILIKE '%' || $1 || '%' ESCAPE '\'
			OR description ILIKE '%' || $1 || '%' ESCAPE '\'
			OR technologies ILIKE '%' || $1 || '%' ESCAPE '\'`
		args = append(args, likeEscape(f.Search))
	}
	if len(f.Order) > 0 {
		query += ` ORDER BY ` + orderBySQL(f.Order)
	} else {
		query += ` ORDER BY display_order, created_at DESC`
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjects(rows)
}

func (r *PostgresProjectRepository) ListFeatured(ctx context.Context) ([]portfolio.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE is_featured = TRUE
		 ORDER BY display_order, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjects(rows)
}

func collectProjects(rows database.Rows) ([]portfolio.Project, error) {
	out := make([]portfolio.Project, 0)
	for rows.Next() {
		var p portfolio.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.ShortDescription,
			&p.ImageURL, &p.URL, &p.GithubURL, &p.Technologies,
			&p.IsFeatured, &p.Order, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (portfolio.Project, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)

	var p portfolio.Project
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ShortDescription,
		&p.ImageURL, &p.URL, &p.GithubURL, &p.Technologies,
		&p.IsFeatured, &p.Order, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if isNoRows(err) {
			return portfolio.Project{}, ErrProjectNotFound
		}
		return portfolio.Project{}, err
	}
	return p, nil
}

func (r *PostgresProjectRepository) Create(ctx context.Context, p portfolio.Project) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO projects (`+projectColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.Title, p.Description, p.ShortDescription, p.ImageURL,
		p.URL, p.GithubURL, p.Technologies, p.IsFeatured, p.Order,
		p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *PostgresProjectRepository) Update(ctx context.Context, p portfolio.Project) error {
	n, err := r.db.Exec(ctx,
		`UPDATE projects SET
			title = $2, description = $3, short_description = $4, image_url = $5,
			url = $6, github_url = $7, technologies = $8, is_featured = $9,
			display_order = $10, updated_at = $11
		 WHERE id = $1`,
		p.ID, p.Title, p.Description, p.ShortDescription, p.ImageURL,
		p.URL, p.GithubURL, p.Technologies, p.IsFeatured, p.Order, p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *PostgresProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProjectNotFound
	}
	return nil
}
