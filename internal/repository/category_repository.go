package repository

import (
	"context"
	"errors"

	"portfolio-api/internal/database"
	"portfolio-api/internal/domain/portfolio"

	"github.com/google/uuid"
)

var ErrSkillCategoryNotFound = errors.New("skill category not found")

type CategoryRepository interface {
	List(ctx context.Context) ([]portfolio.SkillCategory, error)
	GetByID(ctx context.Context, id uuid.UUID) (portfolio.SkillCategory, error)
	Create(ctx context.Context, c portfolio.SkillCategory) error
	Update(ctx context.Context, c portfolio.SkillCategory) error
	// Delete removes the category and its skills in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresCategoryRepository struct {
	db database.DB
}

func NewPostgresCategoryRepository(db database.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

const categoryColumns = `id, name, description, display_order, created_at, updated_at`

func (r *PostgresCategoryRepository) List(ctx context.Context) ([]portfolio.SkillCategory, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+categoryColumns+` FROM skill_categories ORDER BY display_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]portfolio.SkillCategory, 0)
	for rows.Next() {
		var c portfolio.SkillCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Order,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (portfolio.SkillCategory, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM skill_categories WHERE id = $1`, id)

	var c portfolio.SkillCategory
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Order,
		&c.CreatedAt, &c.UpdatedAt); err != nil {
		if isNoRows(err) {
			return portfolio.SkillCategory{}, ErrSkillCategoryNotFound
		}
		return portfolio.SkillCategory{}, err
	}
	return c, nil
}

func (r *PostgresCategoryRepository) Create(ctx context.Context, c portfolio.SkillCategory) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO skill_categories (`+categoryColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Description, c.Order, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *PostgresCategoryRepository) Update(ctx context.Context, c portfolio.SkillCategory) error {
	n, err := r.db.Exec(ctx,
		`UPDATE skill_categories SET name = $2, description = $3, display_order = $4, updated_at = $5
		 WHERE id = $1`,
		c.ID, c.Name, c.Description, c.Order, c.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSkillCategoryNotFound
	}
	return nil
}

// Delete cascades to skills explicitly rather than leaning on the FK,
// so the contract holds on any backend the schema runs against.
func (r *PostgresCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if _, err := tx.Exec(ctx, `DELETE FROM skills WHERE category_id = $1`, id); err != nil {
		return err
	}

	n, err := tx.Exec(ctx, `DELETE FROM skill_categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSkillCategoryNotFound
	}

	return tx.Commit(ctx)
}
