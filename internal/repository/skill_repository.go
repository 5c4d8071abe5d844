package repository

import (
	"context"
	"errors"

	"portfolio-api/internal/database"
	"portfolio-api/internal/domain/portfolio"

	"github.com/google/uuid"
)

var ErrSkillNotFound = errors.New("skill not found")

type SkillListFilter struct {
	// Search matches name and description, case-insensitive substring.
	Search string
	// CategoryID narrows to one category when non-nil.
	CategoryID *uuid.UUID
	// Order overrides the default sort (category order, skill order,
	// name) when non-empty; columns are prefixed s. / c. already.
	Order []OrderClause
}

type SkillRepository interface {
	List(ctx context.Context, f SkillListFilter) ([]portfolio.Skill, error)
	ListFeatured(ctx context.Context) ([]portfolio.Skill, error)
	GetByID(ctx context.Context, id uuid.UUID) (portfolio.Skill, error)
	Create(ctx context.Context, s portfolio.Skill) error
	Update(ctx context.Context, s portfolio.Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

const skillSelect = `SELECT s.id, s.name, s.category_id, c.name, s.proficiency, s.percentage,
	s.icon, s.description, s.years_experience, s.is_featured, s.display_order,
	s.created_at, s.updated_at
	FROM skills s
	JOIN skill_categories c ON c.id = s.category_id`

const skillDefaultOrder = ` ORDER BY c.display_order, s.display_order, s.name`

func (r *PostgresSkillRepository) List(ctx context.Context, f SkillListFilter) ([]portfolio.Skill, error) {
	query := skillSelect
	args := []any{}
	where := ""
	if f.Search != "" {
		args = append(args, likeEscape(f.Search))
		where = ` WHERE (s.name ILIKE '%' || $1 || '%' ESCAPE '\' OR s.description ILIKE '%' || $1 || '%' ESCAPE '\')`
	}
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		if where == "" {
			where = ` WHERE s.category_id = $1`
		} else {
			where += ` AND s.category_id = $2`
		}
	}
	query += where
	if len(f.Order) > 0 {
		query += ` ORDER BY ` + orderBySQL(f.Order)
	} else {
		query += skillDefaultOrder
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSkills(rows)
}

func (r *PostgresSkillRepository) ListFeatured(ctx context.Context) ([]portfolio.Skill, error) {
	rows, err := r.db.Query(ctx, skillSelect+` WHERE s.is_featured = TRUE`+skillDefaultOrder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSkills(rows)
}

func collectSkills(rows database.Rows) ([]portfolio.Skill, error) {
	out := make([]portfolio.Skill, 0)
	for rows.Next() {
		var s portfolio.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.CategoryID, &s.CategoryName,
			&s.Proficiency, &s.Percentage, &s.Icon, &s.Description,
			&s.YearsExperience, &s.IsFeatured, &s.Order,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresSkillRepository) GetByID(ctx context.Context, id uuid.UUID) (portfolio.Skill, error) {
	row := r.db.QueryRow(ctx, skillSelect+` WHERE s.id = $1`, id)

	var s portfolio.Skill
	if err := row.Scan(&s.ID, &s.Name, &s.CategoryID, &s.CategoryName,
		&s.Proficiency, &s.Percentage, &s.Icon, &s.Description,
		&s.YearsExperience, &s.IsFeatured, &s.Order,
		&s.CreatedAt, &s.UpdatedAt); err != nil {
		if isNoRows(err) {
			return portfolio.Skill{}, ErrSkillNotFound
		}
		return portfolio.Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) Create(ctx context.Context, s portfolio.Skill) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO skills (id, name, category_id, proficiency, percentage, icon,
			description, years_experience, is_featured, display_order, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		s.ID, s.Name, s.CategoryID, s.Proficiency, s.Percentage, s.Icon,
		s.Description, s.YearsExperience, s.IsFeatured, s.Order,
		s.CreatedAt, s.UpdatedAt,
	)
	return err
}

func (r *PostgresSkillRepository) Update(ctx context.Context, s portfolio.Skill) error {
	n, err := r.db.Exec(ctx,
		`UPDATE skills SET
			name = $2, category_id = $3, proficiency = $4, percentage = $5, icon = $6,
			description = $7, years_experience = $8, is_featured = $9,
			display_order = $10, updated_at = $11
		 WHERE id = $1`,
		s.ID, s.Name, s.CategoryID, s.Proficiency, s.Percentage, s.Icon,
		s.Description, s.YearsExperience, s.IsFeatured, s.Order, s.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSkillNotFound
	}
	return nil
}

func (r *PostgresSkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSkillNotFound
	}
	return nil
}
