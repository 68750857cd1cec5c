package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"article_importer/internal/domain"
)

type CategoryStore struct {
	db *sqlx.DB
}

func NewCategoryStore(db *sqlx.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

func (s *CategoryStore) All(ctx context.Context) ([]domain.LocalCategory, error) {
	var categories []domain.LocalCategory
	query := `SELECT id, title, description FROM categories ORDER BY id`

	err := s.db.SelectContext(ctx, &categories, query)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryStore) Create(ctx context.Context, category domain.LocalCategory) (domain.LocalCategory, error) {
	ex := executor(ctx, s.db)

	query := `
		INSERT INTO categories (title, description)
		VALUES ($1, $2)
		ON CONFLICT (title) DO UPDATE SET title = EXCLUDED.title
		RETURNING id`

	row := ex.QueryRowxContext(ctx, query, category.Title, category.Description)
	if err := row.Scan(&category.ID); err != nil {
		return domain.LocalCategory{}, fmt.Errorf("insert category: %w", err)
	}
	return category, nil
}
