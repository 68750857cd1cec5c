package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"article_importer/internal/domain"
)

type PostStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewPostStore(db *sqlx.DB, logger *slog.Logger) *PostStore {
	return &PostStore{
		db:     db,
		logger: logger.With("component", "post_store"),
	}
}

// Titles returns every stored post title; the importer's duplicate check
// compares against the whole set.
func (s *PostStore) Titles(ctx context.Context) ([]string, error) {
	var titles []string
	err := s.db.SelectContext(ctx, &titles, "SELECT title FROM posts")
	if err != nil {
		return nil, fmt.Errorf("select post titles: %w", err)
	}
	return titles, nil
}

func (s *PostStore) TitleExists(ctx context.Context, title string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		"SELECT EXISTS (SELECT 1 FROM posts WHERE btrim(title) = btrim($1))", title)
	if err != nil {
		return false, fmt.Errorf("check post title: %w", err)
	}
	return exists, nil
}

// Save inserts the post and its category links. It honors a transaction
// embedded in the context, so both land atomically.
func (s *PostStore) Save(ctx context.Context, post *domain.LocalPost) error {
	ex := executor(ctx, s.db)

	query := `
		INSERT INTO posts (
			id, title, slug, content, description, author,
			date_created, date_modified, tags
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)`

	_, err := ex.ExecContext(ctx, query,
		post.ID,
		post.Title,
		post.Slug,
		post.Content,
		post.Description,
		post.Author,
		post.DateCreated,
		post.DateModified,
		pq.Array(post.Tags),
	)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	for _, category := range post.Categories {
		_, err := ex.ExecContext(ctx,
			"INSERT INTO post_categories (post_id, category_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			post.ID, category.ID,
		)
		if err != nil {
			return fmt.Errorf("link post category: %w", err)
		}
	}

	return nil
}

// Reload is the post-run refresh signal. The backing table needs no rebuild,
// so it reduces to a consistency probe and a count log.
func (s *PostStore) Reload(ctx context.Context) error {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM posts"); err != nil {
		return fmt.Errorf("count posts: %w", err)
	}
	s.logger.Info("post store reloaded", "posts", count)
	return nil
}
