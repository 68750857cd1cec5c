package service

import (
	"context"
	"fmt"
	"log/slog"

	"article_importer/internal/domain"
	"article_importer/internal/slug"
)

// Reconciler maps remote category names onto local category records, creating
// missing ones. A reconciler is scoped to one run: a brand-new category
// shared by two articles in the same run is created exactly once.
type Reconciler struct {
	categories CategoryStore
	logger     *slog.Logger

	known   map[string]domain.LocalCategory
	created int
}

func NewReconciler(categories CategoryStore, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		categories: categories,
		logger:     logger,
	}
}

// Reconcile resolves candidate names to local categories in input order;
// duplicate candidates collapse to one entry each. On a store failure the
// categories resolved so far are returned alongside the error.
func (r *Reconciler) Reconcile(ctx context.Context, names []string) ([]domain.LocalCategory, error) {
	if err := r.load(ctx); err != nil {
		return nil, err
	}

	var out []domain.LocalCategory
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		title := slug.CategoryName(name)
		if title == "" || seen[title] {
			continue
		}
		seen[title] = true

		if existing, ok := r.known[title]; ok {
			out = append(out, existing)
			continue
		}

		created, err := r.categories.Create(ctx, domain.LocalCategory{Title: title})
		if err != nil {
			return out, fmt.Errorf("create category %q: %w", title, err)
		}
		r.logger.Info("imported new category", "title", title)
		r.known[title] = created
		r.created++
		out = append(out, created)
	}

	return out, nil
}

// Created reports how many categories this run has persisted.
func (r *Reconciler) Created() int {
	return r.created
}

func (r *Reconciler) load(ctx context.Context) error {
	if r.known != nil {
		return nil
	}

	existing, err := r.categories.All(ctx)
	if err != nil {
		return fmt.Errorf("load existing categories: %w", err)
	}

	r.known = make(map[string]domain.LocalCategory, len(existing))
	for _, c := range existing {
		r.known[slug.CategoryName(c.Title)] = c
	}
	return nil
}
