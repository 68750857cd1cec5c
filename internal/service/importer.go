package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"article_importer/internal/domain"
	"article_importer/internal/feed"
	"article_importer/internal/media"
)

// CSS hooks the host theme styles imported images with.
const (
	fullSizeFrameClass  = "article-img-frame"
	thumbnailFrameClass = "article-thumbnail-frame"
)

// Config carries the per-deployment import policy.
type Config struct {
	Mode        domain.ImportMode
	DateSource  domain.DateSource
	Selector    feed.Selector
	State       string
	PageSize    int
	FeedIndex   int
	Author      string
	LegacySlugs bool
	// PicsURI is the web path imported photos are served from, e.g. "/pics/".
	PicsURI string
}

// Importer drives one import run: list the feed, and for each item not
// already imported fetch its detail, assemble a local post with categories
// and media, validate, and persist. A single bad item never aborts the run.
type Importer struct {
	feed       FeedClient
	media      MediaResolver
	posts      PostStore
	categories CategoryStore
	validator  Validator
	txManager  TransactionManager
	publisher  Publisher
	logger     *slog.Logger
	cfg        Config
}

func NewImporter(
	feedClient FeedClient,
	media MediaResolver,
	posts PostStore,
	categories CategoryStore,
	validator Validator,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg Config,
) *Importer {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	if cfg.State == "" {
		cfg.State = "live"
	}
	return &Importer{
		feed:       feedClient,
		media:      media,
		posts:      posts,
		categories: categories,
		validator:  validator,
		txManager:  txManager,
		publisher:  publisher,
		logger:     logger.With("component", "importer"),
		cfg:        cfg,
	}
}

// Run performs one full import. The articles and videos passes are
// independent, each with its own duplicate check; enabling both performs two
// passes. A pass-level failure does not stop the other pass.
func (imp *Importer) Run(ctx context.Context) (*domain.ImportStats, error) {
	start := time.Now()
	stats := &domain.ImportStats{Mode: imp.cfg.Mode.String()}

	var errs []error

	if imp.cfg.Mode.Articles() {
		passStats, err := imp.runArticles(ctx)
		stats.Merge(passStats)
		if err != nil {
			errs = append(errs, fmt.Errorf("articles pass: %w", err))
		}
	}

	if imp.cfg.Mode.Videos() {
		passStats, err := imp.runVideos(ctx)
		stats.Merge(passStats)
		if err != nil {
			errs = append(errs, fmt.Errorf("videos pass: %w", err))
		}
	}

	if err := imp.posts.Reload(ctx); err != nil {
		imp.logger.Warn("store reload failed", "error", err)
	}

	stats.Duration = time.Since(start)

	if imp.publisher != nil {
		if err := imp.publisher.PublishRun(ctx, stats); err != nil {
			imp.logger.Warn("could not publish run summary", "error", err)
		}
	}

	imp.logger.Debug("import finished",
		"took", stats.Duration,
		"imported", stats.Imported,
		"duplicates", stats.Duplicates,
		"failed", stats.Failed,
	)

	return stats, errors.Join(errs...)
}

func (imp *Importer) runArticles(ctx context.Context) (*domain.ImportStats, error) {
	return imp.runPass(ctx, imp.cfg.Selector, false)
}

// runVideos resolves the target feed through the provider's feed index, then
// imports each article with its video embed and a scaled photo.
func (imp *Importer) runVideos(ctx context.Context) (*domain.ImportStats, error) {
	stats := &domain.ImportStats{}

	feeds, err := imp.feed.ListFeeds(ctx)
	if err != nil {
		return stats, fmt.Errorf("list feeds: %w", err)
	}
	if imp.cfg.FeedIndex < 0 || imp.cfg.FeedIndex >= len(feeds) {
		return stats, fmt.Errorf("feed index %d out of range (%d feeds)", imp.cfg.FeedIndex, len(feeds))
	}

	target := feeds[imp.cfg.FeedIndex]
	imp.logger.Debug("resolved video feed", "feed_id", target.ID, "feed_name", target.Name)

	return imp.runPass(ctx, feed.ForFeed(target.ID), true)
}

func (imp *Importer) runPass(ctx context.Context, sel feed.Selector, video bool) (*domain.ImportStats, error) {
	stats := &domain.ImportStats{}

	seen, err := imp.existingTitles(ctx)
	if err != nil {
		return stats, err
	}

	reconciler := NewReconciler(imp.categories, imp.logger)

	offset := 0
	for {
		items, total, err := imp.feed.ListItems(ctx, sel, imp.cfg.State, offset, imp.cfg.PageSize)
		if err != nil {
			return stats, fmt.Errorf("list feed items: %w", err)
		}
		if len(items) == 0 {
			break
		}

		for _, item := range items {
			stats.Listed++
			imp.importItem(ctx, item, video, seen, reconciler, stats)
		}

		offset += len(items)
		if offset >= total {
			break
		}
	}

	stats.Categories = reconciler.Created()
	return stats, nil
}

// importItem handles one listed item end to end. All failures here are
// item-level: they are logged and the loop continues.
func (imp *Importer) importItem(
	ctx context.Context,
	item domain.RemoteListItem,
	video bool,
	seen map[string]bool,
	reconciler *Reconciler,
	stats *domain.ImportStats,
) {
	// The list projection carries the title, so the duplicate check
	// short-circuits before any detail or media work.
	title := strings.TrimSpace(item.Title)
	if title != "" && seen[title] {
		stats.Duplicates++
		imp.logger.Debug("skipping already imported item", "title", title, "id", item.ID)
		return
	}

	article, err := imp.feed.GetItem(ctx, item.ID)
	if err != nil {
		imp.logger.Error("could not fetch item detail", "id", item.ID, "error", err)
		stats.Failed++
		return
	}

	title = strings.TrimSpace(article.Fields.Value(domain.FieldTitle))
	if seen[title] {
		stats.Duplicates++
		return
	}

	imp.logger.Info("importing new post", "title", title, "id", article.ID)

	post, err := imp.buildPost(article)
	if err != nil {
		imp.logger.Error("could not build post", "id", article.ID, "error", err)
		stats.Failed++
		return
	}

	if video {
		// Video import has no partial success path: without an embed
		// the item fails.
		embed, err := imp.media.VideoEmbed(ctx, article.ID)
		if err != nil {
			imp.logger.Error("could not resolve video embed", "id", article.ID, "error", err)
			stats.Failed++
			return
		}
		post.Content = embed.EmbedCode + post.Content
	}

	imp.attachCategories(ctx, article.ID, post, reconciler)

	if video {
		imp.attachScaledPhoto(ctx, article.ID, title, post, stats)
	} else {
		imp.attachPhotos(ctx, article.ID, title, post, stats)
	}

	if err := imp.validator.Validate(post); err != nil {
		imp.logger.Error("post invalid", "title", post.Title, "error", err)
		stats.Failed++
		return
	}

	err = imp.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return imp.posts.Save(txCtx, post)
	})
	if err != nil {
		imp.logger.Error("could not save post", "title", post.Title, "error", err)
		stats.Failed++
		return
	}

	if imp.publisher != nil {
		if err := imp.publisher.PublishPost(ctx, post); err != nil {
			imp.logger.Warn("could not publish post", "title", post.Title, "error", err)
		}
	}

	seen[title] = true
	stats.Imported++
}

// attachCategories joins the item's remote categories onto the post.
// Category failures are soft: the item still imports without them.
func (imp *Importer) attachCategories(ctx context.Context, articleID int64, post *domain.LocalPost, reconciler *Reconciler) {
	remote, err := imp.feed.GetCategoriesForItem(ctx, articleID)
	if err != nil {
		imp.logger.Warn("could not fetch categories", "id", articleID, "error", err)
		return
	}

	names := make([]string, 0, len(remote))
	for _, c := range remote {
		names = append(names, c.Name)
	}

	categories, err := reconciler.Reconcile(ctx, names)
	if err != nil {
		imp.logger.Warn("could not reconcile categories", "id", articleID, "error", err)
	}
	post.Categories = categories
}

// attachPhotos resolves the thumbnail and full-size roles from the item's
// photos and prepends the imported images to the post markup. Photo failures
// never abort the article import.
func (imp *Importer) attachPhotos(ctx context.Context, articleID int64, title string, post *domain.LocalPost, stats *domain.ImportStats) {
	photos, err := imp.feed.GetPhotosForItem(ctx, articleID)
	if err != nil {
		imp.logger.Warn("could not fetch photos", "id", articleID, "error", err)
		return
	}

	thumbnail := imp.media.ResolvePhoto(title, domain.RoleThumbnail, photos)
	fullSize := imp.media.ResolvePhoto(title, domain.RoleFullSize, photos)
	if thumbnail == nil && fullSize == nil {
		return
	}

	imported := 0

	if fullSize != nil {
		if path := imp.media.Download(ctx, fullSize); path != "" {
			imported++
			post.Content = media.PrependBlock(imageBlock(fullSize, imp.cfg.PicsURI, fullSizeFrameClass, true), post.Content)
		}
	}

	if thumbnail != nil {
		if path := imp.media.Download(ctx, thumbnail); path != "" {
			imported++
			post.Description = media.PrependBlock(imageBlock(thumbnail, imp.cfg.PicsURI, thumbnailFrameClass, false), post.Description)
		}
	}

	if imported > 0 {
		imp.logger.Info("imported photos", "count", imported, "id", articleID)
		stats.Photos += imported
	} else {
		imp.logger.Warn("could not import any photos", "id", articleID)
	}
}

// attachScaledPhoto serves the photo-service-backed source used by the videos
// pass: one rendered variant scaled to the configured size.
func (imp *Importer) attachScaledPhoto(ctx context.Context, articleID int64, title string, post *domain.LocalPost, stats *domain.ImportStats) {
	resolved, err := imp.media.ResolveScaled(ctx, articleID, title, domain.RoleFullSize)
	if err != nil {
		imp.logger.Warn("could not resolve scaled photo", "id", articleID, "error", err)
		return
	}
	if resolved == nil {
		return
	}

	if path := imp.media.Download(ctx, resolved); path != "" {
		post.Content = media.PrependBlock(imageBlock(resolved, imp.cfg.PicsURI, fullSizeFrameClass, true), post.Content)
		stats.Photos++
		imp.logger.Info("imported photos", "count", 1, "id", articleID)
	}
}

func (imp *Importer) existingTitles(ctx context.Context) (map[string]bool, error) {
	titles, err := imp.posts.Titles(ctx)
	if err != nil {
		return nil, fmt.Errorf("load existing post titles: %w", err)
	}

	seen := make(map[string]bool, len(titles))
	for _, t := range titles {
		seen[strings.TrimSpace(t)] = true
	}
	return seen, nil
}
