package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"article_importer/internal/domain"
	"article_importer/internal/feed"
)

// FeedClient is the slice of the feed API the orchestrator drives.
type FeedClient interface {
	ListItems(ctx context.Context, sel feed.Selector, state string, offset, limit int) ([]domain.RemoteListItem, int, error)
	GetItem(ctx context.Context, id int64) (*domain.RemoteArticle, error)
	GetCategoriesForItem(ctx context.Context, id int64) ([]domain.RemoteCategory, error)
	GetPhotosForItem(ctx context.Context, id int64) ([]domain.RemotePhoto, error)
	ListFeeds(ctx context.Context) ([]domain.RemoteFeed, error)
}

// MediaResolver selects photo instances, materializes them, and negotiates
// video embeds.
type MediaResolver interface {
	ResolvePhoto(title string, role domain.PhotoRole, photos []domain.RemotePhoto) *domain.ResolvedPhoto
	ResolveScaled(ctx context.Context, articleID int64, title string, role domain.PhotoRole) (*domain.ResolvedPhoto, error)
	Download(ctx context.Context, photo *domain.ResolvedPhoto) string
	VideoEmbed(ctx context.Context, articleID int64) (domain.VideoEmbed, error)
}

// PostStore is the host-side post storage contract. Existing titles are the
// durable "have we imported this" record; there is no separate dedup ledger.
type PostStore interface {
	Titles(ctx context.Context) ([]string, error)
	Save(ctx context.Context, post *domain.LocalPost) error
	Reload(ctx context.Context) error
}

type CategoryStore interface {
	All(ctx context.Context) ([]domain.LocalCategory, error)
	Create(ctx context.Context, category domain.LocalCategory) (domain.LocalCategory, error)
}

// Validator applies the host's post-validity rules; opaque to the importer.
type Validator interface {
	Validate(post *domain.LocalPost) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Publisher announces imported posts and run summaries to downstream
// consumers. A nil publisher disables publishing.
type Publisher interface {
	PublishPost(ctx context.Context, post *domain.LocalPost) error
	PublishRun(ctx context.Context, stats *domain.ImportStats) error
	Close() error
}
