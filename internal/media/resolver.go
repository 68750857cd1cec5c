// Package media selects photo instances for article roles, materializes them
// locally, and resolves video embeds through the provider's player fallback.
package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"article_importer/internal/domain"
	"article_importer/internal/slug"
)

// rolePreferences is the ordered instance-type preference per photo role.
var rolePreferences = map[domain.PhotoRole][]domain.InstanceType{
	domain.RoleThumbnail: {domain.InstanceThumbnail, domain.InstanceSmall},
	domain.RoleFullSize:  {domain.InstanceLarge},
}

// PhotoService is the slice of the feed client the resolver needs for the
// photo-service-backed source.
type PhotoService interface {
	GetPhotosForItem(ctx context.Context, id int64) ([]domain.RemotePhoto, error)
	GetScaledPhotoURL(ctx context.Context, photoID int64, axis domain.ScaleAxis, size int) (string, error)
}

// VideoService resolves embeds; the player/version fallback chain runs on the
// provider side.
type VideoService interface {
	GetVideoEmbed(ctx context.Context, articleID int64, prefs []domain.PlayerPreference) (domain.VideoEmbed, error)
}

type Config struct {
	PhotoDir  string
	ScaleSize int
	ScaleAxis domain.ScaleAxis
	Players   []domain.PlayerPreference
	Timeout   time.Duration
}

type Resolver struct {
	photos     PhotoService
	videos     VideoService
	httpClient *http.Client
	cfg        Config
	logger     *slog.Logger
}

func NewResolver(photos PhotoService, videos VideoService, cfg Config, logger *slog.Logger) *Resolver {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Minute
	}
	if cfg.ScaleSize == 0 {
		cfg.ScaleSize = 300
	}
	return &Resolver{
		photos:     photos,
		videos:     videos,
		httpClient: &http.Client{Timeout: timeout},
		cfg:        cfg,
		logger:     logger.With("component", "media"),
	}
}

// ResolvePhoto picks the instance for a role from the first photo attached to
// an article. Preferences are scanned in order; the first instance matching
// the current preference wins. No match means no photo for that role, which
// is not an error.
func (r *Resolver) ResolvePhoto(title string, role domain.PhotoRole, photos []domain.RemotePhoto) *domain.ResolvedPhoto {
	if len(photos) == 0 {
		return nil
	}

	// Upstream documents may carry several photos; only the first is
	// considered, matching the behavior sites already depend on.
	photo := photos[0]

	for _, want := range rolePreferences[role] {
		for _, in := range photo.Instances {
			if in.Type == want {
				return &domain.ResolvedPhoto{
					PhotoID:             photo.ID,
					URL:                 in.URL,
					Caption:             photo.Caption,
					AltText:             photo.AltText,
					Width:               in.Width,
					Height:              in.Height,
					Orientation:         photo.Orientation,
					DestinationFileName: DestinationFileName(title, role, in.URL),
				}
			}
		}
	}
	return nil
}

// ResolveScaled serves the photo-service-backed source: it lists the photos
// attached to an article, takes the first, and asks the rendering endpoint
// for a variant scaled along the configured axis. Orientation is inferred
// from the scale axis (Y implies Portrait) — a heuristic, not a property read
// from the source.
func (r *Resolver) ResolveScaled(ctx context.Context, articleID int64, title string, role domain.PhotoRole) (*domain.ResolvedPhoto, error) {
	photos, err := r.photos.GetPhotosForItem(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list photos for item %d: %w", articleID, err)
	}
	if len(photos) == 0 {
		return nil, nil
	}

	photo := photos[0]
	location, err := r.photos.GetScaledPhotoURL(ctx, photo.ID, r.cfg.ScaleAxis, r.cfg.ScaleSize)
	if err != nil {
		return nil, fmt.Errorf("scale photo %d: %w", photo.ID, err)
	}

	orientation := domain.OrientationLandscape
	if r.cfg.ScaleAxis == domain.AxisY {
		orientation = domain.OrientationPortrait
	}

	return &domain.ResolvedPhoto{
		PhotoID:             photo.ID,
		URL:                 location,
		Caption:             photo.Caption,
		AltText:             photo.AltText,
		Orientation:         orientation,
		DestinationFileName: DestinationFileName(title, role, location),
	}, nil
}

// Download materializes a resolved photo under the configured directory and
// returns the local path. Any failure is logged and yields an empty path; a
// photo failure never aborts the article import.
func (r *Resolver) Download(ctx context.Context, photo *domain.ResolvedPhoto) string {
	dest := filepath.Join(r.cfg.PhotoDir, photo.DestinationFileName)

	if err := r.download(ctx, photo.URL, dest); err != nil {
		r.logger.Error("could not import photo", "url", photo.URL, "error", err)
		return ""
	}
	return dest
}

func (r *Resolver) download(ctx context.Context, rawURL, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch photo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create photo dir: %w", err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create photo file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("write photo file: %w", err)
	}
	return nil
}

// VideoEmbed resolves an embed for an article through the configured player
// preference chain. Unlike photos, a video import has no partial success
// path: failure here is a hard error for the article.
func (r *Resolver) VideoEmbed(ctx context.Context, articleID int64) (domain.VideoEmbed, error) {
	embed, err := r.videos.GetVideoEmbed(ctx, articleID, r.cfg.Players)
	if err != nil {
		return domain.VideoEmbed{}, fmt.Errorf("resolve video embed for item %d: %w", articleID, err)
	}
	return embed, nil
}

// DestinationFileName derives the deterministic local filename for a resolved
// photo: the slugged title, the role suffix for non-primary roles, and the
// source URL's extension with any query string stripped.
func DestinationFileName(title string, role domain.PhotoRole, rawURL string) string {
	trimmed := rawURL
	if i := strings.IndexByte(trimmed, '?'); i >= 0 {
		trimmed = trimmed[:i]
	}
	return slug.Make(title) + role.Suffix() + path.Ext(trimmed)
}
