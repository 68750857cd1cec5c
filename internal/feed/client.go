package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"article_importer/internal/domain"
)

// Format selects the on-the-wire encoding for a client.
type Format string

const (
	FormatXML  Format = "xml"
	FormatJSON Format = "json"
)

var baseURLPattern = regexp.MustCompile(`(?i)^https?://[a-z0-9-]+(\.[a-z0-9-]+)*(:[0-9]+)?(/.*)?$`)

// listFields is the projection requested on list pages. Titles ride along so
// the importer's duplicate check can short-circuit before any detail fetch.
var listFields = []string{"title"}

// Config holds feed client configuration.
type Config struct {
	BaseURL   string
	PublicKey string
	SecretKey string
	Format    Format
	Timeout   time.Duration
}

// Client fetches and parses remote feed documents into typed entities.
// Requests are authenticated by embedding the key pair as URI user-info.
type Client struct {
	httpClient *http.Client
	baseURL    string
	creds      Credentials
	format     Format
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) (*Client, error) {
	if !baseURLPattern.MatchString(cfg.BaseURL) {
		return nil, &ConfigError{Reason: fmt.Sprintf("base url %q is not a valid feed uri", cfg.BaseURL)}
	}

	creds, err := NewCredentials(cfg.PublicKey, cfg.SecretKey)
	if err != nil {
		return nil, err
	}

	format := cfg.Format
	if format == "" {
		format = FormatXML
	}
	if format != FormatXML && format != FormatJSON {
		return nil, &UnsupportedFormatError{Format: format}
	}

	baseURL := cfg.BaseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		// Feed fetches may be large; the deployed servers are slow.
		timeout = 10 * time.Minute
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		creds:      creds,
		format:     format,
		logger:     logger.With("component", "feed"),
	}, nil
}

// ListItems returns one page of item identifiers (with projected titles) for
// the selected feed or brief, plus the collection's total count.
func (c *Client) ListItems(ctx context.Context, sel Selector, state string, offset, limit int) ([]domain.RemoteListItem, int, error) {
	uri := c.endpoint("articles", listParams(sel, state, offset, limit, nil, listFields))

	body, err := c.get(ctx, "list items", uri)
	if err != nil {
		return nil, 0, err
	}

	items, total, err := c.decodeList(body)
	if err != nil {
		return nil, 0, &FetchError{Op: "list items", URI: uri, Err: err}
	}

	c.logger.Debug("listed items", "uri", uri, "count", len(items), "total", total)
	return items, total, nil
}

// GetItem fetches one article's full field set and checks the required-keys
// contract once at ingestion.
func (c *Client) GetItem(ctx context.Context, id int64) (*domain.RemoteArticle, error) {
	uri := c.endpoint(articlePath(id), nil)

	body, err := c.get(ctx, "get item", uri)
	if err != nil {
		return nil, err
	}

	article, err := c.decodeArticle(body)
	if err != nil {
		return nil, &FetchError{Op: "get item", URI: uri, Err: err}
	}

	if err := article.Fields.Require(domain.FieldTitle); err != nil {
		return nil, fmt.Errorf("item %d: %w", id, err)
	}
	return article, nil
}

// GetCategoriesForItem lists the categories joined to an article.
func (c *Client) GetCategoriesForItem(ctx context.Context, id int64) ([]domain.RemoteCategory, error) {
	uri := c.endpoint(articlePath(id)+"/categories", nil)

	body, err := c.get(ctx, "get categories", uri)
	if err != nil {
		return nil, err
	}

	categories, err := c.decodeCategories(body)
	if err != nil {
		return nil, &FetchError{Op: "get categories", URI: uri, Err: err}
	}
	return categories, nil
}

// GetPhotosForItem lists the photos attached to an article, each with its
// rendered instances.
func (c *Client) GetPhotosForItem(ctx context.Context, id int64) ([]domain.RemotePhoto, error) {
	uri := c.endpoint(articlePath(id)+"/photos", nil)

	body, err := c.get(ctx, "get photos", uri)
	if err != nil {
		return nil, err
	}

	photos, err := c.decodePhotos(body)
	if err != nil {
		return nil, &FetchError{Op: "get photos", URI: uri, Err: err}
	}
	return photos, nil
}

// ListFeeds returns the provider's feed index.
func (c *Client) ListFeeds(ctx context.Context) ([]domain.RemoteFeed, error) {
	uri := c.endpoint("feeds", nil)

	body, err := c.get(ctx, "list feeds", uri)
	if err != nil {
		return nil, err
	}

	feeds, err := c.decodeFeeds(body)
	if err != nil {
		return nil, &FetchError{Op: "list feeds", URI: uri, Err: err}
	}
	return feeds, nil
}

// GetScaledPhotoURL asks the rendering endpoint for a photo scaled along one
// axis to a target pixel size and returns the rendered image location.
func (c *Client) GetScaledPhotoURL(ctx context.Context, photoID int64, axis domain.ScaleAxis, size int) (string, error) {
	uri := c.endpoint(fmt.Sprintf("photos/%d", photoID), []param{
		{"scaleAxis", axis.String()},
		{"scale", strconv.Itoa(size)},
	})

	body, err := c.get(ctx, "scale photo", uri)
	if err != nil {
		return "", err
	}

	location, err := c.decodeLocation(body)
	if err != nil {
		return "", &FetchError{Op: "scale photo", URI: uri, Err: err}
	}
	return location, nil
}

// GetVideoEmbed requests embeddable markup for an article with an ordered
// player/version preference chain. The provider resolves the fallback; only
// the resulting markup is returned.
func (c *Client) GetVideoEmbed(ctx context.Context, articleID int64, prefs []domain.PlayerPreference) (domain.VideoEmbed, error) {
	players := make([]string, 0, len(prefs))
	for _, p := range prefs {
		players = append(players, p.Player+":"+p.MinVersion)
	}

	uri := c.endpoint("videoOutputs", []param{
		{"articleId", strconv.FormatInt(articleID, 10)},
		{"players", strings.Join(players, ",")},
	})

	body, err := c.get(ctx, "get video embed", uri)
	if err != nil {
		return domain.VideoEmbed{}, err
	}

	embed, err := c.decodeEmbed(body)
	if err != nil {
		return domain.VideoEmbed{}, &FetchError{Op: "get video embed", URI: uri, Err: err}
	}
	if embed.EmbedCode == "" {
		return domain.VideoEmbed{}, &FetchError{Op: "get video embed", URI: uri, Err: fmt.Errorf("no player available for article %d", articleID)}
	}
	return embed, nil
}

func (c *Client) get(ctx context.Context, op, uri string) ([]byte, error) {
	authorized, err := c.creds.Authorize(uri)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, authorized, nil)
	if err != nil {
		return nil, &FetchError{Op: op, URI: uri, Err: err}
	}
	req.Header.Set("Accept", contentType(c.format))
	req.Header.Set("User-Agent", "ArticleImporter/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Op: op, URI: uri, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Op: op, URI: uri, Err: fmt.Errorf("unexpected status: %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Op: op, URI: uri, Err: err}
	}
	return body, nil
}

func contentType(f Format) string {
	if f == FormatJSON {
		return "application/json"
	}
	return "text/xml"
}

func (c *Client) decodeList(body []byte) ([]domain.RemoteListItem, int, error) {
	if c.format == FormatJSON {
		return decodeListJSON(body)
	}
	return decodeListXML(body)
}

func (c *Client) decodeArticle(body []byte) (*domain.RemoteArticle, error) {
	if c.format == FormatJSON {
		return decodeArticleJSON(body)
	}
	return decodeArticleXML(body)
}

func (c *Client) decodeCategories(body []byte) ([]domain.RemoteCategory, error) {
	if c.format == FormatJSON {
		return decodeCategoriesJSON(body)
	}
	return decodeCategoriesXML(body)
}

func (c *Client) decodePhotos(body []byte) ([]domain.RemotePhoto, error) {
	if c.format == FormatJSON {
		return decodePhotosJSON(body)
	}
	return decodePhotosXML(body)
}

func (c *Client) decodeFeeds(body []byte) ([]domain.RemoteFeed, error) {
	if c.format == FormatJSON {
		return decodeFeedsJSON(body)
	}
	return decodeFeedsXML(body)
}

func (c *Client) decodeLocation(body []byte) (string, error) {
	if c.format == FormatJSON {
		return decodeLocationJSON(body)
	}
	return decodeLocationXML(body)
}

func (c *Client) decodeEmbed(body []byte) (domain.VideoEmbed, error) {
	if c.format == FormatJSON {
		return decodeEmbedJSON(body)
	}
	return decodeEmbedXML(body)
}
