package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"article_importer/internal/domain"
	"article_importer/internal/media"
	"article_importer/internal/slug"
)

// feedTimeLayouts covers the date encodings the deployed providers emit.
var feedTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// buildPost maps a remote article's free-form fields onto a local post. The
// required-keys contract was checked at ingestion; which upstream date field
// becomes DateCreated is operator-selectable, DateModified always takes the
// upstream last-modified value.
func (imp *Importer) buildPost(article *domain.RemoteArticle) (*domain.LocalPost, error) {
	if err := article.Fields.Require(domain.FieldTitle, domain.FieldContent); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(article.Fields.Value(domain.FieldTitle))

	post := &domain.LocalPost{
		ID:          uuid.New(),
		Title:       title,
		Content:     article.Fields.Value(domain.FieldContent),
		Description: article.Fields.Value(domain.FieldExtract),
		Author:      imp.cfg.Author,
	}

	if imp.cfg.LegacySlugs {
		post.Slug = slug.Legacy(title, article.ID)
	} else {
		post.Slug = slug.Make(title)
	}

	lastModified := imp.fieldTime(article, domain.FieldLastModifiedDate)
	post.DateModified = lastModified

	var created time.Time
	switch imp.cfg.DateSource {
	case domain.DatePublished:
		created = imp.fieldTime(article, domain.FieldPublishDate)
	case domain.DateCreated:
		created = imp.fieldTime(article, domain.FieldCreatedDate)
	case domain.DateLastModified:
		created = lastModified
	}
	if created.IsZero() {
		created = lastModified
	}
	if created.IsZero() {
		created = time.Now()
	}
	post.DateCreated = created

	if keywords, ok := article.Fields.Get(domain.FieldKeywords); ok && keywords != "" {
		post.Tags = splitKeywords(keywords)
	}

	return post, nil
}

// fieldTime parses a date field, tolerating absence: missing or unparseable
// dates resolve to the zero time and the caller picks a fallback.
func (imp *Importer) fieldTime(article *domain.RemoteArticle, field string) time.Time {
	raw, ok := article.Fields.Get(field)
	if !ok || raw == "" {
		return time.Time{}
	}

	for _, layout := range feedTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}

	imp.logger.Warn("could not parse date field", "field", field, "value", raw)
	return time.Time{}
}

// splitKeywords turns the comma-delimited keyword field into tags, order
// preserved, duplicates allowed.
func splitKeywords(keywords string) []string {
	parts := strings.Split(keywords, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func imageBlock(photo *domain.ResolvedPhoto, picsURI, cssClass string, useCaption bool) string {
	return media.ImageBlock(photo, picsURI+photo.DestinationFileName, cssClass, "", useCaption)
}
