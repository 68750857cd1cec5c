package domain

import (
	"time"

	"github.com/google/uuid"
)

// LocalPost is the assembled local record for one imported article. The host
// store owns persistence; posts are created once per distinct title and never
// updated on later runs.
type LocalPost struct {
	ID           uuid.UUID
	Title        string
	Slug         string
	Content      string
	Description  string
	Author       string
	DateCreated  time.Time
	DateModified time.Time
	Tags         []string
	Categories   []LocalCategory
}

// LocalCategory identity is case/whitespace-normalized title equality; the
// numeric id exists only for store bookkeeping.
type LocalCategory struct {
	ID          int64
	Title       string
	Description string
}

// DateSource selects which upstream date field becomes a post's DateCreated.
type DateSource int

const (
	DatePublished DateSource = iota
	DateCreated
	DateLastModified
)

func (d DateSource) String() string {
	switch d {
	case DateCreated:
		return "created"
	case DateLastModified:
		return "last-modified"
	default:
		return "published"
	}
}

// FieldName returns the remote field the source reads from.
func (d DateSource) FieldName() string {
	switch d {
	case DateCreated:
		return FieldCreatedDate
	case DateLastModified:
		return FieldLastModifiedDate
	default:
		return FieldPublishDate
	}
}

func ParseDateSource(s string) (DateSource, bool) {
	switch s {
	case "published", "":
		return DatePublished, true
	case "created":
		return DateCreated, true
	case "last-modified":
		return DateLastModified, true
	default:
		return DatePublished, false
	}
}

// ImportMode selects which import passes a run performs. Articles and videos
// are independent full passes with their own duplicate checks.
type ImportMode int

const (
	ModeArticles ImportMode = iota
	ModeVideos
	ModeBoth
	ModeNone
)

func (m ImportMode) String() string {
	switch m {
	case ModeVideos:
		return "videos"
	case ModeBoth:
		return "both"
	case ModeNone:
		return "none"
	default:
		return "articles"
	}
}

func ParseImportMode(s string) (ImportMode, bool) {
	switch s {
	case "articles", "":
		return ModeArticles, true
	case "videos":
		return ModeVideos, true
	case "both":
		return ModeBoth, true
	case "none":
		return ModeNone, true
	default:
		return ModeNone, false
	}
}

func (m ImportMode) Articles() bool { return m == ModeArticles || m == ModeBoth }
func (m ImportMode) Videos() bool   { return m == ModeVideos || m == ModeBoth }
