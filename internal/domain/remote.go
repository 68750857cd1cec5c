package domain

import (
	"fmt"
	"strings"
)

// Well-known field names carried by remote articles. The upstream schema is
// free-form key/value; these are the keys the importer actually consumes.
const (
	FieldTitle            = "title"
	FieldContent          = "content"
	FieldExtract          = "extract"
	FieldDate             = "date"
	FieldCreatedDate      = "createdDate"
	FieldPublishDate      = "publishDate"
	FieldLastModifiedDate = "lastModifiedDate"
	FieldKeywords         = "htmlMetaKeywords"
)

// Fields is an ordered field-name to value mapping. Upstream articles carry
// their payload as free-form named fields; insertion order is preserved so
// round-tripping keeps the document shape.
type Fields struct {
	keys   []string
	values map[string]string
}

func NewFields() Fields {
	return Fields{values: make(map[string]string)}
}

func (f *Fields) Set(key, value string) {
	if f.values == nil {
		f.values = make(map[string]string)
	}
	if _, exists := f.values[key]; !exists {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
}

func (f Fields) Get(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Value returns the field value or an empty string when absent.
func (f Fields) Value(key string) string {
	return f.values[key]
}

func (f Fields) Has(key string) bool {
	_, ok := f.values[key]
	return ok
}

// Keys returns field names in insertion order.
func (f Fields) Keys() []string {
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

func (f Fields) Len() int {
	return len(f.keys)
}

// Require checks the required-keys contract once at ingestion, so mapping
// logic never has to fail deep inside on an absent field.
func (f Fields) Require(keys ...string) error {
	var missing []string
	for _, k := range keys {
		if !f.Has(k) {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Missing: missing}
	}
	return nil
}

// MissingFieldsError reports every required field absent from a remote
// article in a single error.
type MissingFieldsError struct {
	Missing []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("remote article missing required fields: %s", strings.Join(e.Missing, ", "))
}

// RemoteArticle is one upstream content record, fetched fresh every run and
// never cached.
type RemoteArticle struct {
	ID     int64
	FeedID int64
	State  string
	Fields Fields
}

// RemoteListItem is a lightweight list-page row. The list endpoint projects
// the title field so duplicate checks can short-circuit before any detail
// fetch; everything else requires a separate detail call.
type RemoteListItem struct {
	ID    int64
	Title string
}

type RemoteCategory struct {
	ID   int64
	Name string
}

// RemoteFeed is one entry of the provider's feed index.
type RemoteFeed struct {
	ID   int64
	Name string
}
