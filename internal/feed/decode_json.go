package feed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"article_importer/internal/domain"
)

// decodeFieldsJSON walks the fields object token by token so field order
// survives the round trip, which plain map unmarshalling would lose.
func decodeFieldsJSON(raw json.RawMessage) (domain.Fields, error) {
	fields := domain.NewFields()
	if len(raw) == 0 {
		return fields, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return fields, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fields, fmt.Errorf("fields: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fields, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fields, fmt.Errorf("fields: expected key, got %v", keyTok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return fields, err
		}
		fields.Set(key, stringifyJSON(value))
	}

	return fields, nil
}

func stringifyJSON(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}

type jsonListItem struct {
	ID     int64           `json:"id"`
	Fields json.RawMessage `json:"fields"`
}

type jsonList struct {
	TotalCount int            `json:"totalCount"`
	Articles   []jsonListItem `json:"articles"`
}

func decodeListJSON(body []byte) ([]domain.RemoteListItem, int, error) {
	var doc jsonList
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, 0, fmt.Errorf("decode article list: %w", err)
	}

	items := make([]domain.RemoteListItem, 0, len(doc.Articles))
	for _, a := range doc.Articles {
		fields, err := decodeFieldsJSON(a.Fields)
		if err != nil {
			return nil, 0, fmt.Errorf("decode article list: %w", err)
		}
		items = append(items, domain.RemoteListItem{
			ID:    a.ID,
			Title: fields.Value(domain.FieldTitle),
		})
	}
	return items, doc.TotalCount, nil
}

type jsonArticle struct {
	ID     int64           `json:"id"`
	FeedID int64           `json:"feedId"`
	State  string          `json:"state"`
	Fields json.RawMessage `json:"fields"`
}

func decodeArticleJSON(body []byte) (*domain.RemoteArticle, error) {
	var doc jsonArticle
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode article: %w", err)
	}

	fields, err := decodeFieldsJSON(doc.Fields)
	if err != nil {
		return nil, fmt.Errorf("decode article fields: %w", err)
	}

	return &domain.RemoteArticle{
		ID:     doc.ID,
		FeedID: doc.FeedID,
		State:  doc.State,
		Fields: fields,
	}, nil
}

type jsonCategories struct {
	Categories []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"categories"`
}

func decodeCategoriesJSON(body []byte) ([]domain.RemoteCategory, error) {
	var doc jsonCategories
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}

	categories := make([]domain.RemoteCategory, 0, len(doc.Categories))
	for _, c := range doc.Categories {
		categories = append(categories, domain.RemoteCategory{ID: c.ID, Name: c.Name})
	}
	return categories, nil
}

type jsonPhotos struct {
	Photos []struct {
		ID          int64  `json:"id"`
		Caption     string `json:"caption"`
		HTMLAlt     string `json:"htmlAlt"`
		Orientation string `json:"orientation"`
		Instances   []struct {
			URL    string `json:"url"`
			Width  int    `json:"width"`
			Height int    `json:"height"`
			Type   string `json:"type"`
		} `json:"instances"`
	} `json:"photos"`
}

func decodePhotosJSON(body []byte) ([]domain.RemotePhoto, error) {
	var doc jsonPhotos
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode photos: %w", err)
	}

	photos := make([]domain.RemotePhoto, 0, len(doc.Photos))
	for _, p := range doc.Photos {
		photo := domain.RemotePhoto{
			ID:          p.ID,
			Caption:     p.Caption,
			AltText:     p.HTMLAlt,
			Orientation: domain.ParseOrientation(p.Orientation),
		}
		for _, in := range p.Instances {
			photo.Instances = append(photo.Instances, domain.PhotoInstance{
				URL:    in.URL,
				Width:  in.Width,
				Height: in.Height,
				Type:   domain.ParseInstanceType(in.Type),
			})
		}
		photos = append(photos, photo)
	}
	return photos, nil
}

type jsonFeeds struct {
	Feeds []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"feeds"`
}

func decodeFeedsJSON(body []byte) ([]domain.RemoteFeed, error) {
	var doc jsonFeeds
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode feeds: %w", err)
	}

	feeds := make([]domain.RemoteFeed, 0, len(doc.Feeds))
	for _, f := range doc.Feeds {
		feeds = append(feeds, domain.RemoteFeed{ID: f.ID, Name: f.Name})
	}
	return feeds, nil
}

func decodeLocationJSON(body []byte) (string, error) {
	var doc struct {
		Location string `json:"location"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", fmt.Errorf("decode photo location: %w", err)
	}
	if doc.Location == "" {
		return "", fmt.Errorf("photo location missing from response")
	}
	return doc.Location, nil
}

func decodeEmbedJSON(body []byte) (domain.VideoEmbed, error) {
	var doc struct {
		EmbedCode string `json:"embedCode"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return domain.VideoEmbed{}, fmt.Errorf("decode video output: %w", err)
	}
	return domain.VideoEmbed{EmbedCode: doc.EmbedCode}, nil
}
