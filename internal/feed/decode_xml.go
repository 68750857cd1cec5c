package feed

import (
	"encoding/xml"
	"fmt"

	"article_importer/internal/domain"
)

// xmlFields decodes the free-form <fields> element into an ordered mapping;
// element names are the field names.
type xmlFields struct {
	fields domain.Fields
}

func (f *xmlFields) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	f.fields = domain.NewFields()
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &t); err != nil {
				return err
			}
			f.fields.Set(t.Name.Local, value)
		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}

type xmlListItem struct {
	ID     int64     `xml:"id"`
	Fields xmlFields `xml:"fields"`
}

type xmlList struct {
	TotalCount int           `xml:"totalCount,attr"`
	Articles   []xmlListItem `xml:"article"`
}

func decodeListXML(body []byte) ([]domain.RemoteListItem, int, error) {
	var doc xmlList
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, 0, fmt.Errorf("decode article list: %w", err)
	}

	items := make([]domain.RemoteListItem, 0, len(doc.Articles))
	for _, a := range doc.Articles {
		items = append(items, domain.RemoteListItem{
			ID:    a.ID,
			Title: a.Fields.fields.Value(domain.FieldTitle),
		})
	}
	return items, doc.TotalCount, nil
}

type xmlArticle struct {
	ID     int64     `xml:"id"`
	FeedID int64     `xml:"feedId"`
	State  string    `xml:"state"`
	Fields xmlFields `xml:"fields"`
}

func decodeArticleXML(body []byte) (*domain.RemoteArticle, error) {
	var doc xmlArticle
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode article: %w", err)
	}
	return &domain.RemoteArticle{
		ID:     doc.ID,
		FeedID: doc.FeedID,
		State:  doc.State,
		Fields: doc.Fields.fields,
	}, nil
}

type xmlCategories struct {
	Categories []struct {
		ID   int64  `xml:"id"`
		Name string `xml:"name"`
	} `xml:"category"`
}

func decodeCategoriesXML(body []byte) ([]domain.RemoteCategory, error) {
	var doc xmlCategories
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}

	categories := make([]domain.RemoteCategory, 0, len(doc.Categories))
	for _, c := range doc.Categories {
		categories = append(categories, domain.RemoteCategory{ID: c.ID, Name: c.Name})
	}
	return categories, nil
}

type xmlPhotos struct {
	Photos []struct {
		ID          int64  `xml:"id"`
		Caption     string `xml:"caption"`
		HTMLAlt     string `xml:"htmlAlt"`
		Orientation string `xml:"orientation"`
		Instances   []struct {
			URL    string `xml:"url"`
			Width  int    `xml:"width"`
			Height int    `xml:"height"`
			Type   string `xml:"type"`
		} `xml:"instances>instance"`
	} `xml:"photo"`
}

func decodePhotosXML(body []byte) ([]domain.RemotePhoto, error) {
	var doc xmlPhotos
	if err := xml.Unmarshal(body, &doc); err != nil {
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

type xmlFeeds struct {
	Feeds []struct {
		ID   int64  `xml:"id"`
		Name string `xml:"name"`
	} `xml:"feed"`
}

func decodeFeedsXML(body []byte) ([]domain.RemoteFeed, error) {
	var doc xmlFeeds
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode feeds: %w", err)
	}

	feeds := make([]domain.RemoteFeed, 0, len(doc.Feeds))
	for _, f := range doc.Feeds {
		feeds = append(feeds, domain.RemoteFeed{ID: f.ID, Name: f.Name})
	}
	return feeds, nil
}

type xmlPhotoLocation struct {
	Location string `xml:"location"`
}

func decodeLocationXML(body []byte) (string, error) {
	var doc xmlPhotoLocation
	if err := xml.Unmarshal(body, &doc); err != nil {
		return "", fmt.Errorf("decode photo location: %w", err)
	}
	if doc.Location == "" {
		return "", fmt.Errorf("photo location missing from response")
	}
	return doc.Location, nil
}

type xmlVideoOutput struct {
	EmbedCode string `xml:"embedCode"`
}

func decodeEmbedXML(body []byte) (domain.VideoEmbed, error) {
	var doc xmlVideoOutput
	if err := xml.Unmarshal(body, &doc); err != nil {
		return domain.VideoEmbed{}, fmt.Errorf("decode video output: %w", err)
	}
	return domain.VideoEmbed{EmbedCode: doc.EmbedCode}, nil
}
