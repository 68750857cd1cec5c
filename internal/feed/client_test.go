package feed

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article_importer/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(t *testing.T, baseURL string, format Format) *Client {
	t.Helper()
	c, err := New(Config{
		BaseURL:   baseURL,
		PublicKey: testPublicKey,
		SecretKey: testSecretKey,
		Format:    format,
	}, testLogger())
	require.NoError(t, err)
	return c
}

func TestNewRejectsUnsupportedFormat(t *testing.T) {
	_, err := New(Config{
		BaseURL:   "http://api.example.com/",
		PublicKey: testPublicKey,
		SecretKey: testSecretKey,
		Format:    Format("yaml"),
	}, testLogger())
	require.Error(t, err)
	var formatErr *UnsupportedFormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestNewRejectsMalformedBaseURL(t *testing.T) {
	for _, baseURL := range []string{"", "ftp://api.example.com/", "api.example.com", "http://"} {
		_, err := New(Config{
			BaseURL:   baseURL,
			PublicKey: testPublicKey,
			SecretKey: testSecretKey,
		}, testLogger())
		require.Error(t, err, "base url %q", baseURL)
		var cfgErr *ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	}
}

func TestListItemsXML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/articles.xml", r.URL.Path)
		assert.Equal(t, "fields=title&offset=0&limit=10&feedId=7&state=live", r.URL.RawQuery)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, testPublicKey, user)
		assert.Equal(t, testSecretKey, pass)

		w.Write([]byte(`<articles totalCount="12">
			<article><id>101</id><fields><title>First Story</title></fields></article>
			<article><id>102</id><fields><title>Second Story</title></fields></article>
		</articles>`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, FormatXML)

	items, total, err := c.ListItems(context.Background(), ForFeed(7), "live", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	require.Len(t, items, 2)
	assert.Equal(t, int64(101), items[0].ID)
	assert.Equal(t, "First Story", items[0].Title)
	assert.Equal(t, "Second Story", items[1].Title)
}

func TestListItemsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/articles.json", r.URL.Path)
		w.Write([]byte(`{"totalCount":3,"articles":[{"id":5,"fields":{"title":"Only One"}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, FormatJSON)

	items, total, err := c.ListItems(context.Background(), ForBrief(2), "live", 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Only One", items[0].Title)
}

func TestGetItemPreservesFieldOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/articles/44.xml", r.URL.Path)
		w.Write([]byte(`<article>
			<id>44</id><feedId>7</feedId><state>live</state>
			<fields>
				<title>A Story</title>
				<extract>Short version.</extract>
				<content>Long version.</content>
				<lastModifiedDate>2011-06-08T15:00:00</lastModifiedDate>
			</fields>
		</article>`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, FormatXML)

	article, err := c.GetItem(context.Background(), 44)
	require.NoError(t, err)
	assert.Equal(t, int64(44), article.ID)
	assert.Equal(t, int64(7), article.FeedID)
	assert.Equal(t, "live", article.State)
	assert.Equal(t, []string{"title", "extract", "content", "lastModifiedDate"}, article.Fields.Keys())
	assert.Equal(t, "A Story", article.Fields.Value(domain.FieldTitle))
}

func TestGetItemMissingTitleIsTypedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<article><id>44</id><fields><content>body</content></fields></article>`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, FormatXML)

	_, err := c.GetItem(context.Background(), 44)
	require.Error(t, err)
	var missing *domain.MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{domain.FieldTitle}, missing.Missing)
}

func TestGetCategoriesForItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/articles/44/categories.xml", r.URL.Path)
		w.Write([]byte(`<categories>
			<category><id>1</id><name>Health</name></category>
			<category><id>2</id><name>Fitness</name></category>
		</categories>`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, FormatXML)

	categories, err := c.GetCategoriesForItem(context.Background(), 44)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Health", categories[0].Name)
}

func TestGetPhotosForItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/articles/44/photos.xml", r.URL.Path)
		w.Write([]byte(`<photos>
			<photo>
				<id>9</id>
				<caption>A caption</caption>
				<htmlAlt>Alt text</htmlAlt>
				<orientation>Portrait</orientation>
				<instances>
					<instance><url>http://cdn.example.com/img-t.jpg</url><width>100</width><height>150</height><type>Thumbnail</type></instance>
					<instance><url>http://cdn.example.com/img.jpg</url><width>600</width><height>900</height><type>Large</type></instance>
				</instances>
			</photo>
		</photos>`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, FormatXML)

	photos, err := c.GetPhotosForItem(context.Background(), 44)
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, domain.OrientationPortrait, photos[0].Orientation)
	require.Len(t, photos[0].Instances, 2)
	assert.Equal(t, domain.InstanceThumbnail, photos[0].Instances[0].Type)
	assert.Equal(t, domain.InstanceLarge, photos[0].Instances[1].Type)
}

func TestGetScaledPhotoURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/photos/9.xml", r.URL.Path)
		assert.Equal(t, "scaleAxis=y&scale=300", r.URL.RawQuery)
		w.Write([]byte(`<photo><location>http://cdn.example.com/img-300.jpg</location></photo>`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, FormatXML)

	location, err := c.GetScaledPhotoURL(context.Background(), 9, domain.AxisY, 300)
	require.NoError(t, err)
	assert.Equal(t, "http://cdn.example.com/img-300.jpg", location)
}

func TestGetVideoEmbed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/videoOutputs.xml", r.URL.Path)
		assert.Equal(t, "articleId=44&players=html5:1,flash:10", r.URL.RawQuery)
		w.Write([]byte(`<videoOutput><embedCode>&lt;iframe src="http://player.example.com/44"&gt;&lt;/iframe&gt;</embedCode></videoOutput>`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, FormatXML)

	embed, err := c.GetVideoEmbed(context.Background(), 44, []domain.PlayerPreference{
		{Player: "html5", MinVersion: "1"},
		{Player: "flash", MinVersion: "10"},
	})
	require.NoError(t, err)
	assert.Equal(t, `<iframe src="http://player.example.com/44"></iframe>`, embed.EmbedCode)
}

func TestGetVideoEmbedEmptyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<videoOutput><embedCode></embedCode></videoOutput>`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, FormatXML)

	_, err := c.GetVideoEmbed(context.Background(), 44, nil)
	require.Error(t, err)
	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestFetchErrorOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, FormatXML)

	_, _, err := c.ListItems(context.Background(), ForFeed(1), "live", 0, 10)
	require.Error(t, err)
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.NotContains(t, fetchErr.URI, testSecretKey)
}
