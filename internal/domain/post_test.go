package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDateSource(t *testing.T) {
	cases := []struct {
		in   string
		want DateSource
		ok   bool
	}{
		{"published", DatePublished, true},
		{"", DatePublished, true},
		{"created", DateCreated, true},
		{"last-modified", DateLastModified, true},
		{"modified", DatePublished, false},
	}

	for _, tc := range cases {
		got, ok := ParseDateSource(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if ok {
			assert.Equal(t, tc.want, got, tc.in)
		}
	}
}

func TestDateSourceFieldName(t *testing.T) {
	assert.Equal(t, FieldPublishDate, DatePublished.FieldName())
	assert.Equal(t, FieldCreatedDate, DateCreated.FieldName())
	assert.Equal(t, FieldLastModifiedDate, DateLastModified.FieldName())
}

func TestParseImportMode(t *testing.T) {
	cases := []struct {
		in   string
		want ImportMode
		ok   bool
	}{
		{"articles", ModeArticles, true},
		{"", ModeArticles, true},
		{"videos", ModeVideos, true},
		{"both", ModeBoth, true},
		{"none", ModeNone, true},
		{"everything", ModeNone, false},
	}

	for _, tc := range cases {
		got, ok := ParseImportMode(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if ok {
			assert.Equal(t, tc.want, got, tc.in)
		}
	}
}

func TestImportModePasses(t *testing.T) {
	assert.True(t, ModeArticles.Articles())
	assert.False(t, ModeArticles.Videos())
	assert.False(t, ModeVideos.Articles())
	assert.True(t, ModeVideos.Videos())
	assert.True(t, ModeBoth.Articles())
	assert.True(t, ModeBoth.Videos())
	assert.False(t, ModeNone.Articles())
	assert.False(t, ModeNone.Videos())
}
