package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation collapsed", "Big, Storm: Hits!", "big-storm-hits"},
		{"leading and trailing stripped", "  --Breaking News-- ", "breaking-news"},
		{"digits kept", "Top 10 Stories of 2011", "top-10-stories-of-2011"},
		{"symbol runs collapse to one dash", "a///b...c", "a-b-c"},
		{"empty", "", ""},
		{"only punctuation", "?!?", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.title))
		})
	}
}

func TestMakeIsDeterministic(t *testing.T) {
	title := "Some; Oddly! Punctuated — Title"
	assert.Equal(t, Make(title), Make(title))
}

func TestLegacy(t *testing.T) {
	assert.Equal(t, "hello-world-42", Legacy("Hello, World.", 42))

	// Symbols outside the legacy punctuation set are dropped, not dashed.
	assert.Equal(t, "big-storm-hits-7", Legacy("Big, Storm: Hits!", 7))

	// Scanning stops after the sixtieth character.
	long := "aaaaaaaaaa aaaaaaaaaa aaaaaaaaaa aaaaaaaaaa aaaaaaaaaa aaaaaaaaaa aaaa"
	got := Legacy(long, 1)
	assert.LessOrEqual(t, len(got), legacyScanLimit+1+2)
}

func TestCategoryName(t *testing.T) {
	assert.Equal(t, "Health – Fitness", CategoryName(" Health - Fitness "))
	assert.Equal(t, "News", CategoryName("News"))
	assert.Equal(t, "Re–engineering", CategoryName("Re-engineering"))
}
