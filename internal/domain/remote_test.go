package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsPreserveInsertionOrder(t *testing.T) {
	f := NewFields()
	f.Set("headline", "one")
	f.Set("body", "two")
	f.Set("extract", "three")

	assert.Equal(t, []string{"headline", "body", "extract"}, f.Keys())
	assert.Equal(t, 3, f.Len())
}

func TestFieldsSetExistingKeyKeepsPosition(t *testing.T) {
	f := NewFields()
	f.Set("a", "1")
	f.Set("b", "2")
	f.Set("a", "updated")

	assert.Equal(t, []string{"a", "b"}, f.Keys())
	assert.Equal(t, "updated", f.Value("a"))
}

func TestFieldsValueMissingKey(t *testing.T) {
	f := NewFields()

	assert.Equal(t, "", f.Value("absent"))
	assert.False(t, f.Has("absent"))

	_, ok := f.Get("absent")
	assert.False(t, ok)
}

func TestRequireReportsAllMissingKeys(t *testing.T) {
	f := NewFields()
	f.Set(FieldTitle, "Big Storm Hits")

	err := f.Require(FieldTitle, FieldContent, FieldDate)
	require.Error(t, err)

	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{FieldContent, FieldDate}, missing.Missing)
	assert.Contains(t, err.Error(), "content, date")
}

func TestRequirePassesWhenAllPresent(t *testing.T) {
	f := NewFields()
	f.Set(FieldTitle, "Big Storm Hits")
	f.Set(FieldContent, "<p>body</p>")

	assert.NoError(t, f.Require(FieldTitle, FieldContent))
}

func TestRequireCountsEmptyValueAsPresent(t *testing.T) {
	f := NewFields()
	f.Set(FieldExtract, "")

	// The contract is about keys, not values: an empty string satisfies it.
	assert.NoError(t, f.Require(FieldExtract))
}
