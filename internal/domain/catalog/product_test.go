package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	product, err := NewProduct("Ribeye Steak", "ribeye-steak-abc123", 1850)

	require.NoError(t, err)
	assert.True(t, product.IsActive)
	assert.Equal(t, int64(1850), product.PriceCents)
}

func TestNewProduct_Validation(t *testing.T) {
	_, err := NewProduct("", "slug", 100)
	assert.Error(t, err)

	_, err = NewProduct("Ribeye Steak", "", 100)
	assert.Error(t, err)

	_, err = NewProduct("Ribeye Steak", "slug", -1)
	assert.Error(t, err)
}

func TestProduct_ApplySquareData(t *testing.T) {
	product, err := NewProduct("Old Name", "old-name-x", 100)
	require.NoError(t, err)

	product.ApplySquareData(SquareVariationData{
		ItemID:       "ITEM1",
		VariationID:  "VAR1",
		Name:         "Ribeye Steak (12oz)",
		PriceCents:   2250,
		ImageURL:     "https://img.example.com/ribeye.jpg",
		Description:  "Grass fed",
		CategoryName: "Beef",
	})

	assert.Equal(t, "Ribeye Steak (12oz)", product.Name)
	assert.Equal(t, int64(2250), product.PriceCents)
	assert.Equal(t, "VAR1", product.SquareVariationID)
	assert.Equal(t, "https://img.example.com/ribeye.jpg", product.MainImageURL)
	assert.Equal(t, "Beef", product.Category)
	// Slug is not regenerated on sync
	assert.Equal(t, "old-name-x", product.Slug)
}

func TestProduct_UpdateInventory(t *testing.T) {
	product, err := NewProduct("Ribeye Steak", "ribeye", 100)
	require.NoError(t, err)

	product.UpdateInventory(5)
	assert.Equal(t, int64(5), product.SquareQuantity)
	assert.True(t, product.IsActive)

	product.UpdateInventory(0)
	assert.False(t, product.IsActive)
}

func TestProduct_DecrementCachedQuantity(t *testing.T) {
	product, err := NewProduct("Ribeye Steak", "ribeye", 100)
	require.NoError(t, err)
	product.UpdateInventory(3)

	product.DecrementCachedQuantity(2)
	assert.Equal(t, int64(1), product.SquareQuantity)
	assert.True(t, product.IsActive)

	product.DecrementCachedQuantity(5)
	assert.Equal(t, int64(0), product.SquareQuantity)
	assert.False(t, product.IsActive)
}

func TestGenerateSlug(t *testing.T) {
	s := GenerateSlug("Ribeye Steak (12oz)", "ABCDEF1234567890")
	assert.Equal(t, "ribeye-steak-12oz-abcdef123456", s)
	assert.LessOrEqual(t, len(s), 50)
}

func TestGenerateSlug_EmptyName(t *testing.T) {
	s := GenerateSlug("", "VAR1")
	assert.Equal(t, "product-var1", s)
}

func TestGenerateSlug_Truncates(t *testing.T) {
	s := GenerateSlug("A very long product name that would overflow the slug column easily", "VARIATION123456")
	assert.LessOrEqual(t, len(s), 50)
}
