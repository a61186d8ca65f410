package catalog

import (
	"github.com/meatdirect/backend/internal/domain/shared"
)

// StorefrontSettings is a single-row configuration record for the
// public storefront. An empty LargeCutsCategory means the frontend
// falls back to automatic large-cut detection.
type StorefrontSettings struct {
	shared.BaseEntity
	LargeCutsCategory string
}

// NewStorefrontSettings creates the settings row
func NewStorefrontSettings(largeCutsCategory string) *StorefrontSettings {
	return &StorefrontSettings{
		BaseEntity:        shared.NewBaseEntity(),
		LargeCutsCategory: largeCutsCategory,
	}
}

// SetLargeCutsCategory updates the category shown on the Large Cuts page
func (s *StorefrontSettings) SetLargeCutsCategory(category string) {
	s.LargeCutsCategory = category
	s.Touch()
}
