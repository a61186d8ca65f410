package models

import (
	"github.com/meatdirect/backend/internal/domain/catalog"
	"github.com/meatdirect/backend/internal/domain/shared"
)

// ProductModel is the persistence model for the Product aggregate.
type ProductModel struct {
	BaseModel
	Name         string `gorm:"type:varchar(200);not null"`
	Slug         string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Description  string `gorm:"type:text"`
	PriceCents   int64  `gorm:"not null;default:0"`
	ImageURL     string `gorm:"type:varchar(500)"`
	MainImageURL string `gorm:"type:varchar(500)"`
	Category     string `gorm:"type:varchar(100);index"`
	IsActive     bool   `gorm:"not null;default:true;index"`
	IsPopular    bool   `gorm:"not null;default:false"`

	SquareItemID      string `gorm:"type:varchar(64);index"`
	SquareVariationID string `gorm:"type:varchar(64);uniqueIndex"`
	SquareQuantity    int64  `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product aggregate.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
		},
		Name:              m.Name,
		Slug:              m.Slug,
		Description:       m.Description,
		PriceCents:        m.PriceCents,
		ImageURL:          m.ImageURL,
		MainImageURL:      m.MainImageURL,
		Category:          m.Category,
		IsActive:          m.IsActive,
		IsPopular:         m.IsPopular,
		SquareItemID:      m.SquareItemID,
		SquareVariationID: m.SquareVariationID,
		SquareQuantity:    m.SquareQuantity,
	}
}

// FromDomain populates the persistence model from a domain Product aggregate.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Slug = p.Slug
	m.Description = p.Description
	m.PriceCents = p.PriceCents
	m.ImageURL = p.ImageURL
	m.MainImageURL = p.MainImageURL
	m.Category = p.Category
	m.IsActive = p.IsActive
	m.IsPopular = p.IsPopular
	m.SquareItemID = p.SquareItemID
	m.SquareVariationID = p.SquareVariationID
	m.SquareQuantity = p.SquareQuantity
}

// ProductModelFromDomain creates a new persistence model from a domain Product aggregate.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}

// StorefrontSettingsModel is the persistence model for storefront settings.
type StorefrontSettingsModel struct {
	BaseModel
	LargeCutsCategory string `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (StorefrontSettingsModel) TableName() string {
	return "storefront_settings"
}

// ToDomain converts the persistence model to domain StorefrontSettings.
func (m *StorefrontSettingsModel) ToDomain() *catalog.StorefrontSettings {
	return &catalog.StorefrontSettings{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		LargeCutsCategory: m.LargeCutsCategory,
	}
}

// StorefrontSettingsModelFromDomain creates a new persistence model from domain StorefrontSettings.
func StorefrontSettingsModelFromDomain(s *catalog.StorefrontSettings) *StorefrontSettingsModel {
	m := &StorefrontSettingsModel{}
	m.FromDomainBaseEntity(s.BaseEntity)
	m.LargeCutsCategory = s.LargeCutsCategory
	return m
}
