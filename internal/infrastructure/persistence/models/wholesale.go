package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/meatdirect/backend/internal/domain/shared"
	"github.com/meatdirect/backend/internal/domain/wholesale"
)

// AccessKeyModel is the persistence model for a wholesale access key.
type AccessKeyModel struct {
	BaseModel
	Label      string     `gorm:"type:varchar(100)"`
	CodeHash   string     `gorm:"type:varchar(100);not null"`
	IsActive   bool       `gorm:"not null;default:true;index"`
	ExpiresAt  *time.Time `gorm:"index"`
	CreatedBy  string     `gorm:"type:varchar(100)"`
	UsageCount int64      `gorm:"not null;default:0"`
	LastUsedAt *time.Time
}

// TableName returns the table name for GORM
func (AccessKeyModel) TableName() string {
	return "wholesale_access_keys"
}

// ToDomain converts the persistence model to a domain AccessKey.
func (m *AccessKeyModel) ToDomain() *wholesale.AccessKey {
	return &wholesale.AccessKey{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Label:      m.Label,
		CodeHash:   m.CodeHash,
		IsActive:   m.IsActive,
		ExpiresAt:  m.ExpiresAt,
		CreatedBy:  m.CreatedBy,
		UsageCount: m.UsageCount,
		LastUsedAt: m.LastUsedAt,
	}
}

// AccessKeyModelFromDomain creates a new persistence model from a domain AccessKey.
func AccessKeyModelFromDomain(k *wholesale.AccessKey) *AccessKeyModel {
	m := &AccessKeyModel{}
	m.FromDomainBaseEntity(k.BaseEntity)
	m.Label = k.Label
	m.CodeHash = k.CodeHash
	m.IsActive = k.IsActive
	m.ExpiresAt = k.ExpiresAt
	m.CreatedBy = k.CreatedBy
	m.UsageCount = k.UsageCount
	m.LastUsedAt = k.LastUsedAt
	return m
}

// AccessRequestModel is the persistence model for a wholesale access request.
type AccessRequestModel struct {
	BaseModel
	Name        string     `gorm:"type:varchar(200);not null"`
	Email       string     `gorm:"type:varchar(254);not null"`
	Phone       string     `gorm:"type:varchar(32)"`
	Company     string     `gorm:"type:varchar(200)"`
	Message     string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	AccessKeyID *uuid.UUID `gorm:"type:uuid;index"`
	AdminNotes  string     `gorm:"type:text"`
	ResolvedAt  *time.Time
}

// TableName returns the table name for GORM
func (AccessRequestModel) TableName() string {
	return "wholesale_access_requests"
}

// ToDomain converts the persistence model to a domain AccessRequest.
func (m *AccessRequestModel) ToDomain() *wholesale.AccessRequest {
	return &wholesale.AccessRequest{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Company:     m.Company,
		Message:     m.Message,
		Status:      wholesale.RequestStatus(m.Status),
		AccessKeyID: m.AccessKeyID,
		AdminNotes:  m.AdminNotes,
		ResolvedAt:  m.ResolvedAt,
	}
}

// AccessRequestModelFromDomain creates a new persistence model from a domain AccessRequest.
func AccessRequestModelFromDomain(r *wholesale.AccessRequest) *AccessRequestModel {
	m := &AccessRequestModel{}
	m.FromDomainBaseEntity(r.BaseEntity)
	m.Name = r.Name
	m.Email = r.Email
	m.Phone = r.Phone
	m.Company = r.Company
	m.Message = r.Message
	m.Status = string(r.Status)
	m.AccessKeyID = r.AccessKeyID
	m.AdminNotes = r.AdminNotes
	m.ResolvedAt = r.ResolvedAt
	return m
}
