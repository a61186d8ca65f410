package wholesale

import (
	"time"

	"github.com/google/uuid"

	"github.com/meatdirect/backend/internal/domain/shared"
)

// RequestStatus is the review state of a wholesale access request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusDeclined RequestStatus = "declined"
)

// IsValid checks if the status is a valid RequestStatus
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusDeclined:
		return true
	}
	return false
}

// AccessRequest is a prospective wholesale customer asking for a code
type AccessRequest struct {
	shared.BaseEntity
	Name        string
	Email       string
	Phone       string
	Company     string
	Message     string
	Status      RequestStatus
	AccessKeyID *uuid.UUID
	AdminNotes  string
	ResolvedAt  *time.Time
}

// NewAccessRequest creates a pending access request
func NewAccessRequest(name, email, phone, company, message string) (*AccessRequest, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}

	return &AccessRequest{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      email,
		Phone:      phone,
		Company:    company,
		Message:    message,
		Status:     RequestStatusPending,
	}, nil
}

// MarkApproved resolves the request, optionally linking the issued key
func (r *AccessRequest) MarkApproved(keyID *uuid.UUID, notes string) {
	r.Status = RequestStatusApproved
	if keyID != nil {
		r.AccessKeyID = keyID
	}
	if notes != "" {
		r.AdminNotes = notes
	}
	now := time.Now()
	r.ResolvedAt = &now
	r.UpdatedAt = now
}

// MarkDeclined resolves the request negatively
func (r *AccessRequest) MarkDeclined(notes string) {
	r.Status = RequestStatusDeclined
	if notes != "" {
		r.AdminNotes = notes
	}
	now := time.Now()
	r.ResolvedAt = &now
	r.UpdatedAt = now
}
