package wholesale

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AccessKeyRepository defines the interface for access key persistence
type AccessKeyRepository interface {
	// Save creates or updates an access key
	Save(ctx context.Context, key *AccessKey) error

	// FindByID finds a key by ID
	FindByID(ctx context.Context, id uuid.UUID) (*AccessKey, error)

	// FindActive lists active keys whose expiry is unset or after now,
	// newest first
	FindActive(ctx context.Context, now time.Time) ([]AccessKey, error)
}

// AccessRequestRepository defines the interface for access request persistence
type AccessRequestRepository interface {
	// Save creates or updates an access request
	Save(ctx context.Context, request *AccessRequest) error

	// FindByID finds a request by ID
	FindByID(ctx context.Context, id uuid.UUID) (*AccessRequest, error)

	// FindByStatus lists requests in a review state, newest first
	FindByStatus(ctx context.Context, status RequestStatus) ([]AccessRequest, error)
}
