package wholesale

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meatdirect/backend/internal/domain/shared"
	"github.com/meatdirect/backend/internal/domain/wholesale"
	"github.com/meatdirect/backend/internal/infrastructure/auth"
)

// Errors returned by session and code checks. The HTTP layer maps the
// session ones to 401 and the code one to 400.
var (
	ErrInvalidCode    = shared.NewDomainError("INVALID_CODE", "Invalid or expired code.")
	ErrSessionExpired = shared.NewDomainError("SESSION_EXPIRED", "Session expired.")
	ErrSessionInvalid = shared.NewDomainError("INVALID_SESSION", "Invalid session.")
)

// TokenService signs and validates wholesale session tokens
type TokenService interface {
	Generate(keyID uuid.UUID, expiresAt time.Time) (string, error)
	Validate(tokenString string) (*auth.SessionClaims, error)
}

// RequestNotifier tells the wholesale team about new access requests
type RequestNotifier interface {
	NotifyWholesaleRequest(ctx context.Context, req *wholesale.AccessRequest)
}

// AccessService runs the wholesale gate: intake of access requests,
// code verification that mints session tokens, and session checks that
// guard the price list.
type AccessService struct {
	keys          wholesale.AccessKeyRepository
	requests      wholesale.AccessRequestRepository
	tokens        TokenService
	notifier      RequestNotifier
	tokenLifetime time.Duration
	logger        *zap.Logger
	now           func() time.Time
}

// NewAccessService creates a wholesale access service
func NewAccessService(
	keys wholesale.AccessKeyRepository,
	requests wholesale.AccessRequestRepository,
	tokens TokenService,
	notifier RequestNotifier,
	tokenLifetime time.Duration,
	logger *zap.Logger,
) *AccessService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccessService{
		keys:          keys,
		requests:      requests,
		tokens:        tokens,
		notifier:      notifier,
		tokenLifetime: tokenLifetime,
		logger:        logger,
		now:           time.Now,
	}
}

// SubmitRequest stores a wholesale access request and notifies the team
func (s *AccessService) SubmitRequest(ctx context.Context, req SubmitRequestRequest) (*SubmitRequestResponse, error) {
	request, err := wholesale.NewAccessRequest(req.Name, req.Email, req.Phone, req.Company, req.Message)
	if err != nil {
		return nil, err
	}
	if err := s.requests.Save(ctx, request); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyWholesaleRequest(ctx, request)
	}

	s.logger.Info("wholesale access request received",
		zap.String("request_id", request.ID.String()), zap.String("email", request.Email))
	return &SubmitRequestResponse{Status: "received", ID: request.ID.String()}, nil
}

// VerifyCode checks a raw access code against every active key and
// mints a session token on the first match
func (s *AccessService) VerifyCode(ctx context.Context, code string) (*VerifyResult, error) {
	now := s.now()
	candidates, err := s.keys.FindActive(ctx, now)
	if err != nil {
		return nil, err
	}

	var matched *wholesale.AccessKey
	for i := range candidates {
		if candidates[i].CheckCode(code, now) {
			matched = &candidates[i]
			break
		}
	}
	if matched == nil {
		s.logger.Info("invalid wholesale code attempted")
		return nil, ErrInvalidCode
	}

	expiry := matched.TokenExpiry(now, s.tokenLifetime)
	maxAge := expiry.Sub(now)
	if maxAge <= 0 {
		return nil, ErrInvalidCode
	}

	token, err := s.tokens.Generate(matched.ID, expiry)
	if err != nil {
		return nil, err
	}

	matched.RecordUse(now)
	if err := s.keys.Save(ctx, matched); err != nil {
		// usage stats are advisory, the session is already minted
		s.logger.Warn("failed to record access key use",
			zap.String("key_id", matched.ID.String()), zap.Error(err))
	}

	return &VerifyResult{
		Token:     token,
		MaxAge:    maxAge,
		ExpiresAt: expiry,
		KeyLabel:  matched.Label,
	}, nil
}

// ValidateSession checks a session token and the key behind it
func (s *AccessService) ValidateSession(ctx context.Context, token string) (*SessionInfo, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, ErrSessionExpired
		}
		return nil, ErrSessionInvalid
	}

	keyID, err := claims.GetKeyUUID()
	if err != nil {
		return nil, ErrSessionInvalid
	}

	now := s.now()
	if claims.ExpiresAt == nil || !claims.ExpiresAt.Time.After(now) {
		return nil, ErrSessionExpired
	}

	key, err := s.keys.FindByID(ctx, keyID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, err
	}
	if !key.IsActive || key.IsExpired(now) {
		return nil, ErrSessionExpired
	}

	return &SessionInfo{
		Active:    true,
		ExpiresAt: claims.ExpiresAt.Time,
		KeyLabel:  key.Label,
	}, nil
}

// Catalog returns the wholesale price list for a valid session
func (s *AccessService) Catalog(ctx context.Context, token string) (*CatalogResponse, error) {
	session, err := s.ValidateSession(ctx, token)
	if err != nil {
		return nil, err
	}
	return &CatalogResponse{
		Items:     wholesale.Catalog,
		ExpiresAt: session.ExpiresAt,
	}, nil
}
