package commands

import (
	"context"
	"log/slog"

	"rembayung-api/internal/domain/admin"
	reqdto "rembayung-api/internal/handler/dto/request"
	"rembayung-api/internal/pkg/errs"
	"rembayung-api/internal/pkg/jwt"
	"rembayung-api/internal/pkg/password"
	"rembayung-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAdminInactive        = errs.New("admin inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	AdminID   uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	readStore  queries.AdminReadStore
	adminRepo  AdminRepository
	jwtService *jwt.Service
}

func NewAuthCommands(readStore queries.AdminReadStore, adminRepo AdminRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	adminView, err := a.validateAdmin(ctx, credentials)
	if err != nil {
		return nil, err
	}

	tokenPair, err := a.generateTokenPair(adminView.ID)
	if err != nil {
		return nil, err
	}

	if updateErr := a.adminRepo.UpdateLastLogin(ctx, adminView.ID); updateErr != nil {
		// Not critical: the session is already established.
		slog.Warn("failed to update last login", "admin_id", adminView.ID, "error", updateErr.Error())
	}

	return &LoginResult{
		AdminID:   adminView.ID,
		TokenPair: tokenPair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// The admin must still exist and be active for the session to renew.
	adminView, err := a.readStore.FindByID(ctx, claims.AdminID)
	if err != nil || adminView == nil {
		return nil, ErrTokenValidation
	}
	if !adminView.IsActive {
		return nil, ErrAdminInactive
	}

	return a.generateTokenPair(claims.AdminID)
}

// validateAdmin deliberately collapses "unknown email" and "wrong password"
// into the same error to prevent account enumeration.
func (a *authCommandsImpl) validateAdmin(ctx context.Context, credentials admin.Credentials) (*queries.AdminView, error) {
	adminView, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil || adminView == nil {
		return nil, ErrInvalidCredentials
	}

	if !adminView.IsActive {
		return nil, ErrAdminInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return adminView, nil
}

func (a *authCommandsImpl) generateTokenPair(adminID uuid.UUID) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(adminID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(adminID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
