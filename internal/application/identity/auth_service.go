package identity

import (
	"context"

	"go.uber.org/zap"

	"github.com/finbooks/backend/internal/domain/identity"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/infrastructure/auth"
)

// AuthService handles login and logout. Failed logins are
// indistinguishable to the caller whether the username is unknown, the
// password is wrong, or the account is disallowed.
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Login authenticates a user and issues an access token
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.FindByUsernameWithHash(ctx, input.Username)
	if err != nil {
		s.logger.Warn("login failed, unknown username", zap.String("username", input.Username))
		return nil, shared.ErrInvalidCredentials
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("login failed, wrong password", zap.String("username", input.Username))
		return nil, shared.ErrInvalidCredentials
	}

	if !user.CanLogin() {
		s.logger.Warn("login failed, account disallowed", zap.String("username", input.Username))
		return nil, shared.ErrInvalidCredentials
	}

	companyCode := user.CompanyCode
	if input.CompanyCode != "" {
		companyCode = input.CompanyCode
	}
	locationCode := user.LocationCode
	if input.LocationCode != "" {
		locationCode = input.LocationCode
	}
	yearCode := user.YearCode
	if input.YearCode != "" {
		yearCode = input.YearCode
	}

	token, err := s.jwtService.GenerateToken(auth.GenerateTokenInput{
		UserID:       user.ID,
		Username:     user.Username,
		Role:         string(user.Role),
		CompanyCode:  companyCode,
		LocationCode: locationCode,
		YearCode:     yearCode,
	})
	if err != nil {
		s.logger.Error("failed to generate token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication token")
	}

	// The hash travelled only for verification; scrub it before the
	// user leaves the service.
	user.PasswordHash = ""

	s.logger.Info("user logged in",
		zap.String("username", user.Username),
		zap.String("user_id", user.ID))

	return &LoginResult{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
		User:        toUserDTO(user),
	}, nil
}

// Logout revokes the presented token for its remaining lifetime
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.jwtService.ValidateToken(tokenString)
	if err != nil {
		// An already expired or invalid token has nothing to revoke.
		return nil
	}

	ttl := claims.GetRemainingTTL()
	if ttl <= 0 {
		return nil
	}

	if err := s.blacklist.Revoke(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("failed to revoke token",
			zap.String("user_id", claims.UserID), zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke token")
	}

	s.logger.Info("user logged out", zap.String("user_id", claims.UserID))
	return nil
}

// ChangePassword verifies the current password and stores a new one
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	withHash, err := s.userRepo.FindByUsernameWithHash(ctx, user.Username)
	if err != nil {
		return err
	}
	if !withHash.VerifyPassword(currentPassword) {
		return shared.ErrInvalidCredentials
	}

	if err := withHash.SetPassword(newPassword); err != nil {
		return err
	}
	if err := s.userRepo.Update(ctx, withHash); err != nil {
		s.logger.Error("failed to update password", zap.String("user_id", userID), zap.Error(err))
		return err
	}

	s.logger.Info("password changed", zap.String("user_id", userID))
	return nil
}
