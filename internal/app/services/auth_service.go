package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devkip/clubhub/internal/app/models"
	"github.com/devkip/clubhub/internal/app/models/dto"
	"github.com/devkip/clubhub/internal/app/repositories"
	"github.com/devkip/clubhub/internal/pkg/apperrors"
	"github.com/devkip/clubhub/internal/pkg/auth"
	"github.com/devkip/clubhub/internal/pkg/email"
	"github.com/devkip/clubhub/internal/pkg/validation"
)

const verificationTokenTTL = 24 * time.Hour

// AuthService handles registration, sign-in and token lifecycle
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, emailAddr, password string) (*dto.TokenResponse, error)
	GoogleSignIn(ctx context.Context, code string) (*dto.TokenResponse, error)
	GoogleAuthURL(state string) (string, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	VerifyEmail(ctx context.Context, token string) error
	ResendVerificationEmail(ctx context.Context, emailAddr string) error
	ForgotPassword(ctx context.Context, emailAddr string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo       *repositories.UserRepository
	tokenRepo      *repositories.TokenRepository
	verifTokenRepo *repositories.VerificationTokenRepository
	resetTokenRepo *repositories.PasswordResetTokenRepository
	profileService ProfileService
	jwtService     *auth.JWTService
	emailService   email.EmailService
	googleProvider *auth.GoogleProvider
	logger         zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	verifTokenRepo *repositories.VerificationTokenRepository,
	resetTokenRepo *repositories.PasswordResetTokenRepository,
	profileService ProfileService,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	googleProvider *auth.GoogleProvider,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:       userRepo,
		tokenRepo:      tokenRepo,
		verifTokenRepo: verifTokenRepo,
		resetTokenRepo: resetTokenRepo,
		profileService: profileService,
		jwtService:     jwtService,
		emailService:   emailService,
		googleProvider: googleProvider,
		logger:         logger,
	}
}

// Register creates a user account, its profile record and sends the
// verification email
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))
	if !validation.CompiledPatterns.Email.MatchString(emailAddr) {
		return nil, apperrors.ErrInvalidEmail
	}
	if len(req.Password) < validation.PasswordMinLength {
		return nil, apperrors.ErrInvalidPassword
	}
	if req.StudentID != "" && !validation.CompiledPatterns.StudentID.MatchString(req.StudentID) {
		return nil, apperrors.ErrValidationFailed
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     emailAddr,
		Password:  hashedPassword,
		Name:      strings.TrimSpace(req.Name),
		StudentID: req.StudentID,
		IsActive:  true,
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.profileService.CreateInitial(ctx, userID, user.Name, emailAddr, req.StudentID); err != nil {
		s.logger.Error().Err(err).Int64("userId", userID).Msg("Failed to create initial profile")
	}

	token := uuid.New().String()
	if err := s.verifTokenRepo.CreateToken(ctx, userID, token, time.Now().Add(verificationTokenTTL)); err != nil {
		return nil, err
	}
	if err := s.emailService.SendVerificationEmail(emailAddr, user.Name, token); err != nil {
		s.logger.Error().Err(err).Str("email", emailAddr).Msg("Failed to send verification email")
	}

	s.logger.Info().Int64("userId", userID).Str("email", emailAddr).Msg("User registered")

	return &dto.RegisterResponse{
		UserID:  userID,
		Email:   emailAddr,
		Message: "Registration successful. Please check your email to verify your account.",
	}, nil
}

// Login authenticates with email and password. Unverified accounts are
// refused before the password is even checked against a token pair.
func (s *authServiceImpl) Login(ctx context.Context, emailAddr, password string) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(emailAddr)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsEmailVerified {
		return nil, apperrors.ErrEmailNotVerified
	}

	return s.issueTokens(ctx, user)
}

// GoogleAuthURL returns the provider consent URL for the given state
func (s *authServiceImpl) GoogleAuthURL(state string) (string, error) {
	if !s.googleProvider.Enabled() {
		return "", apperrors.ErrValidationFailed
	}
	return s.googleProvider.AuthURL(state), nil
}

// GoogleSignIn exchanges the OAuth code and signs the user in, creating the
// account and profile on first contact. Google-verified emails skip the
// local verification step.
func (s *authServiceImpl) GoogleSignIn(ctx context.Context, code string) (*dto.TokenResponse, error) {
	if !s.googleProvider.Enabled() {
		return nil, apperrors.ErrValidationFailed
	}

	gUser, err := s.googleProvider.Exchange(ctx, code)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByGoogleID(ctx, gUser.ID)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	if user == nil {
		// fall back to the email: an existing password account gets linked
		user, err = s.userRepo.FindByEmail(ctx, strings.ToLower(gUser.Email))
		if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, err
		}
	}

	if user == nil {
		googleID := gUser.ID
		newUser := &models.User{
			Email:           strings.ToLower(gUser.Email),
			Name:            gUser.Name,
			GoogleID:        &googleID,
			IsEmailVerified: gUser.VerifiedEmail,
			IsActive:        true,
		}
		userID, err := s.userRepo.Create(ctx, newUser)
		if err != nil {
			return nil, err
		}
		newUser.ID = userID
		user = newUser

		if err := s.profileService.CreateInitial(ctx, userID, gUser.Name, newUser.Email, ""); err != nil {
			s.logger.Error().Err(err).Int64("userId", userID).Msg("Failed to create initial profile")
		}
		s.logger.Info().Int64("userId", userID).Msg("User registered via Google")
	}

	if !user.IsEmailVerified && gUser.VerifiedEmail {
		if err := s.userRepo.MarkEmailVerified(ctx, user.ID); err != nil {
			return nil, err
		}
		user.IsEmailVerified = true
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken rotates the refresh token and issues a new access token
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, err := s.tokenRepo.GetTokenUser(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the presented refresh token
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.RevokeToken(ctx, refreshToken)
}

// VerifyEmail consumes a verification token and marks the account verified
func (s *authServiceImpl) VerifyEmail(ctx context.Context, token string) error {
	userID, expiry, err := s.verifTokenRepo.GetTokenInfo(ctx, token)
	if err != nil {
		return err
	}
	if time.Now().After(expiry) {
		return apperrors.ErrTokenExpired
	}

	if err := s.userRepo.MarkEmailVerified(ctx, userID); err != nil {
		return err
	}
	if err := s.verifTokenRepo.DeleteToken(ctx, token); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to delete consumed verification token")
	}

	if user, err := s.userRepo.FindByID(ctx, userID); err == nil {
		if err := s.emailService.SendWelcomeEmail(user.Email, user.Name); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to send welcome email")
		}
	}

	s.logger.Info().Int64("userId", userID).Msg("Email verified")
	return nil
}

// ResendVerificationEmail replaces any outstanding verification token with
// a fresh one. Already verified accounts are refused.
func (s *authServiceImpl) ResendVerificationEmail(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(emailAddr)))
	if err != nil {
		return err
	}
	if user.IsEmailVerified {
		return apperrors.ErrValidationFailed
	}

	if err := s.verifTokenRepo.DeleteUserTokens(ctx, user.ID); err != nil {
		return err
	}

	token := uuid.New().String()
	if err := s.verifTokenRepo.CreateToken(ctx, user.ID, token, time.Now().Add(verificationTokenTTL)); err != nil {
		return err
	}

	return s.emailService.SendVerificationEmail(user.Email, user.Name, token)
}

// ForgotPassword issues a reset token. An unknown email is not revealed to
// the caller.
func (s *authServiceImpl) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(emailAddr)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Info().Str("email", emailAddr).Msg("Password reset requested for unknown email")
			return nil
		}
		return err
	}

	token := uuid.New().String()
	if err := s.resetTokenRepo.CreateToken(ctx, user.ID, token, time.Now().Add(time.Hour)); err != nil {
		return err
	}

	return s.emailService.SendPasswordResetEmail(user.Email, user.Name, token)
}

// ResetPassword consumes a reset token and replaces the password, revoking
// every live session
func (s *authServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < validation.PasswordMinLength {
		return apperrors.ErrInvalidPassword
	}

	userID, expiry, used, err := s.resetTokenRepo.GetTokenInfo(ctx, token)
	if err != nil {
		return err
	}
	if used {
		return apperrors.ErrTokenInvalid
	}
	if time.Now().After(expiry) {
		return apperrors.ErrTokenExpired
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return err
	}
	if err := s.resetTokenRepo.MarkTokenAsUsed(ctx, token); err != nil {
		return err
	}
	if err := s.tokenRepo.RevokeAllUserTokens(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Int64("userId", userID).Msg("Failed to revoke sessions after password reset")
	}

	s.logger.Info().Int64("userId", userID).Msg("Password reset completed")
	return nil
}

func (s *authServiceImpl) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to record last login")
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
		TokenType:        "Bearer",
	}, nil
}
