package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"startup-nexus.backend/internal/domain/entities"
	domainerrors "startup-nexus.backend/internal/domain/errors"
	"startup-nexus.backend/internal/domain/repositories"
	"startup-nexus.backend/pkg/crypto"
	"startup-nexus.backend/pkg/jwt"
	"startup-nexus.backend/pkg/logger"
	"startup-nexus.backend/pkg/redis"
	"startup-nexus.backend/pkg/utils"
)

// SessionStore keeps server-side sessions for clients that opt out of bearer tokens.
type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// AuthOptions tunes login behaviour.
type AuthOptions struct {
	MasterAdminEmail string
	// StrictPasswords turns the unchecked login into a real bcrypt check.
	StrictPasswords bool
}

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
	sessions   SessionStore
	screen     *EmailScreen
	opts       AuthOptions
	now        func() time.Time
}

var (
	hashPassword      = crypto.HashPassword
	generateSessionID = crypto.GenerateSessionID
)

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	jwtService *jwt.JWTService,
	sessions SessionStore,
	screen *EmailScreen,
	opts AuthOptions,
) *AuthUsecase {
	opts.MasterAdminEmail = utils.NormalizeEmail(opts.MasterAdminEmail)
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
		sessions:   sessions,
		screen:     screen,
		opts:       opts,
		now:        time.Now,
	}
}

// Signup creates a startup or talent account and logs it in.
func (u *AuthUsecase) Signup(ctx context.Context, input *entities.SignupInput) (*entities.AuthResponse, error) {
	role, ok := entities.ParseUserRole(input.Role)
	if !ok || role == entities.UserRoleAdmin {
		return nil, domainerrors.BadRequest("role must be startup or talent")
	}

	email := utils.NormalizeEmail(input.Email)
	if _, _, ok := utils.SplitEmail(email); !ok {
		return nil, domainerrors.BadRequest("invalid email address")
	}
	if role == entities.UserRoleStartup && u.screen.IsFreeMail(email) {
		return nil, domainerrors.ErrCorporateEmail
	}

	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.Conflict("email already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: passwordHash,
		Role:         role,
		Status:       entities.UserStatusActive,
		LastLoginAt:  null.TimeFrom(u.now()),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("email already registered")
		}
		return nil, err
	}

	logger.Info(ctx, "User signed up", zap.String("user_id", user.ID.String()), zap.String("role", string(role)))
	return u.issue(ctx, user, false)
}

// Login accepts any password unless strict passwords are enabled. Unknown
// emails get an account on the fly with the requested non-admin role.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	email := utils.NormalizeEmail(input.Email)
	local, _, ok := utils.SplitEmail(email)
	if !ok {
		return nil, domainerrors.BadRequest("invalid email address")
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		if u.opts.StrictPasswords {
			return nil, domainerrors.ErrInvalidCredentials
		}
		user, err = u.createOnLogin(ctx, email, local, input)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if user.IsBanned() {
			return nil, domainerrors.ErrUserBanned
		}
		if u.opts.StrictPasswords && !crypto.CheckPassword(input.Password, user.PasswordHash) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		if u.isMasterAdmin(email) {
			user.Role = entities.UserRoleAdmin
		}
		user.LastLoginAt = null.TimeFrom(u.now())
		if err := u.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	return u.issue(ctx, user, input.UseSession)
}

func (u *AuthUsecase) createOnLogin(ctx context.Context, email, local string, input *entities.LoginInput) (*entities.User, error) {
	role, ok := entities.ParseUserRole(input.Role)
	if !ok || role == entities.UserRoleAdmin {
		role = entities.UserRoleTalent
	}
	if u.isMasterAdmin(email) {
		role = entities.UserRoleAdmin
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = local
	}

	var passwordHash string
	if input.Password != "" {
		h, err := hashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		passwordHash = h
	}

	user := &entities.User{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         role,
		Status:       entities.UserStatusActive,
		LastLoginAt:  null.TimeFrom(u.now()),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	logger.Info(ctx, "User created on first login", zap.String("user_id", user.ID.String()), zap.String("role", string(role)))
	return user, nil
}

func (u *AuthUsecase) issue(ctx context.Context, user *entities.User, useSession bool) (*entities.AuthResponse, error) {
	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	if !useSession {
		return &entities.AuthResponse{
			AccessToken:  tokenPair.AccessToken,
			RefreshToken: tokenPair.RefreshToken,
			User:         user,
		}, nil
	}

	if u.sessions == nil {
		return nil, domainerrors.InternalError(errors.New("session store not configured"))
	}
	sessionID, err := generateSessionID()
	if err != nil {
		return nil, err
	}
	err = u.sessions.CreateSession(ctx, sessionID, &redis.SessionData{
		UserID:       user.ID.String(),
		Email:        user.Email,
		Role:         string(user.Role),
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		CreatedAt:    u.now(),
	}, u.jwtService.RefreshExpiry())
	if err != nil {
		return nil, err
	}
	return &entities.AuthResponse{SessionID: sessionID, User: user}, nil
}

// Logout drops the server-side session. Token-only clients just forget their tokens.
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" || u.sessions == nil {
		return nil
	}
	return u.sessions.DeleteSession(ctx, sessionID)
}

// Refresh re-issues a token pair for a still active user.
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateTyped(refreshToken, jwt.TokenTypeRefresh)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, domainerrors.ErrTokenExpired
		}
		return nil, domainerrors.ErrUnauthorized
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}
		return nil, err
	}
	if user.IsBanned() {
		return nil, domainerrors.ErrUserBanned
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
}

// Me returns the current user.
func (u *AuthUsecase) Me(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

func (u *AuthUsecase) isMasterAdmin(email string) bool {
	return u.opts.MasterAdminEmail != "" && utils.NormalizeEmail(email) == u.opts.MasterAdminEmail
}
