package service

import (
	"context"
	"encoding/json"
	"time"

	"medstock/internal/dto"
	"medstock/internal/entity"
	"medstock/internal/repository"
	"medstock/internal/utils"
)

const (
	userIDEntropy    = 10
	sessionIDEntropy = 25

	defaultSessionTTL = 30 * 24 * time.Hour
)

// dummyPasswordHash keeps the work factor of a login attempt constant when
// the email is unknown.
const dummyPasswordHash = "$argon2id$v=19$m=19456,t=2,p=1$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

type AuthService struct {
	users        repository.UserRepository
	sessions     repository.SessionRepository
	securityLogs repository.SecurityLogRepository

	passwordHash PasswordHasher
	clock        Clock
	config       AuthConfig
}

func NewAuthService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	securityLogs repository.SecurityLogRepository,
	passwordHash PasswordHasher,
	clock Clock,
	config AuthConfig,
) *AuthService {
	return &AuthService{
		users:        users,
		sessions:     sessions,
		securityLogs: securityLogs,
		passwordHash: passwordHash,
		clock:        clock,
		config:       config,
	}
}

func (s *AuthService) sessionTTL() time.Duration {
	if s.config.SessionTTL > 0 {
		return s.config.SessionTTL
	}
	return defaultSessionTTL
}

// Signup creates the user and an initial session in one step; the caller
// turns the session into a cookie.
func (s *AuthService) Signup(ctx context.Context, input dto.SignupRequest) (*entity.User, *entity.Session, error) {
	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return nil, nil, err
	}

	id, err := utils.NewID(userIDEntropy)
	if err != nil {
		return nil, nil, err
	}

	user := &entity.User{
		ID:             id,
		Name:           input.Name,
		Email:          utils.NormalizeEmail(input.Email),
		PhoneNo:        input.PhoneNo,
		Role:           entity.UserRoleUser,
		Status:         false,
		HashedPassword: &hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	session, err := s.CreateSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	_ = s.logSecurity(ctx, &user.ID, nil, entity.SignupSuccess, map[string]any{"email": user.Email})
	return user, session, nil
}

func (s *AuthService) Login(ctx context.Context, input dto.LoginRequest, ipAddress *string) (*entity.User, *entity.Session, error) {
	email := utils.NormalizeEmail(input.Email)
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil || user.HashedPassword == nil {
		_ = s.passwordHash.Verify(dummyPasswordHash, input.Password)
		_ = s.logSecurity(ctx, nil, ipAddress, entity.LoginFailed, map[string]any{"email": email})
		return nil, nil, ErrInvalidCredentials
	}

	// A disabled account is rejected before the password check so the
	// outcome never depends on credential correctness.
	if user.Status {
		return nil, nil, ErrAccountDisabled
	}

	if !s.passwordHash.Verify(*user.HashedPassword, input.Password) {
		_ = s.logSecurity(ctx, &user.ID, ipAddress, entity.LoginFailed, map[string]any{"email": email})
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.CreateSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	_ = s.logSecurity(ctx, &user.ID, ipAddress, entity.LoginSuccess, nil)
	return user, session, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string, userID *string, ipAddress *string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	_ = s.logSecurity(ctx, userID, ipAddress, entity.Logout, nil)
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, userID string, password, newPassword string) error {
	if password == newPassword {
		return ErrSamePassword
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil || user.HashedPassword == nil {
		return ErrUserNotFound
	}

	if !s.passwordHash.Verify(*user.HashedPassword, password) {
		return ErrWrongPassword
	}

	hash, err := s.passwordHash.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	_ = s.logSecurity(ctx, &userID, nil, entity.PasswordReset, nil)
	return nil
}

func (s *AuthService) CreateSession(ctx context.Context, userID string) (*entity.Session, error) {
	id, err := utils.NewID(sessionIDEntropy)
	if err != nil {
		return nil, err
	}
	session := &entity.Session{
		ID:        id,
		UserID:    userID,
		ExpiresAt: s.clock.Now().Add(s.sessionTTL()),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ValidateSession resolves a cookie value to its session and user. An expired
// session is deleted and reported as invalid (nil, nil). A session past the
// halfway point of its lifetime is extended to a full TTL and reported fresh,
// which tells the middleware to reissue the cookie.
func (s *AuthService) ValidateSession(ctx context.Context, sessionID string) (*entity.Session, *entity.User, bool, error) {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, nil, false, err
	}
	if session == nil {
		return nil, nil, false, nil
	}

	now := s.clock.Now()
	if now.After(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, session.ID)
		return nil, nil, false, nil
	}

	fresh := false
	if now.After(session.ExpiresAt.Add(-s.sessionTTL() / 2)) {
		session.ExpiresAt = now.Add(s.sessionTTL())
		if err := s.sessions.UpdateExpiry(ctx, session.ID, session.ExpiresAt); err != nil {
			return nil, nil, false, err
		}
		fresh = true
	}

	user := session.User
	return session, &user, fresh, nil
}

func (s *AuthService) logSecurity(ctx context.Context, userID *string, ipAddress *string, action entity.SecurityAction, metadata map[string]any) error {
	if s.securityLogs == nil {
		return nil
	}
	entry := &entity.SecurityLog{
		UserID:    userID,
		IPAddress: ipAddress,
		Action:    action,
	}
	if metadata != nil {
		encoded, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		entry.Metadata = encoded
	}
	return s.securityLogs.Log(ctx, entry)
}
