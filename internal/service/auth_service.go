package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/idtoken"

	"wanderlust-backend/internal/domain"
	"wanderlust-backend/internal/repository/ports"
	"wanderlust-backend/internal/util"
)

var (
	ErrSignupValidation   = errors.New("signup validation failed")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService is the identity gate. It creates accounts, exchanges
// credentials (or a Google ID token) for a session-backed JWT, and resolves
// bearer tokens back to users. Token resolution is pure verification with no
// side effects.
type AuthService struct {
	users     ports.UserRepository
	sessions  ports.SessionRepository
	profiles  ports.ProfileRepository
	jwt       *util.JWTManager
	googleAud string
	now       func() time.Time
}

type AuthResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

func NewAuthService(userRepo ports.UserRepository, sessionRepo ports.SessionRepository, profileRepo ports.ProfileRepository, jwtManager *util.JWTManager, googleAud string) *AuthService {
	return &AuthService{
		users:     userRepo,
		sessions:  sessionRepo,
		profiles:  profileRepo,
		jwt:       jwtManager,
		googleAud: googleAud,
		now:       time.Now,
	}
}

// Signup creates an email/password account, eagerly writes the default
// profile, and opens a session.
func (s *AuthService) Signup(ctx context.Context, email, password, name string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || password == "" || name == "" {
		return nil, fmt.Errorf("%w: email, password and name are required", ErrSignupValidation)
	}
	if err := util.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSignupValidation, err.Error())
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !isNotFound(err) {
		return nil, err
	}

	hash, salt, err := util.DerivePassword(password)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		PasswordSalt: salt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	if err := s.profiles.Save(ctx, defaultProfile(user, now)); err != nil {
		return nil, err
	}

	return s.openSession(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !util.VerifyPassword(password, user.PasswordSalt, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return s.openSession(ctx, user)
}

// LoginWithGoogle validates a Google ID token and signs the holder in,
// creating the account on first contact.
func (s *AuthService) LoginWithGoogle(ctx context.Context, idTok string) (*AuthResult, error) {
	payload, err := idtoken.Validate(ctx, idTok, s.googleAud)
	if err != nil {
		return nil, ErrInvalidToken
	}
	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	if email == "" {
		return nil, ErrInvalidToken
	}
	email = strings.ToLower(email)

	now := s.now().UTC()
	user, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if name != "" && user.Name != name {
			user.Name = name
			user.UpdatedAt = now
		}
		if picture != "" && (user.AvatarURL == nil || *user.AvatarURL != picture) {
			user.AvatarURL = &picture
			user.UpdatedAt = now
		}
		if err := s.users.Save(ctx, user); err != nil {
			return nil, err
		}
	case isNotFound(err):
		user = &domain.User{
			ID:        uuid.New(),
			Email:     email,
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if picture != "" {
			user.AvatarURL = &picture
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
		if err := s.profiles.Save(ctx, defaultProfile(user, now)); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.openSession(ctx, user)
}

// Authenticate resolves a bearer token to its user. The JWT must verify and
// its session must still be active and unexpired, so a logout revokes
// outstanding tokens immediately.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	sessionID, err := claims.SessionID()
	if err != nil {
		return nil, ErrInvalidToken
	}

	session, err := s.sessions.Find(ctx, sessionID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if session.UserID != claims.UserID || !session.Valid(s.now()) {
		return nil, ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}

// Logout deactivates the token's session. Unknown or already-expired tokens
// are treated as logged out.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return nil
	}
	sessionID, err := claims.SessionID()
	if err != nil {
		return nil
	}
	return s.sessions.Deactivate(ctx, sessionID)
}

func (s *AuthService) openSession(ctx context.Context, user *domain.User) (*AuthResult, error) {
	now := s.now().UTC()
	session := &domain.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.jwt.TTL()),
		Active:    true,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.jwt.Generate(user.ID, session.ID, user.Email, user.Name)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}
