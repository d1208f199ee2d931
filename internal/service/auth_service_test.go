package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"wanderlust-backend/internal/util"
)

type authFixture struct {
	svc      *AuthService
	users    *memoryUserRepo
	profiles *memoryProfileRepo
	sessions *memorySessionRepo
}

func newAuthFixture() *authFixture {
	users := newMemoryUserRepo()
	profiles := newMemoryProfileRepo()
	sessions := newMemorySessionRepo()
	jwtManager := util.NewJWTManager("test-secret", time.Hour)
	return &authFixture{
		svc:      NewAuthService(users, sessions, profiles, jwtManager, ""),
		users:    users,
		profiles: profiles,
		sessions: sessions,
	}
}

func TestAuthService_SignupThenAuthenticate(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	result, err := f.svc.Signup(ctx, "Traveler@Example.com", "sunnydays1", "Traveler")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if result.User.Email != "traveler@example.com" {
		t.Fatalf("expected normalized email, got %q", result.User.Email)
	}
	if result.Token == "" {
		t.Fatalf("expected a signed token")
	}

	user, err := f.svc.Authenticate(ctx, result.Token)
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if user.ID != result.User.ID {
		t.Fatalf("token resolved to wrong user")
	}

	// Signup eagerly writes the default profile.
	profile, err := f.profiles.Find(ctx, result.User.ID)
	if err != nil {
		t.Fatalf("profile not created on signup: %v", err)
	}
	if profile.TotalTrips != 0 || profile.ReviewsCount != 0 {
		t.Fatalf("expected zeroed counters, got %d/%d", profile.TotalTrips, profile.ReviewsCount)
	}
}

func TestAuthService_SignupValidation(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	cases := []struct {
		name     string
		email    string
		password string
		userName string
	}{
		{"missing email", "", "sunnydays1", "Traveler"},
		{"missing password", "traveler@example.com", "", "Traveler"},
		{"missing name", "traveler@example.com", "sunnydays1", ""},
		{"short password", "traveler@example.com", "abc1", "Traveler"},
		{"password without digit", "traveler@example.com", "sunnydayss", "Traveler"},
	}
	for _, tc := range cases {
		if _, err := f.svc.Signup(ctx, tc.email, tc.password, tc.userName); !errors.Is(err, ErrSignupValidation) {
			t.Fatalf("%s: expected ErrSignupValidation, got %v", tc.name, err)
		}
	}
}

func TestAuthService_SignupRejectsDuplicateEmail(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	if _, err := f.svc.Signup(ctx, "traveler@example.com", "sunnydays1", "Traveler"); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if _, err := f.svc.Signup(ctx, "traveler@example.com", "otherpass2", "Other"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_LoginRejectsWrongPassword(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	if _, err := f.svc.Signup(ctx, "traveler@example.com", "sunnydays1", "Traveler"); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}

	if _, err := f.svc.Login(ctx, "traveler@example.com", "wrongpass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := f.svc.Login(ctx, "nobody@example.com", "sunnydays1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}

	result, err := f.svc.Login(ctx, "traveler@example.com", "sunnydays1")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if _, err := f.svc.Authenticate(ctx, result.Token); err != nil {
		t.Fatalf("Authenticate after login returned error: %v", err)
	}
}

func TestAuthService_LogoutRevokesToken(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	result, err := f.svc.Signup(ctx, "traveler@example.com", "sunnydays1", "Traveler")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if err := f.svc.Logout(ctx, result.Token); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, err := f.svc.Authenticate(ctx, result.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after logout, got %v", err)
	}

	// Logging out a garbage token is a no-op.
	if err := f.svc.Logout(ctx, "not-a-jwt"); err != nil {
		t.Fatalf("Logout of bad token returned error: %v", err)
	}
}

func TestAuthService_AuthenticateRejectsForgedToken(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	result, err := f.svc.Signup(ctx, "traveler@example.com", "sunnydays1", "Traveler")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}

	// A token signed with a different secret must not verify even though the
	// claims line up.
	forged := util.NewJWTManager("other-secret", time.Hour)
	claims, err := f.svc.jwt.Parse(result.Token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	sessionID, err := claims.SessionID()
	if err != nil {
		t.Fatalf("SessionID returned error: %v", err)
	}
	token, _, err := forged.Generate(result.User.ID, sessionID, result.User.Email, result.User.Name)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if _, err := f.svc.Authenticate(ctx, token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for forged token, got %v", err)
	}
}
