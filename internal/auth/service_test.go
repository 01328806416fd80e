package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/motorhub/motorhub-backend/internal/users"
	pkgauth "github.com/motorhub/motorhub-backend/pkg/auth"
	"github.com/motorhub/motorhub-backend/pkg/auth/session"
	"github.com/motorhub/motorhub-backend/pkg/config"
	"github.com/motorhub/motorhub-backend/pkg/db/models"
	"github.com/motorhub/motorhub-backend/pkg/enums"
	pkgerrors "github.com/motorhub/motorhub-backend/pkg/errors"
	"github.com/motorhub/motorhub-backend/pkg/security"
)

type fakeSessions struct {
	tokens map[string]string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{tokens: map[string]string{}}
}

func (f *fakeSessions) Generate(ctx context.Context, accessID string) (string, error) {
	token := "refresh-" + accessID
	f.tokens[accessID] = token
	return token, nil
}

func (f *fakeSessions) Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error) {
	stored, ok := f.tokens[oldAccessID]
	if !ok || stored != provided {
		return "", "", session.ErrInvalidRefreshToken
	}
	delete(f.tokens, oldAccessID)
	newAccessID := session.NewAccessID()
	newToken := "refresh-" + newAccessID
	f.tokens[newAccessID] = newToken
	return newAccessID, newToken, nil
}

func (f *fakeSessions) Revoke(ctx context.Context, accessID string) error {
	delete(f.tokens, accessID)
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                 "test-secret",
		Issuer:                 "motorhub",
		ExpirationMinutes:      30,
		RefreshTokenTTLMinutes: 43200,
	}
}

// low-cost argon parameters keep the hashing tests fast
func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
	}
}

func newTestService(t *testing.T) (Service, *users.Repository, *fakeSessions) {
	t.Helper()

	dsn := "file:auth_" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := conn.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	userRepo := users.NewRepository(conn)
	sessions := newFakeSessions()
	svc, err := NewService(userRepo, sessions, testJWTConfig(), testPasswordConfig())
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc, userRepo, sessions
}

func register(t *testing.T, svc Service, email, password string) *models.User {
	t.Helper()
	user, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Test User",
		Email:    email,
		Phone:    "0770000000",
		Password: password,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return user
}

func TestRegisterNormalizesAndHashes(t *testing.T) {
	svc, _, _ := newTestService(t)

	user := register(t, svc, "  Admin@MotorHub.LK ", "s3cret-pass")

	if user.Email != "admin@motorhub.lk" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.Role != enums.UserRoleUser {
		t.Fatalf("expected role to default to User, got %s", user.Role)
	}
	if user.Password == "s3cret-pass" {
		t.Fatal("expected password to be hashed")
	}
	match, err := security.VerifyPassword("s3cret-pass", user.Password)
	if err != nil || !match {
		t.Fatalf("expected stored hash to verify, match=%v err=%v", match, err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	register(t, svc, "admin@motorhub.lk", "s3cret-pass")

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Second",
		Email:    "admin@motorhub.lk",
		Password: "other-pass",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegisterInvalidRole(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Bad Role",
		Email:    "bad@motorhub.lk",
		Password: "s3cret-pass",
		Role:     "Root",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoginIssuesTokens(t *testing.T) {
	svc, _, sessions := newTestService(t)
	user := register(t, svc, "admin@motorhub.lk", "s3cret-pass")

	result, err := svc.Login(context.Background(), "Admin@MotorHub.lk", "s3cret-pass")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.User.ID != user.ID {
		t.Fatalf("expected logged-in user %d, got %d", user.ID, result.User.ID)
	}
	if result.Tokens.ExpiresIn != 30*60 {
		t.Fatalf("expected 1800s expiry, got %d", result.Tokens.ExpiresIn)
	}

	claims, err := pkgauth.ParseAccessToken(testJWTConfig(), result.Tokens.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != enums.UserRoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if sessions.tokens[claims.ID] != result.Tokens.RefreshToken {
		t.Fatal("expected refresh token stored under the jti")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _, _ := newTestService(t)
	register(t, svc, "admin@motorhub.lk", "s3cret-pass")
	ctx := context.Background()

	_, err := svc.Login(ctx, "admin@motorhub.lk", "wrong-pass")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("unexpected error: %v", err)
	}

	// Unknown accounts fail identically.
	_, err = svc.Login(ctx, "ghost@motorhub.lk", "s3cret-pass")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRefreshRotatesSession(t *testing.T) {
	svc, _, _ := newTestService(t)
	register(t, svc, "admin@motorhub.lk", "s3cret-pass")
	ctx := context.Background()

	result, err := svc.Login(ctx, "admin@motorhub.lk", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	refreshed, err := svc.Refresh(ctx, result.Tokens.AccessToken, result.Tokens.RefreshToken)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if refreshed.AccessToken == result.Tokens.AccessToken {
		t.Fatal("expected a fresh access token")
	}
	if refreshed.RefreshToken == result.Tokens.RefreshToken {
		t.Fatal("expected a fresh refresh token")
	}

	oldClaims, err := pkgauth.ParseAccessToken(testJWTConfig(), result.Tokens.AccessToken)
	if err != nil {
		t.Fatalf("parse old token: %v", err)
	}
	newClaims, err := pkgauth.ParseAccessToken(testJWTConfig(), refreshed.AccessToken)
	if err != nil {
		t.Fatalf("parse new token: %v", err)
	}
	if newClaims.ID == oldClaims.ID {
		t.Fatal("expected rotated jti")
	}

	// The consumed pair must not rotate twice.
	_, err = svc.Refresh(ctx, result.Tokens.AccessToken, result.Tokens.RefreshToken)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Refresh(context.Background(), "not-a-jwt", "whatever")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _, sessions := newTestService(t)
	register(t, svc, "admin@motorhub.lk", "s3cret-pass")
	ctx := context.Background()

	result, err := svc.Login(ctx, "admin@motorhub.lk", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(ctx, result.Tokens.AccessToken); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(sessions.tokens) != 0 {
		t.Fatal("expected session revoked")
	}

	_, err = svc.Refresh(ctx, result.Tokens.AccessToken, result.Tokens.RefreshToken)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Logout(ctx, "not-a-jwt"); err == nil {
		t.Fatal("expected invalid token to be rejected")
	}
}
