package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgAuth "github.com/motorhub/motorhub-backend/pkg/auth"
	"github.com/motorhub/motorhub-backend/pkg/config"
	"github.com/motorhub/motorhub-backend/pkg/enums"
)

type fakeSessionChecker struct {
	known map[string]bool
	err   error
}

func (f *fakeSessionChecker) HasSession(_ context.Context, accessID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.known[accessID], nil
}

func authTestConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Issuer: "motorhub", ExpirationMinutes: 30}
}

func mintToken(t *testing.T, cfg config.JWTConfig, jti string) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: 42,
		Email:  "tech@motorhub.lk",
		Role:   enums.UserRoleAdmin,
		JTI:    jti,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestAuthSeedsContextFromToken(t *testing.T) {
	cfg := authTestConfig()
	checker := &fakeSessionChecker{known: map[string]bool{"session-1": true}}

	var gotUserID int64
	var gotRole, gotEmail string
	handler := Auth(cfg, checker, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFromContext(r.Context())
		gotRole = RoleFromContext(r.Context())
		gotEmail = EmailFromContext(r.Context())
	}))

	r := httptest.NewRequest("GET", "/api/v1/items/get", nil)
	r.Header.Set("Authorization", "Bearer "+mintToken(t, cfg, "session-1"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d, body %s", w.Code, w.Body.String())
	}
	if gotUserID != 42 || gotRole != "Admin" || gotEmail != "tech@motorhub.lk" {
		t.Fatalf("unexpected context: user=%d role=%s email=%s", gotUserID, gotRole, gotEmail)
	}
}

func TestAuthRejectsMissingOrMalformedCredentials(t *testing.T) {
	cfg := authTestConfig()
	handler := Auth(cfg, nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	cases := map[string]string{
		"no header":    "",
		"bare scheme":  "Bearer ",
		"garbage":      "Bearer not.a.jwt",
		"wrong secret": "Bearer " + mintToken(t, config.JWTConfig{Secret: "other", Issuer: "motorhub", ExpirationMinutes: 30}, "s"),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/v1/items/get", nil)
			if header != "" {
				r.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("unexpected status: %d", w.Code)
			}
		})
	}
}

func TestAuthRejectsRevokedSession(t *testing.T) {
	cfg := authTestConfig()
	checker := &fakeSessionChecker{known: map[string]bool{}}
	handler := Auth(cfg, checker, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	r := httptest.NewRequest("GET", "/api/v1/items/get", nil)
	r.Header.Set("Authorization", "Bearer "+mintToken(t, cfg, "revoked"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", w.Code)
	}
}
