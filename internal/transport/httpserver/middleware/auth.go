package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"clubhub/internal/config"
	"clubhub/internal/domain/authz"
	"clubhub/pkg/logger"
	"github.com/golang-jwt/jwt/v5"
)

// Auth resolves the acting principal from a bearer token minted by the
// identity service and injects it into the request context. SkipAuth swaps
// verification for a fixed mock principal in development.
type Auth struct {
	secret   []byte
	skipAuth bool
	mock     authz.Principal
	profiles ProfileSaver
	log      logger.Logger
}

type contextKey int

const principalKey contextKey = iota

// ProfileSaver keeps the user directory current with whatever identity the
// token carried; promote/remove/transfer resolve emails against it.
type ProfileSaver interface {
	UpsertProfile(ctx context.Context, userID, email, name string) error
}

type tokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

func NewAuth(cfg config.AuthConfig, profiles ProfileSaver, log logger.Logger) *Auth {
	return &Auth{
		secret:   []byte(cfg.JWTSecret),
		skipAuth: cfg.SkipAuth,
		mock: authz.Principal{
			ID:    strings.TrimSpace(cfg.MockUserID),
			Email: strings.TrimSpace(cfg.MockUserEmail),
			Name:  strings.TrimSpace(cfg.MockUserName),
		},
		profiles: profiles,
		log:      log,
	}
}

func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.skipAuth {
			if a.mock.ID == "" {
				writeError(w, http.StatusInternalServerError, "auth_not_configured", "auth mock user id not configured")
				return
			}
			a.saveProfile(r.Context(), a.mock)
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), a.mock)))
			return
		}

		if len(a.secret) == 0 {
			writeError(w, http.StatusInternalServerError, "auth_not_configured", "auth not configured")
			return
		}

		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			unauthorized(w)
			return
		}

		principal, err := a.verify(token)
		if err != nil {
			unauthorized(w)
			return
		}

		a.saveProfile(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

func (a *Auth) verify(token string) (authz.Principal, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return authz.Principal{}, err
	}
	if !parsed.Valid || claims.Subject == "" {
		return authz.Principal{}, errors.New("invalid token")
	}

	return authz.Principal{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}

func (a *Auth) saveProfile(ctx context.Context, p authz.Principal) {
	if a.profiles == nil {
		return
	}
	if err := a.profiles.UpsertProfile(ctx, p.ID, p.Email, p.Name); err != nil {
		a.log.InternalError("auth: upsert profile failed", err, "user_id", p.ID)
	}
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
}

func WithPrincipal(ctx context.Context, p authz.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func PrincipalFromContext(ctx context.Context) (authz.Principal, bool) {
	p, ok := ctx.Value(principalKey).(authz.Principal)
	if !ok || p.ID == "" {
		return authz.Principal{}, false
	}
	return p, true
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
