package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"JEWELVISTA_BACK-END/internal/config"
)

type contextKey string

const (
	emailContextKey    contextKey = "email"
	usernameContextKey contextKey = "username"
)

// SessionClaims represents the claims carried by the session cookie
type SessionClaims struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateSessionToken signs a session token for the given user
func GenerateSessionToken(email, username string, cfg *config.SessionConfig) (string, error) {
	claims := SessionClaims{
		Email:    email,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.TTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ValidateSessionToken validates a session token and returns the claims
func ValidateSessionToken(tokenString string, cfg *config.SessionConfig) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenMalformed
}

// SetSessionCookie attaches a freshly issued session token to the response
func SetSessionCookie(w http.ResponseWriter, token string, cfg *config.SessionConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie unconditionally
func ClearSessionCookie(w http.ResponseWriter, cfg *config.SessionConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionFromRequest reads and validates the session cookie, if present
func SessionFromRequest(r *http.Request, cfg *config.SessionConfig) (*SessionClaims, bool) {
	cookie, err := r.Cookie(cfg.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	claims, err := ValidateSessionToken(cookie.Value, cfg)
	if err != nil {
		return nil, false
	}

	return claims, true
}

// RequireSession gates a handler on an authenticated session.
// A missing or invalid session redirects to the login page instead of
// returning an authorization error.
func RequireSession(next http.HandlerFunc, cfg *config.SessionConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := SessionFromRequest(r, cfg)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		// Add user info to request context
		ctx := context.WithValue(r.Context(), emailContextKey, claims.Email)
		ctx = context.WithValue(ctx, usernameContextKey, claims.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// EmailFromContext extracts the authenticated email set by RequireSession
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailContextKey).(string)
	return email, ok && email != ""
}

// UsernameFromContext extracts the authenticated username set by RequireSession
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameContextKey).(string)
	return username, ok
}
