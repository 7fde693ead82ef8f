package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bbeualll199/uso-auth/internal/apperr"
	"github.com/bbeualll199/uso-auth/internal/auth/token"
)

// unexported, collision-proof context key
type claimsContextKeyType struct{}

var claimsKey = claimsContextKeyType{}

// ClaimsFromContext extracts the validated credential claims from context.
func ClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*token.Claims)
	return claims, ok
}

type AuthMiddleware struct {
	Tokens *token.Manager
}

func NewAuthMiddleware(tokens *token.Manager) *AuthMiddleware {
	return &AuthMiddleware{Tokens: tokens}
}

// RequireAuth gates a handler behind a valid internal credential. An absent
// or malformed Authorization header is no_auth; a present credential that
// fails any validation check is invalid_token, with no finer distinction.
func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			unauthorized(w, apperr.CodeNoCredential)
			return
		}

		claims, err := a.Tokens.Validate(raw)
		if err != nil {
			unauthorized(w, apperr.CodeInvalidCredential)
			return
		}

		// The signed credential is the sole authentication proof; no
		// provider or store call confirms the subject here.
		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken parses an "Authorization: Bearer <token>" header value.
// The scheme match is case-insensitive.
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	return tok, tok != ""
}

func unauthorized(w http.ResponseWriter, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
