package middlewares

import (
	"context"
	"docportal-service/internal/pkg/constvars"
	"docportal-service/internal/pkg/exceptions"
	"docportal-service/internal/pkg/utils"
	"net/http"
	"strings"
)

// Authenticate is the credential verifier: a missing Authorization header
// is 401, a token that fails signature or expiry checks is 403. On success
// the verified email claim rides the request context for downstream
// handlers.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, constvars.BearerTokenPrefix)
		email, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_CLAIMED_EMAIL_KEY, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin composes after Authenticate. An unknown principal and a
// known non-admin get the same opaque forbidden response; the distinction
// only reaches the log.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claimedEmail, ok := r.Context().Value(constvars.CONTEXT_CLAIMED_EMAIL_KEY).(string)
		if !ok || claimedEmail == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		role, found, err := m.RoleAuthority.ResolveRole(r.Context(), claimedEmail)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if !found {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrUnknownPrincipal(nil))
			return
		}
		if role != constvars.RoleAdmin {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAdmin(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ClaimedEmail pulls the verified identity set by Authenticate.
func ClaimedEmail(ctx context.Context) string {
	email, _ := ctx.Value(constvars.CONTEXT_CLAIMED_EMAIL_KEY).(string)
	return email
}
