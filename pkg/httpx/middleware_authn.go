package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/skillforge/backend/pkg/jwtx"
	"github.com/skillforge/backend/pkg/slogx"
)

// UserLookup reports whether the user identified by id still exists. It is
// consulted after token verification so deleted accounts lose access
// immediately rather than at token expiry.
type UserLookup func(ctx context.Context, id string) (bool, error)

// RequireAuth verifies the bearer token on the request and places the
// subject's user ID on the context. Requests without a valid token are
// rejected with 401.
func RequireAuth(verifier jwtx.Verifier, lookup UserLookup) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			token := bearerToken(r)
			if token == "" {
				WriteError(w, http.StatusUnauthorized, "Not authorized to access this route")
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				log.Debug("token verification failed", "error", err)
				WriteError(w, http.StatusUnauthorized, "Not authorized to access this route")
				return
			}

			userID := claims.Subject
			if userID == "" {
				WriteError(w, http.StatusUnauthorized, "Not authorized to access this route")
				return
			}

			exists, err := lookup(ctx, userID)
			if err != nil {
				log.Error("user lookup failed", "error", err)
				WriteError(w, http.StatusInternalServerError, "Server error")
				return
			}
			if !exists {
				WriteError(w, http.StatusUnauthorized, "Invalid token. User not found.")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, userID)))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
