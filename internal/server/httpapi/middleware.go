package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/authgate/internal/common"
)

type usernameContextKey struct{}

// UsernameFromContext returns the authenticated username attached by
// requireToken.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameContextKey{}).(string)
	return username, ok
}

// requireToken is the access guard: it extracts the bearer token, verifies it
// and passes the resolved username to the wrapped handler via the request
// context. A missing or malformed Authorization header is 403; a token that
// fails verification is 401. Expired tokens get a distinct message, but
// malformed tokens and signature mismatches share one body so the boundary
// does not reveal which check failed.
func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			writeError(w, http.StatusForbidden, "missing bearer token")
			return
		}

		claims, err := s.codec.Verify(token)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				writeError(w, http.StatusUnauthorized, "token expired")
				return
			}
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), usernameContextKey{}, claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	token := value[len(bearer):]
	if token == "" {
		return "", false
	}

	return token, true
}
