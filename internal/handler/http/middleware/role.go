package middleware

import (
	"net/http"

	"github.com/rawatib-hr/rawatib-backend-go/internal/handler/http/response"
	"github.com/rawatib-hr/rawatib-backend-go/internal/pkg/jwt"
)

// RequireRole allows the request through only when the token's role claim
// is one of the given roles.
func RequireRole(jwtService jwt.Service, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			claims, err := jwtService.ClaimsFromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, "Missing or invalid token")
				return
			}

			if _, ok := allowed[claims.Role]; !ok {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
