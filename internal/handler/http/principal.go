package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/auth"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

func principalFromRequest(r *http.Request) (user.Principal, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil || claims == nil {
		return user.Principal{}, auth.ErrInvalidToken
	}
	return user.PrincipalFromClaims(claims)
}

// optionalQuery returns nil for an absent or blank query parameter.
func optionalQuery(r *http.Request, key string) *string {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	return &v
}
