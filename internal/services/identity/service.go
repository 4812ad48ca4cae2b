// Package identity implements the cookie-based display-name identity
// the rest of the system treats as an external collaborator: every request
// either carries a self-declared name or it doesn't. There are no accounts.
package identity

import (
	"net/http"
	"strings"
	"time"

	"github.com/partygamehq/partygame-go/internal/model"
)

// CookieName is the cookie carrying the display name
const CookieName = "username"

// MinNameLength is the shortest accepted display name
const MinNameLength = 3

// CookieMaxAge is how long the name cookie lives
const CookieMaxAge = 7 * 24 * time.Hour

// Service validates display names and translates them to and from cookies
type Service struct{}

// New creates a new identity Service
func New() *Service {
	return &Service{}
}

// Normalize trims and validates a display name
func (s *Service) Normalize(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len(name) < MinNameLength {
		return "", model.ErrNoIdentity
	}
	return name, nil
}

// Cookie builds the display-name cookie for a validated name
func (s *Service) Cookie(name string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    name,
		Path:     "/",
		MaxAge:   int(CookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	}
}

// FromRequest extracts the display name from a request, or "" if unset
func (s *Service) FromRequest(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(cookie.Value)
}
