package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partygamehq/partygame-go/internal/model"
)

func TestNormalizeTrimsWhitespace(t *testing.T) {
	s := New()

	name, err := s.Normalize("  alice  ")
	require.NoError(t, err)
	assert.Equal(t, "alice", name)
}

func TestNormalizeRejectsShortNames(t *testing.T) {
	s := New()

	for _, name := range []string{"", "ab", "  a  "} {
		_, err := s.Normalize(name)
		assert.ErrorIs(t, err, model.ErrNoIdentity, "name %q", name)
	}
}

func TestCookieShape(t *testing.T) {
	s := New()

	cookie := s.Cookie("alice")
	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, "alice", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int(CookieMaxAge.Seconds()), cookie.MaxAge)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestFromRequest(t *testing.T) {
	s := New()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "alice"})
	assert.Equal(t, "alice", s.FromRequest(r))
}

func TestFromRequestMissingCookie(t *testing.T) {
	s := New()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", s.FromRequest(r))
}
