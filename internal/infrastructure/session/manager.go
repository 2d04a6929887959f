package session

import (
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/id"
)

const (
	DefaultCookieName = "app_session_id"
	DefaultTTL        = 365 * 24 * time.Hour
)

var ErrInvalidSession = crerr.New("invalid session")

type Config struct {
	Secret     string
	CookieName string
	TTL        time.Duration
	Secure     bool
}

type claims struct {
	OpenID string `json:"openId"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Manager issues and verifies the signed session cookie that carries the
// caller's identity between requests.
type Manager struct {
	secret     []byte
	cookieName string
	ttl        time.Duration
	secure     bool
	ids        id.Generator
	now        func() time.Time
}

func NewManager(cfg Config, ids id.Generator) (*Manager, error) {
	secret := strings.TrimSpace(cfg.Secret)
	if secret == "" {
		return nil, crerr.New("session secret is required")
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}

	cookieName := strings.TrimSpace(cfg.CookieName)
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Manager{
		secret:     []byte(secret),
		cookieName: cookieName,
		ttl:        ttl,
		secure:     cfg.Secure,
		ids:        ids,
		now:        time.Now,
	}, nil
}

func (m *Manager) CookieName() string {
	return m.cookieName
}

func (m *Manager) Issue(principal user.Principal) (string, error) {
	if strings.TrimSpace(principal.OpenID) == "" {
		return "", crerr.New("session principal open id is required")
	}

	tokenID, err := m.ids.NewID()
	if err != nil {
		return "", crerr.Wrap(err, "generate session id")
	}

	now := m.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		OpenID: principal.OpenID,
		Name:   principal.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})

	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", crerr.Wrap(err, "sign session token")
	}
	return signed, nil
}

func (m *Manager) Verify(token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, ErrInvalidSession
	}

	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return user.Principal{}, crerr.Mark(crerr.Wrap(err, "parse session token"), ErrInvalidSession)
	}

	cl, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid || strings.TrimSpace(cl.OpenID) == "" {
		return user.Principal{}, ErrInvalidSession
	}
	return user.Principal{OpenID: cl.OpenID, Name: cl.Name}, nil
}

// FromRequest reads the session cookie. A missing or invalid cookie yields no
// principal rather than an error.
func (m *Manager) FromRequest(r *http.Request) (user.Principal, bool) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return user.Principal{}, false
	}
	principal, err := m.Verify(cookie.Value)
	if err != nil {
		return user.Principal{}, false
	}
	return principal, true
}

func (m *Manager) SetCookie(w http.ResponseWriter, principal user.Principal) error {
	token, err := m.Issue(principal)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite(),
	})
	return nil
}

func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite(),
	})
}

// SameSite=None is only accepted by browsers on secure cookies.
func (m *Manager) sameSite() http.SameSite {
	if m.secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}
