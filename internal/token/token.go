package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Kind distinguishes the two token flavors carried in the token_type claim.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// ErrInvalidToken covers every decode failure: bad signature, malformed
// token, elapsed expiry. Callers must not learn which check failed.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the wire shape of a signed token. The expiry claim is named
// "expire" rather than the registered "exp", so the struct implements
// jwt.Claims itself and surfaces the expiry through GetExpirationTime for
// the parser's validation pass.
type Claims struct {
	Sub       string `json:"sub"`
	TokenType Kind   `json:"token_type"`
	Expire    int64  `json:"expire"`
}

func (c Claims) GetExpirationTime() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.Expire, 0)), nil
}

func (c Claims) GetIssuedAt() (*jwt.NumericDate, error)  { return nil, nil }
func (c Claims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }
func (c Claims) GetIssuer() (string, error)              { return "", nil }
func (c Claims) GetSubject() (string, error)             { return c.Sub, nil }
func (c Claims) GetAudience() (jwt.ClaimStrings, error)  { return nil, nil }

// UserID parses the subject claim into a user identifier.
func (c Claims) UserID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Sub)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}

// Manager issues and decodes signed tokens with a single process-wide
// HMAC secret. Safe for concurrent use; the secret is read-only.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewManager(secret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Issue signs a token of the given kind for the user. The expiration window
// is selected by kind: short for access, long for refresh.
func (m *Manager) Issue(userID uuid.UUID, kind Kind) (string, error) {
	ttl := m.accessTTL
	if kind == KindRefresh {
		ttl = m.refreshTTL
	}

	claims := Claims{
		Sub:       userID.String(),
		TokenType: kind,
		Expire:    time.Now().Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Decode verifies the signature and expiry and returns the claims.
// Every failure mode returns ErrInvalidToken.
func (m *Manager) Decode(raw string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
