package auth

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMissingPassword = errors.New("password required")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
)

// Gate holds the single admin credential and signs admin sessions.
type Gate struct {
	hash   string
	secret string
	ttl    time.Duration
}

// NewGate hashes password once; the plain text is not kept.
func NewGate(password, secret string, ttl time.Duration) (*Gate, error) {
	if password == "" {
		return nil, errors.New("auth: admin password must not be empty")
	}
	if secret == "" {
		return nil, errors.New("auth: signing secret must not be empty")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	h, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("auth: hash admin password: %w", err)
	}
	return &Gate{hash: h, secret: secret, ttl: ttl}, nil
}

// Login trades the admin password for a session token.
func (g *Gate) Login(password string) (string, error) {
	if password == "" {
		return "", ErrMissingPassword
	}
	if !CheckPassword(g.hash, password) {
		return "", ErrUnauthorized
	}
	return MakeToken(RoleAdmin, g.secret, g.ttl)
}

// Check maps a bearer token onto ErrUnauthorized (missing, malformed,
// bad signature) or ErrForbidden (expired, not admin).
func (g *Gate) Check(raw string) (*Claims, error) {
	res := Verify(raw, g.secret)
	switch res.Outcome {
	case Valid:
		if res.Claims.Role != RoleAdmin {
			return nil, ErrForbidden
		}
		return res.Claims, nil
	case Expired:
		return nil, ErrForbidden
	default:
		return nil, ErrUnauthorized
	}
}
