package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin = "admin"

	DefaultTTL = 24 * time.Hour
)

var ErrBadToken = errors.New("invalid token")

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

// CheckPassword compares in constant time.
func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func MakeToken(role, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	c := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

// Outcome tags the result of Verify.
type Outcome int

const (
	Valid Outcome = iota
	Expired
	InvalidSignature
	Malformed
)

func (o Outcome) String() string {
	switch o {
	case Valid:
		return "valid"
	case Expired:
		return "expired"
	case InvalidSignature:
		return "invalid signature"
	default:
		return "malformed"
	}
}

// Result carries claims whenever the signature checked out, even for
// an expired token.
type Result struct {
	Outcome Outcome
	Claims  *Claims
}

// Verify decodes raw and sorts it into one outcome. It does not look
// at the role claim.
func Verify(raw, secret string) Result {
	if raw == "" {
		return Result{Outcome: Malformed}
	}
	c := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, c, func(t *jwt.Token) (any, error) {
		// block alg confusion
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return []byte(secret), nil
	})
	switch {
	case err == nil && tok.Valid:
		return Result{Outcome: Valid, Claims: c}
	case errors.Is(err, jwt.ErrTokenExpired):
		return Result{Outcome: Expired, Claims: c}
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return Result{Outcome: InvalidSignature}
	default:
		return Result{Outcome: Malformed}
	}
}
