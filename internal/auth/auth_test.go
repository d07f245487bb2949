package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestPasswordHash(t *testing.T) {
	h, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", h)

	assert.True(t, CheckPassword(h, "admin123"))
	assert.False(t, CheckPassword(h, "admin124"))
	assert.False(t, CheckPassword(h, ""))

	// salted: same input, different hash
	h2, _ := HashPassword("admin123")
	assert.NotEqual(t, h, h2)
}

func TestTokenExpiry(t *testing.T) {
	tok, err := MakeToken(RoleAdmin, secret, DefaultTTL)
	require.NoError(t, err)

	res := Verify(tok, secret)
	require.Equal(t, Valid, res.Outcome)
	assert.Equal(t, RoleAdmin, res.Claims.Role)

	// verify expiry is ~24h from now
	diff := time.Until(res.Claims.ExpiresAt.Time)
	if diff < 23*time.Hour || diff > 25*time.Hour {
		t.Errorf("expected ~24h expiry, got %v", diff)
	}
}

func TestVerifyOutcomes(t *testing.T) {
	good, _ := MakeToken(RoleAdmin, secret, time.Hour)
	expired, _ := MakeToken(RoleAdmin, secret, -time.Minute)
	otherKey, _ := MakeToken(RoleAdmin, "other-secret", time.Hour)

	// alg "none" must never be accepted
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"role": RoleAdmin}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	// tampered signature segment
	parts := strings.Split(good, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	tests := []struct {
		name string
		raw  string
		want Outcome
	}{
		{"valid", good, Valid},
		{"expired", expired, Expired},
		{"wrong secret", otherKey, InvalidSignature},
		{"tampered", tampered, InvalidSignature},
		{"alg none", none, InvalidSignature},
		{"garbage", "not.a.token", Malformed},
		{"empty", "", Malformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Verify(tt.raw, secret).Outcome)
		})
	}
}

func TestExpiredKeepsClaims(t *testing.T) {
	tok, _ := MakeToken(RoleAdmin, secret, -time.Minute)
	res := Verify(tok, secret)
	require.Equal(t, Expired, res.Outcome)
	require.NotNil(t, res.Claims)
	assert.Equal(t, RoleAdmin, res.Claims.Role)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "valid", Valid.String())
	assert.Equal(t, "expired", Expired.String())
	assert.Equal(t, "invalid signature", InvalidSignature.String())
	assert.Equal(t, "malformed", Malformed.String())
}
