package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/user"
)

func TestJWTService_GenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", 15*time.Minute)
	emp := "emp-1"
	dept := "Sales"

	token, expiresAt, err := svc.GenerateAccessToken(AccessClaims{
		UserID:     "user-1",
		EmployeeID: &emp,
		Department: &dept,
		Role:       user.RoleEmployee,
	})
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "access", claims["type"])

	p, err := user.PrincipalFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", p.EmployeeID)
	assert.Equal(t, "Sales", *p.Department)
	assert.Equal(t, user.RoleEmployee, p.Role)
}

func TestJWTService_Revocation(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute)

	assert.False(t, svc.IsTokenRevoked("abc"))
	svc.RevokeToken("abc")
	assert.True(t, svc.IsTokenRevoked("abc"))
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer := NewJWTService("other-secret", time.Minute)
	verifier := NewJWTService("test-secret", time.Minute)

	token, _, err := issuer.GenerateAccessToken(AccessClaims{UserID: "u", Role: user.RoleOwner})
	require.NoError(t, err)

	_, err = verifier.JWTAuth().Decode(token)
	assert.Error(t, err)
}
