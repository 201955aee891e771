package jwt

import (
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// AccessClaims are the identity claims put into an access token.
type AccessClaims struct {
	UserID     string
	EmployeeID *string
	Department *string
	Role       user.Role
}

// Service verifies access tokens issued by the HRMS auth service and can mint compatible ones for
// operators and tests.
type Service interface {
	GenerateAccessToken(c AccessClaims) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	accessTokenExpiration time.Duration
	tokenAuth             *jwtauth.JWTAuth
	revokedTokens         map[string]int64
	mu                    sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpiration time.Duration) Service {
	return &JWTService{
		accessTokenExpiration: accessTokenExpiration,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:         make(map[string]int64),
	}
}

func (j *JWTService) GenerateAccessToken(c AccessClaims) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(j.accessTokenExpiration).Unix()

	claims := map[string]interface{}{
		"user_id":     c.UserID,
		"employee_id": j.returnValueOrNil(c.EmployeeID),
		"role":        string(c.Role),
		"type":        "access",
		"exp":         expiresAt,
	}
	if c.Department != nil {
		claims["department"] = *c.Department
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

func (j *JWTService) returnValueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	} else {
		return *value
	}
}
