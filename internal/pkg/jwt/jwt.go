package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies the tokens the excluded authentication layer issues and
// mints short-lived stream tokens for SSE connections, which cannot carry an
// Authorization header from EventSource.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	GenerateStreamToken(userID string) (token string, expiresIn int, err error)
	ValidateStreamToken(tokenString string) (userID string, err error)
}

type JWTService struct {
	secretKey string
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		secretKey: secretKey,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// GenerateStreamToken generates a short-lived token for SSE connections
func (j *JWTService) GenerateStreamToken(userID string) (token string, expiresIn int, err error) {
	expiresIn = 300 // 5 minutes in seconds
	expiresAt := time.Now().Add(5 * time.Minute).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "stream",
		"exp":     expiresAt,
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresIn, nil
}

// ValidateStreamToken validates a stream token and returns the user ID
func (j *JWTService) ValidateStreamToken(tokenString string) (userID string, err error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "stream" {
		return "", jwt.ErrInvalidJWT()
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	userID, ok = userIDVal.(string)
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	return userID, nil
}
