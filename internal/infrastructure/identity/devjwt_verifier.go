package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// DevJWTVerifier verifies HS256 tokens minted for local development, where
// no Firebase project is configured. The "sub" claim is the subject id.
type DevJWTVerifier struct {
	secret []byte
}

func NewDevJWTVerifier(secret string) *DevJWTVerifier {
	return &DevJWTVerifier{secret: []byte(secret)}
}

func (v *DevJWTVerifier) Verify(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return sub, nil
}

// MintDevToken issues a dev-mode token for the given subject. Used by local
// tooling and tests only.
func MintDevToken(secret, subject string, expiry time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(expiry).Unix(),
	})
	return token.SignedString([]byte(secret))
}
