package token

import (
	"errors"
	"fmt"
	"time"

	autherrors "go-kafe/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

type Config struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func (c Config) WithDefaults() Config {
	if c.AccessTTL <= 0 {
		c.AccessTTL = 15 * time.Minute
	}
	if c.RefreshTTL <= 0 {
		c.RefreshTTL = 7 * 24 * time.Hour
	}
	return c
}

// Claims is what a valid session token carries.
type Claims struct {
	UserID    string
	Email     string
	TokenType string
}

func Generate(secret []byte, userID, email, tokenType string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID,
		"email":      email,
		"token_type": tokenType,
		"iat":        time.Now().Unix(),
		"exp":        time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Parse verifies an HS256 token of the wanted type.
func Parse(secret []byte, tokenString, wantType string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, autherrors.ErrTokenExpired
		}
		return Claims{}, autherrors.ErrInvalidToken
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, autherrors.ErrInvalidToken
	}

	c := Claims{}
	c.UserID, _ = mc["user_id"].(string)
	c.Email, _ = mc["email"].(string)
	c.TokenType, _ = mc["token_type"].(string)
	if c.UserID == "" || c.TokenType != wantType {
		return Claims{}, autherrors.ErrInvalidToken
	}
	return c, nil
}
