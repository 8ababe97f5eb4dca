package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried in every bearer token.
type Claims struct {
	UserID   uint `json:"user_id"`
	IsSeller bool `json:"is_seller"`
	jwt.RegisteredClaims
}

// GenerateJWT signs a 24h token for the given user.
func GenerateJWT(userID uint, isSeller bool, secret string) (string, error) {
	claims := Claims{
		UserID:   userID,
		IsSeller: isSeller,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseJWT validates a token string and returns its claims.
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
