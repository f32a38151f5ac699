package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the standard registered claims plus the id of the user
// the reset was issued for.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"reset_password"`
}

// GenerateResetToken produces a signed, time-limited password reset token
// for userID. The token is stateless: no server-side record is kept.
func GenerateResetToken(userID int64, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		UserID: userID,
	})
	return token.SignedString(secret)
}

// VerifyResetToken resolves a reset token back to the user id it was issued
// for. Any parse, signature or expiry failure yields ok=false so callers can
// redirect silently without leaking why the token was rejected.
func VerifyResetToken(tokenString string, secret []byte) (int64, bool) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, false
	}
	if claims.UserID == 0 {
		return 0, false
	}
	return claims.UserID, true
}
