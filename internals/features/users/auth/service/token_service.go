package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"kelasvideo_backend/internals/configs"
)

// ErrInvalidToken dipakai untuk SEMUA kegagalan verifikasi (signature jelek,
// payload rusak, expired). Caller eksternal tidak boleh bisa membedakannya.
var ErrInvalidToken = errors.New("invalid or expired token")

// IssueAccessToken menerbitkan JWT HS256 dengan exp = now + TTL (default 60 menit).
func IssueAccessToken(cfg *configs.Config, username string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": now.Add(cfg.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// VerifyAccessToken mengembalikan subject (username) bila token sah dan belum
// kedaluwarsa. Subject tetap harus dicek ke tabel users oleh pemanggil.
func VerifyAccessToken(cfg *configs.Config, tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if strings.TrimSpace(sub) == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
