package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"filebot/internal/config"
)

var (
	ErrInvalidKey   = errors.New("invalid admin key")
	ErrInvalidToken = errors.New("invalid or expired token")
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service guards the ops HTTP API: it exchanges the configured admin key for
// a short-lived access token and validates tokens on guarded routes.
type Service interface {
	IssueToken(adminKey string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{cfg: cfg}
}

func (s *service) IssueToken(adminKey string) (string, error) {
	if s.cfg.AdminKeyHash == "" {
		return "", ErrInvalidKey
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminKeyHash), []byte(adminKey)); err != nil {
		return "", ErrInvalidKey
	}

	claims := &Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.JWTAccessExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
