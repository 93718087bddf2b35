package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	appuser "extinsia/internal/application/user"
	"extinsia/internal/domain/user"
	"extinsia/internal/shared/authorization"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

type Claims struct {
	UserCode  string                 `json:"user_code"`
	Email     string                 `json:"email"`
	Role      authorization.UserRole `json:"role"`
	TokenType TokenType              `json:"token_type"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
	refreshExpDays   int
}

func NewJWTService(secret string, accessExpMinutes, refreshExpDays int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
		refreshExpDays:   refreshExpDays,
	}
}

// Issue mints the access/refresh pair for a signed-in account.
func (s *JWTService) Issue(u *user.User) (*appuser.TokenPair, error) {
	now := time.Now().UTC()

	accessExp := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)
	accessToken, err := s.sign(u, TokenTypeAccess, now, accessExp)
	if err != nil {
		return nil, err
	}

	refreshExp := now.Add(time.Duration(s.refreshExpDays) * 24 * time.Hour)
	refreshToken, err := s.sign(u, TokenTypeRefresh, now, refreshExp)
	if err != nil {
		return nil, err
	}

	return &appuser.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    accessExp,
	}, nil
}

func (s *JWTService) sign(u *user.User, tokenType TokenType, now, exp time.Time) (string, error) {
	claims := &Claims{
		UserCode:  u.Code(),
		Email:     u.Email(),
		Role:      u.Role(),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

// VerifyRefresh implements appuser.TokenIssuer.
func (s *JWTService) VerifyRefresh(tokenString string) (string, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return "", err
	}
	if claims.TokenType != TokenTypeRefresh {
		return "", fmt.Errorf("not a refresh token")
	}
	return claims.UserCode, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
