package utils

import (
	"errors"
	"time"

	"bookmychair/config"
	"bookmychair/models"

	"github.com/golang-jwt/jwt"
)

const devSecret = "bookmychair-dev-secret"

var ErrNoSecret = errors.New("jwt secret is not configured")

// secretKey reads the secret on every call so a reloaded config takes effect.
// Outside production an unset secret falls back to a fixed development value.
func secretKey() ([]byte, error) {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		if config.IsProduction() {
			return nil, ErrNoSecret
		}
		secret = devSecret
	}
	return []byte(secret), nil
}

// GenerateToken creates a signed JWT for the given user that expires after duration.
// Login lives in another service; this is used by the CLI and tests.
func GenerateToken(u models.User, duration time.Duration) (string, error) {
	key, err := secretKey()
	if err != nil {
		return "", err
	}
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"name":  u.Name,
		"role":  u.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	key, err := secretKey()
	if err != nil {
		return nil, err
	}
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	})
}

// ExtractUserFromToken validates tokenString and returns the caller it names.
func ExtractUserFromToken(tokenString string) (*models.User, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	role, _ := claims["role"].(string)
	if !models.ValidRole(role) {
		return nil, errors.New("token does not contain a valid 'role' claim")
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)

	return &models.User{ID: sub, Email: email, Name: name, Role: role}, nil
}
