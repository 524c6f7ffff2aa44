package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"

	"shomadhan-be/models"
)

// GenerateToken issues a JWT for an authenticated caller. Role and display
// name ride along in the claims because every status transition records who
// performed it.
func GenerateToken(id string, role models.Role, name string) (string, error) {
	secretStr := os.Getenv("JWT_SECRET")
	if secretStr == "" {
		return "", fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	jwtSecret := []byte(secretStr)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": id,
		"role":    string(role),
		"name":    name,
		"exp":     time.Now().Add(time.Hour * 72).Unix(), // Token expires in 72 hours
	})

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
