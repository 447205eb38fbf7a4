package main

import (
	"errors"
	"strings"
	"time"

	"fintrack/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// tokenLifetime is fixed; tokens are stateless and carry no revocation state,
// so invalidation only happens via expiry.
const tokenLifetime = 30 * 24 * time.Hour

var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// RegisterUser creates a user with a bcrypt-hashed password. Email matching is
// case-sensitive exact, like the lookup on login. Input shape validation
// happens at the request boundary; this only enforces uniqueness.
func RegisterUser(email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	// pre-check existing (optimistic)
	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return models.User{}, ErrEmailTaken
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user := models.User{Email: email, HashedPassword: hashedPassword}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueConstraintError(err) { // race condition after initial check
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}
	return user, nil
}

// AuthenticateUser verifies email/password. Both unknown-email and
// wrong-password collapse into ErrInvalidCredentials so the response
// never reveals whether the email exists.
func AuthenticateUser(email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.HashedPassword, []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// GenerateToken signs a self-contained session token bound to the user id.
func GenerateToken(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(tokenLifetime).Unix(),
	})
	return token.SignedString(jwtSecret)
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "UNIQUE constraint") || strings.Contains(s, "already exists")
}
