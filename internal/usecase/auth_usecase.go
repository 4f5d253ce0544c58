package usecase

import (
	"errors"
	"fmt"
	"schichtplan-backend/internal/model"
	"schichtplan-backend/internal/repository"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthUsecase struct {
	repo   *repository.UserRepository
	secret []byte
	ttl    time.Duration
}

func NewAuthUsecase(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthUsecase {
	return &AuthUsecase{repo: repo, secret: []byte(secret), ttl: ttl}
}

// Register creates or refreshes an operator account.
func (u *AuthUsecase) Register(name, username, password, role string) (*model.User, error) {
	if username == "" || len(password) < 8 {
		return nil, fmt.Errorf("username is required and password needs at least 8 characters")
	}
	if !model.ValidRole(role) {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	// 1. Hashing Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// 2. Save
	user := &model.User{
		Name:     name,
		Username: username,
		Password: string(hashedPassword),
		Role:     role,
	}
	if err := u.repo.Upsert(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the password and returns a signed token.
func (u *AuthUsecase) Login(username, password string) (string, *model.User, error) {
	// 1. Find user
	user, err := u.repo.GetByUsername(username)
	if isNotFound(err) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	// 2. Compare password (input vs stored hash)
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	// 3. Issue JWT
	token, err := u.IssueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

func (u *AuthUsecase) IssueToken(user model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"jti":      uuid.NewString(),
		"iat":      now.Unix(),
		"exp":      now.Add(u.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(u.secret)
}
