package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/almasbek/contact-keeper/internal/domain"
	"github.com/almasbek/contact-keeper/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type tokenIssuer interface {
	Issue(subjectID string) (string, error)
}

type AuthUsecase struct {
	users  repository.UserRepository
	tokens tokenIssuer
}

func NewAuthUsecase(users repository.UserRepository, tokens tokenIssuer) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens}
}

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Register hashes the password and creates the user.
// The find-before-insert keeps the original duplicate check; the unique
// index on email closes the race between the two.
func (u *AuthUsecase) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" || input.ConfirmPassword == "" {
		return nil, fmt.Errorf("%w: email and password required", domain.ErrValidation)
	}
	if input.Password != input.ConfirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", domain.ErrValidation)
	}

	if _, err := u.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := u.users.Create(ctx, input.Name, input.Email, string(hash))
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and returns a signed identity token. An unknown
// email and a wrong password both come back as ErrInvalidCredentials.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password required", domain.ErrValidation)
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
