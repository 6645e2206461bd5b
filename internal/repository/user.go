package repository

import (
	"context"

	"github.com/almasbek/contact-keeper/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
