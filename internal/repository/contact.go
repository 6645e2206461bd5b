package repository

import (
	"context"

	"github.com/almasbek/contact-keeper/internal/domain"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Contact, error)
	// FindByID does not filter by owner; ownership is the caller's problem.
	FindByID(ctx context.Context, id string) (*domain.Contact, error)
	Update(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
}
