package usecase

import (
	"context"
	"fmt"

	"github.com/almasbek/contact-keeper/internal/domain"
	"github.com/almasbek/contact-keeper/internal/repository"
)

type ContactUsecase struct {
	repo repository.ContactRepository
}

func NewContactUsecase(repo repository.ContactRepository) *ContactUsecase {
	return &ContactUsecase{repo: repo}
}

type CreateContactInput struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// UpdateContactInput is a partial update: nil fields are left untouched.
// Owner and creation time are not merge targets.
type UpdateContactInput struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
}

func (u *ContactUsecase) Create(ctx context.Context, ownerID string, input CreateContactInput) (*domain.Contact, error) {
	if input.Name == "" || input.Phone == "" {
		return nil, fmt.Errorf("%w: name and phone required", domain.ErrValidation)
	}

	contact := &domain.Contact{
		OwnerID: ownerID,
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
	}

	created, err := u.repo.Create(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return created, nil
}

func (u *ContactUsecase) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Contact, error) {
	contacts, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func (u *ContactUsecase) Get(ctx context.Context, callerID, contactID string) (*domain.Contact, error) {
	return u.findOwned(ctx, callerID, contactID)
}

func (u *ContactUsecase) Update(ctx context.Context, callerID, contactID string, input UpdateContactInput) (*domain.Contact, error) {
	contact, err := u.findOwned(ctx, callerID, contactID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		contact.Name = *input.Name
	}
	if input.Phone != nil {
		contact.Phone = *input.Phone
	}
	if input.Email != nil {
		contact.Email = *input.Email
	}
	if input.Address != nil {
		contact.Address = *input.Address
	}

	updated, err := u.repo.Update(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}
	return updated, nil
}

func (u *ContactUsecase) Delete(ctx context.Context, callerID, contactID string) error {
	contact, err := u.findOwned(ctx, callerID, contactID)
	if err != nil {
		return err
	}

	if err := u.repo.Delete(ctx, contact.ID); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

// findOwned loads a contact and checks ownership. A contact that exists but
// belongs to someone else is reported as not found, so callers cannot probe
// for other users' records.
func (u *ContactUsecase) findOwned(ctx context.Context, callerID, contactID string) (*domain.Contact, error) {
	contact, err := u.repo.FindByID(ctx, contactID)
	if err != nil {
		return nil, err
	}
	if !contact.OwnedBy(callerID) {
		return nil, domain.ErrContactNotFound
	}
	return contact, nil
}
