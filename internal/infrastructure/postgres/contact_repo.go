package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/almasbek/contact-keeper/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	query := `
		INSERT INTO contacts (owner_id, name, phone, email, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, owner_id, name, phone, email, address, created_at, updated_at`

	row := r.pool.QueryRow(ctx, query,
		contact.OwnerID,
		contact.Name,
		contact.Phone,
		contact.Email,
		contact.Address,
	)
	return scanContact(row)
}

func (r *ContactRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Contact, error) {
	query := `
		SELECT id, owner_id, name, phone, email, address, created_at, updated_at
		FROM contacts
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*domain.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*domain.Contact, error) {
	query := `
		SELECT id, owner_id, name, phone, email, address, created_at, updated_at
		FROM contacts
		WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	return scanContact(row)
}

func (r *ContactRepository) Update(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	query := `
		UPDATE contacts
		SET    name = $2, phone = $3, email = $4, address = $5, updated_at = NOW()
		WHERE  id = $1
		RETURNING id, owner_id, name, phone, email, address, created_at, updated_at`

	row := r.pool.QueryRow(ctx, query,
		contact.ID,
		contact.Name,
		contact.Phone,
		contact.Email,
		contact.Address,
	)
	return scanContact(row)
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

func scanContact(row pgx.Row) (*domain.Contact, error) {
	var c domain.Contact
	err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&c.Address,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("scan contact: %w", err)
	}
	return &c, nil
}
