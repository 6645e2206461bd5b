// seed inserts a test user and a handful of contacts into the local dev
// database. Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/almasbek/contact-keeper/internal/infrastructure/postgres"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedEmail    = "seed@test.local"
	seedPassword = "seed-password"
)

type contactSpec struct {
	name    string
	phone   string
	email   string
	address string
}

var contacts = []contactSpec{
	{"Aliya Bekova", "+7 701 111 2233", "aliya@example.com", "12 Abay Ave, Almaty"},
	{"Bob Harris", "+1 415 555 0199", "bob@example.com", ""},
	{"Chen Wei", "+86 10 5555 8888", "", "88 Nanjing Rd, Shanghai"},
	{"Dana Ionescu", "+40 21 555 7777", "dana@example.com", ""},
	{"Erik Larsen", "+47 22 55 66 77", "", ""},
}

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	var userID string
	err = pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash)
		VALUES ('Seed User', $1, $2)
		ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash
		RETURNING id`,
		seedEmail, string(hash),
	).Scan(&userID)
	if err != nil {
		log.Fatalf("seed user: %v", err)
	}

	for i, c := range contacts {
		// Staggered created_at so list ordering is visible in dev.
		createdAt := time.Now().Add(-time.Duration(len(contacts)-i) * time.Hour)
		_, err := pool.Exec(ctx, `
			INSERT INTO contacts (owner_id, name, phone, email, address, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			userID, c.name, c.phone, c.email, c.address, createdAt,
		)
		if err != nil {
			log.Fatalf("seed contact %q: %v", c.name, err)
		}
	}

	fmt.Printf("seeded user %s (%s) with %d contacts\n", userID, seedEmail, len(contacts))
}
