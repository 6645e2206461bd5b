package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/almasbek/contact-keeper/internal/domain"
	"github.com/almasbek/contact-keeper/internal/usecase"
	"golang.org/x/crypto/bcrypt"
)

// ---- fakes ----

type fakeUserRepo struct {
	create      func(ctx context.Context, name, email, passwordHash string) (*domain.User, error)
	findByEmail func(ctx context.Context, email string) (*domain.User, error)
}

func (r *fakeUserRepo) Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error) {
	return r.create(ctx, name, email, passwordHash)
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findByEmail(ctx, email)
}

type fakeIssuer struct {
	issue func(subjectID string) (string, error)
}

func (i *fakeIssuer) Issue(subjectID string) (string, error) { return i.issue(subjectID) }

// ---- helpers ----

func notFoundRepo() *fakeUserRepo {
	return &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
		create: func(_ context.Context, name, email, hash string) (*domain.User, error) {
			return &domain.User{ID: "user-1", Name: name, Email: email, PasswordHash: hash}, nil
		},
	}
}

func staticIssuer(tok string) *fakeIssuer {
	return &fakeIssuer{issue: func(string) (string, error) { return tok, nil }}
}

// ---- Register ----

func TestRegister_MissingFields(t *testing.T) {
	u := usecase.NewAuthUsecase(notFoundRepo(), staticIssuer("t"))

	cases := []usecase.RegisterInput{
		{Email: "", Password: "pw", ConfirmPassword: "pw"},
		{Email: "a@b.c", Password: "", ConfirmPassword: "pw"},
		{Email: "a@b.c", Password: "pw", ConfirmPassword: ""},
	}
	for _, in := range cases {
		_, err := u.Register(context.Background(), in)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Register(%+v) err = %v, want ErrValidation", in, err)
		}
	}
}

func TestRegister_PasswordMismatch(t *testing.T) {
	u := usecase.NewAuthUsecase(notFoundRepo(), staticIssuer("t"))

	_, err := u.Register(context.Background(), usecase.RegisterInput{
		Email:           "a@b.c",
		Password:        "correct horse battery staple",
		ConfirmPassword: "correct horse battery stable",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := notFoundRepo()
	repo.findByEmail = func(_ context.Context, email string) (*domain.User, error) {
		return &domain.User{ID: "existing", Email: email}, nil
	}
	repo.create = func(_ context.Context, _, _, _ string) (*domain.User, error) {
		t.Fatal("create must not be called for a duplicate email")
		return nil, nil
	}
	u := usecase.NewAuthUsecase(repo, staticIssuer("t"))

	_, err := u.Register(context.Background(), usecase.RegisterInput{
		Email: "a@b.c", Password: "pw", ConfirmPassword: "pw",
	})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Errorf("err = %v, want ErrDuplicateEmail", err)
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	const password = "hunter2hunter2"

	var storedHash string
	repo := notFoundRepo()
	repo.create = func(_ context.Context, name, email, hash string) (*domain.User, error) {
		storedHash = hash
		return &domain.User{ID: "user-1", Name: name, Email: email, PasswordHash: hash}, nil
	}
	u := usecase.NewAuthUsecase(repo, staticIssuer("t"))

	_, err := u.Register(context.Background(), usecase.RegisterInput{
		Name: "Ann", Email: "ann@b.c", Password: password, ConfirmPassword: password,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if storedHash == password || strings.Contains(storedHash, password) {
		t.Fatal("plaintext password leaked into the stored hash")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestRegister_SaltedHashesDiffer(t *testing.T) {
	const password = "same-password-twice"

	var hashes []string
	repo := notFoundRepo()
	repo.create = func(_ context.Context, name, email, hash string) (*domain.User, error) {
		hashes = append(hashes, hash)
		return &domain.User{ID: "user", Email: email, PasswordHash: hash}, nil
	}
	u := usecase.NewAuthUsecase(repo, staticIssuer("t"))

	for _, email := range []string{"one@b.c", "two@b.c"} {
		if _, err := u.Register(context.Background(), usecase.RegisterInput{
			Email: email, Password: password, ConfirmPassword: password,
		}); err != nil {
			t.Fatalf("register %s: %v", email, err)
		}
	}

	if hashes[0] == hashes[1] {
		t.Error("identical digests for the same plaintext; hash is unsalted")
	}
}

// ---- Login ----

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}

func TestLogin_Success(t *testing.T) {
	const password = "pw-123456"
	repo := notFoundRepo()
	repo.findByEmail = func(_ context.Context, email string) (*domain.User, error) {
		return &domain.User{ID: "user-42", Email: email, PasswordHash: hashOf(t, password)}, nil
	}

	var issuedFor string
	issuer := &fakeIssuer{issue: func(sub string) (string, error) {
		issuedFor = sub
		return "signed-token", nil
	}}
	u := usecase.NewAuthUsecase(repo, issuer)

	tok, err := u.Login(context.Background(), "a@b.c", password)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tok != "signed-token" {
		t.Errorf("token = %q, want %q", tok, "signed-token")
	}
	if issuedFor != "user-42" {
		t.Errorf("token issued for %q, want user-42", issuedFor)
	}
}

func TestLogin_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	unknown := notFoundRepo()
	wrongPw := notFoundRepo()
	wrongPw.findByEmail = func(_ context.Context, email string) (*domain.User, error) {
		return &domain.User{ID: "user-1", Email: email, PasswordHash: hashOf(t, "the-real-password")}, nil
	}

	for name, repo := range map[string]*fakeUserRepo{"unknown email": unknown, "wrong password": wrongPw} {
		u := usecase.NewAuthUsecase(repo, staticIssuer("t"))
		_, err := u.Login(context.Background(), "a@b.c", "not-the-password")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("%s: err = %v, want ErrInvalidCredentials", name, err)
		}
	}
}

func TestLogin_MissingFields(t *testing.T) {
	u := usecase.NewAuthUsecase(notFoundRepo(), staticIssuer("t"))

	for _, in := range [][2]string{{"", "pw"}, {"a@b.c", ""}} {
		_, err := u.Login(context.Background(), in[0], in[1])
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Login(%q, %q) err = %v, want ErrValidation", in[0], in[1], err)
		}
	}
}
