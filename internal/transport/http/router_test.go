package httptransport_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/almasbek/contact-keeper/internal/domain"
	"github.com/almasbek/contact-keeper/internal/token"
	httptransport "github.com/almasbek/contact-keeper/internal/transport/http"
	"github.com/almasbek/contact-keeper/internal/transport/http/handler"
	"github.com/almasbek/contact-keeper/internal/usecase"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuth struct{}

func (stubAuth) Register(_ context.Context, input usecase.RegisterInput) (*domain.User, error) {
	return &domain.User{ID: "user-1", Email: input.Email}, nil
}

func (stubAuth) Login(_ context.Context, _, _ string) (string, error) {
	return "signed-token", nil
}

type stubContacts struct{}

func (stubContacts) Create(_ context.Context, ownerID string, input usecase.CreateContactInput) (*domain.Contact, error) {
	return &domain.Contact{ID: "c-1", OwnerID: ownerID, Name: input.Name, Phone: input.Phone}, nil
}

func (stubContacts) ListByOwner(_ context.Context, ownerID string) ([]*domain.Contact, error) {
	return []*domain.Contact{{ID: "c-1", OwnerID: ownerID, Name: "Ann", Phone: "1"}}, nil
}

func (stubContacts) Get(_ context.Context, callerID, contactID string) (*domain.Contact, error) {
	return &domain.Contact{ID: contactID, OwnerID: callerID, Name: "Ann", Phone: "1"}, nil
}

func (stubContacts) Update(_ context.Context, callerID, contactID string, _ usecase.UpdateContactInput) (*domain.Contact, error) {
	return &domain.Contact{ID: contactID, OwnerID: callerID, Name: "Ann", Phone: "1"}, nil
}

func (stubContacts) Delete(_ context.Context, _, _ string) error { return nil }

func newRouter(iss *token.Issuer) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return httptransport.NewRouter(
		logger,
		handler.NewAuthHandler(stubAuth{}, logger),
		handler.NewContactHandler(stubContacts{}, logger),
		iss,
	)
}

func TestHealthRoute_PlainText(t *testing.T) {
	r := newRouter(token.NewIssuer([]byte("router-test-secret-32-characters!")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != "Contact Keeper API is running" {
		t.Errorf("body = %q", got)
	}
}

func TestCrossOriginRequestsAllowed(t *testing.T) {
	r := newRouter(token.NewIssuer([]byte("router-test-secret-32-characters!")))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/login", nil)
	req.Header.Set("Origin", "http://frontend.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestContactRoutes_RequireAuth(t *testing.T) {
	r := newRouter(token.NewIssuer([]byte("router-test-secret-32-characters!")))

	cases := []struct{ method, path string }{
		{http.MethodPost, "/contacts"},
		{http.MethodGet, "/contacts"},
		{http.MethodGet, "/contacts/c-1"},
		{http.MethodPut, "/contacts/c-1"},
		{http.MethodDelete, "/contacts/c-1"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", tc.method, tc.path, w.Code)
		}
	}
}

func TestContactRoutes_PassWithIssuedToken(t *testing.T) {
	iss := token.NewIssuer([]byte("router-test-secret-32-characters!"))
	r := newRouter(iss)

	tok, err := iss.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
}
