package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/almasbek/contact-keeper/internal/domain"
	"github.com/almasbek/contact-keeper/internal/transport/http/middleware"
	"github.com/almasbek/contact-keeper/internal/usecase"
	"github.com/gin-gonic/gin"
)

type contactUsecaser interface {
	Create(ctx context.Context, ownerID string, input usecase.CreateContactInput) (*domain.Contact, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Contact, error)
	Get(ctx context.Context, callerID, contactID string) (*domain.Contact, error)
	Update(ctx context.Context, callerID, contactID string, input usecase.UpdateContactInput) (*domain.Contact, error)
	Delete(ctx context.Context, callerID, contactID string) error
}

type ContactHandler struct {
	contactUsecase contactUsecaser
	logger         *slog.Logger
}

func NewContactHandler(contactUsecase contactUsecaser, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
		logger:         logger.With("component", "contact_handler"),
	}
}

type createContactRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// updateContactRequest is a partial body: absent keys leave the stored
// value untouched.
type updateContactRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

type contactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toContactResponse(c *domain.Contact) contactResponse {
	return contactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// POST /contacts
func (h *ContactHandler) Create(c *gin.Context) {
	var req createContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errNamePhoneRequired})
		return
	}

	contact, err := h.contactUsecase.Create(c.Request.Context(), c.GetString(middleware.ContextUserID), usecase.CreateContactInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"message": errNamePhoneRequired})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "create contact", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": errServerError})
		return
	}

	c.JSON(http.StatusOK, toContactResponse(contact))
}

// GET /contacts
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.contactUsecase.ListByOwner(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list contacts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": errServerError})
		return
	}

	out := make([]contactResponse, 0, len(contacts))
	for _, contact := range contacts {
		out = append(out, toContactResponse(contact))
	}
	c.JSON(http.StatusOK, out)
}

// GET /contacts/:id
func (h *ContactHandler) GetByID(c *gin.Context) {
	contact, err := h.contactUsecase.Get(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id"))
	if err != nil {
		h.replyContactErr(c, "get contact", err)
		return
	}
	c.JSON(http.StatusOK, toContactResponse(contact))
}

// PUT /contacts/:id
func (h *ContactHandler) Update(c *gin.Context) {
	var req updateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errInvalidBody})
		return
	}

	contact, err := h.contactUsecase.Update(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id"), usecase.UpdateContactInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		h.replyContactErr(c, "update contact", err)
		return
	}
	c.JSON(http.StatusOK, toContactResponse(contact))
}

// DELETE /contacts/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	err := h.contactUsecase.Delete(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id"))
	if err != nil {
		h.replyContactErr(c, "delete contact", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}

// replyContactErr maps a missing or foreign contact to the same 404, so the
// response never reveals whether the record exists.
func (h *ContactHandler) replyContactErr(c *gin.Context, op string, err error) {
	if errors.Is(err, domain.ErrContactNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": errContactNotFound})
		return
	}
	h.logger.ErrorContext(c.Request.Context(), op, "contact_id", c.Param("id"), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": errServerError})
}
