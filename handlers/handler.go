package handlers

import (
	"errors"
	"net/http"

	"quickdeliver-api/middleware"
	"quickdeliver-api/models"
	"quickdeliver-api/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Handler carries the four marketplace stores. Handlers stay thin: bind the
// request, load the acting user, call the store, map the outcome to HTTP.
type Handler struct {
	Identity *store.Identity
	Catalog  *store.Catalog
	Cart     *store.Cart
	Ledger   *store.Ledger
}

func New(db *gorm.DB) *Handler {
	identity := store.NewIdentity(db)
	catalog := store.NewCatalog(db)
	cart := store.NewCart(db, catalog)
	return &Handler{
		Identity: identity,
		Catalog:  catalog,
		Cart:     cart,
		Ledger:   store.NewLedger(db, cart, identity),
	}
}

// actor resolves the authenticated user behind the request. The token may
// outlive the record it points at, so a miss is an auth failure.
func (h *Handler) actor(c *gin.Context) (*models.User, bool) {
	user, err := h.Identity.FindByID(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account no longer exists"})
		return nil, false
	}
	return user, true
}

// fail translates a store failure into the matching HTTP reply
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrDuplicateEmail), errors.Is(err, store.ErrEmailInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrUnknownEmail), errors.Is(err, store.ErrWrongPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrInvalidInput), errors.Is(err, store.ErrMissingRole),
		errors.Is(err, store.ErrEmptyCart), errors.Is(err, store.ErrEmptyArea),
		errors.Is(err, store.ErrIndexOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).Error("unexpected store failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
