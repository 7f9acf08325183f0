package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripforge/utils"
)

// CheckoutHandler collects traveler contact details for a generated
// itinerary. No payment is processed; it returns a booking reference.
type CheckoutHandler struct {
	registry *SessionRegistry
	logger   *zap.Logger
}

// NewCheckoutHandler wires the handler to the session registry.
func NewCheckoutHandler(registry *SessionRegistry, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{registry: registry, logger: logger}
}

// CheckoutRequest is the traveler information form.
type CheckoutRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Travelers int    `json:"travelers" binding:"required,min=1"`
}

// Checkout validates the form and prices the itinerary for the party size.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	session, ok := h.registry.Get(c.Param("sessionID"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "session not found", "")
		return
	}
	it := session.Store.Itinerary()
	if it == nil {
		utils.JSONError(c, http.StatusConflict, "no itinerary to check out", "")
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	reference := uuid.New().String()
	total := it.TotalCost * float64(req.Travelers)
	h.logger.Info("checkout completed",
		zap.String("sessionId", session.ID),
		zap.String("reference", reference),
		zap.Int("travelers", req.Travelers),
	)

	c.JSON(http.StatusCreated, gin.H{
		"reference": reference,
		"trip":      it.Title,
		"days":      len(it.Days),
		"travelers": req.Travelers,
		"total":     total,
		"currency":  it.Currency,
	})
}
