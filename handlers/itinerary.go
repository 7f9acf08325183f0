package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripforge/utils"
)

// ItineraryHandler serves the read-only itinerary views of a session.
type ItineraryHandler struct {
	registry *SessionRegistry
	logger   *zap.Logger
}

// NewItineraryHandler wires the handler to the session registry.
func NewItineraryHandler(registry *SessionRegistry, logger *zap.Logger) *ItineraryHandler {
	return &ItineraryHandler{registry: registry, logger: logger}
}

// CostItem is one row of the per-category cost breakdown.
type CostItem struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// GetItinerary returns the full itinerary for a session.
func (h *ItineraryHandler) GetItinerary(c *gin.Context) {
	session, ok := h.registry.Get(c.Param("sessionID"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "session not found", "")
		return
	}
	it := session.Store.Itinerary()
	if it == nil {
		utils.JSONError(c, http.StatusNotFound, "no itinerary yet", "")
		return
	}
	c.JSON(http.StatusOK, it)
}

// GetCostBreakdown groups activity costs by category, in order of first
// appearance across the days.
func (h *ItineraryHandler) GetCostBreakdown(c *gin.Context) {
	session, ok := h.registry.Get(c.Param("sessionID"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "session not found", "")
		return
	}
	it := session.Store.Itinerary()
	if it == nil {
		utils.JSONError(c, http.StatusNotFound, "no itinerary yet", "")
		return
	}

	totals := make(map[string]float64)
	var order []string
	for _, day := range it.Days {
		for _, act := range day.Activities {
			category := act.Category
			if category == "" {
				category = "Other"
			}
			if _, seen := totals[category]; !seen {
				order = append(order, category)
			}
			totals[category] += act.Cost
		}
	}

	items := make([]CostItem, 0, len(order))
	for _, category := range order {
		items = append(items, CostItem{Category: category, Amount: totals[category]})
	}

	c.JSON(http.StatusOK, gin.H{
		"currency": it.Currency,
		"total":    it.TotalCost,
		"items":    items,
	})
}

// GetShareCard returns the public summary used by the share view.
func (h *ItineraryHandler) GetShareCard(c *gin.Context) {
	session, ok := h.registry.Get(c.Param("sessionID"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "session not found", "")
		return
	}
	it := session.Store.Itinerary()
	if it == nil {
		utils.JSONError(c, http.StatusNotFound, "no itinerary yet", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":     it.Title,
		"summary":   it.Summary,
		"days":      len(it.Days),
		"totalCost": it.TotalCost,
		"currency":  it.Currency,
	})
}
