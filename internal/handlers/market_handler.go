package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finboard/internal/services"
)

// MarketHandler handles market data requests.
type MarketHandler struct {
	marketService services.MarketServicer
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(marketService services.MarketServicer) *MarketHandler {
	return &MarketHandler{marketService: marketService}
}

// GetMarket handles listing enriched market quotes.
func (h *MarketHandler) GetMarket(c *gin.Context) {
	quotes, err := h.marketService.GetMarket()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, quotes)
}
