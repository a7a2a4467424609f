package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
	"finboard/internal/services"
)

// WatchlistHandler handles watchlist requests.
type WatchlistHandler struct {
	watchlistService services.WatchlistServicer
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(watchlistService services.WatchlistServicer) *WatchlistHandler {
	return &WatchlistHandler{watchlistService: watchlistService}
}

// ToggleItemRequest represents the request payload for toggling a ticker.
type ToggleItemRequest struct {
	Ticker string `json:"ticker" binding:"required,min=1,max=20"`
	Name   string `json:"name" binding:"required,min=1,max=200"`
	Type   string `json:"type" binding:"required,min=1,max=50"`
}

// ListItems handles listing the watchlist.
func (h *WatchlistHandler) ListItems(c *gin.Context) {
	items, err := h.watchlistService.ListItems()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// ToggleItem handles adding or removing a ticker.
func (h *WatchlistHandler) ToggleItem(c *gin.Context) {
	var req ToggleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.watchlistService.ToggleItem(req.Ticker, req.Name, req.Type)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
