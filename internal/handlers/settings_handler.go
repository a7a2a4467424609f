package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
	"finboard/internal/settings"
)

// SettingsHandler handles user preference requests.
type SettingsHandler struct {
	store *settings.Store
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(store *settings.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// UpdateSettingsRequest represents the request payload for updating settings.
type UpdateSettingsRequest struct {
	Currency    string `json:"currency" binding:"required,oneof=EUR USD"`
	Theme       string `json:"theme" binding:"required,oneof=dark light"`
	SidebarOpen bool   `json:"sidebarOpen"`
}

// GetSettings handles reading the current settings.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Get())
}

// UpdateSettings handles replacing the settings.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	next := settings.Settings{
		Currency:    req.Currency,
		Theme:       req.Theme,
		SidebarOpen: req.SidebarOpen,
	}
	if err := h.store.Update(next); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, next)
}
