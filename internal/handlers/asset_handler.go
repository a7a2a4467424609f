package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/services"
)

// AssetHandler handles asset requests.
type AssetHandler struct {
	assetService services.AssetServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// CreateAssetRequest represents the request payload for creating an asset.
type CreateAssetRequest struct {
	Name         string           `json:"name" binding:"required,min=1,max=200"`
	Ticker       string           `json:"ticker" binding:"required,min=1,max=20"`
	Type         models.AssetType `json:"type" binding:"required,asset_type"`
	Quantity     float64          `json:"quantity" binding:"gte=0"`
	BuyPrice     float64          `json:"buyPrice" binding:"gte=0"`
	CurrentPrice float64          `json:"currentPrice" binding:"gte=0"`
	Currency     string           `json:"currency" binding:"omitempty,iso4217"`
	Category     string           `json:"category" binding:"max=100"`
	BuyDate      *time.Time       `json:"buyDate"`
}

// ListAssets handles listing all assets with derived fields and chart series.
func (h *AssetHandler) ListAssets(c *gin.Context) {
	assets, err := h.assetService.ListAssets()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, assets)
}

// CreateAsset handles adding an asset to the portfolio.
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.NewAsset{
		Name:         req.Name,
		Ticker:       req.Ticker,
		Type:         req.Type,
		Quantity:     req.Quantity,
		BuyPrice:     req.BuyPrice,
		CurrentPrice: req.CurrentPrice,
		Currency:     req.Currency,
		Category:     req.Category,
	}
	if req.BuyDate != nil {
		input.BuyDate = *req.BuyDate
	}

	asset, err := h.assetService.CreateAsset(input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"asset": asset})
}

// DeleteAsset handles removing an asset.
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Missing asset id"))
		return
	}

	if err := h.assetService.DeleteAsset(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
