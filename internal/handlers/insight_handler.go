package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
	"finboard/internal/services"
)

// InsightHandler handles portfolio insight and questionnaire requests.
type InsightHandler struct {
	insightService services.InsightServicer
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(insightService services.InsightServicer) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// CreateProfileRequest represents the questionnaire submission payload.
type CreateProfileRequest struct {
	RiskTolerance     string `json:"riskTolerance" binding:"required,risk_tolerance"`
	InvestmentHorizon string `json:"investmentHorizon" binding:"required,investment_horizon"`
	Experience        string `json:"experience" binding:"required,experience_level"`
	Objectives        string `json:"objectives" binding:"max=1000"`
}

// GetInsights handles the insights dashboard payload.
func (h *InsightHandler) GetInsights(c *gin.Context) {
	insights, err := h.insightService.GetInsights()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, insights)
}

// CreateProfile handles a questionnaire submission. Each submission creates
// a new immutable profile row with its computed score.
func (h *InsightHandler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	profile, err := h.insightService.CreateProfile(req.RiskTolerance, req.InvestmentHorizon, req.Experience, req.Objectives)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}
