package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
	"finboard/internal/simulation"
)

// SimulatorHandler handles compound-interest simulation requests.
type SimulatorHandler struct{}

// NewSimulatorHandler creates a new SimulatorHandler.
func NewSimulatorHandler() *SimulatorHandler {
	return &SimulatorHandler{}
}

// SimulateRequest represents the simulation parameters. Range violations are
// rejected by the simulation core itself so its messages stay authoritative;
// the binding layer only rejects non-numeric input.
type SimulateRequest struct {
	InitialAmount       *float64 `json:"initialAmount" binding:"required"`
	MonthlyContribution *float64 `json:"monthlyContribution" binding:"required"`
	AnnualRate          *float64 `json:"annualRate" binding:"required"`
	DurationYears       *int     `json:"durationYears" binding:"required"`
}

// Simulate handles a projection run.
func (h *SimulatorHandler) Simulate(c *gin.Context) {
	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	projection, err := simulation.Project(simulation.Params{
		InitialAmount:       *req.InitialAmount,
		MonthlyContribution: *req.MonthlyContribution,
		AnnualRate:          *req.AnnualRate,
		DurationYears:       *req.DurationYears,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, projection)
}
