package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nutriplan/backend/internal/service"
	"github.com/nutriplan/backend/internal/types"
)

// PlanHandler serves the two generation endpoints. It holds no per-request
// state; the generator is constructed once at startup and injected here.
type PlanHandler struct {
	generator service.TextGenerator
	logger    *zerolog.Logger
}

// NewPlanHandler creates a new PlanHandler instance
func NewPlanHandler(generator service.TextGenerator, logger *zerolog.Logger) *PlanHandler {
	return &PlanHandler{
		generator: generator,
		logger:    logger,
	}
}

// RegisterRoutes registers the generation routes
func (h *PlanHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/generate_diet_plan", h.GenerateDietPlan)
	router.POST("/nutrition_breakdown", h.NutritionBreakdown)
}

// GenerateDietPlan handles POST /generate_diet_plan
func (h *PlanHandler) GenerateDietPlan(c *gin.Context) {
	var req types.DietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	h.logger.Info().Str("user", req.Name).Msg("generating diet plan")

	prompt := service.BuildDietPlanPrompt(req)
	raw, err := h.generator.GenerateText(c.Request.Context(), prompt)
	if err != nil {
		h.logger.Error().Err(err).Msg("diet plan generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to generate diet plan: " + err.Error()})
		return
	}

	parsed, err := service.ExtractJSON(raw)
	if err != nil {
		logParseFailure(h.logger, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	resp, err := service.DecodeDietPlanResponse(parsed)
	if err != nil {
		h.logger.Error().Err(err).Msg("diet plan response rejected")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	h.logger.Info().Int("total_calories", resp.DailyPlan.TotalCalories).Msg("diet plan generated successfully")
	c.JSON(http.StatusOK, resp)
}

// NutritionBreakdown handles POST /nutrition_breakdown
func (h *PlanHandler) NutritionBreakdown(c *gin.Context) {
	var req types.NutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	h.logger.Info().Int("foods", len(req.Foods)).Msg("analyzing nutrition")

	prompt := service.BuildNutritionPrompt(req)
	raw, err := h.generator.GenerateText(c.Request.Context(), prompt)
	if err != nil {
		h.logger.Error().Err(err).Msg("nutrition analysis failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to analyze nutrition: " + err.Error()})
		return
	}

	parsed, err := service.ExtractJSON(raw)
	if err != nil {
		logParseFailure(h.logger, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	resp, err := service.DecodeNutritionResponse(parsed)
	if err != nil {
		h.logger.Error().Err(err).Msg("nutrition response rejected")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	h.logger.Info().Msg("nutrition breakdown completed successfully")
	c.JSON(http.StatusOK, resp)
}

func logParseFailure(logger *zerolog.Logger, err error) {
	event := logger.Error().Err(err)
	if parseErr, ok := err.(*service.ParseError); ok {
		event = event.Str("response_prefix", parseErr.Snippet)
	}
	event.Msg("failed to parse model response")
}
