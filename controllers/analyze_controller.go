package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/nutrivision/backend/services"

	"github.com/gin-gonic/gin"
)

// MealAnalyzer is the slice of AnalysisService this controller needs.
type MealAnalyzer interface {
	Analyze(ctx context.Context, imageURL string) (*services.AnalysisResult, error)
}

type AnalyzeController struct {
	analyzer MealAnalyzer
}

func NewAnalyzeController(analyzer MealAnalyzer) *AnalyzeController {
	return &AnalyzeController{analyzer: analyzer}
}

// AnalyzeMeal proxies one image reference to the vision model and returns
// the structured analysis. Upstream detail never reaches the caller.
func (ac *AnalyzeController) AnalyzeMeal(c *gin.Context) {
	var body struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.ImageURL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "imageUrl is required"})
		return
	}

	res, err := ac.analyzer.Analyze(c.Request.Context(), body.ImageURL)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "imageUrl is required"})
			return
		}
		slog.Error("meal analysis failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to analyze the image"})
		return
	}

	c.JSON(http.StatusOK, res)
}
