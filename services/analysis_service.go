package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/nutrivision/backend/models"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// Instruction sent with every analysis request. The model must answer with
// JSON only, matching AnalysisResult.
const analysisPrompt = `Analise a imagem e liste todos os alimentos que aparecem.
Estime o peso aproximado em gramas de cada item.
Calcule calorias totais e a distribuição de macronutrientes para cada alimento e para a refeição completa.
Retorne APENAS um JSON válido no formato:
{
  "items": [
    {
      "food_name": "nome do alimento",
      "quantity_g": 150,
      "calories": 280,
      "macros": { "protein_g": 45, "carb_g": 0, "fat_g": 8 }
    }
  ],
  "total": { "calories": 560, "protein_g": 48, "carb_g": 42, "fat_g": 14 }
}`

const (
	analysisModel     = "gpt-4o"
	analysisMaxTokens = 1000
	analysisTimeout   = 60 * time.Second
)

type AnalyzedItem struct {
	FoodName  string        `json:"food_name"`
	QuantityG float64       `json:"quantity_g"`
	Calories  float64       `json:"calories"`
	Macros    models.Macros `json:"macros"`
}

type AnalysisTotal struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbG    float64 `json:"carb_g"`
	FatG     float64 `json:"fat_g"`
}

// AnalysisResult is the constrained shape the vision model is instructed to
// return: per-item estimates plus a meal-level arithmetic total.
type AnalysisResult struct {
	Items []AnalyzedItem `json:"items"`
	Total AnalysisTotal  `json:"total"`
}

// AnalysisService is a stateless proxy in front of the external vision
// model. One outbound call per invocation; no retry, no caching.
type AnalysisService struct {
	llm llms.Model
}

// NewAnalysisService builds the gateway. A missing OPENAI_API_KEY leaves it
// in an unavailable state instead of failing the process.
func NewAnalysisService() *AnalysisService {
	if os.Getenv("OPENAI_API_KEY") == "" {
		slog.Warn("OPENAI_API_KEY not set, meal analysis disabled")
		return &AnalysisService{}
	}

	llm, err := openai.New(openai.WithModel(analysisModel))
	if err != nil {
		slog.Error("openai client init failed, meal analysis disabled", "error", err)
		return &AnalysisService{}
	}
	return &AnalysisService{llm: llm}
}

// NewAnalysisServiceWithModel injects a model implementation directly.
func NewAnalysisServiceWithModel(m llms.Model) *AnalysisService {
	return &AnalysisService{llm: m}
}

func (s *AnalysisService) Available() bool { return s.llm != nil }

// Analyze sends the image reference to the vision model and parses its
// JSON-only reply.
func (s *AnalysisService) Analyze(ctx context.Context, imageURL string) (*AnalysisResult, error) {
	if strings.TrimSpace(imageURL) == "" {
		return nil, fmt.Errorf("%w: imageUrl is required", ErrInvalidInput)
	}
	if s.llm == nil {
		return nil, ErrAnalyzerUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, analysisTimeout)
	defer cancel()

	resp, err := s.llm.GenerateContent(ctx,
		[]llms.MessageContent{{
			Role: schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(analysisPrompt),
				llms.ImageURLPart(imageURL),
			},
		}},
		llms.WithMaxTokens(analysisMaxTokens),
		llms.WithJSONMode(),
	)
	if err != nil {
		return nil, fmt.Errorf("calling vision model: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in reply", ErrUpstreamParse)
	}

	return ParseAnalysis(resp.Choices[0].Content)
}

// ParseAnalysis decodes and validates the model's textual reply. The model
// is not contractually guaranteed to match the shape, so every field is
// checked; implausible values are rejected rather than clamped.
func ParseAnalysis(content string) (*AnalysisResult, error) {
	content = strings.TrimSpace(stripFences(content))
	if content == "" {
		return nil, fmt.Errorf("%w: empty reply", ErrUpstreamParse)
	}

	var res AnalysisResult
	if err := json.Unmarshal([]byte(content), &res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamParse, err)
	}
	if err := validateAnalysis(&res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamParse, err)
	}
	return &res, nil
}

func validateAnalysis(res *AnalysisResult) error {
	if len(res.Items) == 0 {
		return errors.New("no items")
	}
	for i, it := range res.Items {
		if strings.TrimSpace(it.FoodName) == "" {
			return fmt.Errorf("item %d: missing food_name", i)
		}
		for _, v := range []float64{it.QuantityG, it.Calories, it.Macros.ProteinG, it.Macros.CarbG, it.Macros.FatG} {
			if !plausible(v) {
				return fmt.Errorf("item %q: implausible value %v", it.FoodName, v)
			}
		}
	}
	for _, v := range []float64{res.Total.Calories, res.Total.ProteinG, res.Total.CarbG, res.Total.FatG} {
		if !plausible(v) {
			return fmt.Errorf("implausible total value %v", v)
		}
	}
	return nil
}

func plausible(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Some models wrap the object in markdown fences even in JSON mode.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	return strings.ReplaceAll(s, "```", "")
}
