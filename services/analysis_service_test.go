package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tmc/langchaingo/llms"
)

const riceReply = `{
  "items": [
    {"food_name": "rice", "quantity_g": 150, "calories": 195,
     "macros": {"protein_g": 4, "carb_g": 42, "fat_g": 0}}
  ],
  "total": {"calories": 195, "protein_g": 4, "carb_g": 42, "fat_g": 0}
}`

type fakeModel struct {
	content string
	err     error
}

func (f *fakeModel) GenerateContent(_ context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.content}},
	}, nil
}

func (f *fakeModel) Call(_ context.Context, _ string, _ ...llms.CallOption) (string, error) {
	return f.content, f.err
}

func TestParseAnalysis(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		check   func(t *testing.T, res *AnalysisResult)
	}{
		{
			name:    "valid reply",
			content: riceReply,
			check: func(t *testing.T, res *AnalysisResult) {
				if len(res.Items) != 1 || res.Items[0].FoodName != "rice" {
					t.Errorf("items = %+v, want one rice item", res.Items)
				}
				if res.Total.Calories != 195 {
					t.Errorf("total calories = %v, want 195", res.Total.Calories)
				}
			},
		},
		{
			name:    "fenced reply",
			content: "```json\n" + riceReply + "\n```",
			check: func(t *testing.T, res *AnalysisResult) {
				if res.Total.Calories != 195 {
					t.Errorf("total calories = %v, want 195", res.Total.Calories)
				}
			},
		},
		{
			name:    "empty reply",
			content: "",
			wantErr: ErrUpstreamParse,
		},
		{
			name:    "not json",
			content: "Desculpe, não consigo analisar esta imagem.",
			wantErr: ErrUpstreamParse,
		},
		{
			name:    "no items",
			content: `{"items": [], "total": {"calories": 0, "protein_g": 0, "carb_g": 0, "fat_g": 0}}`,
			wantErr: ErrUpstreamParse,
		},
		{
			name: "missing food name",
			content: `{"items": [{"food_name": "", "quantity_g": 100, "calories": 50,
				"macros": {"protein_g": 1, "carb_g": 2, "fat_g": 3}}],
				"total": {"calories": 50, "protein_g": 1, "carb_g": 2, "fat_g": 3}}`,
			wantErr: ErrUpstreamParse,
		},
		{
			name: "negative quantity rejected not clamped",
			content: `{"items": [{"food_name": "rice", "quantity_g": -150, "calories": 195,
				"macros": {"protein_g": 4, "carb_g": 42, "fat_g": 0}}],
				"total": {"calories": 195, "protein_g": 4, "carb_g": 42, "fat_g": 0}}`,
			wantErr: ErrUpstreamParse,
		},
		{
			name: "negative total rejected",
			content: `{"items": [{"food_name": "rice", "quantity_g": 150, "calories": 195,
				"macros": {"protein_g": 4, "carb_g": 42, "fat_g": 0}}],
				"total": {"calories": -195, "protein_g": 4, "carb_g": 42, "fat_g": 0}}`,
			wantErr: ErrUpstreamParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseAnalysis(tt.content)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, res)
		})
	}
}

func TestAnalyzeMissingImageURL(t *testing.T) {
	svc := NewAnalysisServiceWithModel(&fakeModel{content: riceReply})
	for _, url := range []string{"", "   "} {
		if _, err := svc.Analyze(context.Background(), url); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Analyze(%q) err = %v, want ErrInvalidInput", url, err)
		}
	}
}

func TestAnalyzeUnavailable(t *testing.T) {
	svc := &AnalysisService{}
	if svc.Available() {
		t.Fatal("service with no model reports available")
	}
	if _, err := svc.Analyze(context.Background(), "https://example.com/meal.jpg"); !errors.Is(err, ErrAnalyzerUnavailable) {
		t.Errorf("err = %v, want ErrAnalyzerUnavailable", err)
	}
}

func TestAnalyzeBadUpstreamReply(t *testing.T) {
	svc := NewAnalysisServiceWithModel(&fakeModel{content: "<html>rate limited</html>"})
	if _, err := svc.Analyze(context.Background(), "https://example.com/meal.jpg"); !errors.Is(err, ErrUpstreamParse) {
		t.Errorf("err = %v, want ErrUpstreamParse", err)
	}
}

func TestAnalyzeUpstreamError(t *testing.T) {
	svc := NewAnalysisServiceWithModel(&fakeModel{err: errors.New("upstream 500")})
	_, err := svc.Analyze(context.Background(), "https://example.com/meal.jpg")
	if err == nil || !strings.Contains(err.Error(), "vision model") {
		t.Errorf("err = %v, want wrapped upstream failure", err)
	}
}
