package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// AIService wraps the Gemini client for the book discovery features:
// turning natural-language queries into catalog searches, recommending
// books from purchase history, and summarizing catalog descriptions.
type AIService struct {
	Client *genai.Client
	model  string
}

// NewAIService initializes the Gemini client.
func NewAIService(ctx context.Context, apiKey, model string) (*AIService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &AIService{Client: client, model: model}, nil
}

// ExtractSearchTerms condenses a natural-language request ("something like
// Dune but less grim") into catalog search keywords.
func (s *AIService) ExtractSearchTerms(ctx context.Context, query string) (string, error) {
	text, err := s.generate(ctx, searchTermsPrompt(query))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// RecommendBooks produces a short recommendation write-up based on the
// titles a user has already bought plus an optional free-text wish.
func (s *AIService) RecommendBooks(ctx context.Context, purchasedTitles []string, wish string) (string, error) {
	return s.generate(ctx, recommendationPrompt(purchasedTitles, wish))
}

// SummarizeBook returns a concise, spoiler-free summary of a book.
func (s *AIService) SummarizeBook(ctx context.Context, title string, authors []string, description string) (string, error) {
	return s.generate(ctx, summaryPrompt(title, authors, description))
}

func (s *AIService) generate(ctx context.Context, prompt string) (string, error) {
	model := s.Client.GenerativeModel(s.model)

	res, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("error generating content: %w", err)
	}
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	var b strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String(), nil
}
