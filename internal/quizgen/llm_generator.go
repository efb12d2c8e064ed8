package quizgen

import (
	"context"
	"fmt"

	"github.com/abhisek/topiq/internal/llm"
	"github.com/abhisek/topiq/internal/question"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate requests a full quiz and parses the response blocks. Malformed
// blocks are dropped; if nothing parses the whole generation fails with
// ErrNoQuestions so the caller can report it and stay on setup.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) ([]question.Question, error) {
	if input.Count < MinQuestions || input.Count > MaxQuestions {
		return nil, fmt.Errorf("question count %d outside [%d,%d]", input.Count, MinQuestions, MaxQuestions)
	}

	ctx = llm.WithPurpose(ctx, "quiz-generation")
	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildBatchMessage(input)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	questions := question.ParseBatch(resp.Content)
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	if len(questions) > input.Count {
		questions = questions[:input.Count]
	}
	return questions, nil
}

// GenerateOne requests a single question, avoiding the prompts in
// input.Exclude. Used by the preview screen's replace and add actions.
func (g *LLMGenerator) GenerateOne(ctx context.Context, input GenerateInput) (question.Question, error) {
	ctx = llm.WithPurpose(ctx, "question-replace")
	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSingleMessage(input, g.config.MaxExclude)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return question.Question{}, fmt.Errorf("LLM generation failed: %w", err)
	}

	questions := question.ParseBatch(resp.Content)
	if len(questions) == 0 {
		return question.Question{}, ErrNoQuestions
	}
	return questions[0], nil
}
