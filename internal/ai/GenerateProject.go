package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"siteforge_server/internal/ai/prompts"
	"siteforge_server/internal/utils"
)

// GenerateProject asks the model for a complete multi-file web project and
// returns the raw sectioned response text.
func (g *Generator) GenerateProject(ctx context.Context, userPrompt string) (string, error) {
	fullPrompt := fmt.Sprintf(prompts.GetProjectGenerationPrompt(), userPrompt)

	req := openai.ChatCompletionRequest{
		Model: g.modelID,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a helpful AI assistant that generates complete web projects following strict formatting instructions."},
			{Role: openai.ChatMessageRoleUser, Content: fullPrompt},
		},
		Temperature: 0.3, // keep the sectioned output format predictable
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil && utils.ShouldRetry(err) {
		log.Printf("OpenAI call failed, retrying once after delay... Error: %v", err)
		time.Sleep(2 * time.Second)
		resp, err = g.client.CreateChatCompletion(ctx, req)
	}
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("OpenAI usage for failed request: %+v", resp.Usage)
		return "", errors.New("openai returned empty response")
	}

	return resp.Choices[0].Message.Content, nil
}
