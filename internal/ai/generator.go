package ai

import (
	openai "github.com/sashabaranov/go-openai"
)

// Generator wraps the OpenAI chat API as the project generation
// collaborator. It produces raw text only; decomposition into files is the
// parser's job so it stays testable without a network.
type Generator struct {
	client  *openai.Client
	modelID string
}

// NewGenerator builds a generator for the given API key. modelID falls back
// to GPT-4o when unset.
func NewGenerator(apiKey string, modelID string) *Generator {
	if modelID == "" {
		modelID = openai.GPT4o
	}
	return &Generator{
		client:  openai.NewClient(apiKey),
		modelID: modelID,
	}
}
