// Package embeddings creates vector representations of job descriptions
// for semantic search.
package embeddings

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Generator produces embedding vectors for text.
type Generator interface {
	Generate(ctx context.Context, text string) ([]float32, error)
}

// OpenAIGenerator implements Generator against the OpenAI embeddings API.
type OpenAIGenerator struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

// NewOpenAIGenerator creates an embeddings generator.
func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &OpenAIGenerator{
		client: &client,
		model:  openai.EmbeddingModel(model),
	}
}

// maxEmbedChars bounds the input so oversized job descriptions do not blow
// the embedding model's token limit.
const maxEmbedChars = 32000

// Generate creates an embedding vector for the given text.
func (g *OpenAIGenerator) Generate(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}
	if len(text) > maxEmbedChars {
		text = text[:maxEmbedChars]
	}

	resp, err := g.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: []string{text},
		},
		Model: g.model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no embedding data returned")
	}

	embedding64 := resp.Data[0].Embedding
	embedding32 := make([]float32, len(embedding64))
	for i, v := range embedding64 {
		embedding32[i] = float32(v)
	}

	return embedding32, nil
}
