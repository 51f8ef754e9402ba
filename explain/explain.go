// Package explain turns a found counterexample lasso into a short
// English narration via an LLM. It takes the formula and the lasso's
// states already rendered as strings and imports nothing from the
// model checker; modelcheck never imports this package either, so
// narration failures never affect model-checking itself.
package explain

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Client wraps an OpenAI chat client with the system prompt used to
// narrate lassos.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient builds a Client from OPENAI_API_KEY. It returns an error
// if the key is unset, since a Client with no key can never complete
// a request.
func NewClient() (*Client, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("explain: OPENAI_API_KEY not set")
	}
	return &Client{api: openai.NewClient(key), model: openai.GPT4}, nil
}

// Narrate asks the model to explain, in a couple of sentences, why
// the given stem/loop state sequence is a counterexample to formula.
func (c *Client) Narrate(ctx context.Context, formula string, stem, loop []string) (string, error) {
	systemPrompt := `You are an expert in linear temporal logic and explaining model-checking counterexamples.
Given an LTL formula and a lasso-shaped counterexample (a finite stem followed by a repeating loop of states),
explain in two or three plain-English sentences why that run violates the formula. Do not restate the raw
state sequence verbatim; describe the pattern.`

	userPrompt := fmt.Sprintf(
		"Formula: %s\nStem: %s\nLoop (repeats forever): %s\n",
		formula, strings.Join(stem, " -> "), strings.Join(loop, " -> "),
	)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("explain: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("explain: no response choices")
	}
	return resp.Choices[0].Message.Content, nil
}
