package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/claimpilot/fnolagent/internal/model"
)

// maxPromptChars bounds how much document text is sent to the service.
const maxPromptChars = 4000

// OpenAIExtractor implements Extractor using OpenAI's Chat Completions API
type OpenAIExtractor struct {
	client  *openai.Client
	cfg     model.LLMConfig
	limiter *rate.Limiter
	schema  *jsonschema.Schema
}

// NewOpenAIExtractor creates a new OpenAI-backed extractor
func NewOpenAIExtractor(cfg model.LLMConfig) (*OpenAIExtractor, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 60
	}

	schema, err := compileFieldSchema()
	if err != nil {
		return nil, fmt.Errorf("compile field schema: %w", err)
	}

	return &OpenAIExtractor{
		client:  openai.NewClientWithConfig(clientConfig),
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(rpm/60), 1),
		schema:  schema,
	}, nil
}

// Name returns the strategy name
func (e *OpenAIExtractor) Name() string {
	return "openai"
}

// ExtractFields sends the document text to the service and coerces the
// response into the fixed field schema. Any failure is wrapped in
// ErrService so the caller can fall back to the rule engine.
func (e *OpenAIExtractor) ExtractFields(ctx context.Context, rawText string) (*model.FieldSet, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait: %v", ErrService, err)
	}

	timeout := e.cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text := rawText
	if len(text) > maxPromptChars {
		text = text[:maxPromptChars]
	}

	maxTokens := e.cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1500
	}

	req := openai.ChatCompletionRequest{
		Model: e.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: "Extract fields from this FNOL document:\n\n" + text,
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.1, // Low temperature for deterministic field values
	}

	resp, err := e.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: chat completion: %v", ErrService, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrService)
	}

	return e.coerce(resp.Choices[0].Message.Content)
}

// coerce turns the loosely-typed service response into the exact schema.
// Missing keys default to absent; structural violations fail.
func (e *OpenAIExtractor) coerce(content string) (*model.FieldSet, error) {
	raw := []byte(StripCodeFence(content))

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: response is not valid JSON: %v", ErrService, err)
	}
	if err := e.schema.Validate(v); err != nil {
		return nil, fmt.Errorf("%w: response does not match field schema: %v", ErrService, err)
	}

	var fs model.FieldSet
	if err := json.Unmarshal(raw, &fs); err != nil {
		return nil, fmt.Errorf("%w: decode fields: %v", ErrService, err)
	}
	fs.Normalize()
	return &fs, nil
}

// StripCodeFence removes a surrounding markdown code fence, which chat
// models add even when told to return bare JSON.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func compileFieldSchema() (*jsonschema.Schema, error) {
	b, err := json.Marshal(FieldSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("fields.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	return compiler.Compile("fields.json")
}
