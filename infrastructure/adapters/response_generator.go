package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/viveknaskar/ConfessBot/application/ports/outbound"
	"github.com/viveknaskar/ConfessBot/config"
	"github.com/viveknaskar/ConfessBot/domain"
)

const roastSystemPrompt = "You are a witty AI that creates funny, light-hearted roasts of confessions. " +
	"Keep it playful and not mean-spirited. Use emojis and internet slang. Maximum 2 sentences."

const narrationPromptSuffix = " Maximum 3 sentences. Use emojis sparingly."

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type responseGenerator struct {
	ContentFetcher
	logger           outbound.LoggerPort
	generationConfig *config.GenerationConfig
	random           outbound.RandomSource
	roastFallbacks   []domain.FallbackUtterance
}

func NewResponseGenerator(contentFetcher ContentFetcher, generationConfig *config.GenerationConfig,
	random outbound.RandomSource, logger outbound.LoggerPort) outbound.ResponseGeneratorPort {
	return &responseGenerator{
		ContentFetcher:   contentFetcher,
		logger:           logger,
		generationConfig: generationConfig,
		random:           random,
		roastFallbacks:   domain.RoastFallbacks(),
	}
}

// Generate issues one bounded chat completion and degrades to a canned
// utterance on any failure. The pipeline must always get some text back, so
// remote errors are absorbed here and only flagged through the result origin.
func (g *responseGenerator) Generate(ctx context.Context, req outbound.GenerateResponseRequest) (domain.GenerationResult, error) {
	if g.generationConfig.ApiKey == "" {
		g.logger.Debug("no generation credential configured, serving fallback utterance")
		return g.fallback(req), nil
	}

	httpReq, err := g.createRequest(ctx, req)
	if err != nil {
		return g.degrade(ctx, req, err, "failed to build generation request")
	}

	payload, err := g.FetchContent(httpReq)
	if err != nil {
		return g.degrade(ctx, req, err, "generation call failed")
	}

	var completion chatResponse
	if err := json.Unmarshal(payload, &completion); err != nil {
		return g.degrade(ctx, req, err, "malformed generation payload")
	}
	if len(completion.Choices) == 0 {
		return g.degrade(ctx, req, fmt.Errorf("completion has no choices"), "empty generation payload")
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	if text == "" {
		return g.degrade(ctx, req, fmt.Errorf("completion message body is empty"), "empty generation payload")
	}

	return domain.GenerationResult{Text: text, Origin: domain.RemoteOrigin}, nil
}

func (g *responseGenerator) degrade(ctx context.Context, req outbound.GenerateResponseRequest,
	cause error, msg string) (domain.GenerationResult, error) {
	if ctx.Err() != nil {
		return domain.GenerationResult{}, ctx.Err()
	}

	g.logger.ErrorWithFields(cause, msg, map[string]interface{}{
		"persona": req.Persona.ID,
		"mode":    req.Mode,
	})
	return g.fallback(req), nil
}

// fallback picks one canned utterance uniformly at random. The templates are
// locally authored, so they get the original confession text, not the
// sanitized form meant for the synthesis service.
func (g *responseGenerator) fallback(req outbound.GenerateResponseRequest) domain.GenerationResult {
	templates := req.Persona.Fallbacks
	if req.Mode == domain.RoastMode {
		templates = g.roastFallbacks
	}

	utterance := templates[g.random.Intn(len(templates))]
	return domain.GenerationResult{
		Text:   utterance(req.Confession),
		Origin: domain.FallbackOrigin,
	}
}

func (g *responseGenerator) createRequest(ctx context.Context, req outbound.GenerateResponseRequest) (*http.Request, error) {
	var systemPrompt, userPrompt string
	var maxTokens int
	var temperature float64

	if req.Mode == domain.RoastMode {
		systemPrompt = roastSystemPrompt
		userPrompt = fmt.Sprintf("Roast this confession in a funny way: %q", req.Confession)
		maxTokens = g.generationConfig.RoastMaxTokens
		temperature = g.generationConfig.RoastTemperature
	} else {
		systemPrompt = req.Persona.PersonalityPrompt + narrationPromptSuffix
		userPrompt = fmt.Sprintf("Here's a confession: %q", req.Confession)
		maxTokens = g.generationConfig.NarrationMaxTokens
		temperature = g.generationConfig.NarrationTemperature
	}

	promptReq := chatRequest{
		Model: g.generationConfig.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	payloadBytes, err := json.Marshal(promptReq)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", g.generationConfig.ApiUrl, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Authorization", "Bearer "+g.generationConfig.ApiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	return httpReq, nil
}
