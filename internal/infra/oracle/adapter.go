package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkoukk/tiktoken-go"

	"github.com/fitr-app/fitr-backend/internal/domain/outfit"
	"github.com/fitr-app/fitr-backend/internal/domain/wardrobe"
	"github.com/fitr-app/fitr-backend/internal/domain/weather"
	"github.com/fitr-app/fitr-backend/internal/infra/llm/chatgpt"
	apperrors "github.com/fitr-app/fitr-backend/pkg/errors"
	"github.com/fitr-app/fitr-backend/pkg/metrics"
)

// ChatClient is the slice of the LLM client the adapter needs.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

// Config tunes the oracle exchange.
type Config struct {
	Model           string
	Temperature     float32
	Prompt          string
	MaxPromptTokens int
}

// Adapter consults a hosted LLM for outfit selection. One request/response
// exchange per call; retry policy belongs to the transport layer.
type Adapter struct {
	cfg     Config
	client  ChatClient
	logger  *slog.Logger
	encoder *tiktoken.Tiktoken
}

// NewAdapter builds the oracle adapter. Token budgeting degrades gracefully
// when no encoding is available for the configured model.
func NewAdapter(cfg Config, client ChatClient, logger *slog.Logger) *Adapter {
	encoder, err := tiktoken.EncodingForModel(cfg.Model)
	if err != nil {
		encoder, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			logger.Warn("tiktoken encoding unavailable, prompt budgeting disabled", "model", cfg.Model, "error", err)
			encoder = nil
		}
	}
	return &Adapter{
		cfg:     cfg,
		client:  client,
		logger:  logger.With("component", "oracle.adapter"),
		encoder: encoder,
	}
}

// Recommend sends the wardrobe, weather and vibe to the oracle and parses its
// selection. No image data ever travels with the request.
func (a *Adapter) Recommend(ctx context.Context, vibe string, snap weather.Snapshot, items []wardrobe.ClothingItem) (outfit.Selection, error) {
	candidates := items
	userPrompt, err := a.buildUserPrompt(vibe, snap, candidates)
	if err != nil {
		return outfit.Selection{}, apperrors.Wrap("oracle_unavailable", "encode oracle request", err)
	}

	// Trim trailing candidates until the prompt fits the token budget. The
	// input arrives newest-first, so the oldest items are dropped first.
	for a.overBudget(userPrompt) && len(candidates) > 2 {
		candidates = candidates[:len(candidates)-1]
		userPrompt, err = a.buildUserPrompt(vibe, snap, candidates)
		if err != nil {
			return outfit.Selection{}, apperrors.Wrap("oracle_unavailable", "encode oracle request", err)
		}
	}
	if len(candidates) < len(items) {
		a.logger.Info("oracle candidate list trimmed to fit token budget",
			"candidates", len(candidates), "wardrobe", len(items))
	}

	resp, err := a.client.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model: a.cfg.Model,
		Messages: []chatgpt.Message{
			{Role: "system", Content: a.systemPrompt()},
			{Role: "user", Content: userPrompt},
		},
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return outfit.Selection{}, apperrors.Wrap("oracle_unavailable", "oracle request failed", err)
	}
	if len(resp.Choices) == 0 {
		return outfit.Selection{}, apperrors.Wrap("oracle_unavailable", "oracle returned no choices", nil)
	}

	sel, err := parseSelection(resp.Choices[0].Message.Content)
	if err != nil {
		return outfit.Selection{}, apperrors.Wrap("oracle_unavailable", "oracle response malformed", err)
	}
	if usage := resp.Usage; usage.TotalTokens > 0 {
		sel.Usage = &metrics.TokenUsage{
			PromptTokens:     usage.PromptTokens,
			CompletionTokens: usage.CompletionTokens,
			TotalTokens:      usage.TotalTokens,
		}
	}
	return sel, nil
}

func (a *Adapter) overBudget(prompt string) bool {
	if a.encoder == nil || a.cfg.MaxPromptTokens <= 0 {
		return false
	}
	return len(a.encoder.Encode(prompt, nil, nil)) > a.cfg.MaxPromptTokens
}

func (a *Adapter) systemPrompt() string {
	base := strings.TrimSpace(a.cfg.Prompt)
	if base == "" {
		base = "You are a personal stylist who assembles outfits from the user's own wardrobe."
	}
	enforcer := " Respond ONLY with valid minified JSON using this shape: {\"item_ids\":string[],\"description\":string}. item_ids must contain only ids from the provided wardrobe. Never pick two tops or two bottoms; a dress replaces both slots. If no coherent outfit exists, respond with an empty item_ids array and explain why in description."
	return base + enforcer
}

type candidateWire struct {
	ID          string                `json:"id"`
	Type        wardrobe.ClothingType `json:"type"`
	Color       string                `json:"color"`
	Name        string                `json:"name"`
	WeatherTags []wardrobe.WeatherTag `json:"weather_tags"`
	StyleTags   []wardrobe.StyleTag   `json:"style_tags"`
}

func (a *Adapter) buildUserPrompt(vibe string, snap weather.Snapshot, items []wardrobe.ClothingItem) (string, error) {
	wire := struct {
		Vibe     string           `json:"vibe"`
		Weather  weather.Snapshot `json:"weather"`
		Wardrobe []candidateWire  `json:"wardrobe"`
	}{
		Vibe:     vibe,
		Weather:  snap,
		Wardrobe: make([]candidateWire, 0, len(items)),
	}
	for _, item := range items {
		wire.Wardrobe = append(wire.Wardrobe, candidateWire{
			ID:          item.ID,
			Type:        item.Type,
			Color:       item.Color,
			Name:        item.Name,
			WeatherTags: item.WeatherTags,
			StyleTags:   item.StyleTags,
		})
	}
	payload, err := json.Marshal(wire)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Pick an outfit with a %s vibe for the weather below, using ONLY this wardrobe: %s", vibe, payload), nil
}

type selectionWire struct {
	ItemIDs     []string `json:"item_ids"`
	Description string   `json:"description"`
}

func parseSelection(raw string) (outfit.Selection, error) {
	sanitized := strings.TrimSpace(raw)
	sanitized = strings.TrimPrefix(sanitized, "```json")
	sanitized = strings.TrimSuffix(sanitized, "```")
	sanitized = strings.Trim(sanitized, "`")
	sanitized = strings.TrimSpace(strings.TrimPrefix(sanitized, "json"))
	if sanitized == "" {
		return outfit.Selection{}, errors.New("empty oracle response")
	}

	var wire selectionWire
	if err := json.Unmarshal([]byte(sanitized), &wire); err != nil {
		return outfit.Selection{}, err
	}
	if strings.TrimSpace(wire.Description) == "" {
		return outfit.Selection{}, errors.New("oracle response missing description")
	}

	ids := make([]string, 0, len(wire.ItemIDs))
	for _, id := range wire.ItemIDs {
		clean := strings.TrimSpace(id)
		if clean == "" {
			continue
		}
		ids = append(ids, clean)
	}
	return outfit.Selection{
		ItemIDs:     ids,
		Description: strings.TrimSpace(wire.Description),
	}, nil
}

var _ outfit.Oracle = (*Adapter)(nil)
