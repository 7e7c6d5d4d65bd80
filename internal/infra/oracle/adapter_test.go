package oracle

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitr-app/fitr-backend/internal/domain/wardrobe"
	"github.com/fitr-app/fitr-backend/internal/domain/weather"
	"github.com/fitr-app/fitr-backend/internal/infra/llm/chatgpt"
	apperrors "github.com/fitr-app/fitr-backend/pkg/errors"
)

func TestRecommendSuccess(t *testing.T) {
	stub := &stubChatClient{response: chatResponse(`{"item_ids":["tee","jeans"],"description":"Easy and casual."}`)}
	adapter := newTestAdapter(stub)

	sel, err := adapter.Recommend(context.Background(), "casual", testSnapshot(), testItems())
	require.NoError(t, err)
	require.Equal(t, []string{"tee", "jeans"}, sel.ItemIDs)
	require.Equal(t, "Easy and casual.", sel.Description)
	require.NotNil(t, sel.Usage)
	require.Equal(t, 150, sel.Usage.TotalTokens)

	require.Equal(t, 1, stub.calls)
	require.Len(t, stub.lastRequest.Messages, 2)
	require.Equal(t, "system", stub.lastRequest.Messages[0].Role)
	userPrompt := stub.lastRequest.Messages[1].Content
	require.Contains(t, userPrompt, "casual")
	require.Contains(t, userPrompt, `"tee"`)
	require.Contains(t, userPrompt, `"jeans"`)
	// Image URLs never travel with the request.
	require.NotContains(t, userPrompt, "https://cdn.example.com")
}

func TestRecommendEmptySelection(t *testing.T) {
	stub := &stubChatClient{response: chatResponse(`{"item_ids":[],"description":"Nothing fits that vibe."}`)}
	adapter := newTestAdapter(stub)

	sel, err := adapter.Recommend(context.Background(), "gothic", testSnapshot(), testItems())
	require.NoError(t, err)
	require.Empty(t, sel.ItemIDs)
	require.Equal(t, "Nothing fits that vibe.", sel.Description)
}

func TestRecommendTransportError(t *testing.T) {
	stub := &stubChatClient{err: errors.New("connection refused")}
	adapter := newTestAdapter(stub)

	_, err := adapter.Recommend(context.Background(), "casual", testSnapshot(), testItems())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "oracle_unavailable"))
}

func TestRecommendMalformedResponse(t *testing.T) {
	stub := &stubChatClient{response: chatResponse("Sure! Here is an outfit I would suggest...")}
	adapter := newTestAdapter(stub)

	_, err := adapter.Recommend(context.Background(), "casual", testSnapshot(), testItems())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "oracle_unavailable"))
}

func TestRecommendNoChoices(t *testing.T) {
	stub := &stubChatClient{response: chatgpt.ChatCompletionResponse{}}
	adapter := newTestAdapter(stub)

	_, err := adapter.Recommend(context.Background(), "casual", testSnapshot(), testItems())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "oracle_unavailable"))
}

func TestParseSelectionCodeFences(t *testing.T) {
	raw := "```json\n{\"item_ids\":[\"a\",\" b \",\"\"],\"description\":\" Warm layers. \"}\n```"
	sel, err := parseSelection(raw)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, sel.ItemIDs)
	require.Equal(t, "Warm layers.", sel.Description)
}

func TestParseSelectionEmpty(t *testing.T) {
	_, err := parseSelection("```json\n```")
	require.Error(t, err)
}

func TestParseSelectionMissingDescription(t *testing.T) {
	_, err := parseSelection(`{"item_ids":["a"]}`)
	require.Error(t, err)
}

func TestSystemPromptEnforcesShape(t *testing.T) {
	adapter := newTestAdapter(&stubChatClient{})
	prompt := adapter.systemPrompt()
	require.True(t, strings.HasPrefix(prompt, "Pick outfits"))
	require.Contains(t, prompt, `{"item_ids":string[],"description":string}`)
	require.Contains(t, prompt, "empty item_ids")
}

func TestOverBudgetDisabledWithoutEncoder(t *testing.T) {
	adapter := newTestAdapter(&stubChatClient{})
	require.False(t, adapter.overBudget(strings.Repeat("wardrobe ", 10000)))
}

func newTestAdapter(client ChatClient) *Adapter {
	return &Adapter{
		cfg: Config{
			Model:           "gpt-test",
			Temperature:     0.2,
			Prompt:          "Pick outfits",
			MaxPromptTokens: 4000,
		},
		client: client,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func testSnapshot() weather.Snapshot {
	return weather.Snapshot{Temperature: 22, Condition: weather.ConditionSunny, Location: "Berlin"}
}

func testItems() []wardrobe.ClothingItem {
	return []wardrobe.ClothingItem{
		{ID: "tee", Type: wardrobe.TypeTShirt, Color: "blue", ImageURL: "https://cdn.example.com/tee.jpg"},
		{ID: "jeans", Type: wardrobe.TypeJeans, Color: "blue"},
		{ID: "shoes", Type: wardrobe.TypeShoes, Color: "white"},
	}
}

func chatResponse(content string) chatgpt.ChatCompletionResponse {
	return chatgpt.ChatCompletionResponse{
		Choices: []struct {
			Message chatgpt.Message `json:"message"`
		}{
			{Message: chatgpt.Message{Role: "assistant", Content: content}},
		},
		Usage: chatgpt.Usage{PromptTokens: 120, CompletionTokens: 30, TotalTokens: 150},
	}
}

type stubChatClient struct {
	response    chatgpt.ChatCompletionResponse
	err         error
	calls       int
	lastRequest chatgpt.ChatCompletionRequest
}

func (s *stubChatClient) CreateChatCompletion(_ context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error) {
	s.calls++
	s.lastRequest = req
	if s.err != nil {
		return chatgpt.ChatCompletionResponse{}, s.err
	}
	return s.response, nil
}
