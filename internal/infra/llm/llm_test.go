package llm

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"ewarrants/internal/domain/entity"
	domainerrors "ewarrants/internal/domain/errors"
	"ewarrants/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type scriptedGenerator struct {
	responses []*genai.GenerateContentResponse
	err       error
	calls     [][]*genai.Content
	configs   []*genai.GenerateContentConfig
}

func (g *scriptedGenerator) GenerateContent(_ context.Context, _ string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	g.calls = append(g.calls, contents)
	g.configs = append(g.configs, cfg)
	if g.err != nil {
		return nil, g.err
	}
	resp := g.responses[0]
	g.responses = g.responses[1:]

	return resp, nil
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: genai.NewContentFromText(text, genai.RoleModel),
	}}}
}

func callResponse(args map[string]any) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: genai.NewContentFromParts([]*genai.Part{
			{FunctionCall: &genai.FunctionCall{Name: getWarrantiesTool, Args: args}},
		}, genai.RoleModel),
	}}}
}

func newTestClient(g generator) *Client {
	c := newClient(g, "", slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.now = func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) }

	return c
}

func TestChat_NoFunctionCall(t *testing.T) {
	g := &scriptedGenerator{responses: []*genai.GenerateContentResponse{textResponse("Hello! How can I help?")}}
	c := newTestClient(g)

	called := false
	text, err := c.Chat(context.Background(), []service.ChatTurn{{Role: "user", Text: "hi"}, {Role: "model", Text: "hey"}}, "hello",
		func(context.Context, service.WarrantyQuery) ([]*entity.Warranty, error) {
			called = true

			return nil, nil
		})
	require.NoError(t, err)
	assert.Equal(t, "Hello! How can I help?", text)
	assert.False(t, called)
	require.Len(t, g.calls, 1)
	assert.Len(t, g.calls[0], 3)
	assert.Equal(t, "model", g.calls[0][1].Role)
	assert.Contains(t, g.configs[0].SystemInstruction.Parts[0].Text, "Sat Jun 01 2024")
}

func TestChat_AnswersFunctionCall(t *testing.T) {
	g := &scriptedGenerator{responses: []*genai.GenerateContentResponse{
		callResponse(map[string]any{"expiringWithinDays": float64(30), "category": "Electronics", "sortBy": "purchase_date_asc"}),
		textResponse("You have one laptop warranty expiring soon."),
	}}
	c := newTestClient(g)

	laptop := &entity.Warranty{ID: uuid.New(), ProductName: "Laptop", PurchaseDate: time.Date(2023, 6, 20, 0, 0, 0, 0, time.UTC), WarrantyLengthMonths: 12}

	var got service.WarrantyQuery
	text, err := c.Chat(context.Background(), nil, "what expires this month?",
		func(_ context.Context, q service.WarrantyQuery) ([]*entity.Warranty, error) {
			got = q

			return []*entity.Warranty{laptop}, nil
		})
	require.NoError(t, err)
	assert.Equal(t, "You have one laptop warranty expiring soon.", text)

	require.NotNil(t, got.ExpiringWithinDays)
	assert.Equal(t, 30, *got.ExpiringWithinDays)
	assert.Equal(t, "Electronics", got.Category)
	assert.Equal(t, "PURCHASE_DATE_ASC", got.SortBy)

	require.Len(t, g.calls, 2)
	second := g.calls[1]
	require.Len(t, second, 3)
	fr := second[2].Parts[0].FunctionResponse
	require.NotNil(t, fr)
	assert.Equal(t, getWarrantiesTool, fr.Name)
	records := fr.Response["warranties"].([]map[string]any)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-06-20", records[0]["expiryDate"])
}

func TestChat_QueryErrorPropagates(t *testing.T) {
	g := &scriptedGenerator{responses: []*genai.GenerateContentResponse{callResponse(map[string]any{})}}
	c := newTestClient(g)

	boom := errors.New("db down")
	_, err := c.Chat(context.Background(), nil, "list", func(context.Context, service.WarrantyQuery) ([]*entity.Warranty, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Len(t, g.calls, 1)
}

func TestChat_UpstreamFailure(t *testing.T) {
	c := newTestClient(&scriptedGenerator{err: errors.New("quota exceeded")})

	_, err := c.Chat(context.Background(), nil, "hi", nil)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailed)
}

func TestClient_NotConfigured(t *testing.T) {
	c := newClient(nil, "", slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := c.ReadReceipt(context.Background(), []byte{1}, "image/png")
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailed)
}

func TestReadReceipt(t *testing.T) {
	g := &scriptedGenerator{responses: []*genai.GenerateContentResponse{
		textResponse("```json\n{\"productName\":\"Mixer\",\"purchaseDate\":\"2024-02-10\",\"warrantyMonths\":24,\"category\":\"Kitchen\"}\n```"),
	}}
	c := newTestClient(g)

	details, err := c.ReadReceipt(context.Background(), []byte("img"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "Mixer", details.ProductName)
	assert.Equal(t, "2024-02-10", details.PurchaseDate)
	require.NotNil(t, details.WarrantyMonths)
	assert.Equal(t, 24, *details.WarrantyMonths)

	parts := g.calls[0][0].Parts
	require.Len(t, parts, 2)
	require.NotNil(t, parts[1].InlineData)
	assert.Equal(t, "image/jpeg", parts[1].InlineData.MIMEType)
}

func TestParseReceiptDetails(t *testing.T) {
	details, err := parseReceiptDetails(`{"productName":"Kettle","purchaseDate":"","warrantyMonths":null,"category":""}`)
	require.NoError(t, err)
	assert.Nil(t, details.WarrantyMonths)
	assert.Equal(t, "Other", details.Category)

	_, err = parseReceiptDetails("I could not read this receipt")
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailed)
}

func TestParseWarrantyQuery(t *testing.T) {
	q := parseWarrantyQuery(map[string]any{})
	assert.Nil(t, q.ExpiringWithinDays)
	assert.Empty(t, q.SortBy)

	q = parseWarrantyQuery(map[string]any{"expiringWithinDays": "7"})
	require.NotNil(t, q.ExpiringWithinDays)
	assert.Equal(t, 7, *q.ExpiringWithinDays)
}
