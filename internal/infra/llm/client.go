// Package llm adapts Google Gemini to the receipt reader and chat model services.
package llm

import (
	"context"
	"log/slog"
	"time"

	"ewarrants/config"
	deliverycontext "ewarrants/internal/delivery/context"
	"ewarrants/internal/domain/entity"
	domainerrors "ewarrants/internal/domain/errors"
	"ewarrants/internal/domain/service"
	"ewarrants/internal/errors"

	"go.uber.org/fx"
	"google.golang.org/genai"
)

const (
	defaultModel = "gemini-1.5-flash"
	upstreamName = "gemini"
)

var errNotConfigured = errors.New("llm api key is not configured")

// generator is the subset of *genai.Models used here.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Params defines the dependencies of the Gemini client.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Result exposes one client under both service interfaces.
type Result struct {
	fx.Out

	ReceiptReader service.ReceiptReader
	ChatModel     service.ChatModel
}

// Client talks to the Gemini API.
type Client struct {
	models generator
	model  string
	logger *slog.Logger
	now    func() time.Time
}

// New builds the client. Without an API key every call fails as an upstream
// error so the rest of the service still starts.
func New(params Params) (Result, error) {
	cfg := params.Config.LLM
	if cfg == nil || cfg.APIKey == "" {
		params.Logger.Warn("LLM API key missing, assistant endpoints are disabled")
		c := newClient(nil, "", params.Logger)

		return Result{ReceiptReader: c, ChatModel: c}, nil
	}

	gc, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return Result{}, errors.Wrap(err, "failed to create GenAI client")
	}

	c := newClient(gc.Models, cfg.Model, params.Logger)

	return Result{ReceiptReader: c, ChatModel: c}, nil
}

func newClient(models generator, model string, logger *slog.Logger) *Client {
	if model == "" {
		model = defaultModel
	}

	return &Client{models: models, model: model, logger: logger, now: time.Now}
}

func (c *Client) generate(ctx context.Context, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if c.models == nil {
		return nil, domainerrors.NewUpstreamError(upstreamName, errNotConfigured)
	}

	start := c.now()
	resp, err := c.models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(upstreamName, err)
	}
	if len(resp.Candidates) == 0 {
		return nil, domainerrors.NewUpstreamError(upstreamName, errors.New("empty response"))
	}

	deliverycontext.GetLoggerOrDefault(ctx, c.logger).DebugContext(ctx, "Gemini call completed",
		slog.String("model", c.model),
		slog.Duration("elapsed", c.now().Sub(start)),
	)

	return resp, nil
}

// warrantySummary is the record shape handed back to the model.
func warrantySummary(w *entity.Warranty) map[string]any {
	return map[string]any{
		"id":                   w.ID.String(),
		"productName":          w.ProductName,
		"category":             w.Category,
		"purchaseDate":         w.PurchaseDate.Format(time.DateOnly),
		"warrantyLengthMonths": w.WarrantyLengthMonths,
		"expiryDate":           w.ExpiryDate().Format(time.DateOnly),
		"description":          w.Description,
	}
}
