package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"

	deliverycontext "ewarrants/internal/delivery/context"
	"ewarrants/internal/domain/constants"
	"ewarrants/internal/domain/service"

	"google.golang.org/genai"
)

const getWarrantiesTool = "getWarranties"

var warrantyTool = &genai.Tool{
	FunctionDeclarations: []*genai.FunctionDeclaration{{
		Name:        getWarrantiesTool,
		Description: "Get a list of the user's warranties. Can be filtered and sorted.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"category": {
					Type:        genai.TypeString,
					Description: "The category to filter by. Available categories are: " + strings.Join(constants.Categories, ", "),
				},
				"expiringWithinDays": {
					Type:        genai.TypeInteger,
					Description: "The number of days from today to check for expiring warranties.",
				},
				"sortBy": {
					Type:        genai.TypeString,
					Description: "Use 'PURCHASE_DATE_ASC' for oldest first, or 'PURCHASE_DATE_DESC' for newest first.",
					Enum:        []string{constants.SortPurchaseDateAsc, constants.SortPurchaseDateDesc},
				},
			},
		},
	}},
}

// Chat sends history plus message. The first getWarranties call is answered
// through query and the model's follow-up text is returned.
func (c *Client) Chat(ctx context.Context, history []service.ChatTurn, message string, query service.WarrantyQueryFunc) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{warrantyTool},
		SystemInstruction: genai.NewContentFromText(fmt.Sprintf(
			"You are a helpful and friendly AI assistant for a warranty tracking app called eWarrants. "+
				"Today's date is %s. When a user asks for their warranties, use the getWarranties tool. "+
				"Do not guess or make up information. Be concise.",
			c.now().Format("Mon Jan 02 2006"),
		), genai.RoleUser),
	}

	contents := make([]*genai.Content, 0, len(history)+3)
	for _, turn := range history {
		contents = append(contents, genai.NewContentFromText(turn.Text, genai.Role(turn.Role)))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	resp, err := c.generate(ctx, contents, cfg)
	if err != nil {
		return "", err
	}

	call := firstCall(resp.FunctionCalls(), getWarrantiesTool)
	if call == nil {
		return resp.Text(), nil
	}

	q := parseWarrantyQuery(call.Args)
	deliverycontext.GetLoggerOrDefault(ctx, c.logger).InfoContext(ctx, "Assistant requested warranties",
		slog.String("category", q.Category),
		slog.String("sortBy", q.SortBy),
	)

	warranties, err := query(ctx, q)
	if err != nil {
		return "", err
	}

	records := make([]map[string]any, 0, len(warranties))
	for _, w := range warranties {
		records = append(records, warrantySummary(w))
	}

	contents = append(contents,
		resp.Candidates[0].Content,
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromFunctionResponse(getWarrantiesTool, map[string]any{"warranties": records}),
		}, genai.RoleUser),
	)

	followUp, err := c.generate(ctx, contents, cfg)
	if err != nil {
		return "", err
	}

	return followUp.Text(), nil
}

func firstCall(calls []*genai.FunctionCall, name string) *genai.FunctionCall {
	for _, call := range calls {
		if call != nil && call.Name == name {
			return call
		}
	}

	return nil
}

func parseWarrantyQuery(args map[string]any) service.WarrantyQuery {
	var q service.WarrantyQuery
	if v, ok := args["category"].(string); ok {
		q.Category = strings.TrimSpace(v)
	}
	if v, ok := args["sortBy"].(string); ok {
		q.SortBy = strings.ToUpper(strings.TrimSpace(v))
	}
	if days, ok := intArg(args["expiringWithinDays"]); ok {
		q.ExpiringWithinDays = &days
	}

	return q
}

func intArg(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(math.Round(n)), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()

		return int(i), err == nil
	case string:
		var i int
		_, err := fmt.Sscan(n, &i)

		return i, err == nil
	default:
		return 0, false
	}
}
