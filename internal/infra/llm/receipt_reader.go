package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ewarrants/internal/domain/constants"
	domainerrors "ewarrants/internal/domain/errors"
	"ewarrants/internal/domain/service"

	"google.golang.org/genai"
)

var receiptPrompt = fmt.Sprintf(`Analyze this receipt image. Your task is to extract specific details and generate a category.
1. Extract the primary product name.
2. Extract the purchase date in YYYY-MM-DD format.
3. Extract and calculate the warranty period in MONTHS. Look for terms like "warranty", "guarantee".
   - If it's in years (e.g., "1 year warranty"), convert it to months (e.g., 12).
   - If no warranty is found, return null for this field.
4. Generate a single, relevant category for the product from this list: [%s]. If no specific category from the list fits, use "%s".
Return the data as a clean JSON object with the keys: "productName", "purchaseDate", "warrantyMonths", and "category".`,
	strings.Join(constants.Categories, ", "), constants.FallbackCategory)

// ReadReceipt asks the model for a JSON description of the receipt.
func (c *Client) ReadReceipt(ctx context.Context, image []byte, mimeType string) (*service.ReceiptDetails, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(receiptPrompt),
			genai.NewPartFromBytes(image, mimeType),
		}, genai.RoleUser),
	}

	resp, err := c.generate(ctx, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0),
	})
	if err != nil {
		return nil, err
	}

	return parseReceiptDetails(resp.Text())
}

func parseReceiptDetails(text string) (*service.ReceiptDetails, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var details service.ReceiptDetails
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &details); err != nil {
		return nil, domainerrors.NewUpstreamError(upstreamName, err)
	}
	if details.Category == "" {
		details.Category = constants.FallbackCategory
	}

	return &details, nil
}
