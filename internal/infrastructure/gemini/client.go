package gemini

import (
	"context"
	"strings"

	"vehiql/internal/domain/service"
	apperrors "vehiql/pkg/errors"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client wraps the Gemini SDK behind the VisionService port.
type Client struct {
	client *genai.Client
	model  string
}

var _ service.VisionService = (*Client)(nil)

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &Client{client: client, model: model}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// GenerateFromImage submits one image plus an instruction prompt and returns
// the raw response text. No retries; the SDK's request deadline is the
// caller's context.
func (c *Client) GenerateFromImage(ctx context.Context, imageData []byte, mimeType string, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)

	format := strings.TrimPrefix(mimeType, "image/")
	resp, err := model.GenerateContent(ctx, genai.ImageData(format, imageData), genai.Text(prompt))
	if err != nil {
		return "", apperrors.Upstream("Vision inference call failed", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", apperrors.Upstream("Vision inference returned no candidates", nil)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}
