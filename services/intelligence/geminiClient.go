package ai

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// systemInstruction pins the assistant to the business identity. Prices here
// are reference ranges only; exact quotes go through the calculator widget.
const systemInstruction = `You are "Clean Hurghada Bot" (بوت تنظيف الغردقة), a helpful cleaning service assistant for Hurghada, Egypt.
Your tone is friendly, professional, and helpful. You love the Red Sea.
Languages: You speak Arabic and English fluently. Adapt to the user's language.
Services: Apartment cleaning, Villa cleaning, Airbnb Turnover, Stain removal advice.

Contact Support Details:
- 📞 WhatsApp: +20 100 987 6543
- 📧 Email: support@cleanhurghada.com
- 📍 Office: Sheraton Road, El Kawther, Hurghada

Prices (Reference only, guide users to the "Calculate Price" button for exact quotes):
- Studio: ~700-1000 EGP
- 1 Bed: ~1000-1500 EGP
- 2 Bed: ~1200-2000 EGP
- Villa: Starts at 1500 EGP

If the user uploads an image:
1. Analyze the stain/dirt (Is it sand? Salt? Grease? Wine?).
2. Give specific removal tips using household items (Vinegar, Soda, Lemon) available in Egypt.
3. Suggest professional cleaning if it looks too hard.

If the user wants to book, encourage them to use the "Book Cleaning" button.
Do not make up fake booking confirmations in text, guide them to the UI tools.
`

type GeminiClient struct {
	textModel   *genai.GenerativeModel
	visionModel *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	textModel := client.GenerativeModel("models/gemini-1.5-flash")
	textModel.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	visionModel := client.GenerativeModel("models/gemini-1.5-flash")
	visionModel.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	return &GeminiClient{textModel: textModel, visionModel: visionModel}, nil
}

func (g *GeminiClient) GenerateReply(ctx context.Context, prompt string) (string, error) {
	resp, err := g.textModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	return flatten(resp)
}

func (g *GeminiClient) AnalyzeImage(ctx context.Context, imageData []byte, mimeType, prompt string) (string, error) {
	if prompt == "" {
		prompt = DefaultVisionPrompt
	}
	format := strings.TrimPrefix(mimeType, "image/")
	if format == "" || format == mimeType {
		format = "jpeg"
	}
	resp, err := g.visionModel.GenerateContent(ctx,
		genai.ImageData(format, imageData),
		genai.Text(prompt),
	)
	if err != nil {
		return "", fmt.Errorf("gemini vision error: %w", err)
	}
	return flatten(resp)
}

func flatten(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
