package ai

import "context"

// Client is the assistant capability the conversation controller talks to.
// Both calls return the reply text or an error; turning failures into a
// user-facing apology is the caller's job.
type Client interface {
	GenerateReply(ctx context.Context, prompt string) (string, error)
	AnalyzeImage(ctx context.Context, imageData []byte, mimeType, prompt string) (string, error)
}

// DefaultVisionPrompt is used when the user sends a photo without text.
const DefaultVisionPrompt = "Analyze this image. If it is a stain or dirt in an apartment, tell me how to clean it using common household items found in Egypt (Vinegar, Lemon, Baking Soda). Be concise."
