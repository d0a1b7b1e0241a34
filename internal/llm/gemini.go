package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Invoke sends the session text to Gemini and returns the reply text.
// Rotates API keys on 429 / quota errors; all other failures surface as
// *APIError immediately.
func (v *implInvoker) Invoke(ctx context.Context, sessionText string) (string, error) {
	if v.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}

	attempts := len(v.apiKeys)
	var lastErr error

	for range attempts {
		key, slot := v.activeKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			v.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, v.model, genai.Text(sessionText), nil)
		if err != nil {
			if isQuotaError(err) {
				v.logger.Warn(ctx, "Key %d rate limited, rotating...", slot+1)
				v.rotateKey()
				lastErr = err
				continue
			}
			return "", &APIError{Code: errorCode(err), Message: err.Error()}
		}

		text := replyText(result)
		if text == "" {
			return "", &APIError{Message: "empty response from model"}
		}
		return text, nil
	}

	return "", &APIError{Code: 429, Message: fmt.Sprintf("all API keys exhausted: %v", lastErr)}
}

func (v *implInvoker) activeKey() (string, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.apiKeys[v.currentKey], v.currentKey
}

func (v *implInvoker) rotateKey() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.currentKey = (v.currentKey + 1) % len(v.apiKeys)
}

func replyText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text
}
