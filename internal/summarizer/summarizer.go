package summarizer

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"google.golang.org/genai"
)

const (
	// Inputs below this length are returned unchanged; summarizing them
	// is defined as a no-op.
	shortInputLimit = 50

	// Fallback truncation length when the backend fails.
	truncateLimit = 100
)

const summaryPrompt = `Summarize the voice note transcript below. Write a concise summary between 30 and 150 words, keeping the original language of the transcript. Return only the summary text, no preamble and no formatting.

Transcript:
---
%s
---`

// Summarize condenses text through Gemini. Inputs shorter than 50
// characters pass through unchanged; on any backend failure the input is
// truncated to 100 characters with a trailing marker, so the result is
// always non-empty.
func (s *implSummarizer) Summarize(ctx context.Context, text string) string {
	if utf8.RuneCountInString(text) < shortInputLimit {
		return text
	}

	s.logger.Info(ctx, "Summarizing transcript (%d chars)", len(text))

	summary, err := s.callGemini(ctx, text)
	if err != nil {
		s.logger.Error(ctx, "Summarization failed: %v", err)
		return truncate(text)
	}

	summary = strings.TrimSpace(summary)
	if summary == "" {
		return truncate(text)
	}
	return summary
}

// callGemini sends the transcript to Gemini and returns the summary text.
// Rotates API keys on 429 / quota errors. Decoding is deterministic so the
// same transcript summarizes the same way.
func (s *implSummarizer) callGemini(ctx context.Context, transcript string) (string, error) {
	if len(s.apiKeys) == 0 {
		return "", fmt.Errorf("no API keys configured")
	}

	prompt := fmt.Sprintf(summaryPrompt, transcript)

	temperature := float32(0)
	genCfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 150,
	}

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := s.clientFor(ctx, key)
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), genCfg)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// clientFor returns the cached client for key, constructing it on first
// use under the lock.
func (s *implSummarizer) clientFor(ctx context.Context, key string) (*genai.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if client, ok := s.clients[key]; ok {
		return client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	s.clients[key] = client
	return client, nil
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

func truncate(text string) string {
	runes := []rune(text)
	if len(runes) > truncateLimit {
		return string(runes[:truncateLimit]) + "..."
	}
	return text
}
