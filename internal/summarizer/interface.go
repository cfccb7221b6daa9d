package summarizer

import "context"

// Summarizer condenses a transcript into a short summary. It never fails:
// short inputs pass through unchanged and any backend error degrades to a
// truncation of the input.
type Summarizer interface {
	Summarize(ctx context.Context, text string) string
}
