package report

import (
	"context"
	"time"
)

// Emitter renders a summary into a docx report. Rendering degrades to a
// minimal document when the template is missing or malformed; only a
// failure to write the output file is returned as an error.
type Emitter interface {
	Render(ctx context.Context, summaryText string, when time.Time, outputPath string) error
}
