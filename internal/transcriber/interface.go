package transcriber

import "context"

// Transcriber converts a stored audio file to text. It never fails: any
// underlying error is absorbed and a fixed fallback sentence is returned.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) string
}
