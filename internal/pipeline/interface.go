package pipeline

import (
	"context"
	"io"

	"github.com/arkdev/voicenotes/internal/store"
)

// Pipeline ingests one voice note: persist audio, transcribe, summarize,
// append the record. Stage failures are absorbed into fallback text; only
// I/O failures writing the audio or the record propagate.
type Pipeline interface {
	IngestVoice(ctx context.Context, userID int64, userName, fileID string, audio io.Reader) (store.Record, error)
}
