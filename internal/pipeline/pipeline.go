package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arkdev/voicenotes/internal/store"
)

// Stored audio always gets the same extension, named after the transport's
// file identifier.
const audioExt = ".ogg"

// IngestVoice runs the full pipeline for one inbound voice note. The audio
// file is retained after transcription.
func (p *implPipeline) IngestVoice(ctx context.Context, userID int64, userName, fileID string, audio io.Reader) (store.Record, error) {
	audioPath := filepath.Join(p.audioDir, fileID+audioExt)

	if err := p.writeAudio(audioPath, audio); err != nil {
		return store.Record{}, fmt.Errorf("write audio: %w", err)
	}
	p.logger.Info(ctx, "Audio saved: %s", audioPath)

	if _, err := p.store.GetOrCreateUser(userID, userName); err != nil {
		return store.Record{}, fmt.Errorf("ensure user: %w", err)
	}

	rawText := p.transcriber.Transcribe(ctx, audioPath)
	summaryText := p.summarizer.Summarize(ctx, rawText)

	rec, err := p.store.AppendRecord(userID, audioPath, rawText, summaryText)
	if err != nil {
		return store.Record{}, fmt.Errorf("append record: %w", err)
	}

	p.logger.Info(ctx, "Record %d created for user %d", rec.ID, userID)
	return rec, nil
}

func (p *implPipeline) writeAudio(path string, audio io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, audio); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
