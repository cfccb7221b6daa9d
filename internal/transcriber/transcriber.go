package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FallbackText is returned whenever transcription cannot produce output.
const FallbackText = "Could not understand the audio."

// Transcribe runs whisper on the audio file and returns the recognized
// text. Model availability is checked once; if that check fails, every
// call returns the fallback until the process restarts.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) string {
	t.initOnce.Do(func() {
		t.initErr = t.checkAvailable()
		if t.initErr != nil {
			t.logger.Error(ctx, "Whisper initialization failed: %v", t.initErr)
		} else {
			t.logger.Info(ctx, "Whisper ready: %s (model %s)", t.cfg.BinaryPath, t.cfg.ModelPath)
		}
	})
	if t.initErr != nil {
		return FallbackText
	}

	t.logger.Info(ctx, "Transcribing audio: %s", audioPath)

	// Whisper appends .txt to the output prefix.
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-l", t.cfg.Language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"--output-file", outputPrefix,
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		t.logger.Error(ctx, "Whisper transcribe failed: %v", err)
		return FallbackText
	}

	textPath := outputPrefix + ".txt"
	data, err := os.ReadFile(textPath)
	if err != nil {
		t.logger.Error(ctx, "Read transcript %s: %v", textPath, err)
		return FallbackText
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		t.logger.Warn(ctx, "Empty transcript for %s", audioPath)
		return FallbackText
	}

	t.logger.Info(ctx, "Transcription completed: %s (%d chars)", audioPath, len(text))
	return text
}

func (t *implTranscriber) checkAvailable() error {
	if _, err := os.Stat(t.cfg.BinaryPath); err != nil {
		return fmt.Errorf("whisper binary: %w", err)
	}
	if _, err := os.Stat(t.cfg.ModelPath); err != nil {
		return fmt.Errorf("whisper model: %w", err)
	}
	return nil
}
